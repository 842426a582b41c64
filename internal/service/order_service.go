package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/repository"
)

type OrderInput struct {
	DomainID   string `json:"domain_id"`
	BuyerName  string `json:"buyer_name"`
	BuyerEmail string `json:"buyer_email"`
	Price      Amount `json:"price"`
	Status     string `json:"status"`
	Notes      string `json:"notes"`
	// Version guards updates; zero means "whatever is stored now".
	Version int64 `json:"version"`
}

type SalesReport struct {
	Orders       []entity.Order `json:"orders"`
	Count        int            `json:"count"`
	TotalRevenue float64        `json:"total_revenue"`
}

type OrderService interface {
	Create(ctx context.Context, in OrderInput) (*entity.Order, error)
	Get(ctx context.Context, id string) (*entity.Order, error)
	Update(ctx context.Context, id string, in OrderInput) (*entity.Order, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, params repository.ListOrdersParams) (*repository.ListOrdersResult, error)
	Sales(ctx context.Context) (*SalesReport, error)
}

type orderService struct {
	orders    repository.OrderRepository
	listings  repository.ListingRepository
	publisher EventPublisher
	log       logger.Logger
}

func NewOrderService(
	orders repository.OrderRepository,
	listings repository.ListingRepository,
	publisher EventPublisher,
	log logger.Logger,
) OrderService {
	return &orderService{orders: orders, listings: listings, publisher: publisher, log: log}
}

func parseOrderStatus(raw string) (entity.OrderStatus, error) {
	status := entity.OrderStatus(strings.ToLower(strings.TrimSpace(raw)))
	if !status.IsValid() {
		return "", fmt.Errorf("%w: order status %q", entity.ErrInvalidStatus, raw)
	}
	return status, nil
}

func (s *orderService) Create(ctx context.Context, in OrderInput) (*entity.Order, error) {
	listing, err := s.listings.GetByID(ctx, in.DomainID)
	if err != nil {
		return nil, fmt.Errorf("domain %s: %w", in.DomainID, err)
	}

	order, err := entity.NewOrder(listing.ID, in.BuyerName, in.BuyerEmail, float64(in.Price), strings.TrimSpace(in.Notes))
	if err != nil {
		return nil, err
	}
	order.DomainName = listing.Name
	if in.Status != "" {
		status, err := parseOrderStatus(in.Status)
		if err != nil {
			return nil, err
		}
		order.Status = status
	}

	id, err := s.orders.Create(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	order.ID = id
	s.log.Infof("Order created: ID=%s, Domain=%s, Price=%.2f", id, order.DomainName, order.Price)

	publishEvent(ctx, s.publisher, s.log, SubjectOrderCreated, OrderCreatedEvent{
		OrderID:    id,
		DomainID:   order.DomainID,
		DomainName: order.DomainName,
		Price:      order.Price,
		Source:     OrderSourceAdmin,
		CreatedAt:  order.CreatedAt,
	})
	return order, nil
}

func (s *orderService) Get(ctx context.Context, id string) (*entity.Order, error) {
	return s.orders.GetByID(ctx, id)
}

func (s *orderService) Update(ctx context.Context, id string, in OrderInput) (*entity.Order, error) {
	existing, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *existing
	if name := strings.TrimSpace(in.BuyerName); name != "" {
		updated.BuyerName = name
	}
	if email := strings.TrimSpace(in.BuyerEmail); email != "" {
		if !entity.IsValidEmail(email) {
			return nil, entity.NewValidationError("a valid buyer email is required")
		}
		updated.BuyerEmail = email
	}
	if p := entity.SanitizePrice(float64(in.Price)); p > 0 {
		updated.Price = p
	}
	if in.Status != "" {
		status, err := parseOrderStatus(in.Status)
		if err != nil {
			return nil, err
		}
		updated.Status = status
	}
	updated.Notes = strings.TrimSpace(in.Notes)

	version := in.Version
	if version == 0 {
		version = existing.Version
	}
	err = s.orders.Update(ctx, repository.UpdateOrderParams{
		OrderID:    existing.ID,
		Version:    version,
		BuyerName:  updated.BuyerName,
		BuyerEmail: updated.BuyerEmail,
		Price:      updated.Price,
		Status:     updated.Status,
		Notes:      updated.Notes,
	})
	if err != nil {
		return nil, err
	}
	updated.Version = version + 1
	updated.UpdatedAt = time.Now().UTC()

	if updated.Status != existing.Status {
		s.log.Infof("Order %s status changed: %s -> %s", id, existing.Status, updated.Status)
		publishEvent(ctx, s.publisher, s.log, SubjectOrderStatusUpdated, OrderStatusUpdatedEvent{
			OrderID:   id,
			OldStatus: string(existing.Status),
			NewStatus: string(updated.Status),
			UpdatedAt: updated.UpdatedAt,
		})
	}
	return &updated, nil
}

func (s *orderService) Delete(ctx context.Context, id string) error {
	if err := s.orders.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Infof("Order deleted: ID=%s", id)
	return nil
}

func (s *orderService) List(ctx context.Context, params repository.ListOrdersParams) (*repository.ListOrdersResult, error) {
	if params.Status != "" && !params.Status.IsValid() {
		return nil, fmt.Errorf("%w: order status %q", entity.ErrInvalidStatus, params.Status)
	}
	return s.orders.List(ctx, params)
}

// Sales reports every completed order, newest first, with their summed price.
func (s *orderService) Sales(ctx context.Context) (*SalesReport, error) {
	res, err := s.orders.List(ctx, repository.ListOrdersParams{Status: entity.OrderStatusCompleted})
	if err != nil {
		return nil, fmt.Errorf("failed to list completed orders: %w", err)
	}
	report := &SalesReport{Orders: res.Orders, Count: len(res.Orders)}
	for _, o := range res.Orders {
		report.TotalRevenue += o.Price
	}
	return report, nil
}
