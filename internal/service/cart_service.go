package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/repository"
	"github.com/google/uuid"
)

const defaultCartTTL = 72 * time.Hour

var ErrEmptyCart = errors.New("cart is empty")

type CheckoutInput struct {
	BuyerName  string `json:"buyer_name"`
	BuyerEmail string `json:"buyer_email"`
	Notes      string `json:"notes"`
}

type CartView struct {
	ID    string            `json:"id"`
	Items []entity.CartItem `json:"items"`
	Total float64           `json:"total"`
}

type CheckoutResult struct {
	Orders []entity.Order `json:"orders"`
	Total  float64        `json:"total"`
}

type CartService interface {
	Create(ctx context.Context) (*CartView, error)
	Get(ctx context.Context, cartID string) (*CartView, error)
	AddItem(ctx context.Context, cartID, listingID string) (*CartView, error)
	RemoveItem(ctx context.Context, cartID, listingID string) (*CartView, error)
	Checkout(ctx context.Context, cartID string, in CheckoutInput) (*CheckoutResult, error)
}

type cartService struct {
	carts     repository.CartRepository
	listings  repository.ListingRepository
	orders    repository.OrderRepository
	publisher EventPublisher
	log       logger.Logger
	ttl       time.Duration
}

func NewCartService(
	carts repository.CartRepository,
	listings repository.ListingRepository,
	orders repository.OrderRepository,
	publisher EventPublisher,
	log logger.Logger,
	ttl time.Duration,
) CartService {
	if ttl <= 0 {
		ttl = defaultCartTTL
	}
	return &cartService{
		carts:     carts,
		listings:  listings,
		orders:    orders,
		publisher: publisher,
		log:       log,
		ttl:       ttl,
	}
}

func toCartView(c *entity.Cart) *CartView {
	return &CartView{ID: c.ID, Items: c.Items, Total: c.Total()}
}

func validCartID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return entity.NewValidationError("invalid cart id")
	}
	return nil
}

func (s *cartService) Create(ctx context.Context) (*CartView, error) {
	c := entity.NewCart(uuid.NewString())
	if err := s.carts.Save(ctx, c, s.ttl); err != nil {
		return nil, fmt.Errorf("could not create cart: %w", err)
	}
	return toCartView(c), nil
}

func (s *cartService) Get(ctx context.Context, cartID string) (*CartView, error) {
	if err := validCartID(cartID); err != nil {
		return nil, err
	}
	c, err := s.carts.Get(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("could not retrieve cart: %w", err)
	}
	return toCartView(c), nil
}

func (s *cartService) AddItem(ctx context.Context, cartID, listingID string) (*CartView, error) {
	if err := validCartID(cartID); err != nil {
		return nil, err
	}
	c, err := s.carts.Get(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("could not retrieve cart: %w", err)
	}
	listing, err := s.listings.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if err := c.Add(*listing); err != nil {
		return nil, fmt.Errorf("%s: %w", listing.Name, err)
	}
	if err := s.carts.Save(ctx, c, s.ttl); err != nil {
		return nil, fmt.Errorf("could not save cart: %w", err)
	}
	s.log.Debugf("Cart %s: added %s", cartID, listing.Name)
	return toCartView(c), nil
}

func (s *cartService) RemoveItem(ctx context.Context, cartID, listingID string) (*CartView, error) {
	if err := validCartID(cartID); err != nil {
		return nil, err
	}
	c, err := s.carts.Get(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("could not retrieve cart: %w", err)
	}
	if err := c.Remove(listingID); err != nil {
		return nil, err
	}
	if err := s.carts.Save(ctx, c, s.ttl); err != nil {
		return nil, fmt.Errorf("could not save cart: %w", err)
	}
	return toCartView(c), nil
}

// Checkout places one pending order per cart item at the listing's current
// price and empties the cart. Every item must still be available.
func (s *cartService) Checkout(ctx context.Context, cartID string, in CheckoutInput) (*CheckoutResult, error) {
	if err := validCartID(cartID); err != nil {
		return nil, err
	}
	c, err := s.carts.Get(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("could not retrieve cart: %w", err)
	}
	if len(c.Items) == 0 {
		return nil, fmt.Errorf("%w: %w", entity.ErrValidation, ErrEmptyCart)
	}

	pending := make([]*entity.Order, 0, len(c.Items))
	for _, item := range c.Items {
		listing, err := s.listings.GetByID(ctx, item.ListingID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", item.Name, err)
		}
		if !listing.IsAvailable() {
			return nil, fmt.Errorf("%s: %w", listing.Name, entity.ErrNotAvailable)
		}
		order, err := entity.NewOrder(listing.ID, in.BuyerName, in.BuyerEmail, listing.Price, strings.TrimSpace(in.Notes))
		if err != nil {
			return nil, err
		}
		order.DomainName = listing.Name
		pending = append(pending, order)
	}

	result := &CheckoutResult{Orders: make([]entity.Order, 0, len(pending))}
	for _, order := range pending {
		id, err := s.orders.Create(ctx, order)
		if err != nil {
			return result, fmt.Errorf("failed to create order for %s: %w", order.DomainName, err)
		}
		order.ID = id
		result.Orders = append(result.Orders, *order)
		result.Total += order.Price
		publishEvent(ctx, s.publisher, s.log, SubjectOrderCreated, OrderCreatedEvent{
			OrderID:    id,
			DomainID:   order.DomainID,
			DomainName: order.DomainName,
			Price:      order.Price,
			Source:     OrderSourceCheckout,
			CreatedAt:  order.CreatedAt,
		})
	}

	if err := s.carts.Delete(ctx, cartID); err != nil {
		s.log.Warnf("Checkout of cart %s succeeded but the cart was not cleared: %v", cartID, err)
	}
	s.log.Infof("Cart %s checked out: %d orders, total %.2f", cartID, len(result.Orders), result.Total)
	return result, nil
}
