package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/repository"
)

type OfferInput struct {
	BuyerName   string `json:"full_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	OfferAmount Amount `json:"offer_amount"`
	Message     string `json:"message"`
}

type LeadService interface {
	MakeOffer(ctx context.Context, domainName string, in OfferInput) (*entity.Lead, error)
	Accept(ctx context.Context, leadID string) (*entity.Order, error)
	List(ctx context.Context) ([]entity.Lead, error)
}

type leadService struct {
	leads     repository.LeadRepository
	listings  repository.ListingRepository
	orders    repository.OrderRepository
	publisher EventPublisher
	notifier  NotificationService
	log       logger.Logger
}

func NewLeadService(
	leads repository.LeadRepository,
	listings repository.ListingRepository,
	orders repository.OrderRepository,
	publisher EventPublisher,
	notifier NotificationService,
	log logger.Logger,
) LeadService {
	return &leadService{
		leads:     leads,
		listings:  listings,
		orders:    orders,
		publisher: publisher,
		notifier:  notifier,
		log:       log,
	}
}

func (s *leadService) MakeOffer(ctx context.Context, domainName string, in OfferInput) (*entity.Lead, error) {
	listing, err := s.listings.GetByName(ctx, domainName)
	if err != nil {
		return nil, err
	}

	lead, err := entity.NewLead(listing.ID, in.BuyerName, in.Email, in.Phone, float64(in.OfferAmount), in.Message)
	if err != nil {
		return nil, err
	}
	lead.DomainName = listing.Name

	id, err := s.leads.Create(ctx, lead)
	if err != nil {
		return nil, fmt.Errorf("failed to save offer: %w", err)
	}
	lead.ID = id
	s.log.Infof("Offer received: LeadID=%s, Domain=%s, Amount=%.2f", id, lead.DomainName, lead.OfferAmount)

	publishEvent(ctx, s.publisher, s.log, SubjectLeadCreated, LeadCreatedEvent{
		LeadID:      id,
		DomainID:    lead.DomainID,
		DomainName:  lead.DomainName,
		OfferAmount: lead.OfferAmount,
		CreatedAt:   lead.CreatedAt,
	})
	if s.notifier != nil {
		s.notifier.LeadCreated(ctx, lead)
	}
	return lead, nil
}

// Accept converts the lead into a pending order at the offered amount.
func (s *leadService) Accept(ctx context.Context, leadID string) (*entity.Order, error) {
	lead, err := s.leads.GetByID(ctx, leadID)
	if err != nil {
		return nil, err
	}
	if lead.Status == entity.LeadStatusAccepted {
		return nil, entity.ErrAlreadyAccepted
	}

	order, err := entity.NewOrder(lead.DomainID, lead.BuyerName, lead.Email, lead.OfferAmount, lead.ConversionNotes())
	if err != nil {
		return nil, err
	}
	order.DomainName = lead.DomainName

	id, err := s.orders.Create(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("failed to create order from offer: %w", err)
	}
	order.ID = id

	if err := s.leads.UpdateStatus(ctx, lead.ID, entity.LeadStatusAccepted); err != nil {
		s.log.Errorf("Order %s created but lead %s not marked accepted: %v", id, lead.ID, err)
		return order, fmt.Errorf("failed to mark offer accepted: %w", err)
	}

	s.log.Infof("Offer accepted: LeadID=%s, OrderID=%s", lead.ID, id)
	publishEvent(ctx, s.publisher, s.log, SubjectOrderCreated, OrderCreatedEvent{
		OrderID:    id,
		DomainID:   order.DomainID,
		DomainName: order.DomainName,
		Price:      order.Price,
		Source:     OrderSourceOffer,
		CreatedAt:  time.Now().UTC(),
	})
	return order, nil
}

func (s *leadService) List(ctx context.Context) ([]entity.Lead, error) {
	return s.leads.List(ctx)
}
