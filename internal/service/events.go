package service

import (
	"context"
	"time"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
)

const (
	SubjectLeadCreated        = "storefront.lead.created"
	SubjectOrderCreated       = "storefront.order.created"
	SubjectOrderStatusUpdated = "storefront.order.status_updated"
	SubjectTransferCreated    = "storefront.transfer.created"
	SubjectContactCreated     = "storefront.contact.created"
	SubjectListingChanged     = "storefront.listing.changed"
)

type EventPublisher interface {
	Publish(ctx context.Context, subject string, event interface{}) error
}

type LeadCreatedEvent struct {
	LeadID      string    `json:"lead_id"`
	DomainID    string    `json:"domain_id"`
	DomainName  string    `json:"domain_name"`
	OfferAmount float64   `json:"offer_amount"`
	CreatedAt   time.Time `json:"created_at"`
}

type OrderCreatedEvent struct {
	OrderID    string    `json:"order_id"`
	DomainID   string    `json:"domain_id"`
	DomainName string    `json:"domain_name"`
	Price      float64   `json:"price"`
	Source     string    `json:"source"`
	CreatedAt  time.Time `json:"created_at"`
}

type OrderStatusUpdatedEvent struct {
	OrderID   string    `json:"order_id"`
	OldStatus string    `json:"old_status"`
	NewStatus string    `json:"new_status"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TransferCreatedEvent struct {
	TransferID string    `json:"transfer_id"`
	DomainName string    `json:"domain_name"`
	HasProof   bool      `json:"has_proof"`
	CreatedAt  time.Time `json:"created_at"`
}

type ContactCreatedEvent struct {
	MessageID string    `json:"message_id"`
	Subject   string    `json:"subject"`
	CreatedAt time.Time `json:"created_at"`
}

type ListingChangedEvent struct {
	Action     string    `json:"action"`
	ListingIDs []string  `json:"listing_ids,omitempty"`
	Count      int       `json:"count"`
	ChangedAt  time.Time `json:"changed_at"`
}

// Order sources reported on OrderCreatedEvent.
const (
	OrderSourceAdmin    = "admin"
	OrderSourceOffer    = "offer"
	OrderSourceCheckout = "checkout"
)

type nopPublisher struct{}

// NewNopPublisher returns a publisher that drops every event, for tools that run without NATS.
func NewNopPublisher() EventPublisher {
	return nopPublisher{}
}

func (nopPublisher) Publish(context.Context, string, interface{}) error { return nil }

// publishEvent never fails the calling operation; the write it reports has already happened.
func publishEvent(ctx context.Context, p EventPublisher, log logger.Logger, subject string, event interface{}) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, subject, event); err != nil {
		log.Warnf("Failed to publish %s event: %v", subject, err)
	}
}
