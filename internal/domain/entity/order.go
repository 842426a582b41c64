package entity

import (
	"fmt"
	"strings"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID         string      `json:"id"`
	DomainID   string      `json:"domain_id"`
	DomainName string      `json:"domain_name,omitempty"`
	BuyerName  string      `json:"buyer_name"`
	BuyerEmail string      `json:"buyer_email"`
	Price      float64     `json:"price"`
	Status     OrderStatus `json:"status"`
	Notes      string      `json:"notes,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
	Version    int64       `json:"version"`
}

func NewOrder(domainID, buyerName, buyerEmail string, price float64, notes string) (*Order, error) {
	domainID = strings.TrimSpace(domainID)
	if domainID == "" {
		return nil, NewValidationError("domain is required")
	}
	if strings.TrimSpace(buyerName) == "" {
		return nil, NewValidationError("buyer name is required")
	}
	if !IsValidEmail(buyerEmail) {
		return nil, NewValidationError("a valid buyer email is required")
	}
	price = SanitizePrice(price)
	if price < 0 {
		return nil, NewValidationError("price must not be negative")
	}
	now := time.Now().UTC()
	return &Order{
		DomainID:   domainID,
		BuyerName:  strings.TrimSpace(buyerName),
		BuyerEmail: strings.TrimSpace(buyerEmail),
		Price:      price,
		Status:     OrderStatusPending,
		Notes:      notes,
		CreatedAt:  now,
		UpdatedAt:  now,
		Version:    1,
	}, nil
}

func (o *Order) SetStatus(status OrderStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: order status %q", ErrInvalidStatus, status)
	}
	o.Status = status
	o.UpdatedAt = time.Now().UTC()
	return nil
}
