package entity

import (
	"regexp"
	"strings"
	"time"
)

type LeadStatus string

const (
	LeadStatusNew      LeadStatus = "new"
	LeadStatusAccepted LeadStatus = "accepted"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

// Lead is a buyer's offer on a listed domain.
type Lead struct {
	ID          string     `json:"id"`
	DomainID    string     `json:"domain_id"`
	DomainName  string     `json:"domain_name,omitempty"`
	BuyerName   string     `json:"buyer_name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	OfferAmount float64    `json:"offer_amount"`
	Message     string     `json:"message"`
	Status      LeadStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
}

func NewLead(domainID, buyerName, email, phone string, amount float64, message string) (*Lead, error) {
	l := &Lead{
		DomainID:    strings.TrimSpace(domainID),
		BuyerName:   strings.TrimSpace(buyerName),
		Email:       strings.TrimSpace(email),
		Phone:       strings.TrimSpace(phone),
		OfferAmount: SanitizePrice(amount),
		Message:     strings.TrimSpace(message),
		Status:      LeadStatusNew,
		CreatedAt:   time.Now().UTC(),
	}
	switch {
	case l.DomainID == "":
		return nil, NewValidationError("domain is required")
	case l.BuyerName == "":
		return nil, NewValidationError("full name is required")
	case !IsValidEmail(l.Email):
		return nil, NewValidationError("a valid email address is required")
	case l.Phone == "":
		return nil, NewValidationError("phone number is required")
	case l.OfferAmount <= 0:
		return nil, NewValidationError("a valid offer amount is required")
	case l.Message == "":
		return nil, NewValidationError("message is required")
	}
	return l, nil
}

// ConversionNotes is the order note recorded when the lead becomes an order.
func (l *Lead) ConversionNotes() string {
	msg := l.Message
	if msg == "" {
		msg = "N/A"
	}
	return "Converted from offer. Message: " + msg
}
