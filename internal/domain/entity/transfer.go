package entity

import (
	"fmt"
	"strings"
	"time"
)

type TransferStatus string

const (
	TransferStatusPending    TransferStatus = "pending_transfer"
	TransferStatusProcessing TransferStatus = "processing"
	TransferStatusCompleted  TransferStatus = "completed"
	TransferStatusRejected   TransferStatus = "rejected"
	TransferStatusCancelled  TransferStatus = "cancelled"
)

const NewTransferNote = "New purchase request via transfer form."

func (s TransferStatus) IsValid() bool {
	switch s {
	case TransferStatusPending, TransferStatusProcessing, TransferStatusCompleted,
		TransferStatusRejected, TransferStatusCancelled:
		return true
	}
	return false
}

// TransferRequest is a purchase request paid by bank transfer, optionally with a payment proof.
type TransferRequest struct {
	ID                   string         `json:"id"`
	DomainName           string         `json:"domain_name"`
	BuyerName            string         `json:"buyer_name"`
	BuyerEmail           string         `json:"buyer_email"`
	BuyerPhone           string         `json:"buyer_phone"`
	PaymentScreenshotURL string         `json:"payment_screenshot_url,omitempty"`
	Status               TransferStatus `json:"status"`
	AdminNotes           string         `json:"admin_notes,omitempty"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
}

func NewTransferRequest(domainName, buyerName, buyerEmail, buyerPhone string) (*TransferRequest, error) {
	t := &TransferRequest{
		DomainName: strings.ToLower(strings.TrimSpace(domainName)),
		BuyerName:  strings.TrimSpace(buyerName),
		BuyerEmail: strings.TrimSpace(buyerEmail),
		BuyerPhone: strings.TrimSpace(buyerPhone),
		Status:     TransferStatusPending,
		AdminNotes: NewTransferNote,
	}
	switch {
	case t.DomainName == "":
		return nil, NewValidationError("domain name is required")
	case t.BuyerName == "":
		return nil, NewValidationError("full name is required")
	case !IsValidEmail(t.BuyerEmail):
		return nil, NewValidationError("a valid email address is required")
	case t.BuyerPhone == "":
		return nil, NewValidationError("phone number is required")
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	return t, nil
}

func (t *TransferRequest) SetStatus(status TransferStatus, notes string) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: transfer status %q", ErrInvalidStatus, status)
	}
	t.Status = status
	t.AdminNotes = notes
	t.UpdatedAt = time.Now().UTC()
	return nil
}
