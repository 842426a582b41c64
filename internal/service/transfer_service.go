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
	"github.com/gabriel-vasile/mimetype"
)

const (
	paymentProofPrefix          = "payment_proofs"
	defaultMaxPaymentProofBytes = 10 << 20
)

var (
	ErrProofTooLarge   = errors.New("payment proof exceeds the size limit")
	ErrProofNotAllowed = errors.New("payment proof must be an image or a PDF")
)

type ObjectStorage interface {
	Upload(ctx context.Context, prefix, fileName, contentType string, data []byte) (string, error)
}

type TransferInput struct {
	DomainName string `json:"domain_name"`
	BuyerName  string `json:"full_name"`
	BuyerEmail string `json:"email"`
	BuyerPhone string `json:"phone"`
}

// Attachment is an uploaded file as received from the client.
type Attachment struct {
	FileName string
	Data     []byte
}

type TransferService interface {
	Submit(ctx context.Context, in TransferInput, proof *Attachment) (*entity.TransferRequest, error)
	List(ctx context.Context, status entity.TransferStatus) ([]entity.TransferRequest, error)
	UpdateStatus(ctx context.Context, id string, status entity.TransferStatus, notes string) (*entity.TransferRequest, error)
	Delete(ctx context.Context, id string) error
}

type transferService struct {
	transfers repository.TransferRepository
	storage   ObjectStorage
	publisher EventPublisher
	notifier  NotificationService
	log       logger.Logger
	maxBytes  int64
}

func NewTransferService(
	transfers repository.TransferRepository,
	storage ObjectStorage,
	publisher EventPublisher,
	notifier NotificationService,
	log logger.Logger,
	maxProofBytes int64,
) TransferService {
	if maxProofBytes <= 0 {
		maxProofBytes = defaultMaxPaymentProofBytes
	}
	return &transferService{
		transfers: transfers,
		storage:   storage,
		publisher: publisher,
		notifier:  notifier,
		log:       log,
		maxBytes:  maxProofBytes,
	}
}

// CheckPaymentProof enforces the size limit and sniffs the content type from the bytes.
func CheckPaymentProof(data []byte, maxBytes int64) (string, error) {
	if int64(len(data)) > maxBytes {
		return "", fmt.Errorf("%w: %w (%d MB max)", entity.ErrValidation, ErrProofTooLarge, maxBytes>>20)
	}
	mt := mimetype.Detect(data)
	if strings.HasPrefix(mt.String(), "image/") || mt.Is("application/pdf") {
		return mt.String(), nil
	}
	return "", fmt.Errorf("%w: %w, got %s", entity.ErrValidation, ErrProofNotAllowed, mt.String())
}

func (s *transferService) Submit(ctx context.Context, in TransferInput, proof *Attachment) (*entity.TransferRequest, error) {
	t, err := entity.NewTransferRequest(in.DomainName, in.BuyerName, in.BuyerEmail, in.BuyerPhone)
	if err != nil {
		return nil, err
	}

	if proof != nil && len(proof.Data) > 0 {
		contentType, err := CheckPaymentProof(proof.Data, s.maxBytes)
		if err != nil {
			return nil, err
		}
		url, err := s.storage.Upload(ctx, paymentProofPrefix, proof.FileName, contentType, proof.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to store payment proof: %w", err)
		}
		t.PaymentScreenshotURL = url
	}

	id, err := s.transfers.Create(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("failed to save transfer request: %w", err)
	}
	t.ID = id
	s.log.Infof("Transfer request submitted: ID=%s, Domain=%s", id, t.DomainName)

	publishEvent(ctx, s.publisher, s.log, SubjectTransferCreated, TransferCreatedEvent{
		TransferID: id,
		DomainName: t.DomainName,
		HasProof:   t.PaymentScreenshotURL != "",
		CreatedAt:  t.CreatedAt,
	})
	if s.notifier != nil {
		s.notifier.TransferSubmitted(ctx, t)
	}
	return t, nil
}

func (s *transferService) List(ctx context.Context, status entity.TransferStatus) ([]entity.TransferRequest, error) {
	if status != "" && !status.IsValid() {
		return nil, fmt.Errorf("%w: transfer status %q", entity.ErrInvalidStatus, status)
	}
	return s.transfers.List(ctx, status)
}

func (s *transferService) UpdateStatus(ctx context.Context, id string, status entity.TransferStatus, notes string) (*entity.TransferRequest, error) {
	t, err := s.transfers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := t.SetStatus(status, strings.TrimSpace(notes)); err != nil {
		return nil, err
	}
	if err := s.transfers.UpdateStatus(ctx, id, t.Status, t.AdminNotes); err != nil {
		return nil, err
	}
	t.UpdatedAt = time.Now().UTC()
	s.log.Infof("Transfer %s status set to %s", id, status)
	return t, nil
}

func (s *transferService) Delete(ctx context.Context, id string) error {
	return s.transfers.Delete(ctx, id)
}
