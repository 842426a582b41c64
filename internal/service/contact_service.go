package service

import (
	"context"
	"fmt"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/repository"
)

type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type ContactService interface {
	Submit(ctx context.Context, in ContactInput) (*entity.ContactMessage, error)
	List(ctx context.Context, status entity.MessageStatus) ([]entity.ContactMessage, error)
	SetStatus(ctx context.Context, id string, status entity.MessageStatus) error
	Delete(ctx context.Context, id string) error
}

type contactService struct {
	messages  repository.MessageRepository
	publisher EventPublisher
	notifier  NotificationService
	log       logger.Logger
}

func NewContactService(messages repository.MessageRepository, publisher EventPublisher, notifier NotificationService, log logger.Logger) ContactService {
	return &contactService{messages: messages, publisher: publisher, notifier: notifier, log: log}
}

func (s *contactService) Submit(ctx context.Context, in ContactInput) (*entity.ContactMessage, error) {
	m, err := entity.NewContactMessage(in.Name, in.Email, in.Subject, in.Message)
	if err != nil {
		return nil, err
	}
	id, err := s.messages.Create(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("failed to save contact message: %w", err)
	}
	m.ID = id
	s.log.Infof("Contact message received: ID=%s", id)

	publishEvent(ctx, s.publisher, s.log, SubjectContactCreated, ContactCreatedEvent{
		MessageID: id,
		Subject:   m.Subject,
		CreatedAt: m.CreatedAt,
	})
	if s.notifier != nil {
		s.notifier.ContactReceived(ctx, m)
	}
	return m, nil
}

func (s *contactService) List(ctx context.Context, status entity.MessageStatus) ([]entity.ContactMessage, error) {
	if status != "" && !status.IsValid() {
		return nil, fmt.Errorf("%w: message status %q", entity.ErrInvalidStatus, status)
	}
	return s.messages.List(ctx, status)
}

func (s *contactService) SetStatus(ctx context.Context, id string, status entity.MessageStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: message status %q", entity.ErrInvalidStatus, status)
	}
	return s.messages.UpdateStatus(ctx, id, status)
}

func (s *contactService) Delete(ctx context.Context, id string) error {
	return s.messages.Delete(ctx, id)
}
