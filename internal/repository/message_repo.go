package repository

import (
	"context"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
)

type MessageRepository interface {
	Create(ctx context.Context, m *entity.ContactMessage) (string, error)
	List(ctx context.Context, status entity.MessageStatus) ([]entity.ContactMessage, error)
	UpdateStatus(ctx context.Context, id string, status entity.MessageStatus) error
	Delete(ctx context.Context, id string) error
}
