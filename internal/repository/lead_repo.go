package repository

import (
	"context"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
)

type LeadRepository interface {
	Create(ctx context.Context, l *entity.Lead) (string, error)
	GetByID(ctx context.Context, id string) (*entity.Lead, error)
	List(ctx context.Context) ([]entity.Lead, error)
	Recent(ctx context.Context, limit int) ([]entity.Lead, error)
	UpdateStatus(ctx context.Context, id string, status entity.LeadStatus) error
	Count(ctx context.Context) (int64, error)
}
