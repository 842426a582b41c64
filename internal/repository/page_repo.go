package repository

import (
	"context"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
)

type PageRepository interface {
	Create(ctx context.Context, p *entity.PageSEO) (string, error)
	Update(ctx context.Context, p *entity.PageSEO) error
	GetBySlug(ctx context.Context, slug string) (*entity.PageSEO, error)
	List(ctx context.Context) ([]entity.PageSEO, error)
	Delete(ctx context.Context, id string) error
}
