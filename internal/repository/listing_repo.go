package repository

import (
	"context"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
)

// ListingQuery narrows a fetch at the storage level; zero values mean no restriction.
type ListingQuery struct {
	Status       entity.ListingStatus
	TLD          string
	FeaturedOnly bool
	SortBy       string
	SortDesc     bool
	Limit        int
}

type ListingRepository interface {
	Create(ctx context.Context, l *entity.Listing) (string, error)
	InsertMany(ctx context.Context, ls []entity.Listing) (int, error)
	GetByID(ctx context.Context, id string) (*entity.Listing, error)
	GetByName(ctx context.Context, name string) (*entity.Listing, error)
	Update(ctx context.Context, l *entity.Listing) error
	Delete(ctx context.Context, id string) error
	// FindAll returns every listing, newest first.
	FindAll(ctx context.Context) ([]entity.Listing, error)
	Find(ctx context.Context, q ListingQuery) ([]entity.Listing, error)
	ExistingNames(ctx context.Context) (map[string]struct{}, error)
	Count(ctx context.Context) (int64, error)
}

// CatalogCache holds the full listing snapshot the catalog engine filters.
type CatalogCache interface {
	GetAll(ctx context.Context) ([]entity.Listing, error)
	SetAll(ctx context.Context, listings []entity.Listing) error
	Invalidate(ctx context.Context) error
}
