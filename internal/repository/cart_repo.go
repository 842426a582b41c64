package repository

import (
	"context"
	"time"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
)

type CartRepository interface {
	// Get returns an empty cart when none is stored under id.
	Get(ctx context.Context, id string) (*entity.Cart, error)
	Save(ctx context.Context, cart *entity.Cart, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}
