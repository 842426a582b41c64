package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/repository"
	"github.com/redis/go-redis/v9"
)

const catalogSnapshotKey = "catalog:all"

type catalogCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewCatalogCache(client redis.Cmdable, ttl time.Duration) repository.CatalogCache {
	return &catalogCache{client: client, ttl: ttl}
}

// GetAll returns repository.ErrCacheMiss when no snapshot is stored.
func (c *catalogCache) GetAll(ctx context.Context) ([]entity.Listing, error) {
	data, err := c.client.Get(ctx, catalogSnapshotKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to read catalog snapshot: %w", err)
	}
	var listings []entity.Listing
	if err := json.Unmarshal(data, &listings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog snapshot: %w", err)
	}
	return listings, nil
}

func (c *catalogCache) SetAll(ctx context.Context, listings []entity.Listing) error {
	data, err := json.Marshal(listings)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog snapshot: %w", err)
	}
	if err := c.client.Set(ctx, catalogSnapshotKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write catalog snapshot: %w", err)
	}
	return nil
}

func (c *catalogCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, catalogSnapshotKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate catalog snapshot: %w", err)
	}
	return nil
}
