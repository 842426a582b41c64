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

const cartKeyPrefix = "cart:"

type cartRepository struct {
	client redis.Cmdable
}

func NewCartRepository(client redis.Cmdable) repository.CartRepository {
	return &cartRepository{client: client}
}

func cartKey(id string) string {
	return cartKeyPrefix + id
}

func (r *cartRepository) Get(ctx context.Context, id string) (*entity.Cart, error) {
	val, err := r.client.Get(ctx, cartKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return entity.NewCart(id), nil
		}
		return nil, fmt.Errorf("failed to get cart %s from redis: %w", id, err)
	}

	var cart entity.Cart
	if err := json.Unmarshal(val, &cart); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart %s: %w", id, err)
	}
	return &cart, nil
}

func (r *cartRepository) Save(ctx context.Context, cart *entity.Cart, ttl time.Duration) error {
	if cart == nil || cart.ID == "" {
		return errors.New("cannot save nil cart or cart with empty ID")
	}
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to marshal cart %s: %w", cart.ID, err)
	}
	if err := r.client.Set(ctx, cartKey(cart.ID), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart %s to redis: %w", cart.ID, err)
	}
	return nil
}

func (r *cartRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, cartKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete cart %s from redis: %w", id, err)
	}
	return nil
}
