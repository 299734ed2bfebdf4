package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront_checkout/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// CheckoutStateRedisRepository stores draft snapshots in Redis. Every write
// refreshes the key TTL so abandoned drafts expire on their own.
type CheckoutStateRedisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

var _ interfaces.ICheckoutStateStorage = (*CheckoutStateRedisRepository)(nil)

// NewCheckoutStateRedisRepository keeps keys forever when ttl is zero.
func NewCheckoutStateRedisRepository(client *redis.Client, ttl time.Duration) *CheckoutStateRedisRepository {
	return &CheckoutStateRedisRepository{client: client, ttl: ttl}
}

func (r *CheckoutStateRedisRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}
	return data, true, nil
}

func (r *CheckoutStateRedisRepository) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, key, value, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (r *CheckoutStateRedisRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}
