// Package redis implements the cart slot on a Redis key, for running the
// simulator against shared infrastructure instead of a local file.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/utafrali/cartsim/internal/domain"
)

const keyPrefix = "cart:"

// CartRepository implements repository.CartRepository using Redis.
type CartRepository struct {
	client *redis.Client
	slot   string
	ttl    time.Duration
	logger *slog.Logger
}

// NewCartRepository creates a Redis-backed cart repository for the given
// slot name. A zero ttl persists the slot without expiry.
func NewCartRepository(client *redis.Client, slot string, ttl time.Duration, logger *slog.Logger) *CartRepository {
	return &CartRepository{
		client: client,
		slot:   slot,
		ttl:    ttl,
		logger: logger,
	}
}

// Load retrieves the cart from Redis. A missing key or malformed payload
// degrades to an empty cart.
func (r *CartRepository) Load(ctx context.Context) (*domain.Cart, error) {
	key := keyPrefix + r.slot

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return &domain.Cart{Lines: []domain.CartLine{}}, nil
		}
		return nil, fmt.Errorf("redis get cart: %w", err)
	}

	var lines []domain.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		r.logger.Warn("cart slot is malformed, starting empty",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return &domain.Cart{Lines: []domain.CartLine{}}, nil
	}

	return &domain.Cart{Lines: lines}, nil
}

// Save persists the cart lines to Redis with the configured TTL.
func (r *CartRepository) Save(ctx context.Context, cart *domain.Cart) error {
	key := keyPrefix + r.slot

	lines := cart.Lines
	if lines == nil {
		lines = []domain.CartLine{}
	}

	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}

	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set cart: %w", err)
	}

	return nil
}
