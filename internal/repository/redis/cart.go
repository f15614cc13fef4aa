// Package redis persists cart snapshots. The cart itself is client-owned
// state; this store only mirrors it so a session can restore its cart across
// devices the way browser local storage restores it across visits.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/pkg/database"
)

// keyPrefix matches the storage key the web client uses for its local copy.
const keyPrefix = "cart-storage:"

// CartStore saves and restores cart snapshots keyed by session ID.
type CartStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCartStore creates a Redis-backed cart snapshot store.
func NewCartStore(client *redis.Client, ttl time.Duration) *CartStore {
	return &CartStore{
		client: client,
		ttl:    ttl,
	}
}

// Connect dials Redis and returns a snapshot store over the new connection.
func Connect(ctx context.Context, cfg database.RedisConfig, ttl time.Duration) (*CartStore, error) {
	client, err := database.NewRedisClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect cart store: %w", err)
	}
	return NewCartStore(client, ttl), nil
}

// Close releases the underlying Redis connection.
func (s *CartStore) Close() error {
	return s.client.Close()
}

// Load restores the cart snapshot for a session. A session with no snapshot
// gets an empty cart, mirroring a fresh browser session.
func (s *CartStore) Load(ctx context.Context, sessionID string) (*domain.Cart, error) {
	data, err := s.client.Get(ctx, keyPrefix+sessionID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return &domain.Cart{}, nil
		}
		return nil, fmt.Errorf("redis get cart: %w", err)
	}

	var cart domain.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, fmt.Errorf("unmarshal cart: %w", err)
	}
	return &cart, nil
}

// Save stores the cart snapshot with the configured TTL.
func (s *CartStore) Save(ctx context.Context, sessionID string, cart *domain.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}

	if err := s.client.Set(ctx, keyPrefix+sessionID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set cart: %w", err)
	}
	return nil
}

// Delete drops the snapshot for a session.
func (s *CartStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, keyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("redis del cart: %w", err)
	}
	return nil
}
