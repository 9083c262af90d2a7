// internal/store/redisstore/cart.go
package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/velvet-vogue/storefront-backend/internal/domain/cart"
)

// CartStore keeps session carts in Redis as JSON values with a sliding
// TTL, one key per session
type CartStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCartStore creates a Redis-backed cart store
func NewCartStore(client *redis.Client, ttl time.Duration) *CartStore {
	return &CartStore{client: client, ttl: ttl}
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:session:%s", sessionID)
}

// Load returns the cart for a session, or nil when none exists
func (s *CartStore) Load(ctx context.Context, sessionID string) (*cart.Cart, error) {
	data, err := s.client.Get(ctx, cartKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	var c cart.Cart
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Save stores the full cart and refreshes its expiry
func (s *CartStore) Save(ctx context.Context, c *cart.Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, cartKey(c.SessionID), data, s.ttl).Err()
}

// Delete removes the cart for a session
func (s *CartStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, cartKey(sessionID)).Err()
}
