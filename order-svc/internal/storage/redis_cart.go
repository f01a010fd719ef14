package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"restaurant-saas/order-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisCartStore keeps each session cart as a JSON value that expires TTL
// after the last write.
type RedisCartStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCartStore(client *redis.Client, ttl time.Duration) *RedisCartStore {
	return &RedisCartStore{Client: client, TTL: ttl}
}

func (s *RedisCartStore) CartKey(sessionID string) string {
	return "cart:" + sessionID
}

// Load returns an empty cart for unknown sessions.
func (s *RedisCartStore) Load(ctx context.Context, sessionID string) (*domain.Cart, error) {
	raw, err := s.Client.Get(ctx, s.CartKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return &domain.Cart{SessionID: sessionID, Items: []domain.CartItem{}}, nil
	}
	if err != nil {
		return nil, err
	}

	var cart domain.Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		return nil, err
	}
	cart.SessionID = sessionID
	return &cart, nil
}

func (s *RedisCartStore) Save(ctx context.Context, cart *domain.Cart) error {
	payload, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, s.CartKey(cart.SessionID), payload, s.TTL).Err()
}

func (s *RedisCartStore) Delete(ctx context.Context, sessionID string) error {
	return s.Client.Del(ctx, s.CartKey(sessionID)).Err()
}
