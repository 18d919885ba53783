// Package selection persists a superadmin's last chosen working company in
// Redis. The stored value is only a convenience hint: it is fed back into
// scope resolution as a requested company id and re-verified against the
// company directory on every request.
package selection

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "selection:company:"

// Store remembers the working company per principal
type Store interface {
	// Get returns the remembered company id for a principal, or "" when none
	// is remembered
	Get(ctx context.Context, principalID string) (string, error)
	// Set remembers a company id for a principal
	Set(ctx context.Context, principalID, companyID string) error
	// Clear forgets the remembered company for a principal
	Clear(ctx context.Context, principalID string) error
}

// RedisStore implements Store on Redis with a fixed TTL per entry
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a RedisStore
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// Get returns the remembered company id for a principal, or "" when none is
// remembered
func (s *RedisStore) Get(ctx context.Context, principalID string) (string, error) {
	val, err := s.client.Get(ctx, keyPrefix+principalID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read remembered selection: %w", err)
	}
	return val, nil
}

// Set remembers a company id for a principal
func (s *RedisStore) Set(ctx context.Context, principalID, companyID string) error {
	if err := s.client.Set(ctx, keyPrefix+principalID, companyID, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store remembered selection: %w", err)
	}
	return nil
}

// Clear forgets the remembered company for a principal
func (s *RedisStore) Clear(ctx context.Context, principalID string) error {
	if err := s.client.Del(ctx, keyPrefix+principalID).Err(); err != nil {
		return fmt.Errorf("failed to clear remembered selection: %w", err)
	}
	return nil
}
