package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// IdempotencyCache implements ports.IdempotencyCache. Entries hold the
// response of an accepted write intent, keyed by session, action and client key.
type IdempotencyCache struct {
	client *goredis.Client
}

// NewIdempotencyCache creates a Redis-backed idempotency cache.
func NewIdempotencyCache(client *goredis.Client) *IdempotencyCache {
	return &IdempotencyCache{client: client}
}

// Get returns the stored response, or nil on a miss.
func (c *IdempotencyCache) Get(ctx context.Context, k string) ([]byte, error) {
	val, err := c.client.Get(ctx, key("idempotency", k)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading idempotent response: %w", err)
	}
	return val, nil
}

// Set stores a response until ttl elapses. An existing entry is kept, so two
// racing submissions with one key replay whichever finished first.
func (c *IdempotencyCache) Set(ctx context.Context, k string, value []byte, ttl time.Duration) error {
	if err := c.client.SetNX(ctx, key("idempotency", k), value, ttl).Err(); err != nil {
		return fmt.Errorf("storing idempotent response: %w", err)
	}
	return nil
}
