package redis

import (
	"context"
	"fmt"
	"time"

	"pet-world-gateway/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

var addressBookKey = key("contracts")

// AddressCache implements ports.AddressCache as a single Redis hash keyed by
// contract name.
type AddressCache struct {
	client *goredis.Client
	ttl    time.Duration
}

// NewAddressCache creates a Redis-backed address cache. A zero ttl keeps
// entries until invalidated.
func NewAddressCache(client *goredis.Client, ttl time.Duration) *AddressCache {
	return &AddressCache{client: client, ttl: ttl}
}

// Get returns the cached address book, or nil on a miss.
func (c *AddressCache) Get(ctx context.Context) (domain.ContractAddresses, error) {
	fields, err := c.client.HGetAll(ctx, addressBookKey).Result()
	if err != nil {
		return nil, fmt.Errorf("redis address cache get: %w", err)
	}
	if len(fields) == 0 {
		return nil, nil
	}

	addrs := make(domain.ContractAddresses, len(fields))
	for k, v := range fields {
		name, err := domain.ParseContractName(k)
		if err != nil {
			continue
		}
		addrs[name] = v
	}
	return addrs, nil
}

// Set replaces the cached book.
func (c *AddressCache) Set(ctx context.Context, addrs domain.ContractAddresses) error {
	values := make(map[string]any, len(addrs))
	for name, addr := range addrs {
		values[string(name)] = addr
	}

	pipe := c.client.TxPipeline()
	pipe.Del(ctx, addressBookKey)
	if len(values) > 0 {
		pipe.HSet(ctx, addressBookKey, values)
		if c.ttl > 0 {
			pipe.Expire(ctx, addressBookKey, c.ttl)
		}
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis address cache set: %w", err)
	}
	return nil
}

// Invalidate drops the cached book.
func (c *AddressCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, addressBookKey).Err(); err != nil {
		return fmt.Errorf("redis address cache invalidate: %w", err)
	}
	return nil
}
