package ports

import (
	"context"
	"time"

	"pet-world-gateway/internal/core/domain"
)

// AddressRepository is the durable contract address book.
type AddressRepository interface {
	List(ctx context.Context) (domain.ContractAddresses, error)
	Upsert(ctx context.Context, name domain.ContractName, address string) error
}

// AddressCache is the fast-path copy of the address book.
// Get returns nil, nil on a cache miss.
type AddressCache interface {
	Get(ctx context.Context) (domain.ContractAddresses, error)
	Set(ctx context.Context, addrs domain.ContractAddresses) error
	Invalidate(ctx context.Context) error
}

// IdempotencyCache stores responses to retried write intents.
type IdempotencyCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // Returns cached response JSON or nil
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// AuditRepository persists audit log entries.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}
