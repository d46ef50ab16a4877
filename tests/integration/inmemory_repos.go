package integration

import (
	"context"
	"sync"

	"pet-world-gateway/internal/core/domain"
)

// In-memory implementations of the PostgreSQL repositories, so the full HTTP
// stack can run without a database.

type inMemoryAddressRepo struct {
	mu    sync.Mutex
	book  domain.ContractAddresses
	lists int
}

func newInMemoryAddressRepo() *inMemoryAddressRepo {
	return &inMemoryAddressRepo{book: domain.ContractAddresses{}}
}

func (r *inMemoryAddressRepo) List(_ context.Context) (domain.ContractAddresses, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lists++
	out := make(domain.ContractAddresses, len(r.book))
	for k, v := range r.book {
		out[k] = v
	}
	return out, nil
}

func (r *inMemoryAddressRepo) Upsert(_ context.Context, name domain.ContractName, address string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.book[name] = address
	return nil
}

func (r *inMemoryAddressRepo) listCalls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lists
}

type inMemoryAuditRepo struct {
	mu      sync.Mutex
	entries []domain.AuditLog
}

func newInMemoryAuditRepo() *inMemoryAuditRepo {
	return &inMemoryAuditRepo{}
}

func (r *inMemoryAuditRepo) Create(_ context.Context, log *domain.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *log)
	return nil
}

func (r *inMemoryAuditRepo) actions() []domain.AuditAction {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.AuditAction, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.Action)
	}
	return out
}
