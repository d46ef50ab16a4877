package service

import (
	"context"
	"sync"
	"time"

	"pet-world-gateway/internal/core/domain"

	"github.com/rs/zerolog"
)

func newTestLogger() zerolog.Logger {
	return zerolog.Nop()
}

// testClock is a settable clock shared by the ledger and the services.
type testClock struct {
	mu sync.Mutex
	t  time.Time
}

func newTestClock() *testClock {
	return &testClock{t: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

// staticBook is a fixed address book.
type staticBook domain.ContractAddresses

func (b staticBook) Addresses(context.Context) (domain.ContractAddresses, error) {
	out := make(domain.ContractAddresses, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out, nil
}

func (b staticBook) Save(ctx context.Context, _ domain.ContractAddresses) (domain.ContractAddresses, error) {
	return b.Addresses(ctx)
}
