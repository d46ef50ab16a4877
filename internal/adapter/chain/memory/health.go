package memory

import (
	"context"
	"fmt"

	"pet-world-gateway/internal/core/domain"
)

// HealthCheck implements ports.HealthChecker for the simulated ledger.
type HealthCheck struct {
	ledger *Ledger
}

// NewHealthCheck creates a health checker for the ledger.
func NewHealthCheck(l *Ledger) *HealthCheck {
	return &HealthCheck{ledger: l}
}

// Ping fails while the simulated provider is offline.
func (h *HealthCheck) Ping(_ context.Context) error {
	h.ledger.mu.Lock()
	defer h.ledger.mu.Unlock()
	if h.ledger.offline {
		return fmt.Errorf("%w: simulated provider offline", domain.ErrNoProvider)
	}
	return nil
}

// Name returns the dependency name.
func (h *HealthCheck) Name() string {
	return "chain"
}
