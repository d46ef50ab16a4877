package postgres

import (
	"context"
	"fmt"
)

// HealthCheck implements ports.HealthChecker for PostgreSQL. It reads the
// address book table, so a reachable database without the schema is unhealthy.
type HealthCheck struct {
	pool Pool
}

// NewHealthCheck creates a PostgreSQL health checker.
func NewHealthCheck(pool Pool) *HealthCheck {
	return &HealthCheck{pool: pool}
}

// Ping counts address book rows.
func (h *HealthCheck) Ping(ctx context.Context) error {
	var n int
	if err := h.pool.QueryRow(ctx, "SELECT count(*) FROM contract_addresses").Scan(&n); err != nil {
		return fmt.Errorf("reading contract_addresses: %w", err)
	}
	return nil
}

// Name returns the dependency name.
func (h *HealthCheck) Name() string {
	return "postgresql"
}
