package evm

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/ethclient"
)

// HealthCheck implements ports.HealthChecker by asking the node for its
// latest block on a short-lived connection.
type HealthCheck struct {
	rpcURL string
}

// NewHealthCheck creates a health checker for the connector's node.
func NewHealthCheck(c *Connector) *HealthCheck {
	return &HealthCheck{rpcURL: c.cfg.RPCURL}
}

// Ping dials the node and reads the head block number.
func (h *HealthCheck) Ping(ctx context.Context) error {
	client, err := ethclient.DialContext(ctx, h.rpcURL)
	if err != nil {
		return fmt.Errorf("dialing node: %w", err)
	}
	defer client.Close()
	if _, err := client.BlockNumber(ctx); err != nil {
		return fmt.Errorf("reading block number: %w", err)
	}
	return nil
}

// Name returns the dependency name.
func (h *HealthCheck) Name() string {
	return "chain"
}
