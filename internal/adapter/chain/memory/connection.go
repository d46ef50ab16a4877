package memory

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"pet-world-gateway/internal/core/domain"
	"pet-world-gateway/internal/core/ports"
)

// Connector implements ports.ChainConnector over a Ledger.
type Connector struct {
	ledger *Ledger
}

// NewConnector wraps a ledger as a wallet provider.
func NewConnector(l *Ledger) *Connector {
	return &Connector{ledger: l}
}

// Connect opens a provider handle.
func (c *Connector) Connect(_ context.Context) (ports.ChainConnection, error) {
	if err := c.ledger.call("connect"); err != nil {
		return nil, err
	}
	c.ledger.mu.Lock()
	offline := c.ledger.offline
	c.ledger.mu.Unlock()
	if offline {
		return nil, fmt.Errorf("%w: simulated provider offline", domain.ErrNoProvider)
	}
	c.ledger.mu.Lock()
	c.ledger.open++
	c.ledger.mu.Unlock()
	return &Connection{ledger: c.ledger}, nil
}

// Connection implements ports.ChainConnection.
type Connection struct {
	ledger *Ledger
	once   sync.Once
}

// RequestAccounts returns the authorized accounts.
func (c *Connection) RequestAccounts(_ context.Context) ([]string, error) {
	if err := c.ledger.call("requestAccounts"); err != nil {
		return nil, err
	}
	return c.accounts(), nil
}

// Accounts returns the authorized accounts without prompting.
func (c *Connection) Accounts(_ context.Context) ([]string, error) {
	return c.accounts(), nil
}

func (c *Connection) accounts() []string {
	c.ledger.mu.Lock()
	defer c.ledger.mu.Unlock()
	return append([]string(nil), c.ledger.accounts...)
}

// ChainID returns the configured chain id.
func (c *Connection) ChainID(_ context.Context) (int64, error) {
	c.ledger.mu.Lock()
	defer c.ledger.mu.Unlock()
	return c.ledger.chainID, nil
}

// NativeBalance returns the gas token balance in wei.
func (c *Connection) NativeBalance(_ context.Context, account string) (*big.Int, error) {
	c.ledger.mu.Lock()
	defer c.ledger.mu.Unlock()
	if err := c.ledger.enter("nativeBalance"); err != nil {
		return nil, err
	}
	if b, ok := c.ledger.native[key(account)]; ok {
		return new(big.Int).Set(b), nil
	}
	return new(big.Int), nil
}

// Contracts binds the four contracts for account.
func (c *Connection) Contracts(addrs domain.ContractAddresses, account string) (*ports.Contracts, error) {
	if missing := addrs.Missing(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %v", domain.ErrContractsMissing, missing)
	}
	if account == "" {
		return nil, domain.ErrNoAccount
	}
	b := binding{ledger: c.ledger, account: account, addrs: addrs}
	return &ports.Contracts{
		Pets:     &petRegistry{b},
		Coin:     &coinLedger{b},
		Adoption: &adoptionDesk{b},
		Breeding: &breedingLab{b},
		Events:   &eventFeed{ledger: c.ledger},
	}, nil
}

// Close releases the handle.
func (c *Connection) Close() {
	c.once.Do(func() {
		c.ledger.mu.Lock()
		c.ledger.open--
		c.ledger.mu.Unlock()
	})
}

type binding struct {
	ledger  *Ledger
	account string
	addrs   domain.ContractAddresses
}
