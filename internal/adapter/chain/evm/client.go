// Package evm binds the pet contracts on an EVM node through go-ethereum.
// The gateway signs with a server-held key; that account is the session's
// only authorized account.
package evm

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"
	"time"

	"pet-world-gateway/internal/core/domain"
	"pet-world-gateway/internal/core/ports"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/rs/zerolog"
)

// Config configures the node connection.
type Config struct {
	RPCURL       string
	PrivateKey   string
	ChainID      int64 // 0 means ask the node
	PollInterval time.Duration
}

// Connector implements ports.ChainConnector by dialing an RPC endpoint.
type Connector struct {
	cfg Config
	key *ecdsa.PrivateKey
	log zerolog.Logger
}

// NewConnector parses the signing key up front so a bad key fails at startup.
func NewConnector(cfg Config, log zerolog.Logger) (*Connector, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("parsing chain private key: %w", err)
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 4 * time.Second
	}
	return &Connector{cfg: cfg, key: key, log: log.With().Str("component", "evm").Logger()}, nil
}

// Account returns the address derived from the signing key.
func (c *Connector) Account() string {
	return crypto.PubkeyToAddress(c.key.PublicKey).Hex()
}

// Connect dials the node and resolves the chain id.
func (c *Connector) Connect(ctx context.Context) (ports.ChainConnection, error) {
	client, err := ethclient.DialContext(ctx, c.cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("%w: dialing %s: %v", domain.ErrNoProvider, c.cfg.RPCURL, err)
	}

	chainID := big.NewInt(c.cfg.ChainID)
	if c.cfg.ChainID == 0 {
		chainID, err = client.ChainID(ctx)
		if err != nil {
			client.Close()
			return nil, fmt.Errorf("%w: reading chain id: %v", domain.ErrNoProvider, err)
		}
	}

	c.log.Info().Str("rpc_url", c.cfg.RPCURL).Str("chain_id", chainID.String()).Msg("connected to node")
	return &Connection{
		client:  client,
		key:     c.key,
		account: crypto.PubkeyToAddress(c.key.PublicKey),
		chainID: chainID,
		poll:    c.cfg.PollInterval,
		log:     c.log,
	}, nil
}

// Connection implements ports.ChainConnection over an ethclient.
type Connection struct {
	client  *ethclient.Client
	key     *ecdsa.PrivateKey
	account common.Address
	chainID *big.Int
	poll    time.Duration
	log     zerolog.Logger
}

// RequestAccounts returns the signing account. A node-held key needs no prompt.
func (c *Connection) RequestAccounts(ctx context.Context) ([]string, error) {
	return c.Accounts(ctx)
}

// Accounts returns the signing account.
func (c *Connection) Accounts(_ context.Context) ([]string, error) {
	return []string{c.account.Hex()}, nil
}

// ChainID returns the chain id resolved at connect time.
func (c *Connection) ChainID(_ context.Context) (int64, error) {
	return c.chainID.Int64(), nil
}

// NativeBalance reads the gas token balance at the latest block.
func (c *Connection) NativeBalance(ctx context.Context, account string) (*big.Int, error) {
	if !common.IsHexAddress(account) {
		return nil, fmt.Errorf("invalid account %q", account)
	}
	bal, err := c.client.BalanceAt(ctx, common.HexToAddress(account), nil)
	if err != nil {
		return nil, classify(fmt.Errorf("reading native balance: %w", err))
	}
	return bal, nil
}

// Contracts binds the four pet contracts, signing as account.
func (c *Connection) Contracts(addrs domain.ContractAddresses, account string) (*ports.Contracts, error) {
	if missing := addrs.Missing(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %v", domain.ErrContractsMissing, missing)
	}
	if !strings.EqualFold(account, c.account.Hex()) {
		return nil, fmt.Errorf("%w: %s is not the signing account", domain.ErrNoAccount, account)
	}

	b := &backend{
		client:  c.client,
		key:     c.key,
		account: c.account,
		chainID: c.chainID,
		log:     c.log,
	}

	pet := newContract(b, addrs[domain.ContractPet], petABI)
	coin := newContract(b, addrs[domain.ContractPetCoin], petCoinABI)
	adoption := newContract(b, addrs[domain.ContractPetAdoption], petAdoptionABI)
	breeding := newContract(b, addrs[domain.ContractPetBreeding], petBreedingABI)

	return &ports.Contracts{
		Pets:     &petRegistry{pet},
		Coin:     &coinLedger{coin},
		Adoption: &adoptionDesk{adoption},
		Breeding: &breedingLab{breeding},
		Events: &eventWatcher{
			client:   c.client,
			poll:     c.poll,
			pet:      pet.address,
			coin:     coin.address,
			adoption: adoption.address,
			breeding: breeding.address,
			log:      c.log,
		},
	}, nil
}

// Close drops the RPC connection.
func (c *Connection) Close() {
	c.client.Close()
}

// chainBackend is what bound contracts need: calls, transactions, logs and
// receipt polling. *ethclient.Client satisfies it.
type chainBackend interface {
	bind.ContractBackend
	bind.DeployBackend
}

// backend carries the signing identity shared by the bound contracts.
type backend struct {
	client  chainBackend
	key     *ecdsa.PrivateKey
	account common.Address
	chainID *big.Int
	log     zerolog.Logger
}
