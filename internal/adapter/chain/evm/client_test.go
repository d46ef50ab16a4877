package evm

import (
	"context"
	"testing"

	"pet-world-gateway/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// First well-known development key.
const devKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

var devAddresses = domain.ContractAddresses{
	domain.ContractPet:         testPet.Hex(),
	domain.ContractPetCoin:     testCoin.Hex(),
	domain.ContractPetAdoption: testAdoption.Hex(),
	domain.ContractPetBreeding: testBreeding.Hex(),
}

func TestNewConnector_Key(t *testing.T) {
	c, err := NewConnector(Config{RPCURL: "http://127.0.0.1:1", PrivateKey: devKey}, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", c.Account())

	_, err = NewConnector(Config{PrivateKey: "zz"}, zerolog.Nop())
	assert.Error(t, err)
}

func TestConnect_NoProvider(t *testing.T) {
	c, err := NewConnector(Config{RPCURL: "http://127.0.0.1:1", PrivateKey: devKey}, zerolog.Nop())
	require.NoError(t, err)

	_, err = c.Connect(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoProvider)
}

func TestConnection_Contracts(t *testing.T) {
	c, err := NewConnector(Config{RPCURL: "http://127.0.0.1:1", PrivateKey: devKey, ChainID: 31337}, zerolog.Nop())
	require.NoError(t, err)

	conn, err := c.Connect(context.Background())
	require.NoError(t, err, "http transport dials lazily")
	defer conn.Close()

	accounts, err := conn.RequestAccounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{c.Account()}, accounts)

	id, err := conn.ChainID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(31337), id)

	_, err = conn.Contracts(domain.ContractAddresses{}, c.Account())
	assert.ErrorIs(t, err, domain.ErrContractsMissing)

	_, err = conn.Contracts(devAddresses, "0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	assert.ErrorIs(t, err, domain.ErrNoAccount)

	contracts, err := conn.Contracts(devAddresses, c.Account())
	require.NoError(t, err)
	assert.Equal(t, testAdoption.Hex(), contracts.Adoption.Address())
	assert.Equal(t, testBreeding.Hex(), contracts.Breeding.Address())
}

func TestHealthCheck_Unreachable(t *testing.T) {
	c, err := NewConnector(Config{RPCURL: "http://127.0.0.1:1", PrivateKey: devKey}, zerolog.Nop())
	require.NoError(t, err)

	h := NewHealthCheck(c)
	assert.Equal(t, "chain", h.Name())
	assert.Error(t, h.Ping(context.Background()))
}
