package ports

import (
	"context"
	"math/big"
	"time"

	"pet-world-gateway/internal/core/domain"
)

// ChainConnector opens a handle to the wallet provider. It returns an error
// wrapping domain.ErrNoProvider when no provider is reachable.
type ChainConnector interface {
	Connect(ctx context.Context) (ChainConnection, error)
}

// ChainConnection is an open provider handle. It is owned by exactly one
// session and closed when that session is torn down.
type ChainConnection interface {
	// RequestAccounts asks the provider to authorize accounts (may prompt).
	RequestAccounts(ctx context.Context) ([]string, error)
	// Accounts lists already-authorized accounts without prompting.
	Accounts(ctx context.Context) ([]string, error)
	ChainID(ctx context.Context) (int64, error)
	// NativeBalance returns the gas-token balance in wei.
	NativeBalance(ctx context.Context, account string) (*big.Int, error)
	// Contracts binds the four pet contracts at the given addresses, signing as account.
	Contracts(addrs domain.ContractAddresses, account string) (*Contracts, error)
	Close()
}

// Contracts groups the bound contract interfaces of one session.
type Contracts struct {
	Pets     PetRegistry
	Coin     CoinLedger
	Adoption AdoptionDesk
	Breeding BreedingLab
	Events   LedgerEvents
}

// PetRegistry is the pet NFT contract.
type PetRegistry interface {
	GetPetInfo(ctx context.Context, id uint64) (*domain.Pet, error)
	ListPetIDs(ctx context.Context, owner string) ([]uint64, error)
	Transfer(ctx context.Context, id uint64, to string) error
}

// CoinLedger is the pet coin contract.
type CoinLedger interface {
	GetBalance(ctx context.Context, account string) (*big.Int, error)
	SignInInfo(ctx context.Context, account string) (lastSignIn time.Time, streak uint64, err error)
	CanSignInToday(ctx context.Context, account string) (bool, error)
	RewardSchedule(ctx context.Context) (base, maxStreakBonus uint64, err error)
	// Approve lets spender draw amount coins from the session account.
	Approve(ctx context.Context, spender string, amount *big.Int) error
	SignIn(ctx context.Context) (*domain.SignInReceipt, error)
}

// AdoptionDesk is the adoption contract.
type AdoptionDesk interface {
	Address() string
	AdoptionFee(ctx context.Context) (*big.Int, error)
	// AdoptPet submits and waits for confirmation, returning the new pet id.
	AdoptPet(ctx context.Context, name, petType string) (uint64, error)
}

// BreedingLab is the breeding contract.
type BreedingLab interface {
	Address() string
	BreedingFee(ctx context.Context) (*big.Int, error)
	CanBreed(ctx context.Context, id uint64) (bool, error)
	CooldownTimeLeft(ctx context.Context, id uint64) (time.Duration, error)
	// BreedPets submits and waits for confirmation, returning the child id.
	BreedPets(ctx context.Context, parentA, parentB uint64, childName string) (uint64, error)
}

// LedgerEvents streams contract notifications involving an account. The
// channel is closed when ctx is cancelled.
type LedgerEvents interface {
	Subscribe(ctx context.Context, account string) (<-chan domain.LedgerEvent, error)
}
