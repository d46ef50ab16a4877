package ports

import (
	"context"
	"math/big"
	"time"

	"pet-world-gateway/internal/core/domain"

	"github.com/google/uuid"
)

// TokenService issues bearer tokens bound to one session.
type TokenService interface {
	Generate(sessionID uuid.UUID, account string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	SessionID uuid.UUID
	Account   string
}

// AuditService records audited actions.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}

// AddressBookService reads and writes the contract address book.
type AddressBookService interface {
	Addresses(ctx context.Context) (domain.ContractAddresses, error)
	Save(ctx context.Context, addrs domain.ContractAddresses) (domain.ContractAddresses, error)
}

// WorldService is the view-model the HTTP layer drives: session lifecycle,
// cached state, views and intents.
type WorldService interface {
	Connect(ctx context.Context) (*domain.Session, error)
	Disconnect(ctx context.Context) error
	Session() *domain.Session

	Snapshot() StateSnapshot
	RefreshPets(ctx context.Context) domain.Result[[]domain.Pet]
	RefreshBalance(ctx context.Context) domain.Result[uint64]
	RefreshSignIn(ctx context.Context) domain.Result[domain.SignInStatus]
	PetDetail(ctx context.Context, id uint64) domain.Result[domain.Pet]
	NativeBalance(ctx context.Context) (*big.Int, error)

	AdoptionView(ctx context.Context) (*AdoptionView, error)
	BreedingView(ctx context.Context) (*BreedingView, error)
	ToggleSelection(id uint64) domain.BreedingSelection
	ClearSelection()

	// Check* run the pre-flight checks of an intent without submitting it and
	// reserve the action, so a second caller fails with ErrActionInProgress.
	CheckAdopt(ctx context.Context, intent domain.AdoptionIntent) (domain.Reservation, error)
	CheckBreed(ctx context.Context, intent domain.BreedingIntent) (domain.Reservation, error)
	CheckSignIn(ctx context.Context) (domain.Reservation, error)
	CheckTransfer(ctx context.Context, intent domain.TransferIntent) (domain.Reservation, error)

	// Adopt, Breed, SignIn and Transfer block until the ledger confirms or rejects.
	// They take over a reservation from Check*; a zero one reserves on the spot.
	Adopt(ctx context.Context, res domain.Reservation, intent domain.AdoptionIntent) domain.Result[uint64]
	Breed(ctx context.Context, res domain.Reservation, intent domain.BreedingIntent) domain.Result[uint64]
	SignIn(ctx context.Context, res domain.Reservation) domain.Result[domain.SignInReceipt]
	Transfer(ctx context.Context, res domain.Reservation, intent domain.TransferIntent) domain.Result[uint64]
}

// AggregateStatus is the load state of one cached aggregate.
type AggregateStatus string

const (
	StatusUnloaded AggregateStatus = "unloaded"
	StatusLoading  AggregateStatus = "loading"
	StatusLoaded   AggregateStatus = "loaded"
	StatusError    AggregateStatus = "error"
)

// Aggregate is the rendered form of one cached value.
type Aggregate[T any] struct {
	Status    AggregateStatus `json:"status"`
	Value     T               `json:"value"`
	HasValue  bool            `json:"has_value"`
	Stale     bool            `json:"stale"`
	Reason    string          `json:"reason,omitempty"`
	UpdatedAt *time.Time      `json:"updated_at,omitempty"`
}

// ActionState is the in-flight flag and scoped error of one action.
type ActionState struct {
	InProgress bool       `json:"in_progress"`
	Error      string     `json:"error,omitempty"`
	ErrorKind  string     `json:"error_kind,omitempty"`
	LastResult string     `json:"last_result,omitempty"`
	Outcome    string     `json:"outcome,omitempty"`
	StartedAt  *time.Time `json:"started_at,omitempty"`
}

// StateSnapshot is a deep copy of the domain state store.
type StateSnapshot struct {
	Session   *domain.Session                  `json:"session"`
	Pets      Aggregate[[]domain.Pet]          `json:"pets"`
	Balance   Aggregate[uint64]                `json:"balance"`
	SignIn    Aggregate[domain.SignInStatus]   `json:"sign_in"`
	Details   map[uint64]Aggregate[domain.Pet] `json:"details"`
	Actions   map[domain.Action]ActionState    `json:"actions"`
	Selection domain.BreedingSelection         `json:"selection"`
}

// AdoptionView drives the adoption control.
type AdoptionView struct {
	Fee        uint64 `json:"fee"`
	Balance    uint64 `json:"balance"`
	Enabled    bool   `json:"enabled"`
	Message    string `json:"message,omitempty"`
	InProgress bool   `json:"in_progress"`
}

// BreedingCandidate is one selected parent with its eligibility.
type BreedingCandidate struct {
	Pet          domain.Pet    `json:"pet"`
	CanBreed     bool          `json:"can_breed"`
	CooldownLeft time.Duration `json:"cooldown_left"`
}

// BreedingView drives the breeding page.
type BreedingView struct {
	Selection  domain.BreedingSelection `json:"selection"`
	Parents    []BreedingCandidate      `json:"parents"`
	Fee        uint64                   `json:"fee"`
	Balance    uint64                   `json:"balance"`
	Enabled    bool                     `json:"enabled"`
	Message    string                   `json:"message,omitempty"`
	InProgress bool                     `json:"in_progress"`
}
