package service

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strings"
	"time"

	"pet-world-gateway/internal/core/domain"
	"pet-world-gateway/internal/core/ports"
	"pet-world-gateway/pkg/logger"
	"pet-world-gateway/pkg/metrics"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// ContractService is the typed proxy over one session's bound contracts.
// It runs the pre-flight checks of every write and normalizes chain values.
type ContractService struct {
	contracts   *ports.Contracts
	account     string
	cooldown    time.Duration
	concurrency int
	now         func() time.Time
	log         zerolog.Logger
}

// NewContractService binds a proxy to the session account.
func NewContractService(contracts *ports.Contracts, account string, cfg WorldConfig, log zerolog.Logger) *ContractService {
	cfg = cfg.withDefaults()
	return &ContractService{
		contracts:   contracts,
		account:     account,
		cooldown:    cfg.BreedingCooldown,
		concurrency: cfg.FetchConcurrency,
		now:         cfg.Clock,
		log:         logger.Component(log, "contracts").With().Str("account", logger.ShortAccount(account)).Logger(),
	}
}

// Account is the signing account.
func (s *ContractService) Account() string { return s.account }

// Events is the session's notification source.
func (s *ContractService) Events() ports.LedgerEvents { return s.contracts.Events }

func observe(method string, start time.Time, err error) {
	outcome := "ok"
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrUserRejected):
		outcome = "cancelled"
	case errors.Is(err, domain.ErrExecutionReverted):
		outcome = "reverted"
	default:
		outcome = "error"
	}
	metrics.ObserveContractCall(method, outcome, time.Since(start))
}

func coins(v *big.Int, err error) (uint64, error) {
	if err != nil {
		return 0, err
	}
	return domain.CoinsFromBig(v)
}

// GetBalance returns the account's coin balance.
func (s *ContractService) GetBalance(ctx context.Context) (bal uint64, err error) {
	defer func(start time.Time) { observe("getBalance", start, err) }(time.Now())
	return coins(s.contracts.Coin.GetBalance(ctx, s.account))
}

// AdoptionFee returns the current adoption fee.
func (s *ContractService) AdoptionFee(ctx context.Context) (fee uint64, err error) {
	defer func(start time.Time) { observe("adoptionFee", start, err) }(time.Now())
	return coins(s.contracts.Adoption.AdoptionFee(ctx))
}

// BreedingFee returns the current breeding fee.
func (s *ContractService) BreedingFee(ctx context.Context) (fee uint64, err error) {
	defer func(start time.Time) { observe("breedingFee", start, err) }(time.Now())
	return coins(s.contracts.Breeding.BreedingFee(ctx))
}

// GetPetInfo reads one pet and recomputes its derived fields.
func (s *ContractService) GetPetInfo(ctx context.Context, id uint64) (pet *domain.Pet, err error) {
	defer func(start time.Time) { observe("getPetInfo", start, err) }(time.Now())

	p, err := s.contracts.Pets.GetPetInfo(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrExecutionReverted) && strings.Contains(err.Error(), "invalid token ID") {
			return nil, failf(domain.ErrPetNotFound, "pet #%d not found", id)
		}
		return nil, err
	}
	p.ID = id
	p.Refresh(s.now(), s.cooldown)
	return p, nil
}

// ListPetsOwned reads every pet of the account with bounded parallelism. The
// list is ordered by id; any failed read fails the whole list.
func (s *ContractService) ListPetsOwned(ctx context.Context) ([]domain.Pet, error) {
	start := time.Now()
	ids, err := s.contracts.Pets.ListPetIDs(ctx, s.account)
	observe("listPetIds", start, err)
	if err != nil {
		return nil, err
	}

	pets := make([]domain.Pet, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, id := range ids {
		g.Go(func() error {
			p, err := s.GetPetInfo(gctx, id)
			if err != nil {
				return fmt.Errorf("reading pet #%d: %w", id, err)
			}
			pets[i] = *p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(pets, func(i, j int) bool { return pets[i].ID < pets[j].ID })
	return pets, nil
}

// SignInStatus reads the account's sign-in state and reward schedule.
func (s *ContractService) SignInStatus(ctx context.Context) (domain.SignInStatus, error) {
	var st domain.SignInStatus
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		defer func(start time.Time) { observe("getSignInInfo", start, err) }(time.Now())
		st.LastSignIn, st.Streak, err = s.contracts.Coin.SignInInfo(gctx, s.account)
		return err
	})
	var can bool
	g.Go(func() (err error) {
		defer func(start time.Time) { observe("canSignInToday", start, err) }(time.Now())
		can, err = s.contracts.Coin.CanSignInToday(gctx, s.account)
		return err
	})
	var base, maxBonus uint64
	g.Go(func() (err error) {
		defer func(start time.Time) { observe("rewardSchedule", start, err) }(time.Now())
		base, maxBonus, err = s.contracts.Coin.RewardSchedule(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.SignInStatus{}, err
	}
	st.CanSignInToday = can
	st.BaseReward = base
	st.MaxStreakBonus = maxBonus
	return st, nil
}

// checkFee compares a fresh balance with fee.
func (s *ContractService) checkFee(ctx context.Context, action string, fee uint64) error {
	bal, err := s.GetBalance(ctx)
	if err != nil {
		return err
	}
	if bal < fee {
		return failf(domain.ErrInsufficientFunds, "%s", domain.InsufficientBalanceMessage(action, fee, bal))
	}
	return nil
}

// PreflightAdopt validates an adoption without submitting it and returns the fee.
func (s *ContractService) PreflightAdopt(ctx context.Context, intent domain.AdoptionIntent) (uint64, error) {
	if err := intent.Validate(); err != nil {
		return 0, err
	}
	fee, err := s.AdoptionFee(ctx)
	if err != nil {
		return 0, err
	}
	return fee, s.checkFee(ctx, "adoption", fee)
}

// Adopt approves the fee and adopts a pet, returning its id once confirmed.
func (s *ContractService) Adopt(ctx context.Context, intent domain.AdoptionIntent) (id uint64, err error) {
	fee, err := s.PreflightAdopt(ctx, intent)
	if err != nil {
		return 0, err
	}
	if err := s.approve(ctx, s.contracts.Adoption.Address(), fee); err != nil {
		return 0, err
	}

	defer func(start time.Time) { observe("adoptPet", start, err) }(time.Now())
	id, err = s.contracts.Adoption.AdoptPet(ctx, strings.TrimSpace(intent.Name), strings.TrimSpace(intent.Type))
	if err != nil {
		return 0, err
	}
	s.log.Info().Uint64("pet_id", id).Str("type", intent.Type).Msg("pet adopted")
	return id, nil
}

// PreflightBreed checks both parents and the fee without submitting.
func (s *ContractService) PreflightBreed(ctx context.Context, intent domain.BreedingIntent) (uint64, error) {
	if err := intent.Validate(); err != nil {
		return 0, err
	}

	parents := make([]*domain.Pet, 2)
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range []uint64{intent.ParentA, intent.ParentB} {
		g.Go(func() error {
			p, err := s.GetPetInfo(gctx, id)
			parents[i] = p
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	now := s.now()
	for _, p := range parents {
		if !p.OwnedBy(s.account) {
			return 0, failf(domain.ErrPetNotOwned, "pet #%d is not owned by the connected account", p.ID)
		}
		if !domain.CanBreedAt(now, p.LastBreedTime, s.cooldown) {
			left := domain.CooldownLeft(now, p.LastBreedTime, s.cooldown).Round(time.Second)
			return 0, failf(domain.ErrNotBreedable, "pet #%d is still in breeding cooldown (%s left)", p.ID, left)
		}
	}

	fee, err := s.BreedingFee(ctx)
	if err != nil {
		return 0, err
	}
	return fee, s.checkFee(ctx, "breeding", fee)
}

// Breed approves the fee and breeds two pets, returning the child id.
func (s *ContractService) Breed(ctx context.Context, intent domain.BreedingIntent) (id uint64, err error) {
	fee, err := s.PreflightBreed(ctx, intent)
	if err != nil {
		return 0, err
	}
	if err := s.approve(ctx, s.contracts.Breeding.Address(), fee); err != nil {
		return 0, err
	}

	defer func(start time.Time) { observe("breedPets", start, err) }(time.Now())
	id, err = s.contracts.Breeding.BreedPets(ctx, intent.ParentA, intent.ParentB, strings.TrimSpace(intent.ChildName))
	if err != nil {
		return 0, err
	}
	s.log.Info().
		Uint64("child_id", id).
		Uint64("parent_a", intent.ParentA).
		Uint64("parent_b", intent.ParentB).
		Msg("pets bred")
	return id, nil
}

// CanBreed asks the breeding contract whether a pet is eligible.
func (s *ContractService) CanBreed(ctx context.Context, id uint64) (ok bool, err error) {
	defer func(start time.Time) { observe("canBreed", start, err) }(time.Now())
	return s.contracts.Breeding.CanBreed(ctx, id)
}

// CooldownLeft asks the breeding contract how long a pet must wait.
func (s *ContractService) CooldownLeft(ctx context.Context, id uint64) (d time.Duration, err error) {
	defer func(start time.Time) { observe("getCooldownTimeLeft", start, err) }(time.Now())
	return s.contracts.Breeding.CooldownTimeLeft(ctx, id)
}

// PreflightSignIn reads a fresh sign-in status and rejects a second sign-in.
func (s *ContractService) PreflightSignIn(ctx context.Context) (domain.SignInStatus, error) {
	st, err := s.SignInStatus(ctx)
	if err != nil {
		return st, err
	}
	if !st.CanSignInToday {
		return st, domain.ErrAlreadySignedIn
	}
	return st, nil
}

// SignIn performs the daily sign-in.
func (s *ContractService) SignIn(ctx context.Context) (receipt *domain.SignInReceipt, err error) {
	if _, err := s.PreflightSignIn(ctx); err != nil {
		return nil, err
	}

	defer func(start time.Time) { observe("signIn", start, err) }(time.Now())
	receipt, err = s.contracts.Coin.SignIn(ctx)
	if err != nil {
		return nil, err
	}
	s.log.Info().Uint64("reward", receipt.Reward).Uint64("streak", receipt.Streak).Msg("signed in")
	return receipt, nil
}

// PreflightTransfer checks the recipient and pet ownership.
func (s *ContractService) PreflightTransfer(ctx context.Context, intent domain.TransferIntent) error {
	if intent.PetID == 0 {
		return fmt.Errorf("%w: pet id is required", domain.ErrInvalidIntent)
	}
	if !domain.IsAddress(intent.To) {
		return fmt.Errorf("%w: recipient is not a valid address", domain.ErrInvalidIntent)
	}
	if strings.EqualFold(intent.To, s.account) {
		return fmt.Errorf("%w: recipient is the connected account", domain.ErrInvalidIntent)
	}
	p, err := s.GetPetInfo(ctx, intent.PetID)
	if err != nil {
		return err
	}
	if !p.OwnedBy(s.account) {
		return failf(domain.ErrPetNotOwned, "pet #%d is not owned by the connected account", p.ID)
	}
	return nil
}

// Transfer moves a pet to another account.
func (s *ContractService) Transfer(ctx context.Context, intent domain.TransferIntent) (err error) {
	if err := s.PreflightTransfer(ctx, intent); err != nil {
		return err
	}

	defer func(start time.Time) { observe("transferFrom", start, err) }(time.Now())
	if err := s.contracts.Pets.Transfer(ctx, intent.PetID, intent.To); err != nil {
		return err
	}
	s.log.Info().Uint64("pet_id", intent.PetID).Str("to", logger.ShortAccount(intent.To)).Msg("pet transferred")
	return nil
}

func (s *ContractService) approve(ctx context.Context, spender string, fee uint64) (err error) {
	defer func(start time.Time) { observe("approve", start, err) }(time.Now())
	return s.contracts.Coin.Approve(ctx, spender, new(big.Int).SetUint64(fee))
}
