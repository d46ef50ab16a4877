package service

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"pet-world-gateway/internal/core/domain"
	"pet-world-gateway/internal/core/ports"
	"pet-world-gateway/pkg/logger"
	"pet-world-gateway/pkg/metrics"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// WorldConfig tunes the view-model.
type WorldConfig struct {
	BreedingCooldown time.Duration
	BalanceInterval  time.Duration
	FetchConcurrency int
	// Location decides the calendar day of a sign-in.
	Location *time.Location
	Clock    func() time.Time
}

func (c WorldConfig) withDefaults() WorldConfig {
	if c.BreedingCooldown <= 0 {
		c.BreedingCooldown = 24 * time.Hour
	}
	if c.BalanceInterval <= 0 {
		c.BalanceInterval = 30 * time.Second
	}
	if c.FetchConcurrency <= 0 {
		c.FetchConcurrency = 8
	}
	if c.Location == nil {
		c.Location = time.UTC
	}
	if c.Clock == nil {
		c.Clock = time.Now
	}
	return c
}

var _ ports.WorldService = (*World)(nil)

// World implements ports.WorldService over one session at a time.
type World struct {
	sessions   *SessionService
	addresses  ports.AddressBookService
	store      *StateStore
	reconciler *Reconciler
	cfg        WorldConfig
	log        zerolog.Logger

	lifecycle sync.Mutex // serializes Connect and Disconnect
	mu        sync.RWMutex
	proxy     *ContractService
}

// NewWorld wires the view-model.
func NewWorld(sessions *SessionService, addresses ports.AddressBookService, cfg WorldConfig, log zerolog.Logger) *World {
	cfg = cfg.withDefaults()
	w := &World{
		sessions:  sessions,
		addresses: addresses,
		store:     NewStateStore(cfg.Clock),
		cfg:       cfg,
		log:       logger.Component(log, "world"),
	}
	w.reconciler = NewReconciler(w, cfg.BalanceInterval, log)
	return w
}

// Connect opens a new session, binds the contracts and loads initial state.
// Any previous session is torn down first.
func (w *World) Connect(ctx context.Context) (*domain.Session, error) {
	w.lifecycle.Lock()
	defer w.lifecycle.Unlock()

	addrs, err := w.addresses.Addresses(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading contract addresses: %w", err)
	}
	if missing := addrs.Missing(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrContractsMissing, joinNames(missing))
	}

	w.teardown()

	sess, conn, err := w.sessions.Connect(ctx)
	if err != nil {
		return nil, err
	}
	contracts, err := conn.Contracts(addrs, sess.Account)
	if err != nil {
		w.sessions.Disconnect()
		return nil, err
	}

	proxy := NewContractService(contracts, sess.Account, w.cfg, w.log)
	w.mu.Lock()
	w.proxy = proxy
	w.store.Reset(sess)
	w.mu.Unlock()
	metrics.SetSessionActive(true)

	w.reconciler.Start(contracts.Events, sess.Account)
	w.refreshAll(ctx)
	return sess, nil
}

// Disconnect ends the session. In-flight writes keep running, but their
// results are dropped by the store.
func (w *World) Disconnect(_ context.Context) error {
	w.lifecycle.Lock()
	defer w.lifecycle.Unlock()
	w.teardown()
	return nil
}

func (w *World) teardown() {
	w.reconciler.Stop()

	w.mu.Lock()
	w.proxy = nil
	w.store.Reset(nil)
	w.mu.Unlock()

	w.sessions.Disconnect()
	metrics.SetSessionActive(false)
}

// Session returns the current session, or nil.
func (w *World) Session() *domain.Session {
	return w.sessions.Current()
}

// Close stops background work.
func (w *World) Close() {
	_ = w.Disconnect(context.Background())
}

func (w *World) current() (*ContractService, uuid.UUID, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.proxy == nil {
		return nil, uuid.Nil, domain.ErrNoSession
	}
	return w.proxy, w.store.SessionID(), nil
}

func (w *World) refreshAll(ctx context.Context) {
	var g errgroup.Group
	g.Go(func() error { w.RefreshBalance(ctx); return nil })
	g.Go(func() error { w.RefreshPets(ctx); return nil })
	g.Go(func() error { w.RefreshSignIn(ctx); return nil })
	_ = g.Wait()
}

// Snapshot returns a deep copy of the cached state.
func (w *World) Snapshot() ports.StateSnapshot {
	return w.store.Snapshot()
}

// RefreshPets re-reads the account's pets.
func (w *World) RefreshPets(ctx context.Context) domain.Result[[]domain.Pet] {
	proxy, _, err := w.current()
	if err != nil {
		return failure[[]domain.Pet](err)
	}
	return w.store.LoadPets(ctx, proxy.ListPetsOwned)
}

// RefreshBalance re-reads the coin balance.
func (w *World) RefreshBalance(ctx context.Context) domain.Result[uint64] {
	proxy, _, err := w.current()
	if err != nil {
		return failure[uint64](err)
	}
	return w.store.LoadBalance(ctx, proxy.GetBalance)
}

// RefreshSignIn re-reads the sign-in status.
func (w *World) RefreshSignIn(ctx context.Context) domain.Result[domain.SignInStatus] {
	proxy, _, err := w.current()
	if err != nil {
		return failure[domain.SignInStatus](err)
	}
	return w.store.LoadSignIn(ctx, proxy.SignInStatus)
}

// PetDetail re-reads one pet.
func (w *World) PetDetail(ctx context.Context, id uint64) domain.Result[domain.Pet] {
	proxy, _, err := w.current()
	if err != nil {
		return failure[domain.Pet](err)
	}
	return w.store.LoadPet(ctx, id, func(ctx context.Context) (domain.Pet, error) {
		p, err := proxy.GetPetInfo(ctx, id)
		if err != nil {
			return domain.Pet{}, err
		}
		return *p, nil
	})
}

// NativeBalance returns the account's gas-token balance in wei.
func (w *World) NativeBalance(ctx context.Context) (*big.Int, error) {
	sess, conn, err := w.sessions.Connection()
	if err != nil {
		return nil, err
	}
	return conn.NativeBalance(ctx, sess.Account)
}

// AdoptionView reads the fee and a fresh balance for the adoption control.
func (w *World) AdoptionView(ctx context.Context) (*ports.AdoptionView, error) {
	proxy, _, err := w.current()
	if err != nil {
		return nil, err
	}
	fee, err := proxy.AdoptionFee(ctx)
	if err != nil {
		return nil, err
	}
	bal := w.RefreshBalance(ctx)
	if !bal.OK {
		return nil, fmt.Errorf("reading balance: %s", bal.Reason)
	}

	view := &ports.AdoptionView{
		Fee:        fee,
		Balance:    bal.Value,
		InProgress: w.store.Action(domain.ActionAdopt).InProgress,
	}
	if bal.Value < fee {
		view.Message = domain.InsufficientBalanceMessage("adoption", fee, bal.Value)
	}
	view.Enabled = view.Message == "" && !view.InProgress
	return view, nil
}

// BreedingView reads the selected parents, the fee and a fresh balance.
func (w *World) BreedingView(ctx context.Context) (*ports.BreedingView, error) {
	proxy, _, err := w.current()
	if err != nil {
		return nil, err
	}
	fee, err := proxy.BreedingFee(ctx)
	if err != nil {
		return nil, err
	}
	bal := w.RefreshBalance(ctx)
	if !bal.OK {
		return nil, fmt.Errorf("reading balance: %s", bal.Reason)
	}

	sel := w.store.Selection()
	view := &ports.BreedingView{
		Selection:  sel,
		Parents:    make([]ports.BreedingCandidate, 0, 2),
		Fee:        fee,
		Balance:    bal.Value,
		InProgress: w.store.Action(domain.ActionBreed).InProgress,
	}

	now := w.cfg.Clock()
	for _, id := range sel.IDs() {
		res := w.PetDetail(ctx, id)
		if !res.OK {
			return nil, fmt.Errorf("reading pet #%d: %s", id, res.Reason)
		}
		c := ports.BreedingCandidate{
			Pet:          res.Value,
			CanBreed:     res.Value.CanBreed,
			CooldownLeft: domain.CooldownLeft(now, res.Value.LastBreedTime, w.cfg.BreedingCooldown),
		}
		view.Parents = append(view.Parents, c)
		if !c.CanBreed && view.Message == "" {
			view.Message = fmt.Sprintf("pet #%d is still in breeding cooldown (%s left)", id, c.CooldownLeft.Round(time.Second))
		}
	}

	switch {
	case view.Message != "":
	case !sel.Complete():
		view.Message = "select two pets to breed"
	case bal.Value < fee:
		view.Message = domain.InsufficientBalanceMessage("breeding", fee, bal.Value)
	}
	view.Enabled = view.Message == "" && !view.InProgress
	return view, nil
}

// ToggleSelection applies a click on a pet to the breeding selection.
func (w *World) ToggleSelection(id uint64) domain.BreedingSelection {
	return w.store.ToggleSelection(id)
}

// ClearSelection empties the breeding selection.
func (w *World) ClearSelection() {
	w.store.ClearSelection()
}

// reserve raises the flag of action a for the current session and runs check
// under it, so two callers cannot both pass the pre-flight. The flag is
// dropped again when check fails.
func (w *World) reserve(a domain.Action, check func(*ContractService) error) (domain.Reservation, error) {
	proxy, sid, err := w.current()
	if err != nil {
		return domain.Reservation{}, err
	}
	if err := w.store.BeginAction(sid, a); err != nil {
		return domain.Reservation{}, err
	}
	if err := check(proxy); err != nil {
		w.store.ReleaseAction(sid, a)
		return domain.Reservation{}, err
	}
	return domain.Reservation{SessionID: sid, Action: a}, nil
}

// CheckAdopt runs the adoption pre-flight and reserves the action.
func (w *World) CheckAdopt(ctx context.Context, intent domain.AdoptionIntent) (domain.Reservation, error) {
	return w.reserve(domain.ActionAdopt, func(p *ContractService) error {
		_, err := p.PreflightAdopt(ctx, intent)
		return err
	})
}

// CheckBreed runs the breeding pre-flight and reserves the action.
func (w *World) CheckBreed(ctx context.Context, intent domain.BreedingIntent) (domain.Reservation, error) {
	return w.reserve(domain.ActionBreed, func(p *ContractService) error {
		_, err := p.PreflightBreed(ctx, intent)
		return err
	})
}

// CheckSignIn rejects a second sign-in on the same day from the cached
// status without touching the ledger; otherwise it reads a fresh status.
// It reserves the action on success.
func (w *World) CheckSignIn(ctx context.Context) (domain.Reservation, error) {
	return w.reserve(domain.ActionSignIn, func(p *ContractService) error {
		if w.signedInToday() {
			return domain.ErrAlreadySignedIn
		}
		_, err := p.PreflightSignIn(ctx)
		return err
	})
}

// CheckTransfer runs the transfer pre-flight and reserves the action.
func (w *World) CheckTransfer(ctx context.Context, intent domain.TransferIntent) (domain.Reservation, error) {
	return w.reserve(domain.ActionTransfer, func(p *ContractService) error {
		return p.PreflightTransfer(ctx, intent)
	})
}

func (w *World) signedInToday() bool {
	st, ok := w.store.CachedSignIn()
	return ok && st.SignedInOn(w.cfg.Clock(), w.cfg.Location)
}

// run wraps one write: it takes over the reservation (or raises the action
// flag itself when res is zero), runs op and records the outcome against the
// session the write started under.
func run[T any](ctx context.Context, w *World, res domain.Reservation, a domain.Action, op func(*ContractService) (T, string, error), after func(context.Context)) domain.Result[T] {
	proxy, sid, err := w.current()
	if err != nil {
		return failure[T](err)
	}
	switch {
	case res.IsZero():
		if err := w.store.BeginAction(sid, a); err != nil {
			return failure[T](err)
		}
	case res.SessionID != sid || !w.store.HoldsAction(sid, res.Action):
		return failure[T](domain.ErrStaleSession)
	case res.Action != a:
		w.store.ReleaseAction(sid, res.Action)
		return failure[T](fmt.Errorf("%w: reservation for %s used for %s", domain.ErrInvalidIntent, res.Action, a))
	}

	v, summary, err := op(proxy)
	w.store.FinishAction(sid, a, summary, err)
	if err != nil {
		if KindOf(err) != domain.FailureCancelled {
			w.log.Warn().Err(err).Str("action", string(a)).Msg("action failed")
		}
		return failure[T](err)
	}

	if w.store.SessionID() == sid {
		after(ctx)
	}
	return domain.Ok(v)
}

// Adopt adopts a pet and refreshes the pet list and balance.
func (w *World) Adopt(ctx context.Context, res domain.Reservation, intent domain.AdoptionIntent) domain.Result[uint64] {
	return run(ctx, w, res, domain.ActionAdopt, func(p *ContractService) (uint64, string, error) {
		id, err := p.Adopt(ctx, intent)
		return id, fmt.Sprintf("adopted %s as pet #%d", strings.TrimSpace(intent.Name), id), err
	}, func(ctx context.Context) {
		w.RefreshPets(ctx)
		w.RefreshBalance(ctx)
	})
}

// Breed breeds two pets, clears the selection and refreshes the pet list
// and balance.
func (w *World) Breed(ctx context.Context, res domain.Reservation, intent domain.BreedingIntent) domain.Result[uint64] {
	return run(ctx, w, res, domain.ActionBreed, func(p *ContractService) (uint64, string, error) {
		id, err := p.Breed(ctx, intent)
		return id, fmt.Sprintf("bred %s as pet #%d", strings.TrimSpace(intent.ChildName), id), err
	}, func(ctx context.Context) {
		w.store.ClearSelection()
		w.RefreshPets(ctx)
		w.RefreshBalance(ctx)
		w.PetDetail(ctx, intent.ParentA)
		w.PetDetail(ctx, intent.ParentB)
	})
}

// SignIn performs the daily sign-in. A second sign-in on the same day fails
// before any ledger call.
func (w *World) SignIn(ctx context.Context, res domain.Reservation) domain.Result[domain.SignInReceipt] {
	if _, _, err := w.current(); err != nil {
		return failure[domain.SignInReceipt](err)
	}
	if w.signedInToday() {
		if !res.IsZero() {
			w.store.ReleaseAction(res.SessionID, res.Action)
		}
		return failure[domain.SignInReceipt](domain.ErrAlreadySignedIn)
	}

	return run(ctx, w, res, domain.ActionSignIn, func(p *ContractService) (domain.SignInReceipt, string, error) {
		r, err := p.SignIn(ctx)
		if err != nil {
			return domain.SignInReceipt{}, "", err
		}
		return *r, fmt.Sprintf("earned %d coins, %d day streak", r.Reward, r.Streak), nil
	}, func(ctx context.Context) {
		w.RefreshSignIn(ctx)
		w.RefreshBalance(ctx)
	})
}

// Transfer moves a pet to another account and refreshes the pet list.
func (w *World) Transfer(ctx context.Context, res domain.Reservation, intent domain.TransferIntent) domain.Result[uint64] {
	return run(ctx, w, res, domain.ActionTransfer, func(p *ContractService) (uint64, string, error) {
		err := p.Transfer(ctx, intent)
		return intent.PetID, fmt.Sprintf("transferred pet #%d", intent.PetID), err
	}, func(ctx context.Context) {
		w.RefreshPets(ctx)
		w.PetDetail(ctx, intent.PetID)
	})
}

func joinNames(names []domain.ContractName) string {
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = string(n)
	}
	return strings.Join(parts, ", ")
}
