package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"pet-world-gateway/internal/core/domain"
	"pet-world-gateway/internal/core/ports"
	"pet-world-gateway/pkg/metrics"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// entry is one cached aggregate.
type entry[T any] struct {
	status  ports.AggregateStatus
	value   T
	has     bool
	reason  string
	updated time.Time
}

func (e *entry[T]) render() ports.Aggregate[T] {
	out := ports.Aggregate[T]{
		Status:   e.status,
		Value:    e.value,
		HasValue: e.has,
		Stale:    e.has && e.status != ports.StatusLoaded,
		Reason:   e.reason,
	}
	if out.Status == "" {
		out.Status = ports.StatusUnloaded
	}
	if !e.updated.IsZero() {
		t := e.updated
		out.UpdatedAt = &t
	}
	return out
}

// StateStore caches the session's aggregates and action flags. Every fetch
// is tagged with the session it started under; a completion that arrives
// after the session changed is discarded.
type StateStore struct {
	mu        sync.RWMutex
	session   *domain.Session
	pets      entry[[]domain.Pet]
	balance   entry[uint64]
	signIn    entry[domain.SignInStatus]
	details   map[uint64]*entry[domain.Pet]
	actions   map[domain.Action]ports.ActionState
	prior     map[domain.Action]ports.ActionState
	selection domain.BreedingSelection

	group singleflight.Group
	now   func() time.Time
}

// NewStateStore returns an empty store with no session.
func NewStateStore(now func() time.Time) *StateStore {
	if now == nil {
		now = time.Now
	}
	s := &StateStore{now: now}
	s.resetLocked(nil)
	return s
}

// Reset drops all state and tags the store with a new session (or none).
func (s *StateStore) Reset(session *domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked(session)
}

func (s *StateStore) resetLocked(session *domain.Session) {
	if session != nil {
		cp := *session
		session = &cp
	}
	s.session = session
	s.pets = entry[[]domain.Pet]{}
	s.balance = entry[uint64]{}
	s.signIn = entry[domain.SignInStatus]{}
	s.details = make(map[uint64]*entry[domain.Pet])
	s.actions = make(map[domain.Action]ports.ActionState)
	s.prior = make(map[domain.Action]ports.ActionState)
	s.selection = domain.BreedingSelection{}
}

// SessionID is the tag of the current session, or uuid.Nil.
func (s *StateStore) SessionID() uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessionIDLocked()
}

func (s *StateStore) sessionIDLocked() uuid.UUID {
	if s.session == nil {
		return uuid.Nil
	}
	return s.session.ID
}

// load runs fetch for the aggregate picked from the store. Concurrent loads
// of the same aggregate in the same session share one call. The shared call
// runs detached from any single caller and applies its own result, so a caller
// that gives up neither fails the others nor leaves the entry loading.
func load[T any](ctx context.Context, s *StateStore, name, key string, pick func(*StateStore) *entry[T], fetch func(context.Context) (T, error)) domain.Result[T] {
	s.mu.Lock()
	sid := s.sessionIDLocked()
	if sid == uuid.Nil {
		s.mu.Unlock()
		return failure[T](domain.ErrNoSession)
	}
	pick(s).status = ports.StatusLoading
	s.mu.Unlock()

	shared := context.WithoutCancel(ctx)
	ch := s.group.DoChan(sid.String()+":"+key, func() (interface{}, error) {
		v, err := fetch(shared)
		if err := apply(s, sid, name, pick, v, err); err != nil {
			return nil, err
		}
		return v, nil
	})

	select {
	case <-ctx.Done():
		return failure[T](ctx.Err())
	case r := <-ch:
		if r.Err != nil {
			return failure[T](r.Err)
		}
		return domain.Ok(r.Val.(T))
	}
}

// apply stores the outcome of a fetch started under session sid.
func apply[T any](s *StateStore, sid uuid.UUID, name string, pick func(*StateStore) *entry[T], v T, err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessionIDLocked() != sid {
		metrics.ObserveFetch(name, "discarded")
		return domain.ErrStaleSession
	}

	e := pick(s)
	if err != nil {
		e.status = ports.StatusError
		e.reason = Reason(err)
		metrics.ObserveFetch(name, "failed")
		return err
	}

	e.status = ports.StatusLoaded
	e.value = v
	e.has = true
	e.reason = ""
	e.updated = s.now()
	metrics.ObserveFetch(name, "applied")
	return nil
}

func pickPets(s *StateStore) *entry[[]domain.Pet]          { return &s.pets }
func pickBalance(s *StateStore) *entry[uint64]             { return &s.balance }
func pickSignIn(s *StateStore) *entry[domain.SignInStatus] { return &s.signIn }
func pickDetail(id uint64) func(*StateStore) *entry[domain.Pet] {
	return func(s *StateStore) *entry[domain.Pet] {
		e, ok := s.details[id]
		if !ok {
			e = &entry[domain.Pet]{}
			s.details[id] = e
		}
		return e
	}
}

// LoadPets refreshes the pet list.
func (s *StateStore) LoadPets(ctx context.Context, fetch func(context.Context) ([]domain.Pet, error)) domain.Result[[]domain.Pet] {
	res := load(ctx, s, "pets", "pets", pickPets, fetch)
	if res.OK {
		res.Value = append([]domain.Pet(nil), res.Value...)
	}
	return res
}

// LoadBalance refreshes the coin balance.
func (s *StateStore) LoadBalance(ctx context.Context, fetch func(context.Context) (uint64, error)) domain.Result[uint64] {
	return load(ctx, s, "balance", "balance", pickBalance, fetch)
}

// LoadSignIn refreshes the sign-in status.
func (s *StateStore) LoadSignIn(ctx context.Context, fetch func(context.Context) (domain.SignInStatus, error)) domain.Result[domain.SignInStatus] {
	return load(ctx, s, "sign_in", "sign_in", pickSignIn, fetch)
}

// LoadPet refreshes one pet's detail entry.
func (s *StateStore) LoadPet(ctx context.Context, id uint64, fetch func(context.Context) (domain.Pet, error)) domain.Result[domain.Pet] {
	return load(ctx, s, "pet", fmt.Sprintf("pet:%d", id), pickDetail(id), fetch)
}

// CachedSignIn returns the last loaded sign-in status.
func (s *StateStore) CachedSignIn() (domain.SignInStatus, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.signIn.value, s.signIn.has
}

// CachedBalance returns the last loaded balance.
func (s *StateStore) CachedBalance() (uint64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.balance.value, s.balance.has
}

// BeginAction raises the in-progress flag of an action for session sid.
// It fails if the action is already running or the session has changed.
func (s *StateStore) BeginAction(sid uuid.UUID, a domain.Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sid == uuid.Nil || s.sessionIDLocked() != sid {
		return domain.ErrStaleSession
	}
	if s.actions[a].InProgress {
		return fmt.Errorf("%w: %s", domain.ErrActionInProgress, a)
	}
	s.prior[a] = s.actions[a]
	started := s.now()
	s.actions[a] = ports.ActionState{InProgress: true, StartedAt: &started}
	return nil
}

// ReleaseAction drops a flag raised by BeginAction that never ran, restoring
// the outcome of the previous run.
func (s *StateStore) ReleaseAction(sid uuid.UUID, a domain.Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessionIDLocked() != sid || !s.actions[a].InProgress {
		return
	}
	if prev, ok := s.prior[a]; ok && prev != (ports.ActionState{}) {
		s.actions[a] = prev
	} else {
		delete(s.actions, a)
	}
	delete(s.prior, a)
}

// HoldsAction reports whether the flag of a is raised for session sid.
func (s *StateStore) HoldsAction(sid uuid.UUID, a domain.Action) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sid != uuid.Nil && s.sessionIDLocked() == sid && s.actions[a].InProgress
}

// FinishAction records the outcome of an action. A user cancellation clears
// the flag without an error; outcomes for an older session are dropped.
func (s *StateStore) FinishAction(sid uuid.UUID, a domain.Action, result string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessionIDLocked() != sid {
		return
	}

	st := ports.ActionState{}
	switch {
	case err == nil:
		st.Outcome = "succeeded"
		st.LastResult = result
	case errors.Is(err, domain.ErrUserRejected):
		st.Outcome = "cancelled"
	default:
		st.Outcome = "failed"
		st.Error = Reason(err)
		st.ErrorKind = string(KindOf(err))
	}
	s.actions[a] = st
	delete(s.prior, a)
}

// Action returns the state of one action.
func (s *StateStore) Action(a domain.Action) ports.ActionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.actions[a]
}

// ToggleSelection applies a click on a pet to the breeding selection.
func (s *StateStore) ToggleSelection(id uint64) domain.BreedingSelection {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = s.selection.Toggle(id)
	return s.selection.Clone()
}

// ClearSelection empties the breeding selection.
func (s *StateStore) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = domain.BreedingSelection{}
}

// Selection returns a copy of the breeding selection.
func (s *StateStore) Selection() domain.BreedingSelection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selection.Clone()
}

// Snapshot deep-copies the store.
func (s *StateStore) Snapshot() ports.StateSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := ports.StateSnapshot{
		Pets:      s.pets.render(),
		Balance:   s.balance.render(),
		SignIn:    s.signIn.render(),
		Details:   make(map[uint64]ports.Aggregate[domain.Pet], len(s.details)),
		Actions:   make(map[domain.Action]ports.ActionState, len(s.actions)),
		Selection: s.selection.Clone(),
	}
	if s.session != nil {
		cp := *s.session
		out.Session = &cp
	}
	out.Pets.Value = append([]domain.Pet(nil), s.pets.value...)
	for id, e := range s.details {
		out.Details[id] = e.render()
	}
	for a, st := range s.actions {
		if st.StartedAt != nil {
			t := *st.StartedAt
			st.StartedAt = &t
		}
		out.Actions[a] = st
	}
	return out
}
