package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"pet-world-gateway/internal/core/domain"
	"pet-world-gateway/internal/core/ports/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

type countingTarget struct {
	balance, pets, signIn atomic.Int32
}

func (c *countingTarget) RefreshBalance(context.Context) domain.Result[uint64] {
	c.balance.Add(1)
	return domain.Ok[uint64](1)
}

func (c *countingTarget) RefreshPets(context.Context) domain.Result[[]domain.Pet] {
	c.pets.Add(1)
	return domain.Ok[[]domain.Pet](nil)
}

func (c *countingTarget) RefreshSignIn(context.Context) domain.Result[domain.SignInStatus] {
	c.signIn.Add(1)
	return domain.Ok(domain.SignInStatus{})
}

// chanEvents hands out one test-controlled channel and closes it when the
// subscriber's context ends.
type chanEvents struct {
	ch chan domain.LedgerEvent
}

func (e *chanEvents) Subscribe(ctx context.Context, _ string) (<-chan domain.LedgerEvent, error) {
	out := make(chan domain.LedgerEvent)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case ev := <-e.ch:
				select {
				case out <- ev:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

func TestReconciler_PollsBalance(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	target := &countingTarget{}
	r := NewReconciler(target, 5*time.Millisecond, newTestLogger())
	r.Start(nil, testAccount)

	require.Eventually(t, func() bool { return target.balance.Load() >= 2 }, time.Second, time.Millisecond)
	r.Stop()

	n := target.balance.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, n, target.balance.Load(), "no polls after Stop")
	assert.Zero(t, target.pets.Load())
}

func TestReconciler_EventsTriggerRefresh(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	target := &countingTarget{}
	events := &chanEvents{ch: make(chan domain.LedgerEvent)}
	r := NewReconciler(target, time.Hour, newTestLogger())
	r.Start(events, testAccount)
	defer r.Stop()

	events.ch <- domain.LedgerEvent{Type: domain.EventPetAdopted}
	require.Eventually(t, func() bool {
		return target.pets.Load() == 1 && target.balance.Load() == 1
	}, time.Second, time.Millisecond)

	events.ch <- domain.LedgerEvent{Type: domain.EventSignedIn}
	require.Eventually(t, func() bool { return target.signIn.Load() == 1 }, time.Second, time.Millisecond)

	events.ch <- domain.LedgerEvent{Type: domain.EventPetTransfer}
	require.Eventually(t, func() bool { return target.pets.Load() == 2 }, time.Second, time.Millisecond)
	assert.Equal(t, int32(2), target.balance.Load())
}

func TestReconciler_SubscribeFailureKeepsPolling(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	ctrl := gomock.NewController(t)
	events := mocks.NewMockLedgerEvents(ctrl)
	events.EXPECT().Subscribe(gomock.Any(), testAccount).Return(nil, errors.New("filters not supported"))

	target := &countingTarget{}
	r := NewReconciler(target, 5*time.Millisecond, newTestLogger())
	r.Start(events, testAccount)
	defer r.Stop()

	require.Eventually(t, func() bool { return target.balance.Load() >= 1 }, time.Second, time.Millisecond)
}

func TestReconciler_RestartAndStopAreSafe(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	target := &countingTarget{}
	events := &chanEvents{ch: make(chan domain.LedgerEvent)}
	r := NewReconciler(target, time.Hour, newTestLogger())

	r.Stop()
	r.Start(events, testAccount)
	r.Start(events, testAccount)
	r.Stop()
	r.Stop()
}
