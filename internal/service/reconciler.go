package service

import (
	"context"
	"sync"
	"time"

	"pet-world-gateway/internal/core/domain"
	"pet-world-gateway/internal/core/ports"
	"pet-world-gateway/pkg/logger"
	"pet-world-gateway/pkg/metrics"

	"github.com/rs/zerolog"
)

// refreshTarget is what the reconciler keeps fresh.
type refreshTarget interface {
	RefreshBalance(ctx context.Context) domain.Result[uint64]
	RefreshPets(ctx context.Context) domain.Result[[]domain.Pet]
	RefreshSignIn(ctx context.Context) domain.Result[domain.SignInStatus]
}

// Reconciler keeps cached state in step with the ledger. It polls the
// balance on a fixed interval and re-reads aggregates named by ledger
// events. Events are only triggers; state always comes from a fresh read.
type Reconciler struct {
	target   refreshTarget
	interval time.Duration
	log      zerolog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewReconciler creates a stopped reconciler.
func NewReconciler(target refreshTarget, interval time.Duration, log zerolog.Logger) *Reconciler {
	return &Reconciler{
		target:   target,
		interval: interval,
		log:      logger.Component(log, "reconciler"),
	}
}

// Start stops any previous run and begins reconciling for account. A failed
// subscription leaves polling in place.
func (r *Reconciler) Start(events ports.LedgerEvents, account string) {
	r.Stop()

	r.mu.Lock()
	defer r.mu.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel

	r.wg.Add(1)
	go r.poll(ctx)

	if events == nil {
		return
	}
	ch, err := events.Subscribe(ctx, account)
	if err != nil {
		r.log.Warn().Err(err).Msg("event subscription failed, polling only")
		return
	}
	r.wg.Add(1)
	go r.consume(ctx, ch)
}

// Stop cancels the run and waits for its goroutines to exit.
func (r *Reconciler) Stop() {
	r.mu.Lock()
	cancel := r.cancel
	r.cancel = nil
	r.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	r.wg.Wait()
}

func (r *Reconciler) poll(ctx context.Context) {
	defer r.wg.Done()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			metrics.ObservePollTick()
			if res := r.target.RefreshBalance(ctx); !res.OK {
				r.log.Debug().Str("reason", res.Reason).Msg("balance poll failed")
			}
		}
	}
}

func (r *Reconciler) consume(ctx context.Context, ch <-chan domain.LedgerEvent) {
	defer r.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-ch:
			if !ok {
				return
			}
			r.apply(ctx, ev)
		}
	}
}

func (r *Reconciler) apply(ctx context.Context, ev domain.LedgerEvent) {
	metrics.ObserveLedgerEvent(string(ev.Type))
	r.log.Debug().Str("type", string(ev.Type)).Uint64("block", ev.Block).Msg("ledger event")

	if ev.AffectsBalance() {
		r.target.RefreshBalance(ctx)
	}
	if ev.AffectsPets() {
		r.target.RefreshPets(ctx)
	}
	if ev.AffectsSignIn() {
		r.target.RefreshSignIn(ctx)
	}
}
