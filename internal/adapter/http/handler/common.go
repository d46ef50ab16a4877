package handler

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"pet-world-gateway/internal/core/domain"
	"pet-world-gateway/internal/service"
	"pet-world-gateway/pkg/apperror"
	"pet-world-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Background runs accepted write intents after the HTTP response is sent.
// The ledger may take arbitrarily long to confirm, so the request does not wait.
type Background struct {
	wg     sync.WaitGroup
	log    zerolog.Logger
	base   context.Context
	cancel context.CancelFunc
}

// NewBackground creates a runner for submitted intents.
func NewBackground(log zerolog.Logger) *Background {
	base, cancel := context.WithCancel(context.Background())
	return &Background{log: log, base: base, cancel: cancel}
}

// Go runs fn in its own goroutine and logs the outcome it reports. fn gets a
// context that keeps the request's values, outlives the request and is
// cancelled by Shutdown.
func (b *Background) Go(reqCtx context.Context, action domain.Action, fn func(ctx context.Context) (ok bool, kind domain.FailureKind, reason string)) {
	ctx, cancel := context.WithCancel(context.WithoutCancel(reqCtx))
	stop := context.AfterFunc(b.base, cancel)

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		defer stop()
		defer cancel()
		ok, kind, reason := fn(ctx)
		switch {
		case ok:
			b.log.Info().Str("action", string(action)).Msg("intent confirmed")
		case kind == domain.FailureCancelled:
			b.log.Info().Str("action", string(action)).Msg("intent cancelled by user")
		default:
			b.log.Warn().Str("action", string(action)).Str("kind", string(kind)).Str("reason", reason).Msg("intent failed")
		}
	}()
}

// Wait blocks until every submitted intent has finished.
func (b *Background) Wait() {
	b.wg.Wait()
}

// Shutdown waits for submitted intents until ctx is done. Intents still
// running then are cancelled and awaited; the ledger adapters return
// promptly on cancellation.
func (b *Background) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		b.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		b.cancel()
		<-done
		return ctx.Err()
	}
}

func outcome[T any](r domain.Result[T]) (bool, domain.FailureKind, string) {
	return r.OK, r.Kind, r.Reason
}

// fail writes the coded error for a failed operation.
func fail(c *gin.Context, err error) {
	response.Error(c, service.Classify(err))
}

// failResult writes the coded error for a failed Result.
func failResult[T any](c *gin.Context, r domain.Result[T]) {
	if r.Cause != nil {
		fail(c, r.Cause)
		return
	}
	response.Error(c, apperror.InternalError(errors.New(r.Reason)))
}

// petIDParam parses the :id path segment.
func petIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.Error(c, apperror.Validation("pet id must be a positive integer"))
		return 0, false
	}
	return id, true
}
