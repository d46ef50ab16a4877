package service

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"pet-world-gateway/internal/core/domain"
	"pet-world-gateway/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		code   string
		status int
	}{
		{"no provider", fmt.Errorf("%w: offline", domain.ErrNoProvider), "ENV_001", http.StatusServiceUnavailable},
		{"no account", domain.ErrNoAccount, "ENV_002", http.StatusForbidden},
		{"no session", domain.ErrNoSession, "ENV_003", http.StatusConflict},
		{"contracts missing", fmt.Errorf("%w: pet_coin", domain.ErrContractsMissing), "ENV_004", http.StatusConflict},
		{"insufficient", failf(domain.ErrInsufficientFunds, "short"), "PRE_001", http.StatusPaymentRequired},
		{"cooldown", failf(domain.ErrNotBreedable, "cooling"), "PRE_002", http.StatusUnprocessableEntity},
		{"signed in", domain.ErrAlreadySignedIn, "PRE_003", http.StatusConflict},
		{"bad intent", fmt.Errorf("%w: name", domain.ErrInvalidIntent), "PRE_004", http.StatusBadRequest},
		{"not owned", domain.ErrPetNotOwned, "PRE_005", http.StatusForbidden},
		{"not found", domain.ErrPetNotFound, "PRE_006", http.StatusNotFound},
		{"busy", fmt.Errorf("%w: adopt", domain.ErrActionInProgress), "PRE_007", http.StatusConflict},
		{"cancelled", domain.ErrUserRejected, "USR_001", http.StatusOK},
		{"reverted", fmt.Errorf("%w: nope", domain.ErrExecutionReverted), "EXT_001", http.StatusUnprocessableEntity},
		{"stale", domain.ErrStaleSession, "AUTH_002", http.StatusUnauthorized},
		{"unknown", errors.New("dial tcp: refused"), "EXT_002", http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := Classify(tt.err)
			assert.Equal(t, tt.code, appErr.Code)
			assert.Equal(t, tt.status, appErr.HTTPStatus)
		})
	}
}

func TestClassify_PassesThroughAppError(t *testing.T) {
	orig := apperror.ErrRateLimitExceeded()
	assert.Same(t, orig, Classify(fmt.Errorf("wrapped: %w", orig)))
	assert.Nil(t, Classify(nil))
}

func TestClassify_MessagesVerbatim(t *testing.T) {
	msg := domain.InsufficientBalanceMessage("adoption", 50, 40)
	assert.Equal(t, msg, Classify(failf(domain.ErrInsufficientFunds, "%s", msg)).Message)

	reverted := fmt.Errorf("adoptPet: %w", fmt.Errorf("%w: Pet name too long", domain.ErrExecutionReverted))
	assert.Equal(t, "execution reverted: Pet name too long", Classify(reverted).Message)

	missing := fmt.Errorf("%w: pet_coin, pet_breeding", domain.ErrContractsMissing)
	assert.Equal(t, "Contract addresses not configured: pet_coin, pet_breeding", Classify(missing).Message)
}

func TestKindOfAndReason(t *testing.T) {
	assert.Equal(t, domain.FailureNone, KindOf(nil))
	assert.Equal(t, domain.FailureCancelled, KindOf(fmt.Errorf("x: %w", domain.ErrUserRejected)))
	assert.Equal(t, domain.FailureRejected, KindOf(domain.ErrExecutionReverted))
	assert.Equal(t, domain.FailureEnvironment, KindOf(domain.ErrNoProvider))
	assert.Equal(t, domain.FailurePrecondition, KindOf(domain.ErrPetNotOwned))
	assert.Equal(t, domain.FailureInternal, KindOf(errors.New("boom")))

	assert.Empty(t, Reason(domain.ErrUserRejected))
	assert.Equal(t, "boom", Reason(errors.New("boom")))
	assert.Equal(t, "Already signed in today", Reason(domain.ErrAlreadySignedIn))
}

func TestFailf(t *testing.T) {
	err := failf(domain.ErrNotBreedable, "pet #%d is cooling", 7)
	assert.Equal(t, "pet #7 is cooling", err.Error())
	assert.ErrorIs(t, err, domain.ErrNotBreedable)
}
