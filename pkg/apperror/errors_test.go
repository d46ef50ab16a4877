package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("PRE_001", "Insufficient balance", http.StatusPaymentRequired),
			expected: "[PRE_001] Insufficient balance",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "DB error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_001] DB error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("PRE_001", "test", http.StatusBadRequest)
	assert.Nil(t, appErr.Unwrap())
}

func TestEnvironmentErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"no provider", ErrNoProvider(nil), "ENV_001", http.StatusServiceUnavailable},
		{"no account", ErrNoAccount(nil), "ENV_002", http.StatusForbidden},
		{"no session", ErrNoSession(), "ENV_003", http.StatusConflict},
		{"contracts missing", ErrContractsMissing("pet"), "ENV_004", http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestPreconditionErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"insufficient balance", ErrInsufficientBalance("need 50, have 40"), "PRE_001", http.StatusPaymentRequired},
		{"not breedable", ErrNotBreedable("cooldown"), "PRE_002", http.StatusUnprocessableEntity},
		{"already signed in", ErrAlreadySignedIn(), "PRE_003", http.StatusConflict},
		{"invalid intent", ErrInvalidIntent("bad"), "PRE_004", http.StatusBadRequest},
		{"not owned", ErrPetNotOwned(), "PRE_005", http.StatusForbidden},
		{"not found", ErrNotFound("pet"), "PRE_006", http.StatusNotFound},
		{"in progress", ErrActionInProgress("adopt"), "PRE_007", http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestExecutionReverted_MessageVerbatim(t *testing.T) {
	reason := "execution reverted: PetBreeding: cooldown active"
	err := ErrExecutionReverted(reason)
	assert.Equal(t, "EXT_001", err.Code)
	assert.Equal(t, reason, err.Message)
}

func TestNotFound_Message(t *testing.T) {
	err := ErrNotFound("pet")
	assert.Equal(t, "pet not found", err.Message)
}

func TestInternalError(t *testing.T) {
	inner := fmt.Errorf("db crash")
	err := InternalError(inner)
	assert.Equal(t, "SYS_001", err.Code)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus)
	assert.True(t, errors.Is(err, inner))
}

func TestErrorsAs(t *testing.T) {
	var wrapped error = fmt.Errorf("adopting: %w", ErrAlreadySignedIn())

	var appErr *AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, "PRE_003", appErr.Code)
}

func TestPayloadTooLarge(t *testing.T) {
	err := ErrPayloadTooLarge(1024)
	assert.Equal(t, "RATE_002", err.Code)
	assert.Equal(t, http.StatusRequestEntityTooLarge, err.HTTPStatus)
	assert.Equal(t, "Request body exceeds 1024 bytes", err.Message)
}
