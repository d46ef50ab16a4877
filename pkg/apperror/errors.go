package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Environment (ENV) ----

func ErrNoProvider(err error) *AppError {
	return Wrap("ENV_001", "No chain provider found, install or configure a wallet provider", http.StatusServiceUnavailable, err)
}

func ErrNoAccount(err error) *AppError {
	return Wrap("ENV_002", "No account authorized by the wallet provider", http.StatusForbidden, err)
}

func ErrNoSession() *AppError {
	return New("ENV_003", "No active session, connect a wallet first", http.StatusConflict)
}

func ErrContractsMissing(names string) *AppError {
	return New("ENV_004", fmt.Sprintf("Contract addresses not configured: %s", names), http.StatusConflict)
}

// ---- Preconditions (PRE) ----

// ErrInsufficientBalance carries the fee and balance so the caller can show both.
func ErrInsufficientBalance(message string) *AppError {
	return New("PRE_001", message, http.StatusPaymentRequired)
}

func ErrNotBreedable(message string) *AppError {
	return New("PRE_002", message, http.StatusUnprocessableEntity)
}

func ErrAlreadySignedIn() *AppError {
	return New("PRE_003", "Already signed in today", http.StatusConflict)
}

func ErrInvalidIntent(message string) *AppError {
	return New("PRE_004", message, http.StatusBadRequest)
}

func ErrPetNotOwned() *AppError {
	return New("PRE_005", "Pet is not owned by the connected account", http.StatusForbidden)
}

func ErrNotFound(entity string) *AppError {
	return New("PRE_006", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrActionInProgress(action string) *AppError {
	return New("PRE_007", fmt.Sprintf("%s already in progress", action), http.StatusConflict)
}

// ---- User (USR) ----

func ErrUserCancelled() *AppError {
	return New("USR_001", "Request cancelled by user", http.StatusOK)
}

// ---- External ledger (EXT) ----

// ErrExecutionReverted surfaces the ledger's reason verbatim.
func ErrExecutionReverted(reason string) *AppError {
	return New("EXT_001", reason, http.StatusUnprocessableEntity)
}

func ErrChainUnavailable(err error) *AppError {
	return Wrap("EXT_002", "Chain request failed", http.StatusBadGateway, err)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_001", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrStaleSession() *AppError {
	return New("AUTH_002", "Token belongs to a previous session", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

func ErrPayloadTooLarge(limit int64) *AppError {
	return New("RATE_002", fmt.Sprintf("Request body exceeds %d bytes", limit), http.StatusRequestEntityTooLarge)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a PRE_004-style validation error.
func Validation(message string) *AppError {
	return New("PRE_004", message, http.StatusBadRequest)
}
