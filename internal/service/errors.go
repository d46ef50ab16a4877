package service

import (
	"errors"
	"fmt"
	"strings"

	"pet-world-gateway/internal/core/domain"
	"pet-world-gateway/pkg/apperror"
)

// detailedError reads as msg but matches its sentinel with errors.Is.
type detailedError struct {
	sentinel error
	msg      string
}

func (e *detailedError) Error() string { return e.msg }

func (e *detailedError) Unwrap() error { return e.sentinel }

// failf builds a user-facing error for a sentinel without repeating the
// sentinel text.
func failf(sentinel error, format string, args ...any) error {
	return &detailedError{sentinel: sentinel, msg: fmt.Sprintf(format, args...)}
}

// Classify maps a service or adapter error onto the coded API error.
func Classify(err error) *apperror.AppError {
	if err == nil {
		return nil
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, domain.ErrNoProvider):
		return apperror.ErrNoProvider(err)
	case errors.Is(err, domain.ErrNoAccount):
		return apperror.ErrNoAccount(err)
	case errors.Is(err, domain.ErrNoSession):
		return apperror.ErrNoSession()
	case errors.Is(err, domain.ErrContractsMissing):
		return apperror.ErrContractsMissing(detail(err, domain.ErrContractsMissing))
	case errors.Is(err, domain.ErrStaleSession):
		return apperror.ErrStaleSession()
	case errors.Is(err, domain.ErrInsufficientFunds):
		return apperror.ErrInsufficientBalance(err.Error())
	case errors.Is(err, domain.ErrNotBreedable):
		return apperror.ErrNotBreedable(err.Error())
	case errors.Is(err, domain.ErrAlreadySignedIn):
		return apperror.ErrAlreadySignedIn()
	case errors.Is(err, domain.ErrInvalidIntent):
		return apperror.ErrInvalidIntent(err.Error())
	case errors.Is(err, domain.ErrPetNotOwned):
		return apperror.ErrPetNotOwned()
	case errors.Is(err, domain.ErrPetNotFound):
		return apperror.ErrNotFound("Pet")
	case errors.Is(err, domain.ErrActionInProgress):
		return apperror.ErrActionInProgress(detail(err, domain.ErrActionInProgress))
	case errors.Is(err, domain.ErrUserRejected):
		return apperror.ErrUserCancelled()
	case errors.Is(err, domain.ErrExecutionReverted):
		return apperror.ErrExecutionReverted(revertReason(err))
	default:
		return apperror.ErrChainUnavailable(err)
	}
}

// KindOf places an error in the failure taxonomy.
func KindOf(err error) domain.FailureKind {
	switch {
	case err == nil:
		return domain.FailureNone
	case errors.Is(err, domain.ErrUserRejected):
		return domain.FailureCancelled
	case errors.Is(err, domain.ErrExecutionReverted):
		return domain.FailureRejected
	case errors.Is(err, domain.ErrNoProvider),
		errors.Is(err, domain.ErrNoAccount),
		errors.Is(err, domain.ErrNoSession),
		errors.Is(err, domain.ErrContractsMissing),
		errors.Is(err, domain.ErrStaleSession):
		return domain.FailureEnvironment
	case errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrNotBreedable),
		errors.Is(err, domain.ErrAlreadySignedIn),
		errors.Is(err, domain.ErrInvalidIntent),
		errors.Is(err, domain.ErrPetNotOwned),
		errors.Is(err, domain.ErrPetNotFound),
		errors.Is(err, domain.ErrActionInProgress):
		return domain.FailurePrecondition
	default:
		return domain.FailureInternal
	}
}

// Reason is the message shown for a failure. Cancellations are silent.
func Reason(err error) string {
	switch KindOf(err) {
	case domain.FailureNone, domain.FailureCancelled:
		return ""
	case domain.FailureInternal:
		return err.Error()
	default:
		return Classify(err).Message
	}
}

func failure[T any](err error) domain.Result[T] {
	r := domain.Fail[T](KindOf(err), Reason(err))
	r.Cause = err
	return r
}

func detail(err, sentinel error) string {
	return strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
}

// revertReason returns the ledger's revert text, dropping any call-site prefix.
func revertReason(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, domain.ErrExecutionReverted.Error()); i > 0 {
		return msg[i:]
	}
	return msg
}
