package domain

// FailureKind classifies why an operation did not succeed.
type FailureKind string

const (
	FailureNone         FailureKind = ""
	FailureEnvironment  FailureKind = "environment"
	FailurePrecondition FailureKind = "precondition"
	FailureCancelled    FailureKind = "cancelled"
	FailureRejected     FailureKind = "rejected"
	FailureInternal     FailureKind = "internal"
)

// Result is the outcome of every asynchronous operation: either a value or a reason.
type Result[T any] struct {
	OK     bool        `json:"ok"`
	Value  T           `json:"value,omitempty"`
	Reason string      `json:"reason,omitempty"`
	Kind   FailureKind `json:"kind,omitempty"`
	// Cause is the underlying error of a failure, for callers that need
	// more than the reason text.
	Cause error `json:"-"`
}

// Ok wraps a successful value.
func Ok[T any](v T) Result[T] {
	return Result[T]{OK: true, Value: v}
}

// Fail builds a failed result.
func Fail[T any](kind FailureKind, reason string) Result[T] {
	return Result[T]{Kind: kind, Reason: reason}
}
