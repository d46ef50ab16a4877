package domain

import "errors"

// Sentinel errors shared by adapters and services. Adapters wrap these so the
// service layer can classify failures with errors.Is.
var (
	ErrNoProvider         = errors.New("no chain provider available")
	ErrNoAccount          = errors.New("no account authorized")
	ErrNoSession          = errors.New("no active session")
	ErrContractsMissing   = errors.New("contract addresses not configured")
	ErrUserRejected       = errors.New("user rejected the request")
	ErrExecutionReverted  = errors.New("execution reverted")
	ErrInsufficientFunds  = errors.New("insufficient balance")
	ErrNotBreedable       = errors.New("pet is not eligible to breed")
	ErrAlreadySignedIn    = errors.New("already signed in today")
	ErrInvalidIntent      = errors.New("invalid intent")
	ErrPetNotOwned        = errors.New("pet not owned by account")
	ErrPetNotFound        = errors.New("pet not found")
	ErrStaleSession       = errors.New("result belongs to a previous session")
	ErrMissingReceiptData = errors.New("receipt carried no matching event")
	ErrActionInProgress   = errors.New("action already in progress")
)
