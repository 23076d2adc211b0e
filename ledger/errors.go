package ledger

import "errors"

// Sentinel errors for the job ledger. Callers classify failures with
// errors.Is and map them to HTTP statuses; anything else is a store failure.
var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidTransition = errors.New("invalid status transition")
)
