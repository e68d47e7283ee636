package finance

import "errors"

// Sentinel errors for the store and the validation of user input.
// Callers match them with errors.Is; lower layers add context with %w.
var (
	// ErrStoreUnavailable is returned when the store is used before Open.
	ErrStoreUnavailable = errors.New("store is not initialized")

	// ErrNotFound is returned by Replace and Remove when no record carries
	// the given identifier.
	ErrNotFound = errors.New("record not found")

	// ErrInvalid is returned for malformed import documents and for
	// calculator input that would lead to a division by zero.
	ErrInvalid = errors.New("invalid input")
)
