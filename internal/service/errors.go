package service

import "errors"

// Common service errors
var (
	// ErrNotFound is returned when a resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict is returned when there's a conflict (e.g., duplicate)
	ErrConflict = errors.New("resource conflict")

	// ErrSessionNotFound is returned when a quote session does not exist
	// or has been swept after idling too long
	ErrSessionNotFound = errors.New("quote session not found")

	// ErrSessionLimit is returned when the store is at its session cap
	ErrSessionLimit = errors.New("too many open quote sessions")

	// ErrQuoteNotPending is returned when a status change is requested on
	// a quote that has already left the pending state
	ErrQuoteNotPending = errors.New("quote is not pending")
)
