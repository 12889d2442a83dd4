package domain

import "fmt"

// Error types for consistent error handling across the service.

// ErrNotFound indicates a single-entity lookup found no match. Callers can
// distinguish it from a failed query.
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrStoreUnavailable indicates the document store is unreachable or
// misconfigured. Fatal to the request; never retried internally.
type ErrStoreUnavailable struct {
	Err error
}

func (e *ErrStoreUnavailable) Error() string {
	return fmt.Sprintf("document store unavailable: %v", e.Err)
}

func (e *ErrStoreUnavailable) Unwrap() error {
	return e.Err
}

// ErrQuery indicates an underlying query or aggregation failed. The message
// names the logical query only; driver internals stay in the logs.
type ErrQuery struct {
	Op  string // e.g. "fetch invoices"
	Err error
}

func (e *ErrQuery) Error() string {
	return fmt.Sprintf("failed to %s", e.Op)
}

func (e *ErrQuery) Unwrap() error {
	return e.Err
}

// ErrValidation indicates a bad caller input.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error on '%s': %s", e.Field, e.Message)
}
