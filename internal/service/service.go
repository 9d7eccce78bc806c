// Package service contains the role-scoped dashboard view-models. Each
// service loads its own slice of rows, keeps a local read-model, and merges
// the authoritative row back in after every successful write instead of
// re-fetching the full set.
//
// Error handling follows the application-wide taxonomy: read failures are
// logged and yield empty lists; write failures are returned with the data
// service's message intact; validation failures abort before any call.
package service

import "errors"

var (
	// ErrMissingFields means a required form field was blank; the operation
	// was not attempted and local state is unchanged.
	ErrMissingFields = errors.New("required fields are missing")

	// ErrNotConfirmed means a destructive operation was requested without
	// the explicit confirmation step; nothing was done.
	ErrNotConfirmed = errors.New("operation requires confirmation")

	// ErrNotPending means a loan decision was requested for a loan that is
	// no longer pending.
	ErrNotPending = errors.New("loan is not pending review")

	// ErrNoSession means an operation that needs a signed-in identity was
	// called without one.
	ErrNoSession = errors.New("no active session")
)
