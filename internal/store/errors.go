package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new
	// user fails because a user with the same email already exists.
	ErrEmailAlreadyExists = errors.New("email already in use")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrVacationNotFound is returned when a query or mutation targets a
	// vacation id that does not exist in the database.
	ErrVacationNotFound = errors.New("vacation was not found")

	// ErrStoreUnavailable marks a transient database failure (lost
	// connection, deadlock, shutdown, timed-out call). Safe to retry with
	// backoff.
	ErrStoreUnavailable = errors.New("store unavailable")
)
