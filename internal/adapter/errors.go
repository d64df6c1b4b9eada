package adapter

import "errors"

// Sentinel errors mapped from API response statuses. Callers match against
// them with [errors.Is]; the wrapped message carries the server's body.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
)
