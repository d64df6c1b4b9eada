package http

import "errors"

// Errors produced while extracting the bearer token from the
// "Authorization" header. The auth middleware maps each of them to a 401.
var (
	// ErrEmptyAuthorizationHeader: the header is absent from the request.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader: the header has no space-separated
	// token part after the scheme.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken: the scheme is present but the token value is blank.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)
