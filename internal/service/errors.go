package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a request payload is missing
	// required fields or carries values that fail basic validation.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned when login fails because the email is
	// unknown or the password does not match.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrSessionExpired is returned when a presented credential no longer
	// parses or its stored sliding expiry has passed. The server-side session
	// mirror is cleared before this error is returned.
	ErrSessionExpired = errors.New("session expired")

	// ErrNoActiveSession is returned when a structurally valid credential
	// refers to an account that has no stored session, for example after a
	// forced logout.
	ErrNoActiveSession = errors.New("no active session")

	// ErrUserNotFound is returned when a credential references an account that
	// no longer exists.
	ErrUserNotFound = errors.New("user not found")

	// ErrTokenCreationFailed is returned when signing a new session credential
	// fails.
	ErrTokenCreationFailed = errors.New("failed to create session token")
)
