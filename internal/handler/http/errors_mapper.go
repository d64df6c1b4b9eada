package http

import (
	"errors"
	"net/http"

	"github.com/sunway-travel/vacation-booking/internal/service"
	"github.com/sunway-travel/vacation-booking/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,
	service.ErrSessionExpired:      http.StatusUnauthorized,
	service.ErrNoActiveSession:     http.StatusUnauthorized,
	service.ErrUserNotFound:        http.StatusUnauthorized,
	service.ErrTokenCreationFailed: http.StatusInternalServerError,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrVacationNotFound:   http.StatusNotFound,

	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrEmptyToken:                 http.StatusUnauthorized,
}

// statusFromError maps a sentinel error to its HTTP status code. Anything
// unrecognized is a 500 so storage and driver failures surface as a generic
// server error.
func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError picks the user-facing message for an error. Mapped
// sentinels carry safe, stable wording; everything else collapses to the
// generic status text.
func messageFromError(err error) string {
	for target := range errorStatusMap {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return http.StatusText(http.StatusInternalServerError)
}
