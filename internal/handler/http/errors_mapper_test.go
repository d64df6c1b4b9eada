package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sunway-travel/vacation-booking/internal/service"
	"github.com/sunway-travel/vacation-booking/internal/store"
)

func TestStatusFromError_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid data → 400", service.ErrInvalidDataProvided, http.StatusBadRequest},
		{"invalid credentials → 401", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"session expired → 401", service.ErrSessionExpired, http.StatusUnauthorized},
		{"no active session → 401", service.ErrNoActiveSession, http.StatusUnauthorized},
		{"user not found → 401", service.ErrUserNotFound, http.StatusUnauthorized},
		{"token creation failed → 500", service.ErrTokenCreationFailed, http.StatusInternalServerError},
		{"email already exists → 409", store.ErrEmailAlreadyExists, http.StatusConflict},
		{"vacation not found → 404", store.ErrVacationNotFound, http.StatusNotFound},
		{"empty auth header → 401", ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
		{"unknown error → 500", assert.AnError, http.StatusInternalServerError},
		{"wrapped sentinel keeps its status", fmt.Errorf("context: %w", store.ErrVacationNotFound), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, statusFromError(tt.err))
		})
	}
}

func TestMessageFromError(t *testing.T) {
	t.Run("mapped sentinel keeps its wording", func(t *testing.T) {
		assert.Equal(t, store.ErrVacationNotFound.Error(), messageFromError(store.ErrVacationNotFound))
	})

	t.Run("wrapped sentinel collapses to the sentinel wording", func(t *testing.T) {
		err := fmt.Errorf("listing vacations: %w", service.ErrInvalidDataProvided)
		assert.Equal(t, service.ErrInvalidDataProvided.Error(), messageFromError(err))
	})

	t.Run("unknown error collapses to generic text", func(t *testing.T) {
		msg := messageFromError(assert.AnError)
		assert.Equal(t, http.StatusText(http.StatusInternalServerError), msg)
		assert.NotContains(t, msg, assert.AnError.Error())
	})
}
