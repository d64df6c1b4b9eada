// Package adapter provides the client-side gateway to the vacation-booking
// REST API. It owns the HTTP transport details (base URL handling, bearer
// token injection, status-to-error mapping) so the rest of the client
// programs against a typed interface.
package adapter

import (
	"context"

	"github.com/sunway-travel/vacation-booking/models"
)

// ServerAdapter is the typed client for the vacation-booking API.
type ServerAdapter interface {
	// SetToken stores the bearer token used on authenticated requests.
	SetToken(token string)

	// Token returns the currently held bearer token, empty if none.
	Token() string

	// Register creates a new account.
	Register(ctx context.Context, firstName, lastName, email, password string) error

	// Login exchanges credentials for a session credential. On success the
	// token is stored via SetToken and the session user is returned.
	Login(ctx context.Context, email, password string) (models.SessionUser, error)

	// ValidateToken re-validates the held credential against the server and
	// returns the refreshed session state.
	ValidateToken(ctx context.Context) (models.ValidateResponse, error)

	// ListVacations fetches the catalog annotated with the caller's follow
	// state.
	ListVacations(ctx context.Context) ([]models.VacationWithFollow, error)

	// Follow marks the vacation as followed by the caller.
	Follow(ctx context.Context, vacationID int64) error

	// Unfollow removes the caller's follow of the vacation.
	Unfollow(ctx context.Context, vacationID int64) error
}
