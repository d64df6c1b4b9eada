package store

import (
	"context"
	"time"

	"github.com/sunway-travel/vacation-booking/models"
)

// UserRepository persists user accounts and their mirrored session state.
//
// Every session mutation is a single-row keyed UPDATE, so no transaction
// spans more than one statement and concurrent refreshes degrade to
// last-write-wins without ever lengthening a session beyond one window.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// SetSessionToken mirrors an issued credential (or refreshes its sliding
	// expiry in place) on the user row keyed by email.
	SetSessionToken(ctx context.Context, email, token string, expire time.Time) error

	// ClearSessionByEmail nulls both session fields for the given account.
	ClearSessionByEmail(ctx context.Context, email string) error

	// ClearSessionByToken nulls the session fields of whichever row stores
	// the presented raw token. Used as the best-effort cleanup path when a
	// credential no longer parses. Returns how many rows matched.
	ClearSessionByToken(ctx context.Context, token string) (int64, error)

	// SweepExpiredSessions clears every session mirror whose stored expiry
	// precedes now. Returns the number of rows cleared.
	SweepExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// VacationRepository owns the vacations table: admin CRUD plus the
// follow-annotated listing used by every authenticated user.
type VacationRepository interface {
	CreateVacation(ctx context.Context, vacation models.Vacation) (models.Vacation, error)
	UpdateVacation(ctx context.Context, vacation models.Vacation) error
	DeleteVacation(ctx context.Context, vacationID int64) error
	VacationExists(ctx context.Context, vacationID int64) (bool, error)

	// ListVacationsForUser returns every vacation annotated with the
	// requesting user's follow state via a correlated existence check.
	ListVacationsForUser(ctx context.Context, userID int64) ([]models.VacationWithFollow, error)
}

// FollowRepository is the follow ledger: an idempotent many-to-many relation
// between users and vacations.
type FollowRepository interface {
	Follow(ctx context.Context, userID, vacationID int64) error
	Unfollow(ctx context.Context, userID, vacationID int64) error
}

// AnalyticsRepository serves the read-only aggregate queries behind the
// stats and dashboard endpoints.
type AnalyticsRepository interface {
	DestinationStats(ctx context.Context) ([]models.DestinationStat, error)
	VacationStats(ctx context.Context, vacationID int64) (models.VacationStats, error)
	Dashboard(ctx context.Context) (models.Dashboard, error)
}
