package service

import (
	"context"

	"github.com/sunway-travel/vacation-booking/models"
)

// AuthService owns account registration and the full session credential
// lifecycle: issuing on login, sliding re-validation on every authenticated
// request, and forced invalidation.
type AuthService interface {
	// RegisterUser creates a new account with a hashed password. The role is
	// always "user"; admin accounts are provisioned out of band.
	RegisterUser(ctx context.Context, user models.User, password string) (models.User, error)

	// Login verifies the credentials, mints a fresh session credential and
	// mirrors it on the user row with a full sliding window.
	Login(ctx context.Context, email, password string) (models.LoginResponse, error)

	// ValidateSession runs the complete re-validation state machine for a
	// presented raw credential: structural verification, session mirror
	// lookup, sliding expiry check and in-place refresh. On success the
	// stored expiry is pushed forward by one window; the credential string
	// itself never changes mid-session.
	ValidateSession(ctx context.Context, rawToken string) (models.SessionUser, error)

	// ParseSession runs only the structural half of validation: signature,
	// issuer and embedded expiry. No session mirror is consulted and nothing
	// is refreshed. ValidateSession uses it as its first step.
	ParseSession(ctx context.Context, rawToken string) (*models.Token, error)
}

// VacationService owns the vacation catalog: admin CRUD plus the
// follow-annotated listing served to every authenticated user.
type VacationService interface {
	ListVacations(ctx context.Context, userID int64) ([]models.VacationWithFollow, error)
	AddVacation(ctx context.Context, vacation models.Vacation) (models.Vacation, error)
	EditVacation(ctx context.Context, vacation models.Vacation) error
	RemoveVacation(ctx context.Context, vacationID int64) error
}

// FollowService owns the idempotent follow ledger between users and
// vacations.
type FollowService interface {
	Follow(ctx context.Context, userID, vacationID int64) error
	Unfollow(ctx context.Context, userID, vacationID int64) error
}

// AnalyticsService serves the read-only aggregate views: per-destination
// follower counts, per-vacation stats and the admin dashboard.
type AnalyticsService interface {
	DestinationStats(ctx context.Context) ([]models.DestinationStat, error)
	VacationStats(ctx context.Context, vacationID int64) (models.VacationStats, error)
	Dashboard(ctx context.Context) (models.Dashboard, error)
}
