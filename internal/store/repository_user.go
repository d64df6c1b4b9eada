package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"

	"github.com/sunway-travel/vacation-booking/internal/logger"
	"github.com/sunway-travel/vacation-booking/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup, and every mutation of the mirrored
// session state against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.FirstName, user.LastName, user.Email, user.PasswordHash, user.Role)

	// create user in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, storeError(err)
		}
	}

	// scan saved user from db
	if err := scanUser(row, &user); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, err
	}

	return user, nil
}

// FindUserByEmail retrieves the user record whose email matches exactly
// (emails are stored case-sensitive).
//
// Error handling:
//   - No matching row → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByEmail, email)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: row is nil")
		return models.User{}, storeError(err)
	}

	if err := scanUser(row, &foundUser); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: scanning error")
		return models.User{}, err
	}

	return foundUser, nil
}

// FindUserByID retrieves a user record by its primary key. Used by the
// session validator after the embedded user id has been decoded from a
// presented credential.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByID, userID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: row is nil")
		return models.User{}, storeError(err)
	}

	if err := scanUser(row, &foundUser); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: scanning error")
		return models.User{}, err
	}

	return foundUser, nil
}

// SetSessionToken mirrors the issued credential and its sliding expiry into
// the user row keyed by email. The same statement serves both the initial
// mirror write at login and the refresh-in-place on every validated request;
// token and expiry always change together.
func (r *userRepository) SetSessionToken(ctx context.Context, email, token string, expire time.Time) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, setSessionToken, token, expire, email); err != nil {
		log.Err(err).Str("func", "*userRepository.SetSessionToken").Msg("error updating session token")
		return storeError(err)
	}

	return nil
}

// ClearSessionByEmail nulls both session fields for the given account in a
// single UPDATE, preserving the set-together/cleared-together invariant.
func (r *userRepository) ClearSessionByEmail(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, clearSessionByEmail, email); err != nil {
		log.Err(err).Str("func", "*userRepository.ClearSessionByEmail").Msg("error clearing session")
		return storeError(err)
	}

	return nil
}

// ClearSessionByToken nulls the session fields of whichever row stores the
// presented raw token. It exists to clear orphaned mirrors even when the
// credential itself no longer parses.
func (r *userRepository) ClearSessionByToken(ctx context.Context, token string) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, clearSessionByToken, token)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ClearSessionByToken").Msg("error clearing session by token")
		return 0, storeError(err)
	}

	affected, _ := result.RowsAffected()
	return affected, nil
}

// SweepExpiredSessions clears every session mirror whose stored expiry
// precedes now. Run periodically by the session sweeper worker.
func (r *userRepository) SweepExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, sweepExpiredSessions, now)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SweepExpiredSessions").Msg("error sweeping expired sessions")
		return 0, storeError(err)
	}

	affected, _ := result.RowsAffected()
	return affected, nil
}

// scanUser reads a full users row into dst in column order.
func scanUser(row *sql.Row, dst *models.User) error {
	return row.Scan(
		&dst.UserID,
		&dst.FirstName,
		&dst.LastName,
		&dst.Email,
		&dst.PasswordHash,
		&dst.Role,
		&dst.Token,
		&dst.TokenExpire,
		&dst.CreatedAt,
	)
}
