package store

import (
	"context"

	"github.com/jackc/pgerrcode"

	"github.com/sunway-travel/vacation-booking/internal/logger"
)

// followRepository is the PostgreSQL-backed implementation of
// [FollowRepository]. Both mutations are single-statement and idempotent:
// the INSERT swallows duplicate pairs via ON CONFLICT DO NOTHING and the
// DELETE treats a missing pair as a no-op, so two concurrent calls for the
// same pair are always safe.
type followRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewFollowRepository constructs a [FollowRepository] backed by the provided
// database connection and logger.
func NewFollowRepository(db *DB, logger *logger.Logger) FollowRepository {
	logger.Debug().Msg("creating follow repository")
	return &followRepository{
		db:     db,
		logger: logger,
	}
}

// Follow records the (user, vacation) pair. A duplicate pair is a silent
// no-op. A foreign-key violation means the vacation vanished between the
// service-level existence check and the insert; it surfaces as
// [ErrVacationNotFound] so the race collapses into the same caller-visible
// outcome.
func (r *followRepository) Follow(ctx context.Context, userID, vacationID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, insertFollow, userID, vacationID); err != nil {
		log.Err(err).Str("func", "*followRepository.Follow").Msg("error inserting follow")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return ErrVacationNotFound
		default:
			return storeError(err)
		}
	}

	return nil
}

// Unfollow removes the (user, vacation) pair if present; absence is not an
// error.
func (r *followRepository) Unfollow(ctx context.Context, userID, vacationID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteFollow, userID, vacationID); err != nil {
		log.Err(err).Str("func", "*followRepository.Unfollow").Msg("error deleting follow")
		return storeError(err)
	}

	return nil
}
