package service

import (
	"context"

	"github.com/sunway-travel/vacation-booking/internal/logger"
	"github.com/sunway-travel/vacation-booking/internal/store"
)

// followService implements FollowService over the follow ledger.
//
// Both operations are idempotent: following twice or unfollowing something
// never followed succeeds without error, so the ledger state converges no
// matter how requests are retried or interleaved.
type followService struct {
	follows   store.FollowRepository
	vacations store.VacationRepository
	log       *logger.Logger
}

// NewFollowService wires a FollowService over the given repositories.
func NewFollowService(follows store.FollowRepository, vacations store.VacationRepository, log *logger.Logger) FollowService {
	return &followService{follows: follows, vacations: vacations, log: log}
}

// Follow records that the user follows the vacation. Returns
// store.ErrVacationNotFound when the vacation does not exist; a duplicate
// follow is a silent no-op.
func (s *followService) Follow(ctx context.Context, userID, vacationID int64) error {
	log := logger.FromContext(ctx)

	if userID <= 0 || vacationID <= 0 {
		return ErrInvalidDataProvided
	}

	exists, err := s.vacations.VacationExists(ctx, vacationID)
	if err != nil {
		log.Error().Err(err).Str("func", "Follow").Msg("error checking vacation")
		return err
	}
	if !exists {
		return store.ErrVacationNotFound
	}

	if err = s.follows.Follow(ctx, userID, vacationID); err != nil {
		log.Error().Err(err).Str("func", "Follow").Int64("vacation_id", vacationID).Msg("error recording follow")
		return err
	}
	return nil
}

// Unfollow removes the user's follow of the vacation. It is a plain delete
// with no existence check: unfollowing a never-followed pair, or a vacation
// that has since been removed, is a silent no-op.
func (s *followService) Unfollow(ctx context.Context, userID, vacationID int64) error {
	log := logger.FromContext(ctx)

	if userID <= 0 || vacationID <= 0 {
		return ErrInvalidDataProvided
	}

	if err := s.follows.Unfollow(ctx, userID, vacationID); err != nil {
		log.Error().Err(err).Str("func", "Unfollow").Int64("vacation_id", vacationID).Msg("error removing follow")
		return err
	}
	return nil
}
