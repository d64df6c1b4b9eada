package service

import (
	"context"

	"github.com/sunway-travel/vacation-booking/internal/logger"
	"github.com/sunway-travel/vacation-booking/internal/store"
	"github.com/sunway-travel/vacation-booking/models"
)

// vacationService implements VacationService over the vacation repository.
type vacationService struct {
	vacations store.VacationRepository
	log       *logger.Logger
}

// NewVacationService wires a VacationService over the given repository.
func NewVacationService(vacations store.VacationRepository, log *logger.Logger) VacationService {
	return &vacationService{vacations: vacations, log: log}
}

// ListVacations returns the full catalog annotated with the requesting user's
// follow state, ordered by start date.
func (s *vacationService) ListVacations(ctx context.Context, userID int64) ([]models.VacationWithFollow, error) {
	if userID <= 0 {
		return nil, ErrInvalidDataProvided
	}
	return s.vacations.ListVacationsForUser(ctx, userID)
}

// AddVacation validates and persists a new vacation, returning it with its
// generated identifier. End date must not precede start date.
func (s *vacationService) AddVacation(ctx context.Context, vacation models.Vacation) (models.Vacation, error) {
	log := logger.FromContext(ctx)

	if !vacation.HasRequiredFields() {
		return models.Vacation{}, ErrInvalidDataProvided
	}
	if vacation.EndDate.Time.Before(vacation.StartDate.Time) {
		return models.Vacation{}, ErrInvalidDataProvided
	}

	created, err := s.vacations.CreateVacation(ctx, vacation)
	if err != nil {
		log.Error().Err(err).Str("func", "AddVacation").Msg("error creating vacation")
		return models.Vacation{}, err
	}

	log.Info().Str("func", "AddVacation").Int64("vacation_id", created.VacationID).Msg("vacation created")
	return created, nil
}

// EditVacation applies a full-record update to an existing vacation. Passes
// store.ErrVacationNotFound through unchanged.
func (s *vacationService) EditVacation(ctx context.Context, vacation models.Vacation) error {
	log := logger.FromContext(ctx)

	if vacation.VacationID <= 0 || !vacation.HasRequiredFields() {
		return ErrInvalidDataProvided
	}
	if vacation.EndDate.Time.Before(vacation.StartDate.Time) {
		return ErrInvalidDataProvided
	}

	if err := s.vacations.UpdateVacation(ctx, vacation); err != nil {
		log.Error().Err(err).Str("func", "EditVacation").Int64("vacation_id", vacation.VacationID).Msg("error updating vacation")
		return err
	}
	return nil
}

// RemoveVacation deletes a vacation; its follow ledger rows go with it via
// the cascading foreign key.
func (s *vacationService) RemoveVacation(ctx context.Context, vacationID int64) error {
	log := logger.FromContext(ctx)

	if vacationID <= 0 {
		return ErrInvalidDataProvided
	}

	if err := s.vacations.DeleteVacation(ctx, vacationID); err != nil {
		log.Error().Err(err).Str("func", "RemoveVacation").Int64("vacation_id", vacationID).Msg("error deleting vacation")
		return err
	}

	log.Info().Str("func", "RemoveVacation").Int64("vacation_id", vacationID).Msg("vacation deleted")
	return nil
}
