package store

import (
	"context"
	"fmt"

	"github.com/sunway-travel/vacation-booking/internal/logger"
	"github.com/sunway-travel/vacation-booking/models"
)

// vacationRepository is the PostgreSQL-backed implementation of
// [VacationRepository].
type vacationRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewVacationRepository constructs a [VacationRepository] backed by the
// provided database connection and logger.
func NewVacationRepository(db *DB, logger *logger.Logger) VacationRepository {
	logger.Debug().Msg("creating vacation repository")
	return &vacationRepository{
		db:     db,
		logger: logger,
	}
}

// CreateVacation inserts a new vacation and returns it with server-assigned
// fields (VacationID, CreatedAt) populated from the RETURNING clause.
func (r *vacationRepository) CreateVacation(ctx context.Context, vacation models.Vacation) (models.Vacation, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createVacation,
		vacation.Destination, vacation.Description, vacation.StartDate, vacation.EndDate, vacation.Price, vacation.Image)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*vacationRepository.CreateVacation").Msg("error inserting vacation")
		return models.Vacation{}, storeError(err)
	}

	if err := row.Scan(
		&vacation.VacationID,
		&vacation.Destination,
		&vacation.Description,
		&vacation.StartDate,
		&vacation.EndDate,
		&vacation.Price,
		&vacation.Image,
		&vacation.CreatedAt,
	); err != nil {
		log.Err(err).Str("func", "*vacationRepository.CreateVacation").Msg("error: scanning error")
		return models.Vacation{}, err
	}

	return vacation, nil
}

// UpdateVacation overwrites every editable field of the row identified by
// vacation.VacationID. Updating a missing row returns [ErrVacationNotFound].
func (r *vacationRepository) UpdateVacation(ctx context.Context, vacation models.Vacation) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateVacationQuery(vacation)
	if err != nil {
		log.Err(err).Str("func", "*vacationRepository.UpdateVacation").Msg("error building update query")
		return fmt.Errorf("error building sql query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*vacationRepository.UpdateVacation").Msg("error updating vacation")
		return storeError(err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrVacationNotFound
	}

	return nil
}

// DeleteVacation removes the row; deleting an absent id is not an error.
// Follow rows cascade at the schema level.
func (r *vacationRepository) DeleteVacation(ctx context.Context, vacationID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteVacation, vacationID); err != nil {
		log.Err(err).Str("func", "*vacationRepository.DeleteVacation").Msg("error deleting vacation")
		return storeError(err)
	}

	return nil
}

// VacationExists reports whether the vacation id references a stored row.
// Used as the read-only existence check before a follow is recorded.
func (r *vacationRepository) VacationExists(ctx context.Context, vacationID int64) (bool, error) {
	log := logger.FromContext(ctx)

	var exists bool
	row := r.db.QueryRowContext(ctx, vacationExists, vacationID)
	if err := row.Scan(&exists); err != nil {
		log.Err(err).Str("func", "*vacationRepository.VacationExists").Msg("error checking vacation existence")
		return false, storeError(err)
	}

	return exists, nil
}

// ListVacationsForUser returns every vacation ordered by start date,
// annotated with whether the requesting user follows it. The follow state
// comes from a per-row correlated EXISTS, not a join, so the result stays at
// one row per vacation regardless of follower count.
func (r *vacationRepository) ListVacationsForUser(ctx context.Context, userID int64) ([]models.VacationWithFollow, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listVacationsForUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*vacationRepository.ListVacationsForUser").Msg("error listing vacations")
		return nil, storeError(err)
	}
	defer rows.Close()

	vacations := make([]models.VacationWithFollow, 0)
	for rows.Next() {
		var v models.VacationWithFollow
		if err := rows.Scan(
			&v.VacationID,
			&v.Destination,
			&v.Description,
			&v.StartDate,
			&v.EndDate,
			&v.Price,
			&v.Image,
			&v.CreatedAt,
			&v.IsFollowed,
		); err != nil {
			log.Err(err).Str("func", "*vacationRepository.ListVacationsForUser").Msg("error: scanning error")
			return nil, err
		}
		vacations = append(vacations, v)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*vacationRepository.ListVacationsForUser").Msg("error iterating rows")
		return nil, storeError(err)
	}

	return vacations, nil
}
