package service

import (
	"context"

	"github.com/sunway-travel/vacation-booking/internal/logger"
	"github.com/sunway-travel/vacation-booking/internal/store"
	"github.com/sunway-travel/vacation-booking/models"
)

// analyticsService implements AnalyticsService over the read-only aggregate
// repository. It adds parameter validation and existence checks; all
// aggregation happens in SQL.
type analyticsService struct {
	analytics store.AnalyticsRepository
	vacations store.VacationRepository
	log       *logger.Logger
}

// NewAnalyticsService wires an AnalyticsService over the given repositories.
func NewAnalyticsService(analytics store.AnalyticsRepository, vacations store.VacationRepository, log *logger.Logger) AnalyticsService {
	return &analyticsService{analytics: analytics, vacations: vacations, log: log}
}

// DestinationStats returns follower counts per destination, most followed
// first. Destinations with zero followers are included.
func (s *analyticsService) DestinationStats(ctx context.Context) ([]models.DestinationStat, error) {
	return s.analytics.DestinationStats(ctx)
}

// VacationStats returns the follower count, booking count, average rating and
// monthly follower series for one vacation. Returns store.ErrVacationNotFound
// when the vacation does not exist.
func (s *analyticsService) VacationStats(ctx context.Context, vacationID int64) (models.VacationStats, error) {
	log := logger.FromContext(ctx)

	if vacationID <= 0 {
		return models.VacationStats{}, ErrInvalidDataProvided
	}

	exists, err := s.vacations.VacationExists(ctx, vacationID)
	if err != nil {
		log.Error().Err(err).Str("func", "VacationStats").Msg("error checking vacation")
		return models.VacationStats{}, err
	}
	if !exists {
		return models.VacationStats{}, store.ErrVacationNotFound
	}

	return s.analytics.VacationStats(ctx, vacationID)
}

// Dashboard returns the admin overview: total vacations, most followed
// destinations, price statistics and upcoming departures.
func (s *analyticsService) Dashboard(ctx context.Context) (models.Dashboard, error) {
	return s.analytics.Dashboard(ctx)
}
