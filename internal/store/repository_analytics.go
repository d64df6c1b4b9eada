package store

import (
	"context"
	"fmt"

	"github.com/sunway-travel/vacation-booking/internal/logger"
	"github.com/sunway-travel/vacation-booking/models"
)

// Dashboard list sizes, matching what the admin UI renders.
const (
	dashboardTopFollowed = 5
	dashboardRecentTrips = 5
)

// analyticsRepository is the PostgreSQL-backed implementation of
// [AnalyticsRepository]. Every method is read-only.
type analyticsRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAnalyticsRepository constructs an [AnalyticsRepository] backed by the
// provided database connection and logger.
func NewAnalyticsRepository(db *DB, logger *logger.Logger) AnalyticsRepository {
	logger.Debug().Msg("creating analytics repository")
	return &analyticsRepository{
		db:     db,
		logger: logger,
	}
}

// DestinationStats returns follower counts grouped by destination. The LEFT
// JOIN keeps destinations with zero followers in the report.
func (r *analyticsRepository) DestinationStats(ctx context.Context) ([]models.DestinationStat, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, destinationStats)
	if err != nil {
		log.Err(err).Str("func", "*analyticsRepository.DestinationStats").Msg("error querying destination stats")
		return nil, storeError(err)
	}
	defer rows.Close()

	stats := make([]models.DestinationStat, 0)
	for rows.Next() {
		var s models.DestinationStat
		if err := rows.Scan(&s.Destination, &s.FollowerCount); err != nil {
			log.Err(err).Str("func", "*analyticsRepository.DestinationStats").Msg("error: scanning error")
			return nil, err
		}
		stats = append(stats, s)
	}

	if err := rows.Err(); err != nil {
		return nil, storeError(err)
	}

	return stats, nil
}

// VacationStats aggregates the analytics panel for a single vacation:
// follower count, total bookings, average rating (0 when unrated), and
// follower counts bucketed by calendar month.
func (r *analyticsRepository) VacationStats(ctx context.Context, vacationID int64) (models.VacationStats, error) {
	log := logger.FromContext(ctx)

	var stats models.VacationStats

	if err := r.db.QueryRowContext(ctx, followerCountForVacation, vacationID).Scan(&stats.FollowerCount); err != nil {
		log.Err(err).Str("func", "*analyticsRepository.VacationStats").Msg("error querying follower count")
		return models.VacationStats{}, storeError(err)
	}

	if err := r.db.QueryRowContext(ctx, bookingCountForVacation, vacationID).Scan(&stats.TotalBookings); err != nil {
		log.Err(err).Str("func", "*analyticsRepository.VacationStats").Msg("error querying booking count")
		return models.VacationStats{}, storeError(err)
	}

	if err := r.db.QueryRowContext(ctx, averageRatingForVacation, vacationID).Scan(&stats.AverageRating); err != nil {
		log.Err(err).Str("func", "*analyticsRepository.VacationStats").Msg("error querying average rating")
		return models.VacationStats{}, storeError(err)
	}

	rows, err := r.db.QueryContext(ctx, monthlyFollowersForVacation, vacationID)
	if err != nil {
		log.Err(err).Str("func", "*analyticsRepository.VacationStats").Msg("error querying monthly followers")
		return models.VacationStats{}, storeError(err)
	}
	defer rows.Close()

	stats.MonthlyFollowers = make([]models.MonthlyFollowerCount, 0)
	for rows.Next() {
		var m models.MonthlyFollowerCount
		if err := rows.Scan(&m.Month, &m.Count); err != nil {
			log.Err(err).Str("func", "*analyticsRepository.VacationStats").Msg("error: scanning error")
			return models.VacationStats{}, err
		}
		stats.MonthlyFollowers = append(stats.MonthlyFollowers, m)
	}

	if err := rows.Err(); err != nil {
		return models.VacationStats{}, storeError(err)
	}

	return stats, nil
}

// Dashboard assembles the admin analytics overview: total vacations, top
// followed destinations, price spread, and the most recent trips.
func (r *analyticsRepository) Dashboard(ctx context.Context) (models.Dashboard, error) {
	log := logger.FromContext(ctx)

	var dashboard models.Dashboard

	query, args, err := buildTotalVacationsQuery()
	if err != nil {
		return models.Dashboard{}, fmt.Errorf("error building sql query: %w", err)
	}
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&dashboard.TotalVacations); err != nil {
		log.Err(err).Str("func", "*analyticsRepository.Dashboard").Msg("error querying total vacations")
		return models.Dashboard{}, storeError(err)
	}

	query, args, err = buildMostFollowedQuery(dashboardTopFollowed)
	if err != nil {
		return models.Dashboard{}, fmt.Errorf("error building sql query: %w", err)
	}
	mostFollowed, err := r.queryDestinationStats(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*analyticsRepository.Dashboard").Msg("error querying most followed")
		return models.Dashboard{}, err
	}
	dashboard.MostFollowed = mostFollowed

	query, args, err = buildPriceStatsQuery()
	if err != nil {
		return models.Dashboard{}, fmt.Errorf("error building sql query: %w", err)
	}
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&dashboard.PriceStats.Min,
		&dashboard.PriceStats.Max,
		&dashboard.PriceStats.Avg,
	); err != nil {
		log.Err(err).Str("func", "*analyticsRepository.Dashboard").Msg("error querying price stats")
		return models.Dashboard{}, storeError(err)
	}

	query, args, err = buildRecentVacationsQuery(dashboardRecentTrips)
	if err != nil {
		return models.Dashboard{}, fmt.Errorf("error building sql query: %w", err)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*analyticsRepository.Dashboard").Msg("error querying recent vacations")
		return models.Dashboard{}, storeError(err)
	}
	defer rows.Close()

	dashboard.RecentVacations = make([]models.RecentVacation, 0, dashboardRecentTrips)
	for rows.Next() {
		var v models.RecentVacation
		if err := rows.Scan(&v.Destination, &v.StartDate); err != nil {
			log.Err(err).Str("func", "*analyticsRepository.Dashboard").Msg("error: scanning error")
			return models.Dashboard{}, err
		}
		dashboard.RecentVacations = append(dashboard.RecentVacations, v)
	}

	if err := rows.Err(); err != nil {
		return models.Dashboard{}, storeError(err)
	}

	return dashboard, nil
}

func (r *analyticsRepository) queryDestinationStats(ctx context.Context, query string, args ...any) ([]models.DestinationStat, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeError(err)
	}
	defer rows.Close()

	stats := make([]models.DestinationStat, 0)
	for rows.Next() {
		var s models.DestinationStat
		if err := rows.Scan(&s.Destination, &s.FollowerCount); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}

	if err := rows.Err(); err != nil {
		return nil, storeError(err)
	}

	return stats, nil
}
