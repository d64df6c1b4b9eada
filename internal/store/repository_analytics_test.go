package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/sunway-travel/vacation-booking/internal/logger"
)

func newTestAnalyticsRepo(t *testing.T) (*analyticsRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &analyticsRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestDestinationStats_OrderedByFollowers(t *testing.T) {
	repo, mock, db := newTestAnalyticsRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"destination", "follower_count"}).
		AddRow("Lisbon", 12).
		AddRow("Oslo", 3).
		AddRow("Reykjavik", 0)

	mock.ExpectQuery("SELECT v.destination, COUNT").
		WillReturnRows(rows)

	stats, err := repo.DestinationStats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stats) != 3 {
		t.Fatalf("expected 3 stats, got %d", len(stats))
	}
	if stats[0].Destination != "Lisbon" || stats[0].FollowerCount != 12 {
		t.Errorf("unexpected first stat: %+v", stats[0])
	}
	if stats[2].FollowerCount != 0 {
		t.Errorf("expected zero-follower destination to be kept, got %+v", stats[2])
	}
}

func TestVacationStats_AggregatesAllPanels(t *testing.T) {
	repo, mock, db := newTestAnalyticsRepo(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM followers`).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings`).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
	mock.ExpectQuery(`SELECT COALESCE\(AVG\(rating\), 0\) FROM ratings`).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(4.5))
	mock.ExpectQuery("to_char").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.
			NewRows([]string{"month", "count"}).
			AddRow("2026-07", 2).
			AddRow("2026-08", 5))

	stats, err := repo.VacationStats(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.FollowerCount != 7 {
		t.Errorf("expected FollowerCount=7, got %d", stats.FollowerCount)
	}
	if stats.TotalBookings != 4 {
		t.Errorf("expected TotalBookings=4, got %d", stats.TotalBookings)
	}
	if stats.AverageRating != 4.5 {
		t.Errorf("expected AverageRating=4.5, got %f", stats.AverageRating)
	}
	if len(stats.MonthlyFollowers) != 2 || stats.MonthlyFollowers[1].Month != "2026-08" {
		t.Errorf("unexpected monthly followers: %+v", stats.MonthlyFollowers)
	}
}

func TestDashboard_AssemblesOverview(t *testing.T) {
	repo, mock, db := newTestAnalyticsRepo(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM vacations`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(9))
	mock.ExpectQuery("follower_count DESC LIMIT 5").
		WillReturnRows(sqlmock.
			NewRows([]string{"destination", "follower_count"}).
			AddRow("Lisbon", 12))
	mock.ExpectQuery(`COALESCE\(MIN\(price\), 0\)`).
		WillReturnRows(sqlmock.
			NewRows([]string{"min", "max", "avg"}).
			AddRow(450.0, 3100.0, 1420.75))
	mock.ExpectQuery("ORDER BY start_date DESC LIMIT 5").
		WillReturnRows(sqlmock.
			NewRows([]string{"destination", "start_date"}).
			AddRow("Oslo", time.Date(2026, time.December, 20, 0, 0, 0, 0, time.UTC)))

	dashboard, err := repo.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dashboard.TotalVacations != 9 {
		t.Errorf("expected TotalVacations=9, got %d", dashboard.TotalVacations)
	}
	if len(dashboard.MostFollowed) != 1 || dashboard.MostFollowed[0].Destination != "Lisbon" {
		t.Errorf("unexpected most followed: %+v", dashboard.MostFollowed)
	}
	if dashboard.PriceStats.Min != 450.0 || dashboard.PriceStats.Max != 3100.0 {
		t.Errorf("unexpected price stats: %+v", dashboard.PriceStats)
	}
	if len(dashboard.RecentVacations) != 1 || dashboard.RecentVacations[0].Destination != "Oslo" {
		t.Errorf("unexpected recent vacations: %+v", dashboard.RecentVacations)
	}
}
