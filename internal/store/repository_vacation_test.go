package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/sunway-travel/vacation-booking/internal/logger"
	"github.com/sunway-travel/vacation-booking/models"
)

func newTestVacationRepo(t *testing.T) (*vacationRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &vacationRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func vacationColumns() []string {
	return []string{"vacation_id", "destination", "description", "start_date", "end_date", "price", "image", "created_at"}
}

func TestCreateVacation_Success(t *testing.T) {
	repo, mock, db := newTestVacationRepo(t)
	defer db.Close()

	start := time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.October, 8, 0, 0, 0, 0, time.UTC)

	vacation := models.Vacation{
		Destination: "Lisbon",
		Description: "A week by the Tagus",
		StartDate:   models.Date{Time: start},
		EndDate:     models.Date{Time: end},
		Price:       1290.50,
		Image:       "lisbon.jpg",
	}

	rows := sqlmock.
		NewRows(vacationColumns()).
		AddRow(42, vacation.Destination, vacation.Description, start, end, vacation.Price, vacation.Image, time.Now())

	mock.ExpectQuery("INSERT INTO vacations").
		WithArgs(vacation.Destination, vacation.Description, vacation.StartDate, vacation.EndDate, vacation.Price, vacation.Image).
		WillReturnRows(rows)

	created, err := repo.CreateVacation(context.Background(), vacation)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.VacationID != 42 {
		t.Errorf("expected VacationID=42, got %d", created.VacationID)
	}
}

func TestUpdateVacation_NotFound(t *testing.T) {
	repo, mock, db := newTestVacationRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE vacations").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateVacation(context.Background(), models.Vacation{VacationID: 404, Destination: "Nowhere"})
	if !errors.Is(err, ErrVacationNotFound) {
		t.Fatalf("expected ErrVacationNotFound, got %v", err)
	}
}

func TestUpdateVacation_Success(t *testing.T) {
	repo, mock, db := newTestVacationRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE vacations").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateVacation(context.Background(), models.Vacation{VacationID: 42, Destination: "Porto"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestVacationExists(t *testing.T) {
	repo, mock, db := newTestVacationRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.VacationExists(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exists {
		t.Error("expected vacation to exist")
	}
}

func TestListVacationsForUser_AnnotatesFollowState(t *testing.T) {
	repo, mock, db := newTestVacationRepo(t)
	defer db.Close()

	start := time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.October, 8, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	rows := sqlmock.
		NewRows(append(vacationColumns(), "is_followed")).
		AddRow(1, "Lisbon", "desc", start, end, 1290.50, "lisbon.jpg", now, true).
		AddRow(2, "Oslo", "desc", start, end, 2100.00, "oslo.jpg", now, false)

	mock.ExpectQuery("SELECT(.|\n)+FROM vacations v").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	vacations, err := repo.ListVacationsForUser(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vacations) != 2 {
		t.Fatalf("expected 2 vacations, got %d", len(vacations))
	}
	if !vacations[0].IsFollowed {
		t.Error("expected first vacation to be followed")
	}
	if vacations[1].IsFollowed {
		t.Error("expected second vacation to not be followed")
	}
}

func TestListVacationsForUser_Empty(t *testing.T) {
	repo, mock, db := newTestVacationRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT(.|\n)+FROM vacations v").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(append(vacationColumns(), "is_followed")))

	vacations, err := repo.ListVacationsForUser(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vacations == nil || len(vacations) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", vacations)
	}
}
