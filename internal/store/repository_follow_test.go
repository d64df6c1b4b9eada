package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"

	"github.com/sunway-travel/vacation-booking/internal/logger"
)

func newTestFollowRepo(t *testing.T) (*followRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &followRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestFollow_InsertsPair(t *testing.T) {
	repo, mock, db := newTestFollowRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO followers").
		WithArgs(int64(7), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Follow(context.Background(), 7, 42); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFollow_DuplicateIsNoOp(t *testing.T) {
	repo, mock, db := newTestFollowRepo(t)
	defer db.Close()

	// ON CONFLICT DO NOTHING: the statement succeeds with zero rows affected
	mock.ExpectExec("INSERT INTO followers").
		WithArgs(int64(7), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Follow(context.Background(), 7, 42); err != nil {
		t.Fatalf("duplicate follow must be a no-op, got %v", err)
	}
}

func TestFollow_VacationVanished(t *testing.T) {
	repo, mock, db := newTestFollowRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO followers").
		WithArgs(int64(7), int64(42)).
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	err := repo.Follow(context.Background(), 7, 42)
	if !errors.Is(err, ErrVacationNotFound) {
		t.Fatalf("expected ErrVacationNotFound, got %v", err)
	}
}

func TestUnfollow_DeletesPair(t *testing.T) {
	repo, mock, db := newTestFollowRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM followers").
		WithArgs(int64(7), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Unfollow(context.Background(), 7, 42); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUnfollow_AbsentPairIsNoOp(t *testing.T) {
	repo, mock, db := newTestFollowRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM followers").
		WithArgs(int64(7), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Unfollow(context.Background(), 7, 42); err != nil {
		t.Fatalf("unfollowing an absent pair must be a no-op, got %v", err)
	}
}
