package store

import (
	"context"
	"fmt"

	"github.com/sunway-travel/vacation-booking/internal/config"
	"github.com/sunway-travel/vacation-booking/internal/logger"
)

// Storages aggregates every repository the service layer depends on.
type Storages struct {
	UserRepository      UserRepository
	VacationRepository  VacationRepository
	FollowRepository    FollowRepository
	AnalyticsRepository AnalyticsRepository
}

// NewStorages connects to the database, applies pending migrations, and
// wires all repositories over the shared connection pool.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		UserRepository:      NewUserRepository(db, log),
		VacationRepository:  NewVacationRepository(db, log),
		FollowRepository:    NewFollowRepository(db, log),
		AnalyticsRepository: NewAnalyticsRepository(db, log),
	}, nil
}
