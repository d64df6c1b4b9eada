package service

import (
	"github.com/sunway-travel/vacation-booking/internal/config"
	"github.com/sunway-travel/vacation-booking/internal/logger"
	"github.com/sunway-travel/vacation-booking/internal/store"
)

// Services aggregates every business-logic service behind one constructor so
// the composition root wires the layer in a single call.
type Services struct {
	Auth      AuthService
	Vacation  VacationService
	Follow    FollowService
	Analytics AnalyticsService
}

// NewServices builds the full service layer over the given storages.
func NewServices(storages *store.Storages, cfg config.App, log *logger.Logger) *Services {
	return &Services{
		Auth:      NewAuthService(storages.UserRepository, cfg, log),
		Vacation:  NewVacationService(storages.VacationRepository, log),
		Follow:    NewFollowService(storages.FollowRepository, storages.VacationRepository, log),
		Analytics: NewAnalyticsService(storages.AnalyticsRepository, storages.VacationRepository, log),
	}
}
