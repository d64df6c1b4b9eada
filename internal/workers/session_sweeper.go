package workers

import (
	"context"
	"time"

	"github.com/sunway-travel/vacation-booking/internal/logger"
	"github.com/sunway-travel/vacation-booking/internal/store"
)

// SessionSweeper periodically clears expired session mirrors from the user
// table. Expiry is already enforced on the request path, so the sweeper is
// pure hygiene: it keeps the table free of dead rows for accounts that
// simply stopped sending requests.
type SessionSweeper struct {
	users    store.UserRepository
	interval time.Duration
	logger   *logger.Logger

	// now is injected so tests can pin the clock.
	now func() time.Time

	done chan struct{}
}

// NewSessionSweeper creates a sweeper that fires every interval.
func NewSessionSweeper(users store.UserRepository, interval time.Duration, logger *logger.Logger) *SessionSweeper {
	return &SessionSweeper{
		users:    users,
		interval: interval,
		logger:   logger,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Run starts the sweep loop in its own goroutine.
func (s *SessionSweeper) Run() {
	s.logger.Info().Dur("interval", s.interval).Msg("session sweeper started")

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.sweep()
			case <-s.done:
				return
			}
		}
	}()
}

// Stop halts the sweep loop. A sweep already in flight finishes normally.
func (s *SessionSweeper) Stop() {
	close(s.done)
	s.logger.Info().Msg("session sweeper stopped")
}

func (s *SessionSweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), s.interval)
	defer cancel()

	cleared, err := s.users.SweepExpiredSessions(ctx, s.now())
	if err != nil {
		s.logger.Error().Err(err).Msg("error sweeping expired sessions")
		return
	}

	if cleared > 0 {
		s.logger.Info().Int64("cleared", cleared).Msg("expired sessions swept")
	}
}
