package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sunway-travel/vacation-booking/internal/adapter"
	"github.com/sunway-travel/vacation-booking/internal/logger"
)

// Job periodically re-validates the held session credential against the API.
// Each successful call also refreshes the server-side sliding window, so a
// running client keeps its session alive without user activity. On a 401 the
// local session is dropped: the server has already cleared its mirror.
type Job struct {
	store  *Store
	cache  *SessionCache
	server adapter.ServerAdapter
	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewJob creates a re-validation job. The job is idle until Start is called.
func NewJob(store *Store, cache *SessionCache, server adapter.ServerAdapter, log *logger.Logger) *Job {
	return &Job{store: store, cache: cache, server: server, logger: log}
}

// Start stops any previously running job, then launches a background
// goroutine that re-validates the session every interval. If interval is
// zero or negative it defaults to 30 seconds. The goroutine exits when ctx
// is cancelled or Stop is called.
func (j *Job) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.revalidate(jobCtx)
			}
		}
	}()
}

// Stop cancels the background goroutine's context and blocks until the
// goroutine has fully exited. Safe to call when the job is not running
// (no-op in that case).
func (j *Job) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *Job) revalidate(ctx context.Context) {
	if j.store.Token() == "" {
		return
	}

	j.server.SetToken(j.store.Token())
	resp, err := j.server.ValidateToken(ctx)
	if err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) {
			j.logger.Info().Msg("session no longer valid, clearing local state")
			j.store.Clear()
			if j.cache != nil {
				if clearErr := j.cache.Clear(ctx); clearErr != nil {
					j.logger.Err(clearErr).Msg("error clearing session cache")
				}
			}
			return
		}
		j.logger.Err(err).Msg("session re-validation failed")
		return
	}

	j.store.Set(j.store.Token(), resp.User)
	if j.cache != nil {
		if state, held := j.store.Get(); held {
			if saveErr := j.cache.Save(ctx, state); saveErr != nil {
				j.logger.Err(saveErr).Msg("error persisting session cache")
			}
		}
	}
}
