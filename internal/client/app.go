// Package client implements the interactive CLI over the vacation-booking
// API: one subcommand per invocation, with the session restored from the
// local cache between runs.
package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/sunway-travel/vacation-booking/internal/adapter"
	"github.com/sunway-travel/vacation-booking/internal/config"
	"github.com/sunway-travel/vacation-booking/internal/logger"
	"github.com/sunway-travel/vacation-booking/internal/session"
)

// App dispatches CLI subcommands against the API server, keeping the
// session alive across invocations through the sqlite cache.
type App struct {
	server adapter.ServerAdapter
	store  *session.Store
	cache  *session.SessionCache
	cfg    config.Client
	logger *logger.Logger
}

// NewApp wires the CLI application.
func NewApp(server adapter.ServerAdapter, store *session.Store, cache *session.SessionCache, cfg config.Client, log *logger.Logger) *App {
	return &App{server: server, store: store, cache: cache, cfg: cfg, logger: log}
}

// Run executes one subcommand. Supported commands:
//
//	register <first> <last> <email> <password>
//	login <email> <password>
//	validate
//	list
//	follow <vacation-id>
//	unfollow <vacation-id>
//	logout
//	watch
//
// watch blocks and keeps re-validating the session until interrupted.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("no command given")
	}

	a.restoreSession(ctx)

	switch args[0] {
	case "register":
		if len(args) != 5 {
			return errors.New("usage: register <first> <last> <email> <password>")
		}
		if err := a.server.Register(ctx, args[1], args[2], args[3], args[4]); err != nil {
			return err
		}
		fmt.Println("registered, now log in")
		return nil

	case "login":
		if len(args) != 3 {
			return errors.New("usage: login <email> <password>")
		}
		user, err := a.server.Login(ctx, args[1], args[2])
		if err != nil {
			return err
		}
		a.store.Set(a.server.Token(), user)
		a.persistSession(ctx)
		fmt.Printf("logged in as %s (%s)\n", user.Name, user.Role)
		return nil

	case "validate":
		resp, err := a.server.ValidateToken(ctx)
		if err != nil {
			a.dropSession(ctx, err)
			return err
		}
		a.store.Set(a.server.Token(), resp.User)
		a.persistSession(ctx)
		fmt.Printf("session valid for %s (%s)\n", resp.User.Name, resp.User.Role)
		return nil

	case "list":
		vacations, err := a.server.ListVacations(ctx)
		if err != nil {
			a.dropSession(ctx, err)
			return err
		}
		for _, v := range vacations {
			followed := " "
			if v.IsFollowed {
				followed = "*"
			}
			fmt.Printf("%s %4d  %-20s %s — %s  %.2f\n",
				followed, v.VacationID, v.Destination,
				v.StartDate.Format("2006-01-02"), v.EndDate.Format("2006-01-02"), v.Price)
		}
		return nil

	case "follow", "unfollow":
		if len(args) != 2 {
			return fmt.Errorf("usage: %s <vacation-id>", args[0])
		}
		vacationID, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid vacation id %q", args[1])
		}
		if args[0] == "follow" {
			err = a.server.Follow(ctx, vacationID)
		} else {
			err = a.server.Unfollow(ctx, vacationID)
		}
		if err != nil {
			a.dropSession(ctx, err)
			return err
		}
		fmt.Printf("%sed vacation %d\n", args[0], vacationID)
		return nil

	case "logout":
		a.store.Clear()
		if a.cache != nil {
			if err := a.cache.Clear(ctx); err != nil {
				a.logger.Err(err).Msg("error clearing session cache")
			}
		}
		fmt.Println("logged out")
		return nil

	case "watch":
		return a.watch(ctx)

	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

// watch keeps the session alive by re-validating on the configured interval
// until the process is interrupted or the session dies server-side.
func (a *App) watch(ctx context.Context) error {
	if a.store.Token() == "" {
		return errors.New("no session to watch, log in first")
	}

	watchCtx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	job := session.NewJob(a.store, a.cache, a.server, a.logger)
	job.Start(watchCtx, a.cfg.RevalidateInterval)
	defer job.Stop()

	fmt.Fprintln(os.Stderr, "watching session, press Ctrl-C to stop")
	<-watchCtx.Done()
	return nil
}

// restoreSession loads a cached session, if any, into the store and adapter.
func (a *App) restoreSession(ctx context.Context) {
	if a.cache == nil {
		return
	}

	state, err := a.cache.Load(ctx)
	if err != nil {
		if !errors.Is(err, session.ErrNoCachedSession) {
			a.logger.Err(err).Msg("error loading cached session")
		}
		return
	}

	a.store.Set(state.Token, state.User)
	a.server.SetToken(state.Token)
}

// persistSession writes the current session through to the cache.
func (a *App) persistSession(ctx context.Context) {
	if a.cache == nil {
		return
	}

	if state, held := a.store.Get(); held {
		if err := a.cache.Save(ctx, state); err != nil {
			a.logger.Err(err).Msg("error persisting session cache")
		}
	}
}

// dropSession clears local state when the server rejects the credential.
func (a *App) dropSession(ctx context.Context, err error) {
	if !errors.Is(err, adapter.ErrUnauthorized) {
		return
	}

	a.store.Clear()
	if a.cache != nil {
		if clearErr := a.cache.Clear(ctx); clearErr != nil {
			a.logger.Err(clearErr).Msg("error clearing session cache")
		}
	}
}
