package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/sunway-travel/vacation-booking/internal/logger"
)

// ErrNoCachedSession is returned by Load when the cache holds no session.
var ErrNoCachedSession = errors.New("no cached session")

// SessionCache persists the client session to a local sqlite file so the CLI
// can restore it across restarts. The cache holds at most one row.
type SessionCache struct {
	db     *sql.DB
	logger *logger.Logger
}

const createCacheSchema = `CREATE TABLE IF NOT EXISTS client_session (
    id          INTEGER PRIMARY KEY CHECK (id = 1),
    token       TEXT    NOT NULL,
    user_id     INTEGER NOT NULL,
    name        TEXT    NOT NULL,
    role        TEXT    NOT NULL,
    saved_at    TIMESTAMP NOT NULL
)`

// NewSessionCache opens (creating if necessary) the sqlite file at path and
// ensures the schema exists.
func NewSessionCache(ctx context.Context, path string, log *logger.Logger) (*SessionCache, error) {
	if err := createLocalDBFileIfNotExists(path); err != nil {
		log.Err(err).Str("func", "NewSessionCache").Msg("error creating cache file")
		return nil, fmt.Errorf("error creating cache file: %w", err)
	}

	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		log.Err(err).Str("func", "NewSessionCache").Msg("error opening cache")
		return nil, fmt.Errorf("error opening session cache: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewSessionCache").Msg("error connecting cache (ping)")
		return nil, err
	}

	if _, err = conn.ExecContext(ctx, createCacheSchema); err != nil {
		log.Err(err).Str("func", "NewSessionCache").Msg("error creating cache schema")
		return nil, fmt.Errorf("error creating session cache schema: %w", err)
	}

	return &SessionCache{db: conn, logger: log}, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating cache file: %w", err)
		}
		f.Close()
	}

	return nil
}

// Save upserts the single cached session row.
func (c *SessionCache) Save(ctx context.Context, state State) error {
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO client_session (id, token, user_id, name, role, saved_at)
         VALUES (1, $1, $2, $3, $4, $5)
         ON CONFLICT (id) DO UPDATE SET
             token = excluded.token,
             user_id = excluded.user_id,
             name = excluded.name,
             role = excluded.role,
             saved_at = excluded.saved_at`,
		state.Token, state.User.ID, state.User.Name, state.User.Role, state.ValidatedAt)
	if err != nil {
		c.logger.Err(err).Str("func", "Save").Msg("error saving cached session")
		return fmt.Errorf("error saving cached session: %w", err)
	}
	return nil
}

// Load returns the cached session, or ErrNoCachedSession when the cache is
// empty.
func (c *SessionCache) Load(ctx context.Context) (State, error) {
	row := c.db.QueryRowContext(ctx,
		`SELECT token, user_id, name, role, saved_at FROM client_session WHERE id = 1`)

	var (
		state   State
		savedAt time.Time
	)
	err := row.Scan(&state.Token, &state.User.ID, &state.User.Name, &state.User.Role, &savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return State{}, ErrNoCachedSession
	}
	if err != nil {
		c.logger.Err(err).Str("func", "Load").Msg("error loading cached session")
		return State{}, fmt.Errorf("error loading cached session: %w", err)
	}

	state.ValidatedAt = savedAt
	return state, nil
}

// Clear removes the cached session row.
func (c *SessionCache) Clear(ctx context.Context) error {
	if _, err := c.db.ExecContext(ctx, `DELETE FROM client_session WHERE id = 1`); err != nil {
		c.logger.Err(err).Str("func", "Clear").Msg("error clearing cached session")
		return fmt.Errorf("error clearing cached session: %w", err)
	}
	return nil
}

// Close releases the underlying sqlite handle.
func (c *SessionCache) Close() error {
	return c.db.Close()
}
