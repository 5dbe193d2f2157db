package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/notekeeper-app/notekeeper/internal/config"
	"github.com/notekeeper-app/notekeeper/internal/logger"
	"github.com/notekeeper-app/notekeeper/models"
)

const (
	createSessionTable = `CREATE TABLE IF NOT EXISTS session (
		id       INTEGER PRIMARY KEY CHECK (id = 1),
		user_id  INTEGER NOT NULL,
		token    TEXT    NOT NULL,
		saved_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`

	saveSession = `INSERT INTO session (id, user_id, token, saved_at)
		VALUES (1, $1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (id)
		DO UPDATE SET user_id = excluded.user_id, token = excluded.token, saved_at = excluded.saved_at;`

	loadSession = `SELECT user_id, token, saved_at FROM session WHERE id = 1;`

	clearSession = `DELETE FROM session WHERE id = 1;`
)

// sqliteSessionStore implements [SessionStore] on top of a local SQLite
// database. A single row holds the last successful sign-in.
type sqliteSessionStore struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewConnectSQLite opens (creating if necessary) the local SQLite session
// cache at cfg.DSN and ensures the session table exists.
func NewConnectSQLite(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (SessionStore, error) {
	if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file")
	}

	conn, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB")
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}

	if _, err = conn.ExecContext(ctx, createSessionTable); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating session table")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to local session cache")

	return &sqliteSessionStore{db: conn, logger: log}, nil
}

// SaveSession stores the bearer token for userID, replacing any previous
// session.
func (s *sqliteSessionStore) SaveSession(ctx context.Context, userID int64, token string) error {
	if _, err := s.db.ExecContext(ctx, saveSession, userID, token); err != nil {
		s.logger.Err(err).Str("func", "*sqliteSessionStore.SaveSession").Msg("error saving local session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// LoadSession returns the cached session or [ErrLocalSessionNotFound] when
// nothing has been saved yet.
func (s *sqliteSessionStore) LoadSession(ctx context.Context) (models.LocalSession, error) {
	var session models.LocalSession
	row := s.db.QueryRowContext(ctx, loadSession)

	if err := row.Scan(&session.UserID, &session.Token, &session.SavedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.LocalSession{}, ErrLocalSessionNotFound
		}
		s.logger.Err(err).Str("func", "*sqliteSessionStore.LoadSession").Msg("error scanning local session")
		return models.LocalSession{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return session, nil
}

// ClearSession drops the cached session. Clearing an empty cache is not an
// error.
func (s *sqliteSessionStore) ClearSession(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, clearSession); err != nil {
		s.logger.Err(err).Str("func", "*sqliteSessionStore.ClearSession").Msg("error clearing local session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	return nil
}
