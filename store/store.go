// Package store persists distance matrices and solved runs in SQLite.
//
// The database is optional for the CLI: it lets an operator keep a matrix
// fetched once from a routing service and re-plan against it, and keeps a
// history of solved routes.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a named matrix does not exist.
var ErrNotFound = errors.New("store: not found")

// timeLayout is fixed width so that created_at columns sort chronologically
// as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string { return t.UTC().Format(timeLayout) }

func parseTime(v string) (time.Time, error) {
	t, err := time.Parse(timeLayout, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse created_at %q: %w", v, err)
	}

	return t, nil
}

// Store wraps a SQLite database connection.
type Store struct {
	sql *sql.DB
	now func() time.Time
}

// Open opens (or creates) the SQLite database at path and runs migrations.
// Use ":memory:" for a throwaway database.
func Open(ctx context.Context, path string) (*Store, error) {
	sqlDB, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// One connection: keeps ":memory:" databases shared and writes serialized.
	sqlDB.SetMaxOpenConns(1)
	if err = sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	s := &Store{sql: sqlDB, now: time.Now}
	if err = s.migrate(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("migrate db: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.sql.Close()
}

func (s *Store) migrate(ctx context.Context) error {
	version := 0
	// Missing table on a fresh database leaves version at 0.
	_ = s.sql.QueryRowContext(ctx, "SELECT version FROM schema_version ORDER BY version DESC LIMIT 1").Scan(&version)

	if version < 1 {
		_, err := s.sql.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS schema_version (version INTEGER PRIMARY KEY);

			CREATE TABLE IF NOT EXISTS matrices (
				name       TEXT PRIMARY KEY,
				units      TEXT NOT NULL,
				created_at TEXT NOT NULL
			);

			CREATE TABLE IF NOT EXISTS matrix_locations (
				matrix   TEXT NOT NULL REFERENCES matrices(name) ON DELETE CASCADE,
				position INTEGER NOT NULL,
				name     TEXT NOT NULL,
				PRIMARY KEY (matrix, position)
			);

			CREATE TABLE IF NOT EXISTS matrix_distances (
				matrix      TEXT NOT NULL REFERENCES matrices(name) ON DELETE CASCADE,
				origin      TEXT NOT NULL,
				destination TEXT NOT NULL,
				distance    REAL NOT NULL,
				PRIMARY KEY (matrix, origin, destination)
			);

			CREATE TABLE IF NOT EXISTS runs (
				id         TEXT PRIMARY KEY,
				matrix     TEXT NOT NULL,
				start      TEXT NOT NULL,
				route      TEXT NOT NULL,
				total      REAL NOT NULL,
				units      TEXT NOT NULL,
				evaluated  INTEGER NOT NULL,
				workers    INTEGER NOT NULL,
				elapsed_ms INTEGER NOT NULL,
				created_at TEXT NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_runs_matrix ON runs(matrix, created_at);

			INSERT OR IGNORE INTO schema_version (version) VALUES (1);
		`)
		if err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}

	return nil
}
