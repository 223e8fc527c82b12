package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sugawarayuuta/sonnet"

	"github.com/katalvlaran/tourplan/tsp"
)

// Run is one solved route as recorded by the CLI.
type Run struct {
	ID        string // uuid; generated by SaveRun when empty
	Matrix    string // source label: stored matrix name, input file, or "random"
	Start     tsp.Location
	Route     tsp.Route
	Total     float64
	Units     string
	Evaluated int64
	Workers   int
	Elapsed   time.Duration
	CreatedAt time.Time // set by SaveRun when zero
}

// SaveRun records r and returns its ID.
func (s *Store) SaveRun(ctx context.Context, r Run) (string, error) {
	if len(r.Route) == 0 {
		return "", errors.New("store: run without route")
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = s.now()
	}
	route, err := sonnet.Marshal(r.Route)
	if err != nil {
		return "", fmt.Errorf("encode route: %w", err)
	}

	_, err = s.sql.ExecContext(ctx, `
		INSERT INTO runs (id, matrix, start, route, total, units, evaluated, workers, elapsed_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Matrix, string(r.Start), string(route), r.Total, r.Units,
		r.Evaluated, r.Workers, r.Elapsed.Milliseconds(), formatTime(r.CreatedAt),
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	return r.ID, nil
}

// Runs returns the most recent runs for matrix, newest first. An empty matrix
// returns runs of every source. limit ≤ 0 means 20.
func (s *Store) Runs(ctx context.Context, matrix string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.sql.QueryContext(ctx, `
		SELECT id, matrix, start, route, total, units, evaluated, workers, elapsed_ms, created_at
		FROM runs
		WHERE ? = '' OR matrix = ?
		ORDER BY created_at DESC, id
		LIMIT ?`, matrix, matrix, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var (
			r       Run
			start   string
			route   string
			elapsed int64
			created string
		)
		if err = rows.Scan(&r.ID, &r.Matrix, &start, &route, &r.Total, &r.Units,
			&r.Evaluated, &r.Workers, &elapsed, &created); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if err = sonnet.Unmarshal([]byte(route), &r.Route); err != nil {
			return nil, fmt.Errorf("decode route of run %s: %w", r.ID, err)
		}
		r.Start = tsp.Location(start)
		r.Elapsed = time.Duration(elapsed) * time.Millisecond
		if r.CreatedAt, err = parseTime(created); err != nil {
			return nil, fmt.Errorf("run %s: %w", r.ID, err)
		}
		out = append(out, r)
	}

	return out, rows.Err()
}
