package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/tourplan/distance"
	"github.com/katalvlaran/tourplan/tsp"
)

// MatrixInfo describes a stored matrix.
type MatrixInfo struct {
	Name      string
	Units     string
	Locations int
	CreatedAt time.Time
}

// SaveMatrix stores m under name, replacing any previous matrix of that name.
// Location order and missing entries are preserved.
func (s *Store) SaveMatrix(ctx context.Context, name, units string, m *distance.Matrix) (err error) {
	if name == "" {
		return errors.New("store: empty matrix name")
	}
	tx, err := s.sql.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM matrices WHERE name = ?`, name); err != nil {
		return fmt.Errorf("replace matrix %q: %w", name, err)
	}
	if _, err = tx.ExecContext(ctx,
		`INSERT INTO matrices (name, units, created_at) VALUES (?, ?, ?)`,
		name, units, formatTime(s.now()),
	); err != nil {
		return fmt.Errorf("insert matrix %q: %w", name, err)
	}

	for i, loc := range m.Names() {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO matrix_locations (matrix, position, name) VALUES (?, ?, ?)`,
			name, i, string(loc),
		); err != nil {
			return fmt.Errorf("insert location %q: %w", loc, err)
		}
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO matrix_distances (matrix, origin, destination, distance) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare distances: %w", err)
	}
	defer stmt.Close()

	m.Each(func(from, to tsp.Location, d float64) {
		if err != nil {
			return
		}
		if _, err = stmt.ExecContext(ctx, name, string(from), string(to), d); err != nil {
			err = fmt.Errorf("insert distance %q -> %q: %w", from, to, err)
		}
	})
	if err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}

// LoadMatrix returns the matrix stored under name and its units.
func (s *Store) LoadMatrix(ctx context.Context, name string) (*distance.Matrix, string, error) {
	var units string
	err := s.sql.QueryRowContext(ctx, `SELECT units FROM matrices WHERE name = ?`, name).Scan(&units)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, "", fmt.Errorf("%w: matrix %q", ErrNotFound, name)
	}
	if err != nil {
		return nil, "", fmt.Errorf("load matrix %q: %w", name, err)
	}

	names, err := s.locations(ctx, name)
	if err != nil {
		return nil, "", err
	}
	m, err := distance.NewMatrix(names...)
	if err != nil {
		return nil, "", fmt.Errorf("load matrix %q: %w", name, err)
	}

	rows, err := s.sql.QueryContext(ctx,
		`SELECT origin, destination, distance FROM matrix_distances WHERE matrix = ?`, name)
	if err != nil {
		return nil, "", fmt.Errorf("load distances %q: %w", name, err)
	}
	defer rows.Close()

	var (
		from, to string
		d        float64
	)
	for rows.Next() {
		if err = rows.Scan(&from, &to, &d); err != nil {
			return nil, "", fmt.Errorf("scan distance: %w", err)
		}
		if err = m.Set(tsp.Location(from), tsp.Location(to), d); err != nil {
			return nil, "", fmt.Errorf("load matrix %q: %w", name, err)
		}
	}
	if err = rows.Err(); err != nil {
		return nil, "", fmt.Errorf("load distances %q: %w", name, err)
	}

	return m, units, nil
}

func (s *Store) locations(ctx context.Context, matrix string) ([]tsp.Location, error) {
	rows, err := s.sql.QueryContext(ctx,
		`SELECT name FROM matrix_locations WHERE matrix = ? ORDER BY position`, matrix)
	if err != nil {
		return nil, fmt.Errorf("load locations %q: %w", matrix, err)
	}
	defer rows.Close()

	var (
		out  []tsp.Location
		name string
	)
	for rows.Next() {
		if err = rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		out = append(out, tsp.Location(name))
	}

	return out, rows.Err()
}

// ListMatrices returns stored matrices ordered by name.
func (s *Store) ListMatrices(ctx context.Context) ([]MatrixInfo, error) {
	rows, err := s.sql.QueryContext(ctx, `
		SELECT m.name, m.units, m.created_at, COUNT(l.position)
		FROM matrices m LEFT JOIN matrix_locations l ON l.matrix = m.name
		GROUP BY m.name, m.units, m.created_at
		ORDER BY m.name`)
	if err != nil {
		return nil, fmt.Errorf("list matrices: %w", err)
	}
	defer rows.Close()

	var out []MatrixInfo
	for rows.Next() {
		var (
			info    MatrixInfo
			created string
		)
		if err = rows.Scan(&info.Name, &info.Units, &created, &info.Locations); err != nil {
			return nil, fmt.Errorf("scan matrix: %w", err)
		}
		if info.CreatedAt, err = parseTime(created); err != nil {
			return nil, fmt.Errorf("matrix %q: %w", info.Name, err)
		}
		out = append(out, info)
	}

	return out, rows.Err()
}
