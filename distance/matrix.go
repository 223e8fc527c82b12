package distance

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/tourplan/tsp"
)

// Matrix is a row-major n×n table of distances between named locations.
// Entry (i, j) is the cost of travelling from names[i] to names[j]; it need
// not equal (j, i). The diagonal is never stored.
type Matrix struct {
	names []tsp.Location
	index map[tsp.Location]int
	data  []float64 // flat backing storage, length == n*n
	set   []bool    // set[i*n+j] reports whether entry (i, j) was provided
}

var _ tsp.Lookup = (*Matrix)(nil)

// NewMatrix creates an empty matrix over names, in the given order.
// Names are used verbatim; run them through NormalizeAll first when they come
// from user input.
//
// Complexity: O(n²) memory.
func NewMatrix(names ...tsp.Location) (*Matrix, error) {
	if len(names) == 0 {
		return nil, ErrTooFewLocations
	}
	var (
		n     = len(names)
		index = make(map[tsp.Location]int, n)
		i     int
		name  tsp.Location
	)
	for i, name = range names {
		if name == "" {
			return nil, ErrEmptyName
		}
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
		index[name] = i
	}

	return &Matrix{
		names: append([]tsp.Location(nil), names...),
		index: index,
		data:  make([]float64, n*n),
		set:   make([]bool, n*n),
	}, nil
}

// FromRows builds a matrix from a square table where rows[i][j] is the
// distance from names[i] to names[j]. Diagonal cells are ignored; NaN cells
// are left undefined (missing).
//
// Complexity: O(n²).
func FromRows(names []tsp.Location, rows [][]float64) (*Matrix, error) {
	m, err := NewMatrix(names...)
	if err != nil {
		return nil, err
	}
	var n = len(names)
	if len(rows) != n {
		return nil, fmt.Errorf("%w: %d rows for %d locations", ErrShape, len(rows), n)
	}

	var i, j int
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrShape, i, len(rows[i]), n)
		}
		for j = 0; j < n; j++ {
			if i == j || math.IsNaN(rows[i][j]) {
				continue
			}
			if err = m.setIndex(i, j, rows[i][j]); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// Set stores the distance from → to.
func (m *Matrix) Set(from, to tsp.Location, d float64) error {
	i, ok := m.index[from]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLocation, from)
	}
	j, ok := m.index[to]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLocation, to)
	}
	if i == j {
		return fmt.Errorf("%w: %q", ErrSelfDistance, from)
	}

	return m.setIndex(i, j, d)
}

func (m *Matrix) setIndex(i, j int, d float64) error {
	if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
		return fmt.Errorf("%w: %q -> %q = %v", ErrInvalidDistance, m.names[i], m.names[j], d)
	}
	var k = i*len(m.names) + j
	m.data[k] = d
	m.set[k] = true

	return nil
}

// Lookup implements tsp.Lookup. ok is false for unknown names, the diagonal
// and entries that were never set.
//
// Complexity: O(1).
func (m *Matrix) Lookup(from, to tsp.Location) (float64, bool) {
	i, ok := m.index[from]
	if !ok {
		return 0, false
	}
	j, ok := m.index[to]
	if !ok || i == j {
		return 0, false
	}
	var k = i*len(m.names) + j
	if !m.set[k] {
		return 0, false
	}

	return m.data[k], true
}

// Len returns the number of locations.
func (m *Matrix) Len() int { return len(m.names) }

// Names returns a copy of the location names in matrix order.
func (m *Matrix) Names() []tsp.Location {
	return append([]tsp.Location(nil), m.names...)
}

// Has reports whether name is a location of the matrix.
func (m *Matrix) Has(name tsp.Location) bool {
	_, ok := m.index[name]
	return ok
}

// Each calls fn for every defined entry in row-major order.
func (m *Matrix) Each(fn func(from, to tsp.Location, d float64)) {
	var (
		n    = len(m.names)
		i, j int
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if m.set[i*n+j] {
				fn(m.names[i], m.names[j], m.data[i*n+j])
			}
		}
	}
}

// Missing lists the off-diagonal ordered pairs without an entry, row-major.
func (m *Matrix) Missing() [][2]tsp.Location {
	var (
		n    = len(m.names)
		out  [][2]tsp.Location
		i, j int
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i != j && !m.set[i*n+j] {
				out = append(out, [2]tsp.Location{m.names[i], m.names[j]})
			}
		}
	}

	return out
}

// String renders the table one row per line; "-" marks missing entries and
// the diagonal.
func (m *Matrix) String() string {
	var (
		sb   strings.Builder
		n    = len(m.names)
		i, j int
	)
	for i = 0; i < n; i++ {
		sb.WriteString(string(m.names[i]))
		sb.WriteString(": [")
		for j = 0; j < n; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			if m.set[i*n+j] {
				fmt.Fprintf(&sb, "%g", m.data[i*n+j])
			} else {
				sb.WriteString("-")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
