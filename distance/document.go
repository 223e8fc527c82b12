package distance

import (
	"fmt"
	"io"
	"maps"
	"math"
	"os"
	"slices"

	"github.com/sugawarayuuta/sonnet"

	"github.com/katalvlaran/tourplan/tsp"
)

// DefaultUnits is assumed when a Document does not name its units.
const DefaultUnits = "km"

// Document is the JSON form of a precomputed distance table.
//
// Exactly one of Distances or Pairs must be present:
//
//	{"locations": ["A","B"], "distances": [[0, 5], [7, 0]]}
//	{"locations": ["A","B"], "pairs": {"A": {"B": 5}, "B": {"A": 7}}}
//
// In the square form row i holds distances from locations[i]; the diagonal
// is ignored and null marks an unreachable pair.
type Document struct {
	Start     string                        `json:"start,omitempty"`
	Units     string                        `json:"units,omitempty"`
	Locations []string                      `json:"locations"`
	Distances [][]*float64                  `json:"distances,omitempty"`
	Pairs     map[string]map[string]float64 `json:"pairs,omitempty"`
}

// Decode reads a Document from r.
func Decode(r io.Reader) (*Document, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("distance: read document: %w", err)
	}
	var doc Document
	if err = sonnet.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocument, err)
	}

	return &doc, nil
}

// LoadFile decodes the Document stored at path.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("distance: open document: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Encode writes d to w as JSON.
func (d *Document) Encode(w io.Writer) error {
	raw, err := sonnet.Marshal(d)
	if err != nil {
		return fmt.Errorf("distance: encode document: %w", err)
	}
	_, err = w.Write(append(raw, '\n'))

	return err
}

// NewDocument captures m in square form. Missing entries become null.
func NewDocument(m *Matrix, start tsp.Location, units string) *Document {
	var (
		n    = m.Len()
		doc  = &Document{Start: string(start), Units: units, Locations: make([]string, n)}
		i, j int
	)
	doc.Distances = make([][]*float64, n)
	for i = 0; i < n; i++ {
		doc.Locations[i] = string(m.names[i])
		doc.Distances[i] = make([]*float64, n)
		for j = 0; j < n; j++ {
			if i == j {
				zero := 0.0
				doc.Distances[i][j] = &zero
				continue
			}
			if d, ok := m.Lookup(m.names[i], m.names[j]); ok {
				doc.Distances[i][j] = &d
			}
		}
	}

	return doc
}

// UnitsOrDefault returns d.Units, or DefaultUnits when unset.
func (d *Document) UnitsOrDefault() string {
	if d.Units == "" {
		return DefaultUnits
	}

	return d.Units
}

// Names returns the normalized location names in document order.
func (d *Document) Names() ([]tsp.Location, error) {
	if len(d.Locations) == 0 {
		return nil, fmt.Errorf("%w: no locations", ErrDocument)
	}

	return NormalizeAll(d.Locations)
}

// StartLocation returns the normalized start, defaulting to the first
// location. Membership is not checked here; the solver reports it.
func (d *Document) StartLocation() (tsp.Location, error) {
	if d.Start != "" {
		return Normalize(d.Start), nil
	}
	if len(d.Locations) == 0 {
		return "", fmt.Errorf("%w: no locations", ErrDocument)
	}

	return Normalize(d.Locations[0]), nil
}

// Matrix builds the distance table. Location names, pair keys and the
// square-form order all go through the same normalization.
func (d *Document) Matrix() (*Matrix, error) {
	names, err := d.Names()
	if err != nil {
		return nil, err
	}

	switch {
	case d.Distances != nil && d.Pairs != nil:
		return nil, fmt.Errorf("%w: both distances and pairs given", ErrDocument)
	case d.Distances != nil:
		return d.squareMatrix(names)
	case d.Pairs != nil:
		return d.pairMatrix(names)
	default:
		return nil, fmt.Errorf("%w: no distances", ErrDocument)
	}
}

func (d *Document) squareMatrix(names []tsp.Location) (*Matrix, error) {
	var (
		rows = make([][]float64, len(d.Distances))
		i, j int
	)
	for i = range d.Distances {
		rows[i] = make([]float64, len(d.Distances[i]))
		for j = range d.Distances[i] {
			if d.Distances[i][j] == nil {
				rows[i][j] = math.NaN()
				continue
			}
			rows[i][j] = *d.Distances[i][j]
		}
	}

	return FromRows(names, rows)
}

func (d *Document) pairMatrix(names []tsp.Location) (*Matrix, error) {
	m, err := NewMatrix(names...)
	if err != nil {
		return nil, err
	}
	var (
		rows     = make(map[tsp.Location]string, len(d.Pairs))
		from, to tsp.Location
	)
	// Keys are visited in sorted order so that errors are reproducible.
	for _, rawFrom := range slices.Sorted(maps.Keys(d.Pairs)) {
		from = Normalize(rawFrom)
		if prev, dup := rows[from]; dup {
			return nil, fmt.Errorf("%w: pair keys %q and %q both name %q", ErrDuplicateName, prev, rawFrom, from)
		}
		rows[from] = rawFrom

		row := d.Pairs[rawFrom]
		cols := make(map[tsp.Location]string, len(row))
		for _, rawTo := range slices.Sorted(maps.Keys(row)) {
			to = Normalize(rawTo)
			if prev, dup := cols[to]; dup {
				return nil, fmt.Errorf("%w: pair keys %q and %q under %q both name %q",
					ErrDuplicateName, prev, rawTo, rawFrom, to)
			}
			cols[to] = rawTo
			if err = m.Set(from, to, row[rawTo]); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}
