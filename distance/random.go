// Package distance - deterministic synthetic matrices.
//
// Random matrices drive benchmarks, demos and tests without a routing
// service. The same (names, seed, maxDist, symmetric) always yields the same
// table on every platform.
package distance

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/tourplan/tsp"
)

// defaultSeed is used when callers pass seed == 0.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// Random fills a matrix over names with distances drawn uniformly from
// [1, maxDist], rounded to one decimal. With symmetric, (j, i) mirrors (i, j).
//
// Complexity: O(n²).
func Random(names []tsp.Location, seed int64, maxDist float64, symmetric bool) (*Matrix, error) {
	if math.IsNaN(maxDist) || math.IsInf(maxDist, 0) || maxDist < 1 {
		return nil, fmt.Errorf("%w: max distance %v", ErrInvalidDistance, maxDist)
	}
	m, err := NewMatrix(names...)
	if err != nil {
		return nil, err
	}

	var (
		r    = rngFromSeed(seed)
		n    = len(names)
		i, j int
		d    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j || (symmetric && j < i) {
				continue
			}
			d = math.Round((1+r.Float64()*(maxDist-1))*10) / 10
			_ = m.setIndex(i, j, d) // d is finite and ≥ 1
			if symmetric {
				_ = m.setIndex(j, i, d)
			}
		}
	}

	return m, nil
}

// SyntheticNames returns n names "Site 01", "Site 02", … (zero-padded to the
// width of n so they sort naturally).
func SyntheticNames(n int) []tsp.Location {
	var (
		width = len(fmt.Sprint(n))
		out   = make([]tsp.Location, n)
		i     int
	)
	if width < 2 {
		width = 2
	}
	for i = range out {
		out[i] = tsp.Location(fmt.Sprintf("Site %0*d", width, i+1))
	}

	return out
}
