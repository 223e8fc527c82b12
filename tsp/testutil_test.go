// Package tsp_test - shared fixtures for the solver tests.
//
// Helpers:
//   - grid: a Lookup over a [][]float64 keyed by location position.
//   - counting: wraps a Lookup and counts calls.
//   - randomGrid: deterministic integer-valued asymmetric matrices.
//   - oracleMin: independent brute force (Heap's algorithm, recursive) used
//     as the reference optimum; it shares no code with the solver.
package tsp_test

import (
	"fmt"
	"math"
	"math/rand"
	"sync/atomic"

	"github.com/katalvlaran/tourplan/tsp"
)

// grid is a dense test Lookup; names[i] indexes row/column i.
type grid struct {
	names []tsp.Location
	index map[tsp.Location]int
	d     [][]float64
}

func newGrid(names []tsp.Location, d [][]float64) *grid {
	idx := make(map[tsp.Location]int, len(names))
	for i, n := range names {
		idx[n] = i
	}

	return &grid{names: names, index: idx, d: d}
}

// Lookup treats NaN cells as missing entries so tests can punch holes.
func (g *grid) Lookup(from, to tsp.Location) (float64, bool) {
	i, ok := g.index[from]
	if !ok {
		return 0, false
	}
	j, ok := g.index[to]
	if !ok {
		return 0, false
	}
	if math.IsNaN(g.d[i][j]) {
		return 0, false
	}

	return g.d[i][j], true
}

// counting counts Lookup calls; safe for concurrent use.
type counting struct {
	inner tsp.Lookup
	calls atomic.Int64
}

func (c *counting) Lookup(from, to tsp.Location) (float64, bool) {
	c.calls.Add(1)

	return c.inner.Lookup(from, to)
}

// names returns L0…L(n−1).
func names(n int) []tsp.Location {
	out := make([]tsp.Location, n)
	for i := range out {
		out[i] = tsp.Location(fmt.Sprintf("L%d", i))
	}

	return out
}

// uniform returns an n×n matrix with v everywhere off the diagonal.
func uniform(n int, v float64) [][]float64 {
	d := make([][]float64, n)
	for i := range d {
		d[i] = make([]float64, n)
		for j := range d[i] {
			if i != j {
				d[i][j] = v
			}
		}
	}

	return d
}

// randomGrid builds an asymmetric matrix with integer values in [1, maxW].
// Integer values keep sums exact regardless of addition order.
func randomGrid(n int, seed int64, maxW int) [][]float64 {
	r := rand.New(rand.NewSource(seed))
	d := make([][]float64, n)
	for i := range d {
		d[i] = make([]float64, n)
		for j := range d[i] {
			if i != j {
				d[i][j] = float64(1 + r.Intn(maxW))
			}
		}
	}

	return d
}

// oracleMin enumerates all orders of the non-start indices with Heap's
// algorithm and returns the minimal closed-route cost from start.
func oracleMin(d [][]float64, start int) float64 {
	rest := make([]int, 0, len(d)-1)
	for i := range d {
		if i != start {
			rest = append(rest, i)
		}
	}
	best := math.Inf(1)
	score := func(p []int) {
		c, prev := 0.0, start
		for _, v := range p {
			c += d[prev][v]
			prev = v
		}
		c += d[prev][start]
		if c < best {
			best = c
		}
	}

	var heap func(k int)
	heap = func(k int) {
		if k <= 1 {
			score(rest)
			return
		}
		heap(k - 1)
		for i := 0; i < k-1; i++ {
			if k%2 == 0 {
				rest[i], rest[k-1] = rest[k-1], rest[i]
			} else {
				rest[0], rest[k-1] = rest[k-1], rest[0]
			}
			heap(k - 1)
		}
	}
	heap(len(rest))

	return best
}
