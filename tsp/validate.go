// Package tsp - input validation and distance prefetch.
//
// Validation runs in two stages:
//  1. Location set and start (no lookups performed on failure).
//  2. Every ordered pair is read once from the Lookup into a dense buffer;
//     the first missing, non-finite or negative value aborts the solve.
//
// After stage 2 the search never calls the Lookup again, so hot loops work on
// a flat []float64 and parallel workers share it read-only.
package tsp

import (
	"fmt"
	"math"
)

// instance is a validated problem in internal index space.
// names[0] is the start; names[1:] keep the caller's order minus the start.
type instance struct {
	n     int
	names []Location
	w     []float64 // w[i*n+j] = distance names[i] -> names[j]; diagonal unused
}

// validateLocations checks the location set and start without touching dist.
// It returns the internal ordering (start first).
//
// Complexity: O(n) time, O(n) space.
func validateLocations(start Location, locations []Location, dist Lookup) ([]Location, error) {
	if dist == nil {
		return nil, fmt.Errorf("%w: nil distance lookup", ErrInvalidInput)
	}
	if len(locations) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 locations, got %d", ErrInvalidInput, len(locations))
	}

	var (
		seen     = make(map[Location]struct{}, len(locations))
		names    = make([]Location, 1, len(locations))
		hasStart bool
		loc      Location
	)
	names[0] = start
	for _, loc = range locations {
		if loc == "" {
			return nil, fmt.Errorf("%w: empty location name", ErrInvalidInput)
		}
		if _, dup := seen[loc]; dup {
			return nil, fmt.Errorf("%w: duplicate location %q", ErrInvalidInput, loc)
		}
		seen[loc] = struct{}{}
		if loc == start {
			hasStart = true
			continue
		}
		names = append(names, loc)
	}
	if !hasStart {
		return nil, fmt.Errorf("%w: start %q is not among the locations", ErrInvalidInput, start)
	}

	return names, nil
}

// prefetch reads all n·(n−1) ordered pairs in row-major index order.
//
// Complexity: O(n²) lookups, O(n²) space.
func prefetch(names []Location, dist Lookup) (*instance, error) {
	var (
		n    = len(names)
		w    = make([]float64, n*n)
		i, j int
		d    float64
		ok   bool
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			d, ok = dist.Lookup(names[i], names[j])
			if !ok {
				return nil, &PairError{From: names[i], To: names[j], Missing: true, Err: ErrIncompleteDistanceData}
			}
			if math.IsNaN(d) || math.IsInf(d, 0) {
				return nil, &PairError{From: names[i], To: names[j], Value: d, Err: ErrIncompleteDistanceData}
			}
			if d < 0 {
				return nil, &PairError{From: names[i], To: names[j], Value: d, Err: ErrNegativeDistance}
			}
			w[i*n+j] = d
		}
	}

	return &instance{n: n, names: names, w: w}, nil
}

// newInstance runs both validation stages.
func newInstance(start Location, locations []Location, dist Lookup) (*instance, error) {
	names, err := validateLocations(start, locations, dist)
	if err != nil {
		return nil, err
	}

	return prefetch(names, dist)
}
