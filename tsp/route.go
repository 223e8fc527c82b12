// Package tsp - route utilities.
//
// Helpers operating on named routes:
//   - ValidateRoute: enforce the closed-route invariants.
//   - RouteCost: re-sum a route through a Lookup.
//   - String: compact "A -> B -> A" rendering.
//
// Design:
//   - No logging, no panics on user input; only sentinel errors from types.go.
//   - O(n) time and space.
package tsp

import (
	"fmt"
	"math"
	"strings"
)

// ValidateRoute enforces, for n = len(locations):
//
//	len(route) == n+1, route[0] == route[n] == start,
//	every location appears exactly once in route[0:n].
//
// Complexity: O(n) time, O(n) space.
func ValidateRoute(route Route, start Location, locations []Location) error {
	var n = len(locations)
	if n < 2 {
		return fmt.Errorf("%w: need at least 2 locations, got %d", ErrInvalidInput, n)
	}
	if len(route) != n+1 {
		return fmt.Errorf("%w: length %d, want %d", ErrInvalidRoute, len(route), n+1)
	}
	if route[0] != start || route[n] != start {
		return fmt.Errorf("%w: must start and end at %q", ErrInvalidRoute, start)
	}

	var (
		want = make(map[Location]bool, n)
		loc  Location
	)
	for _, loc = range locations {
		want[loc] = false
	}
	for _, loc = range route[:n] {
		visited, known := want[loc]
		if !known {
			return fmt.Errorf("%w: unknown location %q", ErrInvalidRoute, loc)
		}
		if visited {
			return fmt.Errorf("%w: %q visited twice", ErrInvalidRoute, loc)
		}
		want[loc] = true
	}

	return nil
}

// RouteCost sums dist over consecutive pairs of route. It performs the same
// per-pair checks as the solver and returns a *PairError on bad data.
//
// Complexity: O(len(route)).
func RouteCost(route Route, dist Lookup) (float64, error) {
	if dist == nil {
		return 0, fmt.Errorf("%w: nil distance lookup", ErrInvalidInput)
	}
	if len(route) < 2 {
		return 0, fmt.Errorf("%w: length %d", ErrInvalidRoute, len(route))
	}

	var (
		sum  float64
		d    float64
		ok   bool
		i    int
		a, b Location
	)
	for i = 0; i+1 < len(route); i++ {
		a, b = route[i], route[i+1]
		d, ok = dist.Lookup(a, b)
		switch {
		case !ok:
			return 0, &PairError{From: a, To: b, Missing: true, Err: ErrIncompleteDistanceData}
		case math.IsNaN(d) || math.IsInf(d, 0):
			return 0, &PairError{From: a, To: b, Value: d, Err: ErrIncompleteDistanceData}
		case d < 0:
			return 0, &PairError{From: a, To: b, Value: d, Err: ErrNegativeDistance}
		}
		sum += d
	}

	return sum, nil
}

// String renders the route as "A -> B -> C -> A".
func (r Route) String() string {
	var (
		sb  strings.Builder
		i   int
		loc Location
	)
	for i, loc = range r {
		if i > 0 {
			sb.WriteString(" -> ")
		}
		sb.WriteString(string(loc))
	}

	return sb.String()
}
