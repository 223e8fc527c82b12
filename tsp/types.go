package tsp

import (
	"errors"
	"fmt"
	"runtime"
)

// Sentinel errors. Match them with errors.Is; returned errors may carry
// additional context around them.
var (
	// ErrInvalidInput is returned when the location set or start violates the
	// solver preconditions (fewer than 2 locations, empty or duplicate names,
	// start not a member, nil Lookup). No distance lookups are made.
	ErrInvalidInput = errors.New("tsp: invalid input")

	// ErrIncompleteDistanceData is returned when the Lookup has no finite
	// value for a required ordered pair.
	ErrIncompleteDistanceData = errors.New("tsp: incomplete distance data")

	// ErrNegativeDistance is returned when the Lookup yields a negative value.
	ErrNegativeDistance = errors.New("tsp: negative distance")

	// ErrInvalidRoute is returned by ValidateRoute and RouteCost when a route
	// is not a closed Hamiltonian cycle over the given locations.
	ErrInvalidRoute = errors.New("tsp: invalid route")
)

// Location is an opaque identifier of a point to be visited.
type Location string

// Route is a closed visiting sequence: it starts and ends at the origin and
// visits every other location exactly once. len(Route) == n+1.
type Route []Location

// Lookup supplies the travel cost between an ordered pair of distinct
// locations. ok == false means the pair has no entry.
//
// The solver reads every pair once, up front, from the calling goroutine,
// so implementations need not be safe for concurrent use.
type Lookup interface {
	Lookup(from, to Location) (d float64, ok bool)
}

// LookupFunc adapts an ordinary function to the Lookup interface.
type LookupFunc func(from, to Location) (float64, bool)

// Lookup calls f(from, to).
func (f LookupFunc) Lookup(from, to Location) (float64, bool) {
	return f(from, to)
}

// Solution holds the outcome of a solve.
type Solution struct {
	// Route starts and ends at the requested start location.
	Route Route

	// Total is the sum of Lookup values along consecutive Route pairs.
	Total float64

	// Evaluated is the number of candidate routes scored, i.e. (n−1)!.
	Evaluated int64
}

// Options tunes SolveContext. The zero value runs a sequential search.
type Options struct {
	// Workers bounds the number of goroutines scoring permutation
	// partitions. Values ≤ 1 run the search on the calling goroutine.
	// The result never depends on this value.
	Workers int
}

// DefaultOptions returns Options with Workers set to GOMAXPROCS.
func DefaultOptions() Options {
	return Options{Workers: runtime.GOMAXPROCS(0)}
}

// PairError reports the ordered pair whose distance could not be used.
// It unwraps to ErrIncompleteDistanceData or ErrNegativeDistance.
type PairError struct {
	From, To Location
	Value    float64 // value returned by the Lookup; 0 when the entry is missing
	Missing  bool    // true when the Lookup reported no entry
	Err      error
}

func (e *PairError) Error() string {
	if e.Missing {
		return fmt.Sprintf("%v: no distance %q -> %q", e.Err, e.From, e.To)
	}

	return fmt.Sprintf("%v: distance %q -> %q = %v", e.Err, e.From, e.To, e.Value)
}

func (e *PairError) Unwrap() error { return e.Err }
