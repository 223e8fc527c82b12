// Package tsp - public entry points.
//
//   - Solve:        sequential exact search, pure function of its inputs.
//   - SolveContext: same contract plus cancellation and parallel partitions.
//
// Both validate the location set before any lookup, then prefetch every
// ordered pair (fail-fast), then search.
package tsp

import "context"

// Solve returns the minimal-total closed route that starts and ends at start
// and visits every other member of locations exactly once.
//
// Contracts:
//   - len(locations) ≥ 2; names are non-empty and unique; start ∈ locations.
//   - dist yields a finite, non-negative value for every ordered pair of
//     distinct locations. Distances may be asymmetric.
//
// Tie-break: the non-start locations are enumerated in lexicographic order of
// their positions in locations; the first route reaching the minimum wins.
//
// Errors:
//   - ErrInvalidInput when the location contract is violated (no lookups made).
//   - *PairError matching ErrIncompleteDistanceData or ErrNegativeDistance.
//
// Complexity: O(n·(n−1)!) time, O(n²) space. There is no cap on n; see
// SearchSpace to bound the work before calling.
func Solve(start Location, locations []Location, dist Lookup) (Solution, error) {
	return SolveContext(context.Background(), start, locations, dist, Options{})
}

// SolveContext is Solve with cancellation and optional parallelism.
//
// ctx is checked before the search and every few thousand scored routes; on
// cancellation ctx.Err() is returned. opts.Workers > 1 scores partitions of
// the permutation space concurrently; the returned Solution is identical to
// the sequential one, ties included.
func SolveContext(ctx context.Context, start Location, locations []Location, dist Lookup, opts Options) (Solution, error) {
	in, err := newInstance(start, locations, dist)
	if err != nil {
		return Solution{}, err
	}

	var best candidate
	if opts.Workers > 1 && in.n > 2 {
		best, err = in.searchParallel(ctx, opts.Workers)
	} else {
		best, err = in.searchSequential(ctx)
	}
	if err != nil {
		return Solution{}, err
	}

	return in.solution(best), nil
}
