// Package tsp provides an exact solver for the fixed-origin Travelling
// Salesman Problem over a small, fully-connected set of named locations.
//
// The solver enumerates every visiting order of the non-start locations and
// returns the cheapest closed route [start, …, start]. Distances are read
// through the Lookup capability and may be asymmetric (one-way road lengths).
//
//   - Solve        — sequential exhaustive search, no goroutines.
//   - SolveContext — same result, with cancellation and an optional
//     partitioned parallel search (Options.Workers).
//
// Complexity:
//
//   - Time:   O(n·(n−1)!) distance additions for n locations.
//   - Memory: O(n²) for the prefetched distance buffer, O(n) per worker for
//     the permutation being scored. Permutations are never materialized.
//
// The search space grows factorially: 9 non-start locations already mean
// 362 880 routes, 12 mean ~4.8·10⁸. The package never caps n; callers that
// accept user input should bound it themselves (see SearchSpace).
//
// Determinism:
//
//	Non-start locations are enumerated in lexicographic order of their
//	positions as supplied. When several routes share the minimal total,
//	the first one in that order is returned, regardless of worker count.
//
// All functions are side-effect free: no logging, no global state, no I/O
// beyond the caller-supplied Lookup.
package tsp
