// Package tourplan plans the shortest closed driving route through a small
// set of named locations — exactly, by exhaustive search.
//
// 🚗 What is tourplan?
//
//	A compact toolkit around one exact algorithm:
//		• tsp/      — fixed-origin (A)TSP solver: every visiting order is scored,
//		              the cheapest closed route wins, ties resolve deterministically
//		• distance/ — the distance-lookup capability: name-indexed matrices,
//		              JSON distance documents, name standardization, synthetic data
//		• store/    — SQLite persistence for matrices and solved runs
//		• config/   — defaults < config file < TOURPLAN_* env < flags
//		• logger/   — structured logs for the command line
//		• cmd/tourplan — the CLI
//
// ✨ Guarantees
//
//   - Exact: the returned route is a global optimum, not a local one.
//   - Deterministic: same input ⇒ same route, for any worker count.
//   - Honest about cost: O(n·(n−1)!) time; n ≤ 10 is interactive, each extra
//     location multiplies the work. The solver never caps n — the CLI warns.
//   - Fail-fast: missing, infinite or negative distances are reported with
//     the offending pair before any search starts.
//
// Quick ASCII example (one-way streets make A→B→C→A cheaper than A→C→B→A):
//
//	    A ──1──▶ B
//	    ▲        │
//	    1        1
//	    │        ▼
//	    └────── C
//
// Geocoding, routing-service calls and map rendering live outside this
// module; they hand tourplan a precomputed distance table.
//
//	go install github.com/katalvlaran/tourplan/cmd/tourplan@latest
package tourplan
