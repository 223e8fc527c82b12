// Package tsp - exhaustive search engine.
//
// The permutation space of the non-start locations is split into partitions
// by the first visited location. Partition k enumerates, in lexicographic
// order, every permutation starting with k; concatenating partitions 1…n−1
// yields the full lexicographic order. Both the sequential and the parallel
// search score partitions with the same routine and reduce them in that
// order, so the returned route is identical for any worker count.
package tsp

import "context"

// cancelCheckEvery is the number of scored permutations between ctx checks.
const cancelCheckEvery = 4096

// candidate is the best permutation seen within one partition.
type candidate struct {
	perm      []int // internal indices of the non-start locations, in visiting order
	cost      float64
	evaluated int64
}

// routeCost sums w along start -> perm… -> start.
//
// Complexity: O(len(perm)).
func (in *instance) routeCost(perm []int) float64 {
	var (
		n    = in.n
		w    = in.w
		prev = 0
		sum  float64
		v    int
	)
	for _, v = range perm {
		sum += w[prev*n+v]
		prev = v
	}

	return sum + w[prev*n]
}

// searchPartition scores every permutation whose first element is first and
// keeps the first strictly cheaper one.
//
// Contracts:
//   - 1 ≤ first < n.
//   - ctx is non-nil; it is checked on entry and every cancelCheckEvery routes.
//
// Complexity: O(n·(n−2)!) time, O(n) space.
func (in *instance) searchPartition(ctx context.Context, first int) (candidate, error) {
	if err := ctx.Err(); err != nil {
		return candidate{}, err
	}

	var (
		m    = in.n - 1
		perm = make([]int, m)
		best = make([]int, m)
		k    = 1
		v    int
	)
	perm[0] = first
	for v = 1; v < in.n; v++ {
		if v != first {
			perm[k] = v
			k++
		}
	}

	var (
		bestCost  float64
		found     bool
		cost      float64
		evaluated int64
	)
	for {
		cost = in.routeCost(perm)
		evaluated++
		// Strict comparison keeps the earliest permutation among equals.
		if !found || cost < bestCost {
			copy(best, perm)
			bestCost = cost
			found = true
		}
		if evaluated%cancelCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return candidate{}, err
			}
		}
		if !nextPermutation(perm[1:]) {
			break
		}
	}

	return candidate{perm: best, cost: bestCost, evaluated: evaluated}, nil
}

// searchSequential scores all partitions on the calling goroutine.
func (in *instance) searchSequential(ctx context.Context) (candidate, error) {
	var (
		parts = make([]candidate, in.n-1)
		first int
		err   error
	)
	for first = 1; first < in.n; first++ {
		parts[first-1], err = in.searchPartition(ctx, first)
		if err != nil {
			return candidate{}, err
		}
	}

	return reduce(parts), nil
}

// reduce picks the cheapest partition winner, earliest partition on ties,
// and accumulates the evaluated counters.
func reduce(parts []candidate) candidate {
	var (
		best  = parts[0]
		total = parts[0].evaluated
		i     int
	)
	for i = 1; i < len(parts); i++ {
		total += parts[i].evaluated
		if parts[i].cost < best.cost {
			best = parts[i]
		}
	}
	best.evaluated = total

	return best
}

// solution maps a winning candidate back to location names.
func (in *instance) solution(c candidate) Solution {
	var (
		route = make(Route, in.n+1)
		i, v  int
	)
	route[0] = in.names[0]
	for i, v = range c.perm {
		route[i+1] = in.names[v]
	}
	route[in.n] = in.names[0]

	return Solution{Route: route, Total: c.cost, Evaluated: c.evaluated}
}
