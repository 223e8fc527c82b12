package tsp

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// searchParallel scores partitions on up to workers goroutines. Results are
// written to per-partition slots and reduced in partition order, so ties
// resolve exactly as in searchSequential.
//
// The first error (only context errors are possible) cancels the remaining
// partitions and is returned.
//
// Complexity: same total work as searchSequential; O(workers·n) extra space.
func (in *instance) searchParallel(ctx context.Context, workers int) (candidate, error) {
	var (
		parts  = make([]candidate, in.n-1)
		g, gcx = errgroup.WithContext(ctx)
		first  int
	)
	g.SetLimit(workers)
	for first = 1; first < in.n; first++ {
		slot := first
		g.Go(func() error {
			c, err := in.searchPartition(gcx, slot)
			if err != nil {
				return err
			}
			parts[slot-1] = c

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return candidate{}, err
	}

	return reduce(parts), nil
}
