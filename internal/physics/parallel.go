package physics

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// parallelFor runs fn over [0, n) split into at most workers contiguous
// chunks. Chunks are disjoint, so fn may write to per-index state without
// locking.
func parallelFor(ctx context.Context, n, workers int, fn func(start, end int)) error {
	if workers <= 1 || n <= 1 {
		if err := ctx.Err(); err != nil {
			return err
		}
		fn(0, n)
		return nil
	}
	if workers > n {
		workers = n
	}

	chunkSize := (n + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	for start := 0; start < n; start += chunkSize {
		end := start + chunkSize
		if end > n {
			end = n
		}

		s, e := start, end
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fn(s, e)
			return nil
		})
	}

	return g.Wait()
}
