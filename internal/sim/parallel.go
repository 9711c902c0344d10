package sim

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// RunAll runs independent runners concurrently, one goroutine each. Every
// runner must own its scene; results keep the order of runners.
func RunAll(ctx context.Context, runners []*Runner, cfg Config) ([]*Result, error) {
	results := make([]*Result, len(runners))

	g, ctx := errgroup.WithContext(ctx)
	for i, r := range runners {
		g.Go(func() error {
			res, err := r.Run(ctx, cfg)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
