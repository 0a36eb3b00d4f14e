package mdgp

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/partition/group"
)

// ErrRunsNotPositive indicates SolveBestOfN was asked for n <= 0 runs.
var ErrRunsNotPositive = errors.New("mdgp: number of runs must be positive")

// SolveBestOfN runs n independent Solver instances concurrently, each with a
// seed derived from opts.Seed via group.DeriveSeed so the runs do not
// correlate, and returns the best-scoring Result. This is the in-process
// realization of §5's "independent runs are embarrassingly parallel" — no
// solver instance shares state with another.
func SolveBestOfN(d *group.Dissimilarity, opts Options, n int) (Result, error) {
	if n <= 0 {
		return Result{}, ErrRunsNotPositive
	}

	results := make([]Result, n)
	g, _ := errgroup.WithContext(context.Background())
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			runOpts := opts
			runOpts.Seed = group.DeriveSeed(opts.Seed, uint64(i))

			solver, err := NewSolver(d, runOpts)
			if err != nil {
				return err
			}
			res, err := solver.Solve()
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	best := results[0]
	for _, r := range results[1:] {
		if r.Cost > best.Cost {
			best = r
		}
	}
	return best, nil
}
