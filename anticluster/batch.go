package anticluster

import (
	"context"
	"errors"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/partition/group"
)

// ErrRunsNotPositive is returned by RefineBestOfN when n <= 0.
var ErrRunsNotPositive = errors.New("anticluster: number of runs must be positive")

// RefineBestOfN runs n independent Solver instances (§5: independent runs
// are embarrassingly parallel) and returns the refinement with the highest
// total objective.
//
// The exchange engine itself is deterministic given its starting
// assignment, so running it n times from the *same* initial assignment
// would just recompute the same local optimum n times. Run 0 refines from
// the caller's initial assignment; runs 1..n-1 are random restarts — an
// independently seeded random feasible assignment refined to its own local
// optimum — so best-of-N actually explores n distinct basins of attraction.
func RefineBestOfN(values [][]float64, frequencies, initial, categories []int, opts Options, n int) (Result, error) {
	if n <= 0 {
		return Result{}, ErrRunsNotPositive
	}

	results := make([]Result, n)
	objectives := make([]float64, n)

	g, _ := errgroup.WithContext(context.Background())
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			runOpts := opts
			runOpts.Seed = group.DeriveSeed(opts.Seed, uint64(i))

			runInitial := initial
			if i > 0 {
				runInitial = randomAssignment(len(values), frequencies, group.RNGFromSeed(runOpts.Seed))
			}

			solver, err := NewSolver(values, frequencies, runInitial, categories, runOpts)
			if err != nil {
				return err
			}
			res, err := solver.Refine(runOpts)
			if err != nil {
				return err
			}
			results[i] = res
			objectives[i] = TotalObjective(values, res.Assignment, len(frequencies))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	best := 0
	for i := 1; i < n; i++ {
		if objectives[i] > objectives[best] {
			best = i
		}
	}
	return results[best], nil
}

// randomAssignment builds one random partition with group g holding exactly
// frequencies[g] items, by filling groups in order from a random permutation
// of items (mirrors mdgp.Solver.randomFeasibleSolution's LB-filling phase;
// since anticlustering bounds are exact, LB == UB and one phase suffices).
func randomAssignment(n int, frequencies []int, rng *rand.Rand) []int {
	perm, _ := group.PermRange(n, rng) // n >= 0 always, validated by the caller's NewSolver
	assign := make([]int, n)
	idx := 0
	for g, freq := range frequencies {
		for c := 0; c < freq; c++ {
			assign[perm[idx]] = g
			idx++
		}
	}
	return assign
}
