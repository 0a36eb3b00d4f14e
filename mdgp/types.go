// Package mdgp implements the three-phase memetic search for the Maximally
// Diverse Grouping Problem: randomized construction under group-size bounds,
// delta-matrix-accelerated local search over relocate/swap neighborhoods,
// strong and directed perturbation, and population-based crossover with a
// diversity-aware replacement rule.
//
// Design goals mirror the sibling anticluster package and the broader
// module: mathematical rigor (feasibility checked once, trusted after),
// determinism (a single seeded RNG per Solver), zero surprises (Options has
// no meaningful zero value; use DefaultOptions).
package mdgp

import (
	"errors"
	"time"

	"github.com/katalvlaran/partition/group"
)

// ErrPopSizeInitialNotPositive indicates Tunables.PopSizeInitial <= 0.
var ErrPopSizeInitialNotPositive = errors.New("mdgp: pop size initial must be positive")

// ErrPopSizeMinExceedsInitial indicates Tunables.PopSizeMin > Tunables.PopSizeInitial.
var ErrPopSizeMinExceedsInitial = errors.New("mdgp: pop size min exceeds pop size initial")

// Options configures a Solver. Zero value is not meaningful; construct with
// DefaultOptions and override fields as needed.
type Options struct {
	// Bounds gives the per-group [LB, UB] membership bounds (§3 Group).
	Bounds group.Bounds

	// Seed drives every random decision the Solver makes (construction,
	// perturbation sampling, crossover donor coin flips). Seed == 0 selects
	// the module's fixed default seed, matching group.RNGFromSeed's policy.
	Seed int64

	// TimeLimit is the wall-clock soft deadline for Solve's outer population
	// loop (§4.7, §5). Zero means a single population-manager iteration.
	TimeLimit time.Duration

	// Tunables holds the §4.7 schedule constants.
	Tunables Tunables
}

// DefaultOptions returns Options with the §4.7 default schedule selected for
// n items, a 30s time budget, and deterministic seed 0. Bounds must still be
// supplied by the caller (there is no meaningful default partition shape).
func DefaultOptions(n int, bounds group.Bounds) Options {
	return Options{
		Bounds:    bounds,
		Seed:      0,
		TimeLimit: 30 * time.Second,
		Tunables:  DefaultTunables(n),
	}
}

func (o Options) validate() error {
	if o.Tunables.PopSizeInitial <= 0 {
		return ErrPopSizeInitialNotPositive
	}
	if o.Tunables.PopSizeMin > o.Tunables.PopSizeInitial {
		return ErrPopSizeMinExceedsInitial
	}
	return nil
}

// Result is the outcome of Solve: the best-ever solution found and its cost.
type Result struct {
	Assignment []int
	Sizes      []int
	Cost       float64
}
