package anticluster

import "github.com/katalvlaran/partition/group"

// Options configures a Solver. The zero value is not meaningful; use
// DefaultOptions.
type Options struct {
	// Seed has no effect on a single Solver, since the exchange engine is
	// deterministic given its starting assignment. RefineBestOfN derives each
	// run's seed from this one via group.DeriveSeed (a zero seed is mixed
	// like any other value) and builds each restart's randomized initial
	// assignment from the derived seed.
	Seed int64
	// MaxPasses bounds the number of full exchange sweeps Refine performs.
	// The exchange engine always converges to a local optimum (each sweep
	// either commits at least one strictly-improving swap or leaves the
	// assignment untouched), so MaxPasses is a safety backstop, not a
	// tuning knob callers are expected to exhaust.
	MaxPasses int
}

// DefaultOptions returns the recommended Options.
func DefaultOptions() Options {
	return Options{
		Seed:      group.DefaultRNGSeed,
		MaxPasses: 1000,
	}
}

func (o Options) validate() error {
	if o.MaxPasses <= 0 {
		return ErrMaxPassesNotPositive
	}
	return nil
}

// Result is the outcome of a Refine call.
type Result struct {
	Assignment []int
	Sizes      []int
	Passes     int
}
