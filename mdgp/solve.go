package mdgp

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/partition/group"
)

// Solver owns all mutable state for one MDGP search: the problem model, a
// single seeded RNG, and (during Solve) the working population. Two Solver
// instances never share state or a PRNG (§9).
type Solver struct {
	d      *group.Dissimilarity
	bounds group.Bounds
	opts   Options
	rng    *rand.Rand
}

// NewSolver validates opts against d and constructs a Solver. Returns
// group.ErrInfeasibleBounds if opts.Bounds cannot admit d.N() items, or an
// mdgp option-validation sentinel if the schedule itself is malformed.
func NewSolver(d *group.Dissimilarity, opts Options) (*Solver, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if !opts.Bounds.Feasible(d.N()) {
		return nil, group.ErrInfeasibleBounds
	}
	return &Solver{
		d:      d,
		bounds: opts.Bounds,
		opts:   opts,
		rng:    group.RNGFromSeed(opts.Seed),
	}, nil
}

// randomFeasibleSolution builds one random partition respecting size
// bounds: every group is first filled to its LB from a random permutation
// of items, then remaining items are dropped into random groups that still
// have room (§9 "RandomInitiaSol" two-phase construction).
func (s *Solver) randomFeasibleSolution(rng *rand.Rand) (*group.Solution, error) {
	n := s.d.N()
	k := s.bounds.K()

	perm, err := group.PermRange(n, rng)
	if err != nil {
		return nil, err
	}

	assign := make([]int, n)
	for i := range assign {
		assign[i] = -1
	}
	sizes := make([]int, k)

	idx := 0
	for g := 0; g < k; g++ {
		for sizes[g] < s.bounds.LB[g] && idx < n {
			i := perm[idx]
			idx++
			assign[i] = g
			sizes[g]++
		}
	}

	for ; idx < n; idx++ {
		i := perm[idx]
		candidates := make([]int, 0, k)
		for g := 0; g < k; g++ {
			if sizes[g] < s.bounds.UB[g] {
				candidates = append(candidates, g)
			}
		}
		g := candidates[rng.Intn(len(candidates))]
		assign[i] = g
		sizes[g]++
	}

	return group.NewSolution(assign, n, s.bounds)
}

func elapsedFraction(elapsed, limit time.Duration) float64 {
	if limit <= 0 {
		return 1
	}
	f := float64(elapsed) / float64(limit)
	if f > 1 {
		f = 1
	}
	if f < 0 {
		f = 0
	}
	return f
}

// Solve runs the full population manager schedule (§4.7): seed
// Tunables.PopSizeInitial locally-optimized random solutions, then, until
// the wall-clock TimeLimit elapses (a single iteration if TimeLimit <= 0),
// apply strong perturbation + local search, crossover + local search (when
// the population has at least 2 members), and directed perturbation + local
// search to every member, resort, and shrink the population per the linear
// schedule. Returns the best-ever solution observed.
func (s *Solver) Solve() (Result, error) {
	n := s.d.N()
	k := s.bounds.K()
	tun := s.opts.Tunables

	pop := &population{members: make([]*member, 0, tun.PopSizeInitial)}
	for i := 0; i < tun.PopSizeInitial; i++ {
		memberRNG := group.DeriveRNG(s.rng, uint64(i))
		sol, err := s.randomFeasibleSolution(memberRNG)
		if err != nil {
			return Result{}, err
		}
		delta := NewDeltaMatrix(n, k)
		delta.Rebuild(s.d, sol)
		LocalSearch(s.d, s.bounds, delta, sol, tun.Eps)
		pop.members = append(pop.members, &member{sol: sol, delta: delta})
	}

	best := pop.members[0].sol.Clone()
	for _, m := range pop.members {
		if m.sol.Cost > best.Cost {
			best = m.sol.Clone()
		}
	}

	start := time.Now()
	for {
		elapsed := time.Since(start)
		if s.opts.TimeLimit > 0 && elapsed >= s.opts.TimeLimit {
			break
		}

		frac := elapsedFraction(elapsed, s.opts.TimeLimit)
		theta := tun.ThetaMax - (tun.ThetaMax-tun.ThetaMin)*frac
		l := int(theta * float64(n) / float64(k))

		for _, m := range pop.members {
			StrongPerturbation(s.bounds, m.sol, l, group.DeriveRNG(s.rng, 0))
			m.delta.Rebuild(s.d, m.sol)
			LocalSearch(s.d, s.bounds, m.delta, m.sol, tun.Eps)
			checkDrift(s.d, m.delta, m.sol)
			if m.sol.Cost > best.Cost {
				best = m.sol.Clone()
			}
		}

		if len(pop.members) >= 2 {
			for idx, m := range pop.members {
				peerIdx := group.DeriveRNG(s.rng, 1).Intn(len(pop.members))
				for peerIdx == idx {
					peerIdx = (peerIdx + 1) % len(pop.members)
				}
				peer := pop.members[peerIdx]
				offspring, err := Crossover(s.d, s.bounds, m.sol, peer.sol, group.DeriveRNG(s.rng, 2))
				if err != nil {
					continue
				}
				childDelta := NewDeltaMatrix(n, k)
				childDelta.Rebuild(s.d, offspring)
				LocalSearch(s.d, s.bounds, childDelta, offspring, tun.Eps)

				if Replace(offspring, m.sol, n, k) {
					m.sol = offspring
					m.delta = childDelta
				}
				if m.sol.Cost > best.Cost {
					best = m.sol.Clone()
				}
			}
		}

		for _, m := range pop.members {
			DirectedPerturbation(s.d, s.bounds, m.delta, m.sol, tun.LMax, group.DeriveRNG(s.rng, 3))
			LocalSearch(s.d, s.bounds, m.delta, m.sol, tun.Eps)
			if m.sol.Cost > best.Cost {
				best = m.sol.Clone()
			}
		}

		pop.sortDescending()

		newSize := int(float64(tun.PopSizeInitial) + float64(tun.PopSizeMin-tun.PopSizeInitial)*frac)
		pop.shrink(newSize)

		if s.opts.TimeLimit <= 0 {
			break
		}
	}

	return Result{Assignment: best.Assignment, Sizes: best.Sizes, Cost: best.Cost}, nil
}
