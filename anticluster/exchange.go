package anticluster

import (
	"github.com/katalvlaran/partition/group"
)

// Solver owns all mutable state for one anticlustering run: the feature
// vectors (read-only), the current assignment, per-group member lists,
// per-group centroids, and an optional category constraint. The exchange
// sweep itself is deterministic (no randomization anywhere in §4.8), so
// unlike mdgp.Solver, Solver carries no PRNG of its own — callers that want
// randomized restarts (RefineBestOfN) derive and pass in a fresh initial
// assignment instead.
type Solver struct {
	values     [][]float64
	m          int
	bounds     group.Bounds
	categories []int
	catIndex   categoryIndex

	sol       *group.Solution
	members   [][]int
	centroids [][]float64
}

// NewSolver validates the problem and builds a Solver seeded at
// initialAssignment. categories may be nil to disable category constraints.
func NewSolver(values [][]float64, frequencies []int, initialAssignment []int, categories []int, opts Options) (*Solver, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if err := validateProblem(values, frequencies, initialAssignment, categories); err != nil {
		return nil, err
	}

	bounds := exactBounds(frequencies)
	n := len(values)
	sol, err := group.NewSolution(append([]int(nil), initialAssignment...), n, bounds)
	if err != nil {
		return nil, err
	}

	s := &Solver{
		values:     values,
		m:          len(values[0]),
		bounds:     bounds,
		categories: categories,
		sol:        sol,
	}
	if categories != nil {
		s.catIndex = buildCategoryIndex(categories)
	}
	s.members = groupMembers(sol, len(frequencies))
	s.centroids = computeCentroids(s.values, s.members, s.m)
	return s, nil
}

func groupMembers(sol *group.Solution, k int) [][]int {
	members := make([][]int, k)
	for i, g := range sol.Assignment {
		members[g] = append(members[g], i)
	}
	return members
}

// Refine runs exchange passes until one reports no improving swap or
// Options.MaxPasses is reached, whichever comes first.
func (s *Solver) Refine(opts Options) (Result, error) {
	passes := 0
	for passes < opts.MaxPasses {
		passes++
		if !s.exchangePass() {
			break
		}
	}
	return Result{
		Assignment: append([]int(nil), s.sol.Assignment...),
		Sizes:      append([]int(nil), s.sol.Sizes...),
		Passes:     passes,
	}, nil
}

// exchangePass performs one sweep of §4.8: for every item, evaluate every
// eligible partner in a different group, commit the single best strictly
// improving swap found for that item, and move on. Returns whether any swap
// was committed during the sweep.
func (s *Solver) exchangePass() bool {
	n := len(s.sol.Assignment)
	get := candidates(n, s.categories, s.catIndex)
	changed := false

	for i := 0; i < n; i++ {
		a := s.sol.Assignment[i]
		oldVarA := clusterVariance(s.values, s.members[a], s.centroids[a])

		bestDelta := 0.0
		bestJ := -1
		var bestCentroidA, bestCentroidB []float64
		var bestB int

		for _, j := range get(i) {
			b := s.sol.Assignment[j]
			if b == a {
				continue
			}

			oldVarB := clusterVariance(s.values, s.members[b], s.centroids[b])
			newCentroidA := updateCentroidOnSwap(s.centroids[a], s.values[i], s.values[j], len(s.members[a]))
			newCentroidB := updateCentroidOnSwap(s.centroids[b], s.values[j], s.values[i], len(s.members[b]))
			newVarA := clusterVarianceSubstituted(s.values, s.members[a], i, j, newCentroidA)
			newVarB := clusterVarianceSubstituted(s.values, s.members[b], j, i, newCentroidB)

			delta := (newVarA + newVarB) - (oldVarA + oldVarB)
			if delta > bestDelta {
				bestDelta = delta
				bestJ = j
				bestB = b
				bestCentroidA = newCentroidA
				bestCentroidB = newCentroidB
			}
		}

		if bestJ >= 0 {
			s.commitSwap(i, bestJ, a, bestB, bestCentroidA, bestCentroidB)
			changed = true
		}
	}
	return changed
}

func (s *Solver) commitSwap(i, j, a, b int, centroidA, centroidB []float64) {
	s.sol.Assignment[i] = b
	s.sol.Assignment[j] = a
	s.centroids[a] = centroidA
	s.centroids[b] = centroidB

	s.members[a] = replaceMember(s.members[a], i, j)
	s.members[b] = replaceMember(s.members[b], j, i)
}

func replaceMember(members []int, oldItem, newItem int) []int {
	for idx, v := range members {
		if v == oldItem {
			members[idx] = newItem
			return members
		}
	}
	return members
}
