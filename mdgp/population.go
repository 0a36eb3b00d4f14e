package mdgp

import (
	"sort"

	"github.com/katalvlaran/partition/group"
)

// member pairs a population solution with the delta matrix that keeps it
// O(N)-incrementally scorable.
type member struct {
	sol   *group.Solution
	delta *DeltaMatrix
}

// population is the fixed-then-shrinking pool the outer schedule (§4.7)
// operates on. It is kept sorted descending by cost after each iteration.
type population struct {
	members []*member
}

func (p *population) sortDescending() {
	sort.Slice(p.members, func(i, j int) bool {
		return p.members[i].sol.Cost > p.members[j].sol.Cost
	})
}

// shrink evicts from the tail (the worst solutions, given descending order)
// down to size, never growing the population.
func (p *population) shrink(size int) {
	if size < 1 {
		size = 1
	}
	if size < len(p.members) {
		p.members = p.members[:size]
	}
}
