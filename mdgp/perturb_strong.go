package mdgp

import (
	"math/rand"

	"github.com/katalvlaran/partition/group"
)

// StrongPerturbation samples uniform random neighbors from the combined
// relocate+swap enumeration and commits each feasible sample unconditionally
// (regardless of whether it improves or worsens the objective), stopping
// once L kicks have been accepted (§4.3). It does not touch the delta
// matrix or sol.Cost — purely a diversification step; the caller is
// required to call DeltaMatrix.Rebuild afterward before relying on either.
//
// If the neighborhood admits no feasible move at all (e.g. a single group),
// StrongPerturbation returns having accepted fewer than L kicks rather than
// looping forever.
func StrongPerturbation(bounds group.Bounds, sol *group.Solution, l int, rng *rand.Rand) {
	n := len(sol.Assignment)
	k := bounds.K()
	numRelocate, _, total := neighborhoodSize(n, k)
	if total == 0 || l <= 0 {
		return
	}

	accepted := 0
	maxAttempts := (l + 1) * total * 4
	for attempts := 0; accepted < l && attempts < maxAttempts; attempts++ {
		idx := rng.Intn(total)

		if idx < numRelocate {
			v := idx / k
			g := idx % k
			from := sol.Assignment[v]
			if g == from {
				continue
			}
			if sol.Sizes[from] <= bounds.LB[from] || sol.Sizes[g] >= bounds.UB[g] {
				continue
			}
			sol.Assignment[v] = g
			sol.Sizes[from]--
			sol.Sizes[g]++
			accepted++
			continue
		}

		x, y := decodeSwapPair(n, idx-numRelocate)
		if sol.Assignment[x] == sol.Assignment[y] {
			continue
		}
		sol.Assignment[x], sol.Assignment[y] = sol.Assignment[y], sol.Assignment[x]
		accepted++
	}
}
