package mdgp

import "github.com/katalvlaran/partition/group"

// LocalSearch runs steepest-descent passes over the relocate and swap
// neighborhoods (§4.2) until a complete pass over both commits no move
// whose gain exceeds eps. The single-move (relocate) neighborhood is always
// scanned before the pair-swap neighborhood within a pass, matching the
// reference order. Every improving move found is committed immediately
// (first-improvement-but-commit-and-continue); the outer loop repeats until
// a full pass is silent.
//
// delta and sol are mutated in place; delta is assumed consistent with sol
// on entry (the caller is responsible for an initial Rebuild).
func LocalSearch(d *group.Dissimilarity, bounds group.Bounds, delta *DeltaMatrix, sol *group.Solution, eps float64) {
	n := len(sol.Assignment)
	k := bounds.K()

	for {
		improved := false

		// Relocate neighborhood: for every v, the first feasible improving
		// destination group is committed and scanning moves to the next v.
		for v := 0; v < n; v++ {
			from := sol.Assignment[v]
			if sol.Sizes[from] <= bounds.LB[from] {
				continue
			}
			for g := 0; g < k; g++ {
				if g == from {
					continue
				}
				if sol.Sizes[g] >= bounds.UB[g] {
					continue
				}
				gain := delta.At(v, g) - delta.At(v, from)
				if gain > eps {
					delta.ApplyRelocate(d, sol, v, g)
					improved = true
					break
				}
			}
		}

		// Swap neighborhood: x < y, different groups. Swaps never change
		// group sizes so feasibility never needs to be re-derived.
		for x := 0; x < n; x++ {
			for y := x + 1; y < n; y++ {
				if sol.Assignment[x] == sol.Assignment[y] {
					continue
				}
				gx, gy := sol.Assignment[x], sol.Assignment[y]
				gain := (delta.At(x, gy) - delta.At(x, gx)) + (delta.At(y, gx) - delta.At(y, gy)) - 2*d.At(x, y)
				if gain > eps {
					delta.ApplySwap(d, sol, x, y)
					improved = true
				}
			}
		}

		if !improved {
			return
		}
	}
}
