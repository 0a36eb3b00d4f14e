package mdgp

import (
	"log"

	"github.com/katalvlaran/partition/group"
)

// recomputeCost recomputes the MDGP objective directly from D and the
// current assignment, ignoring Δ entirely. Used only for the numeric-drift
// check (§7) and in tests; O(N²).
func recomputeCost(d *group.Dissimilarity, sol *group.Solution) float64 {
	var sum float64
	n := len(sol.Assignment)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if sol.Assignment[i] == sol.Assignment[j] {
				sum += d.At(i, j)
			}
		}
	}
	return group.Round1e9(sum)
}

// driftLogged guards the single drift log line §7 calls for ("log once").
var driftLogged = false

// checkDrift recomputes the true objective and, if it diverges from
// sol.Cost by more than 1e-4*max(1,|cost|), forces delta to Rebuild (which
// also resets sol.Cost to the recomputed value) and logs once.
func checkDrift(d *group.Dissimilarity, delta *DeltaMatrix, sol *group.Solution) {
	true_ := recomputeCost(d, sol)
	tol := 1e-4 * max(1, abs(sol.Cost))
	if abs(true_-sol.Cost) <= tol {
		return
	}
	if !driftLogged {
		log.Printf("mdgp: numeric drift detected (stored=%g recomputed=%g), forcing rebuild", sol.Cost, true_)
		driftLogged = true
	}
	delta.Rebuild(d, sol)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
