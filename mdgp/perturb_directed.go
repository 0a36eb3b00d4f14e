package mdgp

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/partition/group"
)

// DirectedPerturbation runs the deterministic eject/discount/refill/place
// escape (§4.4) lmax times. Each outer iteration ejects the least-connected
// member of every group, redistributes the ejected pool by marginal
// contribution, and finishes with a full DeltaMatrix.Rebuild so the next
// iteration (or the caller's subsequent local search) sees a consistent Δ.
func DirectedPerturbation(d *group.Dissimilarity, bounds group.Bounds, delta *DeltaMatrix, sol *group.Solution, lmax int, rng *rand.Rand) {
	for iter := 0; iter < lmax; iter++ {
		directedPerturbationOnce(d, bounds, delta, sol, rng)
	}
}

func directedPerturbationOnce(d *group.Dissimilarity, bounds group.Bounds, delta *DeltaMatrix, sol *group.Solution, rng *rand.Rand) {
	k := bounds.K()

	// Step 1: eject the least-connected member of every nonempty group.
	ejected := make([]int, k)
	for g := 0; g < k; g++ {
		best := -1
		bestVal := math.Inf(1)
		for i, gi := range sol.Assignment {
			if gi != g {
				continue
			}
			v := delta.At(i, g)
			if v < bestVal {
				bestVal = v
				best = i
			}
		}
		ejected[g] = best // -1 if group g is empty
		if best >= 0 {
			sol.Sizes[g]--
		}
	}
	// sol.Assignment[ejected[g]] still reads g: that is exactly the
	// "assignment before ejection" value the refill/place steps below need,
	// and it is overwritten the moment the item is reinserted.

	// Seed a small K×K working table of Δ restricted to ejected items, since
	// only K items are in flight; the full N×K Δ is rebuilt once at the end.
	deltaE := make([][]float64, k)
	placed := make([]bool, k)
	for e := 0; e < k; e++ {
		deltaE[e] = make([]float64, k)
		if ejected[e] < 0 {
			placed[e] = true
			continue
		}
		for g := 0; g < k; g++ {
			deltaE[e][g] = delta.At(ejected[e], g)
		}
	}

	// Step 2: discount cross-ejected contributions so Δ restricted to the
	// ejected pool does not still count members that left their group.
	for i := 0; i < k; i++ {
		if ejected[i] < 0 {
			continue
		}
		for j := 0; j < k; j++ {
			if i == j || ejected[j] < 0 {
				continue
			}
			deltaE[i][j] -= d.At(ejected[i], ejected[j])
		}
	}

	avgCon := func(e, g int) float64 {
		if sol.Sizes[g] == 0 {
			return deltaE[e][g]
		}
		return deltaE[e][g] / float64(sol.Sizes[g])
	}

	insert := func(e, g int) {
		r := ejected[e]
		sol.Assignment[r] = g
		sol.Sizes[g]++
		placed[e] = true
		for o := 0; o < k; o++ {
			if placed[o] || o == e {
				continue
			}
			deltaE[o][g] += d.At(ejected[o], r)
		}
	}

	// Step 3: refill every group that fell below LB, round-robin from a
	// random start, each time picking the unplaced ejected item with the
	// highest marginal contribution to the deficit group.
	start := 0
	if k > 0 {
		start = rng.Intn(k)
	}
	for deficitExists(sol, bounds) {
		progressed := false
		for off := 0; off < k; off++ {
			g := (start + off) % k
			if sol.Sizes[g] >= bounds.LB[g] {
				continue
			}
			e := bestUnplaced(placed, k, func(e int) float64 { return avgCon(e, g) })
			if e < 0 {
				continue
			}
			insert(e, g)
			progressed = true
		}
		if !progressed {
			break // no more ejected items to place; bounds infeasible would have been rejected at construction
		}
	}

	// Step 4: place remaining ejected items by marginal contribution,
	// respecting UB, round-robin from a (new) random start.
	start2 := 0
	if k > 0 {
		start2 = rng.Intn(k)
	}
	for anyUnplaced(placed, k) {
		progressed := false
		for off := 0; off < k; off++ {
			e := (start2 + off) % k
			if placed[e] {
				continue
			}
			bestG := -1
			bestVal := math.Inf(-1)
			for g := 0; g < k; g++ {
				if sol.Sizes[g] >= bounds.UB[g] {
					continue
				}
				v := avgCon(e, g)
				if v > bestVal {
					bestVal = v
					bestG = g
				}
			}
			if bestG < 0 {
				continue
			}
			insert(e, bestG)
			progressed = true
		}
		if !progressed {
			break
		}
	}

	delta.Rebuild(d, sol)
}

func deficitExists(sol *group.Solution, bounds group.Bounds) bool {
	for g := 0; g < bounds.K(); g++ {
		if sol.Sizes[g] < bounds.LB[g] {
			return true
		}
	}
	return false
}

func anyUnplaced(placed []bool, k int) bool {
	for e := 0; e < k; e++ {
		if !placed[e] {
			return true
		}
	}
	return false
}

func bestUnplaced(placed []bool, k int, score func(int) float64) int {
	best := -1
	bestVal := math.Inf(-1)
	for e := 0; e < k; e++ {
		if placed[e] {
			continue
		}
		v := score(e)
		if v > bestVal {
			bestVal = v
			best = e
		}
	}
	return best
}
