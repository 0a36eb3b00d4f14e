package mdgp

import "github.com/katalvlaran/partition/group"

// Replace implements the §4.6 replacement rule: the parent P is replaced by
// offspring O when O is at least as good, or when the fit-ratio
// O.cost/P.cost + 0.05*(d(O,P)/N²)*K exceeds 1 — accepting a mildly-worse
// but sufficiently-different offspring to preserve exploration.
func Replace(offspring, parent *group.Solution, n, k int) bool {
	if offspring.Cost >= parent.Cost {
		return true
	}
	if parent.Cost == 0 {
		// Degenerate all-zero-dissimilarity instance: any non-negative
		// offspring is as good as the parent.
		return offspring.Cost >= 0
	}

	d := group.HammingGroupDistance(offspring, parent)
	ratio := offspring.Cost/parent.Cost + 0.05*(float64(d)/float64(n*n))*float64(k)
	return ratio > 1
}
