package anticluster

import "gonum.org/v1/gonum/floats"

// computeCentroids derives center[g] = mean(values[i] : i in members[g]) for
// every group, per §3's cluster-centroid definition.
func computeCentroids(values [][]float64, members [][]int, m int) [][]float64 {
	centroids := make([][]float64, len(members))
	for g, ms := range members {
		c := make([]float64, m)
		for _, i := range ms {
			floats.Add(c, values[i])
		}
		if len(ms) > 0 {
			floats.Scale(1/float64(len(ms)), c)
		}
		centroids[g] = c
	}
	return centroids
}

// squaredDist returns the squared Euclidean distance between two feature
// vectors, the lazily-derived dissimilarity anticlustering uses (§3).
func squaredDist(a, b []float64) float64 {
	diff := make([]float64, len(a))
	copy(diff, a)
	floats.Sub(diff, b)
	return floats.Dot(diff, diff)
}

// clusterVariance sums squared distances of every member to centroid,
// the intra-cluster variance term of the anticlustering objective (§3).
func clusterVariance(values [][]float64, members []int, centroid []float64) float64 {
	var sum float64
	for _, i := range members {
		sum += squaredDist(values[i], centroid)
	}
	return sum
}

// clusterVarianceSubstituted computes the same sum as clusterVariance but
// with oldMember replaced by newMember, without mutating members — used to
// score a tentative swap before it is committed.
func clusterVarianceSubstituted(values [][]float64, members []int, oldMember, newMember int, centroid []float64) float64 {
	var sum float64
	for _, i := range members {
		if i == oldMember {
			continue
		}
		sum += squaredDist(values[i], centroid)
	}
	sum += squaredDist(values[newMember], centroid)
	return sum
}

// updateCentroidOnSwap applies the incremental centroid update from §4.8:
// center[d] += (arriving[d] - leaving[d]) / size. Returns a new slice; old
// is left untouched so callers can cheaply discard a tentative update.
func updateCentroidOnSwap(old, leaving, arriving []float64, size int) []float64 {
	out := append([]float64(nil), old...)
	if size == 0 {
		return out
	}
	diff := append([]float64(nil), arriving...)
	floats.Sub(diff, leaving)
	floats.AddScaled(out, 1/float64(size), diff)
	return out
}
