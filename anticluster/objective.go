package anticluster

// TotalObjective computes Σ_g Σ_{i∈g} ‖values[i]-centroid[g]‖², the
// anticlustering objective from §3, for an arbitrary assignment. Used to
// compare independent runs in RefineBestOfN.
func TotalObjective(values [][]float64, assignment []int, k int) float64 {
	members := make([][]int, k)
	for i, g := range assignment {
		members[g] = append(members[g], i)
	}
	m := 0
	if len(values) > 0 {
		m = len(values[0])
	}
	centroids := computeCentroids(values, members, m)

	var total float64
	for g, ms := range members {
		total += clusterVariance(values, ms, centroids[g])
	}
	return total
}
