package mdgp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/partition/group"
	"github.com/katalvlaran/partition/mdgp"
)

// TestLocalSearch_S1 is scenario S1 from the testable-properties scenarios:
// N=6, K=2, D[i][j]=|i-j|. A group {a<b<c} scores 2(c-a), so the maximum is
// 16 (e.g. {0,2,4}/{1,3,5}); the contiguous split {0,1,2}/{3,4,5} scores 8.
func TestLocalSearch_S1(t *testing.T) {
	d := lineD(t, 6)
	bounds, err := group.NewBounds([]int{3, 3}, []int{3, 3})
	require.NoError(t, err)
	// Start from the suboptimal contiguous split (cost 8).
	sol, err := group.NewSolution([]int{0, 0, 0, 1, 1, 1}, 6, bounds)
	require.NoError(t, err)

	delta := mdgp.NewDeltaMatrix(6, 2)
	delta.Rebuild(d, sol)
	mdgp.LocalSearch(d, bounds, delta, sol, 1e-4)

	require.InDelta(t, 16.0, sol.Cost, 1e-6)
	assertLocalOptimum(t, d, bounds, delta, sol)
}

// TestLocalSearch_S2 is scenario S2: N=4, K=2, all-ones off-diagonal; every
// partition scores 2.
func TestLocalSearch_S2(t *testing.T) {
	rows := [][]float64{
		{0, 1, 1, 1},
		{1, 0, 1, 1},
		{1, 1, 0, 1},
		{1, 1, 1, 0},
	}
	d, err := group.NewDissimilarity(rows)
	require.NoError(t, err)
	bounds, err := group.NewBounds([]int{2, 2}, []int{2, 2})
	require.NoError(t, err)
	sol, err := group.NewSolution([]int{0, 1, 0, 1}, 4, bounds)
	require.NoError(t, err)

	delta := mdgp.NewDeltaMatrix(4, 2)
	delta.Rebuild(d, sol)
	mdgp.LocalSearch(d, bounds, delta, sol, 1e-4)

	require.InDelta(t, 2.0, sol.Cost, 1e-6)
	require.Equal(t, []int{2, 2}, sol.Sizes)
}

// TestLocalSearch_S5 is scenario S5: N=10, K=3, D[i][j]=1 iff exactly one of
// i,j is < 5, so same-group 1s come from mixing the two halves. The expected
// optimum is found by brute force.
func TestLocalSearch_S5(t *testing.T) {
	rows := make([][]float64, 10)
	for i := range rows {
		rows[i] = make([]float64, 10)
	}
	for i := 0; i < 10; i++ {
		for j := 0; j < 10; j++ {
			if i == j {
				continue
			}
			if (i < 5) != (j < 5) {
				rows[i][j] = 1
			}
		}
	}
	d, err := group.NewDissimilarity(rows)
	require.NoError(t, err)
	bounds, err := group.NewBounds([]int{3, 3, 3}, []int{4, 4, 4})
	require.NoError(t, err)

	best := bruteForceOptimum(t, d, bounds, 10, 3)

	sol, err := group.NewSolution([]int{0, 1, 2, 0, 1, 2, 0, 1, 2, 0}, 10, bounds)
	require.NoError(t, err)
	delta := mdgp.NewDeltaMatrix(10, 3)
	delta.Rebuild(d, sol)
	mdgp.LocalSearch(d, bounds, delta, sol, 1e-4)

	require.InDelta(t, best, sol.Cost, 1e-6)
}

func bruteForceOptimum(t *testing.T, d *group.Dissimilarity, bounds group.Bounds, n, k int) float64 {
	t.Helper()
	assign := make([]int, n)
	best := -1.0
	var rec func(i int)
	sizes := make([]int, k)
	rec = func(i int) {
		if i == n {
			for g := 0; g < k; g++ {
				if sizes[g] < bounds.LB[g] || sizes[g] > bounds.UB[g] {
					return
				}
			}
			var cost float64
			for a := 0; a < n; a++ {
				for b := a + 1; b < n; b++ {
					if assign[a] == assign[b] {
						cost += d.At(a, b)
					}
				}
			}
			if cost > best {
				best = cost
			}
			return
		}
		for g := 0; g < k; g++ {
			if sizes[g] >= bounds.UB[g] {
				continue
			}
			assign[i] = g
			sizes[g]++
			rec(i + 1)
			sizes[g]--
		}
	}
	rec(0)
	return best
}

func assertLocalOptimum(t *testing.T, d *group.Dissimilarity, bounds group.Bounds, delta *mdgp.DeltaMatrix, sol *group.Solution) {
	t.Helper()
	n := len(sol.Assignment)
	k := bounds.K()
	for v := 0; v < n; v++ {
		from := sol.Assignment[v]
		if sol.Sizes[from] <= bounds.LB[from] {
			continue
		}
		for g := 0; g < k; g++ {
			if g == from || sol.Sizes[g] >= bounds.UB[g] {
				continue
			}
			gain := delta.At(v, g) - delta.At(v, from)
			require.LessOrEqual(t, gain, 1e-4+1e-9)
		}
	}
	for x := 0; x < n; x++ {
		for y := x + 1; y < n; y++ {
			if sol.Assignment[x] == sol.Assignment[y] {
				continue
			}
			gx, gy := sol.Assignment[x], sol.Assignment[y]
			gain := (delta.At(x, gy) - delta.At(x, gx)) + (delta.At(y, gx) - delta.At(y, gy)) - 2*d.At(x, y)
			require.LessOrEqual(t, gain, 1e-4+1e-9)
		}
	}
}

func TestLocalSearch_TerminatesAtLocalOptimum(t *testing.T) {
	d := lineD(t, 8)
	bounds, err := group.NewBounds([]int{2, 2, 2, 2}, []int{3, 3, 3, 3})
	require.NoError(t, err)
	sol, err := group.NewSolution([]int{3, 1, 0, 2, 3, 0, 1, 2}, 8, bounds)
	require.NoError(t, err)

	delta := mdgp.NewDeltaMatrix(8, 4)
	delta.Rebuild(d, sol)
	mdgp.LocalSearch(d, bounds, delta, sol, 1e-4)

	assertLocalOptimum(t, d, bounds, delta, sol)

	for g := 0; g < 4; g++ {
		require.GreaterOrEqual(t, sol.Sizes[g], bounds.LB[g])
		require.LessOrEqual(t, sol.Sizes[g], bounds.UB[g])
	}
}
