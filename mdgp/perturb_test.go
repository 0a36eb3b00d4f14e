package mdgp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/partition/group"
	"github.com/katalvlaran/partition/mdgp"
)

func TestStrongPerturbation_StaysFeasible(t *testing.T) {
	bounds, err := group.NewBounds([]int{2, 2, 2}, []int{4, 4, 4})
	require.NoError(t, err)
	sol, err := group.NewSolution([]int{0, 0, 1, 1, 2, 2}, 6, bounds)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(5))
	mdgp.StrongPerturbation(bounds, sol, 10, rng)

	for g := 0; g < 3; g++ {
		require.GreaterOrEqual(t, sol.Sizes[g], bounds.LB[g])
		require.LessOrEqual(t, sol.Sizes[g], bounds.UB[g])
	}
	// sizes slice must still match a recount of Assignment.
	recount := make([]int, 3)
	for _, g := range sol.Assignment {
		recount[g]++
	}
	require.Equal(t, recount, sol.Sizes)
}

func TestDirectedPerturbation_RestoresConsistentDelta(t *testing.T) {
	d := lineD(t, 8)
	bounds, err := group.NewBounds([]int{2, 2, 2, 2}, []int{3, 3, 3, 3})
	require.NoError(t, err)
	sol, err := group.NewSolution([]int{0, 0, 1, 1, 2, 2, 3, 3}, 8, bounds)
	require.NoError(t, err)

	delta := mdgp.NewDeltaMatrix(8, 4)
	delta.Rebuild(d, sol)
	mdgp.LocalSearch(d, bounds, delta, sol, 1e-4)

	rng := rand.New(rand.NewSource(17))
	mdgp.DirectedPerturbation(d, bounds, delta, sol, 3, rng)

	for g := 0; g < 4; g++ {
		require.GreaterOrEqual(t, sol.Sizes[g], bounds.LB[g])
		require.LessOrEqual(t, sol.Sizes[g], bounds.UB[g])
	}
	assertDeltaConsistent(t, d, delta, sol, 4)
}
