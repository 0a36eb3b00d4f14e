package mdgp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/partition/group"
	"github.com/katalvlaran/partition/mdgp"
)

func TestReplace_AcceptsStrictlyBetter(t *testing.T) {
	bounds, err := group.NewBounds([]int{2, 2}, []int{2, 2})
	require.NoError(t, err)
	parent, err := group.NewSolution([]int{0, 0, 1, 1}, 4, bounds)
	require.NoError(t, err)
	parent.Cost = 5

	offspring, err := group.NewSolution([]int{0, 1, 0, 1}, 4, bounds)
	require.NoError(t, err)
	offspring.Cost = 6

	require.True(t, mdgp.Replace(offspring, parent, 4, 2))
}

func TestReplace_RejectsWorseAndIdentical(t *testing.T) {
	bounds, err := group.NewBounds([]int{2, 2}, []int{2, 2})
	require.NoError(t, err)
	parent, err := group.NewSolution([]int{0, 0, 1, 1}, 4, bounds)
	require.NoError(t, err)
	parent.Cost = 100

	offClone := parent.Clone()
	offClone.Cost = 1 // far worse, identical grouping (distance 0)

	require.False(t, mdgp.Replace(offClone, parent, 4, 2))
}

func TestReplace_AcceptsWorseButSufficientlyDifferent(t *testing.T) {
	bounds, err := group.NewBounds([]int{2, 2}, []int{2, 2})
	require.NoError(t, err)
	parent, err := group.NewSolution([]int{0, 0, 1, 1}, 4, bounds)
	require.NoError(t, err)
	parent.Cost = 10

	offspring, err := group.NewSolution([]int{0, 1, 1, 0}, 4, bounds)
	require.NoError(t, err)
	// fit-ratio = 9.99/10 + 0.05*(d/16)*2; with the maximal grouping
	// disagreement (d=4 for N=4) this exceeds 1.
	offspring.Cost = 9.99

	require.True(t, mdgp.Replace(offspring, parent, 4, 2))
}
