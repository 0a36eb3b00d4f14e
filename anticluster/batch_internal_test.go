package anticluster

import (
	"testing"

	"github.com/katalvlaran/partition/group"
)

func TestRandomAssignment_RespectsFrequencies(t *testing.T) {
	frequencies := []int{3, 1, 2}
	rng := group.RNGFromSeed(7)
	assign := randomAssignment(6, frequencies, rng)

	counts := make([]int, len(frequencies))
	for _, g := range assign {
		counts[g]++
	}
	for g, want := range frequencies {
		if counts[g] != want {
			t.Fatalf("group %d: want %d items, got %d", g, want, counts[g])
		}
	}
}

func TestRandomAssignment_VariesAcrossSeeds(t *testing.T) {
	frequencies := []int{5, 5, 5, 5}
	a := randomAssignment(20, frequencies, group.RNGFromSeed(1))
	b := randomAssignment(20, frequencies, group.RNGFromSeed(2))

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("expected different seeds to produce different restart assignments")
	}
}
