package mdgp

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/partition/group"
)

// DeltaMatrix maintains Δ[i][g], the sum of dissimilarities from item i to
// the current members of group g (excluding i itself). It is the shared
// bookkeeping structure that lets relocate/swap moves be scored and
// committed in O(N) rather than O(N²).
//
// Invariant (enforced after every exported call): Δ[i][g] equals the
// recomputed Σ_{j≠i, assignment[j]=g} D[i][j].
type DeltaMatrix struct {
	raw  *mat.Dense
	n, k int
}

// NewDeltaMatrix allocates a zeroed N×K delta matrix. Callers must call
// Rebuild before relying on its values.
func NewDeltaMatrix(n, k int) *DeltaMatrix {
	return &DeltaMatrix{raw: mat.NewDense(n, k, nil), n: n, k: k}
}

// At returns Δ[i][g].
func (dm *DeltaMatrix) At(i, g int) float64 {
	return dm.raw.At(i, g)
}

// Rebuild recomputes Δ from scratch in O(N²) against the dissimilarity
// matrix d and the current assignment in sol, and recomputes sol.Cost to
// match. Used at initialization and after directed perturbation, whose
// eject/refill steps bypass incremental updates.
func (dm *DeltaMatrix) Rebuild(d *group.Dissimilarity, sol *group.Solution) {
	dm.raw.Zero()
	for i := 0; i < dm.n; i++ {
		for j := 0; j < dm.n; j++ {
			if i == j {
				continue
			}
			g := sol.Assignment[j]
			dm.raw.Set(i, g, dm.raw.At(i, g)+d.At(i, j))
		}
	}

	var sum float64
	for i := 0; i < dm.n; i++ {
		sum += dm.raw.At(i, sol.Assignment[i])
	}
	sol.Cost = group.Round1e9(sum / 2)
}

// ApplyRelocate moves item i from its current group to "to", updating sizes,
// Δ, and sol.Cost. Caller guarantees to != sol.Assignment[i]. Returns the
// objective gain (Δ[i][to] - Δ[i][from]) applied. Cost O(N).
func (dm *DeltaMatrix) ApplyRelocate(d *group.Dissimilarity, sol *group.Solution, i, to int) float64 {
	from := sol.Assignment[i]
	gain := dm.raw.At(i, to) - dm.raw.At(i, from)

	for j := 0; j < dm.n; j++ {
		if j == i {
			continue
		}
		dij := d.At(i, j)
		dm.raw.Set(j, from, dm.raw.At(j, from)-dij)
		dm.raw.Set(j, to, dm.raw.At(j, to)+dij)
	}

	sol.Assignment[i] = to
	sol.Sizes[from]--
	sol.Sizes[to]++
	sol.Cost = group.Round1e9(sol.Cost + gain)

	return gain
}

// ApplySwap exchanges the group memberships of x and y. Caller guarantees
// sol.Assignment[x] != sol.Assignment[y]. Implemented exactly as the
// contract describes it: equivalent to ApplyRelocate(x, b) followed by
// ApplyRelocate(y, a), where a, b are x and y's original groups. Returns the
// total objective gain applied. Cost O(N).
func (dm *DeltaMatrix) ApplySwap(d *group.Dissimilarity, sol *group.Solution, x, y int) float64 {
	a := sol.Assignment[x]
	b := sol.Assignment[y]

	g1 := dm.ApplyRelocate(d, sol, x, b)
	g2 := dm.ApplyRelocate(d, sol, y, a)

	return g1 + g2
}
