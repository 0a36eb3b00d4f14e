package group

import "gonum.org/v1/gonum/mat"

// Dissimilarity is the dense, symmetric, zero-diagonal, nonnegative N×N
// matrix D referenced throughout both engines. It is read-only after
// construction and backed by gonum's symmetric dense storage, which writes
// only the upper triangle of its N×N backing slice and mirrors reads.
type Dissimilarity struct {
	n int
	d *mat.SymDense
}

// NewDissimilarity validates rows (an N-length slice of N-length rows) and
// wraps it as a Dissimilarity. It returns ErrNonSquare, ErrNegativeWeight,
// ErrAsymmetry, or ErrNonZeroDiagonal on the first violation found.
func NewDissimilarity(rows [][]float64) (*Dissimilarity, error) {
	n := len(rows)
	if n == 0 {
		return nil, ErrEmptyProblem
	}
	for _, row := range rows {
		if len(row) != n {
			return nil, ErrNonSquare
		}
	}

	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		if rows[i][i] != 0 {
			return nil, ErrNonZeroDiagonal
		}
		for j := i + 1; j < n; j++ {
			if rows[i][j] < 0 || rows[j][i] < 0 {
				return nil, ErrNegativeWeight
			}
			if rows[i][j] != rows[j][i] {
				return nil, ErrAsymmetry
			}
			sym.SetSym(i, j, rows[i][j])
		}
	}

	return &Dissimilarity{n: n, d: sym}, nil
}

// N returns the number of items.
func (dm *Dissimilarity) N() int { return dm.n }

// At returns D[i][j]. Panics if i or j is out of [0, N) per gonum convention;
// callers in this module only ever index with values already range-checked
// against N.
func (dm *Dissimilarity) At(i, j int) float64 {
	return dm.d.At(i, j)
}

// Bounds describes per-group membership bounds LB[g] <= UB[g].
type Bounds struct {
	LB []int
	UB []int
}

// K returns the number of groups.
func (b Bounds) K() int { return len(b.LB) }

// NewBounds validates that LB and UB have equal, positive length and that
// LB[g] <= UB[g] for every g. Feasibility against a specific N (ΣLB <= N <=
// ΣUB) is checked by NewSolution, since Bounds alone does not know N.
func NewBounds(lb, ub []int) (Bounds, error) {
	if len(lb) == 0 || len(ub) == 0 {
		return Bounds{}, ErrEmptyProblem
	}
	if len(lb) != len(ub) {
		return Bounds{}, ErrDimensionMismatch
	}
	for g := range lb {
		if lb[g] < 0 || ub[g] < 0 || lb[g] > ub[g] {
			return Bounds{}, ErrInfeasibleBounds
		}
	}
	return Bounds{LB: lb, UB: ub}, nil
}

// Feasible reports whether the bounds admit at least one partition of n
// items: ΣLB <= n <= ΣUB.
func (b Bounds) Feasible(n int) bool {
	var sumLB, sumUB int
	for g := range b.LB {
		sumLB += b.LB[g]
		sumUB += b.UB[g]
	}
	return sumLB <= n && n <= sumUB
}

// Solution is the triple (assignment, sizes, cost) shared by both engines.
// Assignment[i] is the group index of item i; Sizes[g] is the number of
// items currently in group g; Cost is the stored objective value (to be
// kept consistent with Δ by the owning engine).
type Solution struct {
	Assignment []int
	Sizes      []int
	Cost       float64
}

// NewSolution validates assignment against n items and bounds, computes
// Sizes, and returns the resulting Solution. It returns ErrOutOfRange if any
// assignment[i] is outside [0, K), ErrInfeasibleBounds if the bounds cannot
// admit n items, and ErrAssignmentInconsistent if the resulting sizes
// violate LB/UB.
func NewSolution(assignment []int, n int, bounds Bounds) (*Solution, error) {
	if len(assignment) != n {
		return nil, ErrDimensionMismatch
	}
	if !bounds.Feasible(n) {
		return nil, ErrInfeasibleBounds
	}

	k := bounds.K()
	sizes := make([]int, k)
	for i, g := range assignment {
		if g < 0 || g >= k {
			return nil, ErrOutOfRange
		}
		sizes[g]++
	}
	for g := 0; g < k; g++ {
		if sizes[g] < bounds.LB[g] || sizes[g] > bounds.UB[g] {
			return nil, ErrAssignmentInconsistent
		}
	}

	a := make([]int, n)
	copy(a, assignment)
	return &Solution{Assignment: a, Sizes: sizes, Cost: 0}, nil
}

// Clone returns a deep copy of s.
func (s *Solution) Clone() *Solution {
	out := &Solution{
		Assignment: make([]int, len(s.Assignment)),
		Sizes:      make([]int, len(s.Sizes)),
		Cost:       s.Cost,
	}
	copy(out.Assignment, s.Assignment)
	copy(out.Sizes, s.Sizes)
	return out
}

// HammingGroupDistance counts the unordered item pairs that disagree on
// "same-group-ness" between a and b: pairs grouped together under one
// solution but split under the other. Used by the replacement rule's
// fit-ratio (d(O, P) in the spec).
func HammingGroupDistance(a, b *Solution) int {
	n := len(a.Assignment)
	d := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sameA := a.Assignment[i] == a.Assignment[j]
			sameB := b.Assignment[i] == b.Assignment[j]
			if sameA != sameB {
				d++
			}
		}
	}
	return d
}
