package group

import "errors"

// Validation / feasibility errors shared by both engines. Do not wrap with
// fmt.Errorf where a sentinel suffices.
var (
	// ErrDimensionMismatch indicates a matrix/slice shape inconsistent with N or K.
	ErrDimensionMismatch = errors.New("group: dimension mismatch")

	// ErrNonSquare indicates the dissimilarity matrix is not N×N.
	ErrNonSquare = errors.New("group: dissimilarity matrix is not square")

	// ErrNegativeWeight indicates a negative dissimilarity was encountered.
	ErrNegativeWeight = errors.New("group: negative dissimilarity encountered")

	// ErrAsymmetry indicates D[i][j] != D[j][i].
	ErrAsymmetry = errors.New("group: asymmetric dissimilarity matrix")

	// ErrNonZeroDiagonal indicates some D[i][i] != 0.
	ErrNonZeroDiagonal = errors.New("group: non-zero self-dissimilarity")

	// ErrInfeasibleBounds indicates Σ LB > N, Σ UB < N, or some LB[g] > UB[g].
	ErrInfeasibleBounds = errors.New("group: infeasible group size bounds")

	// ErrOutOfRange indicates an assignment, category, or index value outside
	// its declared domain.
	ErrOutOfRange = errors.New("group: value out of range")

	// ErrAssignmentInconsistent indicates a caller-supplied assignment does
	// not match the declared group sizes (frequencies), or violates bounds.
	ErrAssignmentInconsistent = errors.New("group: initial assignment inconsistent with bounds")

	// ErrEmptyProblem indicates N == 0 or K == 0.
	ErrEmptyProblem = errors.New("group: empty problem (N or K is zero)")
)
