package anticluster

import "github.com/katalvlaran/partition/group"

// validateProblem checks the raw inputs before any solver state is built:
// rectangular feature vectors, frequencies summing to the item count, an
// initial assignment consistent with those frequencies, and (if present)
// one category label per item.
func validateProblem(values [][]float64, frequencies []int, initial []int, categories []int) error {
	n := len(values)
	if n == 0 {
		return ErrEmptyValues
	}
	m := len(values[0])
	for _, row := range values {
		if len(row) != m {
			return ErrRaggedValues
		}
	}

	sum := 0
	for _, f := range frequencies {
		if f < 0 {
			return ErrFrequencyMismatch
		}
		sum += f
	}
	if sum != n {
		return ErrFrequencyMismatch
	}

	if len(initial) != n {
		return ErrAssignmentInconsistent
	}
	k := len(frequencies)
	counted := make([]int, k)
	for _, g := range initial {
		if g < 0 || g >= k {
			return ErrAssignmentInconsistent
		}
		counted[g]++
	}
	for g := range counted {
		if counted[g] != frequencies[g] {
			return ErrAssignmentInconsistent
		}
	}

	if categories != nil && len(categories) != n {
		return ErrCategoryDimensionMismatch
	}

	return nil
}

// exactBounds turns frequencies into group.Bounds with LB == UB, since
// anticlustering group sizes are fixed rather than ranged.
func exactBounds(frequencies []int) group.Bounds {
	lb := append([]int(nil), frequencies...)
	ub := append([]int(nil), frequencies...)
	return group.Bounds{LB: lb, UB: ub}
}
