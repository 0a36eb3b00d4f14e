package anticluster

import "errors"

var (
	// ErrEmptyValues is returned when no feature vectors are supplied.
	ErrEmptyValues = errors.New("anticluster: no feature vectors supplied")
	// ErrRaggedValues is returned when feature vectors have inconsistent dimensionality.
	ErrRaggedValues = errors.New("anticluster: feature vectors have inconsistent dimensionality")
	// ErrFrequencyMismatch is returned when frequencies do not sum to the item count.
	ErrFrequencyMismatch = errors.New("anticluster: frequencies do not sum to item count")
	// ErrAssignmentInconsistent is returned when an initial assignment disagrees with frequencies.
	ErrAssignmentInconsistent = errors.New("anticluster: initial assignment inconsistent with frequencies")
	// ErrCategoryDimensionMismatch is returned when category labels are present but mis-sized.
	ErrCategoryDimensionMismatch = errors.New("anticluster: category labels do not match item count")
	// ErrMaxPassesNotPositive is returned when Options.MaxPasses is not positive.
	ErrMaxPassesNotPositive = errors.New("anticluster: max passes must be positive")
)
