package nlp

import "errors"

// Contract violations detected by Validate.
var (
	// ErrBadDims indicates non-positive or inconsistent dimension counts.
	ErrBadDims = errors.New("nlp: invalid dimensions")

	// ErrDimensionMismatch indicates a vector whose length disagrees with
	// the declared dimensions.
	ErrDimensionMismatch = errors.New("nlp: dimension mismatch")

	// ErrBadBounds indicates a lower bound above its upper bound.
	ErrBadBounds = errors.New("nlp: lower bound exceeds upper bound")

	// ErrBadStructure indicates a sparsity structure with the wrong
	// cardinality, an out-of-range coordinate, or an upper-triangular
	// Hessian entry.
	ErrBadStructure = errors.New("nlp: invalid sparsity structure")
)
