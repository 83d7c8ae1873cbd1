package sparse

import "errors"

// Sentinel errors for sparse-matrix construction and access.
var (
	// ErrBadShape indicates non-positive requested dimensions.
	ErrBadShape = errors.New("sparse: invalid shape")
	// ErrOutOfRange indicates a row or column index outside the matrix bounds.
	ErrOutOfRange = errors.New("sparse: index out of range")
	// ErrDimensionMismatch indicates a vector whose length does not match the matrix.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")
)
