package factor

import (
	"errors"

	"github.com/katalvlaran/linsolve/sparse"
)

// Sentinel errors for factorization.
var (
	// ErrSingular is returned when elimination meets a vanishing pivot.
	ErrSingular = errors.New("factor: singular matrix")
	// ErrNonSquare is returned for rectangular input.
	ErrNonSquare = errors.New("factor: matrix is not square")
)

// SolveFunc applies a stored factorization to one right-hand side.
type SolveFunc func(b []float64) ([]float64, error)

// Backend is a direct-factorization capability provider.
type Backend interface {
	// Name identifies the provider in configuration and diagnostics.
	Name() string
	// Available reports whether the provider can operate in this process.
	Available() bool
	// Factorize decomposes a and returns a closure solving a·x = b.
	Factorize(a *sparse.CSR) (SolveFunc, error)
}
