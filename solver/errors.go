package solver

import "errors"

// Sentinel errors. Configuration and capability failures surface through
// these; backend non-convergence never does (see Status).
var (
	// ErrUnknownKind is returned by New for an unrecognized Config.Kind.
	ErrUnknownKind = errors.New("solver: unknown solver kind")
	// ErrUnknownMethod is returned for a direct-solver method name outside
	// the accepted set. Iterative and multigrid adapters degrade to their
	// defaults instead of returning this.
	ErrUnknownMethod = errors.New("solver: unknown solution method")
	// ErrBackendUnavailable is returned at construction when none of an
	// adapter's capability providers is present in this process.
	ErrBackendUnavailable = errors.New("solver: backend capability unavailable")
	// ErrNoMatrix is returned by Solve when neither the adapter nor the
	// call supplies a matrix.
	ErrNoMatrix = errors.New("solver: no matrix supplied")
	// ErrDimensionMismatch is returned when vector lengths disagree with
	// the matrix.
	ErrDimensionMismatch = errors.New("solver: dimension mismatch")
)
