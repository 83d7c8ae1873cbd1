package solver

import (
	"log/slog"

	"github.com/katalvlaran/linsolve/sparse"
)

// Option configures adapter construction.
type Option func(*ctorOptions)

type ctorOptions struct {
	logger *slog.Logger
}

// WithLogger routes the per-solve diagnostic lines to log. The default is
// slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(o *ctorOptions) { o.logger = log }
}

func gatherCtorOptions(opts ...Option) ctorOptions {
	o := ctorOptions{logger: slog.Default()}
	for _, set := range opts {
		set(&o)
	}

	return o
}

// SolveOption overrides configured parameters for a single Solve call. The
// adapter's stored Config is never mutated.
type SolveOption func(*solveOptions)

type solveOptions struct {
	mtx   *sparse.CSR
	x0    []float64
	epsA  float64
	epsR  float64
	iMax  int
	accel string

	epsASet, epsRSet bool
}

// WithMatrix solves against m instead of the cached matrix. Adapters that
// cache setup work detect the change by pointer identity and rebuild. A
// prefactorized direct adapter ignores this override.
func WithMatrix(m *sparse.CSR) SolveOption {
	return func(o *solveOptions) { o.mtx = m }
}

// WithGuess supplies the initial iterate x0.
func WithGuess(x0 []float64) SolveOption {
	return func(o *solveOptions) { o.x0 = x0 }
}

// WithEpsA overrides the absolute residual tolerance for this call.
func WithEpsA(eps float64) SolveOption {
	return func(o *solveOptions) { o.epsA, o.epsASet = eps, true }
}

// WithEpsR overrides the residual tolerance for this call.
func WithEpsR(eps float64) SolveOption {
	return func(o *solveOptions) { o.epsR, o.epsRSet = eps, true }
}

// WithIMax overrides the iteration cap for this call.
func WithIMax(n int) SolveOption {
	return func(o *solveOptions) { o.iMax = n }
}

// WithAccel overrides the multigrid acceleration method for this call.
func WithAccel(accel string) SolveOption {
	return func(o *solveOptions) { o.accel = accel }
}

func gatherSolveOptions(opts ...SolveOption) solveOptions {
	var o solveOptions
	for _, set := range opts {
		set(&o)
	}

	return o
}

// pickMatrix resolves the per-call matrix override against the cached one.
func pickMatrix(override, cached *sparse.CSR) (*sparse.CSR, error) {
	if override != nil {
		return override, nil
	}
	if cached != nil {
		return cached, nil
	}

	return nil, ErrNoMatrix
}
