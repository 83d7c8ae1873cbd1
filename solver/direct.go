package solver

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/linsolve/factor"
	"github.com/katalvlaran/linsolve/sparse"
)

// Direct-solver method names. MethodAuto prefers the first available
// provider in registry order.
const (
	MethodAuto     = "auto"
	MethodSparseLU = "sparselu"
	MethodDenseLU  = "denselu"
)

// directProviders is the ordered capability list the direct adapter probes:
// the preferred engine first, the always-available fallback last.
var directProviders = []factor.Backend{factor.SparseLU(), factor.DenseLU()}

// Direct solves through a sparse direct-factorization backend. With
// Config.Presolve and a construction-time matrix it factorizes once and
// reuses the factorization for every right-hand side; otherwise each Solve
// factorizes on the spot.
type Direct struct {
	cfg Config
	log *slog.Logger

	backend   factor.Backend
	mtx       *sparse.CSR
	presolved factor.SolveFunc

	status Status
}

// NewDirect binds the factorization backend selected by cfg.Method.
//
// Requesting a specific engine that is not available in this process
// engages the fallback engine with a notice (iff cfg.Warn) — never an
// error. A method name outside the accepted set is a configuration error,
// and the absence of every provider is ErrBackendUnavailable.
//
// When cfg.Presolve is set and mtx is non-nil the matrix is factorized
// eagerly; Presolve without a matrix silently degrades to per-call
// factorization.
func NewDirect(cfg Config, mtx *sparse.CSR, opts ...Option) (*Direct, error) {
	co := gatherCtorOptions(opts...)

	backend, err := resolveDirectBackend(cfg, co.logger)
	if err != nil {
		return nil, err
	}

	d := &Direct{cfg: cfg, log: co.logger, backend: backend, mtx: mtx}
	if cfg.Presolve && mtx != nil {
		solve, ferr := backend.Factorize(mtx)
		if ferr != nil {
			return nil, ferr
		}
		d.presolved = solve
	}

	return d, nil
}

// resolveDirectBackend maps the configured method onto a provider from the
// ordered capability list.
func resolveDirectBackend(cfg Config, log *slog.Logger) (factor.Backend, error) {
	var first factor.Backend
	for _, b := range directProviders {
		if b.Available() {
			first = b
			break
		}
	}
	if first == nil {
		return nil, fmt.Errorf("%w: no direct factorization provider", ErrBackendUnavailable)
	}

	method := cfg.Method
	if method == "" || method == MethodAuto {
		return first, nil
	}

	for _, b := range directProviders {
		if b.Name() != method {
			continue
		}
		if b.Available() {
			return b, nil
		}
		if cfg.Warn {
			log.Warn("requested direct backend not available, falling back",
				"requested", method, "using", first.Name())
		}

		return first, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
}

// Solve factorizes (or reuses the prefactorization) and solves for rhs.
// A prefactorized adapter ignores WithMatrix: construct a new adapter to
// change the matrix when Presolve was used.
func (d *Direct) Solve(rhs []float64, opts ...SolveOption) ([]float64, error) {
	o := gatherSolveOptions(opts...)

	solve := d.presolved
	if solve == nil {
		mtx, err := pickMatrix(o.mtx, d.mtx)
		if err != nil {
			return nil, err
		}
		solve, err = d.backend.Factorize(mtx)
		if err != nil {
			return nil, err
		}
	}

	x, err := solve(rhs)
	if err != nil {
		return nil, err
	}

	d.status = Status{Method: d.backend.Name(), Reason: ReasonConverged}
	d.log.Info("direct solve",
		"method", d.backend.Name(), "reason", d.status.Reason.String())

	return x, nil
}

// Status returns the diagnostic record of the most recent Solve.
func (d *Direct) Status() Status { return d.status }
