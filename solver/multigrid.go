package solver

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/linsolve/amg"
	"github.com/katalvlaran/linsolve/sparse"
)

// Multigrid construction-method names accepted by NewMultigrid.
const (
	MethodSmoothedAggregation = "smoothed_aggregation"
	MethodPlainAggregation    = "aggregation"
)

// amgAvailable is the multigrid capability probe, replaceable in tests.
var amgAvailable = amg.Available

// Multigrid solves through an algebraic-multigrid hierarchy. The hierarchy
// is expensive to build, so it is cached and rebuilt only when a Solve call
// passes a matrix that is not identical (by pointer) to the one the cached
// hierarchy was built from.
type Multigrid struct {
	cfg      Config
	log      *slog.Logger
	method   string
	smoothed bool

	mtx      *sparse.CSR
	hier     *amg.Hierarchy
	rebuilds int

	status Status
}

// NewMultigrid resolves the named construction method (unknown names warn
// and fall back to smoothed aggregation) and, when a matrix is already
// available, builds the hierarchy eagerly. Absence of the multigrid
// capability is fatal.
func NewMultigrid(cfg Config, mtx *sparse.CSR, opts ...Option) (*Multigrid, error) {
	co := gatherCtorOptions(opts...)

	if !amgAvailable() {
		return nil, fmt.Errorf("%w: multigrid", ErrBackendUnavailable)
	}

	name := cfg.Method
	if name == "" {
		name = DefaultMGMethod
	}
	var smoothed bool
	switch name {
	case MethodSmoothedAggregation:
		smoothed = true
	case MethodPlainAggregation:
		smoothed = false
	default:
		co.logger.Warn("unknown multigrid method, using smoothed_aggregation instead",
			"method", name)
		name, smoothed = MethodSmoothedAggregation, true
	}

	m := &Multigrid{cfg: cfg, log: co.logger, method: name, smoothed: smoothed}
	if mtx != nil {
		if err := m.rebuild(mtx); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Multigrid) rebuild(mtx *sparse.CSR) error {
	o := amg.DefaultOptions()
	o.Smoothed = m.smoothed
	if m.cfg.IMax > 0 {
		o.MaxCycles = m.cfg.IMax
	}

	hier, err := amg.Build(mtx, o)
	if err != nil {
		return err
	}
	m.hier = hier
	m.mtx = mtx
	m.rebuilds++

	return nil
}

// Solve applies the cached hierarchy to rhs, rebuilding it first when the
// effective matrix is a different object from the cached one. The tolerance
// is relative to ‖rhs‖ — the backend's own semantics, intentionally
// different from the iterative adapter's joint criterion. The acceleration
// method is a solve-time choice, not fixed at construction.
func (m *Multigrid) Solve(rhs []float64, opts ...SolveOption) ([]float64, error) {
	o := gatherSolveOptions(opts...)

	mtx, err := pickMatrix(o.mtx, m.mtx)
	if err != nil {
		return nil, err
	}
	if r, _ := mtx.Dims(); len(rhs) != r {
		return nil, ErrDimensionMismatch
	}

	if m.hier == nil || mtx != m.mtx {
		if err = m.rebuild(mtx); err != nil {
			return nil, err
		}
	}

	epsR := m.cfg.EpsR
	if o.epsRSet {
		epsR = o.epsR
	}
	if epsR == 0 {
		epsR = DefaultMGEpsR
	}
	accel := m.cfg.Accel
	if o.accel != "" {
		accel = o.accel
	}

	x, iters, converged := m.hier.Solve(rhs, o.x0, epsR, accel)

	raw := 0
	reason := ReasonConverged
	if !converged {
		raw = iters
		reason = ReasonIterationLimit
	}
	m.status = Status{Method: m.method, Iterations: iters, Raw: raw, Reason: reason}
	m.log.Info("multigrid convergence",
		"method", m.method, "accel", accel, "levels", m.hier.Levels(),
		"iterations", iters, "reason", reason.String())

	return x, nil
}

// Status returns the diagnostic record of the most recent Solve.
func (m *Multigrid) Status() Status { return m.status }
