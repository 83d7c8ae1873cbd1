package solver

import (
	"log/slog"

	"github.com/katalvlaran/linsolve/krylov"
	"github.com/katalvlaran/linsolve/sparse"
)

// Iterative solves through a routine from the krylov registry. It keeps no
// cached setup: every call is a fresh run of the routine against whatever
// matrix is in effect.
type Iterative struct {
	cfg    Config
	log    *slog.Logger
	method string
	run    krylov.Func
	mtx    *sparse.CSR

	status Status
}

// NewIterative resolves cfg.Method against the krylov registry. An unknown
// name is not fatal: the adapter warns and substitutes cg, so a misspelled
// configuration still produces solutions.
func NewIterative(cfg Config, opts ...Option) (*Iterative, error) {
	co := gatherCtorOptions(opts...)

	name := cfg.Method
	if name == "" {
		name = "cg"
	}
	run, ok := krylov.Lookup(name)
	if !ok {
		co.logger.Warn("unknown iterative method, using cg instead", "method", name)
		name = "cg"
		run, _ = krylov.Lookup(name)
	}

	return &Iterative{cfg: cfg, log: co.logger, method: name, run: run}, nil
}

// SetMatrix stores the matrix later Solve calls default to.
func (s *Iterative) SetMatrix(mtx *sparse.CSR) { s.mtx = mtx }

// Solve runs the resolved routine with tol = eps_r and maxiter = i_max,
// maps the raw outcome onto the normalized reason set and emits the
// diagnostic line. The tolerance acts as both an absolute and a relative
// criterion — that is the routine's own semantics, surfaced unchanged.
//
// Non-convergence is reported through Status, not the error return.
func (s *Iterative) Solve(rhs []float64, opts ...SolveOption) ([]float64, error) {
	o := gatherSolveOptions(opts...)

	mtx, err := pickMatrix(o.mtx, s.mtx)
	if err != nil {
		return nil, err
	}
	if r, _ := mtx.Dims(); len(rhs) != r {
		return nil, ErrDimensionMismatch
	}

	epsR := s.cfg.EpsR
	if o.epsRSet {
		epsR = o.epsR
	}
	if epsR == 0 {
		epsR = DefaultIterEpsR
	}
	iMax := s.cfg.IMax
	if o.iMax > 0 {
		iMax = o.iMax
	}
	if iMax == 0 {
		iMax = DefaultIterIMax
	}

	x, info := s.run(mtx, rhs, o.x0, krylov.Settings{Tol: epsR, MaxIter: iMax})

	reason := ReasonFromInfo(info)
	s.status = Status{Method: s.method, Raw: info, Reason: reason}
	if info > 0 {
		s.status.Iterations = info
	}
	s.log.Info("krylov convergence",
		"method", s.method, "info", info, "reason", reason.String())

	return x, nil
}

// Status returns the diagnostic record of the most recent Solve.
func (s *Iterative) Status() Status { return s.status }
