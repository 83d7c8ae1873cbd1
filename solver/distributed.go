package solver

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/linsolve/ksp"
	"github.com/katalvlaran/linsolve/sparse"
)

// kspAvailable is the distributed-solver capability probe, replaceable in
// tests.
var kspAvailable = ksp.Available

// Distributed solves through the backend-native Krylov package. The local
// CSR is converted into the backend's native matrix once per operator, and
// the matching native vectors are cached so repeated solves against the
// same matrix reuse one allocation: copy in, solve, copy out.
type Distributed struct {
	cfg Config
	log *slog.Logger
	k   *ksp.KSP

	mtx      *sparse.CSR
	pmtx     *ksp.Mat
	sol      *ksp.Vec
	rhs      *ksp.Vec
	converts int

	status Status
}

// NewDistributed creates the native solver object, sets its method and
// preconditioner from the configuration, and — when a matrix is already
// available — converts it eagerly into the native representation. Absence
// of the distributed capability is fatal; an unrecognized method or
// preconditioner name is a configuration error from the native package.
func NewDistributed(cfg Config, mtx *sparse.CSR, opts ...Option) (*Distributed, error) {
	co := gatherCtorOptions(opts...)

	if !kspAvailable() {
		return nil, fmt.Errorf("%w: distributed krylov", ErrBackendUnavailable)
	}

	k := ksp.New()
	method := cfg.Method
	if method == "" {
		method = DefaultDistMethod
	}
	if err := k.SetType(method); err != nil {
		return nil, err
	}
	precond := cfg.Precond
	if precond == "" {
		precond = DefaultDistPrecond
	}
	if err := k.PC().SetType(precond); err != nil {
		return nil, err
	}

	d := &Distributed{cfg: cfg, log: co.logger, k: k}
	if mtx != nil {
		if err := d.setMatrix(mtx); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// setMatrix converts mtx into the native representation and allocates the
// cached solution/right-hand-side vectors attached to it.
func (d *Distributed) setMatrix(mtx *sparse.CSR) error {
	n, c := mtx.Dims()
	if n != c {
		return ErrDimensionMismatch
	}

	pmtx, err := ksp.NewAIJ(n, mtx.RowPtr, mtx.ColInd, mtx.Data)
	if err != nil {
		return err
	}
	d.pmtx = pmtx
	d.sol, d.rhs = pmtx.Vecs()
	d.k.SetOperators(pmtx)
	d.mtx = mtx
	d.converts++

	return nil
}

// Solve copies rhs (and x0, when given) into the cached native vectors,
// sets the combined tolerance policy rnorm < max(eps_r·r₀, eps_a), runs the
// native solve and copies the native solution back out. A matrix that is
// not identical to the cached one is reconverted first.
func (d *Distributed) Solve(rhs []float64, opts ...SolveOption) ([]float64, error) {
	o := gatherSolveOptions(opts...)

	mtx, err := pickMatrix(o.mtx, d.mtx)
	if err != nil {
		return nil, err
	}
	if d.pmtx == nil || mtx != d.mtx {
		if err = d.setMatrix(mtx); err != nil {
			return nil, err
		}
	}

	epsA := d.cfg.EpsA
	if o.epsASet {
		epsA = o.epsA
	}
	if epsA == 0 {
		epsA = DefaultDistEpsA
	}
	epsR := d.cfg.EpsR
	if o.epsRSet {
		epsR = o.epsR
	}
	if epsR == 0 {
		epsR = DefaultDistEpsR
	}
	iMax := d.cfg.IMax
	if o.iMax > 0 {
		iMax = o.iMax
	}
	if iMax == 0 {
		iMax = DefaultDistIMax
	}
	d.k.SetTolerances(epsA, epsR, iMax)

	if o.x0 != nil {
		if err = d.sol.CopyFrom(o.x0); err != nil {
			return nil, err
		}
	} else {
		d.sol.Zero()
	}
	if err = d.rhs.CopyFrom(rhs); err != nil {
		return nil, err
	}

	if err = d.k.Solve(d.rhs, d.sol); err != nil {
		return nil, err
	}

	x := make([]float64, len(rhs))
	_ = d.sol.CopyTo(x)

	reason := d.k.Reason()
	d.status = Status{
		Method:     d.k.Type(),
		Precond:    d.k.PC().Type(),
		Iterations: d.k.Iterations(),
		Residual:   d.k.ResidualNorm(),
		Raw:        int(reason),
		Reason:     mapKSPReason(reason),
	}
	d.log.Info("ksp convergence",
		"method", d.k.Type(), "precond", d.k.PC().Type(),
		"code", int(reason), "reason", reason.String())

	return x, nil
}

// mapKSPReason folds the native reason enum onto the normalized set.
func mapKSPReason(r ksp.Reason) ConvergedReason {
	switch {
	case r > 0:
		return ReasonConverged
	case r == ksp.DivergedIts:
		return ReasonIterationLimit
	case r == ksp.DivergedBreakdown, r == ksp.DivergedNull:
		return ReasonBreakdown
	default:
		return ReasonOther
	}
}

// Status returns the diagnostic record of the most recent Solve.
func (d *Distributed) Status() Status { return d.status }
