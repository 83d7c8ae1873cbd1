package solver

// Kind selects which backend adapter a Config binds to.
type Kind string

const (
	// KindDirect binds to sparse direct factorization (package factor).
	KindDirect Kind = "direct"
	// KindIterative binds to the Krylov routine registry (package krylov).
	KindIterative Kind = "iterative"
	// KindMultigrid binds to algebraic multigrid (package amg).
	KindMultigrid Kind = "multigrid"
	// KindDistributed binds to the distributed Krylov package (package ksp).
	KindDistributed Kind = "distributed"
)

// Config is the immutable per-solver configuration record. Fields that do
// not apply to the selected Kind are ignored, never an error; zero numeric
// values mean "backend default" throughout.
//
// The mapstructure tags are the field names used in configuration files
// read by LoadConfig.
type Config struct {
	// Kind selects the adapter.
	Kind Kind `mapstructure:"kind"`

	// Method names the backend routine. Defaults per kind: "auto"
	// (direct), "cg" (iterative, distributed), "smoothed_aggregation"
	// (multigrid).
	Method string `mapstructure:"method"`

	// Precond names the preconditioner. Distributed only; default jacobi.
	Precond string `mapstructure:"precond"`

	// IMax caps iterations. Zero means the backend default.
	IMax int `mapstructure:"i_max"`

	// EpsA is the absolute residual tolerance. Distributed only; zero
	// means the backend default.
	EpsA float64 `mapstructure:"eps_a"`

	// EpsR is the residual tolerance. The iterative adapter applies it as
	// both an absolute and a relative criterion; the multigrid adapter
	// scales it by ‖rhs‖; the distributed adapter combines it with EpsA as
	// max(EpsR·r₀, EpsA). Zero means the backend default.
	EpsR float64 `mapstructure:"eps_r"`

	// Presolve, when a matrix is supplied at construction, factorizes it
	// eagerly so repeated solves reuse the factorization. Direct only.
	Presolve bool `mapstructure:"presolve"`

	// Warn enables the non-fatal notice when a requested direct backend is
	// unavailable and the fallback engages. Direct only.
	Warn bool `mapstructure:"warn"`

	// Accel names the acceleration wrapped around the multigrid cycle
	// (currently "cg"). Multigrid only; applied at solve time.
	Accel string `mapstructure:"accel"`
}

// Per-kind documented defaults, applied where a Config field is zero.
const (
	DefaultIterEpsR = 1e-8
	DefaultIterIMax = 100

	DefaultMGMethod = "smoothed_aggregation"
	DefaultMGEpsR   = 1e-8

	DefaultDistMethod  = "cg"
	DefaultDistPrecond = "jacobi"
	DefaultDistEpsA    = 1e-8
	DefaultDistEpsR    = 1e-8
	DefaultDistIMax    = 100
)

// ConvergedReason is the normalized outcome category shared by every
// adapter. Each backend's native signal maps onto this closed set.
type ConvergedReason int

const (
	// ReasonConverged: the backend met its stopping criterion.
	ReasonConverged ConvergedReason = iota
	// ReasonIterationLimit: the iteration cap stopped the solve first.
	ReasonIterationLimit
	// ReasonBreakdown: illegal input or a numerical breakdown.
	ReasonBreakdown
	// ReasonOther: a backend-specific outcome outside the categories above.
	ReasonOther
)

// String renders the reason for diagnostics.
func (r ConvergedReason) String() string {
	switch r {
	case ReasonConverged:
		return "converged"
	case ReasonIterationLimit:
		return "iteration limit"
	case ReasonBreakdown:
		return "illegal input or breakdown"
	default:
		return "other"
	}
}

// ReasonFromInfo maps a raw Krylov outcome integer onto the normalized set:
// zero converged, positive iteration-limit, negative breakdown. Total over
// all ints.
func ReasonFromInfo(info int) ConvergedReason {
	switch {
	case info == 0:
		return ReasonConverged
	case info > 0:
		return ReasonIterationLimit
	default:
		return ReasonBreakdown
	}
}

// Status is the per-solve diagnostic record, retrievable after each Solve.
type Status struct {
	// Method is the backend routine that actually ran (after fallbacks).
	Method string
	// Precond is the preconditioner name, where the backend has one.
	Precond string
	// Iterations is the backend-reported iteration count, where available.
	Iterations int
	// Residual is the final residual norm, where the backend reports one.
	Residual float64
	// Raw is the untranslated backend outcome code.
	Raw int
	// Reason is Raw mapped onto the normalized outcome set.
	Reason ConvergedReason
}

// LinearSolver is the uniform solve contract every adapter satisfies.
// Implementations are not safe for concurrent use; see the package
// documentation.
type LinearSolver interface {
	// Solve returns x with A·x ≈ rhs, where A is the cached matrix unless
	// a per-call WithMatrix override supplies another. The returned vector
	// is best-effort: inspect Status for the convergence outcome.
	Solve(rhs []float64, opts ...SolveOption) ([]float64, error)

	// Status returns the diagnostic record of the most recent Solve.
	Status() Status
}
