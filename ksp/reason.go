package ksp

import "fmt"

// Reason is the native convergence-outcome code. Positive values are
// converged states, negative values diverged ones; zero means the solver
// has not run yet.
type Reason int

const (
	// ReasonIterating means Solve has not completed on this object.
	ReasonIterating Reason = 0

	// ConvergedRTol: the residual dropped below rtol·r₀.
	ConvergedRTol Reason = 2
	// ConvergedATol: the residual dropped below atol.
	ConvergedATol Reason = 3

	// DivergedIts: the iteration cap was reached first.
	DivergedIts Reason = -3
	// DivergedBreakdown: a recurrence scalar vanished.
	DivergedBreakdown Reason = -5
	// DivergedNull: the operator or input was unusable.
	DivergedNull Reason = -9
)

var reasonNames = map[Reason]string{
	ReasonIterating:   "KSP_ITERATING",
	ConvergedRTol:     "KSP_CONVERGED_RTOL",
	ConvergedATol:     "KSP_CONVERGED_ATOL",
	DivergedIts:       "KSP_DIVERGED_ITS",
	DivergedBreakdown: "KSP_DIVERGED_BREAKDOWN",
	DivergedNull:      "KSP_DIVERGED_NULL",
}

// String names the reason code; unknown codes render numerically.
func (r Reason) String() string {
	if s, ok := reasonNames[r]; ok {
		return s
	}

	return fmt.Sprintf("KSP_REASON(%d)", int(r))
}
