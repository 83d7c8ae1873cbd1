// Package ksp is the parallel-Krylov backend behind the distributed solver
// adapter. Its surface mirrors the configure-then-solve shape of large
// distributed packages: an opaque native matrix created from a
// compressed-row triple, native vectors tied to that matrix, and a solver
// object whose method, preconditioner and tolerances are set before Solve.
//
// The native vectors exist so a caller can reuse one allocation across many
// solves against the same operator: copy a right-hand side in, solve, copy
// the solution out. That round trip is the whole data-exchange protocol.
//
// Convergence is reached when ‖b − A·x‖ < max(rtol·r₀, atol), where r₀ is
// the initial residual norm. The outcome is reported as a signed Reason
// code: positive values are converged states, negative values diverged
// ones. Non-convergence is a reported state, never an error.
//
// Any process-level parallelism lives entirely behind this boundary;
// callers neither configure nor observe it.
package ksp
