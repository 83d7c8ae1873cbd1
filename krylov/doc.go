// Package krylov implements the registry of Krylov-subspace routines used by
// the iterative solver adapter: cg, bicgstab and gmres.
//
// Every routine shares one calling convention,
//
//	x, info := f(a, b, x0, settings)
//
// and one raw outcome contract:
//
//	info == 0  the residual dropped below the tolerance,
//	info  > 0  the iteration cap was hit; info is the iteration count,
//	info  < 0  illegal input or a numerical breakdown.
//
// The tolerance acts as both an absolute and a relative stopping criterion:
// a routine stops as soon as ‖b − Ax‖ < tol·‖b‖ or ‖b − Ax‖ < tol. Callers
// that need a different policy must scale tol themselves.
//
// The returned x is always the best approximation reached, even when info
// reports failure; deciding whether a non-converged solve is fatal belongs
// to the caller.
package krylov
