// Package amg implements an aggregation-based algebraic multigrid backend.
//
// Build coarsens the input operator into a hierarchy of Galerkin products
// Pᵀ A P over greedily formed aggregates, with either plain (piecewise
// constant) or Jacobi-smoothed prolongators. A Hierarchy then solves
// systems by V-cycle iteration, optionally wrapped as a preconditioner
// inside conjugate gradients.
//
// The hierarchy is bound to the matrix it was built from. When the operator
// changes, the caller rebuilds; nothing inside a Hierarchy revalidates the
// matrix on later solves.
//
// Tolerances here are relative to ‖b‖: iteration stops when the residual
// norm drops below tol·‖b‖. This intentionally differs from the joint
// absolute/relative rule in package krylov.
package amg
