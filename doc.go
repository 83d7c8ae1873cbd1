// Package linsolve is a uniform abstraction layer over heterogeneous
// sparse linear-system solver backends: given a sparse matrix A and a
// right-hand side b, it returns x with A·x ≈ b while hiding backend
// selection, tolerance semantics and convergence reporting behind one call
// signature.
//
// The module is organized into flat topic packages:
//
//	sparse/ — Triplet (COO assembly) and CSR matrix representations
//	factor/ — sparse direct-factorization backends (sparse LU, dense LU)
//	krylov/ — the Krylov routine registry (cg, bicgstab, gmres)
//	amg/    — aggregation-based algebraic multigrid
//	ksp/    — distributed-style native Krylov package (configure-then-solve)
//	solver/ — the dispatch layer: Config → adapter binding, setup caching,
//	          normalized ConvergedReason reporting
//
// Consumers — typically an outer finite-element assembly/solve loop —
// depend on solver only; the backend packages stay swappable via
// configuration without touching call sites.
package linsolve
