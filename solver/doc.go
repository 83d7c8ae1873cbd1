// Package solver is a uniform dispatch layer over heterogeneous
// linear-system backends: sparse direct factorization (package factor),
// Krylov iteration (package krylov), algebraic multigrid (package amg) and
// a distributed-style Krylov package (package ksp).
//
// A caller describes a solver once in a Config, binds it to an adapter with
// New, then calls Solve repeatedly:
//
//	cfg := solver.Config{Kind: solver.KindIterative, Method: "cg"}
//	ls, err := solver.New(cfg, mtx)
//	...
//	x, err := ls.Solve(rhs)
//
// Swapping backends is a configuration change; call sites stay identical.
//
// # Caching and matrix identity
//
// Expensive setup work — a factorization, a multigrid hierarchy, a native
// matrix conversion — is cached inside the adapter and keyed by matrix
// identity: the cache is rebuilt only when a Solve call passes a *sparse.CSR
// pointer different from the cached one. Identity comparison, not value
// comparison, is deliberate; comparing large sparse matrices entry-by-entry
// on every call would cost more than the solve. Callers who mutate a matrix
// in place must therefore pass a fresh CSR to force a rebuild.
//
// # Outcome reporting
//
// Backend convergence outcomes are normalized into ConvergedReason and
// recorded in the Status record, alongside a human-readable diagnostic line
// per solve on the configured slog logger. Non-convergence is not an error:
// Solve returns the best iterate with the reason in Status, and the caller
// decides what to do. Errors are reserved for configuration mistakes,
// missing backend capabilities and unusable inputs.
//
// # Concurrency
//
// Adapters are single-caller objects. The matrix-change detection mutates
// cached state without locking, so concurrent Solve calls on one adapter
// are undefined behavior; construct one adapter per goroutine instead.
package solver
