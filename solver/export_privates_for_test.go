package solver

import (
	"github.com/katalvlaran/linsolve/factor"
	"github.com/katalvlaran/linsolve/ksp"
)

// Test-only accessors for cache observability and capability injection.
// This file is compiled only under `go test`.

// RebuildCount reports how many times the hierarchy has been built,
// including an eager construction-time build.
func (m *Multigrid) RebuildCount() int { return m.rebuilds }

// ConvertCount reports how many times the matrix was converted into the
// native representation, including an eager construction-time conversion.
func (d *Distributed) ConvertCount() int { return d.converts }

// NativeVecs exposes the cached native vector pair.
func (d *Distributed) NativeVecs() (sol, rhs *ksp.Vec) { return d.sol, d.rhs }

// Prefactorized reports whether a reusable factorization is stored.
func (d *Direct) Prefactorized() bool { return d.presolved != nil }

// BackendName reports the bound direct factorization provider.
func (d *Direct) BackendName() string { return d.backend.Name() }

// MethodName reports the Krylov routine the adapter resolved to.
func (s *Iterative) MethodName() string { return s.method }

// SetDirectProviders swaps the direct capability list and returns a
// restore func.
func SetDirectProviders(ps []factor.Backend) (restore func()) {
	old := directProviders
	directProviders = ps

	return func() { directProviders = old }
}

// SetAMGAvailable swaps the multigrid capability probe and returns a
// restore func.
func SetAMGAvailable(f func() bool) (restore func()) {
	old := amgAvailable
	amgAvailable = f

	return func() { amgAvailable = old }
}

// SetKSPAvailable swaps the distributed capability probe and returns a
// restore func.
func SetKSPAvailable(f func() bool) (restore func()) {
	old := kspAvailable
	kspAvailable = f

	return func() { kspAvailable = old }
}
