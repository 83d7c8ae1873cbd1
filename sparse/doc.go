// Package sparse provides the sparse-matrix representations shared by every
// solver backend in linsolve.
//
// Two types cover the assembly→solve pipeline:
//
//   - Triplet: a coordinate (COO) buffer for incremental assembly. Repeated
//     entries at the same position sum, which matches how finite-element
//     codes accumulate local contributions into a global matrix.
//   - CSR: the frozen compressed-row form used by the solvers. Its
//     RowPtr/ColInd/Data triple is exported because backend adapters convert
//     it into their native layouts without copying through an intermediate.
//
// A CSR value is immutable once built; solvers rely on this to cache setup
// work (factorizations, multigrid hierarchies) keyed by matrix identity.
package sparse
