// Package factor provides the sparse direct-factorization backends behind
// the direct solver adapter.
//
// A Backend factorizes a matrix once and returns a reusable solve closure,
// so one factorization can serve many right-hand sides. Two providers are
// registered:
//
//   - sparselu: LU with partial pivoting on a row-sparse working copy. The
//     preferred engine; fill-in stays proportional to the elimination
//     pattern rather than n².
//   - denselu: gonum's dense LU over an expanded copy. The always-available
//     fallback; robust, but O(n²) memory.
//
// Backends are probed through Available so a caller can express an ordered
// preference list and bind the first provider that answers.
package factor
