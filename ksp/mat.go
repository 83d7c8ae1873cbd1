package ksp

import "errors"

// Sentinel errors for native object construction and use.
var (
	// ErrBadTriple indicates an inconsistent compressed-row triple.
	ErrBadTriple = errors.New("ksp: invalid compressed-row triple")
	// ErrNoOperator indicates Solve was called before SetOperators.
	ErrNoOperator = errors.New("ksp: no operator set")
	// ErrVecSize indicates a copy between vectors of different lengths.
	ErrVecSize = errors.New("ksp: vector length mismatch")
	// ErrUnknownType indicates an unrecognized solver or preconditioner type.
	ErrUnknownType = errors.New("ksp: unknown type")
)

// Available reports whether the distributed-solver capability can operate
// in this process. Adapters probe it before binding.
func Available() bool { return true }

// Mat is the backend-native sparse matrix. It is created once per operator
// from a compressed-row triple and treated as opaque by callers.
type Mat struct {
	n       int
	indptr  []int
	indices []int
	data    []float64
}

// NewAIJ creates a native n×n matrix from a compressed-row triple. The
// slices are copied; the native matrix does not alias caller memory.
func NewAIJ(n int, indptr, indices []int, data []float64) (*Mat, error) {
	if n <= 0 || len(indptr) != n+1 || indptr[0] != 0 ||
		indptr[n] != len(indices) || len(indices) != len(data) {
		return nil, ErrBadTriple
	}

	m := &Mat{
		n:       n,
		indptr:  append([]int(nil), indptr...),
		indices: append([]int(nil), indices...),
		data:    append([]float64(nil), data...),
	}

	return m, nil
}

// Size returns the system dimension.
func (m *Mat) Size() int { return m.n }

// Vecs allocates a solution/right-hand-side vector pair shaped for m.
func (m *Mat) Vecs() (sol, rhs *Vec) {
	return &Vec{data: make([]float64, m.n)}, &Vec{data: make([]float64, m.n)}
}

func (m *Mat) mulVec(dst, x []float64) {
	for i := 0; i < m.n; i++ {
		sum := 0.0
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			sum += m.data[k] * x[m.indices[k]]
		}
		dst[i] = sum
	}
}

func (m *Mat) diag() []float64 {
	d := make([]float64, m.n)
	for i := 0; i < m.n; i++ {
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			if m.indices[k] == i {
				d[i] = m.data[k]
				break
			}
		}
	}

	return d
}

// Vec is a backend-native vector. Callers move data in and out through
// CopyFrom/CopyTo so the allocation can be reused across solves.
type Vec struct {
	data []float64
}

// Len returns the vector length.
func (v *Vec) Len() int { return len(v.data) }

// Zero clears the vector in place.
func (v *Vec) Zero() {
	for i := range v.data {
		v.data[i] = 0
	}
}

// CopyFrom overwrites the vector with src in place.
func (v *Vec) CopyFrom(src []float64) error {
	if len(src) != len(v.data) {
		return ErrVecSize
	}
	copy(v.data, src)

	return nil
}

// CopyTo writes the vector contents into dst.
func (v *Vec) CopyTo(dst []float64) error {
	if len(dst) != len(v.data) {
		return ErrVecSize
	}
	copy(dst, v.data)

	return nil
}
