package sparse

import "gonum.org/v1/gonum/mat"

// CSR is a sparse matrix in compressed-row storage. The three slices form
// the classic row-pointer/column-index/value triple: row i occupies
// ColInd[RowPtr[i]:RowPtr[i+1]] and Data[RowPtr[i]:RowPtr[i+1]].
//
// The triple is exported so that backend adapters can hand it to native
// representations directly. Treat a built CSR as immutable: solver caches
// key expensive setup work on matrix identity, not on value.
type CSR struct {
	rows, cols int

	RowPtr []int
	ColInd []int
	Data   []float64
}

// NewCSR builds a matrix directly from a compressed-row triple. The slices
// are retained, not copied. It returns ErrBadShape on non-positive
// dimensions or an inconsistent row-pointer slice.
func NewCSR(r, c int, rowPtr, colInd []int, data []float64) (*CSR, error) {
	if r <= 0 || c <= 0 {
		return nil, ErrBadShape
	}
	if len(rowPtr) != r+1 || rowPtr[0] != 0 || rowPtr[r] != len(colInd) || len(colInd) != len(data) {
		return nil, ErrBadShape
	}

	return &CSR{rows: r, cols: c, RowPtr: rowPtr, ColInd: colInd, Data: data}, nil
}

// Dims returns the matrix dimensions.
func (a *CSR) Dims() (r, c int) { return a.rows, a.cols }

// NNZ returns the number of stored entries.
func (a *CSR) NNZ() int { return len(a.Data) }

// At returns the value at (i, j), zero when the position is not stored.
func (a *CSR) At(i, j int) float64 {
	for k := a.RowPtr[i]; k < a.RowPtr[i+1]; k++ {
		if a.ColInd[k] == j {
			return a.Data[k]
		}
	}

	return 0
}

// MulVec computes dst = A*x. It returns ErrDimensionMismatch when the
// vector lengths do not agree with the matrix.
func (a *CSR) MulVec(dst, x []float64) error {
	if len(x) != a.cols || len(dst) != a.rows {
		return ErrDimensionMismatch
	}
	for i := 0; i < a.rows; i++ {
		sum := 0.0
		for k := a.RowPtr[i]; k < a.RowPtr[i+1]; k++ {
			sum += a.Data[k] * x[a.ColInd[k]]
		}
		dst[i] = sum
	}

	return nil
}

// MulTransVec computes dst = Aᵀ*x.
func (a *CSR) MulTransVec(dst, x []float64) error {
	if len(x) != a.rows || len(dst) != a.cols {
		return ErrDimensionMismatch
	}
	for j := range dst {
		dst[j] = 0
	}
	for i := 0; i < a.rows; i++ {
		xi := x[i]
		for k := a.RowPtr[i]; k < a.RowPtr[i+1]; k++ {
			dst[a.ColInd[k]] += a.Data[k] * xi
		}
	}

	return nil
}

// Diag extracts the main diagonal into a fresh slice. Missing diagonal
// entries read as zero.
func (a *CSR) Diag() []float64 {
	n := a.rows
	if a.cols < n {
		n = a.cols
	}
	d := make([]float64, n)
	for i := 0; i < n; i++ {
		d[i] = a.At(i, i)
	}

	return d
}

// Dense expands the matrix into a gonum dense matrix. Intended for the
// dense direct-factorization backend and coarse-grid solves; the expansion
// is O(r·c) memory.
func (a *CSR) Dense() *mat.Dense {
	d := mat.NewDense(a.rows, a.cols, nil)
	for i := 0; i < a.rows; i++ {
		for k := a.RowPtr[i]; k < a.RowPtr[i+1]; k++ {
			d.Set(i, a.ColInd[k], a.Data[k])
		}
	}

	return d
}
