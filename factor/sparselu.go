package factor

import (
	"math"

	"github.com/katalvlaran/linsolve/sparse"
)

// pivotFloor is the smallest pivot magnitude elimination accepts before
// declaring the matrix singular.
const pivotFloor = 1e-13

// SparseLU returns the row-sparse LU backend.
func SparseLU() Backend { return sparseLU{} }

type sparseLU struct{}

func (sparseLU) Name() string    { return "sparselu" }
func (sparseLU) Available() bool { return true }

// Factorize runs LU decomposition with partial pivoting on a row-map
// working copy of a. Multipliers are stored in place below the diagonal,
// so the same structure serves both triangular solves.
func (sparseLU) Factorize(a *sparse.CSR) (SolveFunc, error) {
	n, c := a.Dims()
	if n != c {
		return nil, ErrNonSquare
	}

	rows := make([]map[int]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = make(map[int]float64)
		for k := a.RowPtr[i]; k < a.RowPtr[i+1]; k++ {
			rows[i][a.ColInd[k]] = a.Data[k]
		}
	}

	// perm[k] names the original row eliminated at step k.
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	for k := 0; k < n; k++ {
		// Partial pivoting: bring the largest remaining |entry| in column
		// k to the pivot position.
		best, bestAbs := -1, pivotFloor
		for p := k; p < n; p++ {
			if v := math.Abs(rows[perm[p]][k]); v > bestAbs {
				best, bestAbs = p, v
			}
		}
		if best < 0 {
			return nil, ErrSingular
		}
		perm[k], perm[best] = perm[best], perm[k]

		pivRow := rows[perm[k]]
		piv := pivRow[k]
		for p := k + 1; p < n; p++ {
			tgt := rows[perm[p]]
			aik, ok := tgt[k]
			if !ok || aik == 0 {
				continue
			}
			m := aik / piv
			tgt[k] = m
			for j, v := range pivRow {
				if j <= k {
					continue
				}
				tgt[j] -= m * v
				if tgt[j] == 0 {
					delete(tgt, j)
				}
			}
		}
	}

	return func(b []float64) ([]float64, error) {
		if len(b) != n {
			return nil, sparse.ErrDimensionMismatch
		}

		// Forward substitution with the unit lower factor.
		y := make([]float64, n)
		for i := 0; i < n; i++ {
			sum := b[perm[i]]
			for j, v := range rows[perm[i]] {
				if j < i {
					sum -= v * y[j]
				}
			}
			y[i] = sum
		}

		// Back substitution with the upper factor.
		x := make([]float64, n)
		for i := n - 1; i >= 0; i-- {
			sum := y[i]
			diag := 0.0
			for j, v := range rows[perm[i]] {
				switch {
				case j > i:
					sum -= v * x[j]
				case j == i:
					diag = v
				}
			}
			if math.Abs(diag) < pivotFloor {
				return nil, ErrSingular
			}
			x[i] = sum / diag
		}

		return x, nil
	}, nil
}
