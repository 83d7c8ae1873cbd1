package factor

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linsolve/sparse"
)

// DenseLU returns the gonum dense-LU backend.
func DenseLU() Backend { return denseLU{} }

type denseLU struct{}

func (denseLU) Name() string    { return "denselu" }
func (denseLU) Available() bool { return true }

// Factorize expands a into dense storage and decomposes it once with
// gonum's LU. The closure reuses the factorization for every right-hand
// side.
func (denseLU) Factorize(a *sparse.CSR) (SolveFunc, error) {
	n, c := a.Dims()
	if n != c {
		return nil, ErrNonSquare
	}

	var lu mat.LU
	lu.Factorize(a.Dense())

	return func(b []float64) ([]float64, error) {
		if len(b) != n {
			return nil, sparse.ErrDimensionMismatch
		}

		x := mat.NewVecDense(n, nil)
		err := lu.SolveVecTo(x, false, mat.NewVecDense(n, append([]float64(nil), b...)))
		switch {
		case err == nil:
		case errors.As(err, new(mat.Condition)):
			// Ill-conditioned but solvable; the caller decides whether the
			// solution is usable.
		default:
			return nil, ErrSingular
		}

		return x.RawVector().Data, nil
	}, nil
}
