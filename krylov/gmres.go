package krylov

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// GMRES solves Ax = b for general A by the restarted generalized minimal
// residual method. The Hessenberg least-squares problem is kept triangular
// with Givens rotations, so the residual norm is available each inner step
// without forming the residual itself.
func GMRES(a Matrix, b, x0 []float64, s Settings) ([]float64, int) {
	x, r, ok := prepare(a, b, x0, &s)
	if !ok {
		return nil, -1
	}

	n := len(b)
	m := s.Restart
	if m <= 0 || m > n {
		m = n
	}

	stop := threshold(b, s.Tol)

	// Krylov basis, Hessenberg columns and rotation workspace are sized for
	// one restart cycle and reused across cycles.
	v := make([][]float64, m+1)
	for i := range v {
		v[i] = make([]float64, n)
	}
	h := make([][]float64, m+1)
	for i := range h {
		h[i] = make([]float64, m)
	}
	g := make([]float64, m+1) // rotated right-hand side
	cs := make([]float64, m)
	sn := make([]float64, m)
	w := make([]float64, n)

	iters := 0
	for {
		// Restart cycle: rebuild the basis from the true residual.
		if err := a.MulVec(w, x); err != nil {
			return x, -1
		}
		for i := range r {
			r[i] = b[i] - w[i]
		}
		beta := norm2(r)
		if beta < stop {
			return x, 0
		}
		copy(v[0], r)
		floats.Scale(1/beta, v[0])
		for i := range g {
			g[i] = 0
		}
		g[0] = beta

		for i := 0; i < m; i++ {
			if err := a.MulVec(w, v[i]); err != nil {
				return x, -1
			}
			// Modified Gram-Schmidt against the current basis.
			for k := 0; k <= i; k++ {
				h[k][i] = floats.Dot(v[k], w)
				floats.AddScaled(w, -h[k][i], v[k])
			}
			h[i+1][i] = norm2(w)

			happy := h[i+1][i] < epsBreakdown
			if !happy {
				copy(v[i+1], w)
				floats.Scale(1/h[i+1][i], v[i+1])
			}

			// Rotate the new column into triangular form.
			for k := 0; k < i; k++ {
				h[k][i], h[k+1][i] = cs[k]*h[k][i]+sn[k]*h[k+1][i],
					-sn[k]*h[k][i]+cs[k]*h[k+1][i]
			}
			cs[i], sn[i] = givens(h[i][i], h[i+1][i])
			h[i][i] = cs[i]*h[i][i] + sn[i]*h[i+1][i]
			h[i+1][i] = 0
			g[i], g[i+1] = cs[i]*g[i], -sn[i]*g[i]

			iters++
			rnorm := math.Abs(g[i+1])
			if happy || rnorm < stop {
				updateGMRES(x, v, h, g, i+1)

				return x, 0
			}
			if iters >= s.MaxIter {
				updateGMRES(x, v, h, g, i+1)

				return x, iters
			}
		}
		updateGMRES(x, v, h, g, m)
	}
}

// updateGMRES solves the k×k triangular system H y = g by back substitution
// and accumulates x += V y.
func updateGMRES(x []float64, v [][]float64, h [][]float64, g []float64, k int) {
	y := make([]float64, k)
	for i := k - 1; i >= 0; i-- {
		sum := g[i]
		for j := i + 1; j < k; j++ {
			sum -= h[i][j] * y[j]
		}
		y[i] = sum / h[i][i]
	}
	for j := 0; j < k; j++ {
		floats.AddScaled(x, y[j], v[j])
	}
}

// givens returns the rotation (c, s) that zeroes the second component of
// (a, b).
func givens(a, b float64) (c, s float64) {
	if b == 0 {
		return 1, 0
	}
	if math.Abs(b) > math.Abs(a) {
		t := a / b
		s = 1 / math.Sqrt(1+t*t)

		return t * s, s
	}
	t := b / a
	c = 1 / math.Sqrt(1+t*t)

	return c, t * c
}
