package krylov

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// BiCGStab solves Ax = b for general (non-symmetric) A by the stabilized
// bi-conjugate gradient method. Rho and omega breakdowns report negative
// info rather than dividing by a vanishing scalar.
func BiCGStab(a Matrix, b, x0 []float64, s Settings) ([]float64, int) {
	x, r, ok := prepare(a, b, x0, &s)
	if !ok {
		return nil, -1
	}

	stop := threshold(b, s.Tol)
	if norm2(r) < stop {
		return x, 0
	}

	n := len(b)
	rt := make([]float64, n) // shadow residual, fixed at r₀
	p := make([]float64, n)
	v := make([]float64, n)
	t := make([]float64, n)
	copy(rt, r)
	copy(p, r)

	var rhoPrev, alpha, omega float64
	for iter := 1; ; iter++ {
		rho := floats.Dot(rt, r)
		if math.Abs(rho) < epsBreakdown {
			return x, -1
		}
		if iter > 1 {
			beta := (rho / rhoPrev) * (alpha / omega)
			floats.AddScaled(p, -omega, v)
			floats.Scale(beta, p)
			floats.Add(p, r)
		}

		if err := a.MulVec(v, p); err != nil {
			return x, -1
		}
		rtv := floats.Dot(rt, v)
		if math.Abs(rtv) < epsBreakdown {
			return x, -1
		}
		alpha = rho / rtv
		floats.AddScaled(r, -alpha, v) // r now holds s = r - alpha*v

		if norm2(r) < stop {
			floats.AddScaled(x, alpha, p)

			return x, 0
		}

		if err := a.MulVec(t, r); err != nil {
			return x, -1
		}
		tt := floats.Dot(t, t)
		if tt < epsBreakdown {
			return x, -1
		}
		omega = floats.Dot(t, r) / tt
		floats.AddScaled(x, alpha, p)
		floats.AddScaled(x, omega, r)
		floats.AddScaled(r, -omega, t)

		if norm2(r) < stop {
			return x, 0
		}
		if iter >= s.MaxIter {
			return x, iter
		}
		if math.Abs(omega) < epsBreakdown {
			return x, -1
		}
		rhoPrev = rho
	}
}
