package krylov

import "gonum.org/v1/gonum/floats"

// epsBreakdown guards the divisions inside the recurrences. Values below it
// mean the method has lost all progress and must report a breakdown.
const epsBreakdown = 1e-300

func norm2(v []float64) float64 { return floats.Norm(v, 2) }

// CG solves Ax = b for symmetric positive-definite A by the conjugate
// gradient method. A non-SPD matrix surfaces as a breakdown (negative info),
// not as a wrong silent answer.
func CG(a Matrix, b, x0 []float64, s Settings) ([]float64, int) {
	x, r, ok := prepare(a, b, x0, &s)
	if !ok {
		return nil, -1
	}

	stop := threshold(b, s.Tol)
	if norm2(r) < stop {
		return x, 0
	}

	n := len(b)
	p := make([]float64, n)
	ap := make([]float64, n)
	copy(p, r)
	rho := floats.Dot(r, r)

	for iter := 1; ; iter++ {
		if err := a.MulVec(ap, p); err != nil {
			return x, -1
		}
		pap := floats.Dot(p, ap)
		if pap <= 0 {
			// Indefinite or singular operator.
			return x, -1
		}
		alpha := rho / pap
		floats.AddScaled(x, alpha, p)
		floats.AddScaled(r, -alpha, ap)

		if norm2(r) < stop {
			return x, 0
		}
		if iter >= s.MaxIter {
			return x, iter
		}

		rhoNext := floats.Dot(r, r)
		beta := rhoNext / rho
		rho = rhoNext
		for i := range p {
			p[i] = r[i] + beta*p[i]
		}
	}
}
