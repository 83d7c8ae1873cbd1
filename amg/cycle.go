package amg

import "gonum.org/v1/gonum/floats"

// smooth runs one weighted-Jacobi sweep x += ω·D⁻¹·(b − A·x) on level lv.
func (h *Hierarchy) smooth(lv *level, x, b, work []float64) {
	_ = lv.a.MulVec(work, x)
	for i := range x {
		if lv.diag[i] == 0 {
			continue
		}
		x[i] += h.opts.Omega * (b[i] - work[i]) / lv.diag[i]
	}
}

// vcycle applies one V-cycle for levels[l:] to x in place.
func (h *Hierarchy) vcycle(l int, x, b []float64) {
	lv := h.levels[l]
	if lv.p == nil {
		sol, err := h.coarseSolve(b)
		if err != nil {
			// A singular coarse system leaves the current iterate as is;
			// the outer iteration reports non-convergence.
			return
		}
		copy(x, sol)

		return
	}

	n := len(b)
	_, nc := lv.p.Dims()
	work := make([]float64, n)

	h.smooth(lv, x, b, work)

	// Restrict the residual and recurse on the coarse correction.
	_ = lv.a.MulVec(work, x)
	for i := range work {
		work[i] = b[i] - work[i]
	}
	rc := make([]float64, nc)
	_ = lv.p.MulTransVec(rc, work)
	ec := make([]float64, nc)
	h.vcycle(l+1, ec, rc)

	// Prolongate the correction back and post-smooth.
	_ = lv.p.MulVec(work, ec)
	floats.Add(x, work)
	h.smooth(lv, x, b, work)
}

// Solve iterates V-cycles on A·x = b until the residual norm drops below
// tol·‖b‖ or the cycle cap is reached. accel == "cg" wraps the V-cycle as a
// preconditioner inside conjugate gradients; any other value runs plain
// V-cycle iteration. x0 may be nil for a zero initial guess.
//
// The best iterate reached is always returned; converged tells the caller
// whether the tolerance was met.
func (h *Hierarchy) Solve(b, x0 []float64, tol float64, accel string) (x []float64, iters int, converged bool) {
	n := len(b)
	x = make([]float64, n)
	if x0 != nil {
		copy(x, x0)
	}

	bnorm := floats.Norm(b, 2)
	if bnorm == 0 {
		// Zero right-hand side: the zero vector is exact.
		return make([]float64, n), 0, true
	}

	stop := tol * bnorm
	if accel == "cg" {
		return h.pcg(x, b, stop)
	}

	r := make([]float64, n)
	for iters = 0; iters < h.opts.MaxCycles; iters++ {
		_ = h.levels[0].a.MulVec(r, x)
		for i := range r {
			r[i] = b[i] - r[i]
		}
		if floats.Norm(r, 2) < stop {
			return x, iters, true
		}
		h.vcycle(0, x, b)
	}

	return x, iters, false
}

// pcg runs conjugate gradients preconditioned by one V-cycle per iteration.
func (h *Hierarchy) pcg(x, b []float64, stop float64) ([]float64, int, bool) {
	n := len(b)
	r := make([]float64, n)
	z := make([]float64, n)
	p := make([]float64, n)
	ap := make([]float64, n)

	_ = h.levels[0].a.MulVec(r, x)
	for i := range r {
		r[i] = b[i] - r[i]
	}
	if floats.Norm(r, 2) < stop {
		return x, 0, true
	}

	h.vcycle(0, z, r)
	copy(p, z)
	rz := floats.Dot(r, z)

	for iter := 1; iter <= h.opts.MaxCycles; iter++ {
		_ = h.levels[0].a.MulVec(ap, p)
		pap := floats.Dot(p, ap)
		if pap <= 0 {
			return x, iter, false
		}
		alpha := rz / pap
		floats.AddScaled(x, alpha, p)
		floats.AddScaled(r, -alpha, ap)

		if floats.Norm(r, 2) < stop {
			return x, iter, true
		}

		for i := range z {
			z[i] = 0
		}
		h.vcycle(0, z, r)
		rzNext := floats.Dot(r, z)
		beta := rzNext / rz
		rz = rzNext
		for i := range p {
			p[i] = z[i] + beta*p[i]
		}
	}

	return x, h.opts.MaxCycles, false
}
