package ksp

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Solver and preconditioner type names accepted by SetType.
const (
	TypeCG       = "cg"
	TypeBiCGStab = "bicgstab"

	PCNone   = "none"
	PCJacobi = "jacobi"
)

// Default tolerances applied when SetTolerances receives zero values.
const (
	DefaultRTol    = 1e-8
	DefaultATol    = 1e-50
	DefaultMaxIter = 10000
)

const breakdownEps = 1e-300

// PC configures the preconditioner attached to a KSP.
type PC struct {
	typ string
}

// SetType selects the preconditioner: PCNone or PCJacobi.
func (pc *PC) SetType(typ string) error {
	switch typ {
	case PCNone, PCJacobi:
		pc.typ = typ

		return nil
	default:
		return ErrUnknownType
	}
}

// Type returns the configured preconditioner type.
func (pc *PC) Type() string { return pc.typ }

// KSP is the native Krylov solver object. Configure it with SetType,
// PC().SetType, SetOperators and SetTolerances, then call Solve any number
// of times. One KSP serves one caller at a time.
type KSP struct {
	typ string
	pc  PC
	a   *Mat

	rtol, atol float64
	maxIter    int

	reason Reason
	its    int
	rnorm  float64
}

// New creates a solver object with cg/jacobi defaults and default
// tolerances.
func New() *KSP {
	return &KSP{
		typ:     TypeCG,
		pc:      PC{typ: PCJacobi},
		rtol:    DefaultRTol,
		atol:    DefaultATol,
		maxIter: DefaultMaxIter,
	}
}

// SetType selects the Krylov method: TypeCG or TypeBiCGStab.
func (k *KSP) SetType(typ string) error {
	switch typ {
	case TypeCG, TypeBiCGStab:
		k.typ = typ

		return nil
	default:
		return ErrUnknownType
	}
}

// Type returns the configured method name.
func (k *KSP) Type() string { return k.typ }

// PC exposes the attached preconditioner configuration.
func (k *KSP) PC() *PC { return &k.pc }

// SetOperators binds the native matrix the next Solve runs against.
func (k *KSP) SetOperators(a *Mat) { k.a = a }

// SetTolerances sets the stopping parameters. Zero or negative values keep
// the corresponding default. Convergence is declared when
// rnorm < max(rtol·r₀, atol).
func (k *KSP) SetTolerances(atol, rtol float64, maxIter int) {
	if atol > 0 {
		k.atol = atol
	}
	if rtol > 0 {
		k.rtol = rtol
	}
	if maxIter > 0 {
		k.maxIter = maxIter
	}
}

// Reason returns the outcome code of the last Solve.
func (k *KSP) Reason() Reason { return k.reason }

// Iterations returns the iteration count of the last Solve.
func (k *KSP) Iterations() int { return k.its }

// ResidualNorm returns the final residual norm of the last Solve.
func (k *KSP) ResidualNorm() float64 { return k.rnorm }

// Solve runs the configured method on A·x = b. The incoming contents of x
// are the initial guess; on return x holds the best iterate reached. The
// outcome lands in Reason, never in the error return: an error here means
// the solve could not start at all.
func (k *KSP) Solve(b, x *Vec) error {
	if k.a == nil {
		return ErrNoOperator
	}
	if b.Len() != k.a.n || x.Len() != k.a.n {
		return ErrVecSize
	}

	psolve := k.psolve()
	switch k.typ {
	case TypeBiCGStab:
		k.bicgstab(b.data, x.data, psolve)
	default:
		k.cg(b.data, x.data, psolve)
	}

	return nil
}

// psolve returns the preconditioner application z = M⁻¹·r.
func (k *KSP) psolve() func(z, r []float64) {
	if k.pc.typ != PCJacobi {
		return func(z, r []float64) { copy(z, r) }
	}

	d := k.a.diag()

	return func(z, r []float64) {
		for i := range r {
			if d[i] != 0 {
				z[i] = r[i] / d[i]
			} else {
				z[i] = r[i]
			}
		}
	}
}

// stopAt computes the combined threshold from the initial residual norm.
func (k *KSP) stopAt(r0 float64) float64 {
	return math.Max(k.rtol*r0, k.atol)
}

// classify records the final state for a residual that crossed the
// threshold: the rtol branch wins when both hold, matching the max rule.
func (k *KSP) classify(rnorm, r0 float64) {
	if rnorm < k.rtol*r0 {
		k.reason = ConvergedRTol
	} else {
		k.reason = ConvergedATol
	}
}

func (k *KSP) cg(b, x []float64, psolve func(z, r []float64)) {
	n := k.a.n
	r := make([]float64, n)
	z := make([]float64, n)
	p := make([]float64, n)
	ap := make([]float64, n)

	k.a.mulVec(r, x)
	floats.AddScaledTo(r, b, -1, r)

	r0 := floats.Norm(r, 2)
	stop := k.stopAt(r0)
	k.its, k.rnorm = 0, r0
	if r0 < stop {
		k.classify(r0, r0)

		return
	}

	psolve(z, r)
	copy(p, z)
	rz := floats.Dot(r, z)

	for iter := 1; iter <= k.maxIter; iter++ {
		k.a.mulVec(ap, p)
		pap := floats.Dot(p, ap)
		if pap <= 0 {
			k.its, k.reason = iter, DivergedBreakdown

			return
		}
		alpha := rz / pap
		floats.AddScaled(x, alpha, p)
		floats.AddScaled(r, -alpha, ap)

		k.its, k.rnorm = iter, floats.Norm(r, 2)
		if k.rnorm < stop {
			k.classify(k.rnorm, r0)

			return
		}

		psolve(z, r)
		rzNext := floats.Dot(r, z)
		beta := rzNext / rz
		rz = rzNext
		for i := range p {
			p[i] = z[i] + beta*p[i]
		}
	}

	k.reason = DivergedIts
}

func (k *KSP) bicgstab(b, x []float64, psolve func(z, r []float64)) {
	n := k.a.n
	r := make([]float64, n)
	rt := make([]float64, n)
	p := make([]float64, n)
	phat := make([]float64, n)
	v := make([]float64, n)
	shat := make([]float64, n)
	t := make([]float64, n)

	k.a.mulVec(r, x)
	floats.AddScaledTo(r, b, -1, r)
	copy(rt, r)

	r0 := floats.Norm(r, 2)
	stop := k.stopAt(r0)
	k.its, k.rnorm = 0, r0
	if r0 < stop {
		k.classify(r0, r0)

		return
	}

	var rhoPrev, alpha, omega float64
	for iter := 1; iter <= k.maxIter; iter++ {
		rho := floats.Dot(rt, r)
		if math.Abs(rho) < breakdownEps {
			k.its, k.reason = iter, DivergedBreakdown

			return
		}
		if iter == 1 {
			copy(p, r)
		} else {
			beta := (rho / rhoPrev) * (alpha / omega)
			floats.AddScaled(p, -omega, v)
			floats.Scale(beta, p)
			floats.Add(p, r)
		}

		psolve(phat, p)
		k.a.mulVec(v, phat)
		rtv := floats.Dot(rt, v)
		if math.Abs(rtv) < breakdownEps {
			k.its, k.reason = iter, DivergedBreakdown

			return
		}
		alpha = rho / rtv
		floats.AddScaled(r, -alpha, v) // r now holds s

		k.its, k.rnorm = iter, floats.Norm(r, 2)
		if k.rnorm < stop {
			floats.AddScaled(x, alpha, phat)
			k.classify(k.rnorm, r0)

			return
		}

		psolve(shat, r)
		k.a.mulVec(t, shat)
		tt := floats.Dot(t, t)
		if tt < breakdownEps {
			k.its, k.reason = iter, DivergedBreakdown

			return
		}
		omega = floats.Dot(t, r) / tt
		floats.AddScaled(x, alpha, phat)
		floats.AddScaled(x, omega, shat)
		floats.AddScaled(r, -omega, t)

		k.its, k.rnorm = iter, floats.Norm(r, 2)
		if k.rnorm < stop {
			k.classify(k.rnorm, r0)

			return
		}
		if math.Abs(omega) < breakdownEps {
			k.its, k.reason = iter, DivergedBreakdown

			return
		}
		rhoPrev = rho
	}

	k.reason = DivergedIts
}
