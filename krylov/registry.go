package krylov

// Matrix is the minimal matrix contract a Krylov routine needs: the system
// dimension and a matrix-vector product. sparse.CSR satisfies it.
type Matrix interface {
	Dims() (r, c int)
	MulVec(dst, x []float64) error
}

// Settings carries the per-call stopping parameters.
type Settings struct {
	// Tol is the joint absolute/relative residual tolerance.
	// Zero selects DefaultTol.
	Tol float64
	// MaxIter caps the iteration count. Zero selects twice the system
	// dimension.
	MaxIter int
	// Restart is the gmres restart length. Zero selects the system
	// dimension (full gmres). Ignored by the other methods.
	Restart int
}

// DefaultTol is the joint residual tolerance used when Settings.Tol is zero.
const DefaultTol = 1e-8

// Func is a Krylov routine. x0 may be nil for a zero initial guess. The
// returned info follows the package-level contract: 0 converged, positive
// iteration-limit, negative breakdown or illegal input.
type Func func(a Matrix, b, x0 []float64, s Settings) (x []float64, info int)

// methods is the fixed routine registry. Adapters resolve configuration
// strings against it and fall back to cg for unknown names.
var methods = map[string]Func{
	"cg":       CG,
	"bicgstab": BiCGStab,
	"gmres":    GMRES,
}

// Lookup resolves a method name against the registry.
func Lookup(name string) (Func, bool) {
	f, ok := methods[name]

	return f, ok
}

// Methods lists the registered method names. The result order is unspecified.
func Methods() []string {
	names := make([]string, 0, len(methods))
	for name := range methods {
		names = append(names, name)
	}

	return names
}

// prepare validates the common inputs and produces the working solution and
// residual vectors. A nil x0 means the zero vector, so the initial residual
// is b itself. ok is false on dimension errors.
func prepare(a Matrix, b, x0 []float64, s *Settings) (x, r []float64, ok bool) {
	rows, cols := a.Dims()
	if rows != cols || len(b) != rows || (x0 != nil && len(x0) != rows) {
		return nil, nil, false
	}
	if s.Tol == 0 {
		s.Tol = DefaultTol
	}
	if s.MaxIter <= 0 {
		s.MaxIter = 2 * rows
	}

	x = make([]float64, rows)
	r = make([]float64, rows)
	if x0 == nil {
		copy(r, b)

		return x, r, true
	}
	copy(x, x0)
	if err := a.MulVec(r, x); err != nil {
		return nil, nil, false
	}
	for i := range r {
		r[i] = b[i] - r[i]
	}

	return x, r, true
}

// threshold computes the joint absolute/relative stopping bound for b.
func threshold(b []float64, tol float64) float64 {
	t := tol * norm2(b)
	if tol > t {
		t = tol
	}

	return t
}
