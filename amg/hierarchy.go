package amg

import (
	"errors"
	"math"

	"github.com/katalvlaran/linsolve/factor"
	"github.com/katalvlaran/linsolve/sparse"
)

// Sentinel errors for hierarchy construction.
var (
	// ErrNonSquare is returned for rectangular input.
	ErrNonSquare = errors.New("amg: matrix is not square")
	// ErrCoarseSolve is returned when the coarsest-level factorization fails.
	ErrCoarseSolve = errors.New("amg: coarse level factorization failed")
)

// Options tunes hierarchy construction.
type Options struct {
	// Smoothed selects Jacobi-smoothed prolongators; false keeps the plain
	// piecewise-constant tentative ones.
	Smoothed bool
	// MaxLevels caps the hierarchy depth. Zero selects DefaultMaxLevels.
	MaxLevels int
	// CoarseSize stops coarsening once a level has at most this many
	// unknowns. Zero selects DefaultCoarseSize.
	CoarseSize int
	// Omega is the weighted-Jacobi damping factor used for prolongator
	// smoothing and for the relaxation sweeps. Zero selects DefaultOmega.
	Omega float64
	// Theta is the strength-of-connection threshold: j couples to i when
	// |a_ij| ≥ Theta·√(|a_ii·a_jj|). Zero admits every neighbor.
	Theta float64
	// MaxCycles caps Solve's outer V-cycle (or accelerated) iterations.
	// Zero selects DefaultMaxCycles.
	MaxCycles int
}

// Documented defaults for Options zero values.
const (
	DefaultMaxLevels  = 10
	DefaultCoarseSize = 16
	DefaultOmega      = 2.0 / 3.0
	DefaultMaxCycles  = 100
)

// Available reports whether the multigrid capability can operate in this
// process. Adapters probe it before binding.
func Available() bool { return true }

// DefaultOptions returns Options with every documented default filled in.
func DefaultOptions() Options {
	return Options{
		Smoothed:   true,
		MaxLevels:  DefaultMaxLevels,
		CoarseSize: DefaultCoarseSize,
		Omega:      DefaultOmega,
		MaxCycles:  DefaultMaxCycles,
	}
}

func (o *Options) fillDefaults() {
	if o.MaxLevels <= 0 {
		o.MaxLevels = DefaultMaxLevels
	}
	if o.CoarseSize <= 0 {
		o.CoarseSize = DefaultCoarseSize
	}
	if o.Omega == 0 {
		o.Omega = DefaultOmega
	}
	if o.MaxCycles <= 0 {
		o.MaxCycles = DefaultMaxCycles
	}
}

// level couples one operator with the prolongator down to the next level.
// The last level has a nil prolongator and is solved directly.
type level struct {
	a    *sparse.CSR
	p    *sparse.CSR // n_fine × n_coarse, nil on the coarsest level
	diag []float64   // relaxation diagonal of a
}

// Hierarchy is a built multigrid preconditioner/solver for one matrix.
type Hierarchy struct {
	opts        Options
	levels      []*level
	coarseSolve factor.SolveFunc
}

// Levels reports the hierarchy depth, including the coarsest level.
func (h *Hierarchy) Levels() int { return len(h.levels) }

// Build constructs a hierarchy for a. Construction cost is dominated by the
// Galerkin triple products; solving against the hierarchy afterwards is
// linear per cycle.
func Build(a *sparse.CSR, o Options) (*Hierarchy, error) {
	if r, c := a.Dims(); r != c {
		return nil, ErrNonSquare
	}
	o.fillDefaults()

	h := &Hierarchy{opts: o}
	cur := a
	for {
		n, _ := cur.Dims()
		lv := &level{a: cur, diag: cur.Diag()}
		h.levels = append(h.levels, lv)
		if n <= o.CoarseSize || len(h.levels) == o.MaxLevels {
			break
		}

		agg, nc := aggregate(cur, o.Theta)
		if nc >= n {
			// No coarsening progress; keep what we have.
			break
		}
		lv.p = prolongator(cur, agg, nc, o)
		cur = galerkin(cur, lv.p)
	}

	solve, err := factor.DenseLU().Factorize(h.levels[len(h.levels)-1].a)
	if err != nil {
		return nil, errors.Join(ErrCoarseSolve, err)
	}
	h.coarseSolve = solve

	return h, nil
}

// aggregate greedily groups each node with its unclaimed strong neighbors,
// then attaches leftovers to an adjacent aggregate. Returns the aggregate
// id per node and the aggregate count.
func aggregate(a *sparse.CSR, theta float64) (agg []int, nc int) {
	n, _ := a.Dims()
	d := a.Diag()
	agg = make([]int, n)
	for i := range agg {
		agg[i] = -1
	}

	strong := func(i, k int) bool {
		j := a.ColInd[k]
		if theta == 0 {
			return true
		}

		return math.Abs(a.Data[k]) >= theta*math.Sqrt(math.Abs(d[i]*d[j]))
	}

	// Pass 1: seed aggregates around fully unclaimed neighborhoods.
	for i := 0; i < n; i++ {
		if agg[i] >= 0 {
			continue
		}
		free := true
		for k := a.RowPtr[i]; k < a.RowPtr[i+1]; k++ {
			if j := a.ColInd[k]; j != i && agg[j] >= 0 && strong(i, k) {
				free = false
				break
			}
		}
		if !free {
			continue
		}
		agg[i] = nc
		for k := a.RowPtr[i]; k < a.RowPtr[i+1]; k++ {
			if j := a.ColInd[k]; j != i && strong(i, k) {
				agg[j] = nc
			}
		}
		nc++
	}

	// Pass 2: attach the rest to any aggregated neighbor, else make them
	// singletons so the prolongator has no empty rows.
	for i := 0; i < n; i++ {
		if agg[i] >= 0 {
			continue
		}
		for k := a.RowPtr[i]; k < a.RowPtr[i+1]; k++ {
			if j := a.ColInd[k]; agg[j] >= 0 && strong(i, k) {
				agg[i] = agg[j]
				break
			}
		}
		if agg[i] < 0 {
			agg[i] = nc
			nc++
		}
	}

	return agg, nc
}

// prolongator builds the tentative piecewise-constant interpolation and,
// when configured, smooths it once: P = (I − ω·D⁻¹·A)·T.
func prolongator(a *sparse.CSR, agg []int, nc int, o Options) *sparse.CSR {
	n, _ := a.Dims()
	t, _ := sparse.NewTriplet(n, nc)
	if !o.Smoothed {
		for i := 0; i < n; i++ {
			_ = t.Append(i, agg[i], 1)
		}

		return t.ToCSR()
	}

	d := a.Diag()
	for i := 0; i < n; i++ {
		_ = t.Append(i, agg[i], 1)
		if d[i] == 0 {
			continue
		}
		w := o.Omega / d[i]
		for k := a.RowPtr[i]; k < a.RowPtr[i+1]; k++ {
			_ = t.Append(i, agg[a.ColInd[k]], -w*a.Data[k])
		}
	}

	return t.ToCSR()
}

// galerkin forms the coarse operator Pᵀ·A·P through an intermediate A·P.
func galerkin(a, p *sparse.CSR) *sparse.CSR {
	n, _ := a.Dims()
	_, nc := p.Dims()

	ap, _ := sparse.NewTriplet(n, nc)
	for i := 0; i < n; i++ {
		for k := a.RowPtr[i]; k < a.RowPtr[i+1]; k++ {
			r, v := a.ColInd[k], a.Data[k]
			for q := p.RowPtr[r]; q < p.RowPtr[r+1]; q++ {
				_ = ap.Append(i, p.ColInd[q], v*p.Data[q])
			}
		}
	}
	apc := ap.ToCSR()

	ac, _ := sparse.NewTriplet(nc, nc)
	for i := 0; i < n; i++ {
		for q := p.RowPtr[i]; q < p.RowPtr[i+1]; q++ {
			row, pv := p.ColInd[q], p.Data[q]
			for k := apc.RowPtr[i]; k < apc.RowPtr[i+1]; k++ {
				_ = ac.Append(row, apc.ColInd[k], pv*apc.Data[k])
			}
		}
	}

	return ac.ToCSR()
}
