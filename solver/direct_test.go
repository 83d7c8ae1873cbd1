package solver_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/linsolve/factor"
	"github.com/katalvlaran/linsolve/solver"
	"github.com/katalvlaran/linsolve/sparse"
)

// TestDirect_Solve covers the named providers and automatic selection.
func TestDirect_Solve(t *testing.T) {
	for _, method := range []string{"", solver.MethodAuto, solver.MethodSparseLU, solver.MethodDenseLU} {
		method := method
		t.Run("method="+method, func(t *testing.T) {
			ls, err := solver.NewDirect(solver.Config{Kind: solver.KindDirect, Method: method}, diag3(t))
			if err != nil {
				t.Fatalf("NewDirect error: %v", err)
			}
			x, err := ls.Solve(rhs3())
			if err != nil {
				t.Fatalf("Solve error: %v", err)
			}
			wantVec(t, x, []float64{2, 2, 2}, 1e-12)
			if st := ls.Status(); st.Reason != solver.ReasonConverged {
				t.Errorf("Reason = %v; want converged", st.Reason)
			}
		})
	}
}

// TestDirect_UnknownMethod: a name outside the accepted set is a fatal
// configuration error, unlike the degrading iterative and multigrid
// adapters.
func TestDirect_UnknownMethod(t *testing.T) {
	_, err := solver.NewDirect(solver.Config{Kind: solver.KindDirect, Method: "qr"}, nil)
	if !errors.Is(err, solver.ErrUnknownMethod) {
		t.Errorf("NewDirect error = %v; want ErrUnknownMethod", err)
	}
}

// TestDirect_FallbackWhenUnavailable: a known but absent provider engages
// the first available one, with a notice gated on the warn flag.
func TestDirect_FallbackWhenUnavailable(t *testing.T) {
	restore := solver.SetDirectProviders([]factor.Backend{
		offlineBackend{factor.SparseLU()},
		factor.DenseLU(),
	})
	defer restore()

	for _, warn := range []bool{true, false} {
		log, buf := captureLogger()
		cfg := solver.Config{Kind: solver.KindDirect, Method: solver.MethodSparseLU, Warn: warn}
		ls, err := solver.NewDirect(cfg, diag3(t), solver.WithLogger(log))
		if err != nil {
			t.Fatalf("warn=%v: NewDirect error: %v", warn, err)
		}
		if got := ls.BackendName(); got != "denselu" {
			t.Errorf("warn=%v: backend = %q; want denselu", warn, got)
		}
		notice := strings.Contains(buf.String(), "not available")
		if notice != warn {
			t.Errorf("warn=%v: fallback notice emitted = %v", warn, notice)
		}

		x, err := ls.Solve(rhs3())
		if err != nil {
			t.Fatalf("warn=%v: Solve error: %v", warn, err)
		}
		wantVec(t, x, []float64{2, 2, 2}, 1e-10)
	}
}

// TestDirect_NoProviderAvailable: an empty capability set is fatal at
// construction.
func TestDirect_NoProviderAvailable(t *testing.T) {
	restore := solver.SetDirectProviders([]factor.Backend{
		offlineBackend{factor.SparseLU()},
		offlineBackend{factor.DenseLU()},
	})
	defer restore()

	_, err := solver.NewDirect(solver.Config{Kind: solver.KindDirect}, nil)
	if !errors.Is(err, solver.ErrBackendUnavailable) {
		t.Errorf("NewDirect error = %v; want ErrBackendUnavailable", err)
	}
}

// TestDirect_PresolveReuse: with presolve the factorization is built once
// and a per-call matrix override is ignored.
func TestDirect_PresolveReuse(t *testing.T) {
	a := diag3(t)
	cfg := solver.Config{Kind: solver.KindDirect, Presolve: true}
	ls, err := solver.NewDirect(cfg, a)
	if err != nil {
		t.Fatalf("NewDirect error: %v", err)
	}
	if !ls.Prefactorized() {
		t.Fatal("Prefactorized() = false; want eager factorization")
	}

	x1, err := ls.Solve(rhs3())
	if err != nil {
		t.Fatalf("first Solve error: %v", err)
	}
	x2, err := ls.Solve(rhs3())
	if err != nil {
		t.Fatalf("second Solve error: %v", err)
	}
	wantVec(t, x1, x2, 0)

	// The override names a different operator; the stored factorization
	// still answers.
	other := poisson(t, 3)
	x3, err := ls.Solve(rhs3(), solver.WithMatrix(other))
	if err != nil {
		t.Fatalf("override Solve error: %v", err)
	}
	wantVec(t, x3, x1, 0)
}

// TestDirect_PresolveWithoutMatrix degrades to per-call factorization.
func TestDirect_PresolveWithoutMatrix(t *testing.T) {
	cfg := solver.Config{Kind: solver.KindDirect, Presolve: true}
	ls, err := solver.NewDirect(cfg, nil)
	if err != nil {
		t.Fatalf("NewDirect error: %v", err)
	}
	if ls.Prefactorized() {
		t.Error("Prefactorized() = true; want lazy path without a matrix")
	}

	if _, err = ls.Solve(rhs3()); !errors.Is(err, solver.ErrNoMatrix) {
		t.Errorf("Solve without matrix error = %v; want ErrNoMatrix", err)
	}

	x, err := ls.Solve(rhs3(), solver.WithMatrix(diag3(t)))
	if err != nil {
		t.Fatalf("Solve with override error: %v", err)
	}
	wantVec(t, x, []float64{2, 2, 2}, 1e-12)
}

// TestDirect_SingularMatrix surfaces the factorization error.
func TestDirect_SingularMatrix(t *testing.T) {
	tr, _ := sparse.NewTriplet(2, 2)
	_ = tr.Append(0, 0, 1)
	_ = tr.Append(0, 1, 2)
	_ = tr.Append(1, 0, 2)
	_ = tr.Append(1, 1, 4)

	cfg := solver.Config{Kind: solver.KindDirect, Method: solver.MethodSparseLU}
	ls, err := solver.NewDirect(cfg, tr.ToCSR())
	if err != nil {
		t.Fatalf("NewDirect error: %v", err)
	}
	if _, err = ls.Solve([]float64{1, 2}); !errors.Is(err, factor.ErrSingular) {
		t.Errorf("Solve error = %v; want factor.ErrSingular", err)
	}
}
