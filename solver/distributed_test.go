package solver_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/linsolve/ksp"
	"github.com/katalvlaran/linsolve/solver"
)

// TestDistributed_Solve covers both native methods and preconditioners.
func TestDistributed_Solve(t *testing.T) {
	for _, method := range []string{"cg", "bicgstab"} {
		for _, precond := range []string{"none", "jacobi"} {
			method, precond := method, precond
			t.Run(method+"/"+precond, func(t *testing.T) {
				cfg := solver.Config{
					Kind:    solver.KindDistributed,
					Method:  method,
					Precond: precond,
					EpsR:    1e-12,
					EpsA:    1e-12,
				}
				ls, err := solver.New(cfg, diag3(t))
				if err != nil {
					t.Fatalf("New error: %v", err)
				}
				x, err := ls.Solve(rhs3())
				if err != nil {
					t.Fatalf("Solve error: %v", err)
				}
				wantVec(t, x, []float64{2, 2, 2}, 1e-8)

				st := ls.Status()
				if st.Reason != solver.ReasonConverged {
					t.Errorf("Reason = %v (raw %d); want converged", st.Reason, st.Raw)
				}
				if st.Method != method || st.Precond != precond {
					t.Errorf("Status = %+v; want method %q precond %q", st, method, precond)
				}
			})
		}
	}
}

// TestDistributed_UnknownNamesFatal: the native package rejects the names
// at construction, and the adapter propagates that as a configuration
// error.
func TestDistributed_UnknownNamesFatal(t *testing.T) {
	_, err := solver.NewDistributed(solver.Config{Kind: solver.KindDistributed, Method: "chebyshev"}, nil)
	if !errors.Is(err, ksp.ErrUnknownType) {
		t.Errorf("bad method error = %v; want ksp.ErrUnknownType", err)
	}
	_, err = solver.NewDistributed(solver.Config{Kind: solver.KindDistributed, Precond: "ilu"}, nil)
	if !errors.Is(err, ksp.ErrUnknownType) {
		t.Errorf("bad precond error = %v; want ksp.ErrUnknownType", err)
	}
}

// TestDistributed_ConvertOnIdentity: the native conversion happens once per
// matrix object.
func TestDistributed_ConvertOnIdentity(t *testing.T) {
	a := diag3(t)
	ls, err := solver.NewDistributed(solver.Config{Kind: solver.KindDistributed}, a)
	if err != nil {
		t.Fatalf("NewDistributed error: %v", err)
	}
	if got := ls.ConvertCount(); got != 1 {
		t.Fatalf("converts after construction = %d; want 1 (eager)", got)
	}

	for i := 0; i < 3; i++ {
		if _, err = ls.Solve(rhs3()); err != nil {
			t.Fatalf("Solve %d error: %v", i, err)
		}
	}
	if got := ls.ConvertCount(); got != 1 {
		t.Errorf("converts after repeated solves = %d; want 1", got)
	}

	same := diag3(t)
	if _, err = ls.Solve(rhs3(), solver.WithMatrix(same)); err != nil {
		t.Fatalf("Solve with new object error: %v", err)
	}
	if got := ls.ConvertCount(); got != 2 {
		t.Errorf("converts after new object = %d; want 2", got)
	}
	if _, err = ls.Solve(rhs3(), solver.WithMatrix(same)); err != nil {
		t.Fatalf("Solve with cached object error: %v", err)
	}
	if got := ls.ConvertCount(); got != 2 {
		t.Errorf("converts after re-using the object = %d; want 2", got)
	}
}

// TestDistributed_NativeVectorReuse: repeated solves run through the same
// cached native vector pair.
func TestDistributed_NativeVectorReuse(t *testing.T) {
	ls, err := solver.NewDistributed(solver.Config{Kind: solver.KindDistributed}, diag3(t))
	if err != nil {
		t.Fatalf("NewDistributed error: %v", err)
	}

	if _, err = ls.Solve(rhs3()); err != nil {
		t.Fatalf("first Solve error: %v", err)
	}
	sol1, rhs1 := ls.NativeVecs()

	if _, err = ls.Solve(rhs3(), solver.WithGuess([]float64{1, 1, 1})); err != nil {
		t.Fatalf("second Solve error: %v", err)
	}
	sol2, rhs2 := ls.NativeVecs()

	if sol1 != sol2 || rhs1 != rhs2 {
		t.Error("native vectors were reallocated between solves over one matrix")
	}
}

// TestDistributed_IterationLimitStatus maps the native code onto the
// normalized set and preserves it raw.
func TestDistributed_IterationLimitStatus(t *testing.T) {
	cfg := solver.Config{
		Kind:    solver.KindDistributed,
		Precond: "none",
		IMax:    1,
	}
	ls, err := solver.NewDistributed(cfg, diag3(t))
	if err != nil {
		t.Fatalf("NewDistributed error: %v", err)
	}
	if _, err = ls.Solve(rhs3(), solver.WithEpsR(1e-14), solver.WithEpsA(1e-300)); err != nil {
		t.Fatalf("Solve error: %v", err)
	}

	st := ls.Status()
	if st.Reason != solver.ReasonIterationLimit {
		t.Errorf("Reason = %v; want iteration limit", st.Reason)
	}
	if st.Raw != int(ksp.DivergedIts) {
		t.Errorf("Raw = %d; want the native code %d", st.Raw, int(ksp.DivergedIts))
	}
}

// TestDistributed_LazyWithoutMatrix defers the native conversion.
func TestDistributed_LazyWithoutMatrix(t *testing.T) {
	ls, err := solver.NewDistributed(solver.Config{Kind: solver.KindDistributed}, nil)
	if err != nil {
		t.Fatalf("NewDistributed error: %v", err)
	}
	if got := ls.ConvertCount(); got != 0 {
		t.Fatalf("converts after nil-matrix construction = %d; want 0", got)
	}

	if _, err = ls.Solve(rhs3()); !errors.Is(err, solver.ErrNoMatrix) {
		t.Errorf("no-matrix error = %v; want ErrNoMatrix", err)
	}

	x, err := ls.Solve(rhs3(), solver.WithMatrix(diag3(t)))
	if err != nil {
		t.Fatalf("Solve with override error: %v", err)
	}
	wantVec(t, x, []float64{2, 2, 2}, 1e-6)
	if got := ls.ConvertCount(); got != 1 {
		t.Errorf("converts after first real solve = %d; want 1", got)
	}
}

// TestDistributed_Unavailable is fatal at construction.
func TestDistributed_Unavailable(t *testing.T) {
	restore := solver.SetKSPAvailable(func() bool { return false })
	defer restore()

	_, err := solver.NewDistributed(solver.Config{Kind: solver.KindDistributed}, nil)
	if !errors.Is(err, solver.ErrBackendUnavailable) {
		t.Errorf("NewDistributed error = %v; want ErrBackendUnavailable", err)
	}
}
