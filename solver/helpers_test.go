package solver_test

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/katalvlaran/linsolve/factor"
	"github.com/katalvlaran/linsolve/sparse"
)

// diag3 builds diag(4, 9, 16), whose solution for rhs3 is exactly [2 2 2].
func diag3(t *testing.T) *sparse.CSR {
	t.Helper()
	tr, err := sparse.NewTriplet(3, 3)
	if err != nil {
		t.Fatalf("NewTriplet error: %v", err)
	}
	_ = tr.Append(0, 0, 4)
	_ = tr.Append(1, 1, 9)
	_ = tr.Append(2, 2, 16)

	return tr.ToCSR()
}

func rhs3() []float64 { return []float64{8, 18, 32} }

// poisson assembles the tridiagonal [-1 2 -1] operator.
func poisson(t *testing.T, n int) *sparse.CSR {
	t.Helper()
	tr, err := sparse.NewTriplet(n, n)
	if err != nil {
		t.Fatalf("NewTriplet error: %v", err)
	}
	for i := 0; i < n; i++ {
		_ = tr.Append(i, i, 2)
		if i > 0 {
			_ = tr.Append(i, i-1, -1)
		}
		if i < n-1 {
			_ = tr.Append(i, i+1, -1)
		}
	}

	return tr.ToCSR()
}

// wantVec asserts x ≈ want within tol.
func wantVec(t *testing.T, x, want []float64, tol float64) {
	t.Helper()
	if len(x) != len(want) {
		t.Fatalf("len(x) = %d; want %d", len(x), len(want))
	}
	for i := range want {
		if math.Abs(x[i]-want[i]) > tol {
			t.Fatalf("x = %v; want %v (tol %g)", x, want, tol)
		}
	}
}

// captureLogger returns a logger writing plain text into the buffer, for
// asserting on emitted notices.
func captureLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}

	return slog.New(slog.NewTextHandler(buf, nil)), buf
}

// offlineBackend wraps a factorization provider and reports it absent, for
// exercising fallback paths.
type offlineBackend struct {
	factor.Backend
}

func (offlineBackend) Available() bool { return false }
