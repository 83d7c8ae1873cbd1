package solver_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/katalvlaran/linsolve/solver"
)

// TestConsoleLogger_CarriesSolveDiagnostics routes a solve through the
// console handler and checks the one-line diagnostic lands.
func TestConsoleLogger_CarriesSolveDiagnostics(t *testing.T) {
	buf := &bytes.Buffer{}
	log := solver.NewConsoleLogger(buf, slog.LevelInfo)

	ls, err := solver.New(solver.Config{Kind: solver.KindDirect}, diag3(t), solver.WithLogger(log))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if _, err = ls.Solve(rhs3()); err != nil {
		t.Fatalf("Solve error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "direct solve") {
		t.Errorf("log output %q; want the direct solve line", out)
	}
}

// TestConsoleLogger_LevelFilter drops lines below the configured level.
func TestConsoleLogger_LevelFilter(t *testing.T) {
	buf := &bytes.Buffer{}
	log := solver.NewConsoleLogger(buf, slog.LevelError)

	ls, err := solver.New(solver.Config{Kind: solver.KindIterative}, diag3(t), solver.WithLogger(log))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if _, err = ls.Solve(rhs3()); err != nil {
		t.Fatalf("Solve error: %v", err)
	}

	if buf.Len() != 0 {
		t.Errorf("log output %q; want nothing below error level", buf.String())
	}
}
