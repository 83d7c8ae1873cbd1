package solver

import (
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

// NewConsoleLogger builds a slog logger with a compact colorized handler,
// suited to the one-line-per-solve diagnostics the adapters emit. Pass it
// to New via WithLogger:
//
//	ls, err := solver.New(cfg, mtx,
//	    solver.WithLogger(solver.NewConsoleLogger(os.Stderr, slog.LevelInfo)))
func NewConsoleLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
}
