// Package logger configures the process-wide slog logger. Diagnostics go to
// stderr through a tint console handler; user-facing notifications are the
// ui package's business, not this one's.
package logger

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// Setup installs the default logger. verbose switches the level to debug.
func Setup(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	handler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	})

	log := slog.New(handler)
	slog.SetDefault(log)
	return log
}
