// Package logging sets up the process-wide structured logger.
package logging

import (
	"io"
	"log/slog"
)

// New returns a text-format slog logger on w. Verbose enables debug-level
// records; otherwise only info and above are written.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
