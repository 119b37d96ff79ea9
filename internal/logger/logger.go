// Package logger provides structured logging functionality.
// It wraps the standard log/slog package for consistent logging across the
// extractor. Loggers are constructed per run and passed into components
// explicitly rather than held as process-wide state.
//
// Log output is JSON for machine readability, with consistent snake_case
// field names (run_id, stage, record_count, duration).
package logger

import (
	"io"
	"log/slog"
	"os"
)

// New creates a logger writing JSON records to stdout.
// When debug is true the logger emits at LevelDebug, otherwise LevelInfo.
func New(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return NewWithWriter(os.Stdout, level)
}

// NewWithLevel creates a stdout JSON logger at the given level.
func NewWithLevel(level slog.Level) *slog.Logger {
	return NewWithWriter(os.Stdout, level)
}

// NewWithWriter creates a JSON logger writing to w at the given level.
// Tests use this to capture log output.
func NewWithWriter(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// WithComponent returns a logger with a component context attached.
// Component names follow the pipeline stages (config, loader, feature, writer).
func WithComponent(log *slog.Logger, component string) *slog.Logger {
	return log.With(slog.String("component", component))
}

// WithRun returns a logger with the run identifier attached.
// Every log line emitted during a pipeline execution carries the run_id.
func WithRun(log *slog.Logger, runID string) *slog.Logger {
	return log.With(slog.String("run_id", runID))
}

// Discard returns a logger that drops all records.
// Useful as a default when a caller does not care about log output.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(127),
	}))
}
