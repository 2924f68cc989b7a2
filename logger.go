package dynarray

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with dynarray-specific fields.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
// This is the default for every Array.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithRank adds a rank field to the logger.
func (l *Logger) WithRank(rank int) *Logger {
	return &Logger{
		Logger: l.Logger.With("rank", rank),
	}
}

// LogRealloc logs a backing buffer reallocation.
func (l *Logger) LogRealloc(oldCapacities, newCapacities []int, cells int) {
	l.Debug("buffer reallocated",
		"old_capacities", oldCapacities,
		"new_capacities", newCapacities,
		"cells", cells,
	)
}

// LogInsert logs a hyperslab insertion.
func (l *Logger) LogInsert(axis int, at, shape []int, err error) {
	if err != nil {
		l.Error("insert failed",
			"axis", axis,
			"at", at,
			"shape", shape,
			"error", err,
		)
	} else {
		l.Debug("insert completed",
			"axis", axis,
			"at", at,
			"shape", shape,
		)
	}
}

// LogResize logs a resize operation.
func (l *Logger) LogResize(oldCounts, newCounts []int, err error) {
	if err != nil {
		l.Error("resize failed",
			"old_counts", oldCounts,
			"new_counts", newCounts,
			"error", err,
		)
	} else {
		l.Debug("resize completed",
			"old_counts", oldCounts,
			"new_counts", newCounts,
		)
	}
}
