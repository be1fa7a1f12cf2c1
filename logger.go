package splitvec

import (
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with splitvec-specific helpers.
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
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// This is the default for new containers.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithGrowth adds the growth strategy to the logger.
func (l *Logger) WithGrowth(g Growth) *Logger {
	return &Logger{
		Logger: l.Logger.With("growth", g.String()),
	}
}

// LogFragmentAllocated logs the allocation of a new fragment.
func (l *Logger) LogFragmentAllocated(fragment, capacity, totalLen int) {
	l.Debug("fragment allocated",
		"fragment", fragment,
		"capacity", capacity,
		"len", totalLen,
	)
}

// LogFragmentReleased logs that a fragment was dropped.
func (l *Logger) LogFragmentReleased(fragment, capacity int) {
	l.Debug("fragment released",
		"fragment", fragment,
		"capacity", capacity,
	)
}

// LogGrowthSaturated logs that growth hit MaxFragmentCapacity.
func (l *Logger) LogGrowthSaturated(fragment, lastCapacity int) {
	l.Warn("fragment growth saturated",
		"fragment", fragment,
		"last_capacity", lastCapacity,
		"capacity", MaxFragmentCapacity,
		"error", ErrCapacityOverflow,
	)
}

// LogConversion logs a conversion into a contiguous slice.
func (l *Logger) LogConversion(elements, fragments int, duration time.Duration) {
	l.Debug("converted to contiguous slice",
		"elements", elements,
		"fragments", fragments,
		"duration", duration,
	)
}
