package tabview

import (
	"io"
	"log/slog"
	"os"

	"github.com/hupe1980/tabview/sorter"
)

// Logger wraps slog.Logger with tabview-specific helpers.
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
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithView tags the logger with a view name.
func (l *Logger) WithView(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("view", name),
	}
}

// LogRender logs a completed pipeline pass.
func (l *Logger) LogRender(q QueryState, res Result) {
	if res.Err != nil {
		l.Warn("render degraded",
			"search", q.SearchText,
			"filters", len(q.Filters.Active()),
			"sort", sortAttr(q.Sort),
			"page", res.PageIndex,
			"total", res.TotalRecords,
			"error", res.Err,
		)
		return
	}
	l.Debug("render completed",
		"search", q.SearchText,
		"filters", len(q.Filters.Active()),
		"sort", sortAttr(q.Sort),
		"page", res.PageIndex,
		"rows", len(res.Rows),
		"total", res.TotalRecords,
	)
}

// LogRecovered logs a failure contained at the pipeline boundary.
func (l *Logger) LogRecovered(stage string, err error) {
	l.Error("derive failed",
		"stage", stage,
		"error", err,
	)
}

// LogControl logs a control operation on a view.
func (l *Logger) LogControl(op string, applied bool, err error) {
	if err != nil {
		l.Warn("control rejected",
			"op", op,
			"error", err,
		)
		return
	}
	l.Debug("control applied",
		"op", op,
		"applied", applied,
	)
}

func sortAttr(k sorter.Key) string {
	if !k.Active() {
		return ""
	}
	return k.Field + " " + k.Direction.String()
}
