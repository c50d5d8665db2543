// Package logger provides structured logging functionality.
// It wraps the standard log/slog package for consistent logging across the tool.
//
// The package supports two output formats:
//   - JSON (default): Machine-readable structured logging
//   - Human: Human-readable console output with level prefixes
//
// All helpers use structured logging with consistent field names (snake_case).
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"
)

// Logger is the default logger instance.
var Logger *slog.Logger

func init() {
	// Initialize with JSON handler for structured logging
	Logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// OutputFormat selects the log output format.
type OutputFormat int

const (
	// FormatJSON emits one JSON object per log record (default).
	FormatJSON OutputFormat = iota
	// FormatHuman emits compact, prefixed console lines.
	FormatHuman
)

// SetLevel configures the logging level, keeping the JSON format.
func SetLevel(level slog.Level) {
	Logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// SetLevelAndFormat configures both the logging level and the output format.
func SetLevelAndFormat(level slog.Level, format OutputFormat) {
	SetOutput(os.Stderr, level, format)
}

// SetOutput configures the logger destination, level, and format.
// Primarily useful for capturing log output in tests.
func SetOutput(w io.Writer, level slog.Level, format OutputFormat) {
	switch format {
	case FormatHuman:
		Logger = slog.New(NewHumanHandler(w, &HumanHandlerOptions{Level: level}))
	default:
		Logger = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	}
}

// Info logs an informational message.
func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}

// Error logs an error message.
func Error(msg string, args ...any) {
	Logger.Error(msg, args...)
}

// WithRule returns a logger with rule context.
func WithRule(ruleType string, ruleIndex int) *slog.Logger {
	return Logger.With("rule_type", ruleType, "rule_index", ruleIndex)
}

// WithStage returns a logger with run-stage context (read, filter, write).
func WithStage(stage string) *slog.Logger {
	return Logger.With("stage", stage)
}

// LogRunStart logs the start of a filtering run.
func LogRunStart(source string, ruleCount int, detectCorrections bool) {
	Logger.Info("run started",
		slog.String("source", source),
		slog.Int("rule_count", ruleCount),
		slog.Bool("detect_corrections", detectCorrections),
	)
}

// LogRunEnd logs the completion of a filtering run with its headline counts.
func LogRunEnd(read, kept, excluded, corrections int, duration time.Duration) {
	Logger.Info("run completed",
		slog.Int("tweets_read", read),
		slog.Int("tweets_kept", kept),
		slog.Int("tweets_excluded", excluded),
		slog.Int("corrections", corrections),
		slog.Duration("duration", duration),
	)
}

// =============================================================================
// Human-readable handler
// =============================================================================

// HumanHandlerOptions configures the human-readable handler.
type HumanHandlerOptions struct {
	// Level is the minimum level to log
	Level slog.Level
}

// HumanHandler formats log records as compact console lines.
type HumanHandler struct {
	mu    sync.Mutex
	w     io.Writer
	level slog.Level
	attrs []slog.Attr
}

// NewHumanHandler creates a human-readable slog handler writing to w.
func NewHumanHandler(w io.Writer, opts *HumanHandlerOptions) *HumanHandler {
	level := slog.LevelInfo
	if opts != nil {
		level = opts.Level
	}
	return &HumanHandler{w: w, level: level}
}

// Enabled implements slog.Handler.
func (h *HumanHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle implements slog.Handler.
func (h *HumanHandler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder
	sb.WriteString(levelPrefix(r.Level))
	sb.WriteString(r.Message)

	for _, a := range h.attrs {
		sb.WriteString(" ")
		sb.WriteString(formatAttr(a))
	}
	r.Attrs(func(a slog.Attr) bool {
		sb.WriteString(" ")
		sb.WriteString(formatAttr(a))
		return true
	})
	sb.WriteString("\n")

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, sb.String())
	return err
}

// WithAttrs implements slog.Handler.
func (h *HumanHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	combined := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	combined = append(combined, h.attrs...)
	combined = append(combined, attrs...)
	return &HumanHandler{w: h.w, level: h.level, attrs: combined}
}

// WithGroup implements slog.Handler. Groups are flattened.
func (h *HumanHandler) WithGroup(_ string) slog.Handler {
	return h
}

// levelPrefix returns the console prefix for a log level.
func levelPrefix(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "✗ "
	case level >= slog.LevelWarn:
		return "! "
	case level >= slog.LevelInfo:
		return "• "
	default:
		return "  "
	}
}

// formatAttr formats a single attribute as key=value.
func formatAttr(a slog.Attr) string {
	v := a.Value.Resolve()
	if v.Kind() == slog.KindDuration {
		return fmt.Sprintf("%s=%s", a.Key, formatDuration(v.Duration()))
	}
	return fmt.Sprintf("%s=%v", a.Key, v)
}

// formatDuration renders durations with millisecond precision.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.Round(time.Millisecond).String()
}
