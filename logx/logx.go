// Package logx is a tiny leveled façade over log/slog (spec §7's three
// non-fatal severities: warning, info, debug). The teacher logs nothing
// (zero-dependency by design) and pushes diagnostics into return values
// instead; this engine still needs the three severities spec §7 names,
// so it reaches for the standard library's structured logger rather than
// inventing one, since no example repo in the retrieved pack wires a
// third-party logging dependency.
package logx

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps *slog.Logger with the three call sites spec §7 names:
// Warn (invariant-violation-detected, non-fatal), Info (a completed,
// observable mutation), and Debug (clamping, degenerate-geometry).
type Logger struct {
	base *slog.Logger
}

// New wraps base. A nil base falls back to slog's default handler.
func New(base *slog.Logger) *Logger {
	if base == nil {
		base = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	return &Logger{base: base}
}

// Warn logs an invariant-violation-detected condition: the operation was
// rejected, scene unchanged.
func (l *Logger) Warn(msg string, args ...any) {
	l.base.Log(context.Background(), slog.LevelWarn, msg, args...)
}

// Info logs a completed mutation.
func (l *Logger) Info(msg string, args ...any) {
	l.base.Log(context.Background(), slog.LevelInfo, msg, args...)
}

// Debug logs clamping or degenerate-geometry handling: the operation
// proceeded with an adjusted or reduced result.
func (l *Logger) Debug(msg string, args ...any) {
	l.base.Log(context.Background(), slog.LevelDebug, msg, args...)
}

// Default is a package-level Logger callers may use without constructing
// their own, mirroring slog.Default().
var Default = New(nil)
