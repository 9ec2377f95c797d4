// Package logging builds the JSON-lines slog logger used across bookshelf.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Config configures the logger.
type Config struct {
	// Output receives log lines. When nil, File is opened, or stderr is used
	// when File is empty.
	Output io.Writer

	// File is the log file path, used when a TUI owns the terminal.
	File string

	// Level is one of debug, info, warn or error (default info).
	Level string

	// Debug forces debug level.
	Debug bool
}

// New creates a JSON-lines logger. Lines look like:
//
//	{"ts":"2026-10-17T10:30:00Z","level":"DEBUG","msg":"selection changed","picker":"Tags","value":["classic"]}
//
// The returned close function releases the log file, if one was opened.
func New(cfg Config) (*slog.Logger, func() error, error) {
	closer := func() error { return nil }

	out := cfg.Output
	if out == nil && cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, closer, fmt.Errorf("creating log dir: %w", err)
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, closer, fmt.Errorf("opening log file: %w", err)
		}
		out, closer = f, f.Close
	}
	if out == nil {
		out = os.Stderr
	}

	level := ParseLevel(cfg.Level)
	if cfg.Debug || DebugFromEnv() {
		level = slog.LevelDebug
	}

	handler := slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				a.Key = "ts"
			}
			return a
		},
	})
	return slog.New(handler), closer, nil
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// DebugFromEnv reports whether BOOKSHELF_DEBUG=1 is set.
func DebugFromEnv() bool {
	return os.Getenv("BOOKSHELF_DEBUG") == "1"
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
