// Package logging sets up the JSON file logger shared by the Atlas frontends.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Options controls logger construction.
type Options struct {
	Path  string
	Debug bool
}

// Setup opens (or creates) the log file at opts.Path and returns a JSON
// logger writing to it together with a cleanup that closes the file.
func Setup(opts Options) (*slog.Logger, func() error, error) {
	path := strings.TrimSpace(opts.Path)
	if path == "" {
		return Discard(), func() error { return nil }, fmt.Errorf("log path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return Discard(), func() error { return nil }, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return Discard(), func() error { return nil }, fmt.Errorf("open log: %w", err)
	}

	logger := New(f, opts.Debug)
	logger.Info("logger.initialized", "path", path, "debug", opts.Debug)
	return logger, f.Close, nil
}

// New builds a JSON logger over w with UTC RFC3339 timestamps.
func New(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	})
	return slog.New(h)
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
