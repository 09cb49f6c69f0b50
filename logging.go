package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gitlab.com/tinyland/lab/sysfetch/config"
)

// newLogger picks the log sink. One-shot runs log to stderr; the dashboard
// owns the terminal, so it logs to the configured file or nowhere. The
// returned close func releases the sink.
func newLogger(cfg *config.Config, opts *options, stderr io.Writer) (*slog.Logger, func() error, error) {
	level := cfg.LogLevel()
	if opts.verbose {
		level = slog.LevelDebug
	}
	handlerOpts := &slog.HandlerOptions{Level: level}
	noop := func() error { return nil }

	switch {
	case opts.once:
		return slog.New(slog.NewTextHandler(stderr, handlerOpts)), noop, nil

	case cfg.Logging.File != "":
		if err := os.MkdirAll(filepath.Dir(cfg.Logging.File), 0755); err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		return slog.New(slog.NewTextHandler(f, handlerOpts)), f.Close, nil

	default:
		return slog.New(slog.NewTextHandler(io.Discard, nil)), noop, nil
	}
}
