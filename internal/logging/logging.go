// Package logging builds the diagnostic logger. The terminal belongs to the
// game screen, so log output goes to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// Prefix is prepended to every log line.
const Prefix = "snake"

// New creates a logger writing to w at the given level.
func New(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          Prefix,
	})

	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return New(io.Discard, config.LevelError)
}

// Open creates a logger for cfg. An empty path disables logging. The returned
// close function must be called on exit; it is never nil.
func Open(cfg config.LogConfig) (*log.Logger, func() error, error) {
	noop := func() error { return nil }

	if cfg.Path == "" {
		return Discard(), noop, nil
	}

	path, err := config.ExpandPath(cfg.Path)
	if err != nil {
		return Discard(), noop, err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Discard(), noop, fmt.Errorf("logging: cannot create directory %s: %w", dir, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return Discard(), noop, fmt.Errorf("logging: cannot open %s: %w", path, err)
	}

	return New(f, cfg.Level), f.Close, nil
}
