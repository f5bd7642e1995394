// Package logging sets up the program's slog logger.
//
// The TUI owns the terminal, so debug output goes to a file instead of
// stderr.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// FileName is the debug log's name inside the config directory.
const FileName = "debug.log"

// Init returns the shared logger and installs it as slog's default. With
// debug off everything is discarded. The returned func closes the log file.
func Init(debug bool, path string) (*slog.Logger, func() error, error) {
	if !debug {
		logger := slog.New(slog.DiscardHandler)
		slog.SetDefault(logger)
		return logger, func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open debug log: %w", err)
	}

	logger := New(f, true)
	slog.SetDefault(logger)
	logger.Debug("debug logging started", "path", path)
	return logger, f.Close, nil
}

// New builds a text logger on w. Debug adds the debug level and source
// positions.
func New(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	}))
}
