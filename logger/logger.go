package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// New creates a structured logger writing JSON lines to w at the given level.
// An empty or unknown level falls back to info.
func New(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// NewFile opens (appending) or creates the log file at path, creating parent
// directories as needed. The terminal belongs to the UI while the app runs,
// so nothing is logged to stdout. The caller closes the returned file.
func NewFile(path, level string) (zerolog.Logger, *os.File, error) {
	err := os.MkdirAll(filepath.Dir(path), 0o755)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to make log directory for %v: %w", path, err)
	}

	//nolint:gosec
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to open log file %v: %w", path, err)
	}

	return New(f, level), f, nil
}

// NewConsole is used before the UI takes over the terminal, and after it
// exits, to report startup failures in a human readable form.
func NewConsole() zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
