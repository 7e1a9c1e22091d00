// Package logging provides the nekmon diagnostic logger.
//
// The TUI owns stdout, so diagnostics go to a file. Polling failures and
// export results land here rather than corrupting the alternate screen.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Logger wraps the charm log.Logger with its backing file.
type Logger struct {
	*log.Logger
	file *os.File
}

// New creates a file-backed logger. An empty path returns a logger that
// discards everything, so callers never need nil checks.
func New(path string) (*Logger, error) {
	if path == "" {
		return &Logger{Logger: log.New(io.Discard)}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open diagnostics log: %w", err)
	}

	logger := log.NewWithOptions(file, log.Options{
		ReportTimestamp: true,
		Prefix:          "nekmon",
	})

	return &Logger{Logger: logger, file: file}, nil
}

// Close flushes and closes the backing file.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
