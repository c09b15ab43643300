// Package logging builds the diagnostic logger. The interactive screen
// owns the terminal, so log output goes to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Open returns a logger writing to path and a close function for its
// sink. An empty path yields a logger that discards everything.
func Open(path, level string) (*log.Logger, func() error, error) {
	if path == "" {
		logger := log.NewWithOptions(io.Discard, log.Options{
			Level: ParseLevel(level),
		})
		return logger, func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		Level:           ParseLevel(level),
		Formatter:       log.TextFormatter,
		ReportTimestamp: true,
		Prefix:          "tudu",
	})
	return logger, f.Close, nil
}

// ParseLevel parses a string log level to a charmbracelet/log Level.
func ParseLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}
