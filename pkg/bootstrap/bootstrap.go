package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/abgdnv/storekeeper/pkg/logger"
)

// NewLogger creates a new slog.Logger instance with the specified log level writing JSON to w.
// Records carry the session id found in the context, if any.
func NewLogger(level string, w io.Writer) *slog.Logger {
	logLevel := toLevel(level)
	loggerOpts := &slog.HandlerOptions{
		AddSource: logLevel == slog.LevelDebug,
		Level:     logLevel,
	}
	logHandler := slog.NewJSONHandler(w, loggerOpts)
	return slog.New(logger.NewContextHandler(logHandler))
}

// OpenLogOutput returns the destination for log records: stderr when path is empty,
// otherwise the file at path opened for appending. The returned close func is never nil.
func OpenLogOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stderr, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return f, f.Close, nil
}

// toLevel converts a string representation of a log level to slog.Level.
func toLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
