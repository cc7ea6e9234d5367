// Package logging configures the process-wide slog logger
package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// FileName is the log file created inside the log directory
const FileName = "atelier.log"

// Logger is the global slog instance for the application
var Logger *slog.Logger

// attributes whose values never reach the log file
var sensitiveKeys = map[string]struct{}{
	"password":      {},
	"password_hash": {},
	"passwordhash":  {},
}

// Init writes logs to <logDir>/atelier.log in text format.
// The returned closer releases the log file.
func Init(logDir string, level slog.Level) (io.Closer, error) {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, err
	}

	// Open log file in append mode
	logPath := filepath.Join(logDir, FileName)
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	Logger = New(file, level)
	slog.SetDefault(Logger)

	// Redirect standard log package output to the same file
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags)

	return file, nil
}

// New returns a text logger writing to w with sensitive attributes redacted
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: redact,
	}))
}

// Discard returns a logger that drops everything
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func redact(groups []string, attr slog.Attr) slog.Attr {
	if _, ok := sensitiveKeys[strings.ToLower(attr.Key)]; ok {
		return slog.String(attr.Key, "[REDACTED]")
	}
	return attr
}
