package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Logger is the shared logger. It discards everything until Initialize is called.
var Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))

// Initialize sets up the logger based on the debug flag and an optional log file.
// GITPOLL_DEBUG=1 and GITPOLL_LOG_FILE are honored when the flags are unset.
// Every record carries a run_id unique to this process so that the lines of
// one poll can be told apart in a shared log file.
// The returned close function must be called before exit when a file is used.
func Initialize(debug bool, logFile string) (func() error, error) {
	if os.Getenv("GITPOLL_DEBUG") == "1" {
		debug = true
	}
	if envFile := os.Getenv("GITPOLL_LOG_FILE"); envFile != "" && logFile == "" {
		logFile = envFile
	}

	noop := func() error { return nil }

	if !debug && logFile == "" {
		Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
		return noop, nil
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	if logFile == "" {
		Logger = slog.New(slog.NewTextHandler(os.Stderr, opts)).With("run_id", uuid.NewString())
		return noop, nil
	}

	if err := os.MkdirAll(filepath.Dir(logFile), 0755); err != nil {
		return noop, fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return noop, fmt.Errorf("failed to open log file: %w", err)
	}

	Logger = slog.New(slog.NewJSONHandler(f, opts)).With("run_id", uuid.NewString())
	Logger.Debug("Logging initialized", "log_file", logFile)
	return f.Close, nil
}
