package main

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// setupLogger installs the default slog logger. When the display owns the
// terminal, logs go to logPath only; otherwise they go to stderr.
func setupLogger(logPath, level string, toStderr bool) (io.Closer, error) {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var out io.Writer = os.Stderr
	var closer io.Closer = io.NopCloser(nil)
	if !toStderr {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		out = f
		closer = f
	}

	logger := slog.New(slog.NewTextHandler(out, opts)).With("app", "system-indicators")
	slog.SetDefault(logger)
	return closer, nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
