package logger

import (
	"log/slog"
	"os"
	"strings"
)

// New creates the slog.Logger used across the back office. JSON on
// stdout; BACKOFFICE_LOG_LEVEL=debug lowers the threshold.
func New() *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level()})
	return slog.New(handler)
}

func level() slog.Level {
	switch strings.ToLower(os.Getenv("BACKOFFICE_LOG_LEVEL")) {
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
