package logging

import (
	"io"
	"log/slog"
	"strings"
)

// LoggerConfig holds configuration for the logger.
type LoggerConfig struct {
	Level string
}

// NewLogger creates a new slog.Logger with JSON handler and the specified output.
// The level is parsed from the config; defaults to INFO if invalid or empty.
func NewLogger(config LoggerConfig, w io.Writer) *slog.Logger {
	level := parseLevel(config.Level)
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource:   false,
		Level:       level,
		ReplaceAttr: nil,
	})

	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Reporter is the diagnostics sink consumed by the configuration store.
// Each call carries one human-readable message describing a recovered
// problem (an I/O failure, a rejected key, a bad array element). No return
// value or retry behaviour is expected from implementations.
type Reporter interface {
	Report(msg string)
}

// Nop returns a Reporter that discards all diagnostics.
func Nop() Reporter {
	return nopReporter{}
}

type nopReporter struct{}

func (nopReporter) Report(string) {}

// Slog returns a Reporter that forwards diagnostics to the given logger at
// error level. A nil logger forwards to slog.Default at call time, so a
// default set after construction is still picked up.
func Slog(logger *slog.Logger) Reporter {
	return &slogReporter{logger: logger}
}

type slogReporter struct {
	logger *slog.Logger
}

func (r *slogReporter) Report(msg string) {
	logger := r.logger
	if logger == nil {
		logger = slog.Default()
	}

	logger.Error(msg)
}
