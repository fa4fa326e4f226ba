// Package logging provides structured logging for the stewardlink system using
// zerolog. Output is human-readable console format when attached to a terminal
// and JSON otherwise, controlled by the LOG_LEVEL, LOG_FORMAT and NO_COLOR
// environment variables.
//
// Example usage:
//
//	logging.Info().Str("source", "roster").Int("rows", n).Msg("Roster read complete")
//
//	// Carry a logger in a context
//	ctx = logging.WithLogger(ctx, logger)
//	logging.FromContext(ctx).Debug().Msg("using context logger")
package logging

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// defaultLogger is the global logger instance.
var defaultLogger zerolog.Logger

// Nop discards all log output.
var Nop = zerolog.Nop()

func init() {
	defaultLogger = createDefaultLogger()
}

// createDefaultLogger builds a logger from environment defaults.
func createDefaultLogger() zerolog.Logger {
	var writer io.Writer = os.Stderr

	if terminal(os.Stderr) && os.Getenv("LOG_FORMAT") != "json" {
		writer = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.Kitchen,
			NoColor:    os.Getenv("NO_COLOR") != "",
		}
	}

	level := parseLevel(os.Getenv("LOG_LEVEL"))
	zerolog.SetGlobalLevel(level)

	logger := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()

	if level <= zerolog.DebugLevel {
		logger = logger.With().Caller().Logger()
	}

	return logger
}

// Default returns the default global logger.
func Default() *zerolog.Logger {
	return &defaultLogger
}

// SetDefault sets the default global logger.
func SetDefault(logger zerolog.Logger) {
	defaultLogger = logger
	log.Logger = logger // keep zerolog's own global in step
}

// New creates a new logger writing to w at the global level.
func New(w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return zerolog.New(w).
		Level(zerolog.GlobalLevel()).
		With().
		Timestamp().
		Logger()
}

// NewConsole creates a new console logger for human-readable output.
func NewConsole() zerolog.Logger {
	return New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
		NoColor:    os.Getenv("NO_COLOR") != "",
	})
}

// SetLevel adjusts the global log level.
func SetLevel(level string) {
	lvl := parseLevel(level)
	zerolog.SetGlobalLevel(lvl)
	defaultLogger = defaultLogger.Level(lvl)
}

// Debug starts a debug-level event on the default logger.
func Debug() *zerolog.Event { return defaultLogger.Debug() }

// Info starts an info-level event on the default logger.
func Info() *zerolog.Event { return defaultLogger.Info() }

// Warn starts a warn-level event on the default logger.
func Warn() *zerolog.Event { return defaultLogger.Warn() }

// Error starts an error-level event on the default logger.
func Error() *zerolog.Event { return defaultLogger.Error() }

type ctxKey struct{}

// WithLogger returns a context carrying the given logger.
func WithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the logger stored in ctx, or the default logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(ctxKey{}).(zerolog.Logger); ok {
			return &logger
		}
	}
	return &defaultLogger
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

func terminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
