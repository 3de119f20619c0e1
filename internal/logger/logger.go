// Package logger wraps zerolog with the defaults kopen uses for diagnostics.
// User-facing output goes through the printer package; the logger only
// carries debug and warning detail to stderr.
package logger

import (
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Options configures the logger.
type Options struct {
	Level   string
	Writer  io.Writer
	NoColor bool
}

// FromEnv builds Options from KOPEN_LOG_LEVEL, defaulting to "warn".
func FromEnv() Options {
	level := strings.ToLower(strings.TrimSpace(os.Getenv("KOPEN_LOG_LEVEL")))
	if level == "" {
		level = "warn"
	}
	return Options{Level: level}
}

// Logger is the project-wide logging type.
type Logger = zerolog.Logger

var root atomic.Pointer[zerolog.Logger]

// Get returns the process-wide root logger, initializing it from the
// environment on first use.
func Get() *Logger {
	if l := root.Load(); l != nil {
		return l
	}
	Init(FromEnv())
	return root.Load()
}

// Init builds the root logger. Calling it again replaces the previous one,
// which lets the CLI raise the level once flags are parsed.
func Init(opt Options) {
	var w io.Writer = os.Stderr
	if opt.Writer != nil {
		w = opt.Writer
	}
	w = zerolog.ConsoleWriter{Out: w, NoColor: opt.NoColor, TimeFormat: time.TimeOnly}

	log := zerolog.New(w).Level(parseLevel(opt.Level)).With().Timestamp().Logger()
	root.Store(&log)
}

// Named returns a child logger with a component field.
func Named(component string) *Logger {
	if component == "" {
		return Get()
	}
	l := Get().With().Str("component", component).Logger()
	return &l
}

// parseLevel supports string-only levels; unknown values fall back to warn.
func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off", "none":
		return zerolog.Disabled
	default:
		return zerolog.WarnLevel
	}
}
