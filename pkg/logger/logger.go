// Package logger wraps a process-wide zerolog logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Options configures the global logger.
type Options struct {
	Level  string // debug, info, warn, error
	Format string // console, json
	File   string // optional log file, appended to

	// Output overrides stderr. Tests use it to capture records.
	Output io.Writer
}

var (
	mu      sync.RWMutex
	global  = newDefault(os.Stderr)
	logFile *os.File
)

// newDefault is the logger used before Init: JSON at info level.
func newDefault(out io.Writer) zerolog.Logger {
	return zerolog.New(out).Level(zerolog.InfoLevel).With().Timestamp().Logger()
}

// ParseLevel maps a level name to a zerolog level. Unknown names map to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// Init replaces the global logger. A previously opened log file is closed.
func Init(opts Options) error {
	mu.Lock()
	defer mu.Unlock()

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	if strings.EqualFold(opts.Format, "console") {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
		if err != nil {
			return fmt.Errorf("open log file %s: %w", opts.File, err)
		}
		logFile = f
		out = io.MultiWriter(out, f)
	}

	global = zerolog.New(out).Level(ParseLevel(opts.Level)).With().Timestamp().Logger()
	return nil
}

// Get returns a copy of the global logger.
func Get() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// With returns a child of the global logger carrying the given string fields.
func With(fields map[string]string) zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()

	ctx := global.With()
	for k, v := range fields {
		ctx = ctx.Str(k, v)
	}
	return ctx.Logger()
}

// Close closes the log file if one is open.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

func Debug() *zerolog.Event {
	l := Get()
	return l.Debug()
}

func Info() *zerolog.Event {
	l := Get()
	return l.Info()
}

func Warn() *zerolog.Event {
	l := Get()
	return l.Warn()
}

func Error() *zerolog.Event {
	l := Get()
	return l.Error()
}
