// Package logging provides structured logging configuration using zerolog.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogLevel represents the logging level.
type LogLevel string

const (
	// LevelDebug logs every registry request and cursor page fetch.
	LevelDebug LogLevel = "debug"

	// LevelInfo logs info messages and above.
	LevelInfo LogLevel = "info"

	// LevelWarn logs registry errors and above.
	LevelWarn LogLevel = "warn"

	// LevelError logs error messages only.
	LevelError LogLevel = "error"

	// LevelDisabled turns logging off.
	LevelDisabled LogLevel = "disabled"
)

// zerologLevels maps each LogLevel to its zerolog level.
var zerologLevels = map[LogLevel]zerolog.Level{
	LevelDebug:    zerolog.DebugLevel,
	LevelInfo:     zerolog.InfoLevel,
	LevelWarn:     zerolog.WarnLevel,
	LevelError:    zerolog.ErrorLevel,
	LevelDisabled: zerolog.Disabled,
}

// aliases are accepted by ParseLevel in addition to the level names.
var aliases = map[string]LogLevel{
	"":        LevelInfo,
	"warning": LevelWarn,
	"off":     LevelDisabled,
	"none":    LevelDisabled,
}

// Config holds logger configuration.
type Config struct {
	// Level is the minimum log level to output.
	Level LogLevel

	// Pretty enables human-readable console output (default: false for JSON).
	Pretty bool

	// Output is the writer to output logs to. Nil means os.Stderr.
	Output io.Writer
}

// DefaultConfig returns a default logger configuration.
func DefaultConfig() Config {
	return Config{
		Level:  LevelInfo,
		Output: os.Stderr,
	}
}

// Setup configures the global zerolog logger and returns it. Loggers
// created with NewLogger afterwards inherit its output.
func Setup(cfg Config) zerolog.Logger {
	zerolog.SetGlobalLevel(parseLevel(cfg.Level))

	var out io.Writer = os.Stderr
	if cfg.Output != nil {
		out = cfg.Output
	}
	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: out}
	}

	log.Logger = zerolog.New(out).With().Timestamp().Logger()
	return log.Logger
}

// ParseLevel validates a level name as given on a command line or in a
// config file. Matching ignores case and surrounding space.
func ParseLevel(s string) (LogLevel, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if level, ok := aliases[name]; ok {
		return level, nil
	}
	if _, ok := zerologLevels[LogLevel(name)]; ok {
		return LogLevel(name), nil
	}
	return "", fmt.Errorf("unknown log level %q", s)
}

// parseLevel converts LogLevel to zerolog.Level. Unknown levels fall back to info.
func parseLevel(level LogLevel) zerolog.Level {
	if l, ok := zerologLevels[LogLevel(strings.ToLower(string(level)))]; ok {
		return l
	}
	return zerolog.InfoLevel
}

// NewLogger returns a child of the global logger tagged with component.
func NewLogger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// Log Level Guidelines:
//
// Debug: Detailed information for debugging
//   - Every registry request (method, url, status, duration)
//   - Lookup cache hits
//   - Cursor page fetches
//
// Info: Normal operation events
//   - Prefetch start and completion
//   - CLI startup, metrics listener
//
// Warn: Warning conditions that don't prevent operation
//   - Registry REST errors (non-2xx other than 404/410, transport failures)
//   - Prefetch stopped by an error
//
// Error: Error conditions requiring attention
//   - Metrics server failures in the CLI
//
// Context Fields:
//   - component: client, pagination, cli
//   - endpoint: route template, e.g. /enheter/{id}
//   - url: full request URL
//   - status: HTTP status code
//   - duration: request duration
//   - request_id: X-Request-ID sent with the request
//   - error_class: client, server, network
