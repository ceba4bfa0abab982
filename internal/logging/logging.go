// Package logging provides the shared, structured logger for sapling.
//
// It wraps [log/slog] with a single initialization point so every component
// shares one handler and level. The level is read once from the
// SAPLING_LOG_LEVEL environment variable (debug, info, warn, error) and
// defaults to INFO.
//
//	log := logging.New("canvas")
//	log.Debug("drop committed", "from", origin, "to", target)
//
// Output goes to stderr by default. Hosts that own the terminal redirect it
// with [SetOutput] while their screen is active.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// LevelEnv names the environment variable that selects the log level.
const LevelEnv = "SAPLING_LOG_LEVEL"

var (
	initLogger sync.Once
	baseLogger *slog.Logger
	output     = &switchWriter{w: os.Stderr}
)

// switchWriter lets the destination change after loggers were handed out.
type switchWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *switchWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

func (s *switchWriter) swap(w io.Writer) io.Writer {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.w
	s.w = w
	return prev
}

// New returns a logger tagged with component=<component>. An empty component
// returns the base logger.
func New(component string) *slog.Logger {
	initLogger.Do(func() {
		baseLogger = newBase(output, os.Getenv(LevelEnv))
	})
	if component == "" {
		return baseLogger
	}
	return baseLogger.With("component", component)
}

// SetOutput redirects every logger to w and returns the previous
// destination. A nil w discards output.
func SetOutput(w io.Writer) io.Writer {
	if w == nil {
		w = io.Discard
	}
	return output.swap(w)
}

func newBase(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLevel(level),
	}))
}

// parseLevel maps a case-insensitive level name to a [slog.Level]; unknown
// names mean INFO.
func parseLevel(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
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
