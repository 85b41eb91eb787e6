// Package logx is the single structured-logging entry point every
// other package logs through, so log level and destination are
// configured once per process.
package logx

import (
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	mu      sync.Mutex
	current = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           log.WarnLevel,
	})
)

// Logger is the shared *log.Logger type, re-exported so callers don't
// need their own import of charmbracelet/log.
type Logger = log.Logger

// Configure replaces the process-wide logger, e.g. after reading
// config.Config.LogLevel.
func Configure(l *Logger) {
	mu.Lock()
	current = l
	mu.Unlock()
}

// SetLevel adjusts the shared logger's verbosity.
func SetLevel(level log.Level) {
	mu.Lock()
	current.SetLevel(level)
	mu.Unlock()
}

// Get returns the shared logger.
func Get() *Logger {
	mu.Lock()
	defer mu.Unlock()
	return current
}

// With returns a child logger with the given key/value pairs attached,
// scoping subsequent log lines to one component (e.g. "component",
// "renderer").
func With(keyvals ...interface{}) *Logger {
	return Get().With(keyvals...)
}
