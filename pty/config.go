package pty

import (
	"runtime"
	"strings"
)

// Config describes a PTY-backed child process before it is spawned.
type Config struct {
	Argv []string
	Env  []string
	Cwd  string
	Cols uint16
	Rows uint16

	// ClearEnv, if set, starts the child with only Env rather than
	// inheriting the parent's environment plus Env.
	ClearEnv bool

	// Echo controls whether the slave TTY echoes input back to the
	// child's stdin. Honored on Linux; a no-op elsewhere (see
	// setEcho in echo_linux.go / echo_other.go).
	Echo bool
}

// Validate checks Config's invariants, returning the specific
// validation error spec'd for the failing field.
func (c Config) Validate() error {
	if len(c.Argv) == 0 {
		return ErrEmptyCommand
	}
	for _, e := range c.Env {
		if !strings.Contains(e, "=") {
			return ErrInvalidEnvironmentEntry
		}
	}
	if runtime.GOOS == "windows" && (len(c.Env) > 0 || c.ClearEnv) {
		return ErrUnsupportedPlatform
	}
	return nil
}
