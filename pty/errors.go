package pty

import "errors"

// Validation errors.
var (
	ErrEmptyCommand            = errors.New("pty: argv must not be empty")
	ErrInvalidEnvironmentEntry = errors.New("pty: env entry missing '='")
	ErrUnsupportedPlatform     = errors.New("pty: env/clear_env is unsupported on this platform")
)

// Lifecycle errors, matched with errors.Is. Where an underlying OS/exec
// failure exists, its text is appended with %v, so that failure itself
// is not reachable through errors.Unwrap.
var (
	ErrSpawnFailed         = errors.New("pty: spawn failed")
	ErrOpenPtyFailed       = errors.New("pty: open pty failed")
	ErrForkFailed          = errors.New("pty: fork failed")
	ErrExecFailed          = errors.New("pty: exec failed")
	ErrSetWindowSizeFailed = errors.New("pty: set window size failed")
	ErrResizeFailed        = errors.New("pty: resize failed")
	ErrReadFailed          = errors.New("pty: read failed")
	ErrWriteFailed         = errors.New("pty: write failed")
	ErrWaitPidError        = errors.New("pty: waitpid failed")
)
