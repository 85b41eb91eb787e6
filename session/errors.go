package session

import "errors"

var (
	ErrUnknownSession = errors.New("session: unknown session handle")
	ErrAlreadyRunning = errors.New("session: already running")
	ErrNotRunning     = errors.New("session: not running")
)
