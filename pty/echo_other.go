//go:build !linux

package pty

import "os"

// setEcho is a no-op outside Linux: darwin/bsd use a different ioctl
// request number and Windows ConPTY does not expose termios at all.
func setEcho(f *os.File, echo bool) error { return nil }
