//go:build linux

package pty

import (
	"os"

	"golang.org/x/sys/unix"
)

// setEcho toggles the slave TTY's ECHO local mode flag.
func setEcho(f *os.File, echo bool) error {
	fd := int(f.Fd())
	t, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return err
	}
	if echo {
		t.Lflag |= unix.ECHO
	} else {
		t.Lflag &^= unix.ECHO
	}
	return unix.IoctlSetTermios(fd, unix.TCSETS, t)
}
