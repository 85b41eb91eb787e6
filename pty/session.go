// Package pty implements the platform-opaque PTY session lifecycle:
// spawn a child process attached to a pseudo-terminal, then
// read/write/resize it until it exits.
package pty

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"syscall"

	creackpty "github.com/creack/pty"

	"tuicore/logx"
)

// Session owns a PTY master descriptor and its child process. The
// lifecycle is spawn -> (Read/Write/Resize)* -> (Wait | PollExit) ->
// Deinit; Deinit is idempotent.
type Session struct {
	mu       sync.Mutex
	master   *os.File
	cmd      *exec.Cmd
	deinited bool

	waitDone chan struct{}
	status   ExitStatus
	waitErr  error
}

// Spawn starts cfg.Argv attached to a new PTY sized cfg.Cols x
// cfg.Rows, per Config's validation rules.
func Spawn(cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cmd := exec.Command(cfg.Argv[0], cfg.Argv[1:]...)
	cmd.Dir = cfg.Cwd
	switch {
	case cfg.ClearEnv:
		cmd.Env = append([]string(nil), cfg.Env...)
	case len(cfg.Env) > 0:
		cmd.Env = append(os.Environ(), cfg.Env...)
	}

	master, err := creackpty.StartWithSize(cmd, &creackpty.Winsize{Rows: cfg.Rows, Cols: cfg.Cols})
	if err != nil {
		logx.With("component", "pty").Error("spawn failed", "argv", cfg.Argv, "err", err)
		return nil, fmt.Errorf("%w: %v", ErrSpawnFailed, err)
	}
	if err := setEcho(master, cfg.Echo); err != nil {
		logx.With("component", "pty").Warn("setEcho failed", "err", err)
	}

	s := &Session{master: master, cmd: cmd, waitDone: make(chan struct{})}
	go s.reap()
	return s, nil
}

func (s *Session) reap() {
	err := s.cmd.Wait()
	status, waitErr := exitStatusFromError(err)
	s.mu.Lock()
	s.status, s.waitErr = status, waitErr
	s.mu.Unlock()
	close(s.waitDone)
}

func exitStatusFromError(err error) (ExitStatus, error) {
	if err == nil {
		return ExitStatus{Kind: Exited, Code: 0}, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok {
			if ws.Signaled() {
				return ExitStatus{Kind: Signaled, Signal: int(ws.Signal())}, nil
			}
			return ExitStatus{Kind: Exited, Code: ws.ExitStatus() & 0xFF}, nil
		}
		return ExitStatus{Kind: Exited, Code: exitErr.ExitCode()}, nil
	}
	return ExitStatus{}, fmt.Errorf("%w: %v", ErrWaitPidError, err)
}

// Read reads from the PTY master. A nil master (after Deinit) reads
// as io.EOF.
func (s *Session) Read(p []byte) (int, error) {
	s.mu.Lock()
	m := s.master
	s.mu.Unlock()
	if m == nil {
		return 0, io.EOF
	}
	n, err := m.Read(p)
	if err != nil && !errors.Is(err, io.EOF) {
		return n, fmt.Errorf("%w: %v", ErrReadFailed, err)
	}
	return n, err
}

// Write writes p to the PTY master in full, retrying on EINTR.
func (s *Session) Write(p []byte) (int, error) {
	s.mu.Lock()
	m := s.master
	s.mu.Unlock()
	if m == nil {
		return 0, io.EOF
	}

	total := 0
	for total < len(p) {
		n, err := m.Write(p[total:])
		total += n
		if err != nil {
			if errors.Is(err, syscall.EINTR) {
				continue
			}
			return total, fmt.Errorf("%w: %v", ErrWriteFailed, err)
		}
		if n == 0 {
			break
		}
	}
	return total, nil
}

// Resize issues a window-size change to the PTY.
func (s *Session) Resize(cols, rows uint16) error {
	s.mu.Lock()
	m := s.master
	s.mu.Unlock()
	if m == nil {
		return ErrResizeFailed
	}
	if err := creackpty.Setsize(m, &creackpty.Winsize{Rows: rows, Cols: cols}); err != nil {
		return fmt.Errorf("%w: %v", ErrResizeFailed, err)
	}
	return nil
}

// PollExit reports the child's status without blocking.
func (s *Session) PollExit() (ExitStatus, error) {
	select {
	case <-s.waitDone:
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.waitErr != nil {
			return ExitStatus{}, s.waitErr
		}
		return s.status, nil
	default:
		return ExitStatus{Kind: StillRunning}, nil
	}
}

// Wait blocks until the child exits and reports its status.
func (s *Session) Wait() (ExitStatus, error) {
	<-s.waitDone
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.waitErr != nil {
		return ExitStatus{}, s.waitErr
	}
	return s.status, nil
}

// Deinit closes the master descriptor and reaps the child. Calling it
// more than once is a no-op.
func (s *Session) Deinit() error {
	s.mu.Lock()
	if s.deinited {
		s.mu.Unlock()
		return nil
	}
	s.deinited = true
	master := s.master
	s.master = nil
	cmd := s.cmd
	s.mu.Unlock()

	var closeErr error
	if master != nil {
		closeErr = master.Close()
		if closeErr != nil {
			logx.With("component", "pty").Warn("master close failed", "err", closeErr)
		}
	}
	if cmd != nil && cmd.Process != nil {
		_ = cmd.Process.Kill()
	}
	<-s.waitDone
	return closeErr
}
