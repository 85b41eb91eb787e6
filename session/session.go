// Package session composes the pty and asyncrt packages into a
// multi-session orchestrator: each Session runs a background reader
// task that translates PTY bytes into Data/Exit events delivered over
// a bounded, backpressured channel.
package session

import (
	"context"
	"errors"
	"io"
	"sync/atomic"

	"github.com/google/uuid"

	"tuicore/asyncrt"
	"tuicore/logx"
	"tuicore/pty"
)

// Handle identifies a Session within a Manager.
type Handle uuid.UUID

// Session owns one PTY, its event channel, and its reader task.
type Session struct {
	id      Handle
	pty     *pty.Session
	channel *asyncrt.BoundedChannel[Event]
	metrics *Metrics
	running atomic.Bool
	task    *asyncrt.TaskHandle
}

// defaultChannelCapacity is used when Manager's configured capacity is
// <= 0, i.e. when nothing in config.Config overrode it.
const defaultChannelCapacity = 1024

func newSession(id Handle, p *pty.Session, capacity int) *Session {
	if capacity <= 0 {
		capacity = defaultChannelCapacity
	}
	return &Session{
		id:      id,
		pty:     p,
		channel: asyncrt.NewBoundedChannel[Event](capacity),
		metrics: &Metrics{},
	}
}

func (s *Session) start(ctx context.Context, rt *asyncrt.Runtime) error {
	if !s.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	s.task = rt.Spawn(ctx, s.readerLoop)
	return nil
}

// readerLoop is the reader task body: read, translate, deliver, until
// running is cleared or the PTY reports the child exited.
func (s *Session) readerLoop(ctx context.Context) error {
	buf := make([]byte, readChunkSize)
	for s.running.Load() {
		select {
		case <-ctx.Done():
			s.running.Store(false)
			return nil
		default:
		}

		n, err := s.pty.Read(buf)
		if err != nil && !errors.Is(err, io.EOF) {
			if s.pollAndEmitExit() {
				return nil
			}
			asyncrt.Yield()
			continue
		}
		if n == 0 {
			if s.pollAndEmitExit() {
				return nil
			}
			asyncrt.Yield()
			continue
		}

		owned := getBuf()[:n]
		copy(owned, buf[:n])
		if !s.channel.TrySend(Event{Kind: EventData, Bytes: owned}) {
			s.metrics.DroppedBytes.Add(uint64(n))
			putBuf(owned)
			logx.With("component", "session", "handle", s.id).Warn("event channel full, dropping bytes", "n", n)
			asyncrt.Yield()
			continue
		}
		s.metrics.BytesRead.Add(uint64(n))
	}

	s.pollAndEmitExit()
	return nil
}

// pollAndEmitExit polls the PTY's exit status once; if the child has
// exited it emits the terminal Exit event and clears running.
func (s *Session) pollAndEmitExit() bool {
	status, err := s.pty.PollExit()
	if err != nil {
		return false
	}
	if status.Kind == pty.StillRunning {
		return false
	}
	s.channel.TrySend(Event{Kind: EventExit, Status: status})
	s.metrics.Exits.Add(1)
	s.running.Store(false)
	return true
}

// stop cancels the reader task, deinits the PTY, and drains the
// channel, freeing any pending Data payloads.
func (s *Session) stop() error {
	if !s.running.CompareAndSwap(true, false) {
		return ErrNotRunning
	}
	if s.task != nil {
		s.task.Cancel()
		s.task.Wait()
	}
	_ = s.pty.Deinit()
	s.drain()
	return nil
}

func (s *Session) drain() {
	for {
		ev, ok := s.channel.TryRecv()
		if !ok {
			return
		}
		if ev.Kind == EventData {
			putBuf(ev.Bytes)
		}
	}
}
