package session

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"tuicore/asyncrt"
	"tuicore/logx"
	"tuicore/pty"
)

// Manager tracks multiple Sessions, round-robining non-blocking event
// delivery across them. The session map is guarded by a mutex only at
// insert/remove boundaries; per-session operations act on the
// session's own atomics once looked up.
type Manager struct {
	rt              *asyncrt.Runtime
	channelCapacity int

	mu       sync.Mutex
	sessions map[Handle]*Session
	order    []Handle
	rrCursor int
}

// NewManager constructs a Manager whose reader tasks run on rt. Each
// spawned session's event channel is sized to channelCapacity;
// channelCapacity<=0 falls back to the package's conventional default
// (see newSession).
func NewManager(rt *asyncrt.Runtime, channelCapacity int) *Manager {
	return &Manager{rt: rt, channelCapacity: channelCapacity, sessions: make(map[Handle]*Session)}
}

// Spawn starts a new PTY per cfg and its reader task, returning a
// handle for subsequent operations.
func (m *Manager) Spawn(ctx context.Context, cfg pty.Config) (Handle, error) {
	p, err := pty.Spawn(cfg)
	if err != nil {
		return Handle{}, err
	}

	h := Handle(uuid.New())
	s := newSession(h, p, m.channelCapacity)
	m.mu.Lock()
	m.sessions[h] = s
	m.order = append(m.order, h)
	m.mu.Unlock()

	if err := s.start(ctx, m.rt); err != nil {
		m.mu.Lock()
		delete(m.sessions, h)
		m.removeFromOrderLocked(h)
		m.mu.Unlock()
		_ = p.Deinit()
		return Handle{}, err
	}
	logx.With("component", "session", "handle", h).Debug("session spawned")
	return h, nil
}

func (m *Manager) get(h Handle) (*Session, error) {
	m.mu.Lock()
	s, ok := m.sessions[h]
	m.mu.Unlock()
	if !ok {
		return nil, ErrUnknownSession
	}
	return s, nil
}

// Write writes p to the session's PTY, counting bytes written in its
// metrics.
func (m *Manager) Write(h Handle, p []byte) (int, error) {
	s, err := m.get(h)
	if err != nil {
		return 0, err
	}
	if !s.running.Load() {
		return 0, ErrNotRunning
	}
	n, err := s.pty.Write(p)
	s.metrics.BytesWritten.Add(uint64(n))
	return n, err
}

// Resize issues a window-size change on the session's PTY.
func (m *Manager) Resize(h Handle, cols, rows uint16) error {
	s, err := m.get(h)
	if err != nil {
		return err
	}
	return s.pty.Resize(cols, rows)
}

// Stop halts the session's reader task and deinits its PTY, without
// removing it from the manager.
func (m *Manager) Stop(h Handle) error {
	s, err := m.get(h)
	if err != nil {
		return err
	}
	return s.stop()
}

// Release stops the session (if still running) and removes it from
// the manager.
func (m *Manager) Release(h Handle) error {
	s, err := m.get(h)
	if err != nil {
		return err
	}
	_ = s.stop()
	deinitErr := s.pty.Deinit()

	m.mu.Lock()
	delete(m.sessions, h)
	m.removeFromOrderLocked(h)
	m.mu.Unlock()

	return deinitErr
}

func (m *Manager) removeFromOrderLocked(h Handle) {
	for i, id := range m.order {
		if id == h {
			m.order = append(m.order[:i], m.order[i+1:]...)
			return
		}
	}
}

// TryNextEvent round-robins over sessions for the next available
// event, non-blocking. Callers that receive a Data event must call
// RecycleEvent once done with its bytes.
func (m *Manager) TryNextEvent() (Handle, Event, bool) {
	m.mu.Lock()
	order := append([]Handle(nil), m.order...)
	start := m.rrCursor
	m.mu.Unlock()
	if len(order) == 0 {
		return Handle{}, Event{}, false
	}

	for i := 0; i < len(order); i++ {
		idx := (start + i) % len(order)
		h := order[idx]
		s, err := m.get(h)
		if err != nil {
			continue
		}
		if ev, ok := s.channel.TryRecv(); ok {
			m.mu.Lock()
			m.rrCursor = (idx + 1) % len(order)
			m.mu.Unlock()
			return h, ev, true
		}
	}
	return Handle{}, Event{}, false
}

// RecycleEvent returns a Data event's owned byte slice to the
// allocator. It is a no-op for Exit events.
func (m *Manager) RecycleEvent(ev Event) {
	if ev.Kind == EventData && ev.Bytes != nil {
		putBuf(ev.Bytes)
	}
}

// WaitForExit blocks until the session's child process exits.
func (m *Manager) WaitForExit(h Handle) (pty.ExitStatus, error) {
	s, err := m.get(h)
	if err != nil {
		return pty.ExitStatus{}, err
	}
	return s.pty.Wait()
}

// Metrics returns a snapshot of the session's counters.
func (m *Manager) Metrics(h Handle) (Snapshot, error) {
	s, err := m.get(h)
	if err != nil {
		return Snapshot{}, err
	}
	return s.metrics.Snapshot(), nil
}
