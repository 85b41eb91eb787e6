package session

import "sync/atomic"

// Metrics are the atomic counters a Session's reader task updates
// lock-free. BytesRead + DroppedBytes equals the total bytes read
// from the PTY over the session's lifetime.
type Metrics struct {
	BytesRead    atomic.Uint64
	BytesWritten atomic.Uint64
	DroppedBytes atomic.Uint64
	Exits        atomic.Uint64
}

// Snapshot is a point-in-time copy of Metrics' counters.
type Snapshot struct {
	BytesRead    uint64
	BytesWritten uint64
	DroppedBytes uint64
	Exits        uint64
}

func (m *Metrics) Snapshot() Snapshot {
	return Snapshot{
		BytesRead:    m.BytesRead.Load(),
		BytesWritten: m.BytesWritten.Load(),
		DroppedBytes: m.DroppedBytes.Load(),
		Exits:        m.Exits.Load(),
	}
}
