package session

import (
	"sync"

	"tuicore/pty"
)

// EventKind discriminates Event's tagged union.
type EventKind int

const (
	EventData EventKind = iota
	EventExit
)

// Event is one item delivered over a Session's channel. A Data event
// owns Bytes and the caller must pass it to Manager.RecycleEvent once
// done; Exit is always the final event of a session and carries its
// terminal status.
type Event struct {
	Kind   EventKind
	Bytes  []byte
	Status pty.ExitStatus
}

const readChunkSize = 4096

var bufPool = sync.Pool{
	New: func() any {
		b := make([]byte, readChunkSize)
		return &b
	},
}

func getBuf() []byte {
	p := bufPool.Get().(*[]byte)
	return (*p)[:readChunkSize]
}

func putBuf(b []byte) {
	b = b[:cap(b)]
	bufPool.Put(&b)
}
