package term

import (
	"bytes"
	"strings"
	"testing"

	"tuicore/render"
)

func newTestGuard(buf *bytes.Buffer, opts Options) *Guard {
	return &Guard{fd: -1, out: buf, opts: opts}
}

func TestWriteEnableEmitsRequestedSequences(t *testing.T) {
	var buf bytes.Buffer
	g := newTestGuard(&buf, Options{AltScreen: true, HideCursor: true, MouseSGR: true})
	g.writeEnable()

	out := buf.String()
	for _, want := range []string{render.SeqAltScreenOn, render.SeqCursorHide, render.SeqMouseSGROn} {
		if !strings.Contains(out, want) {
			t.Fatalf("writeEnable() output %q missing %q", out, want)
		}
	}
	if strings.Contains(out, render.SeqMouseBasicOn) {
		t.Fatalf("writeEnable() output %q unexpectedly enabled mouse basic mode", out)
	}
}

func TestWriteDisableUnwindsInReverse(t *testing.T) {
	var buf bytes.Buffer
	g := newTestGuard(&buf, Options{AltScreen: true, HideCursor: true})
	g.writeDisable()

	out := buf.String()
	cursorIdx := strings.Index(out, render.SeqCursorShow)
	altIdx := strings.Index(out, render.SeqAltScreenOff)
	if cursorIdx == -1 || altIdx == -1 {
		t.Fatalf("writeDisable() output %q missing expected sequences", out)
	}
	if cursorIdx > altIdx {
		t.Fatalf("writeDisable() restored alt-screen before cursor visibility: %q", out)
	}
}

func TestRestoreAllReleasesRegisteredGuards(t *testing.T) {
	var buf bytes.Buffer
	g := newTestGuard(&buf, Options{HideCursor: true})
	registerGuard(g)

	RestoreAll()

	if !g.released {
		t.Fatal("RestoreAll() did not mark the guard released")
	}
	registryMu.Lock()
	_, stillRegistered := registry[g]
	registryMu.Unlock()
	if stillRegistered {
		t.Fatal("RestoreAll() left the guard in the registry")
	}
}

func TestReleaseIsIdempotent(t *testing.T) {
	var buf bytes.Buffer
	g := newTestGuard(&buf, Options{HideCursor: true})
	registerGuard(g)

	_ = g.Release()
	lenAfterFirst := buf.Len()
	_ = g.Release()

	if buf.Len() != lenAfterFirst {
		t.Fatal("second Release() wrote additional escape sequences")
	}
}
