// Package term scopes terminal-mode acquisition: Acquire turns on raw
// mode plus whichever of alt-screen, hidden cursor, bracketed paste,
// and mouse reporting its Options select, and Release turns them back
// off, including on panic (see Recover).
package term

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"tuicore/render"
)

// ErrNotATTY is returned by Acquire when f is not a real terminal
// device, e.g. a pipe or a redirected file. Raw mode and alt-screen
// only make sense against a real TTY.
var ErrNotATTY = errors.New("term: not a tty")

// Options selects which terminal modes Acquire turns on. Raw mode
// itself is unconditional; everything else is opt-in.
type Options struct {
	AltScreen      bool
	HideCursor     bool
	BracketedPaste bool
	MouseBasic     bool
	MouseMotion    bool
	MouseSGR       bool
}

// Guard holds the terminal's pre-acquisition state. Release restores
// exactly what Acquire changed and is safe to call more than once.
type Guard struct {
	fd       int
	out      io.Writer
	oldState *term.State
	opts     Options

	mu       sync.Mutex
	released bool
}

// Acquire puts f into raw mode and writes the escape sequences
// enabling opts to out. The caller must defer Guard.Release.
func Acquire(f *os.File, out io.Writer, opts Options) (*Guard, error) {
	fd := int(f.Fd())
	if !isatty.IsTerminal(uintptr(fd)) && !isatty.IsCygwinTerminal(uintptr(fd)) {
		return nil, ErrNotATTY
	}
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("term: enable raw mode: %w", err)
	}

	g := &Guard{fd: fd, out: out, oldState: oldState, opts: opts}
	g.writeEnable()
	registerGuard(g)
	return g, nil
}

func (g *Guard) writeEnable() {
	if g.opts.AltScreen {
		io.WriteString(g.out, render.SeqAltScreenOn)
	}
	if g.opts.HideCursor {
		io.WriteString(g.out, render.SeqCursorHide)
	}
	if g.opts.BracketedPaste {
		io.WriteString(g.out, render.SeqBracketPasteOn)
	}
	if g.opts.MouseBasic {
		io.WriteString(g.out, render.SeqMouseBasicOn)
	}
	if g.opts.MouseMotion {
		io.WriteString(g.out, render.SeqMouseMotionOn)
	}
	if g.opts.MouseSGR {
		io.WriteString(g.out, render.SeqMouseSGROn)
	}
}

// writeDisable unwinds writeEnable in reverse order.
func (g *Guard) writeDisable() {
	if g.opts.MouseSGR {
		io.WriteString(g.out, render.SeqMouseSGROff)
	}
	if g.opts.MouseMotion {
		io.WriteString(g.out, render.SeqMouseMotionOff)
	}
	if g.opts.MouseBasic {
		io.WriteString(g.out, render.SeqMouseBasicOff)
	}
	if g.opts.BracketedPaste {
		io.WriteString(g.out, render.SeqBracketPasteOff)
	}
	if g.opts.HideCursor {
		io.WriteString(g.out, render.SeqCursorShow)
	}
	if g.opts.AltScreen {
		io.WriteString(g.out, render.SeqAltScreenOff)
	}
}

// Release disables every mode Acquire turned on and restores the
// terminal's original state. Calling it more than once is a no-op.
func (g *Guard) Release() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.released {
		return nil
	}
	g.released = true
	unregisterGuard(g)

	g.writeDisable()
	if g.oldState == nil {
		return nil
	}
	return term.Restore(g.fd, g.oldState)
}
