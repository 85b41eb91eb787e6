// Package eventloop binds an input parser, a focused widget, a
// LayoutBuilder and a Renderer into one pump: read bytes, parse
// events, dispatch to the focused widget, relayout if requested,
// redraw, flush. It is scaffolding only — no concrete Widget lives
// here.
package eventloop

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"tuicore/geom"
	"tuicore/input"
	"tuicore/layout"
	"tuicore/logx"
	"tuicore/render"
)

// Loop owns one frame pump over a single root Widget.
type Loop struct {
	root     Widget
	focused  Widget
	renderer *render.Renderer
	in       io.Reader
	getSize  func() (geom.Size, error)

	mu          sync.Mutex
	needsLayout bool
	quit        bool
}

// New constructs a Loop. in is the raw input byte stream (typically
// the PTY master or os.Stdin); getSize reports the current terminal
// geometry and is called on every SIGWINCH.
func New(root Widget, renderer *render.Renderer, in io.Reader, getSize func() (geom.Size, error)) *Loop {
	return &Loop{root: root, focused: root, renderer: renderer, in: in, getSize: getSize, needsLayout: true}
}

// Run pumps until ctx is cancelled, a QuitCommand is applied, or the
// input stream closes.
func (l *Loop) Run(ctx context.Context) error {
	raw := make(chan byte, 256)
	events := make(chan input.Event, 64)
	go l.readBytes(raw)
	go input.NewParser().Run(raw, events)

	resize := make(chan os.Signal, 1)
	signal.Notify(resize, syscall.SIGWINCH)
	defer signal.Stop(resize)

	if err := l.layoutAndDraw(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-resize:
			size, err := l.getSize()
			if err != nil {
				logx.With("component", "eventloop").Warn("getSize failed on resize", "err", err)
				continue
			}
			if err := l.renderer.Resize(size); err != nil {
				logx.With("component", "eventloop").Warn("renderer resize failed", "err", err)
				continue
			}
			l.mu.Lock()
			l.needsLayout = true
			l.mu.Unlock()
			if err := l.layoutAndDraw(); err != nil {
				return err
			}

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			l.dispatch(ev)
			if l.quit {
				return nil
			}
			if err := l.layoutAndDraw(); err != nil {
				return err
			}
		}
	}
}

func (l *Loop) readBytes(raw chan<- byte) {
	defer close(raw)
	buf := make([]byte, 4096)
	for {
		n, err := l.in.Read(buf)
		for i := 0; i < n; i++ {
			raw <- buf[i]
		}
		if err != nil {
			if err != io.EOF {
				logx.With("component", "eventloop").Warn("input read failed", "err", err)
			}
			return
		}
	}
}

func (l *Loop) dispatch(ev input.Event) {
	if l.focused == nil {
		return
	}
	area := l.renderer.BeginFrame().Size()
	ctx := &Context{Area: geom.Rect{Width: area.W, Height: area.H}}
	for _, cmd := range l.focused.HandleEvent(ctx, ev) {
		cmd.Apply(l)
	}
}

// layoutAndDraw resolves the root widget's layout (if stale) and
// redraws it, then flushes the frame.
func (l *Loop) layoutAndDraw() error {
	l.mu.Lock()
	needsLayout := l.needsLayout
	l.needsLayout = false
	l.mu.Unlock()

	size := l.renderer.BeginFrame().Size()
	area := geom.Rect{Width: size.W, Height: size.H}

	var builder *layout.LayoutBuilder
	if needsLayout {
		builder = layout.NewBuilder()
		root := builder.CreateNode()
		if err := builder.SetRect(root, area); err != nil {
			return fmt.Errorf("eventloop: layout root: %w", err)
		}
		if _, err := builder.Solve(); err != nil {
			return fmt.Errorf("eventloop: solve: %w", err)
		}
	}

	if l.root != nil {
		ctx := &Context{Area: area, Builder: builder}
		l.root.Draw(ctx)
	}
	return l.renderer.Flush()
}
