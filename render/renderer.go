// Package render owns the rendering pipeline: a single cell buffer,
// dirty-region merging, and deterministic CSI/SGR emission to a write
// target, plus running statistics. There is no separate front buffer
// and no buffer swap; what a flush emits comes from the buffer's dirty
// regions, not from diffing two buffers.
package render

import (
	"fmt"
	"io"
	"time"

	"tuicore/cellbuffer"
	"tuicore/geom"
	"tuicore/logx"
)

// Backend selects which rendering backend a Renderer targets. Only Cpu is
// implemented; Gpu is reserved for a future backend. GPU backends are
// stubs only in this core.
type Backend int

const (
	BackendCpu Backend = iota
	BackendAuto
	BackendGpu
)

// Options configures a Renderer at construction.
type Options struct {
	MergeDirtyRegions  bool
	CursorVisible      bool
	BackendPreference  Backend
}

// DefaultOptions returns the renderer's conventional defaults: dirty
// region merging on, cursor visible, CPU backend.
func DefaultOptions() Options {
	return Options{MergeDirtyRegions: true, CursorVisible: true, BackendPreference: BackendCpu}
}

// Renderer orchestrates per-frame flushes of a CellBuffer to a target.
type Renderer struct {
	buf    *cellbuffer.Buffer
	target io.Writer
	opts   Options
	stats  Stats

	firstFlushDone bool
	pendingFullRedraw bool

	out []byte // reused scratch buffer for escape-sequence assembly
}

// New constructs a Renderer over a freshly allocated CellBuffer of the
// given size. BackendPreference == BackendGpu fails immediately since no
// GPU backend exists in this core.
func New(size geom.Size, target io.Writer, opts Options) (*Renderer, error) {
	if size.W <= 0 || size.H <= 0 {
		return nil, ErrInvalidSize
	}
	if opts.BackendPreference == BackendGpu {
		return nil, ErrGPUBackendUnavailable
	}
	return &Renderer{
		buf:    cellbuffer.New(size.W, size.H),
		target: target,
		opts:   opts,
	}, nil
}

// BeginFrame returns the cell buffer widgets draw into for this frame
// (the same buffer every frame).
func (r *Renderer) BeginFrame() *cellbuffer.Buffer { return r.buf }

// RequestFullRedraw forces the next Flush to treat the whole surface as
// dirty, regardless of what's actually been written since.
func (r *Renderer) RequestFullRedraw() { r.pendingFullRedraw = true }

// Stats returns the renderer's running statistics.
func (r *Renderer) Stats() Stats { return r.stats }

// Resize reallocates the underlying buffer, marks the full surface dirty,
// and increments the resize counter.
func (r *Renderer) Resize(size geom.Size) error {
	if size.W <= 0 || size.H <= 0 {
		return ErrInvalidSize
	}
	if err := r.buf.Resize(size.W, size.H); err != nil {
		return err
	}
	r.stats.Resizes++
	r.pendingFullRedraw = true
	return nil
}

// Flush merges the frame's dirty regions (if enabled), emits escape
// sequences for each to the target, and clears the dirty list. On the
// very first flush an empty dirty list is treated as a full-surface
// redraw; subsequent empty flushes are no-ops. I/O errors from the
// target propagate to the caller; the dirty list has already been
// consumed by the time an error can occur, so callers should call
// RequestFullRedraw before the next Flush to recover.
func (r *Renderer) Flush() error {
	start := time.Now()

	dirty := r.buf.DirtyRegions()
	if r.pendingFullRedraw {
		dirty = []geom.Rect{{Width: r.buf.Size().W, Height: r.buf.Size().H}}
		r.pendingFullRedraw = false
	} else if len(dirty) == 0 {
		if !r.firstFlushDone {
			dirty = []geom.Rect{{Width: r.buf.Size().W, Height: r.buf.Size().H}}
		} else {
			return nil
		}
	}
	r.firstFlushDone = true

	regions := dirty
	if r.opts.MergeDirtyRegions {
		regions = mergeRegions(dirty)
	}

	r.out = r.out[:0]
	styleActive := false
	var lastStyle geom.Style
	cellsCovered := 0

	for _, rect := range regions {
		rect = rect.ClampTo(geom.Rect{Width: r.buf.Size().W, Height: r.buf.Size().H})
		if rect.Empty() {
			continue
		}
		cellsCovered += rect.Area()
		// One CUP per merged region, as invariant 6 requires: the
		// cursor is addressed once at the region's top-left corner, and
		// every subsequent row in the same region is reached by a bare
		// line advance plus a relative cursor-forward, neither of which
		// is a cursor-move sequence in that invariant's sense.
		r.out = appendCursorMove(r.out, rect.Y+1, rect.X+1)
		for y := rect.Y; y < rect.Bottom(); y++ {
			if y > rect.Y {
				r.out = append(r.out, '\r', '\n')
				r.out = appendCursorForward(r.out, rect.X)
			}
			for x := rect.X; x < rect.Right(); x++ {
				cell := r.buf.At(x, y)
				if cell.IsContinuation() {
					continue
				}
				if !styleActive || cell.Style != lastStyle {
					r.out = appendSGR(r.out, cell.Style)
					lastStyle = cell.Style
					styleActive = true
				}
				g := cell.Grapheme(r.buf)
				if g == "" {
					g = " "
				}
				r.out = append(r.out, g...)
			}
		}
	}
	if styleActive {
		r.out = appendSGRReset(r.out)
	}

	cur := r.buf.CursorState()
	r.out = appendCursorMove(r.out, cur.Y+1, cur.X+1)
	if cur.Visible && r.opts.CursorVisible {
		r.out = append(r.out, SeqCursorShow...)
	} else {
		r.out = append(r.out, SeqCursorHide...)
	}

	if _, err := r.target.Write(r.out); err != nil {
		r.buf.ClearDirty()
		logx.With("component", "renderer").Error("flush write failed", "err", err)
		return fmt.Errorf("render: flush: %w", err)
	}
	r.buf.ClearDirty()

	elapsed := time.Since(start)
	r.stats.recordFrame(elapsed.Nanoseconds(), len(regions), cellsCovered)
	logx.With("component", "renderer").Debug("flush", "regions", len(regions), "cells", cellsCovered, "elapsed", elapsed)
	return nil
}

// mergeRegions merges overlapping or edge-adjacent rectangles. O(n^2) in
// the number of dirty rects, which is fine since a frame typically dirties
// fewer than a few dozen regions.
func mergeRegions(dirty []geom.Rect) []geom.Rect {
	var acc []geom.Rect
	for _, r := range dirty {
		cur := r
		for {
			idx := -1
			for i, m := range acc {
				if cur.Overlaps(m) || cur.Touches(m) {
					idx = i
					break
				}
			}
			if idx < 0 {
				break
			}
			cur = cur.Union(acc[idx])
			acc = append(acc[:idx], acc[idx+1:]...)
		}
		acc = append(acc, cur)
	}
	return acc
}
