package cellbuffer

import (
	"errors"
	"fmt"

	"tuicore/geom"
	"tuicore/grapheme"
)

// Errors returned by Buffer operations.
var (
	ErrOutOfBounds = errors.New("cellbuffer: out of bounds")
	ErrInvalidSize = errors.New("cellbuffer: invalid size")
)

// Cursor is the buffer's logical cursor position and visibility.
type Cursor struct {
	X, Y    int
	Visible bool
}

// Buffer is a row-major grid of Cells: the leaf rendering surface that
// widgets write into. It tracks its own dirty regions so a renderer can
// flush only what changed.
type Buffer struct {
	size  geom.Size
	cells []Cell
	cache []string
	intern map[string]graphemeRef

	cursor Cursor
	dirty  []geom.Rect
}

// New allocates a buffer of the given size, every cell initialized to a
// blank, default-styled, single-width cell.
func New(w, h int) *Buffer {
	b := &Buffer{
		size:   geom.Size{W: w, H: h},
		cells:  make([]Cell, w*h),
		intern: make(map[string]graphemeRef),
	}
	for i := range b.cells {
		b.cells[i] = defaultCell()
	}
	b.cursor.Visible = true
	return b
}

// Size returns the buffer's current dimensions.
func (b *Buffer) Size() geom.Size { return b.size }

func (b *Buffer) index(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= b.size.W || y >= b.size.H {
		return 0, false
	}
	return y*b.size.W + x, true
}

// At returns the cell at (x, y). Out-of-bounds coordinates return the
// zero Cell.
func (b *Buffer) At(x, y int) Cell {
	i, ok := b.index(x, y)
	if !ok {
		return Cell{}
	}
	return b.cells[i]
}

func (b *Buffer) internRef(s string) graphemeRef {
	if len(s) == 1 && s[0] < 0x80 {
		return asciiRef(s[0])
	}
	if ref, ok := b.intern[s]; ok {
		return ref
	}
	ref := graphemeRef(len(b.cache))
	b.cache = append(b.cache, s)
	b.intern[s] = ref
	return ref
}

// MarkDirty unions rect into the dirty list. Callers that batch several
// writes can call this once instead of relying on per-write tracking.
func (b *Buffer) MarkDirty(rect geom.Rect) {
	if rect.Empty() {
		return
	}
	rect = rect.ClampTo(geom.Rect{Width: b.size.W, Height: b.size.H})
	if rect.Empty() {
		return
	}
	b.dirty = append(b.dirty, rect)
}

// DirtyRegions returns the regions touched since the last ClearDirty.
func (b *Buffer) DirtyRegions() []geom.Rect { return b.dirty }

// ClearDirty empties the dirty list without touching cell contents.
func (b *Buffer) ClearDirty() { b.dirty = b.dirty[:0] }

// WriteText writes s starting at (x, y) in the given style, iterating
// grapheme clusters. Writing stops at the buffer's right edge; a
// double-width cluster that would straddle the edge is replaced with a
// single blank cell rather than truncated mid-cluster. Returns the
// number of cells written (the visual column span consumed).
func (b *Buffer) WriteText(x, y int, s string, style geom.Style) (int, error) {
	if y < 0 || y >= b.size.H {
		return 0, fmt.Errorf("%w: row %d", ErrOutOfBounds, y)
	}
	col := x
	written := 0
	grapheme.Iterate(s, func(c grapheme.Cluster) bool {
		if col >= b.size.W {
			return false
		}
		if c.Width == 2 && col+1 >= b.size.W {
			b.setCell(col, y, Cell{ref: emptyRef, Style: style, Width: 1})
			col++
			written++
			return false
		}
		ref := b.internRef(c.Text)
		w := c.Width
		if w < 1 {
			w = 1
		}
		b.setCell(col, y, Cell{ref: ref, Style: style, Width: w})
		if w == 2 {
			b.setCell(col+1, y, Cell{ref: ref, Style: style, Width: 0})
		}
		col += w
		written += w
		return true
	})
	if written > 0 {
		b.MarkDirty(geom.Rect{X: x, Y: y, Width: written, Height: 1})
	}
	return written, nil
}

// setCell writes directly, bypassing dirty tracking (callers mark dirty
// in bulk after the loop that calls this).
func (b *Buffer) setCell(x, y int, c Cell) {
	if i, ok := b.index(x, y); ok {
		b.cells[i] = c
	}
}

// Fill sets every cell in rect to c and marks rect dirty.
func (b *Buffer) Fill(rect geom.Rect, c Cell) {
	rect = rect.ClampTo(geom.Rect{Width: b.size.W, Height: b.size.H})
	if rect.Empty() {
		return
	}
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			b.setCell(x, y, c)
		}
	}
	b.MarkDirty(rect)
}

// Clear resets every cell in the buffer to the default cell.
func (b *Buffer) Clear() {
	b.ClearRegion(geom.Rect{Width: b.size.W, Height: b.size.H})
}

// ClearRegion resets every cell in rect to the default cell.
func (b *Buffer) ClearRegion(rect geom.Rect) {
	b.Fill(rect, defaultCell())
}

// Resize reallocates the buffer to (w, h), preserving the contents of
// the intersection of the old and new size. The entire new surface is
// marked dirty; cells outside the old intersection are the default
// cell.
func (b *Buffer) Resize(w, h int) error {
	if w < 0 || h < 0 {
		return ErrInvalidSize
	}
	next := make([]Cell, w*h)
	for i := range next {
		next[i] = defaultCell()
	}
	minW, minH := min(b.size.W, w), min(b.size.H, h)
	for y := 0; y < minH; y++ {
		srcOff := y * b.size.W
		dstOff := y * w
		copy(next[dstOff:dstOff+minW], b.cells[srcOff:srcOff+minW])
	}
	b.cells = next
	b.size = geom.Size{W: w, H: h}
	if b.cursor.X >= w {
		b.cursor.X = max(0, w-1)
	}
	if b.cursor.Y >= h {
		b.cursor.Y = max(0, h-1)
	}
	b.dirty = b.dirty[:0]
	b.MarkDirty(geom.Rect{Width: w, Height: h})
	return nil
}

// SetCursor sets the logical cursor; out-of-bounds coordinates are an
// error and leave the cursor untouched.
func (b *Buffer) SetCursor(x, y int, visible bool) error {
	if x < 0 || y < 0 || (b.size.W > 0 && x >= b.size.W) || (b.size.H > 0 && y >= b.size.H) {
		return fmt.Errorf("%w: cursor (%d,%d)", ErrOutOfBounds, x, y)
	}
	b.cursor = Cursor{X: x, Y: y, Visible: visible}
	return nil
}

// CursorState returns the current cursor position/visibility.
func (b *Buffer) CursorState() Cursor { return b.cursor }

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
