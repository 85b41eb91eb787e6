package cellbuffer

import "tuicore/geom"

// graphemeRef is an interned handle into a buffer's grapheme cache.
// Non-negative values index into Buffer.cache; negative values encode an
// ASCII byte directly as -(rune)-1, the fast path that bypasses the cache
// entirely (the overwhelming majority of terminal output is ASCII).
type graphemeRef int32

const emptyRef graphemeRef = -1 // -(0)-1, the space character

func asciiRef(b byte) graphemeRef { return graphemeRef(-(int32(b)) - 1) }

func (r graphemeRef) ascii() (byte, bool) {
	if r >= 0 {
		return 0, false
	}
	return byte(-int32(r) - 1), true
}

// Cell is one terminal character position.
type Cell struct {
	ref   graphemeRef
	Style geom.Style
	Width int // 1 or 2; 0 marks a continuation cell owned by the prior column
}

// IsContinuation reports whether this cell is the silent half of a
// double-width cluster; it must never be written to independently.
func (c Cell) IsContinuation() bool { return c.Width == 0 }

// Grapheme resolves this cell's text against the owning buffer's cache.
func (c Cell) Grapheme(b *Buffer) string {
	if b, ok := c.ref.ascii(); ok {
		if b == 0 {
			return " "
		}
		return string(rune(b))
	}
	if int(c.ref) < 0 || int(c.ref) >= len(b.cache) {
		return ""
	}
	return b.cache[c.ref]
}

func defaultCell() Cell {
	return Cell{ref: emptyRef, Width: 1}
}
