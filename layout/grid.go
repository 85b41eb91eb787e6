package layout

import "tuicore/geom"

// Placement locates a GridItem within a GridContainer's tracks.
type Placement struct {
	Column     int
	ColumnSpan int
	Row        int
	RowSpan    int
}

// GridItem is one child of a Grid container.
type GridItem struct {
	Placement   Placement
	AlignColumn *AlignCross
	AlignRow    *AlignCross
}

// GridContainer declares a grid's column and row tracks, each sized with
// the same Basis vocabulary Flex items use.
type GridContainer struct {
	Columns  []Basis
	Rows     []Basis
	ColumnGap int
	RowGap    int
}

// Grid lays items out over area's column/row tracks, returning one Rect
// per item (items spanning multiple tracks get the union of those
// tracks minus the inter-track gaps), clamped within area.
func Grid(area geom.Rect, c GridContainer, items []GridItem) []geom.Rect {
	colSizes, colOffsets := resolveTracks(c.Columns, area.X, area.Width, c.ColumnGap)
	rowSizes, rowOffsets := resolveTracks(c.Rows, area.Y, area.Height, c.RowGap)

	out := make([]geom.Rect, len(items))
	for i, it := range items {
		c0, cSpan := clampSpan(it.Placement.Column, it.Placement.ColumnSpan, len(colOffsets))
		r0, rSpan := clampSpan(it.Placement.Row, it.Placement.RowSpan, len(rowOffsets))

		if cSpan == 0 || rSpan == 0 {
			out[i] = geom.Rect{}
			continue
		}

		x := colOffsets[c0]
		width := spanExtent(colOffsets, colSizes, c0, cSpan, c.ColumnGap)
		y := rowOffsets[r0]
		height := spanExtent(rowOffsets, rowSizes, r0, rSpan, c.RowGap)

		out[i] = geom.Rect{X: int(x + 0.5), Y: int(y + 0.5), Width: int(width + 0.5), Height: int(height + 0.5)}.ClampTo(area)
	}
	return out
}

func clampSpan(start, span, numTracks int) (int, int) {
	if numTracks == 0 || start < 0 || start >= numTracks {
		return 0, 0
	}
	if span < 1 {
		span = 1
	}
	if start+span > numTracks {
		span = numTracks - start
	}
	return start, span
}

// spanExtent sums the sizes of [start, start+span) tracks plus the
// inter-track gaps between them (not a leading/trailing gap).
func spanExtent(offsets, sizes []float64, start, span, gap int) float64 {
	total := 0.0
	for i := start; i < start+span; i++ {
		total += sizes[i]
	}
	if span > 1 {
		total += float64(gap) * float64(span-1)
	}
	return total
}

// resolveTracks resolves each track's Basis against avail (minus
// reserved gap space) the same way Flex resolves main-axis item bases:
// fixed (px/percent) first, then fraction tracks split the remainder.
// Returns each track's size and its cumulative offset from origin.
func resolveTracks(dims []Basis, origin, avail, gap int) (sizes, offsets []float64) {
	n := len(dims)
	offsets = make([]float64, n)
	if n == 0 {
		return nil, offsets
	}

	gapTotal := 0
	if n > 1 {
		gapTotal = gap * (n - 1)
	}
	usable := avail - gapTotal
	if usable < 0 {
		usable = 0
	}
	sizes = resolveBasisValues(dims, usable)

	cursor := float64(origin)
	for i := range sizes {
		offsets[i] = cursor
		cursor += sizes[i] + float64(gap)
	}
	return sizes, offsets
}

// resolveBasisValues resolves each Basis against avail: px/percent are
// fixed first, then fraction entries split whatever remains by weight.
func resolveBasisValues(dims []Basis, avail int) []float64 {
	n := len(dims)
	sizes := make([]float64, n)
	usable := float64(avail)

	fixedSum := 0.0
	totalFrac := 0.0
	isFraction := make([]bool, n)
	for i, d := range dims {
		switch d.Kind {
		case BasisPxKind:
			v := d.Value
			if v > usable {
				v = usable
			}
			sizes[i] = v
			fixedSum += v
		case BasisPercentKind:
			v := d.Value / 100 * usable
			sizes[i] = v
			fixedSum += v
		case BasisFractionKind:
			isFraction[i] = true
			totalFrac += d.Value
		case BasisAutoKind:
			sizes[i] = 0
		}
	}

	remaining := usable - fixedSum
	if remaining < 0 {
		remaining = 0
	}
	if totalFrac > 0 {
		for i, d := range dims {
			if isFraction[i] {
				sizes[i] = remaining * d.Value / totalFrac
			}
		}
	}
	return sizes
}
