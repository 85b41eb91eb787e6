package layout

import "tuicore/geom"

// Direction is the main axis a Flex container lays its items along.
type Direction int

const (
	Row Direction = iota
	Column
)

// AlignMain positions items (and any leftover space) along the main axis.
type AlignMain int

const (
	MainStart AlignMain = iota
	MainCenter
	MainEnd
	MainSpaceBetween
	MainSpaceAround
	MainSpaceEvenly
)

// AlignCross positions an item within the container's cross-axis extent.
type AlignCross int

const (
	CrossStart AlignCross = iota
	CrossCenter
	CrossEnd
	CrossStretch
)

// BasisKind discriminates Basis's sum type.
type BasisKind int

const (
	BasisAutoKind BasisKind = iota
	BasisPxKind
	BasisPercentKind
	BasisFractionKind
)

// Basis is an item's declared main-axis size before grow/shrink.
type Basis struct {
	Kind  BasisKind
	Value float64
}

func BasisAuto() Basis              { return Basis{Kind: BasisAutoKind} }
func BasisPx(px float64) Basis      { return Basis{Kind: BasisPxKind, Value: px} }
func BasisPercent(pct float64) Basis {
	if pct > 100 {
		pct = 100
	}
	return Basis{Kind: BasisPercentKind, Value: pct}
}
func BasisFraction(fr float64) Basis { return Basis{Kind: BasisFractionKind, Value: fr} }

// Item is one child of a Flex container.
type Item struct {
	Basis Basis
	Grow  float64
	Shrink float64

	// CrossBasis, if set, gives the item's cross-axis extent; a nil
	// CrossBasis stretches to fill the container's cross extent
	// regardless of AlignSelf (there being no notion of an item's
	// "natural" size in this cell-grid layout model).
	CrossBasis *Basis
	AlignSelf  *AlignCross
}

// Container configures a Flex layout.
type Container struct {
	Direction  Direction
	Gap        int
	AlignMain  AlignMain
	AlignCross AlignCross
}

// mainAxisEpsilon stands in for a zero or negative computed main-axis
// size when handing sizes to LayoutBuilder.Row/Column as weights, which
// reject Weight <= 0. A collapsed item still needs a (tiny) positive
// weight to take part in the proportional split.
const mainAxisEpsilon = 1e-6

// Flex lays items out inside area in three sizing passes (basis,
// grow/shrink, leftover distribution) that compute each item's
// main-axis extent, then hands those extents to the builder's Row or
// Column as weighted children so the actual placement runs through the
// same constraint solver the package's Split helpers use, rather than a
// second hand-rolled cursor walk (Grid places its tracks arithmetically
// and does not use the solver). Returns one Rect per
// item, each clamped within area.
func Flex(area geom.Rect, c Container, items []Item) []geom.Rect {
	n := len(items)
	out := make([]geom.Rect, n)
	if n == 0 {
		return out
	}

	mainExtent, crossExtent := area.Width, area.Height
	if c.Direction == Column {
		mainExtent, crossExtent = area.Height, area.Width
	}

	gapTotal := 0
	if n > 1 {
		gapTotal = c.Gap * (n - 1)
	}
	avail := float64(mainExtent - gapTotal)
	if avail < 0 {
		avail = 0
	}

	sizes := make([]float64, n)
	isFraction := make([]bool, n)
	fixedSum := 0.0
	totalFrac := 0.0
	for i, it := range items {
		switch it.Basis.Kind {
		case BasisAutoKind:
			sizes[i] = 0
		case BasisPxKind:
			v := it.Basis.Value
			if v > avail {
				v = avail
			}
			if v < 0 {
				v = 0
			}
			sizes[i] = v
			fixedSum += v
		case BasisPercentKind:
			v := it.Basis.Value / 100 * avail
			sizes[i] = v
			fixedSum += v
		case BasisFractionKind:
			isFraction[i] = true
			totalFrac += it.Basis.Value
		}
	}

	remaining := avail - fixedSum
	if remaining < 0 {
		remaining = 0
	}

	if remaining > 0 && totalFrac > 0 {
		for i, it := range items {
			if isFraction[i] {
				sizes[i] = remaining * it.Basis.Value / totalFrac
			}
		}
		remaining = 0
	}

	totalGrow := 0.0
	for _, it := range items {
		totalGrow += it.Grow
	}
	leftover := 0.0
	if remaining > 0 {
		if totalGrow > 0 {
			for i, it := range items {
				if it.Grow > 0 {
					sizes[i] += remaining * it.Grow / totalGrow
				}
			}
		} else {
			leftover = remaining
		}
	}

	total := fixedSum
	for i := range sizes {
		if isFraction[i] {
			total += sizes[i]
		}
	}
	overflow := total - avail
	if overflow > 0 {
		totalShrinkWeight := 0.0
		for i, it := range items {
			totalShrinkWeight += it.Shrink * sizes[i]
		}
		if totalShrinkWeight > 0 {
			for i, it := range items {
				shrinkAmount := overflow * (it.Shrink * sizes[i]) / totalShrinkWeight
				sizes[i] -= shrinkAmount
				if sizes[i] < 0 {
					sizes[i] = 0
				}
			}
		}
	}

	leading, gap := distributeLeftover(c.AlignMain, leftover, c.Gap, n)

	mainRects := tileMainAxis(area, c.Direction, sizes)

	cursorOffset := leading
	for i, it := range items {
		crossSize := float64(crossExtent)
		crossOffset := 0.0
		align := c.AlignCross
		if it.AlignSelf != nil {
			align = *it.AlignSelf
		}
		if it.CrossBasis != nil {
			crossSize = resolveCrossBasis(*it.CrossBasis, crossExtent)
			switch align {
			case CrossCenter:
				crossOffset = (float64(crossExtent) - crossSize) / 2
			case CrossEnd:
				crossOffset = float64(crossExtent) - crossSize
			case CrossStretch:
				crossSize = float64(crossExtent)
			}
		}

		r := mainRects[i]
		if c.Direction == Row {
			r.X += int(cursorOffset + 0.5)
			r.Y = area.Y + int(crossOffset+0.5)
			r.Height = int(crossSize + 0.5)
		} else {
			r.Y += int(cursorOffset + 0.5)
			r.X = area.X + int(crossOffset+0.5)
			r.Width = int(crossSize + 0.5)
		}
		out[i] = r.ClampTo(area)
		cursorOffset += gap
	}

	return out
}

// tileMainAxis packs sizes contiguously (no gaps) along area's main axis
// by handing them to a throwaway LayoutBuilder as weighted children of a
// single root node pinned to area's main-axis span: since every weight
// equals the item's own computed extent, the solver's proportional
// split reproduces those extents exactly, modulo the same integer
// rounding Grid and Split already live with. The caller is responsible
// for translating the result by any leading offset and inter-item gap.
func tileMainAxis(area geom.Rect, d Direction, sizes []float64) []geom.Rect {
	total := 0.0
	for _, s := range sizes {
		total += s
	}

	rootRect := geom.Rect{X: area.X, Y: area.Y, Width: int(total + 0.5), Height: area.Height}
	if d == Column {
		rootRect = geom.Rect{X: area.X, Y: area.Y, Width: area.Width, Height: int(total + 0.5)}
	}

	b := NewBuilder()
	root := b.CreateNode()
	children := make([]WeightedChild, len(sizes))
	handles := make([]NodeHandle, len(sizes))
	for i, s := range sizes {
		handles[i] = b.CreateNode()
		weight := s
		if weight <= 0 {
			weight = mainAxisEpsilon
		}
		children[i] = WeightedChild{Handle: handles[i], Weight: weight}
	}

	rects := make([]geom.Rect, len(sizes))
	if err := b.SetRect(root, rootRect); err != nil {
		return rects
	}
	var arrangeErr error
	if d == Row {
		arrangeErr = b.Row(root, children)
	} else {
		arrangeErr = b.Column(root, children)
	}
	if arrangeErr != nil {
		return rects
	}
	resolved, err := b.Solve()
	if err != nil {
		return rects
	}
	for i, h := range handles {
		rects[i] = resolved.Rect(h)
	}
	return rects
}

func resolveCrossBasis(b Basis, crossExtent int) float64 {
	switch b.Kind {
	case BasisPxKind:
		v := b.Value
		if v > float64(crossExtent) {
			v = float64(crossExtent)
		}
		return v
	case BasisPercentKind:
		return b.Value / 100 * float64(crossExtent)
	default:
		return float64(crossExtent)
	}
}

// distributeLeftover turns unused main-axis space into a leading offset
// and/or an enlarged inter-item gap per AlignMain.
func distributeLeftover(align AlignMain, leftover float64, gap int, n int) (leading, effectiveGap float64) {
	effectiveGap = float64(gap)
	if leftover <= 0 {
		return 0, effectiveGap
	}
	switch align {
	case MainStart:
		return 0, effectiveGap
	case MainCenter:
		return leftover / 2, effectiveGap
	case MainEnd:
		return leftover, effectiveGap
	case MainSpaceBetween:
		if n <= 1 {
			return leftover / 2, effectiveGap
		}
		return 0, effectiveGap + leftover/float64(n-1)
	case MainSpaceAround:
		extra := leftover / float64(n)
		return extra / 2, effectiveGap + extra
	case MainSpaceEvenly:
		extra := leftover / float64(n+1)
		return extra, effectiveGap + extra
	default:
		return 0, effectiveGap
	}
}
