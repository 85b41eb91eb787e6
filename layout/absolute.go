package layout

import "tuicore/geom"

// AbsoluteItem declares one item's position and size independently of
// its siblings, using the same Basis vocabulary as Flex and Grid.
type AbsoluteItem struct {
	X      Basis
	Y      Basis
	Width  Basis
	Height Basis
}

// Absolute resolves each item's (x, y, w, h) independently against
// area: a fraction on a given axis shares that axis's available extent
// proportionally with every other item's fraction on the same axis.
// Every output Rect is clamped within area.
func Absolute(area geom.Rect, items []AbsoluteItem) []geom.Rect {
	n := len(items)
	out := make([]geom.Rect, n)
	if n == 0 {
		return out
	}

	xs := resolveBasisValues(collect(items, func(it AbsoluteItem) Basis { return it.X }), area.Width)
	ys := resolveBasisValues(collect(items, func(it AbsoluteItem) Basis { return it.Y }), area.Height)
	ws := resolveBasisValues(collect(items, func(it AbsoluteItem) Basis { return it.Width }), area.Width)
	hs := resolveBasisValues(collect(items, func(it AbsoluteItem) Basis { return it.Height }), area.Height)

	for i := range items {
		r := geom.Rect{
			X:      area.X + int(xs[i]+0.5),
			Y:      area.Y + int(ys[i]+0.5),
			Width:  int(ws[i] + 0.5),
			Height: int(hs[i] + 0.5),
		}
		out[i] = r.ClampTo(area)
	}
	return out
}

func collect(items []AbsoluteItem, pick func(AbsoluteItem) Basis) []Basis {
	dims := make([]Basis, len(items))
	for i, it := range items {
		dims[i] = pick(it)
	}
	return dims
}
