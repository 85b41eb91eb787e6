package layout

import (
	"errors"
	"fmt"

	"tuicore/geom"
)

// NodeHandle is an opaque index into a LayoutBuilder's node table.
type NodeHandle int

type node struct {
	x, y, w, h Variable
}

// WeightedChild pairs a child node with its flex weight for Row/Column.
type WeightedChild struct {
	Handle NodeHandle
	Weight float64
}

// ResolvedLayout holds every node's solved rectangle, indexed by
// NodeHandle, rounded to non-negative integer cells and clamped to
// [0, 65535] (u16 range).
type ResolvedLayout struct {
	Rects []geom.Rect
}

// Rect returns the resolved rectangle for h.
func (r ResolvedLayout) Rect(h NodeHandle) geom.Rect {
	if int(h) < 0 || int(h) >= len(r.Rects) {
		return geom.Rect{}
	}
	return r.Rects[h]
}

// LayoutBuilder is a convenience layer over ConstraintSpace producing
// resolved rectangles for a tree of nodes.
type LayoutBuilder struct {
	space *ConstraintSpace
	nodes []node
}

// NewBuilder constructs an empty builder with its own constraint space.
func NewBuilder() *LayoutBuilder {
	return &LayoutBuilder{space: NewSpace()}
}

// CreateNode allocates four variables (x, y, width, height) for a new
// node and returns its handle.
func (b *LayoutBuilder) CreateNode() NodeHandle {
	n := node{
		x: b.space.NewVariable(),
		y: b.space.NewVariable(),
		w: b.space.NewVariable(),
		h: b.space.NewVariable(),
	}
	b.nodes = append(b.nodes, n)
	return NodeHandle(len(b.nodes) - 1)
}

// SetRect pins every variable of handle to rect's literal value with a
// Required equality.
func (b *LayoutBuilder) SetRect(handle NodeHandle, rect geom.Rect) error {
	n, err := b.node(handle)
	if err != nil {
		return err
	}
	return errors.Join(
		b.space.AddConstraint(pin(n.x, float64(rect.X))),
		b.space.AddConstraint(pin(n.y, float64(rect.Y))),
		b.space.AddConstraint(pin(n.w, float64(rect.Width))),
		b.space.AddConstraint(pin(n.h, float64(rect.Height))),
	)
}

func pin(v Variable, value float64) Constraint {
	return Constraint{Terms: []Term{{Var: v, Coeff: 1}}, Relation: Eq, Constant: value, Strength: Required}
}

func (b *LayoutBuilder) node(h NodeHandle) (node, error) {
	if int(h) < 0 || int(h) >= len(b.nodes) {
		return node{}, fmt.Errorf("layout: unknown node handle %d", h)
	}
	return b.nodes[h], nil
}

// Row arranges children horizontally inside parent: each child spans the
// parent's full height and is aligned to parent.y, widths are
// proportional to weight, children are laid left to right with no gaps,
// and the first/last children flush to the parent's left/right edges.
func (b *LayoutBuilder) Row(parent NodeHandle, children []WeightedChild) error {
	return b.arrange(parent, children, true)
}

// Column mirrors Row on the vertical axis.
func (b *LayoutBuilder) Column(parent NodeHandle, children []WeightedChild) error {
	return b.arrange(parent, children, false)
}

func (b *LayoutBuilder) arrange(parent NodeHandle, children []WeightedChild, horizontal bool) error {
	p, err := b.node(parent)
	if err != nil {
		return err
	}
	if len(children) == 0 {
		return nil
	}

	totalWeight := 0.0
	for _, c := range children {
		if c.Weight <= 0 {
			return fmt.Errorf("layout: child weight must be > 0, got %v", c.Weight)
		}
		totalWeight += c.Weight
	}

	var prev *node
	for i, c := range children {
		n, err := b.node(c.Handle)
		if err != nil {
			return err
		}

		var mainVar, crossVar, mainExtent, crossExtent Variable
		if horizontal {
			mainVar, crossVar = n.x, n.y
			mainExtent, crossExtent = n.w, n.h
		} else {
			mainVar, crossVar = n.y, n.x
			mainExtent, crossExtent = n.h, n.w
		}

		var parentCross, parentCrossExtent, parentMain, parentMainExtent Variable
		if horizontal {
			parentCross, parentCrossExtent = p.y, p.h
			parentMain, parentMainExtent = p.x, p.w
		} else {
			parentCross, parentCrossExtent = p.x, p.w
			parentMain, parentMainExtent = p.y, p.h
		}

		// cross-axis: child tracks parent's position and extent exactly.
		if err := b.space.AddConstraint(equalVars(crossVar, parentCross)); err != nil {
			return err
		}
		if err := b.space.AddConstraint(equalVars(crossExtent, parentCrossExtent)); err != nil {
			return err
		}

		// main-axis extent: totalWeight * child.extent == child.weight * parent.extent
		if err := b.space.AddConstraint(Constraint{
			Terms: []Term{
				{Var: mainExtent, Coeff: totalWeight},
				{Var: parentMainExtent, Coeff: -c.Weight},
			},
			Relation: Eq,
			Constant: 0,
			Strength: Required,
		}); err != nil {
			return err
		}

		if i == 0 {
			// first child's leading edge flushes to parent's leading edge.
			if err := b.space.AddConstraint(equalVars(mainVar, parentMain)); err != nil {
				return err
			}
		} else {
			// adjacent: child.main == prev.main + prev.extent
			var prevMain, prevExtent Variable
			if horizontal {
				prevMain, prevExtent = prev.x, prev.w
			} else {
				prevMain, prevExtent = prev.y, prev.h
			}
			if err := b.space.AddConstraint(Constraint{
				Terms: []Term{
					{Var: mainVar, Coeff: 1},
					{Var: prevMain, Coeff: -1},
					{Var: prevExtent, Coeff: -1},
				},
				Relation: Eq,
				Constant: 0,
				Strength: Required,
			}); err != nil {
				return err
			}
		}

		if i == len(children)-1 {
			// last child's trailing edge flushes to parent's trailing edge:
			// child.main + child.extent == parent.main + parent.extent
			if err := b.space.AddConstraint(Constraint{
				Terms: []Term{
					{Var: mainVar, Coeff: 1},
					{Var: mainExtent, Coeff: 1},
					{Var: parentMain, Coeff: -1},
					{Var: parentMainExtent, Coeff: -1},
				},
				Relation: Eq,
				Constant: 0,
				Strength: Required,
			}); err != nil {
				return err
			}
		}

		nCopy := n
		prev = &nCopy
	}
	return nil
}

func equalVars(a, b Variable) Constraint {
	return Constraint{
		Terms:    []Term{{Var: a, Coeff: 1}, {Var: b, Coeff: -1}},
		Relation: Eq,
		Constant: 0,
		Strength: Required,
	}
}

// Solve solves the builder's constraint space and reads back every
// node's resolved rectangle.
func (b *LayoutBuilder) Solve() (ResolvedLayout, error) {
	sol, err := b.space.Solve()
	if err != nil {
		return ResolvedLayout{}, err
	}
	rects := make([]geom.Rect, len(b.nodes))
	for i, n := range b.nodes {
		rects[i] = roundRect(sol.Value(n.x), sol.Value(n.y), sol.Value(n.w), sol.Value(n.h))
	}
	return ResolvedLayout{Rects: rects}, nil
}

func roundRect(x, y, w, h float64) geom.Rect {
	return geom.Rect{
		X:      clampU16(x),
		Y:      clampU16(y),
		Width:  clampU16(w),
		Height: clampU16(h),
	}
}

func clampU16(v float64) int {
	r := int(v + 0.5)
	if r < 0 {
		return 0
	}
	if r > 65535 {
		return 65535
	}
	return r
}

// SplitRow tiles area horizontally per weights, via a throwaway builder.
func SplitRow(area geom.Rect, weights []float64) ([]geom.Rect, error) {
	return split(area, weights, true)
}

// SplitColumn tiles area vertically per weights, via a throwaway builder.
func SplitColumn(area geom.Rect, weights []float64) ([]geom.Rect, error) {
	return split(area, weights, false)
}

func split(area geom.Rect, weights []float64, horizontal bool) ([]geom.Rect, error) {
	b := NewBuilder()
	root := b.CreateNode()
	if err := b.SetRect(root, area); err != nil {
		return nil, err
	}
	children := make([]WeightedChild, len(weights))
	handles := make([]NodeHandle, len(weights))
	for i, w := range weights {
		h := b.CreateNode()
		handles[i] = h
		children[i] = WeightedChild{Handle: h, Weight: w}
	}
	var err error
	if horizontal {
		err = b.Row(root, children)
	} else {
		err = b.Column(root, children)
	}
	if err != nil {
		return nil, err
	}
	resolved, err := b.Solve()
	if err != nil {
		return nil, err
	}
	out := make([]geom.Rect, len(handles))
	for i, h := range handles {
		out[i] = resolved.Rect(h)
	}
	return out, nil
}
