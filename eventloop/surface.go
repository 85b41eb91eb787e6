package eventloop

import "tuicore/geom"

// Surface is a widget's rendered output for one frame: an area plus
// any child subsurfaces positioned at offsets within it. Concrete
// surface construction (what actually gets painted into a cell
// buffer) is a widget-layer concern; Loop calls the root widget's Draw
// every frame but does not walk or inspect the Surface it returns.
type Surface interface {
	Area() geom.Rect
	Children() []Surface
}

// Leaf is the common-case Surface with no children.
type Leaf struct {
	Rect geom.Rect
}

func (l Leaf) Area() geom.Rect    { return l.Rect }
func (l Leaf) Children() []Surface { return nil }

// Composite is a Surface with subsurfaces, e.g. a split view or a
// bordered container.
type Composite struct {
	Rect geom.Rect
	Subs []Surface
}

func (c Composite) Area() geom.Rect     { return c.Rect }
func (c Composite) Children() []Surface { return c.Subs }
