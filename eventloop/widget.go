package eventloop

import (
	"tuicore/geom"
	"tuicore/input"
	"tuicore/layout"
)

// Context is threaded through a widget's Draw and HandleEvent calls
// for one frame: the area the Loop assigned it and the LayoutBuilder
// the Loop resolved that area with, so a widget can allocate child
// nodes against the same constraint space instead of starting a new
// one per frame.
type Context struct {
	Area    geom.Rect
	Builder *layout.LayoutBuilder
}

// Widget is the closed interface every node in a Loop's widget tree
// satisfies: Draw renders into the area described by ctx and returns
// this frame's Surface; HandleEvent reacts to one input event and
// returns the Commands the Loop should apply on its behalf.
type Widget interface {
	Draw(ctx *Context) Surface
	HandleEvent(ctx *Context, ev input.Event) []Command
}
