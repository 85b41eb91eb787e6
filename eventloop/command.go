package eventloop

// Command is an open interface so a Widget can request loop-level
// effects (focus changes, redraws, quitting) without the Loop itself
// knowing about any widget-specific command types. Widgets return
// []Command from HandleEvent; the Loop applies each in order right
// after dispatch.
type Command interface {
	Apply(l *Loop)
}

// FocusCommand transfers input focus to Next.
type FocusCommand struct {
	Next Widget
}

func (c FocusCommand) Apply(l *Loop) { l.focused = c.Next }

// RedrawCommand forces the next flush to treat the whole surface as
// dirty, e.g. after a focus change invalidates highlighting that
// isn't reflected in any single widget's own dirty cells.
type RedrawCommand struct{}

func (c RedrawCommand) Apply(l *Loop) { l.renderer.RequestFullRedraw() }

// RelayoutCommand marks the widget tree for relayout before the next
// draw pass, e.g. after a widget changes its own size preference.
type RelayoutCommand struct{}

func (c RelayoutCommand) Apply(l *Loop) { l.needsLayout = true }

// QuitCommand stops the Loop after the current iteration finishes.
type QuitCommand struct{}

func (c QuitCommand) Apply(l *Loop) { l.quit = true }
