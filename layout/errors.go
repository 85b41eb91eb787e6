package layout

import "errors"

// Solver failure kinds. SingularSystem is reported to
// callers as Underdetermined — a singular normal-equations matrix means
// the constraint set didn't pin down every variable, which is the same
// user-facing situation as having no Required constraint at all.
var (
	ErrUnderdetermined   = errors.New("layout: underdetermined constraint space")
	ErrOverdetermined    = errors.New("layout: overdetermined constraint space")
	ErrNegativeSlack     = errors.New("layout: negative slack variable")
	ErrInvalidWeight     = errors.New("layout: invalid constraint weight")
	ErrUnsupportedRelation = errors.New("layout: unsupported relation")
)
