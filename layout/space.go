package layout

// canonEq is a constraint after canonicalization: an equality
// Σ terms[i].Coeff*terms[i].Var = constant, weighted.
type canonEq struct {
	terms    []Term
	constant float64
	weight   float64
	required bool
	source   Constraint // the constraint as given; Solve validates against terms/constant, not this
}

// ConstraintSpace is the variable/constraint registry a solve runs over.
// It is single-threaded: built and solved on one goroutine.
type ConstraintSpace struct {
	numVars     int
	constraints []canonEq
	nonNegative []Variable
}

// NewSpace constructs an empty constraint space.
func NewSpace() *ConstraintSpace {
	return &ConstraintSpace{}
}

// NewVariable registers a fresh variable, defaulting to value 0.
func (s *ConstraintSpace) NewVariable() Variable {
	v := Variable(s.numVars)
	s.numVars++
	return v
}

// AddConstraint canonicalizes spec into an equality and registers it.
// GE relations are mirrored to LE by negating every term and the
// constant; LE relations (including mirrored GE) receive a fresh
// non-negative slack variable with coefficient +1 to become an
// equality. Eq relations are registered as-is.
func (s *ConstraintSpace) AddConstraint(spec Constraint) error {
	w, err := spec.Strength.weight()
	if err != nil {
		return err
	}

	terms := append([]Term(nil), spec.Terms...)
	constant := spec.Constant
	relation := spec.Relation

	switch relation {
	case Eq:
		// nothing to do
	case GE:
		for i := range terms {
			terms[i].Coeff = -terms[i].Coeff
		}
		constant = -constant
		relation = LE
		fallthrough
	case LE:
		slack := s.NewVariable()
		s.nonNegative = append(s.nonNegative, slack)
		terms = append(terms, Term{Var: slack, Coeff: 1})
	default:
		return ErrUnsupportedRelation
	}

	s.constraints = append(s.constraints, canonEq{
		terms:    terms,
		constant: constant,
		weight:   w,
		required: spec.Strength == Required,
		source:   spec,
	})
	return nil
}
