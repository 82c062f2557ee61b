package ldisjunct

import "github.com/samber/oops"

// Direction is the side a Connector attaches on: '+' links rightward (to a
// later word), '-' links leftward (to an earlier word).
type Direction byte

const (
	DirLeft  Direction = '-'
	DirRight Direction = '+'
)

// ExprKind tags the three node shapes an Expression can take.
type ExprKind int

const (
	// ExprConnector is a terminal requiring one link.
	ExprConnector ExprKind = iota
	// ExprAnd requires every child to be satisfied.
	ExprAnd
	// ExprOr requires exactly one child to be chosen.
	ExprOr
)

func (k ExprKind) String() string {
	switch k {
	case ExprConnector:
		return "CONNECTOR"
	case ExprAnd:
		return "AND"
	case ExprOr:
		return "OR"
	default:
		return "UNKNOWN"
	}
}

// Expression is the immutable tree a dictionary hands the core for one word
// sense: AND/OR nodes over Connector leaves, each node carrying its own
// non-negative cost. Expression trees are read-only during clause building;
// Clone produces a private copy for callers that want one.
type Expression struct {
	Kind ExprKind

	// Cost is the non-negative cost attached to this node (AND/OR node cost
	// is added once to every clause emitted from it; Connector leaf cost is
	// added the same way to the single clause the leaf emits).
	Cost int

	// Connector fields; meaningful only when Kind == ExprConnector.
	ConnString *InternedString
	Multi      bool
	Dir        Direction

	// And/Or fields; meaningful only when Kind == ExprAnd or ExprOr.
	Children []*Expression
}

// NewConnector builds a terminal Expression node.
func NewConnector(str *InternedString, dir Direction, multi bool, cost int) *Expression {
	return &Expression{
		Kind:       ExprConnector,
		Cost:       cost,
		ConnString: str,
		Multi:      multi,
		Dir:        dir,
	}
}

// NewAnd builds an AND node over the given children.
func NewAnd(cost int, children ...*Expression) *Expression {
	return &Expression{Kind: ExprAnd, Cost: cost, Children: children}
}

// NewOr builds an OR node over the given children.
func NewOr(cost int, children ...*Expression) *Expression {
	return &Expression{Kind: ExprOr, Cost: cost, Children: children}
}

// Clone deep-copies the expression tree, so that changes to the copy cannot
// be observed through the original. BuildSentenceDisjuncts does not clone:
// it only reads each alternative's tree. InternedString leaves are never
// copied, only the tree shape and
// the leaf pointers to them: strings, as usual, are not copied, a rule
// inherited from the original.
func (e *Expression) Clone() *Expression {
	if e == nil {
		return nil
	}
	clone := &Expression{
		Kind:       e.Kind,
		Cost:       e.Cost,
		ConnString: e.ConnString,
		Multi:      e.Multi,
		Dir:        e.Dir,
	}
	if len(e.Children) > 0 {
		clone.Children = make([]*Expression, len(e.Children))
		for i, c := range e.Children {
			clone.Children[i] = c.Clone()
		}
	}
	return clone
}

// Size returns the number of Connector leaves in the tree.
func (e *Expression) Size() int {
	if e == nil {
		return 0
	}
	switch e.Kind {
	case ExprConnector:
		return 1
	case ExprAnd, ExprOr:
		n := 0
		for _, c := range e.Children {
			n += c.Size()
		}
		return n
	default:
		panic(oops.Code(ErrCodeInvalidExpression).Errorf("expression node with unknown kind %v", e.Kind))
	}
}

// StructurallyEqual reports whether e and other are the same tree shape:
// same node kinds, same costs, same Dir/Multi on Connector leaves, and
// interned-string identity (not just spelling) on leaf strings. This is the
// predicate wordContains uses to test whether one word's expression appears
// as a sub-expression of another's.
func (e *Expression) StructurallyEqual(other *Expression) bool {
	if e == nil || other == nil {
		return e == other
	}
	if e.Kind != other.Kind || e.Cost != other.Cost {
		return false
	}
	switch e.Kind {
	case ExprConnector:
		return e.ConnString == other.ConnString && e.Multi == other.Multi && e.Dir == other.Dir
	case ExprAnd, ExprOr:
		if len(e.Children) != len(other.Children) {
			return false
		}
		for i := range e.Children {
			if !e.Children[i].StructurallyEqual(other.Children[i]) {
				return false
			}
		}
		return true
	default:
		panic(oops.Code(ErrCodeInvalidExpression).Errorf("expression node with unknown kind %v", e.Kind))
	}
}

// containsSubtree reports whether needle occurs as a structurally-equal
// subtree anywhere within e. Used by WordContains.
func containsSubtree(e, needle *Expression) bool {
	if e == nil {
		return false
	}
	if e.StructurallyEqual(needle) {
		return true
	}
	for _, c := range e.Children {
		if containsSubtree(c, needle) {
			return true
		}
	}
	return false
}
