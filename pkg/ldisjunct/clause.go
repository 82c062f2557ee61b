package ldisjunct

import (
	"github.com/samber/oops"

	"github.com/linkgrammar-go/ldcore/internal/logging"
)

// tconnector is the internal, order-preserving node used while a clause is
// being assembled: a terminal connector plus the direction/multi flags it
// needs once it is split into a Disjunct's left/right lists. It exists only
// during clause building; callers never see it.
type tconnector struct {
	str   *InternedString
	multi bool
	dir   Direction
	next  *tconnector
}

// cloneTconnectors deep-copies a tconnector chain. build_clause's AND
// expansion mutates next pointers when it catenates child lists, so every
// clause's chain must be a fresh, unshared copy.
func cloneTconnectors(c *tconnector) *tconnector {
	if c == nil {
		return nil
	}
	return &tconnector{str: c.str, multi: c.multi, dir: c.dir, next: cloneTconnectors(c.next)}
}

// catenateTconnectors returns a new chain that is c1 followed by c2, in
// order, without mutating either input.
func catenateTconnectors(c1, c2 *tconnector) *tconnector {
	if c1 == nil {
		return cloneTconnectors(c2)
	}
	head := cloneTconnectors(c1)
	tail := head
	for tail.next != nil {
		tail = tail.next
	}
	tail.next = cloneTconnectors(c2)
	return head
}

// Clause is one term of the sum-of-products expansion of an Expression: a
// conjunction of directed connectors produced by a particular set of OR
// choices, plus cost accounting that keeps cost additive across the
// expansion.
type Clause struct {
	connectors *tconnector
	// Cost is the sum of costs along the path of chosen OR-branches plus all
	// enclosing AND costs.
	Cost int
	// MaxCost combines the children of an AND node with MAX, then has each
	// node's own cost added to it (additive, not max, for that step),
	// matching build-disjuncts.c's live (uncommented) line
	// `c1->maxcost += e->cost;` rather than the commented-out MAX() variant.
	MaxCost int
}

// BuildClauses expands expression into its sum-of-products clause list.
//
// cutoff is accepted for parity with the original's build_clause(Exp *e, int
// cost_cutoff) signature, but, like the original, which declares the
// parameter and never references it in the function body, it has no effect
// here. The actual cost-cutoff filtering happens in BuildDisjunct, against
// MaxCost, applied at disjunct-building time rather than inside the
// recursion. The parameter is kept so callers reading this signature are
// not surprised by a mismatch.
func BuildClauses(expression *Expression, cutoff int) []*Clause {
	_ = cutoff
	clauses := buildClause(expression)
	logging.For("clause").Debug("clauses built", "exprSize", expression.Size(), "clauseCount", len(clauses))
	return clauses
}

func buildClause(e *Expression) []*Clause {
	if e == nil {
		panic(oops.Code(ErrCodeInvalidExpression).Errorf("buildClause called with a nil expression"))
	}

	var clauses []*Clause

	switch e.Kind {
	case ExprConnector:
		clauses = []*Clause{{
			connectors: &tconnector{str: e.ConnString, multi: e.Multi, dir: e.Dir},
			Cost:       0,
			MaxCost:    0,
		}}

	case ExprOr:
		for _, child := range e.Children {
			clauses = append(clauses, buildClause(child)...)
		}

	case ExprAnd:
		clauses = []*Clause{{connectors: nil, Cost: 0, MaxCost: 0}}
		for _, child := range e.Children {
			childClauses := buildClause(child)
			var product []*Clause
			for _, c1 := range clauses {
				for _, c2 := range childClauses {
					product = append(product, &Clause{
						connectors: catenateTconnectors(c1.connectors, c2.connectors),
						Cost:       c1.Cost + c2.Cost,
						MaxCost:    maxInt(c1.MaxCost, c2.MaxCost),
					})
				}
			}
			clauses = product
		}

	default:
		panic(oops.Code(ErrCodeInvalidExpression).Errorf("expression node with unknown kind %v", e.Kind))
	}

	for _, c := range clauses {
		c.Cost += e.Cost
		c.MaxCost += e.Cost
	}
	return clauses
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
