package ldisjunct

import "testing"

func connectorLeaf(ss *StringSet, name string, dir Direction, cost int) *Expression {
	return NewConnector(MustIntern(ss, name), dir, false, cost)
}

func TestBuildClausesSingleConnector(t *testing.T) {
	ss := NewStringSet()
	expr := connectorLeaf(ss, "S", DirLeft, 0)

	clauses := BuildClauses(expr, CostNoCutoff)
	if len(clauses) != 1 {
		t.Fatalf("len(clauses) = %d, want 1", len(clauses))
	}
	if clauses[0].Cost != 0 || clauses[0].MaxCost != 0 {
		t.Errorf("clause = {Cost: %d, MaxCost: %d}, want {0, 0}", clauses[0].Cost, clauses[0].MaxCost)
	}
}

func TestBuildClausesOrIsUnionNotProduct(t *testing.T) {
	ss := NewStringSet()
	expr := NewOr(0, connectorLeaf(ss, "S", DirLeft, 0), connectorLeaf(ss, "O", DirRight, 0))

	clauses := BuildClauses(expr, CostNoCutoff)
	if len(clauses) != 2 {
		t.Fatalf("len(clauses) = %d, want 2 (one per OR branch)", len(clauses))
	}
}

func TestBuildClausesAndIsCartesianProduct(t *testing.T) {
	ss := NewStringSet()
	expr := NewAnd(0,
		NewOr(0, connectorLeaf(ss, "S", DirLeft, 0), connectorLeaf(ss, "O", DirRight, 0)),
		NewOr(0, connectorLeaf(ss, "D", DirLeft, 0), connectorLeaf(ss, "A", DirRight, 0)),
	)

	clauses := BuildClauses(expr, CostNoCutoff)
	if len(clauses) != 4 {
		t.Fatalf("len(clauses) = %d, want 4 (2x2 cartesian product)", len(clauses))
	}
}

func TestBuildClausesCostIsAdditiveAcrossAnd(t *testing.T) {
	ss := NewStringSet()
	expr := NewAnd(1, connectorLeaf(ss, "S", DirLeft, 2), connectorLeaf(ss, "O", DirRight, 3))

	clauses := BuildClauses(expr, CostNoCutoff)
	if len(clauses) != 1 {
		t.Fatalf("len(clauses) = %d, want 1", len(clauses))
	}
	// Cost is the sum of the AND's own cost and both children's cost.
	if want := 1 + 2 + 3; clauses[0].Cost != want {
		t.Errorf("Cost = %d, want %d", clauses[0].Cost, want)
	}
}

func TestBuildClausesMaxCostIsMaxAcrossAndChildrenThenAdditiveOwnCost(t *testing.T) {
	ss := NewStringSet()
	// AND of two connectors with differing cost: children's MaxCost combine
	// via MAX (2 vs 5 -> 5), then the AND's own cost (1) is folded in
	// additively on top of that MAX, per build-disjuncts.c's live behavior.
	expr := NewAnd(1, connectorLeaf(ss, "S", DirLeft, 2), connectorLeaf(ss, "O", DirRight, 5))

	clauses := BuildClauses(expr, CostNoCutoff)
	if len(clauses) != 1 {
		t.Fatalf("len(clauses) = %d, want 1", len(clauses))
	}
	if want := 5 + 1; clauses[0].MaxCost != want {
		t.Errorf("MaxCost = %d, want %d (MAX(2,5)=5, plus AND's own cost 1)", clauses[0].MaxCost, want)
	}
}

func TestBuildClausesOptionalBracketSplitsCostAcrossBranches(t *testing.T) {
	ss := NewStringSet()
	// [O-]3, hand-built as OR(cost=3, O-, empty-AND), the bracket notation's
	// expansion (internal/notation builds exactly this shape).
	bracket := NewOr(3, connectorLeaf(ss, "O", DirLeft, 0), NewAnd(0))

	clauses := BuildClauses(bracket, CostNoCutoff)
	if len(clauses) != 2 {
		t.Fatalf("len(clauses) = %d, want 2 (present or absent)", len(clauses))
	}
	for _, c := range clauses {
		if c.MaxCost != 3 {
			t.Errorf("clause MaxCost = %d, want 3 for both branches of an optional", c.MaxCost)
		}
	}
}
