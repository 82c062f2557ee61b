package ldisjunct

import "testing"

func TestBuildDisjunctPartitionsConnectorsByDirection(t *testing.T) {
	ss := NewStringSet()
	expr := NewAnd(0, connectorLeaf(ss, "D", DirLeft, 0), connectorLeaf(ss, "S", DirRight, 0))
	wordStr := MustIntern(ss, "dog")

	disjuncts := BuildDisjunctsForExpression(expr, wordStr, CostNoCutoff)
	if len(disjuncts) != 1 {
		t.Fatalf("len(disjuncts) = %d, want 1", len(disjuncts))
	}
	d := disjuncts[0]
	if d.Left == nil || d.Left.Str.String() != "D" {
		t.Errorf("Left connector = %v, want D", d.Left)
	}
	if d.Right == nil || d.Right.Str.String() != "S" {
		t.Errorf("Right connector = %v, want S", d.Right)
	}
	if d.String != wordStr {
		t.Error("Disjunct.String should be the interned print name passed in")
	}
}

func TestBuildDisjunctReversesMultiOrderAcrossSameDirection(t *testing.T) {
	ss := NewStringSet()
	expr := NewAnd(0,
		connectorLeaf(ss, "A", DirLeft, 0),
		connectorLeaf(ss, "B", DirLeft, 0),
		connectorLeaf(ss, "C", DirLeft, 0),
	)
	disjuncts := BuildDisjunctsForExpression(expr, MustIntern(ss, "w"), CostNoCutoff)
	if len(disjuncts) != 1 {
		t.Fatalf("len(disjuncts) = %d, want 1", len(disjuncts))
	}
	var order []string
	for c := disjuncts[0].Left; c != nil; c = c.Next {
		order = append(order, c.Str.String())
	}
	want := []string{"C", "B", "A"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %q, want %q", i, order[i], want[i])
		}
	}
}

func TestBuildDisjunctDropsClausesOverCutoff(t *testing.T) {
	ss := NewStringSet()
	expr := NewOr(0, connectorLeaf(ss, "S", DirLeft, 0), connectorLeaf(ss, "O", DirLeft, 5))

	disjuncts := BuildDisjunctsForExpression(expr, MustIntern(ss, "w"), 2)
	if len(disjuncts) != 1 {
		t.Fatalf("len(disjuncts) = %d, want 1 (only the cost-0 branch survives cutoff 2)", len(disjuncts))
	}
	if disjuncts[0].Left.Str.String() != "S" {
		t.Errorf("surviving disjunct = %s, want S", disjuncts[0].Left.Str.String())
	}
}

func TestBuildDisjunctNoCutoffKeepsEverything(t *testing.T) {
	ss := NewStringSet()
	expr := NewOr(0, connectorLeaf(ss, "S", DirLeft, 0), connectorLeaf(ss, "O", DirLeft, 1000))

	disjuncts := BuildDisjunctsForExpression(expr, MustIntern(ss, "w"), CostNoCutoff)
	if len(disjuncts) != 2 {
		t.Fatalf("len(disjuncts) = %d, want 2 with CostNoCutoff", len(disjuncts))
	}
}

func TestConcatDisjunctsPreservesOrderAndHandlesEmpty(t *testing.T) {
	ss := NewStringSet()
	a := BuildDisjunctsForExpression(connectorLeaf(ss, "A", DirLeft, 0), MustIntern(ss, "a"), CostNoCutoff)
	b := BuildDisjunctsForExpression(connectorLeaf(ss, "B", DirLeft, 0), MustIntern(ss, "b"), CostNoCutoff)

	got := ConcatDisjuncts(a, b)
	if len(got) != 2 {
		t.Fatalf("len(got) = %d, want 2", len(got))
	}
	if got[0].Left.Str.String() != "A" || got[1].Left.Str.String() != "B" {
		t.Errorf("ConcatDisjuncts did not preserve order: %v", got)
	}
	if got2 := ConcatDisjuncts(nil, b); len(got2) != 1 {
		t.Errorf("ConcatDisjuncts(nil, b) = %v, want len 1", got2)
	}
	if got3 := ConcatDisjuncts(a, nil); len(got3) != 1 {
		t.Errorf("ConcatDisjuncts(a, nil) = %v, want len 1", got3)
	}
}
