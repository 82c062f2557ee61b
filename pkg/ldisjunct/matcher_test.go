package ldisjunct

import "testing"

func buildWordSentence(t *testing.T, ss *StringSet, surfaces []string, exprs []*Expression) *Sentence {
	t.Helper()
	words := make([]Word, len(surfaces))
	for i, s := range surfaces {
		words[i] = Word{
			Surface:      s,
			Alternatives: []DictExpr{{PrintName: MustIntern(ss, s), Expr: exprs[i]}},
		}
	}
	sentence := NewSentence(words)
	BuildSentenceDisjuncts(sentence, CostNoCutoff)
	return sentence
}

func TestFastMatchHashIgnoresSuffixAfterUppercaseRun(t *testing.T) {
	ss := NewStringSet()
	a := &Connector{Str: MustIntern(ss, "MVx"), Label: LabelNormal}
	b := &Connector{Str: MustIntern(ss, "MVy"), Label: LabelNormal}
	if connectorHash(a) != connectorHash(b) {
		t.Errorf("hashes differ for connectors sharing the uppercase prefix MV: %d vs %d",
			connectorHash(a), connectorHash(b))
	}
}

func TestFastMatchHashDiffersAcrossUppercasePrefix(t *testing.T) {
	ss := NewStringSet()
	a := &Connector{Str: MustIntern(ss, "S"), Label: LabelNormal}
	b := &Connector{Str: MustIntern(ss, "D"), Label: LabelNormal}
	if connectorHash(a) == connectorHash(b) {
		t.Error("S and D should not collide (differing uppercase prefixes)")
	}
}

func TestInitFastMatcherAndFormMatchListFindsCandidate(t *testing.T) {
	ss := NewStringSet()
	left := NewConnector(MustIntern(ss, "D"), DirRight, false, 0)
	right := NewAnd(0, connectorLeaf(ss, "D", DirLeft, 0), connectorLeaf(ss, "S", DirRight, 0))
	third := connectorLeaf(ss, "S", DirLeft, 0)

	sentence := buildWordSentence(t, ss, []string{"the", "dog", "barks"}, []*Expression{left, right, third})
	InitFastMatcher(sentence)
	defer FreeFastMatcher(sentence)

	matcher := MatcherFor(sentence)
	lc := sentence.Words[0].Disjuncts[0].Right

	list := matcher.FormMatchList(1, lc, 0, nil, 0)
	defer matcher.PutMatchList(list)

	if list == nil {
		t.Fatal("FormMatchList returned no candidates")
	}
	if list.Disjunct != sentence.Words[1].Disjuncts[0] {
		t.Error("FormMatchList returned a disjunct not belonging to word 1")
	}
	if list.Next != nil {
		t.Error("expected exactly one candidate")
	}
}

func TestFormMatchListRespectsWordCutoff(t *testing.T) {
	ss := NewStringSet()
	expr := connectorLeaf(ss, "D", DirLeft, 0)
	sentence := buildWordSentence(t, ss, []string{"dog"}, []*Expression{expr})

	InitFastMatcher(sentence)
	defer FreeFastMatcher(sentence)
	matcher := MatcherFor(sentence)

	// The only disjunct's Left.Word defaults to 0 at build time; a query
	// with lw=1 should exclude it (mx.Disjunct.Left.Word < lw breaks the scan).
	lc := &Connector{Str: MustIntern(ss, "D"), Label: LabelNormal}
	list := matcher.FormMatchList(0, lc, 1, nil, 0)
	if list != nil {
		t.Error("expected no candidates once lw exceeds the disjunct's Word")
		matcher.PutMatchList(list)
	}
}

func TestFormMatchListDedupsDisjunctSharedByBothSides(t *testing.T) {
	ss := NewStringSet()
	// A disjunct with both a left and a right connector is reachable from
	// both the left-table and the right-table bucket for the same query;
	// FormMatchList must report it exactly once.
	expr := NewAnd(0, connectorLeaf(ss, "D", DirLeft, 0), connectorLeaf(ss, "S", DirRight, 0))
	sentence := buildWordSentence(t, ss, []string{"dog"}, []*Expression{expr})
	InitFastMatcher(sentence)
	defer FreeFastMatcher(sentence)
	matcher := MatcherFor(sentence)

	lc := &Connector{Str: MustIntern(ss, "D"), Label: LabelNormal}
	rc := &Connector{Str: MustIntern(ss, "S"), Label: LabelNormal}
	list := matcher.FormMatchList(0, lc, 0, rc, 0)
	defer matcher.PutMatchList(list)

	if list == nil {
		t.Fatal("FormMatchList returned no candidates")
	}
	if list.Next != nil {
		t.Errorf("expected exactly one candidate, got a second: %+v", list.Next.Disjunct)
	}
	if list.Disjunct != sentence.Words[0].Disjuncts[0] {
		t.Error("FormMatchList returned an unexpected disjunct")
	}
}

func TestMatchNodePoolingReusesFreedNodes(t *testing.T) {
	ss := NewStringSet()
	expr := connectorLeaf(ss, "D", DirLeft, 0)
	sentence := buildWordSentence(t, ss, []string{"dog"}, []*Expression{expr})
	InitFastMatcher(sentence)
	defer FreeFastMatcher(sentence)
	matcher := MatcherFor(sentence)

	lc := &Connector{Str: MustIntern(ss, "D"), Label: LabelNormal}
	list := matcher.FormMatchList(0, lc, 0, nil, 0)
	matcher.PutMatchList(list)

	before := matcher.Stats.NodesAlloced
	list2 := matcher.FormMatchList(0, lc, 0, nil, 0)
	matcher.PutMatchList(list2)
	if matcher.Stats.NodesAlloced != before {
		t.Errorf("NodesAlloced grew from %d to %d on a second identical query; expected pooled reuse",
			before, matcher.Stats.NodesAlloced)
	}
	if matcher.Stats.NodesReused == 0 {
		t.Error("expected at least one pooled node to be reused")
	}
}
