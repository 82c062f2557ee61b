package ldisjunct

import "github.com/samber/oops"

// DictExpr is one alternative a dictionary lookup hands back for a word: a
// print-name (the dictionary entry this sense came from) and the Expression
// tree for that sense: lookup(word) returns a list of entries, each a
// {printName, expression} pair.
type DictExpr struct {
	PrintName *InternedString
	Expr      *Expression
}

// Word is one position in a sentence: the dictionary alternatives that fed
// it, and the disjunct list the core builds from them.
type Word struct {
	Surface      string
	Alternatives []DictExpr
	Disjuncts    []*Disjunct
}

// Sentence is the input/output unit the core builds disjuncts and a fast
// matcher for. Words are positional: Words[i] is word index i for every
// Connector.Word comparison the matcher performs.
type Sentence struct {
	Words []Word

	matcher *Matcher
}

// NewSentence creates a Sentence with len(words) empty word slots, each
// tagged with its surface form and the dictionary alternatives already
// looked up for it.
func NewSentence(words []Word) *Sentence {
	ws := make([]Word, len(words))
	copy(ws, words)
	return &Sentence{Words: ws}
}

// BuildSentenceDisjuncts populates sentence.Words[w].Disjuncts for every
// word, by running the clause/disjunct builder over each alternative
// Expression and concatenating the results in alternative order.
// costCutoff is shared across every word and alternative in the sentence.
func BuildSentenceDisjuncts(sentence *Sentence, costCutoff int) {
	for w := range sentence.Words {
		word := &sentence.Words[w]
		var disjuncts []*Disjunct
		for _, alt := range word.Alternatives {
			if alt.Expr == nil {
				panic(oops.Code(ErrCodeInvalidExpression).Errorf(
					"word %q alternative %q has a nil expression", word.Surface, alt.PrintName))
			}
			d := BuildDisjunctsForExpression(alt.Expr, alt.PrintName, costCutoff)
			disjuncts = ConcatDisjuncts(disjuncts, d)
		}
		word.Disjuncts = disjuncts
	}
}

// LeftDisjunctCount returns the number of disjuncts in the word's list that
// have a non-empty left connector list (fast-match.c's
// left_disjunct_list_length).
func (w *Word) LeftDisjunctCount() int {
	n := 0
	for _, d := range w.Disjuncts {
		if d.Left != nil {
			n++
		}
	}
	return n
}

// RightDisjunctCount is the right-side counterpart of LeftDisjunctCount.
func (w *Word) RightDisjunctCount() int {
	n := 0
	for _, d := range w.Disjuncts {
		if d.Right != nil {
			n++
		}
	}
	return n
}

// WordContains reports whether marker's Expression occurs as a structurally
// equal sub-expression somewhere within the Expression of at least one of
// word's alternatives. This realizes a wordContains(word, marker, dict)
// predicate consumed from grammar catalogs (entity and tense markers,
// etc.); equality is structural over AND/OR/Connector nodes, including
// cost, dir, and interned-string identity.
func WordContains(word Word, marker *Expression) bool {
	for _, alt := range word.Alternatives {
		if containsSubtree(alt.Expr, marker) {
			return true
		}
	}
	return false
}
