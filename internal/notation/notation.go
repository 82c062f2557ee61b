// Package notation parses the small textual notation dictionary entries and
// test fixtures use to write Expression trees, e.g.:
//
//	S+ & (O- or Xc-)
//	@MX- & (A+ or [B+]3)
//
// Grammar:
//
//	expr      := or_expr
//	or_expr   := and_expr ( "or" and_expr )*
//	and_expr  := atom ( "&" atom )*
//	atom      := "(" expr ")" | "[" expr "]" cost? | connector
//	connector := "@"? IDENT ( "+" | "-" ) cost?
//
// "@" marks a multi-connector; a trailing integer on a connector or a
// bracketed group attaches that node's cost. A bracketed group "[e]cost" is
// optional-with-cost: an OR between e and the empty expression, with the
// OR node itself carrying cost (link-grammar's usual reading of "[ ]").
//
// This is not part of the disjunct-construction core (pkg/ldisjunct); it is
// a dictionary-loading front-end, grounded on ritamzico-pgraph's
// internal/dsl participle grammar (itself grounded on its own small query
// language, not link grammar, with only the parsing technique borrowed).
package notation

import (
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/linkgrammar-go/ldcore/pkg/ldisjunct"
)

var notationLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Keyword", Pattern: `(?i)\bor\b`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "Ident", Pattern: `[A-Za-z][A-Za-z0-9_]*`},
	{Name: "Punct", Pattern: `[()\[\]&+\-@]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var notationParser = participle.MustBuild[exprAST](
	participle.Lexer(notationLexer),
	participle.CaseInsensitive("Keyword"),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// exprAST is the top-level parsed node: an OR of ANDs.
type exprAST struct {
	Left *andAST   `parser:"@@"`
	Rest []*andAST `parser:"( \"or\" @@ )*"`
}

type andAST struct {
	Left *atomAST   `parser:"@@"`
	Rest []*atomAST `parser:"( \"&\" @@ )*"`
}

type atomAST struct {
	Paren    *exprAST      `parser:"  \"(\" @@ \")\""`
	Optional *optionalAST  `parser:"| @@"`
	Conn     *connectorAST `parser:"| @@"`
}

type optionalAST struct {
	Inner *exprAST `parser:"\"[\" @@ \"]\""`
	Cost  *int     `parser:"@Int?"`
}

type connectorAST struct {
	Multi bool   `parser:"@\"@\"?"`
	Name  string `parser:"@Ident"`
	Dir   string `parser:"@(\"+\"|\"-\")"`
	Cost  *int   `parser:"@Int?"`
}

// Parse turns notation text into an Expression tree, interning every
// connector string in ss.
func Parse(text string, ss *ldisjunct.StringSet) (*ldisjunct.Expression, error) {
	ast, err := notationParser.ParseString("", text)
	if err != nil {
		return nil, err
	}
	return convertExpr(ast, ss), nil
}

func convertExpr(e *exprAST, ss *ldisjunct.StringSet) *ldisjunct.Expression {
	children := []*ldisjunct.Expression{convertAnd(e.Left, ss)}
	for _, r := range e.Rest {
		children = append(children, convertAnd(r, ss))
	}
	if len(children) == 1 {
		return children[0]
	}
	return ldisjunct.NewOr(0, children...)
}

func convertAnd(a *andAST, ss *ldisjunct.StringSet) *ldisjunct.Expression {
	children := []*ldisjunct.Expression{convertAtom(a.Left, ss)}
	for _, r := range a.Rest {
		children = append(children, convertAtom(r, ss))
	}
	if len(children) == 1 {
		return children[0]
	}
	return ldisjunct.NewAnd(0, children...)
}

func convertAtom(a *atomAST, ss *ldisjunct.StringSet) *ldisjunct.Expression {
	switch {
	case a.Paren != nil:
		return convertExpr(a.Paren, ss)
	case a.Optional != nil:
		inner := convertExpr(a.Optional.Inner, ss)
		cost := intOrZero(a.Optional.Cost)
		empty := ldisjunct.NewAnd(0)
		return ldisjunct.NewOr(cost, inner, empty)
	case a.Conn != nil:
		c := a.Conn
		dir := ldisjunct.DirRight
		if c.Dir == "-" {
			dir = ldisjunct.DirLeft
		}
		str := ldisjunct.MustIntern(ss, c.Name)
		return ldisjunct.NewConnector(str, dir, c.Multi, intOrZero(c.Cost))
	default:
		panic("notation: atom with no alternative set")
	}
}

func intOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// MustParse is Parse, panicking on a syntax error. Convenient for
// hand-written dictionary fixtures and examples where a bad notation string
// is a programming error, not user input.
func MustParse(text string, ss *ldisjunct.StringSet) *ldisjunct.Expression {
	e, err := Parse(text, ss)
	if err != nil {
		panic(err)
	}
	return e
}

// FormatInt formats a cost in notation form; kept here rather than in the
// core because it is purely a notation-side concern.
func FormatInt(n int) string {
	return strconv.Itoa(n)
}
