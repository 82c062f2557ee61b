// Package dictionary supplies a minimal "lookup(word) -> []DictExpr"
// collaborator: an in-memory map from surface word to the notation
// entries listed for that word, loaded from a small text format (one
// "WORD: PRINTNAME: NOTATION" entry per line; a word with several entries
// appears on several lines). This is not a trie and does not do
// morphological guessing; it exists so the core in pkg/ldisjunct has
// something real to bind sentences against in tests and the CLI.
package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/samber/oops"

	"github.com/linkgrammar-go/ldcore/internal/notation"
	"github.com/linkgrammar-go/ldcore/pkg/ldisjunct"
)

// ErrCodeDictionaryParse marks a syntax error in a dictionary source file or
// a notation fragment within it.
const ErrCodeDictionaryParse = "DICTIONARY_PARSE"

// Dictionary maps a surface word to the dictionary entries it was assigned.
// Word text is matched case-sensitively and verbatim; no stemming or
// morphological guessing is performed.
type Dictionary struct {
	ss      *ldisjunct.StringSet
	entries map[string][]ldisjunct.DictExpr
}

// New creates an empty Dictionary whose connector strings intern into ss. A
// Dictionary and the Sentences built from its lookups must share the same
// StringSet, or Connector.Str identity comparisons during matching will
// silently never succeed.
func New(ss *ldisjunct.StringSet) *Dictionary {
	return &Dictionary{ss: ss, entries: make(map[string][]ldisjunct.DictExpr)}
}

// Add registers one dictionary entry for word: printName names the entry
// (as it would appear in a disjunct's String field) and notationText is
// parsed with the internal/notation grammar into the Expression this entry
// contributes.
func (d *Dictionary) Add(word, printName, notationText string) error {
	expr, err := notation.Parse(notationText, d.ss)
	if err != nil {
		return oops.Code(ErrCodeDictionaryParse).
			With("word", word, "printName", printName).
			Wrap(err)
	}
	d.entries[word] = append(d.entries[word], ldisjunct.DictExpr{
		PrintName: ldisjunct.MustIntern(d.ss, printName),
		Expr:      expr,
	})
	return nil
}

// Lookup returns the dictionary entries for word, or nil if word is unknown.
// Every Expression returned is the dictionary's shared tree; callers that
// bind it into a Sentence must Clone it first if they intend to mutate it.
// BuildSentenceDisjuncts never mutates, so ordinary lookups need no clone.
func (d *Dictionary) Lookup(word string) []ldisjunct.DictExpr {
	return d.entries[word]
}

// Words returns every surface word the dictionary has at least one entry
// for, in no particular order.
func (d *Dictionary) Words() []string {
	words := make([]string, 0, len(d.entries))
	for w := range d.entries {
		words = append(words, w)
	}
	return words
}

// Load reads a dictionary source from r: each entry line has the form
//
//	WORD: PRINTNAME: NOTATION
//
// Blank lines and lines starting with "%" are ignored, matching the
// comment convention link-grammar dictionary files use.
func Load(ss *ldisjunct.StringSet, r io.Reader) (*Dictionary, error) {
	d := New(ss)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		parts := strings.SplitN(line, ":", 3)
		if len(parts) != 3 {
			return nil, oops.Code(ErrCodeDictionaryParse).
				With("line", lineNo).
				Errorf("expected WORD: PRINTNAME: NOTATION, got %q", line)
		}
		word := strings.TrimSpace(parts[0])
		printName := strings.TrimSpace(parts[1])
		notationText := strings.TrimSpace(parts[2])
		if err := d.Add(word, printName, notationText); err != nil {
			return nil, oops.Code(ErrCodeDictionaryParse).
				With("line", lineNo).
				Wrap(err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dictionary: reading source: %w", err)
	}
	return d, nil
}

// LoadString is Load over a string source, convenient for tests and
// examples that embed a small dictionary inline.
func LoadString(ss *ldisjunct.StringSet, source string) (*Dictionary, error) {
	return Load(ss, strings.NewReader(source))
}

// BuildSentence looks up every surface word in words against d and returns
// a Sentence ready for ldisjunct.BuildSentenceDisjuncts. A word with no
// dictionary entry yields an empty Alternatives list, which
// BuildSentenceDisjuncts turns into zero disjuncts for that word. That is
// a caller-visible condition (an unparsable sentence), not a panic, since
// an unknown word is ordinary sentence input, not dictionary corruption.
func (d *Dictionary) BuildSentence(words []string) *ldisjunct.Sentence {
	ws := make([]ldisjunct.Word, len(words))
	for i, w := range words {
		ws[i] = ldisjunct.Word{
			Surface:      w,
			Alternatives: d.Lookup(w),
		}
	}
	return ldisjunct.NewSentence(ws)
}
