package ldisjunct

import "github.com/linkgrammar-go/ldcore/internal/logging"

// ConnectorLabel and ConnectorPriority reserve the two fields a downstream
// counting/linkage parser would use for "fat link" handling. The core only
// ever writes the defaults; nothing here interprets them.
type ConnectorLabel int
type ConnectorPriority int

const (
	LabelNormal ConnectorLabel = 0
)

const (
	PriorityThin ConnectorPriority = 0
)

// LengthLimitUnlimited is the default connector length-limit sentinel: no
// bound on how far away the matching word may be.
const LengthLimitUnlimited = -1

// Connector is the output-side representation of a single attachment slot,
// carried on a Disjunct's Left or Right list.
type Connector struct {
	Str         *InternedString
	Multi       bool
	Label       ConnectorLabel
	Priority    ConnectorPriority
	Word        int // filled in by the parser; 0 at build time
	LengthLimit int

	Next *Connector
}

func newOutputConnector(t *tconnector) *Connector {
	return &Connector{
		Str:         t.str,
		Multi:       t.multi,
		Label:       LabelNormal,
		Priority:    PriorityThin,
		Word:        0,
		LengthLimit: LengthLimitUnlimited,
	}
}

// extractConnectors walks a tconnector chain and builds a fresh Connector
// chain from only the nodes matching dir, in the same order they appear in
// the clause's connector chain (notation order, since catenateTconnectors
// appends rather than prepends). BuildDisjunct reverses the result, matching
// build-disjuncts.c's extract_connectors-then-reverse pair in build_disjunct.
func extractConnectors(t *tconnector, dir Direction) *Connector {
	if t == nil {
		return nil
	}
	rest := extractConnectors(t.next, dir)
	if t.dir != dir {
		return rest
	}
	c := newOutputConnector(t)
	c.Next = rest
	return c
}

// reverseConnectors reverses a Connector chain in place, returning the new
// head. build_disjunct reverses each side's extracted chain so the result is
// ordered outermost-first (the order the matcher's first-connector hash and
// bucket sort depend on), not notation order.
func reverseConnectors(c *Connector) *Connector {
	var prev *Connector
	for c != nil {
		next := c.Next
		c.Next = prev
		prev = c
		c = next
	}
	return prev
}

// Disjunct is one atomic way a word can attach: an ordered left connector
// list (all must link leftward) and an ordered right connector list (all
// must link rightward), plus the clause's accumulated cost.
//
// Word-level disjunct lists are ordinary Go slices ([]*Disjunct), not a
// Next-linked chain: the original's "next" field on Disjunct exists so it
// can build the list with O(1) prepends in C; a slice is the idiomatic Go
// substitute for that same list.
type Disjunct struct {
	Left   *Connector
	Right  *Connector
	String *InternedString // interned print-name of the word that produced it
	Cost   int
}

// CostNoCutoff is the sentinel BuildDisjunct/BuildClauses callers pass when
// they want every clause regardless of maxcost, e.g. dictionary-diagnostic
// tooling counting how many disjuncts a word sense has in total, mirroring
// the original's NOCUTOFF (build-disjuncts.c's build_disjuncts_for_dict_node).
const CostNoCutoff = int(^uint(0) >> 1)

// BuildDisjunct partitions each clause whose MaxCost is within cutoff into a
// Disjunct, dropping the rest silently (a cutoff drop is not an error).
// wordString is the interned print-name attached to every resulting
// Disjunct.
func BuildDisjunct(clauses []*Clause, wordString *InternedString, cutoff int) []*Disjunct {
	disjuncts := make([]*Disjunct, 0, len(clauses))
	dropped := 0
	for _, cl := range clauses {
		if cl.MaxCost > cutoff {
			dropped++
			continue
		}
		disjuncts = append(disjuncts, &Disjunct{
			Left:   reverseConnectors(extractConnectors(cl.connectors, DirLeft)),
			Right:  reverseConnectors(extractConnectors(cl.connectors, DirRight)),
			String: wordString,
			Cost:   cl.Cost,
		})
	}
	if dropped > 0 {
		logging.For("disjunct").Debug("clauses dropped by cost cutoff",
			"word", wordString.String(), "cutoff", cutoff, "dropped", dropped, "kept", len(disjuncts))
	}
	return disjuncts
}

// BuildDisjunctsForExpression runs the clause builder and disjunct builder
// back-to-back for a single Expression, the composition component E (sentence
// binding) uses once per dictionary alternative.
func BuildDisjunctsForExpression(expr *Expression, wordString *InternedString, cutoff int) []*Disjunct {
	clauses := BuildClauses(expr, cutoff)
	return BuildDisjunct(clauses, wordString, cutoff)
}

// ConcatDisjuncts appends b after a, returning the combined, order-
// preserving slice, as sentence binding requires when it folds together
// the disjuncts from each dictionary alternative of a word.
func ConcatDisjuncts(a, b []*Disjunct) []*Disjunct {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	return append(a, b...)
}
