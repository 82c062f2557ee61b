package ldisjunct

import "github.com/linkgrammar-go/ldcore/internal/logging"

// MatchNode is one entry in a match-table bucket or in a query result list:
// a reference to a Disjunct, chained via Next.
type MatchNode struct {
	Disjunct *Disjunct
	Next     *MatchNode
}

// matchTable is a power-of-two-sized array of sorted MatchNode buckets, one
// per word, for one direction (left or right).
type matchTable struct {
	buckets []*MatchNode
	size    int
}

// MatchStats counts the fast matcher's own internal work, the per-Matcher
// realization of the original's single process-global match_cost counter.
type MatchStats struct {
	MatchCost    int64 // probe steps spent in formMatchList's duplicate elimination
	NodesPooled  int64
	NodesReused  int64
	NodesAlloced int64
}

// Matcher holds the two per-word hash tables (left, right) and the
// MatchNode free list for one sentence's parse. It is owned by the Sentence
// it was built for; nothing here is global, so two sentences may be built
// concurrently with independent Matchers.
type Matcher struct {
	left  []matchTable
	right []matchTable

	freeList *MatchNode
	Stats    MatchStats
}

// fastMatchHash mixes the connector's label into an accumulator, then folds
// in only the leading uppercase run of its string. This must depend on
// exactly the same bytes the parser's match predicate compares (the
// uppercase prefix), so that two connectors the predicate would accept
// always hash identically. The constant multiplier mirrors the original's
// i + (i<<1) + byte step; the table of
// random perturbations the original used (randtable) is replaced here by a
// fixed multiplicative mix, since Go has no static global array of
// process-lifetime random ints to reuse and a multiplicative mix gives the
// same "well-distributed, label-sensitive, case-insensitive-to-suffix" hash.
func fastMatchHash(label ConnectorLabel, str *InternedString) uint32 {
	var acc uint32 = uint32(label)*2654435761 + 0x9e3779b9
	s := str.String()
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 'A' || c > 'Z' {
			break
		}
		acc = acc + (acc << 1) + uint32(c)
	}
	return acc
}

func connectorHash(c *Connector) uint32 {
	return fastMatchHash(c.Label, c.Str)
}

// nextPowerOfTwo returns the smallest power of two >= n, with a floor of 1
// (an empty bucket table is still indexable, just always hits index 0 and
// stays empty).
func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

func newMatchTable(size int) matchTable {
	return matchTable{buckets: make([]*MatchNode, size), size: size}
}

// insertRightSorted inserts m into the right-table bucket list l, kept
// ascending by the word index the disjunct's first right connector
// targets.
func insertRightSorted(m *MatchNode, l *MatchNode) *MatchNode {
	if l == nil {
		return m
	}
	if m.Disjunct.Right.Word <= l.Disjunct.Right.Word {
		m.Next = l
		return m
	}
	l.Next = insertRightSorted(m, l.Next)
	return l
}

// insertLeftSorted inserts m into the left-table bucket list l, kept
// descending by the word index the disjunct's first left connector targets.
func insertLeftSorted(m *MatchNode, l *MatchNode) *MatchNode {
	if l == nil {
		return m
	}
	if m.Disjunct.Left.Word >= l.Disjunct.Left.Word {
		m.Next = l
		return m
	}
	l.Next = insertLeftSorted(m, l.Next)
	return l
}

// InitFastMatcher builds the left and right hash tables for every word of
// sentence from its already-built disjunct lists (BuildSentenceDisjuncts
// must have run first). It replaces any matcher already attached to the
// sentence.
func InitFastMatcher(sentence *Sentence) {
	m := &Matcher{
		left:  make([]matchTable, len(sentence.Words)),
		right: make([]matchTable, len(sentence.Words)),
	}

	for w := range sentence.Words {
		word := &sentence.Words[w]

		leftSize := nextPowerOfTwo(word.LeftDisjunctCount())
		m.left[w] = newMatchTable(leftSize)
		for _, d := range word.Disjuncts {
			if d.Left == nil {
				continue
			}
			h := connectorHash(d.Left) & uint32(leftSize-1)
			node := &MatchNode{Disjunct: d}
			m.left[w].buckets[h] = insertLeftSorted(node, m.left[w].buckets[h])
			m.Stats.NodesAlloced++
		}

		rightSize := nextPowerOfTwo(word.RightDisjunctCount())
		m.right[w] = newMatchTable(rightSize)
		for _, d := range word.Disjuncts {
			if d.Right == nil {
				continue
			}
			h := connectorHash(d.Right) & uint32(rightSize-1)
			node := &MatchNode{Disjunct: d}
			m.right[w].buckets[h] = insertRightSorted(node, m.right[w].buckets[h])
			m.Stats.NodesAlloced++
		}
	}

	sentence.matcher = m
	logging.For("matcher").Debug("fast matcher initialized", "words", len(sentence.Words), "nodesAlloced", m.Stats.NodesAlloced)
}

// getMatchNode pops a node off the free list, or allocates a new one if the
// free list is empty, keeping the hot formMatchList query off the
// allocator.
func (m *Matcher) getMatchNode() *MatchNode {
	if m.freeList != nil {
		n := m.freeList
		m.freeList = n.Next
		n.Next = nil
		m.Stats.NodesReused++
		return n
	}
	m.Stats.NodesAlloced++
	return &MatchNode{}
}

// PutMatchList returns every node in list to the matcher's free list. The
// caller must not use list after calling this.
func (m *Matcher) PutMatchList(list *MatchNode) {
	for list != nil {
		next := list.Next
		list.Next = m.freeList
		m.freeList = list
		list = next
		m.Stats.NodesPooled++
	}
}

// FormMatchList is the hot query: it returns disjuncts at word w that could
// match a left-going connector lc arriving from word lw, a right-going
// connector rc arriving from word rw, or both, with no duplicate disjuncts
// in the result.
//
// Either lc or rc (but not both) may be nil, meaning "don't look on that
// side." The caller owns the returned list and must pass it to
// m.PutMatchList when done.
func (m *Matcher) FormMatchList(w int, lc *Connector, lw int, rc *Connector, rw int) *MatchNode {
	var lBucket, rBucket *MatchNode
	if lc != nil {
		t := m.left[w]
		lBucket = t.buckets[connectorHash(lc)&uint32(t.size-1)]
	}
	if rc != nil {
		t := m.right[w]
		rBucket = t.buckets[connectorHash(rc)&uint32(t.size-1)]
	}

	var ml *MatchNode
	for mx := lBucket; mx != nil; mx = mx.Next {
		if mx.Disjunct.Left.Word < lw {
			break
		}
		my := m.getMatchNode()
		my.Disjunct = mx.Disjunct
		my.Next = ml
		ml = my
	}

	var mr *MatchNode
	for mx := rBucket; mx != nil; mx = mx.Next {
		if mx.Disjunct.Right.Word > rw {
			break
		}
		my := m.getMatchNode()
		my.Disjunct = mx.Disjunct
		my.Next = mr
		mr = my
	}

	// Eliminate mr entries already present in ml (kept only in ml).
	// Quadratic in bucket size by design; buckets are small after the
	// positional-cutoff truncation above.
	var freeLater *MatchNode
	var front *MatchNode
	for mx := mr; mx != nil; {
		next := mx.Next
		m.Stats.MatchCost++
		var dup bool
		for my := ml; my != nil; my = my.Next {
			m.Stats.MatchCost++
			if mx.Disjunct == my.Disjunct {
				dup = true
				break
			}
		}
		if dup {
			mx.Next = freeLater
			freeLater = mx
		} else {
			mx.Next = front
			front = mx
		}
		mx = next
	}
	mr = front
	m.PutMatchList(freeLater)

	// Catenate mr (deduped) ahead of ml.
	if mr == nil {
		return ml
	}
	tail := mr
	for tail.Next != nil {
		tail = tail.Next
	}
	tail.Next = ml
	return mr
}

// FreeFastMatcher tears down the matcher attached to sentence: the hash
// tables, and the MatchNode free list. After this call the sentence's
// matcher must be rebuilt with InitFastMatcher before FormMatchList can be
// used again.
func FreeFastMatcher(sentence *Sentence) {
	sentence.matcher = nil
}

// MatcherFor exposes the Matcher InitFastMatcher attached to sentence, for
// callers (the parser, the CLI, tests) that need to call FormMatchList
// directly rather than through Sentence-level convenience wrappers.
func MatcherFor(sentence *Sentence) *Matcher {
	return sentence.matcher
}
