// Package ldisjunct implements the disjunct-construction and fast-matching
// core of a link-grammar-style parser: expanding dictionary expressions into
// cost-pruned disjuncts and indexing them for near-constant-time connector
// matching.
package ldisjunct

import (
	"sync"

	"github.com/samber/oops"

	"github.com/linkgrammar-go/ldcore/internal/logging"
)

// InternedString is the canonical handle returned by a StringSet. Two
// InternedStrings compare equal with == if and only if they were interned
// from byte-equal source strings in the same StringSet: the Go analogue of
// the original's raw pointer-equality trick, made safe by using a dedicated
// type instead of a bare string or *string that callers could construct
// themselves.
type InternedString struct {
	s string
}

// String returns the interned text.
func (is *InternedString) String() string {
	if is == nil {
		return ""
	}
	return is.s
}

// StringSet interns connector and label strings shared across a dictionary.
// It is safe for concurrent use: insertions are serialized, and once a
// dictionary finishes loading the recommended usage is to stop calling Add
// and only call Lookup, at which point no locking is actually contended.
type StringSet struct {
	mu    sync.RWMutex
	table []*InternedString
	size  int
	count int
}

// NewStringSet creates an empty StringSet sized for a small dictionary.
func NewStringSet() *StringSet {
	size := nextPrimeUp(100)
	return &StringSet{
		table: make([]*InternedString, size),
		size:  size,
	}
}

// hashString is the primary hash: h(s) = (sum 256*h + c) mod size.
func hashString(s string, size int) int {
	accum := 0
	for i := 0; i < len(s); i++ {
		accum = (256*accum + int(s[i])) % size
	}
	return accum
}

// strideHashString is the probe stride: g(s) = (sum 17*g + c) mod size,
// forced to 1 if it comes out zero so that every probe sequence visits every
// slot of the (prime-sized) table.
func strideHashString(s string, size int) int {
	accum := 0
	for i := 0; i < len(s); i++ {
		accum = (17*accum + int(s[i])) % size
	}
	if accum == 0 {
		accum = 1
	}
	return accum
}

// nextPrimeUp returns the smallest prime >= start, forcing start odd first.
func nextPrimeUp(start int) int {
	if start%2 == 0 {
		start++
	}
	for {
		isPrime := true
		for i := 3; i*i <= start; i += 2 {
			if start%i == 0 {
				isPrime = false
				break
			}
		}
		if isPrime {
			return start
		}
		start += 2
	}
}

// findPlace runs the double-hashing probe sequence h, h+g, h+2g, ... mod size
// and returns the index of the existing entry for s, or the first empty slot
// where it belongs.
func (ss *StringSet) findPlace(s string) int {
	h := hashString(s, ss.size)
	g := strideHashString(s, ss.size)
	i := h
	for {
		entry := ss.table[i]
		if entry == nil || entry.s == s {
			return i
		}
		i = (i + g) % ss.size
	}
}

func (ss *StringSet) growTable() {
	old := ss.table
	oldSize := ss.size
	ss.size = nextPrimeUp(2 * ss.size)
	ss.table = make([]*InternedString, ss.size)
	ss.count = 0
	for _, entry := range old {
		if entry == nil {
			continue
		}
		p := ss.findPlace(entry.s)
		ss.table[p] = entry
		ss.count++
	}
	logging.For("stringset").Debug("table grown", "oldSize", oldSize, "newSize", ss.size, "count", ss.count)
}

// Add interns s, returning the existing canonical handle if s was already
// present, or installing and returning a new one otherwise.
//
// Go strings cannot be nil, so the null-input failure mode a C interner
// would need to guard against cannot occur here; this is the Go-native
// resolution of that fatal-assertion case.
func (ss *StringSet) Add(s string) *InternedString {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	p := ss.findPlace(s)
	if ss.table[p] != nil {
		return ss.table[p]
	}

	entry := &InternedString{s: s}
	ss.table[p] = entry
	ss.count++

	if 4*ss.count > 3*ss.size {
		ss.growTable()
	}
	return entry
}

// Lookup returns the canonical handle for s, or nil if s has never been
// interned in this set.
func (ss *StringSet) Lookup(s string) *InternedString {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	p := ss.findPlace(s)
	return ss.table[p]
}

// Count returns the number of distinct strings currently interned.
func (ss *StringSet) Count() int {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return ss.count
}

// MustIntern interns s in ss, panicking with an oops-coded fatal error if ss
// is nil. Dictionary-loading code (internal/notation, internal/dictionary)
// uses this instead of checking for a nil StringSet at every call site,
// since a nil StringSet reaching dictionary loading is a caller bug, not
// recoverable sentence-level input.
func MustIntern(ss *StringSet, s string) *InternedString {
	if ss == nil {
		panic(oops.Code(ErrCodeNilStringSet).Errorf("MustIntern called with a nil StringSet"))
	}
	return ss.Add(s)
}
