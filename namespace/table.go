package namespace

import (
	"github.com/dolthub/maphash"

	"github.com/xyproto/cc11/internal/symbol"
	"github.com/xyproto/cc11/types"
)

// symHasher is shared by every idTable/tagTable in the process: dolthub's
// Hasher picks one random seed per process and reuses it for every Hash
// call, exactly what a scope table wants — fast, well-distributed, and
// under no obligation to reproduce bucket layout across runs (contrast
// internal/symbol's fixed-seed mix, which exists precisely because the
// Symbol interner does need that).
var symHasher = maphash.NewHasher[*symbol.Symbol]()

const idTableMinBuckets = 8

type idSlot struct {
	key  *symbol.Symbol
	val  Entry
	next *idSlot
}

// idTable is a chaining hash table over *symbol.Symbol identity, used for
// one scope's ordinary-identifier table. It mirrors the teacher's
// hashmap.go bucket-chaining shape (also reused, keyed by string, in
// internal/symbol.Space), here keyed by symbol identity and hashed with
// maphash instead of a hand-rolled mix.
type idTable struct {
	buckets   []*idSlot
	occupancy int
}

func newIDTable() *idTable {
	return &idTable{buckets: make([]*idSlot, idTableMinBuckets)}
}

func (t *idTable) bucketFor(sym *symbol.Symbol) int {
	return int(symHasher.Hash(sym) % uint64(len(t.buckets)))
}

func (t *idTable) get(sym *symbol.Symbol) (Entry, bool) {
	for s := t.buckets[t.bucketFor(sym)]; s != nil; s = s.next {
		if s.key == sym {
			return s.val, true
		}
	}
	return Entry{}, false
}

func (t *idTable) set(sym *symbol.Symbol, e Entry) {
	b := t.bucketFor(sym)
	for s := t.buckets[b]; s != nil; s = s.next {
		if s.key == sym {
			s.val = e
			return
		}
	}
	t.buckets[b] = &idSlot{key: sym, val: e, next: t.buckets[b]}
	t.occupancy++
	if len(t.buckets)*3 < t.occupancy {
		t.grow()
	}
}

func (t *idTable) grow() {
	old := t.buckets
	t.buckets = make([]*idSlot, len(old)*2)
	for _, head := range old {
		for s := head; s != nil; {
			next := s.next
			b := t.bucketFor(s.key)
			s.next = t.buckets[b]
			t.buckets[b] = s
			s = next
		}
	}
}

type tagSlot struct {
	key  *symbol.Symbol
	val  types.Type
	next *tagSlot
}

// tagTable is idTable's twin for the per-scope tag table (struct/union/
// enum names), kept as a distinct type since its value is a bare
// types.Type rather than an Entry.
type tagTable struct {
	buckets   []*tagSlot
	occupancy int
}

func newTagTable() *tagTable {
	return &tagTable{buckets: make([]*tagSlot, idTableMinBuckets)}
}

func (t *tagTable) bucketFor(sym *symbol.Symbol) int {
	return int(symHasher.Hash(sym) % uint64(len(t.buckets)))
}

func (t *tagTable) get(sym *symbol.Symbol) (types.Type, bool) {
	for s := t.buckets[t.bucketFor(sym)]; s != nil; s = s.next {
		if s.key == sym {
			return s.val, true
		}
	}
	return nil, false
}

func (t *tagTable) set(sym *symbol.Symbol, v types.Type) {
	b := t.bucketFor(sym)
	for s := t.buckets[b]; s != nil; s = s.next {
		if s.key == sym {
			s.val = v
			return
		}
	}
	t.buckets[b] = &tagSlot{key: sym, val: v, next: t.buckets[b]}
	t.occupancy++
	if len(t.buckets)*3 < t.occupancy {
		t.grow()
	}
}

func (t *tagTable) grow() {
	old := t.buckets
	t.buckets = make([]*tagSlot, len(old)*2)
	for _, head := range old {
		for s := head; s != nil; {
			next := s.next
			b := t.bucketFor(s.key)
			s.next = t.buckets[b]
			t.buckets[b] = s
			s = next
		}
	}
}
