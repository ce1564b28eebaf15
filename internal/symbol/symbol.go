// Package symbol implements the hash-consed identifier interner described
// in the C11 front-end's symbol interner: one immutable string per spelling
// per Space, with pointer equality standing in for identifier equality.
//
// The bucket table is a straight chaining hash table, adapted from the
// teacher's FlapHashMap (hashmap.go): a slice of buckets, each the head of a
// singly linked chain through the stored record's own next pointer. Unlike
// FlapHashMap, buckets hold *Symbol directly (no separate bucket struct,
// since Symbol already carries the chaining pointer per the data model) and
// the table resizes on a load-factor trigger matched to the spec rather
// than FlapHashMap's fixed 0.75.
package symbol

// Symbol is an interned identifier spelling. Two Symbols obtained from the
// same Space for equal byte sequences are the same *Symbol; compare with
// ==, never by spelling.
type Symbol struct {
	hash   uint64
	length int
	space  *Space
	next   *Symbol // chaining pointer within the owning Space's bucket
	name   string  // the interned bytes; immutable after construction
}

// Name returns the symbol's spelling.
func (s *Symbol) Name() string { return s.name }

// Len returns the spelling's byte length.
func (s *Symbol) Len() int { return s.length }

// Hash returns the 64-bit lookup3-style hash computed at intern time.
func (s *Symbol) Hash() uint64 { return s.hash }

// Space returns the interner space that owns this symbol.
func (s *Symbol) Space() *Space { return s.space }

func (s *Symbol) String() string { return s.name }

// Space is one hash-consing table. Every Symbol produced by Force or Try on
// a given Space is unique for its spelling within that Space; two different
// Spaces may each hold their own Symbol for the same spelling, and those are
// distinct identities.
type Space struct {
	buckets   []*Symbol
	occupancy int
}

// minBuckets is the smallest bucket count a Space ever shrinks to; it is
// also the initial size of a freshly constructed Space.
const minBuckets = 16

// NewSpace creates an empty interner space.
func NewSpace() *Space {
	return &Space{buckets: make([]*Symbol, minBuckets)}
}

// Try returns the existing Symbol for name in this Space, or nil if name has
// never been forced.
func (sp *Space) Try(name string) *Symbol {
	h := hashString(name)
	idx := h & uint64(len(sp.buckets)-1)
	for sym := sp.buckets[idx]; sym != nil; sym = sym.next {
		if sym.hash == h && sym.name == name {
			return sym
		}
	}
	return nil
}

// Force returns the unique Symbol for name in this Space, creating it on
// first sight. Repeated calls with an equal name return the identical
// pointer: Force(sp, s) == Force(sp, s) always holds.
func (sp *Space) Force(name string) *Symbol {
	h := hashString(name)
	idx := h & uint64(len(sp.buckets)-1)
	for sym := sp.buckets[idx]; sym != nil; sym = sym.next {
		if sym.hash == h && sym.name == name {
			return sym
		}
	}

	sym := &Symbol{
		hash:   h,
		length: len(name),
		space:  sp,
		name:   name,
		next:   sp.buckets[idx],
	}
	sp.buckets[idx] = sym
	sp.occupancy++

	// Rehash once the bucket count falls below 3x occupancy, i.e. the
	// chains are on average longer than 1/3 bucket each.
	if len(sp.buckets) < 3*sp.occupancy {
		sp.grow()
	}
	return sym
}

func (sp *Space) grow() {
	old := sp.buckets
	sp.buckets = make([]*Symbol, len(old)*2)
	for _, head := range old {
		for sym := head; sym != nil; {
			next := sym.next
			idx := sym.hash & uint64(len(sp.buckets)-1)
			sym.next = sp.buckets[idx]
			sp.buckets[idx] = sym
			sym = next
		}
	}
}

// Occupancy returns the number of distinct symbols currently interned.
func (sp *Space) Occupancy() int { return sp.occupancy }
