package types

import (
	"encoding/json"
	"sort"
	"unsafe"

	set3 "github.com/TomTonic/Set3"

	"github.com/xyproto/cc11/diag"
	"github.com/xyproto/cc11/diagutil"
	"github.com/xyproto/cc11/internal/symbol"
	"github.com/xyproto/cc11/target"
)

func alignUp(n, align int) int {
	if align <= 1 {
		return n
	}
	return (n + align - 1) &^ (align - 1)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// symbolLess orders two symbols by their address, which is stable for the
// lifetime of the process since this module never moves interned records
// (see internal/symbol). This gives the "sorted by symbol identity" index
// order the spec requires without needing a second, separate identity
// numbering scheme.
func symbolLess(a, b *symbol.Symbol) bool {
	return uintptr(unsafe.Pointer(a)) < uintptr(unsafe.Pointer(b))
}

// NewFunction builds a function type, normalizing the spelled-out
// "(void)" zero-parameter form (one unnamed void parameter) down to a
// true empty parameter list, per §4.4.
func NewFunction(ret Type, params []Param, varargs bool) *FunctionT {
	if len(params) == 1 && params[0].Name == nil {
		if _, isVoid := params[0].Type.(*VoidT); isVoid {
			params = nil
		}
	}
	ret.Ref()
	for _, p := range params {
		p.Type.Ref()
	}
	return &FunctionT{Return: ret, Params: params, Varargs: varargs}
}

// NewQualified applies quals to base, flattening a nested Qualified,
// returning base unchanged if quals is empty, and enforcing the
// restrict-only-pointer and atomic-never-array/function shape rules.
func NewQualified(base Type, quals Qualifiers) (Type, *diag.Error) {
	// Flatten a nested Qualified before validating, so "restrict"/"atomic"
	// checks below always see the true underlying kind rather than
	// another Qualified wrapper.
	underlying := base
	if qb, ok := base.(*QualifiedT); ok {
		quals |= qb.Quals
		underlying = qb.Underlying
	}
	if quals == 0 {
		return underlying, nil
	}

	if quals.Has(Restrict) {
		if _, ok := underlying.(*PointerT); !ok {
			return nil, diag.New(diag.BadRestrictedType, "'restrict' may only qualify a pointer type, got %s", underlying.String())
		}
	}
	if quals.Has(Atomic) {
		switch underlying.(type) {
		case *ArrayT, *VLAT, *FunctionT:
			return nil, diag.New(diag.BadAtomicType, "'_Atomic' may not qualify an array or function type, got %s", underlying.String())
		}
	}

	underlying.Ref()
	return newQualifiedDirect(underlying, quals), nil
}

func newQualifiedDirect(underlying Type, quals Qualifiers) *QualifiedT {
	return &QualifiedT{
		base:       structBase(underlying.Sizeof(), underlying.Alignof()),
		Underlying: underlying,
		Quals:      quals,
	}
}

func structBase(sizeofBytes, alignofBytes int) base {
	return base{sizeofBytes: sizeofBytes, alignofBytes: alignofBytes}
}

// layoutMembers is the shared offset-and-alignment walk used by NewStruct
// and CompleteStruct: it mutates each member's Offset/Bitfield.BitOffset in
// place and returns the aggregate's (size, align).
func layoutMembers(members []Member, minAlign, minSize int) (int, int) {
	offset := 0
	maxAlign := 1
	bitPos := 0
	curStorageSize := 0

	for i := range members {
		m := &members[i]
		align := m.Type.Alignof()
		if m.AlignOverride > align {
			align = m.AlignOverride
		}

		if m.Bitfield != nil {
			sz := m.Type.Sizeof()
			if bitPos == 0 || curStorageSize != sz || bitPos+m.Bitfield.BitLength > sz*8 {
				if bitPos != 0 {
					offset += curStorageSize
				}
				offset = alignUp(offset, align)
				bitPos = 0
				curStorageSize = sz
				m.Offset = offset
			} else {
				m.Offset = offset
			}
			m.Bitfield.BitOffset = bitPos
			bitPos += m.Bitfield.BitLength
			maxAlign = maxInt(maxAlign, align)
			continue
		}

		if bitPos != 0 {
			offset += curStorageSize
			bitPos = 0
		}
		offset = alignUp(offset, align)
		m.Offset = offset
		offset += m.Type.Sizeof()
		maxAlign = maxInt(maxAlign, align)
	}
	if bitPos != 0 {
		offset += curStorageSize
	}

	structAlign := maxInt(maxAlign, minAlign)
	size := maxInt(alignUp(offset, structAlign), minSize)
	return size, structAlign
}

// checkDistinctNames rejects a member list with two non-anonymous members
// sharing a name, using a Set3 of symbol identities as a fast pre-check
// ahead of building the sorted by-symbol index (which assumes distinct
// keys). Anonymous bit-field padding slots (Name == nil) are exempt.
func checkDistinctNames(names []*symbol.Symbol) *symbol.Symbol {
	seen := set3.EmptyWithCapacity[*symbol.Symbol](uint32(len(names)))
	for _, n := range names {
		if n == nil {
			continue
		}
		if seen.Contains(n) {
			return n
		}
		seen.Add(n)
	}
	return nil
}

func buildBySymbolIndex(n int, name func(int) *symbol.Symbol) []int {
	idx := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if name(i) != nil {
			idx = append(idx, i)
		}
	}
	sort.Slice(idx, func(a, b int) bool { return symbolLess(name(idx[a]), name(idx[b])) })
	return idx
}

// NewStruct validates distinct member names, computes offsets per
// layoutMembers, and builds the by-symbol binary-search index.
func NewStruct(tag *symbol.Symbol, members []Member, prof *target.Profile) (*StructT, *diag.Error) {
	if len(members) == 0 {
		return nil, diag.New(diag.StructEmpty, "struct %s has no members", tagName(tag))
	}
	names := make([]*symbol.Symbol, len(members))
	for i, m := range members {
		names[i] = m.Name
	}
	if dup := checkDistinctNames(names); dup != nil {
		return nil, diag.New(diag.StructDuplicates, "struct %s has duplicate member %q", tagName(tag), dup.Name())
	}

	for i := range members {
		members[i].Type.Ref()
	}
	size, align := layoutMembers(members, prof.MinStructAlignof, prof.MinStructSizeof)
	s := &StructT{
		base:    structBase(size, align),
		Tag:     tag,
		Members: members,
	}
	s.BySymbol = buildBySymbolIndex(len(members), func(i int) *symbol.Symbol { return members[i].Name })
	return s, nil
}

// CompleteStruct fills a previously-incomplete tag in place, recomputing
// layout, and flips Incomplete to false.
func CompleteStruct(s *StructT, members []Member, prof *target.Profile) *diag.Error {
	names := make([]*symbol.Symbol, len(members))
	for i, m := range members {
		names[i] = m.Name
	}
	if dup := checkDistinctNames(names); dup != nil {
		return diag.New(diag.StructDuplicates, "struct %s has duplicate member %q", tagName(s.Tag), dup.Name())
	}
	for i := range members {
		members[i].Type.Ref()
	}
	size, align := layoutMembers(members, prof.MinStructAlignof, prof.MinStructSizeof)
	s.Members = members
	s.sizeofBytes = size
	s.alignofBytes = align
	s.BySymbol = buildBySymbolIndex(len(members), func(i int) *symbol.Symbol { return members[i].Name })
	s.Incomplete = false
	diagutil.Logf("types: completed struct %s (sizeof=%d alignof=%d)\n", tagName(s.Tag), size, align)
	return nil
}

// NewIncompleteStruct creates a forward-declared placeholder.
func NewIncompleteStruct(tag *symbol.Symbol) *StructT {
	return &StructT{Tag: tag, Incomplete: true}
}

// NewUnion validates distinct branch names and sets size/align to the max
// branch, floored at the target minimums.
func NewUnion(tag *symbol.Symbol, branches []Member, prof *target.Profile) (*UnionT, *diag.Error) {
	names := make([]*symbol.Symbol, len(branches))
	for i, b := range branches {
		names[i] = b.Name
	}
	if dup := checkDistinctNames(names); dup != nil {
		return nil, diag.New(diag.StructDuplicates, "union %s has duplicate member %q", tagName(tag), dup.Name())
	}
	maxSize, maxAlign := 0, 1
	for i := range branches {
		branches[i].Type.Ref()
		maxSize = maxInt(maxSize, branches[i].Type.Sizeof())
		maxAlign = maxInt(maxAlign, branches[i].Type.Alignof())
	}
	maxAlign = maxInt(maxAlign, prof.MinStructAlignof)
	maxSize = maxInt(alignUp(maxSize, maxAlign), prof.MinStructSizeof)

	u := &UnionT{base: structBase(maxSize, maxAlign), Tag: tag, Branches: branches}
	u.BySymbol = buildBySymbolIndex(len(branches), func(i int) *symbol.Symbol { return branches[i].Name })
	return u, nil
}

func CompleteUnion(u *UnionT, branches []Member, prof *target.Profile) *diag.Error {
	names := make([]*symbol.Symbol, len(branches))
	for i, b := range branches {
		names[i] = b.Name
	}
	if dup := checkDistinctNames(names); dup != nil {
		return diag.New(diag.StructDuplicates, "union %s has duplicate member %q", tagName(u.Tag), dup.Name())
	}
	maxSize, maxAlign := 0, 1
	for i := range branches {
		branches[i].Type.Ref()
		maxSize = maxInt(maxSize, branches[i].Type.Sizeof())
		maxAlign = maxInt(maxAlign, branches[i].Type.Alignof())
	}
	maxAlign = maxInt(maxAlign, prof.MinStructAlignof)
	maxSize = maxInt(alignUp(maxSize, maxAlign), prof.MinStructSizeof)
	u.Branches = branches
	u.sizeofBytes = maxSize
	u.alignofBytes = maxAlign
	u.BySymbol = buildBySymbolIndex(len(branches), func(i int) *symbol.Symbol { return branches[i].Name })
	u.Incomplete = false
	diagutil.Logf("types: completed union %s (sizeof=%d alignof=%d)\n", tagName(u.Tag), maxSize, maxAlign)
	return nil
}

func NewIncompleteUnion(tag *symbol.Symbol) *UnionT {
	return &UnionT{Tag: tag, Incomplete: true}
}

// NewEnum validates distinct value names and builds both sorted indices.
// size is always sizeof(int) per the spec.
func NewEnum(tag *symbol.Symbol, values []EnumValue, unsigned bool, sizeofInt int) (*EnumT, *diag.Error) {
	names := make([]*symbol.Symbol, len(values))
	for i, v := range values {
		names[i] = v.Name
	}
	if dup := checkDistinctNames(names); dup != nil {
		return nil, diag.New(diag.EnumDuplicates, "enum %s has duplicate member %q", tagName(tag), dup.Name())
	}

	e := &EnumT{
		base:     structBase(sizeofInt, sizeofInt),
		Tag:      tag,
		Unsigned: unsigned,
		Values:   values,
	}
	e.BySymbol = buildBySymbolIndex(len(values), func(i int) *symbol.Symbol { return values[i].Name })

	byValue := make([]int, len(values))
	for i := range byValue {
		byValue[i] = i
	}
	sort.Slice(byValue, func(a, b int) bool { return values[byValue[a]].Value < values[byValue[b]].Value })
	e.ByValue = byValue
	return e, nil
}

func tagName(tag *symbol.Symbol) string {
	if tag == nil {
		return "<anonymous>"
	}
	return tag.Name()
}

// LookupMemberBySymbol binary-searches a struct's by-symbol index.
func (t *StructT) LookupMemberBySymbol(name *symbol.Symbol) (*Member, bool) {
	i := sort.Search(len(t.BySymbol), func(i int) bool {
		return !symbolLess(t.Members[t.BySymbol[i]].Name, name)
	})
	if i < len(t.BySymbol) && t.Members[t.BySymbol[i]].Name == name {
		return &t.Members[t.BySymbol[i]], true
	}
	return nil, false
}

// LookupBranchBySymbol binary-searches a union's by-symbol index.
func (t *UnionT) LookupBranchBySymbol(name *symbol.Symbol) (*Member, bool) {
	i := sort.Search(len(t.BySymbol), func(i int) bool {
		return !symbolLess(t.Branches[t.BySymbol[i]].Name, name)
	})
	if i < len(t.BySymbol) && t.Branches[t.BySymbol[i]].Name == name {
		return &t.Branches[t.BySymbol[i]], true
	}
	return nil, false
}

// LookupValueBySymbol binary-searches an enum's by-symbol index.
func (t *EnumT) LookupValueBySymbol(name *symbol.Symbol) (*EnumValue, bool) {
	i := sort.Search(len(t.BySymbol), func(i int) bool {
		return !symbolLess(t.Values[t.BySymbol[i]].Name, name)
	})
	if i < len(t.BySymbol) && t.Values[t.BySymbol[i]].Name == name {
		return &t.Values[t.BySymbol[i]], true
	}
	return nil, false
}

// EnumRendering is the nested, JSON-renderable projection of a value
// against an enum's member table, mirroring diag.Serializable — the core
// does not serialize itself, but provides this projection so an external
// collaborator (the JSON diagnostic dumper, §1) doesn't need to reach
// into BySymbol/ByValue. A mapped value renders as its bare member name;
// an unmapped value renders as a two-element [tag, value] array, per §8
// scenario 5 (enum Color{RED=0,GREEN=1}: RenderValue(1) -> "GREEN",
// RenderValue(7) -> ["Color",7]).
type EnumRendering struct {
	Tag   string
	Name  string
	Value int64
	Named bool
}

// MarshalJSON implements the two-shape rendering described above.
func (r EnumRendering) MarshalJSON() ([]byte, error) {
	if r.Named {
		return json.Marshal(r.Name)
	}
	return json.Marshal([2]any{r.Tag, r.Value})
}

// RenderValue projects v against t's member table for external
// rendering.
func (t *EnumT) RenderValue(v int64) EnumRendering {
	tag := "<anonymous>"
	if t.Tag != nil {
		tag = t.Tag.Name()
	}
	if ev, ok := t.LookupValueByValue(v); ok {
		return EnumRendering{Tag: tag, Name: ev.Name.Name(), Value: v, Named: true}
	}
	return EnumRendering{Tag: tag, Value: v}
}

// LookupValueByValue binary-searches an enum's by-value index.
func (t *EnumT) LookupValueByValue(v int64) (*EnumValue, bool) {
	i := sort.Search(len(t.ByValue), func(i int) bool {
		return t.Values[t.ByValue[i]].Value >= v
	})
	if i < len(t.ByValue) && t.Values[t.ByValue[i]].Value == v {
		return &t.Values[t.ByValue[i]], true
	}
	return nil, false
}
