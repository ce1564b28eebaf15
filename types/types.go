// Package types implements the C11 type system: the tagged-variant tree of
// §3's data model, built as a Go interface with one concrete struct per
// kind — the same "sealed interface + marker method" shape the teacher
// uses for its AST (ast.go's Expression/Statement interfaces), generalized
// here from expression nodes to type nodes.
package types

import (
	"strconv"

	"github.com/xyproto/cc11/internal/symbol"
)

// Kind discriminates the variants of Type.
type Kind int

const (
	KindVoid Kind = iota
	KindBool
	KindInt
	KindFloat
	KindArray
	KindVLA
	KindStruct
	KindUnion
	KindEnum
	KindPointer
	KindTypedef
	KindQualified
	KindFunction
)

func (k Kind) String() string {
	switch k {
	case KindVoid:
		return "void"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindArray:
		return "array"
	case KindVLA:
		return "vla"
	case KindStruct:
		return "struct"
	case KindUnion:
		return "union"
	case KindEnum:
		return "enum"
	case KindPointer:
		return "pointer"
	case KindTypedef:
		return "typedef"
	case KindQualified:
		return "qualified"
	case KindFunction:
		return "function"
	}
	return "unknown"
}

// FloatWidth is one of the three real float widths named in §3.
type FloatWidth int

const (
	Float FloatWidth = iota
	Double
	LongDouble
)

// FloatDomain distinguishes real, complex and imaginary float variants.
type FloatDomain int

const (
	Real FloatDomain = iota
	Complex
	Imaginary
)

// Qualifiers is a bitmask over the four C11 type qualifiers.
type Qualifiers uint8

const (
	Const Qualifiers = 1 << iota
	Restrict
	Volatile
	Atomic
)

func (q Qualifiers) Has(f Qualifiers) bool { return q&f != 0 }

// Type is implemented by every kind in the data model's tagged variant.
// Every Type carries a refcount (base) mirroring the C original's
// reference-counted lifetime, even though Go's GC makes it advisory rather
// than load-bearing: constructors that wrap another Type take a reference
// on it, and destructors (not modeled here — statement/expression trees own
// their Types only through Go's ordinary garbage collector) would drop it.
type Type interface {
	Kind() Kind
	Sizeof() int
	Alignof() int
	String() string
	Ref() Type
	Unref()
	typeNode()
}

// base holds the fields common to every Type per §3: sizeof, alignof, a
// refcount, and a lazily computed, memoized printable string (computed on
// first String() call, not eagerly at construction — see SPEC_FULL.md's
// "pointer-keyed side table for pretty-printing" note, simplified here to
// a plain field since the core is single-threaded).
type base struct {
	sizeofBytes  int
	alignofBytes int
	refs         int
	cached       string
}

func (b *base) Sizeof() int  { return b.sizeofBytes }
func (b *base) Alignof() int { return b.alignofBytes }
func (b *base) RefCount() int { return b.refs }

// --- Void ---

type VoidT struct{ base }

func NewVoid() *VoidT { return &VoidT{} }
func (t *VoidT) Kind() Kind     { return KindVoid }
func (t *VoidT) String() string { return "void" }
func (t *VoidT) Ref() Type      { t.refs++; return t }
func (t *VoidT) Unref()         { t.refs-- }
func (*VoidT) typeNode()        {}

// --- Bool ---

type BoolT struct{ base }

// NewBoolWidth constructs the single Bool type for a target's sizeof(bool).
func NewBoolWidth(sizeofBool int) *BoolT {
	return &BoolT{base: base{sizeofBytes: sizeofBool, alignofBytes: sizeofBool}}
}
func (t *BoolT) Kind() Kind     { return KindBool }
func (t *BoolT) String() string { return "_Bool" }
func (t *BoolT) Ref() Type      { t.refs++; return t }
func (t *BoolT) Unref()         { t.refs-- }
func (*BoolT) typeNode()        {}

// --- Int ---

type IntT struct {
	base
	Width    int // bytes: 1/2/4/8
	Unsigned bool
}

func NewInt(width int, unsigned bool) *IntT {
	return &IntT{base: base{sizeofBytes: width, alignofBytes: width}, Width: width, Unsigned: unsigned}
}

func (t *IntT) Kind() Kind { return KindInt }
func (t *IntT) String() string {
	if t.cached == "" {
		sign := "signed"
		if t.Unsigned {
			sign = "unsigned"
		}
		t.cached = sign + " int" + strconv.Itoa(t.Width*8)
	}
	return t.cached
}
func (t *IntT) Ref() Type { t.refs++; return t }
func (t *IntT) Unref()    { t.refs-- }
func (*IntT) typeNode()   {}

// rank orders integer widths for the usual arithmetic conversions: wider
// sizeof always outranks narrower sizeof (true for every target profile
// this module models — no two distinct integer kinds share a width).
func (t *IntT) rank() int { return t.Width }

// --- Float ---

type FloatT struct {
	base
	Width  FloatWidth
	Domain FloatDomain
}

func NewFloat(width FloatWidth, domain FloatDomain, realSize int) *FloatT {
	sz := realSize
	switch domain {
	case Complex:
		sz *= 2
	case Imaginary:
		sz = realSize
	}
	return &FloatT{base: base{sizeofBytes: sz, alignofBytes: realSize}, Width: width, Domain: domain}
}

func (t *FloatT) Kind() Kind { return KindFloat }
func (t *FloatT) String() string {
	if t.cached == "" {
		var w string
		switch t.Width {
		case Float:
			w = "float"
		case Double:
			w = "double"
		case LongDouble:
			w = "long double"
		}
		switch t.Domain {
		case Complex:
			w = "_Complex " + w
		case Imaginary:
			w = "_Imaginary " + w
		}
		t.cached = w
	}
	return t.cached
}
func (t *FloatT) Ref() Type { t.refs++; return t }
func (t *FloatT) Unref()    { t.refs-- }
func (*FloatT) typeNode()   {}

// --- Array / VLA ---

type ArrayT struct {
	base
	Elem  Type
	Count int // -1 = unsized
}

func NewArray(elem Type, count int) *ArrayT {
	elem.Ref()
	a := &ArrayT{Elem: elem, Count: count}
	a.alignofBytes = elem.Alignof()
	if count >= 0 {
		a.sizeofBytes = count * elem.Sizeof()
	}
	return a
}

func (t *ArrayT) Kind() Kind { return KindArray }
func (t *ArrayT) String() string {
	if t.Count < 0 {
		return t.Elem.String() + "[]"
	}
	return t.Elem.String() + "[" + strconv.Itoa(t.Count) + "]"
}
func (t *ArrayT) Ref() Type { t.refs++; return t }
func (t *ArrayT) Unref()    { t.refs--; if t.refs <= 0 { t.Elem.Unref() } }
func (*ArrayT) typeNode()   {}

type VLAT struct {
	base
	Elem Type
}

func NewVLA(elem Type) *VLAT {
	elem.Ref()
	return &VLAT{base: base{alignofBytes: elem.Alignof()}, Elem: elem}
}

func (t *VLAT) Kind() Kind      { return KindVLA }
func (t *VLAT) String() string  { return t.Elem.String() + "[*]" }
func (t *VLAT) Ref() Type       { t.refs++; return t }
func (t *VLAT) Unref()          { t.refs--; if t.refs <= 0 { t.Elem.Unref() } }
func (*VLAT) typeNode()         {}

// --- Pointer ---

type PointerT struct {
	base
	Target Type
}

func NewPointer(target Type, pointerWidth int) *PointerT {
	target.Ref()
	return &PointerT{base: base{sizeofBytes: pointerWidth, alignofBytes: pointerWidth}, Target: target}
}

func (t *PointerT) Kind() Kind     { return KindPointer }
func (t *PointerT) String() string { return t.Target.String() + "*" }
func (t *PointerT) Ref() Type      { t.refs++; return t }
func (t *PointerT) Unref()         { t.refs--; if t.refs <= 0 { t.Target.Unref() } }
func (*PointerT) typeNode()        {}

// --- Typedef ---

type TypedefT struct {
	base
	Name       *symbol.Symbol
	Underlying Type
}

func NewTypedef(name *symbol.Symbol, underlying Type) *TypedefT {
	underlying.Ref()
	return &TypedefT{
		base:       base{sizeofBytes: underlying.Sizeof(), alignofBytes: underlying.Alignof()},
		Name:       name,
		Underlying: underlying,
	}
}

func (t *TypedefT) Kind() Kind     { return KindTypedef }
func (t *TypedefT) String() string { return t.Name.Name() }
func (t *TypedefT) Ref() Type      { t.refs++; return t }
func (t *TypedefT) Unref()         { t.refs--; if t.refs <= 0 { t.Underlying.Unref() } }
func (*TypedefT) typeNode()        {}

// --- Qualified ---

type QualifiedT struct {
	base
	Underlying Type
	Quals      Qualifiers
}

func (t *QualifiedT) Kind() Kind { return KindQualified }
func (t *QualifiedT) String() string {
	if t.cached == "" {
		s := ""
		if t.Quals.Has(Const) {
			s += "const "
		}
		if t.Quals.Has(Volatile) {
			s += "volatile "
		}
		if t.Quals.Has(Restrict) {
			s += "restrict "
		}
		if t.Quals.Has(Atomic) {
			s += "_Atomic "
		}
		t.cached = s + t.Underlying.String()
	}
	return t.cached
}
func (t *QualifiedT) Ref() Type { t.refs++; return t }
func (t *QualifiedT) Unref()    { t.refs--; if t.refs <= 0 { t.Underlying.Unref() } }
func (*QualifiedT) typeNode()   {}

// --- Function ---

type Param struct {
	Name *symbol.Symbol // nil for an unnamed parameter
	Type Type
}

type FunctionT struct {
	base
	Return  Type
	Params  []Param
	Varargs bool
}

func (t *FunctionT) Kind() Kind { return KindFunction }
func (t *FunctionT) String() string {
	s := t.Return.String() + "("
	for i, p := range t.Params {
		if i > 0 {
			s += ", "
		}
		s += p.Type.String()
	}
	if t.Varargs {
		if len(t.Params) > 0 {
			s += ", "
		}
		s += "..."
	}
	return s + ")"
}
func (t *FunctionT) Ref() Type { t.refs++; return t }
func (t *FunctionT) Unref() {
	t.refs--
	if t.refs <= 0 {
		t.Return.Unref()
		for _, p := range t.Params {
			p.Type.Unref()
		}
	}
}
func (*FunctionT) typeNode() {}

// --- Struct / Union ---

// Bitfield records a member's packing within the storage unit its
// declared base type provides.
type Bitfield struct {
	BitOffset int
	BitLength int
}

// Member is one struct field or union branch.
type Member struct {
	Name *symbol.Symbol // nil for an anonymous bit-field padding slot
	Type Type
	Offset int // byte offset from the start of the aggregate
	Bitfield *Bitfield // non-nil for a bit-field member

	// AlignOverride is the supplemented _Alignas extension (SPEC_FULL.md):
	// when nonzero, it widens (never narrows) this member's natural
	// alignment during struct layout.
	AlignOverride int
}

type StructT struct {
	base
	Tag        *symbol.Symbol // nil for an anonymous struct
	Members    []Member
	BySymbol   []int // indices into Members, sorted by Member.Name identity
	Incomplete bool
}

func (t *StructT) Kind() Kind { return KindStruct }
func (t *StructT) String() string {
	if t.Tag != nil {
		return "struct " + t.Tag.Name()
	}
	return "struct <anonymous>"
}
func (t *StructT) Ref() Type { t.refs++; return t }
func (t *StructT) Unref() {
	t.refs--
	if t.refs <= 0 {
		for _, m := range t.Members {
			m.Type.Unref()
		}
	}
}
func (*StructT) typeNode() {}

type UnionT struct {
	base
	Tag        *symbol.Symbol
	Branches   []Member
	BySymbol   []int
	Incomplete bool
}

func (t *UnionT) Kind() Kind { return KindUnion }
func (t *UnionT) String() string {
	if t.Tag != nil {
		return "union " + t.Tag.Name()
	}
	return "union <anonymous>"
}
func (t *UnionT) Ref() Type { t.refs++; return t }
func (t *UnionT) Unref() {
	t.refs--
	if t.refs <= 0 {
		for _, m := range t.Branches {
			m.Type.Unref()
		}
	}
}
func (*UnionT) typeNode() {}

// --- Enum ---

type EnumValue struct {
	Name  *symbol.Symbol
	Value int64
}

type EnumT struct {
	base
	Tag      *symbol.Symbol
	Unsigned bool
	Values   []EnumValue
	BySymbol []int // sorted by Values[i].Name identity
	ByValue  []int // sorted by Values[i].Value
}

func (t *EnumT) Kind() Kind { return KindEnum }
func (t *EnumT) String() string {
	if t.Tag != nil {
		return "enum " + t.Tag.Name()
	}
	return "enum <anonymous>"
}
func (t *EnumT) Ref() Type { t.refs++; return t }
func (t *EnumT) Unref()    { t.refs-- }
func (*EnumT) typeNode()   {}
