// Package namespace implements §4.8's lexically scoped lookup: a chain of
// scopes holding ordinary identifiers (typedefs, enum constants, globals,
// locals) and a separate per-scope tag table for struct/union/enum names.
// It mirrors the teacher's hashmap.go chaining design (see
// internal/symbol.Space) but keyed by *symbol.Symbol identity rather than
// by string, using github.com/dolthub/maphash for the table's hash
// function — unlike the Symbol interner, these tables carry no
// cross-run-reproducibility requirement, so a randomly seeded hasher is
// the right tool (see internal/symbol/hash.go's doc comment for the
// contrasting case).
package namespace

import (
	"github.com/xyproto/cc11/diag"
	"github.com/xyproto/cc11/diagutil"
	"github.com/xyproto/cc11/internal/symbol"
	"github.com/xyproto/cc11/target"
	"github.com/xyproto/cc11/types"
)

// Entry is whatever an ordinary identifier resolves to: a type (for a
// typedef name), a value type plus constant (for an enum constant — kept
// as a bare Type here since the constant itself belongs to the caller's
// declaration record), or a declared object/function type.
type Entry struct {
	Type        types.Type
	IsTypedef   bool
	IsEnumConst bool
	EnumValue   int64
}

// Scope is one lexical scope: an ordinary-identifier table, a tag table,
// and a link to the enclosing scope.
type Scope struct {
	parent *Scope
	ids    *idTable
	tags   *tagTable
}

// Builtins holds the canonical handles populated into the root scope by
// NewGlobal, reused by the accessor methods below so every reference to
// (say) "the" signed 32-bit int shares one Type instance.
type Builtins struct {
	Int8, Int16, Int32, Int64     *types.IntT
	UInt8, UInt16, UInt32, UInt64 *types.IntT
	Bool                          *types.BoolT
	Float, Double, LongDouble     *types.FloatT

	ComplexFloat, ComplexDouble, ComplexLongDouble       *types.FloatT
	ImaginaryFloat, ImaginaryDouble, ImaginaryLongDouble *types.FloatT

	Void *types.VoidT
}

// Global is the root namespace for one compilation unit: the built-in
// handles, the target profile they were built from, and the symbol space
// names are assigned in.
type Global struct {
	Root     *Scope
	Profile  *target.Profile
	Builtins Builtins
	symbols  *symbol.Space
}

// NewGlobal builds the root namespace for prof, populating the built-in
// scalar and float handles into syms (the "owning symbol space" of §4.8).
func NewGlobal(prof *target.Profile, syms *symbol.Space) *Global {
	diagutil.Logf("namespace: building root scope (sizeof(int)=%d sizeof(pointer)=%d)\n", prof.SizeofInt, prof.SizeofPointer)
	g := &Global{
		Root:    newScope(nil),
		Profile: prof,
		symbols: syms,
	}
	g.Builtins = Builtins{
		Int8:   types.NewInt(1, false),
		Int16:  types.NewInt(2, false),
		Int32:  types.NewInt(4, false),
		Int64:  types.NewInt(8, false),
		UInt8:  types.NewInt(1, true),
		UInt16: types.NewInt(2, true),
		UInt32: types.NewInt(4, true),
		UInt64: types.NewInt(8, true),
		Bool:   types.NewBoolWidth(prof.SizeofBool),

		Float:      types.NewFloat(types.Float, types.Real, prof.SizeofFloat),
		Double:     types.NewFloat(types.Double, types.Real, prof.SizeofDouble),
		LongDouble: types.NewFloat(types.LongDouble, types.Real, prof.SizeofLongDouble),

		ComplexFloat:      types.NewFloat(types.Float, types.Complex, prof.SizeofFloat),
		ComplexDouble:     types.NewFloat(types.Double, types.Complex, prof.SizeofDouble),
		ComplexLongDouble: types.NewFloat(types.LongDouble, types.Complex, prof.SizeofLongDouble),

		ImaginaryFloat:      types.NewFloat(types.Float, types.Imaginary, prof.SizeofFloat),
		ImaginaryDouble:     types.NewFloat(types.Double, types.Imaginary, prof.SizeofDouble),
		ImaginaryLongDouble: types.NewFloat(types.LongDouble, types.Imaginary, prof.SizeofLongDouble),

		Void: types.NewVoid(),
	}

	names := map[string]types.Type{
		"int8": g.Builtins.Int8, "int16": g.Builtins.Int16, "int32": g.Builtins.Int32, "int64": g.Builtins.Int64,
		"uint8": g.Builtins.UInt8, "uint16": g.Builtins.UInt16, "uint32": g.Builtins.UInt32, "uint64": g.Builtins.UInt64,
		"bool": g.Builtins.Bool,
		"float": g.Builtins.Float, "double": g.Builtins.Double, "long double": g.Builtins.LongDouble,
		"void": g.Builtins.Void,
	}
	for name, t := range names {
		g.Root.ids.set(syms.Force(name), Entry{Type: t, IsTypedef: true})
	}
	return g
}

func newScope(parent *Scope) *Scope {
	return &Scope{
		parent: parent,
		ids:    newIDTable(),
		tags:   newTagTable(),
	}
}

// NewScope allocates a fresh scope chained to parent.
func NewScope(parent *Scope) *Scope { return newScope(parent) }

// Lookup walks the scope chain outward from s looking for sym among
// ordinary identifiers.
func (s *Scope) Lookup(sym *symbol.Symbol) (Entry, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		if e, ok := sc.ids.get(sym); ok {
			return e, ok
		}
	}
	return Entry{}, false
}

// LookupLocal checks only s's own table, not its ancestors — used to
// detect a same-scope redeclaration.
func (s *Scope) LookupLocal(sym *symbol.Symbol) (Entry, bool) {
	return s.ids.get(sym)
}

// Declare installs sym into s's ordinary-identifier table.
func (s *Scope) Declare(sym *symbol.Symbol, e Entry) { s.ids.set(sym, e) }

// LookupTag walks the scope chain looking for a struct/union/enum tag.
func (s *Scope) LookupTag(sym *symbol.Symbol) (types.Type, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		if t, ok := sc.tags.get(sym); ok {
			return t, ok
		}
	}
	return nil, false
}

// AddByTag installs a struct/union/enum into s's own tag table. A second
// occurrence of the same tag either completes a previously incomplete
// entry of the same kind (returned unchanged, caller completes it in
// place via types.CompleteStruct/CompleteUnion) or is an error if the
// kinds differ or the existing entry is already complete.
func (s *Scope) AddByTag(tag *symbol.Symbol, t types.Type) (types.Type, *diag.Error) {
	existing, ok := s.tags.get(tag)
	if !ok {
		diagutil.Logf("namespace: installing tag %q\n", tag.Name())
		s.tags.set(tag, t)
		return t, nil
	}
	if sameAggregateKind(existing, t) && isIncomplete(existing) {
		diagutil.Logf("namespace: tag %q completes a forward declaration\n", tag.Name())
		return existing, nil
	}
	return nil, diag.New(diag.DuplicateTag, "tag %q redeclared with a different kind", tag.Name())
}

func sameAggregateKind(a, b types.Type) bool {
	switch a.(type) {
	case *types.StructT:
		_, ok := b.(*types.StructT)
		return ok
	case *types.UnionT:
		_, ok := b.(*types.UnionT)
		return ok
	case *types.EnumT:
		_, ok := b.(*types.EnumT)
		return ok
	}
	return false
}

func isIncomplete(t types.Type) bool {
	switch v := t.(type) {
	case *types.StructT:
		return v.Incomplete
	case *types.UnionT:
		return v.Incomplete
	}
	return false
}

// --- Built-in accessors (§4.8) ---

// GetIntType returns the canonical signed int handle for the target's
// sizeof(int).
func (g *Global) GetIntType() *types.IntT {
	switch g.Profile.SizeofInt {
	case 8:
		return g.Builtins.Int64
	default:
		return g.Builtins.Int32
	}
}

// GetSizeType returns the unsigned integer handle matching pointer width
// (size_t).
func (g *Global) GetSizeType() *types.IntT {
	switch g.Profile.SizeofPointer {
	case 4:
		return g.Builtins.UInt32
	default:
		return g.Builtins.UInt64
	}
}

// GetCharType returns the signed or unsigned 8-bit handle per the
// target's plain-char signedness.
func (g *Global) GetCharType() *types.IntT {
	if g.Profile.IsCharSigned {
		return g.Builtins.Int8
	}
	return g.Builtins.UInt8
}

// GetPtrDiffType returns the signed integer handle matching pointer
// width (ptrdiff_t).
func (g *Global) GetPtrDiffType() *types.IntT {
	switch g.Profile.SizeofPointer {
	case 4:
		return g.Builtins.Int32
	default:
		return g.Builtins.Int64
	}
}

// WideCharType returns the integer handle for wchar_t, whose width and
// signedness vary by ABI (see target.Profile.SizeofWChar).
func (g *Global) WideCharType() *types.IntT {
	switch g.Profile.SizeofWChar {
	case 2:
		return g.Builtins.UInt16
	default:
		return g.Builtins.Int32
	}
}
