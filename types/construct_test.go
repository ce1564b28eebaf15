package types

import (
	"testing"

	"github.com/xyproto/cc11/diag"
	"github.com/xyproto/cc11/internal/symbol"
	"github.com/xyproto/cc11/target"
)

func sym(sp *symbol.Space, name string) *symbol.Symbol { return sp.Force(name) }

func TestNewStructLayoutBasic(t *testing.T) {
	sp := symbol.NewSpace()
	prof := target.LP64()
	members := []Member{
		{Name: sym(sp, "a"), Type: NewInt(4, false)},
		{Name: sym(sp, "b"), Type: NewInt(8, false)},
	}
	st, err := NewStruct(sym(sp, "point"), members, prof)
	if err != nil {
		t.Fatalf("NewStruct: %v", err)
	}
	if st.Members[0].Offset != 0 {
		t.Fatalf("field a offset = %d, want 0", st.Members[0].Offset)
	}
	if st.Members[1].Offset != 8 {
		t.Fatalf("field b offset = %d, want 8 (padded to 8-byte align)", st.Members[1].Offset)
	}
	if st.Sizeof()%st.Alignof() != 0 {
		t.Fatalf("struct sizeof %d not a multiple of alignof %d", st.Sizeof(), st.Alignof())
	}
	if st.Alignof()&(st.Alignof()-1) != 0 {
		t.Fatalf("alignof %d is not a power of two", st.Alignof())
	}
}

func TestNewStructDuplicateMember(t *testing.T) {
	sp := symbol.NewSpace()
	prof := target.LP64()
	dup := sym(sp, "x")
	members := []Member{
		{Name: dup, Type: NewInt(4, false)},
		{Name: dup, Type: NewInt(4, false)},
	}
	if _, err := NewStruct(sym(sp, "s"), members, prof); err == nil {
		t.Fatal("expected duplicate-member error, got nil")
	} else if err.Kind() != diag.StructDuplicates {
		t.Fatalf("wrong error kind: %v", err.Kind())
	}
}

func TestNewStructEmpty(t *testing.T) {
	sp := symbol.NewSpace()
	prof := target.LP64()
	if _, err := NewStruct(sym(sp, "e"), nil, prof); err == nil {
		t.Fatal("expected empty-struct error, got nil")
	}
}

func TestBitfieldPacking(t *testing.T) {
	sp := symbol.NewSpace()
	prof := target.LP64()
	u32 := NewInt(4, true)
	members := []Member{
		{Name: sym(sp, "a"), Type: u32, Bitfield: &Bitfield{BitLength: 3}},
		{Name: sym(sp, "b"), Type: u32, Bitfield: &Bitfield{BitLength: 3}},
		{Name: sym(sp, "c"), Type: u32, Bitfield: &Bitfield{BitLength: 30}},
	}
	st, err := NewStruct(sym(sp, "bits"), members, prof)
	if err != nil {
		t.Fatalf("NewStruct: %v", err)
	}
	if st.Members[0].Bitfield.BitOffset != 0 || st.Members[1].Bitfield.BitOffset != 3 {
		t.Fatalf("first two bit-fields should pack into the same storage unit, got %+v %+v",
			st.Members[0].Bitfield, st.Members[1].Bitfield)
	}
	if st.Members[0].Offset != st.Members[1].Offset {
		t.Fatalf("packed bit-fields must share a storage offset")
	}
	if st.Members[2].Offset == st.Members[0].Offset {
		t.Fatalf("field c (30 bits) cannot fit in the remaining 26 bits of the first unit, must start a new one")
	}
}

func TestUnionSizeIsMax(t *testing.T) {
	sp := symbol.NewSpace()
	prof := target.LP64()
	branches := []Member{
		{Name: sym(sp, "i"), Type: NewInt(4, false)},
		{Name: sym(sp, "d"), Type: NewFloat(Double, Real, prof.SizeofDouble)},
	}
	u, err := NewUnion(sym(sp, "u"), branches, prof)
	if err != nil {
		t.Fatalf("NewUnion: %v", err)
	}
	if u.Sizeof() != 8 {
		t.Fatalf("union sizeof = %d, want 8 (max branch)", u.Sizeof())
	}
}

func TestEnumLookupSymmetry(t *testing.T) {
	sp := symbol.NewSpace()
	values := []EnumValue{
		{Name: sym(sp, "RED"), Value: 0},
		{Name: sym(sp, "GREEN"), Value: 1},
		{Name: sym(sp, "BLUE"), Value: 2},
	}
	e, err := NewEnum(sym(sp, "color"), values, false, 4)
	if err != nil {
		t.Fatalf("NewEnum: %v", err)
	}
	for _, v := range values {
		found, ok := e.LookupValueBySymbol(v.Name)
		if !ok || found.Value != v.Value {
			t.Fatalf("LookupValueBySymbol(%s) failed", v.Name.Name())
		}
		byVal, ok := e.LookupValueByValue(v.Value)
		if !ok || byVal.Name != v.Name {
			t.Fatalf("LookupValueByValue(%d) failed", v.Value)
		}
	}
	if _, ok := e.LookupValueByValue(99); ok {
		t.Fatal("LookupValueByValue(99) should miss")
	}
}

func TestEnumRenderValue(t *testing.T) {
	sp := symbol.NewSpace()
	values := []EnumValue{
		{Name: sym(sp, "RED"), Value: 0},
		{Name: sym(sp, "GREEN"), Value: 1},
	}
	e, err := NewEnum(sym(sp, "Color"), values, false, 4)
	if err != nil {
		t.Fatalf("NewEnum: %v", err)
	}

	mapped := e.RenderValue(1)
	if !mapped.Named || mapped.Name != "GREEN" {
		t.Fatalf("RenderValue(1) = %+v, want Named GREEN", mapped)
	}
	gotJSON, err := mapped.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if string(gotJSON) != `"GREEN"` {
		t.Fatalf("MarshalJSON(RenderValue(1)) = %s, want \"GREEN\"", gotJSON)
	}

	unmapped := e.RenderValue(7)
	if unmapped.Named {
		t.Fatalf("RenderValue(7) = %+v, want unnamed", unmapped)
	}
	gotJSON, err = unmapped.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if string(gotJSON) != `["Color",7]` {
		t.Fatalf("MarshalJSON(RenderValue(7)) = %s, want [\"Color\",7]", gotJSON)
	}
}

func TestIncompleteStructCompletion(t *testing.T) {
	sp := symbol.NewSpace()
	prof := target.LP64()
	tag := sym(sp, "node")
	s := NewIncompleteStruct(tag)
	if !s.Incomplete {
		t.Fatal("fresh forward declaration should be incomplete")
	}
	members := []Member{{Name: sym(sp, "val"), Type: NewInt(4, false)}}
	if err := CompleteStruct(s, members, prof); err != nil {
		t.Fatalf("CompleteStruct: %v", err)
	}
	if s.Incomplete {
		t.Fatal("struct should no longer be incomplete after CompleteStruct")
	}
	if s.Sizeof() != 4 {
		t.Fatalf("completed struct sizeof = %d, want 4", s.Sizeof())
	}
}

func TestNewQualifiedFlattensNested(t *testing.T) {
	inner := NewInt(4, false)
	q1, err := NewQualified(inner, Const)
	if err != nil {
		t.Fatalf("NewQualified(const): %v", err)
	}
	q2, err := NewQualified(q1, Volatile)
	if err != nil {
		t.Fatalf("NewQualified(volatile): %v", err)
	}
	qual, ok := q2.(*QualifiedT)
	if !ok {
		t.Fatalf("expected *QualifiedT, got %T", q2)
	}
	if _, nested := qual.Underlying.(*QualifiedT); nested {
		t.Fatal("NewQualified must flatten nested Qualified, not nest them")
	}
	if !qual.Quals.Has(Const) || !qual.Quals.Has(Volatile) {
		t.Fatal("flattened Qualified must carry both qualifiers")
	}
}

func TestNewQualifiedZeroReturnsUnderlying(t *testing.T) {
	inner := NewInt(4, false)
	out, err := NewQualified(inner, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != Type(inner) {
		t.Fatal("NewQualified with zero quals must return the underlying type unchanged")
	}
}

func TestNewQualifiedRestrictRejectsNonPointer(t *testing.T) {
	if _, err := NewQualified(NewInt(4, false), Restrict); err == nil {
		t.Fatal("expected error qualifying a non-pointer with restrict")
	}
}

func TestNewQualifiedAtomicRejectsArray(t *testing.T) {
	arr := NewArray(NewInt(4, false), 10)
	if _, err := NewQualified(arr, Atomic); err == nil {
		t.Fatal("expected error qualifying an array with _Atomic")
	}
}
