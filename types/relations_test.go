package types

import (
	"testing"

	"github.com/xyproto/cc11/target"
)

func TestDequalifyIdempotent(t *testing.T) {
	base := NewInt(4, false)
	q, err := NewQualified(base, Const)
	if err != nil {
		t.Fatalf("NewQualified: %v", err)
	}
	once := Dequalify(q)
	twice := Dequalify(once)
	if once != twice {
		t.Fatal("Dequalify must be idempotent")
	}
	if once != Type(base) {
		t.Fatal("Dequalify(const int) must return the unqualified int")
	}
}

func TestCompatibleStructurally(t *testing.T) {
	a := NewInt(4, false)
	b := NewInt(4, false)
	if !Compatible(a, b) {
		t.Fatal("two distinct signed-32 IntT instances should be compatible")
	}
	c := NewInt(4, true)
	if Compatible(a, c) {
		t.Fatal("signed and unsigned int should not be compatible")
	}
}

func TestCompatiblePointerRecurses(t *testing.T) {
	p1 := NewPointer(NewInt(4, false), 8)
	p2 := NewPointer(NewInt(4, false), 8)
	if !Compatible(p1, p2) {
		t.Fatal("pointers to compatible targets should be compatible")
	}
	p3 := NewPointer(NewInt(8, false), 8)
	if Compatible(p1, p3) {
		t.Fatal("pointers to incompatible targets should not be compatible")
	}
}

func TestUsualArithmeticConversionSameSignedness(t *testing.T) {
	prof := target.LP64()
	a := NewInt(4, false)
	b := NewInt(8, false)
	r, err := UsualArithmeticConversion(a, b, prof)
	if err != nil {
		t.Fatalf("UAC: %v", err)
	}
	if r.(*IntT).Width != 8 {
		t.Fatalf("UAC(int32, int64) width = %d, want 8", r.(*IntT).Width)
	}
	r2, err := UsualArithmeticConversion(b, a, prof)
	if err != nil {
		t.Fatalf("UAC: %v", err)
	}
	if r2.(*IntT).Width != r.(*IntT).Width {
		t.Fatal("UAC must be symmetric in operand order")
	}
}

func TestUsualArithmeticConversionMixedSign(t *testing.T) {
	prof := target.LP64()
	signed := NewInt(4, false)
	unsigned := NewInt(4, true)
	r, err := UsualArithmeticConversion(signed, unsigned, prof)
	if err != nil {
		t.Fatalf("UAC: %v", err)
	}
	if !r.(*IntT).Unsigned {
		t.Fatal("same-rank signed/unsigned UAC must yield unsigned")
	}
}

func TestUsualArithmeticConversionFloatDominates(t *testing.T) {
	prof := target.LP64()
	i := NewInt(4, false)
	f := NewFloat(Double, Real, prof.SizeofDouble)
	r, err := UsualArithmeticConversion(i, f, prof)
	if err != nil {
		t.Fatalf("UAC: %v", err)
	}
	ft, ok := r.(*FloatT)
	if !ok || ft.Width != Double {
		t.Fatalf("UAC(int, double) must yield double, got %T %v", r, r)
	}
}

func TestIntegerPromoteBool(t *testing.T) {
	prof := target.LP64()
	b := NewBoolWidth(prof.SizeofBool)
	p := IntegerPromote(b, prof)
	it, ok := p.(*IntT)
	if !ok || it.Width != prof.SizeofInt || it.Unsigned {
		t.Fatalf("IntegerPromote(_Bool) = %v, want signed int", p)
	}
}

func TestExtractBitfieldSignExtends(t *testing.T) {
	bf := &Bitfield{BitOffset: 4, BitLength: 4}
	// Storage 0b1111_1111_0000: field at bits [4:8) = 0b1111 = -1 when signed.
	storage := uint64(0xFF0)
	v := ExtractBitfield(storage, bf, true)
	if v != -1 {
		t.Fatalf("signed 4-bit field 0b1111 should sign-extend to -1, got %d", v)
	}
	uv := ExtractBitfield(storage, bf, false)
	if uv != 0xF {
		t.Fatalf("unsigned 4-bit field should read 15, got %d", uv)
	}
}

func TestIsPredicates(t *testing.T) {
	prof := target.LP64()
	i := NewInt(4, false)
	f := NewFloat(Float, Real, prof.SizeofFloat)
	p := NewPointer(i, 8)
	if !IsScalar(i) || !IsScalar(f) || !IsScalar(p) {
		t.Fatal("int, float and pointer are all scalar")
	}
	if IsInteger(f) || !IsInteger(i) {
		t.Fatal("IsInteger misclassified")
	}
	if !IsPointer(p) || IsPointer(i) {
		t.Fatal("IsPointer misclassified")
	}
	if PointerDereference(p) != Type(i) {
		t.Fatal("PointerDereference should return the pointee")
	}
}
