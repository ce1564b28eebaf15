package types

import (
	"github.com/xyproto/cc11/diag"
	"github.com/xyproto/cc11/diagutil"
	"github.com/xyproto/cc11/target"
)

// Dequalify strips outer Qualified and Typedef wrappers, repeatedly, until
// neither remains.
func Dequalify(t Type) Type {
	for {
		switch v := t.(type) {
		case *QualifiedT:
			t = v.Underlying
		case *TypedefT:
			t = v.Underlying
		default:
			return t
		}
	}
}

// GetQualifiers returns t's qualifier mask if it is (or is a typedef chain
// reaching) a Qualified type, or zero otherwise. Unlike Dequalify, this
// does not strip Typedef before checking — a typedef to a qualified type
// carries that type's qualifiers, so Typedef wrappers are traversed too.
func GetQualifiers(t Type) Qualifiers {
	for {
		switch v := t.(type) {
		case *QualifiedT:
			return v.Quals
		case *TypedefT:
			t = v.Underlying
		default:
			return 0
		}
	}
}

// Compatible reports whether a and b denote the same type once dequalified.
// Aggregates (struct/union/enum), tagged or anonymous, compare by identity,
// since the namespace guarantees at most one live Type per tag; every
// other kind compares structurally.
func Compatible(a, b Type) bool {
	da, db := Dequalify(a), Dequalify(b)
	if da == db {
		return true
	}
	if da.Kind() != db.Kind() {
		return false
	}
	switch x := da.(type) {
	case *VoidT, *BoolT:
		return true
	case *IntT:
		y := db.(*IntT)
		return x.Width == y.Width && x.Unsigned == y.Unsigned
	case *FloatT:
		y := db.(*FloatT)
		return x.Width == y.Width && x.Domain == y.Domain
	case *PointerT:
		y := db.(*PointerT)
		return Compatible(x.Target, y.Target)
	case *ArrayT:
		y := db.(*ArrayT)
		if !Compatible(x.Elem, y.Elem) {
			return false
		}
		return x.Count < 0 || y.Count < 0 || x.Count == y.Count
	case *VLAT:
		y := db.(*VLAT)
		return Compatible(x.Elem, y.Elem)
	case *FunctionT:
		y := db.(*FunctionT)
		if !Compatible(x.Return, y.Return) || x.Varargs != y.Varargs || len(x.Params) != len(y.Params) {
			return false
		}
		for i := range x.Params {
			if !Compatible(x.Params[i].Type, y.Params[i].Type) {
				return false
			}
		}
		return true
	case *StructT, *UnionT, *EnumT:
		// Tagged or anonymous aggregates that reach here are distinct
		// Type objects; the namespace dedupes tagged ones, so two
		// different objects of the same tagged kind are incompatible.
		return false
	}
	return false
}

// Composite computes the composite type of two compatible types: the
// qualifier union applied over the structurally more complete of the two
// (SPEC_FULL.md's "composite-type merge across redeclaration" note — dbcc
// prefers the completed side of a forward-declared/defined tag pair).
func Composite(a, b Type) (Type, *diag.Error) {
	if !Compatible(a, b) {
		return nil, diag.New(diag.BadOperatorTypes, "types %s and %s are not compatible", a.String(), b.String())
	}
	qa, qb := GetQualifiers(a), GetQualifiers(b)
	merged := qa | qb

	da, db := Dequalify(a), Dequalify(b)
	base := da
	if moreComplete(db, da) {
		diagutil.Logf("types: composite merge picks %s over %s (more complete)\n", db.String(), da.String())
		base = db
	}
	if merged == 0 {
		return base, nil
	}
	return NewQualified(base, merged)
}

// moreComplete reports whether candidate is strictly more complete than
// current (an incomplete struct/union loses to a completed one with the
// same tag; everything else ties and keeps current).
func moreComplete(candidate, current Type) bool {
	switch c := current.(type) {
	case *StructT:
		if cc, ok := candidate.(*StructT); ok {
			return c.Incomplete && !cc.Incomplete
		}
	case *UnionT:
		if cc, ok := candidate.(*UnionT); ok {
			return c.Incomplete && !cc.Incomplete
		}
	}
	return false
}

// IsScalar: any arithmetic type or pointer.
func IsScalar(t Type) bool { return IsArithmetic(t) || IsPointer(t) }

// IsInteger: bool, any integer kind, or any enum.
func IsInteger(t Type) bool {
	switch Dequalify(t).(type) {
	case *BoolT, *IntT, *EnumT:
		return true
	}
	return false
}

// IsArithmetic: bool, any integer kind, any enum, or any float variant.
func IsArithmetic(t Type) bool {
	if IsInteger(t) {
		return true
	}
	_, ok := Dequalify(t).(*FloatT)
	return ok
}

// IsReal: the three non-complex, non-imaginary float variants, or any
// integer type (integers are always "real" in the arithmetic sense).
func IsReal(t Type) bool {
	if IsInteger(t) {
		return true
	}
	f, ok := Dequalify(t).(*FloatT)
	return ok && f.Domain == Real
}

// IsComplex reports whether t is a _Complex float variant.
func IsComplex(t Type) bool {
	f, ok := Dequalify(t).(*FloatT)
	return ok && f.Domain == Complex
}

// IsUnsigned reports whether t is an unsigned integer type (bool counts as
// unsigned; enums defer to their declared signedness).
func IsUnsigned(t Type) bool {
	switch v := Dequalify(t).(type) {
	case *BoolT:
		return true
	case *IntT:
		return v.Unsigned
	case *EnumT:
		return v.Unsigned
	}
	return false
}

// IsPointer reports whether t is a pointer type.
func IsPointer(t Type) bool {
	_, ok := Dequalify(t).(*PointerT)
	return ok
}

// IsFloatingPoint reports whether t is any of the nine float variants.
func IsFloatingPoint(t Type) bool {
	_, ok := Dequalify(t).(*FloatT)
	return ok
}

// PointerDereference returns the pointee of a pointer type. Callers must
// check IsPointer first; this panics otherwise, mirroring the "undefined
// otherwise" contract in §4.4.
func PointerDereference(t Type) Type {
	return Dequalify(t).(*PointerT).Target
}

// IntegerPromote applies the integer promotions: bool and enum become the
// signed/unsigned int of the target's sizeof(int); an Int narrower than
// sizeof(int) becomes int (signed) unless it cannot represent all of the
// narrower type's values, in which case unsigned int; int and wider are
// unchanged.
func IntegerPromote(t Type, prof *target.Profile) Type {
	d := Dequalify(t)
	switch v := d.(type) {
	case *BoolT:
		return NewInt(prof.SizeofInt, false)
	case *EnumT:
		return NewInt(prof.SizeofInt, v.Unsigned)
	case *IntT:
		if v.Width >= prof.SizeofInt {
			return v
		}
		return NewInt(prof.SizeofInt, false)
	default:
		return d
	}
}

// UsualArithmeticConversion implements C11 §6.3.1.8 as specified in §4.4.
func UsualArithmeticConversion(a, b Type, prof *target.Profile) (Type, *diag.Error) {
	if !IsArithmetic(a) || !IsArithmetic(b) {
		return nil, diag.New(diag.BadOperatorTypes, "usual arithmetic conversions require arithmetic operands, got %s and %s", a.String(), b.String())
	}
	da, db := Dequalify(a), Dequalify(b)
	fa, aIsFloat := da.(*FloatT)
	fb, bIsFloat := db.(*FloatT)

	if aIsFloat || bIsFloat {
		// Highest float width wins; an integer operand never raises it
		// (floatWidthOf reports -1 for non-floats, below Float's 0).
		width := higherFloatWidth(floatWidthOf(da), floatWidthOf(db))
		domain := Real
		if (aIsFloat && fa.Domain == Complex) || (bIsFloat && fb.Domain == Complex) {
			domain = Complex
		}
		realSize := floatRealSize(prof, width)
		return NewFloat(width, domain, realSize), nil
	}

	pa := IntegerPromote(da, prof).(*IntT)
	pb := IntegerPromote(db, prof).(*IntT)

	if pa.Unsigned == pb.Unsigned {
		if pa.rank() >= pb.rank() {
			return pa, nil
		}
		return pb, nil
	}
	var signed, unsigned *IntT
	if pa.Unsigned {
		unsigned, signed = pa, pb
	} else {
		unsigned, signed = pb, pa
	}
	if unsigned.rank() >= signed.rank() {
		return unsigned, nil
	}
	if signed.rank() > unsigned.rank() {
		// Signed operand's rank is strictly wider: it can represent every
		// value of the narrower unsigned operand.
		return signed, nil
	}
	return NewInt(signed.Width, true), nil
}

// floatWidthOf returns the FloatWidth of t if it is a float, or -1 (lower
// than Float) if t is an integer family member being combined with a float.
func floatWidthOf(t Type) FloatWidth {
	if f, ok := t.(*FloatT); ok {
		return f.Width
	}
	return -1
}

func higherFloatWidth(a, b FloatWidth) FloatWidth {
	if a > b {
		return a
	}
	return b
}

func floatRealSize(prof *target.Profile, w FloatWidth) int {
	switch w {
	case Float:
		return prof.SizeofFloat
	case Double:
		return prof.SizeofDouble
	case LongDouble:
		return prof.SizeofLongDouble
	}
	return prof.SizeofDouble
}

// ExtractBitfield reads a bit-field's logical value out of its storage
// word per §4.4: shift out bit_offset, mask to bit_length bits, then
// sign-extend if signed and the top bit of the field is set.
func ExtractBitfield(storage uint64, bf *Bitfield, signed bool) int64 {
	mask := uint64(1)<<uint(bf.BitLength) - 1
	v := (storage >> uint(bf.BitOffset)) & mask
	if signed && bf.BitLength < 64 && v&(uint64(1)<<uint(bf.BitLength-1)) != 0 {
		v |= ^mask
	}
	return int64(v)
}
