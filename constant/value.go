// Package constant implements the Constant Engine of §4.5 and the
// Constant tagged union of §3: a total function over six literal-value
// domains (signed/unsigned integer, real/complex/imaginary float,
// pointer) providing cast, arithmetic, bitwise, shift, comparison and
// negation operations, plus the scalar-to-tristate classification used
// by conditional folding; and four address-typed domains — link-address,
// unit-address, local-address, offset-from-base — that carry no literal
// bytes and so classify as Maybe rather than folding arithmetically.
// Every operation here is pure — it never touches a Type or a namespace
// — so the expr package builds the Value's accompanying Type separately
// and only asks this package to fold the bytes.
package constant

import (
	"github.com/xyproto/cc11/diag"
	"github.com/xyproto/cc11/internal/symbol"
	"github.com/xyproto/cc11/types"
)

// Domain discriminates Value's variants: the six literal-value domains
// §4.5 dispatches arithmetic over, the four address-typed domains §3
// names (link-address, unit-address, local-address, offset-from-base —
// grounded on original_source/dbcc-constant.c's DBCC_CONSTANT_TYPE_*
// enumeration, which this module's Constant tagged union otherwise
// left unimplemented), and the Fail sentinel.
type Domain int

const (
	SignedInt Domain = iota
	UnsignedInt
	RealFloat
	ComplexFloat
	ImaginaryFloat
	Pointer

	// LinkAddress names an external symbol resolved at link time; it
	// carries no numeric value until linking (dbcc's v_link_address).
	LinkAddress
	// UnitAddress names a symbol defined within this compilation unit
	// at a known numeric offset (dbcc's v_unit_address).
	UnitAddress
	// LocalAddress carries host data for passing into a JIT, identified
	// by slot rather than by symbol (dbcc's v_local_address).
	LocalAddress
	// Offset is another Constant plus a signed displacement (dbcc's
	// v_offset); Base is a pointer since Value cannot embed itself.
	Offset

	Fail
)

// IsValue reports whether d is one of the six literal byte-value domains
// §4.5's total function operates over, as opposed to one of the four
// address-typed domains or Fail.
func (d Domain) IsValue() bool {
	return d >= SignedInt && d <= Pointer
}

// Value is a folded constant's raw bytes plus enough shape information to
// interpret them: integer and pointer domains carry a two's-complement
// bit pattern truncated to Width bytes; float domains carry Real/Imag as
// host float64 regardless of the eventual C storage width (matching the
// teacher's optimizer.go, which folds constants in float64 and narrows
// only at the point the literal is serialized); the address domains
// carry a Name/Address/Host/Base+Delta instead of a raw bit pattern,
// since they are not literal values (§4.5's scalar-to-tristate rule).
type Value struct {
	Domain     Domain
	Width      int // bytes: int/pointer width, or the float family's real-part size
	FloatWidth types.FloatWidth
	Bits       uint64 // integer/pointer raw bit pattern, masked to Width*8 bits
	Real, Imag float64
	FailKind   diag.Kind

	Name    *symbol.Symbol // LinkAddress, UnitAddress
	Address int64          // UnitAddress: offset of Name within its unit
	Host    uintptr        // LocalAddress: host-side data slot for the JIT
	Base    *Value         // Offset: the constant this one is relative to
	Delta   int64          // Offset: signed displacement from *Base
}

func mask(width int) uint64 {
	if width >= 8 {
		return ^uint64(0)
	}
	return uint64(1)<<uint(width*8) - 1
}

func signExtend(bits uint64, width int) int64 {
	shift := uint(64 - width*8)
	return int64(bits<<shift) >> shift
}

// NewSignedInt builds a SignedInt Value, masking v to width bytes.
func NewSignedInt(width int, v int64) Value {
	return Value{Domain: SignedInt, Width: width, Bits: uint64(v) & mask(width)}
}

// NewUnsignedInt builds an UnsignedInt Value, masking v to width bytes.
func NewUnsignedInt(width int, v uint64) Value {
	return Value{Domain: UnsignedInt, Width: width, Bits: v & mask(width)}
}

// NewReal builds a RealFloat Value.
func NewReal(fw types.FloatWidth, realSize int, v float64) Value {
	return Value{Domain: RealFloat, Width: realSize, FloatWidth: fw, Real: v}
}

// NewComplex builds a ComplexFloat Value.
func NewComplex(fw types.FloatWidth, realSize int, re, im float64) Value {
	return Value{Domain: ComplexFloat, Width: realSize, FloatWidth: fw, Real: re, Imag: im}
}

// NewImaginary builds an ImaginaryFloat Value.
func NewImaginary(fw types.FloatWidth, realSize int, im float64) Value {
	return Value{Domain: ImaginaryFloat, Width: realSize, FloatWidth: fw, Imag: im}
}

// NewPointer builds a Pointer Value from a raw address-like integer
// (e.g. a null pointer constant, or an integer converted to pointer).
func NewPointer(width int, v uint64) Value {
	return Value{Domain: Pointer, Width: width, Bits: v & mask(width)}
}

// NewFail builds a fail-typed Value carrying kind, per §4.5's "division
// and remainder by zero yield a fail-typed result" rule.
func NewFail(kind diag.Kind) Value { return Value{Domain: Fail, FailKind: kind} }

// NewLinkAddress builds a constant naming an external symbol resolved
// at link time.
func NewLinkAddress(width int, name *symbol.Symbol) Value {
	return Value{Domain: LinkAddress, Width: width, Name: name}
}

// NewUnitAddress builds a constant naming a symbol defined in this
// compilation unit at the given numeric address/offset.
func NewUnitAddress(width int, name *symbol.Symbol, address int64) Value {
	return Value{Domain: UnitAddress, Width: width, Name: name, Address: address}
}

// NewLocalAddress builds a constant referring to host data passed into
// the JIT by slot.
func NewLocalAddress(width int, host uintptr) Value {
	return Value{Domain: LocalAddress, Width: width, Host: host}
}

// NewOffset builds a constant offset-from-base: base plus a signed
// displacement, per §3's "another Constant + signed displacement" and
// §8 scenario 6 (`p + 3` on a unit-address pointer folds to an
// offset-constant with base p and delta 3·sizeof(int32)).
func NewOffset(base Value, delta int64) Value {
	return Value{Domain: Offset, Width: base.Width, Base: &base, Delta: delta}
}

func (v Value) IsFail() bool { return v.Domain == Fail }

// Int64 returns the integer/pointer domain's value, sign-extended for
// SignedInt and left zero-extended (in the 64-bit Bits field) otherwise.
// Undefined for float domains.
func (v Value) Int64() int64 {
	if v.Domain == SignedInt {
		return signExtend(v.Bits, v.Width)
	}
	return int64(v.Bits)
}

// IsZero reports whether the raw value is the zero of its domain —
// the test behind Scalar-to-tristate's Yes/No classification.
func (v Value) IsZero() bool {
	switch v.Domain {
	case SignedInt, UnsignedInt, Pointer:
		return v.Bits == 0
	case RealFloat:
		return v.Real == 0
	case ImaginaryFloat:
		return v.Imag == 0
	case ComplexFloat:
		return v.Real == 0 && v.Imag == 0
	}
	return false
}

// Tristate is Scalar-to-tristate's result.
type Tristate int

const (
	No Tristate = iota
	Yes
	Maybe
)

// ScalarToTristate classifies v per §4.5: Maybe when v is not a
// literal-value constant — Fail, or one of the four address-typed
// domains (link-, unit-, local-address, offset-from-base) — else
// Yes/No by the zero-ness of the literal bytes.
func ScalarToTristate(v Value) Tristate {
	if !v.Domain.IsValue() {
		return Maybe
	}
	if v.IsZero() {
		return No
	}
	return Yes
}
