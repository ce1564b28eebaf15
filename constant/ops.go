package constant

import (
	"math"

	"github.com/xyproto/cc11/diag"
	"github.com/xyproto/cc11/diagutil"
	"github.com/xyproto/cc11/types"
)

// Cast converts src into dst's domain/width per §4.5: int<->int widens or
// narrows with sign extension when src is signed; int->float converts
// exactly; float->int truncates toward zero; float<->float converts,
// appending a zero imaginary part to promote real to complex, or keeping
// just the real part to demote complex to real.
func Cast(dst Domain, width int, fw types.FloatWidth, src Value) Value {
	if src.IsFail() {
		return src
	}
	switch dst {
	case SignedInt:
		return NewSignedInt(width, srcAsInt64(src))
	case UnsignedInt:
		return NewUnsignedInt(width, uint64(srcAsInt64(src)))
	case Pointer:
		return NewPointer(width, uint64(srcAsInt64(src)))
	case RealFloat:
		return NewReal(fw, width, srcAsFloat64(src))
	case ComplexFloat:
		re, im := srcAsComplex(src)
		return NewComplex(fw, width, re, im)
	case ImaginaryFloat:
		_, im := srcAsComplex(src)
		return NewImaginary(fw, width, im)
	}
	return NewFail(diag.BadOperatorTypes)
}

func srcAsInt64(v Value) int64 {
	switch v.Domain {
	case SignedInt, UnsignedInt, Pointer:
		return v.Int64()
	case RealFloat:
		return int64(math.Trunc(v.Real))
	case ComplexFloat:
		return int64(math.Trunc(v.Real))
	case ImaginaryFloat:
		return 0
	}
	return 0
}

func srcAsFloat64(v Value) float64 {
	switch v.Domain {
	case SignedInt:
		return float64(v.Int64())
	case UnsignedInt, Pointer:
		return float64(v.Bits)
	case RealFloat, ComplexFloat:
		return v.Real
	case ImaginaryFloat:
		return v.Imag
	}
	return 0
}

func srcAsComplex(v Value) (re, im float64) {
	switch v.Domain {
	case ComplexFloat:
		return v.Real, v.Imag
	case ImaginaryFloat:
		return 0, v.Imag
	default:
		return srcAsFloat64(v), 0
	}
}

// --- Arithmetic ---

// Add, Sub, Mul, Div, Rem implement the width-specialized arithmetic of
// §4.5. Both operands must already share one domain and width — the
// caller (expr's binary-operator builder) applies the usual arithmetic
// conversions before folding, exactly as it applies them to the operand
// Types.
func Add(a, b Value) Value { return arith(a, b, '+') }
func Sub(a, b Value) Value { return arith(a, b, '-') }
func Mul(a, b Value) Value { return arith(a, b, '*') }

func arith(a, b Value, op byte) Value {
	if a.IsFail() {
		return a
	}
	if b.IsFail() {
		return b
	}
	switch a.Domain {
	case SignedInt:
		x, y := a.Int64(), b.Int64()
		var r int64
		switch op {
		case '+':
			r = x + y
		case '-':
			r = x - y
		case '*':
			r = x * y
		}
		return NewSignedInt(a.Width, r)
	case UnsignedInt, Pointer:
		x, y := a.Bits, b.Bits
		var r uint64
		switch op {
		case '+':
			r = x + y
		case '-':
			r = x - y
		case '*':
			r = x * y
		}
		if a.Domain == Pointer {
			return NewPointer(a.Width, r)
		}
		return NewUnsignedInt(a.Width, r)
	case RealFloat:
		var r float64
		switch op {
		case '+':
			r = a.Real + b.Real
		case '-':
			r = a.Real - b.Real
		case '*':
			r = a.Real * b.Real
		}
		return NewReal(a.FloatWidth, a.Width, r)
	case ImaginaryFloat:
		switch op {
		case '+':
			return NewImaginary(a.FloatWidth, a.Width, a.Imag+b.Imag)
		case '-':
			return NewImaginary(a.FloatWidth, a.Width, a.Imag-b.Imag)
		case '*':
			// i*i multiplication of two purely imaginary values is real:
			// (ai)(bi) = -ab.
			return NewReal(a.FloatWidth, a.Width, -(a.Imag * b.Imag))
		}
	case ComplexFloat:
		x := complex(a.Real, a.Imag)
		y := complex(b.Real, b.Imag)
		var r complex128
		switch op {
		case '+':
			r = x + y
		case '-':
			r = x - y
		case '*':
			r = x * y
		}
		return NewComplex(a.FloatWidth, a.Width, real(r), imag(r))
	}
	return NewFail(diag.BadOperatorTypes)
}

// Div implements §4.5's arithmetic division, including Smith's algorithm
// for complex division:
//
//	with (a+bi)/(c+di), if |c| >= |d| let r = d/c, t = c + d*r and return
//	((a + b*r)/t, (b - a*r)/t); else swap the roles.
func Div(a, b Value) Value {
	if a.IsFail() {
		return a
	}
	if b.IsFail() {
		return b
	}
	switch a.Domain {
	case SignedInt:
		if b.Int64() == 0 {
			diagutil.Logf("constant: integer division by zero, folding to a fail-typed constant\n")
			return NewFail(diag.DivisionByZero)
		}
		return NewSignedInt(a.Width, a.Int64()/b.Int64())
	case UnsignedInt:
		if b.Bits == 0 {
			diagutil.Logf("constant: integer division by zero, folding to a fail-typed constant\n")
			return NewFail(diag.DivisionByZero)
		}
		return NewUnsignedInt(a.Width, a.Bits/b.Bits)
	case RealFloat:
		return NewReal(a.FloatWidth, a.Width, a.Real/b.Real)
	case ImaginaryFloat:
		// (ai)/(bi) = a/b, a real result.
		return NewReal(a.FloatWidth, a.Width, a.Imag/b.Imag)
	case ComplexFloat:
		re, im := smithDivide(a.Real, a.Imag, b.Real, b.Imag)
		return NewComplex(a.FloatWidth, a.Width, re, im)
	}
	return NewFail(diag.BadOperatorTypes)
}

func smithDivide(a, b, c, d float64) (float64, float64) {
	if math.Abs(c) >= math.Abs(d) {
		r := d / c
		t := c + d*r
		return (a + b*r) / t, (b - a*r) / t
	}
	r := c / d
	t := d + c*r
	return (a*r + b) / t, (b*r - a) / t
}

// Rem implements integer remainder; undefined (fails BadOperatorTypes)
// for any non-integer domain per §4.5's "rem is defined for integer
// types only".
func Rem(a, b Value) Value {
	if a.IsFail() {
		return a
	}
	if b.IsFail() {
		return b
	}
	switch a.Domain {
	case SignedInt:
		if b.Int64() == 0 {
			diagutil.Logf("constant: integer remainder by zero, folding to a fail-typed constant\n")
			return NewFail(diag.DivisionByZero)
		}
		return NewSignedInt(a.Width, a.Int64()%b.Int64())
	case UnsignedInt:
		if b.Bits == 0 {
			diagutil.Logf("constant: integer remainder by zero, folding to a fail-typed constant\n")
			return NewFail(diag.DivisionByZero)
		}
		return NewUnsignedInt(a.Width, a.Bits%b.Bits)
	}
	return NewFail(diag.BadOperatorTypes)
}

// --- Bitwise ---

// And, Or, Xor are byte-wise (here: word-wise over the masked Bits field,
// equivalent for any width since the unused high bits are already zero).
func And(a, b Value) Value { return bitwise(a, b, '&') }
func Or(a, b Value) Value  { return bitwise(a, b, '|') }
func Xor(a, b Value) Value { return bitwise(a, b, '^') }

func bitwise(a, b Value, op byte) Value {
	if a.IsFail() {
		return a
	}
	if b.IsFail() {
		return b
	}
	var r uint64
	switch op {
	case '&':
		r = a.Bits & b.Bits
	case '|':
		r = a.Bits | b.Bits
	case '^':
		r = a.Bits ^ b.Bits
	}
	if a.Domain == SignedInt {
		return NewSignedInt(a.Width, int64(r))
	}
	return NewUnsignedInt(a.Width, r)
}

// Not is bitwise complement.
func Not(a Value) Value {
	if a.IsFail() {
		return a
	}
	if a.Domain == SignedInt {
		return NewSignedInt(a.Width, int64(^a.Bits))
	}
	return NewUnsignedInt(a.Width, ^a.Bits&mask(a.Width))
}

// --- Shifts ---

// Shl, Shr implement integer-only shifts; Shr is arithmetic on SignedInt,
// logical on UnsignedInt per §4.5.
func Shl(a, shift Value) Value {
	if a.IsFail() {
		return a
	}
	n := uint(shift.Int64())
	if a.Domain == SignedInt {
		return NewSignedInt(a.Width, a.Int64()<<n)
	}
	return NewUnsignedInt(a.Width, a.Bits<<n)
}

func Shr(a, shift Value) Value {
	if a.IsFail() {
		return a
	}
	n := uint(shift.Int64())
	if a.Domain == SignedInt {
		return NewSignedInt(a.Width, a.Int64()>>n)
	}
	return NewUnsignedInt(a.Width, a.Bits>>n)
}

// --- Comparisons ---
//
// Each comparison yields an int-typed 0/1 Value, width given by the
// caller's target int width (the expr builder passes target.SizeofInt).
// For complex operands only Equal/NotEqual are defined per §4.5.

func boolResult(intWidth int, b bool) Value {
	if b {
		return NewSignedInt(intWidth, 1)
	}
	return NewSignedInt(intWidth, 0)
}

func Less(a, b Value, intWidth int) Value      { return compare(a, b, intWidth, -1, false) }
func LessEq(a, b Value, intWidth int) Value    { return compare(a, b, intWidth, -1, true) }
func Greater(a, b Value, intWidth int) Value   { return compare(a, b, intWidth, 1, false) }
func GreaterEq(a, b Value, intWidth int) Value { return compare(a, b, intWidth, 1, true) }

// compare centralizes <, <=, >, >= around a single ordering comparison:
// wantSign is the sign of (a-b) the relation requires, orEqual allows a
// zero difference too.
func compare(a, b Value, intWidth int, wantSign int, orEqual bool) Value {
	if a.IsFail() {
		return a
	}
	if b.IsFail() {
		return b
	}
	var cmp int
	switch a.Domain {
	case SignedInt:
		x, y := a.Int64(), b.Int64()
		cmp = signOf(x - y)
	case UnsignedInt, Pointer:
		x, y := a.Bits, b.Bits
		switch {
		case x < y:
			cmp = -1
		case x > y:
			cmp = 1
		}
	case RealFloat:
		switch {
		case a.Real < b.Real:
			cmp = -1
		case a.Real > b.Real:
			cmp = 1
		}
	default:
		return NewFail(diag.BadOperatorTypes)
	}
	match := cmp == wantSign || (orEqual && cmp == 0)
	return boolResult(intWidth, match)
}

func signOf(v int64) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

// Equal, NotEqual are defined for every domain, including complex.
func Equal(a, b Value, intWidth int) Value {
	if a.IsFail() {
		return a
	}
	if b.IsFail() {
		return b
	}
	return boolResult(intWidth, rawEqual(a, b))
}

func NotEqual(a, b Value, intWidth int) Value {
	if a.IsFail() {
		return a
	}
	if b.IsFail() {
		return b
	}
	return boolResult(intWidth, !rawEqual(a, b))
}

func rawEqual(a, b Value) bool {
	switch a.Domain {
	case SignedInt, UnsignedInt, Pointer:
		return a.Bits == b.Bits
	case RealFloat:
		return a.Real == b.Real
	case ImaginaryFloat:
		return a.Imag == b.Imag
	case ComplexFloat:
		return a.Real == b.Real && a.Imag == b.Imag
	}
	return false
}

// Negate is arithmetic negation over any arithmetic domain.
func Negate(a Value) Value {
	if a.IsFail() {
		return a
	}
	switch a.Domain {
	case SignedInt:
		return NewSignedInt(a.Width, -a.Int64())
	case UnsignedInt:
		return NewUnsignedInt(a.Width, -a.Bits&mask(a.Width))
	case RealFloat:
		return NewReal(a.FloatWidth, a.Width, -a.Real)
	case ImaginaryFloat:
		return NewImaginary(a.FloatWidth, a.Width, -a.Imag)
	case ComplexFloat:
		return NewComplex(a.FloatWidth, a.Width, -a.Real, -a.Imag)
	}
	return NewFail(diag.BadOperatorTypes)
}
