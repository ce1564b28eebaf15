package constant

import (
	"math"
	"testing"

	"github.com/xyproto/cc11/diag"
)

func TestAddSignedWraps(t *testing.T) {
	max8 := NewSignedInt(1, 127)
	r := Add(max8, NewSignedInt(1, 1))
	if r.Int64() != -128 {
		t.Fatalf("int8 127+1 should wrap to -128, got %d", r.Int64())
	}
}

func TestDivByZeroFails(t *testing.T) {
	r := Div(NewSignedInt(4, 10), NewSignedInt(4, 0))
	if !r.IsFail() || r.FailKind != diag.DivisionByZero {
		t.Fatalf("10/0 should fail with DivisionByZero, got %+v", r)
	}
}

func TestRemByZeroFails(t *testing.T) {
	r := Rem(NewUnsignedInt(4, 10), NewUnsignedInt(4, 0))
	if !r.IsFail() {
		t.Fatal("10%%0 should fail")
	}
}

func TestFailPropagatesThroughArithmetic(t *testing.T) {
	fail := NewFail(diag.DivisionByZero)
	r := Add(fail, NewSignedInt(4, 1))
	if !r.IsFail() {
		t.Fatal("a fail operand must propagate through Add")
	}
}

func TestSmithComplexDivision(t *testing.T) {
	// (1+2i) / (3+4i) = 0.44 + 0.08i
	a := NewComplex(0, 8, 1, 2)
	b := NewComplex(0, 8, 3, 4)
	r := Div(a, b)
	if math.Abs(r.Real-0.44) > 1e-9 || math.Abs(r.Imag-0.08) > 1e-9 {
		t.Fatalf("complex division = %v+%vi, want 0.44+0.08i", r.Real, r.Imag)
	}
}

func TestShrArithmeticVsLogical(t *testing.T) {
	neg := NewSignedInt(4, -8)
	r := Shr(neg, NewSignedInt(4, 1))
	if r.Int64() != -4 {
		t.Fatalf("arithmetic shift of -8 >> 1 should be -4, got %d", r.Int64())
	}
	u := NewUnsignedInt(4, 0xFFFFFFF8)
	ru := Shr(u, NewSignedInt(4, 1))
	if ru.Bits != 0x7FFFFFFC {
		t.Fatalf("logical shift of 0xFFFFFFF8 >> 1 should be 0x7FFFFFFC, got %x", ru.Bits)
	}
}

func TestComparisonsProduceIntZeroOne(t *testing.T) {
	a := NewSignedInt(4, 3)
	b := NewSignedInt(4, 5)
	lt := Less(a, b, 4)
	if lt.Domain != SignedInt || lt.Int64() != 1 {
		t.Fatalf("3 < 5 should fold to int 1, got %+v", lt)
	}
	ge := GreaterEq(a, b, 4)
	if ge.Int64() != 0 {
		t.Fatalf("3 >= 5 should fold to int 0, got %+v", ge)
	}
}

func TestEqualDefinedForComplex(t *testing.T) {
	a := NewComplex(0, 8, 1, 2)
	b := NewComplex(0, 8, 1, 2)
	if Equal(a, b, 4).Int64() != 1 {
		t.Fatal("equal complex constants should compare equal")
	}
	c := NewComplex(0, 8, 1, 3)
	if NotEqual(a, c, 4).Int64() != 1 {
		t.Fatal("differing complex constants should compare unequal")
	}
}

func TestNegate(t *testing.T) {
	if Negate(NewSignedInt(4, 5)).Int64() != -5 {
		t.Fatal("negate of signed int failed")
	}
	r := Negate(NewReal(0, 8, 2.5))
	if r.Real != -2.5 {
		t.Fatalf("negate of real failed: %v", r.Real)
	}
}

func TestCastIntToFloat(t *testing.T) {
	i := NewSignedInt(4, 42)
	f := Cast(RealFloat, 8, 0, i)
	if f.Real != 42.0 {
		t.Fatalf("cast int->float = %v, want 42.0", f.Real)
	}
	back := Cast(SignedInt, 4, 0, NewReal(0, 8, 3.9))
	if back.Int64() != 3 {
		t.Fatalf("cast float->int should truncate toward zero, got %d", back.Int64())
	}
}

func TestCastRealToComplexAppendsZeroImaginary(t *testing.T) {
	c := Cast(ComplexFloat, 8, 0, NewReal(0, 8, 4))
	if c.Real != 4 || c.Imag != 0 {
		t.Fatalf("cast real->complex should append 0i, got %v+%vi", c.Real, c.Imag)
	}
}
