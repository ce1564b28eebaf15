package litparse

import (
	"strconv"
	"strings"

	"github.com/xyproto/cc11/diag"
	"github.com/xyproto/cc11/target"
	"github.com/xyproto/cc11/types"
)

// IntegerLiteral is a decoded integer constant per §4.3's suffix parser.
type IntegerLiteral struct {
	Value    uint64
	Width    int
	Unsigned bool
	Negative bool // a leading '-' was present; carried, not applied
}

// ParseInteger decodes raw (e.g. "0x2AU", "-17LL", "010") using base
// discrimination (0x hex, leading-zero octal, else decimal), then an
// integer suffix of at most one of u|U and at most one of l|L or ll|LL.
func ParseInteger(raw string, prof *target.Profile) (IntegerLiteral, *diag.Error) {
	negative := false
	if strings.HasPrefix(raw, "-") {
		negative = true
		raw = raw[1:]
	}

	base := 10
	digits := raw
	switch {
	case strings.HasPrefix(raw, "0x") || strings.HasPrefix(raw, "0X"):
		base = 16
		digits = raw[2:]
	case strings.HasPrefix(raw, "0") && len(raw) > 1:
		base = 8
		digits = raw[1:]
	}

	i := 0
	for i < len(digits) && isDigitInBase(digits[i], base) {
		i++
	}
	numeric := digits[:i]
	suffix := digits[i:]
	if numeric == "" {
		return IntegerLiteral{}, diag.New(diag.BadNumberConstant, "integer constant %q has no digits", raw)
	}

	unsigned, widthClass, err := parseIntSuffix(suffix)
	if err != nil {
		return IntegerLiteral{}, err
	}

	v, perr := strconv.ParseUint(numeric, base, 64)
	if perr != nil {
		return IntegerLiteral{}, diag.New(diag.IntegerConstantOutOfBounds, "integer constant %q out of range: %v", raw, perr)
	}

	width := prof.SizeofInt
	switch widthClass {
	case suffixLong:
		width = prof.SizeofLongInt
	case suffixLongLong:
		width = prof.SizeofLongLongInt
	}

	return IntegerLiteral{Value: v, Width: width, Unsigned: unsigned, Negative: negative}, nil
}

type lengthSuffix int

const (
	suffixNone lengthSuffix = iota
	suffixLong
	suffixLongLong
)

// parseIntSuffix accepts at most one of u|U and at most one of l|L or
// ll|LL, in either order.
func parseIntSuffix(s string) (unsigned bool, length lengthSuffix, err *diag.Error) {
	sawU, sawL := false, false
	i := 0
	for i < len(s) {
		switch s[i] {
		case 'u', 'U':
			if sawU {
				return false, 0, diag.New(diag.BadNumberConstant, "duplicate 'u' suffix")
			}
			sawU = true
			unsigned = true
			i++
		case 'l', 'L':
			if sawL {
				return false, 0, diag.New(diag.BadNumberConstant, "duplicate length suffix")
			}
			sawL = true
			if i+1 < len(s) && s[i+1] == s[i] {
				length = suffixLongLong
				i += 2
			} else {
				length = suffixLong
				i++
			}
		default:
			return false, 0, diag.New(diag.BadNumberConstant, "unrecognized integer suffix %q", s)
		}
	}
	return unsigned, length, nil
}

func isDigitInBase(ch byte, base int) bool {
	switch base {
	case 16:
		return isHexDigit(ch)
	case 8:
		return ch >= '0' && ch <= '7'
	default:
		return ch >= '0' && ch <= '9'
	}
}

// FloatLiteral is a decoded floating-point constant.
type FloatLiteral struct {
	Value float64
	Width types.FloatWidth
}

// ParseFloat decodes raw (e.g. "1.5e10", "0x1.8p3", "2.0f") per §4.3's
// recognizer: hex floats carry a required binary exponent, decimal
// floats an optional decimal exponent; an optional trailing f|F|l|L
// selects float/long double, default double. Go's strconv.ParseFloat
// natively accepts both the decimal and "0x1.8p3"-style hex-float forms,
// so the suffix is all this function strips before delegating.
func ParseFloat(raw string) (FloatLiteral, *diag.Error) {
	width := types.Double
	body := raw
	if len(body) > 0 {
		switch body[len(body)-1] {
		case 'f', 'F':
			width = types.Float
			body = body[:len(body)-1]
		case 'l', 'L':
			width = types.LongDouble
			body = body[:len(body)-1]
		}
	}
	v, err := strconv.ParseFloat(body, 64)
	if err != nil {
		return FloatLiteral{}, diag.New(diag.BadNumberConstant, "floating constant %q malformed: %v", raw, err)
	}
	return FloatLiteral{Value: v, Width: width}, nil
}
