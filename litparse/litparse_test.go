package litparse

import (
	"testing"

	"github.com/xyproto/cc11/target"
	"github.com/xyproto/cc11/types"
)

func TestParseCharSimple(t *testing.T) {
	c, err := ParseChar("'a'", target.LP64())
	if err != nil {
		t.Fatalf("ParseChar: %v", err)
	}
	if c.Value != 'a' || c.Width != 1 {
		t.Fatalf("got %+v", c)
	}
}

func TestParseCharEscape(t *testing.T) {
	c, err := ParseChar(`'\n'`, target.LP64())
	if err != nil {
		t.Fatalf("ParseChar: %v", err)
	}
	if c.Value != '\n' {
		t.Fatalf("got %v, want newline", c.Value)
	}
}

func TestParseCharOctalEscape(t *testing.T) {
	c, err := ParseChar(`'\101'`, target.LP64())
	if err != nil {
		t.Fatalf("ParseChar: %v", err)
	}
	if c.Value != 'A' {
		t.Fatalf("octal escape \\101 should be 'A' (65), got %d", c.Value)
	}
}

func TestParseCharHexEscape(t *testing.T) {
	c, err := ParseChar(`'\x41'`, target.LP64())
	if err != nil {
		t.Fatalf("ParseChar: %v", err)
	}
	if c.Value != 'A' {
		t.Fatalf("hex escape \\x41 should be 'A', got %d", c.Value)
	}
}

func TestParseCharWidePrefix(t *testing.T) {
	c, err := ParseChar(`L'a'`, target.LP64())
	if err != nil {
		t.Fatalf("ParseChar: %v", err)
	}
	if c.Width != target.LP64().SizeofWChar {
		t.Fatalf("L-prefixed char should take wchar_t width, got %d", c.Width)
	}
}

func TestParseCharEmptyFails(t *testing.T) {
	if _, err := ParseChar("''", target.LP64()); err == nil {
		t.Fatal("empty character constant should fail")
	}
}

func TestParseIntegerHex(t *testing.T) {
	lit, err := ParseInteger("0x2A", target.LP64())
	if err != nil {
		t.Fatalf("ParseInteger: %v", err)
	}
	if lit.Value != 42 {
		t.Fatalf("0x2A should be 42, got %d", lit.Value)
	}
}

func TestParseIntegerOctal(t *testing.T) {
	lit, err := ParseInteger("010", target.LP64())
	if err != nil {
		t.Fatalf("ParseInteger: %v", err)
	}
	if lit.Value != 8 {
		t.Fatalf("010 octal should be 8, got %d", lit.Value)
	}
}

func TestParseIntegerSuffixLL(t *testing.T) {
	prof := target.LP64()
	lit, err := ParseInteger("5ULL", prof)
	if err != nil {
		t.Fatalf("ParseInteger: %v", err)
	}
	if !lit.Unsigned || lit.Width != prof.SizeofLongLongInt {
		t.Fatalf("5ULL should be unsigned long long, got %+v", lit)
	}
}

func TestParseIntegerNegativePrefix(t *testing.T) {
	lit, err := ParseInteger("-17", target.LP64())
	if err != nil {
		t.Fatalf("ParseInteger: %v", err)
	}
	if !lit.Negative || lit.Value != 17 {
		t.Fatalf("got %+v", lit)
	}
}

func TestParseIntegerDuplicateSuffixFails(t *testing.T) {
	if _, err := ParseInteger("5UU", target.LP64()); err == nil {
		t.Fatal("duplicate u suffix should fail")
	}
}

func TestParseFloatDecimal(t *testing.T) {
	f, err := ParseFloat("1.5e2")
	if err != nil {
		t.Fatalf("ParseFloat: %v", err)
	}
	if f.Value != 150 {
		t.Fatalf("1.5e2 should be 150, got %v", f.Value)
	}
}

func TestParseFloatHex(t *testing.T) {
	f, err := ParseFloat("0x1.8p3")
	if err != nil {
		t.Fatalf("ParseFloat: %v", err)
	}
	if f.Value != 12 {
		t.Fatalf("0x1.8p3 = 1.5 * 2^3 = 12, got %v", f.Value)
	}
}

func TestParseFloatSuffix(t *testing.T) {
	f, err := ParseFloat("2.0f")
	if err != nil {
		t.Fatalf("ParseFloat: %v", err)
	}
	if f.Width != types.Float {
		t.Fatalf("'f' suffix should select Float width, got %v", f.Width)
	}
}

func TestParseStringPlain(t *testing.T) {
	s, err := ParseString(`"hi\n"`, target.LP64())
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	if string(s.Bytes) != "hi\n" {
		t.Fatalf("got %q", s.Bytes)
	}
}

func TestParseStringUTF16(t *testing.T) {
	s, err := ParseString(`u"hi"`, target.LP64())
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	if len(s.Bytes) != 4 {
		t.Fatalf("u\"hi\" should encode to 4 bytes (2 UTF-16 code units), got %d", len(s.Bytes))
	}
}

func TestConcatenationCompatible(t *testing.T) {
	if !ConcatenationCompatible(PrefixNone, PrefixWide) {
		t.Fatal("PrefixNone should be compatible with any other prefix")
	}
	if ConcatenationCompatible(PrefixWide, PrefixUTF8) {
		t.Fatal("wide and UTF-8 prefixes must not mix")
	}
}
