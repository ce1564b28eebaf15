package litparse

import (
	"strings"
	"unicode/utf16"

	"golang.org/x/text/encoding/unicode"

	"github.com/xyproto/cc11/diag"
	"github.com/xyproto/cc11/target"
)

// StringPrefix discriminates a string literal's 6.4.5 encoding prefix.
type StringPrefix int

const (
	PrefixNone StringPrefix = iota
	PrefixUTF8
	PrefixWide  // L
	PrefixUTF16 // u
	PrefixUTF32 // U
)

// StringLiteral is a decoded string literal: Bytes holds its encoded
// payload (UTF-8 for none/u8, the target's wchar_t encoding for L, UTF-16
// for u, UTF-32 for U), not including a NUL terminator.
type StringLiteral struct {
	Prefix StringPrefix
	Bytes  []byte
}

// ParseString decodes one already-unescaped-of-quoting literal, raw
// (e.g. `"hi\n"`, `L"wide"`, `u8"utf8"`), honoring its prefix. Adjacent
// string literals must be concatenated by the caller before calling this
// (after checking ConcatenationCompatible), matching 6.4.5's translation-
// phase-6 rule.
func ParseString(raw string, prof *target.Profile) (StringLiteral, *diag.Error) {
	prefix := PrefixNone
	body := raw
	switch {
	case strings.HasPrefix(raw, "u8\""):
		prefix, body = PrefixUTF8, raw[2:]
	case strings.HasPrefix(raw, "L\""):
		prefix, body = PrefixWide, raw[1:]
	case strings.HasPrefix(raw, "u\""):
		prefix, body = PrefixUTF16, raw[1:]
	case strings.HasPrefix(raw, "U\""):
		prefix, body = PrefixUTF32, raw[1:]
	}
	if len(body) < 2 || body[0] != '"' || body[len(body)-1] != '"' {
		return StringLiteral{}, diag.New(diag.BadCharacterSequence, "string literal missing quotes: %q", raw)
	}
	body = body[1 : len(body)-1]

	runes, derr := decodeStringRunes(body)
	if derr != nil {
		return StringLiteral{}, derr
	}

	var encoded []byte
	switch prefix {
	case PrefixNone, PrefixUTF8:
		encoded = []byte(string(runes))
	case PrefixUTF16:
		encoded = encodeUTF16ViaXText(runes)
	case PrefixUTF32:
		encoded = encodeUTF32LE(runes)
	case PrefixWide:
		encoded = encodeWide(runes, prof)
	}
	return StringLiteral{Prefix: prefix, Bytes: encoded}, nil
}

// ConcatenationCompatible enforces 6.4.5's "no mixing wide and UTF-8 in
// an adjacent-concatenation group" rule: PrefixNone is compatible with
// anything (it carries no encoding of its own until joined), any two
// identical prefixes are compatible, but two distinct non-None prefixes
// are not.
func ConcatenationCompatible(a, b StringPrefix) bool {
	if a == PrefixNone || b == PrefixNone {
		return true
	}
	return a == b
}

func decodeStringRunes(body string) ([]rune, *diag.Error) {
	var out []rune
	i := 0
	for i < len(body) {
		if body[i] == '\\' {
			r, n, err := decodeEscape(body, i+1)
			if err != nil {
				return nil, err
			}
			out = append(out, r)
			i += 1 + n
			continue
		}
		r, n := decodeUTF8At(body, i)
		if r == 0xFFFD && n == 1 {
			return nil, diag.New(diag.BadUtf8, "invalid UTF-8 byte 0x%02x in string literal", body[i])
		}
		out = append(out, r)
		i += n
	}
	return out, nil
}

func encodeUTF16LE(runes []rune) []byte {
	units := utf16.Encode(runes)
	buf := make([]byte, 0, len(units)*2)
	for _, u := range units {
		buf = append(buf, byte(u), byte(u>>8))
	}
	return buf
}

// encodeUTF16ViaXText is the u-prefix (PrefixUTF16, always 2-byte UTF-16
// regardless of target width) counterpart to encodeWide's L-prefix case:
// both route through golang.org/x/text/encoding/unicode rather than a
// hand-rolled loop, falling back to encodeUTF16LE only if the encoder
// itself errors.
func encodeUTF16ViaXText(runes []rune) []byte {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()
	out, err := enc.Bytes([]byte(string(runes)))
	if err == nil {
		return out
	}
	return encodeUTF16LE(runes)
}

func encodeUTF32LE(runes []rune) []byte {
	buf := make([]byte, 0, len(runes)*4)
	for _, r := range runes {
		buf = append(buf, byte(r), byte(r>>8), byte(r>>16), byte(r>>24))
	}
	return buf
}

// encodeWide renders runes as the target's wchar_t: 2-byte UTF-16 code
// units on Win64 (LLP64's wchar_t), 4-byte UTF-32 elsewhere, using
// golang.org/x/text/encoding/unicode for the UTF-16 case so the byte
// order matches the platform's documented little-endian convention
// rather than a hand-rolled loop.
func encodeWide(runes []rune, prof *target.Profile) []byte {
	if prof.SizeofWChar == 2 {
		return encodeUTF16ViaXText(runes)
	}
	return encodeUTF32LE(runes)
}
