// Package litparse implements §4.3's character, number and string literal
// parsers: decoding escape sequences, discriminating integer/float
// suffixes and bases, and building wide/UTF-8 string payloads. It is
// grounded on the teacher's lexer.go escape handling (processEscapeSequences,
// isHexDigit), generalized from "decode a few common escapes for display"
// to the full C11 6.4.4/6.4.5 escape grammar the spec requires.
package litparse

import (
	"strconv"

	"github.com/xyproto/cc11/diag"
)

// decodeEscape reads one escape sequence starting just after the
// backslash at s[i] (s[i-1] == '\\') and returns the decoded code point,
// the number of bytes consumed from s[i:], and an error.
func decodeEscape(s string, i int) (rune, int, *diag.Error) {
	if i >= len(s) {
		return 0, 0, diag.New(diag.BadCharacterSequence, "truncated escape sequence")
	}
	switch s[i] {
	case 'a':
		return '\a', 1, nil
	case 'b':
		return '\b', 1, nil
	case 'f':
		return '\f', 1, nil
	case 'n':
		return '\n', 1, nil
	case 'r':
		return '\r', 1, nil
	case 't':
		return '\t', 1, nil
	case 'v':
		return '\v', 1, nil
	case '\'':
		return '\'', 1, nil
	case '"':
		return '"', 1, nil
	case '?':
		return '?', 1, nil
	case '\\':
		return '\\', 1, nil
	case 'x':
		return decodeHexEscape(s, i+1)
	case 'u':
		return decodeUniversalEscape(s, i+1, 4)
	case 'U':
		return decodeUniversalEscape(s, i+1, 8)
	default:
		if s[i] >= '0' && s[i] <= '7' {
			return decodeOctalEscape(s, i)
		}
	}
	return 0, 0, diag.New(diag.BadCharacterSequence, "unrecognized escape sequence '\\%c'", s[i])
}

// decodeOctalEscape consumes up to three octal digits starting at s[i],
// limited to two if the first digit exceeds 3 (so the value never
// overflows a byte): "\477" is two digits ('4','7') plus a literal '7'.
func decodeOctalEscape(s string, i int) (rune, int, *diag.Error) {
	maxDigits := 3
	if s[i] > '3' {
		maxDigits = 2
	}
	j := i
	for j < len(s) && j-i < maxDigits && s[j] >= '0' && s[j] <= '7' {
		j++
	}
	v, err := strconv.ParseInt(s[i:j], 8, 32)
	if err != nil {
		return 0, 0, diag.New(diag.BadCharacterSequence, "malformed octal escape %q", s[i:j])
	}
	return rune(v), j - i, nil
}

// decodeHexEscape consumes one-or-more hex digits starting at s[i].
func decodeHexEscape(s string, i int) (rune, int, *diag.Error) {
	j := i
	for j < len(s) && isHexDigit(s[j]) {
		j++
	}
	if j == i {
		return 0, 0, diag.New(diag.BadCharacterSequence, "\\x escape requires at least one hex digit")
	}
	v, err := strconv.ParseUint(s[i:j], 16, 64)
	if err != nil {
		return 0, 0, diag.New(diag.IntegerConstantOutOfBounds, "\\x escape %q out of range", s[i:j])
	}
	return rune(v), j - i + 1, nil
}

// decodeUniversalEscape consumes exactly n hex digits for \u (n=4) or
// \U (n=8).
func decodeUniversalEscape(s string, i, n int) (rune, int, *diag.Error) {
	if i+n > len(s) {
		return 0, 0, diag.New(diag.BadCharacterSequence, "truncated universal character escape")
	}
	for k := 0; k < n; k++ {
		if !isHexDigit(s[i+k]) {
			return 0, 0, diag.New(diag.BadCharacterSequence, "universal character escape requires %d hex digits", n)
		}
	}
	v, err := strconv.ParseUint(s[i:i+n], 16, 32)
	if err != nil {
		return 0, 0, diag.New(diag.IntegerConstantOutOfBounds, "universal character escape %q out of range", s[i:i+n])
	}
	return rune(v), n + 1, nil
}

func isHexDigit(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}
