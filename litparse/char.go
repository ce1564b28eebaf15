package litparse

import (
	"unicode/utf8"

	"github.com/xyproto/cc11/diag"
	"github.com/xyproto/cc11/target"
)

// CharConstant is a decoded character constant's value and the width/
// signedness of the type it takes under its prefix.
type CharConstant struct {
	Value    int64
	Width    int
	Unsigned bool
}

// ParseChar decodes raw, a character constant's full source spelling
// including its optional prefix and the surrounding single quotes (e.g.
// "'a'", "L'\\n'", "u'\\u0041'"). Width follows the prefix: L → wchar_t,
// u → 2 bytes, U → 4 bytes, none → 1 byte (plain char, signedness per
// prof.IsCharSigned).
func ParseChar(raw string, prof *target.Profile) (CharConstant, *diag.Error) {
	i := 0
	width := 1
	unsigned := !prof.IsCharSigned
	switch {
	case hasPrefix(raw, "L'"):
		width, unsigned, i = prof.SizeofWChar, false, 1
	case hasPrefix(raw, "u'"):
		width, unsigned, i = 2, true, 1
	case hasPrefix(raw, "U'"):
		width, unsigned, i = 4, true, 1
	case hasPrefix(raw, "'"):
		i = 0
	default:
		return CharConstant{}, diag.New(diag.BadCharacterSequence, "character constant missing opening quote: %q", raw)
	}
	if i >= len(raw) || raw[i] != '\'' {
		return CharConstant{}, diag.New(diag.BadCharacterSequence, "character constant missing opening quote: %q", raw)
	}
	i++
	if i >= len(raw) {
		return CharConstant{}, diag.New(diag.CharacterConstantTooShort, "character constant has no content: %q", raw)
	}

	var value rune
	if raw[i] == '\\' {
		v, n, err := decodeEscape(raw, i+1)
		if err != nil {
			return CharConstant{}, err
		}
		value = v
		i += 1 + n
	} else if raw[i] == '\'' {
		return CharConstant{}, diag.New(diag.CharacterConstantTooShort, "empty character constant")
	} else {
		r, n := decodeUTF8At(raw, i)
		value = r
		i += n
	}

	if i >= len(raw) || raw[i] != '\'' {
		return CharConstant{}, diag.New(diag.BadCharacterSequence, "character constant missing closing quote: %q", raw)
	}

	return CharConstant{Value: int64(value), Width: width, Unsigned: unsigned}, nil
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}

// decodeUTF8At decodes one UTF-8 code point at s[i]. An invalid lead byte
// decodes as utf8.RuneError with a 1-byte width, matching the spec's
// silent best-effort behavior here — BadUtf8 is raised by the
// string-literal path, which validates the whole literal at once.
func decodeUTF8At(s string, i int) (rune, int) {
	r, n := utf8.DecodeRuneInString(s[i:])
	return r, n
}
