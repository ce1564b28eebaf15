// Package position implements the immutable source-position records the
// rest of the core attaches to types, expressions, statements and
// diagnostics. A Position never mutates after construction; ExpandedFrom
// and IncludedFrom links form the provenance chains the spec requires
// (an expansion chain is linear, an include chain is a tree read from the
// leaf upward).
package position

import "github.com/xyproto/cc11/internal/symbol"

// Position is one point in the original (already macro-expanded) token
// stream, plus optional provenance.
type Position struct {
	File   *symbol.Symbol
	Line   int
	Column int
	Offset int // byte offset within File

	// ExpandedFrom, when non-nil, is the position of the macro invocation
	// that produced this token; chasing it repeatedly reaches the
	// outermost expansion site.
	ExpandedFrom *Position

	// IncludedFrom, when non-nil, is the position of the #include
	// directive that pulled File into the translation unit.
	IncludedFrom *Position
}

// New constructs a Position with no provenance.
func New(file *symbol.Symbol, line, column, offset int) *Position {
	return &Position{File: file, Line: line, Column: column, Offset: offset}
}

// WithExpansion returns a copy of p attributed to having been produced by
// expanding a macro invoked at from.
func (p *Position) WithExpansion(from *Position) *Position {
	cp := *p
	cp.ExpandedFrom = from
	return &cp
}

// WithInclusion returns a copy of p attributed to a file pulled in by an
// #include processed at p2.
func (p *Position) WithInclusion(p2 *Position) *Position {
	cp := *p
	cp.IncludedFrom = p2
	return &cp
}

// Root walks ExpandedFrom links to the outermost macro invocation site, or
// returns p itself if it was not produced by expansion.
func (p *Position) Root() *Position {
	cur := p
	for cur.ExpandedFrom != nil {
		cur = cur.ExpandedFrom
	}
	return cur
}

// String renders "file:line:column", the form diagnostics attach verbatim.
func (p *Position) String() string {
	file := "<unknown>"
	if p.File != nil {
		file = p.File.Name()
	}
	return file + ":" + itoa(p.Line) + ":" + itoa(p.Column)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
