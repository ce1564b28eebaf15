package position

import (
	"testing"

	"github.com/xyproto/cc11/internal/symbol"
)

func TestRootChasesExpansion(t *testing.T) {
	sp := symbol.NewSpace()
	f := sp.Force("main.c")
	site := New(f, 10, 1, 100)
	inner := New(f, 10, 5, 104).WithExpansion(site)
	if inner.Root() != site {
		t.Fatalf("Root did not chase to the macro invocation site")
	}
	if site.Root() != site {
		t.Fatalf("Root of a non-expanded position must be itself")
	}
}

func TestString(t *testing.T) {
	sp := symbol.NewSpace()
	f := sp.Force("a.c")
	p := New(f, 3, 7, 0)
	if got, want := p.String(), "a.c:3:7"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
