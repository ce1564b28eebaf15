package namespace

import (
	"testing"

	"github.com/xyproto/cc11/internal/symbol"
	"github.com/xyproto/cc11/target"
	"github.com/xyproto/cc11/types"
)

func TestNewGlobalPopulatesBuiltins(t *testing.T) {
	sp := symbol.NewSpace()
	g := NewGlobal(target.LP64(), sp)
	e, ok := g.Root.Lookup(sp.Force("int32"))
	if !ok || e.Type != types.Type(g.Builtins.Int32) {
		t.Fatal("global scope should resolve the built-in int32 typedef")
	}
}

func TestScopeChainLookup(t *testing.T) {
	sp := symbol.NewSpace()
	g := NewGlobal(target.LP64(), sp)
	child := NewScope(g.Root)
	x := sp.Force("x")
	child.Declare(x, Entry{Type: g.Builtins.Int32})

	if _, ok := g.Root.Lookup(x); ok {
		t.Fatal("parent scope must not see a child's declaration")
	}
	if _, ok := child.Lookup(x); !ok {
		t.Fatal("child scope must see its own declaration")
	}
	if _, ok := child.Lookup(sp.Force("int32")); !ok {
		t.Fatal("child scope must see a builtin declared in an ancestor")
	}
}

func TestLookupLocalDoesNotWalkChain(t *testing.T) {
	sp := symbol.NewSpace()
	g := NewGlobal(target.LP64(), sp)
	child := NewScope(g.Root)
	if _, ok := child.LookupLocal(sp.Force("int32")); ok {
		t.Fatal("LookupLocal must not walk to the parent scope")
	}
}

func TestAddByTagDuplicateDifferentKind(t *testing.T) {
	sp := symbol.NewSpace()
	g := NewGlobal(target.LP64(), sp)
	tag := sp.Force("foo")
	prof := target.LP64()

	s, err := types.NewStruct(tag, []types.Member{{Name: sp.Force("a"), Type: types.NewInt(4, false)}}, prof)
	if err != nil {
		t.Fatalf("NewStruct: %v", err)
	}
	if _, err := g.Root.AddByTag(tag, s); err != nil {
		t.Fatalf("first AddByTag: %v", err)
	}

	u, err := types.NewUnion(tag, []types.Member{{Name: sp.Force("b"), Type: types.NewInt(4, false)}}, prof)
	if err != nil {
		t.Fatalf("NewUnion: %v", err)
	}
	if _, err := g.Root.AddByTag(tag, u); err == nil {
		t.Fatal("expected error redeclaring a tag with a different aggregate kind")
	}
}

func TestAddByTagCompletesForwardDeclaration(t *testing.T) {
	sp := symbol.NewSpace()
	g := NewGlobal(target.LP64(), sp)
	tag := sp.Force("node")

	fwd := types.NewIncompleteStruct(tag)
	if _, err := g.Root.AddByTag(tag, fwd); err != nil {
		t.Fatalf("AddByTag(forward): %v", err)
	}

	full, err := types.NewStruct(tag, []types.Member{{Name: sp.Force("v"), Type: types.NewInt(4, false)}}, target.LP64())
	if err != nil {
		t.Fatalf("NewStruct: %v", err)
	}
	existing, err := g.Root.AddByTag(tag, full)
	if err != nil {
		t.Fatalf("AddByTag(complete): %v", err)
	}
	if existing != types.Type(fwd) {
		t.Fatal("AddByTag should return the original forward-declared entry for the caller to complete in place")
	}
}

func TestBuiltinAccessorsRespectProfile(t *testing.T) {
	sp := symbol.NewSpace()
	g := NewGlobal(target.ILP32(), sp)
	if g.GetSizeType().Width != 4 {
		t.Fatalf("ILP32 size_t width = %d, want 4", g.GetSizeType().Width)
	}
	win := NewGlobal(target.Win64(), symbol.NewSpace())
	if win.GetPtrDiffType().Width != 8 {
		t.Fatalf("Win64 ptrdiff_t width = %d, want 8", win.GetPtrDiffType().Width)
	}
}

func TestIDTableGrows(t *testing.T) {
	sp := symbol.NewSpace()
	g := NewGlobal(target.LP64(), sp)
	for i := 0; i < 200; i++ {
		name := "v" + string(rune('a'+i%26)) + string(rune('0'+i%10))
		g.Root.Declare(sp.Force(name), Entry{Type: g.Builtins.Int32})
	}
	for i := 0; i < 200; i++ {
		name := "v" + string(rune('a'+i%26)) + string(rune('0'+i%10))
		if _, ok := g.Root.Lookup(sp.Force(name)); !ok {
			t.Fatalf("lost declaration for %s after growth", name)
		}
	}
}
