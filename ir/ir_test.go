package ir

import "testing"

func TestWidthOfBytes(t *testing.T) {
	cases := map[int]Width{1: Width1, 2: Width2, 4: Width4, 8: Width8}
	for bytes, want := range cases {
		if got := WidthOf(bytes); got != want {
			t.Fatalf("WidthOf(%d) = %v, want %v", bytes, got, want)
		}
		if want.Bytes() != bytes {
			t.Fatalf("Width(%v).Bytes() = %d, want %d", want, want.Bytes(), bytes)
		}
	}
}

func TestBlockAppendLinksNodes(t *testing.T) {
	b := NewBlock("entry")
	n1 := Unary(OpUnaryNeg, Reg(0, Width4), Reg(1, Width4))
	n2 := Unary(OpUnaryNot, Reg(1, Width4), Reg(2, Width4))
	b.Append(n1)
	b.Append(n2)

	if b.First() != n1 || b.Last() != n2 {
		t.Fatal("block should track first/last nodes")
	}
	if n1.Next() != n2 || n2.Prev() != n1 {
		t.Fatal("nodes should be doubly linked")
	}
}

func TestFunctionEntryBlock(t *testing.T) {
	f := NewFunction("main")
	if f.Entry == nil || len(f.Blocks) != 1 {
		t.Fatal("a new function should start with exactly one entry block")
	}
	b2 := f.NewBlock("loop")
	if len(f.Blocks) != 2 || f.Blocks[1] != b2 {
		t.Fatal("NewBlock should append to the function's block list")
	}
}

func TestJumpCondTargetsBlock(t *testing.T) {
	f := NewFunction("f")
	target := f.NewBlock("taken")
	n := JumpCond(Reg(0, Width1), target)
	if n.Kind != KindJumpCond || n.Target != target {
		t.Fatal("JumpCond should record its condition register and target block")
	}
}

func TestReturnRegCarriesLocation(t *testing.T) {
	n := ReturnReg(Imm(7, Width8))
	if n.Kind != KindReturnReg || n.RetArg.Kind != LocImmediate || n.RetArg.Immediate != 7 {
		t.Fatalf("got %+v", n)
	}
}
