// Package ir implements the §4.9 IR sketch: a basic-block linearization
// over locations (register / pointer-in-register / immediate), grounded
// on the teacher's reg.go register-allocation model and codegen.go's
// instruction-node shape, generalized from a native x86-64/ARM64 backend
// to the architecture-neutral node set §4.9 names.
package ir

// LocationKind discriminates a Location's three variants.
type LocationKind int

const (
	LocRegister LocationKind = iota
	LocPointerInRegister
	LocImmediate
)

// Width is log2(byte count), per §4.9's "each tagged with a width =
// log2(byte count)" rule: 0→1 byte, 1→2, 2→4, 3→8.
type Width int

const (
	Width1 Width = iota
	Width2
	Width4
	Width8
)

// WidthOf returns the Width tag for a byte count of 1, 2, 4 or 8.
func WidthOf(bytes int) Width {
	switch bytes {
	case 1:
		return Width1
	case 2:
		return Width2
	case 4:
		return Width4
	default:
		return Width8
	}
}

func (w Width) Bytes() int { return 1 << uint(w) }

// Location is a value's storage: a register index, a register holding a
// pointer, or an 8-byte immediate — each carries its own width.
type Location struct {
	Kind      LocationKind
	Width     Width
	Register  int   // valid for LocRegister/LocPointerInRegister
	Immediate int64 // valid for LocImmediate
}

func Reg(index int, w Width) Location {
	return Location{Kind: LocRegister, Width: w, Register: index}
}

func PtrReg(index int, w Width) Location {
	return Location{Kind: LocPointerInRegister, Width: w, Register: index}
}

func Imm(v int64, w Width) Location {
	return Location{Kind: LocImmediate, Width: w, Immediate: v}
}

// NodeOp discriminates the unary/binary arithmetic a Node performs. It is
// the IR's own enumeration, separate from expr.Op, and currently names
// only the operators listed below.
type NodeOp int

const (
	OpUnaryNeg NodeOp = iota
	OpUnaryNot
	OpUnaryBitNot
	OpBinaryAdd
	OpBinaryInstr // placeholder base; real binary ops follow
)

// NodeKind discriminates the eight node shapes §4.9 names.
type NodeKind int

const (
	KindUnary NodeKind = iota
	KindBinary
	KindJump
	KindJumpCond
	KindCallByName
	KindCallByPointer
	KindReturnVoid
	KindReturnReg
)

// Node is one instruction within a Block's doubly linked list.
type Node struct {
	Kind NodeKind
	Op   NodeOp

	Src, Src1, Src2, Dst Location

	Target  *Block // KindJump, KindJumpCond
	Cond    Location
	Name    string // KindCallByName
	PtrArg  Location // KindCallByPointer
	RetArg  Location // KindReturnReg

	prev, next *Node
}

// Block is a basic block: a doubly linked list of Nodes via Node.prev/next,
// plus the successor edges a terminal jump/jump-cond/return node implies.
type Block struct {
	first, last *Node
	label       string
}

func NewBlock(label string) *Block { return &Block{label: label} }

func (b *Block) Label() string { return b.label }

// Append adds n to the end of b's instruction list, wiring the doubly
// linked prev/next pointers.
func (b *Block) Append(n *Node) {
	n.prev, n.next = b.last, nil
	if b.last != nil {
		b.last.next = n
	} else {
		b.first = n
	}
	b.last = n
}

func (b *Block) First() *Node { return b.first }
func (b *Block) Last() *Node  { return b.last }

// Next and Prev expose the doubly linked traversal.
func (n *Node) Next() *Node { return n.next }
func (n *Node) Prev() *Node { return n.prev }

// Function is a set of basic blocks plus a distinguished entry block,
// per §4.9.
type Function struct {
	Name   string
	Entry  *Block
	Blocks []*Block
}

func NewFunction(name string) *Function {
	entry := NewBlock("entry")
	return &Function{Name: name, Entry: entry, Blocks: []*Block{entry}}
}

// NewBlock allocates a new block owned by f, labeled with label; the
// label is not checked for uniqueness within f.
func (f *Function) NewBlock(label string) *Block {
	b := NewBlock(label)
	f.Blocks = append(f.Blocks, b)
	return b
}

// --- Node constructors, one per §4.9 kind ---

func Unary(op NodeOp, src, dst Location) *Node {
	return &Node{Kind: KindUnary, Op: op, Src: src, Dst: dst}
}

func Binary(op NodeOp, src1, src2, dst Location) *Node {
	return &Node{Kind: KindBinary, Op: op, Src1: src1, Src2: src2, Dst: dst}
}

func Jump(target *Block) *Node {
	return &Node{Kind: KindJump, Target: target}
}

func JumpCond(cond Location, target *Block) *Node {
	return &Node{Kind: KindJumpCond, Cond: cond, Target: target}
}

func CallByName(name string) *Node {
	return &Node{Kind: KindCallByName, Name: name}
}

func CallByPointer(reg Location) *Node {
	return &Node{Kind: KindCallByPointer, PtrArg: reg}
}

func ReturnVoid() *Node {
	return &Node{Kind: KindReturnVoid}
}

func ReturnReg(reg Location) *Node {
	return &Node{Kind: KindReturnReg, RetArg: reg}
}
