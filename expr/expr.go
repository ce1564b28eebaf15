// Package expr implements the Expression Builder of §4.6: typed tree
// constructors that validate operand shapes, derive each node's
// value-type, and fold a constant when every operand is itself constant.
// It follows the same sealed-interface shape as package types (a marker
// method closes the variant set) and the teacher's ast.go Expression
// interface it generalizes from.
package expr

import (
	"github.com/xyproto/cc11/constant"
	"github.com/xyproto/cc11/internal/position"
	"github.com/xyproto/cc11/internal/symbol"
	"github.com/xyproto/cc11/types"
)

// Expr is implemented by every expression node kind named in §3.
type Expr interface {
	ValueType() types.Type
	Constant() *constant.Value
	Position() *position.Position
	exprNode()
}

// base holds the fields every Expr carries: a (possibly nil during
// construction) value-type, an optional folded constant, and the source
// position the node was built from.
type base struct {
	valueType types.Type
	folded    *constant.Value
	pos       *position.Position
}

func (b *base) ValueType() types.Type        { return b.valueType }
func (b *base) Constant() *constant.Value    { return b.folded }
func (b *base) Position() *position.Position { return b.pos }

// Op is a unary or binary operator token.
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpShl
	OpShr
	OpAnd
	OpOr
	OpXor
	OpLAnd
	OpLOr
	OpLt
	OpLe
	OpGt
	OpGe
	OpEq
	OpNe
	OpComma

	OpNeg    // unary -
	OpNot    // unary !
	OpBitNot // unary ~
	OpAddr   // unary &
	OpDeref  // unary *
)

type Unary struct {
	base
	Op      Op
	Operand Expr
}

func (*Unary) exprNode() {}

type Binary struct {
	base
	Op          Op
	Left, Right Expr
}

func (*Binary) exprNode() {}

// InplaceUnary covers ++/-- in prefix or postfix position.
type InplaceUnary struct {
	base
	Operand Expr
	Postfix bool
	Incr    bool // true: ++, false: --
}

func (*InplaceUnary) exprNode() {}

// InplaceBinary covers compound assignment: =, +=, -=, and so on. Op
// names the underlying binary operator; plain assignment uses a zero
// Op value with IsPlainAssign set.
type InplaceBinary struct {
	base
	Op            Op
	IsPlainAssign bool
	Left, Right   Expr
}

func (*InplaceBinary) exprNode() {}

type Ternary struct {
	base
	Cond, Then, Else Expr
}

func (*Ternary) exprNode() {}

type Call struct {
	base
	Callee Expr
	Args   []Expr
}

func (*Call) exprNode() {}

type Cast struct {
	base
	Target  types.Type
	Operand Expr
}

func (*Cast) exprNode() {}

// GenericAssoc is one _Generic association: Type nil selects the
// "default" association.
type GenericAssoc struct {
	Type   types.Type
	Result Expr
}

// GenericSelection is the supplemented _Generic (C11 6.5.1.1) generic-
// selection expression: SPEC_FULL.md's addition over the distilled spec.
type GenericSelection struct {
	base
	Controlling Expr
	Assocs      []GenericAssoc
	Chosen      Expr // the selected association's result, once resolved
}

func (*GenericSelection) exprNode() {}

type MemberAccess struct {
	base
	Object Expr
	Name   *symbol.Symbol
	Arrow  bool
}

func (*MemberAccess) exprNode() {}

type Subscript struct {
	base
	Array, Index Expr
}

func (*Subscript) exprNode() {}

// IdentifierRef refers to a previously declared ordinary identifier.
type IdentifierRef struct {
	base
	Name *symbol.Symbol
}

func (*IdentifierRef) exprNode() {}

type IntegerLiteral struct {
	base
	Value uint64
}

func (*IntegerLiteral) exprNode() {}

type FloatLiteral struct {
	base
	Value float64
}

func (*FloatLiteral) exprNode() {}

type CharLiteral struct {
	base
	Value int64
}

func (*CharLiteral) exprNode() {}

type StringLiteral struct {
	base
	Bytes []byte
}

func (*StringLiteral) exprNode() {}

// EnumConstant refers to one value of an already-constructed EnumT.
type EnumConstant struct {
	base
	Enum *types.EnumT
	Name *symbol.Symbol
}

func (*EnumConstant) exprNode() {}

// SizeofType/SizeofExpr/AlignofType/AlignofExpr model the four spellings
// of sizeof/alignof: applied to a type name or to an expression's type.
type SizeofType struct {
	base
	Of types.Type
}

func (*SizeofType) exprNode() {}

type SizeofExpr struct {
	base
	Of Expr
}

func (*SizeofExpr) exprNode() {}

type AlignofType struct {
	base
	Of types.Type
}

func (*AlignofType) exprNode() {}

type AlignofExpr struct {
	base
	Of Expr
}

func (*AlignofExpr) exprNode() {}

// InitPiece is one flattened, designator-resolved piece of a structured
// initializer: Offset/Length locate it within the aggregate's storage,
// Value is the (possibly nested) initializing expression.
type InitPiece struct {
	Offset int
	Length int
	Value  Expr
}

// CompoundLiteral is a typed structured initializer: `(T){ ... }`.
type CompoundLiteral struct {
	base
	Type   types.Type
	Pieces []InitPiece
}

func (*CompoundLiteral) exprNode() {}
