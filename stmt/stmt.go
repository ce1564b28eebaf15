// Package stmt implements the Statement Builder of §4.7: control-flow
// constructors that validate conditions, a structural switch-body walk
// that builds a deduplicated case-value table, and declaration records
// carrying a storage-class mask. It follows the same sealed-interface
// shape as packages types and expr (a marker method closes the variant
// set), generalized from the teacher's ast.go Statement interface.
package stmt

import (
	"github.com/xyproto/cc11/diag"
	"github.com/xyproto/cc11/expr"
	"github.com/xyproto/cc11/internal/position"
	"github.com/xyproto/cc11/internal/symbol"
	"github.com/xyproto/cc11/types"
)

// Stmt is implemented by every statement node kind named in §4.7.
type Stmt interface {
	Position() *position.Position
	stmtNode()
}

type base struct {
	pos *position.Position
}

func (b *base) Position() *position.Position { return b.pos }

// StorageClass is a bitmask over the six storage-class specifiers a
// declaration may carry.
type StorageClass uint8

const (
	Typedef StorageClass = 1 << iota
	Extern
	Static
	ThreadLocal
	Auto
	Register
)

func (s StorageClass) Has(f StorageClass) bool { return s&f != 0 }

type Compound struct {
	base
	Body []Stmt
}

func (*Compound) stmtNode() {}

type ExprStmt struct {
	base
	Expr expr.Expr
}

func (*ExprStmt) stmtNode() {}

// Declaration carries a storage-class mask and an optional initializer,
// per §4.7's declaration contract.
type Declaration struct {
	base
	Name    *symbol.Symbol
	Type    types.Type
	Storage StorageClass
	Init    expr.Expr
}

func (*Declaration) stmtNode() {}

type If struct {
	base
	Cond       expr.Expr
	Then, Else Stmt // Else nil if absent
}

func (*If) stmtNode() {}

type While struct {
	base
	Cond expr.Expr
	Body Stmt
}

func (*While) stmtNode() {}

type DoWhile struct {
	base
	Body Stmt
	Cond expr.Expr
}

func (*DoWhile) stmtNode() {}

// For's Init/Advance/Cond are each nil if the clause was omitted; Cond nil
// means "always true" per C11's for-statement grammar.
type For struct {
	base
	Init    Stmt
	Cond    expr.Expr
	Advance expr.Expr
	Body    Stmt
}

func (*For) stmtNode() {}

// CaseEntry is one resolved case value in a switch's deduplicated table,
// in ascending sorted order.
type CaseEntry struct {
	Value int64
	Body  Stmt // the statement the case label is attached to
}

type Switch struct {
	base
	Value   expr.Expr
	Body    Stmt
	Cases   []CaseEntry // sorted ascending by Value, built by BuildSwitch
	Default Stmt        // nil if no default
}

func (*Switch) stmtNode() {}

type Labeled struct {
	base
	Label *symbol.Symbol
	Body  Stmt
}

func (*Labeled) stmtNode() {}

// Case and Default mark the statement a case/default label is attached
// to; BuildSwitch walks these out of a switch body into Switch.Cases and
// Switch.Default, but the nodes themselves remain in the body's
// statement list (they're ordinary Stmt values anywhere a label can
// appear).
type Case struct {
	base
	Value expr.Expr
	Body  Stmt
}

func (*Case) stmtNode() {}

type Default struct {
	base
	Body Stmt
}

func (*Default) stmtNode() {}

type Goto struct {
	base
	Label *symbol.Symbol
}

func (*Goto) stmtNode() {}

type Break struct{ base }

func (*Break) stmtNode() {}

type Continue struct{ base }

func (*Continue) stmtNode() {}

// Return's Value is nil for a bare `return;`.
type Return struct {
	base
	Value expr.Expr
}

func (*Return) stmtNode() {}

// NewIf validates cond is scalar (§4.7: if/while/do-while/for conditions
// must have scalar type, failing ExprNotCondition otherwise).
func NewIf(cond expr.Expr, then, els Stmt, pos *position.Position) (*If, *diag.Error) {
	if err := requireCondition(cond, pos); err != nil {
		return nil, err
	}
	return &If{base: base{pos: pos}, Cond: cond, Then: then, Else: els}, nil
}

func NewWhile(cond expr.Expr, body Stmt, pos *position.Position) (*While, *diag.Error) {
	if err := requireCondition(cond, pos); err != nil {
		return nil, err
	}
	return &While{base: base{pos: pos}, Cond: cond, Body: body}, nil
}

func NewDoWhile(body Stmt, cond expr.Expr, pos *position.Position) (*DoWhile, *diag.Error) {
	if err := requireCondition(cond, pos); err != nil {
		return nil, err
	}
	return &DoWhile{base: base{pos: pos}, Body: body, Cond: cond}, nil
}

// NewFor validates cond only when present — an omitted for-condition is
// implicitly true and carries no type to check.
func NewFor(init Stmt, cond, advance expr.Expr, body Stmt, pos *position.Position) (*For, *diag.Error) {
	if cond != nil {
		if err := requireCondition(cond, pos); err != nil {
			return nil, err
		}
	}
	return &For{base: base{pos: pos}, Init: init, Cond: cond, Advance: advance, Body: body}, nil
}

func requireCondition(cond expr.Expr, pos *position.Position) *diag.Error {
	if !types.IsScalar(cond.ValueType()) {
		return diag.New(diag.ExprNotCondition, "condition must have scalar type, got %s", cond.ValueType().String()).AttachPosition(pos)
	}
	return nil
}

// NewSwitch validates the switch value has integer type, then walks body
// structurally to build the deduplicated case table (§4.7's descent
// rule). The Value's int width is required to interpret each case
// constant's Int64(), but folding itself already happened in expr — this
// builder only demands the result be a value-kind constant.
func NewSwitch(value expr.Expr, body Stmt, pos *position.Position) (*Switch, *diag.Error) {
	if !types.IsInteger(value.ValueType()) {
		return nil, diag.New(diag.BadOperatorTypes, "switch value must have integer type, got %s", value.ValueType().String())
	}
	sw := &Switch{base: base{pos: pos}, Value: value, Body: body}
	tree := newCaseTree()
	if err := collectCases(body, tree, sw); err != nil {
		return nil, err
	}
	sw.Cases = tree.sortedEntries()
	return sw, nil
}

// collectCases performs §4.7's structural descent: compound statements,
// both arms of if, for's init/body (advance carries no substatements to
// descend into), while/do-while bodies are descended into; a nested
// switch's own body is not (its cases bind inward, to that switch).
func collectCases(s Stmt, tree *caseTree, sw *Switch) *diag.Error {
	switch v := s.(type) {
	case nil:
		return nil
	case *Compound:
		for _, sub := range v.Body {
			if err := collectCases(sub, tree, sw); err != nil {
				return err
			}
		}
	case *If:
		if err := collectCases(v.Then, tree, sw); err != nil {
			return err
		}
		return collectCases(v.Else, tree, sw)
	case *For:
		if err := collectCases(v.Init, tree, sw); err != nil {
			return err
		}
		return collectCases(v.Body, tree, sw)
	case *While:
		return collectCases(v.Body, tree, sw)
	case *DoWhile:
		return collectCases(v.Body, tree, sw)
	case *Labeled:
		return collectCases(v.Body, tree, sw)
	case *Case:
		c := v.Value.Constant()
		if c == nil || c.IsFail() {
			return diag.New(diag.CaseExprNonconstant, "case label must be a constant expression").AttachPosition(v.Position())
		}
		if !tree.insert(c.Int64(), v.Body) {
			return diag.New(diag.CaseDuplicate, "duplicate case value %d", c.Int64()).AttachPosition(v.Position())
		}
		return collectCases(v.Body, tree, sw)
	case *Default:
		if sw.Default != nil {
			return diag.New(diag.CaseDuplicate, "switch already has a default label").AttachPosition(v.Position())
		}
		sw.Default = v.Body
		return collectCases(v.Body, tree, sw)
	case *Switch:
		// A nested switch's cases bind to it, not to sw: do not descend.
		return nil
	}
	return nil
}

// NewDeclaration validates an initializer, when present, is implicitly
// convertible to declType — modeled here as "compatible once usual
// arithmetic conversions or pointer-compatibility apply," mirroring the
// assignment-conversion rule §4.6 uses for call arguments.
func NewDeclaration(name *symbol.Symbol, declType types.Type, storage StorageClass, init expr.Expr, pos *position.Position) (*Declaration, *diag.Error) {
	if init != nil {
		if err := checkAssignable(declType, init.ValueType()); err != nil {
			return nil, err
		}
	}
	return &Declaration{base: base{pos: pos}, Name: name, Type: declType, Storage: storage, Init: init}, nil
}

func checkAssignable(dst, src types.Type) *diag.Error {
	if types.IsArithmetic(dst) && types.IsArithmetic(src) {
		return nil
	}
	if types.IsPointer(dst) && types.IsPointer(src) {
		if types.Compatible(types.PointerDereference(dst), types.PointerDereference(src)) {
			return nil
		}
		return diag.New(diag.BadOperatorTypes, "incompatible pointer types in initialization: %s and %s", dst.String(), src.String())
	}
	if types.Compatible(dst, src) {
		return nil
	}
	return diag.New(diag.BadOperatorTypes, "cannot initialize %s from %s", dst.String(), src.String())
}

func NewLabeled(label *symbol.Symbol, body Stmt, pos *position.Position) *Labeled {
	return &Labeled{base: base{pos: pos}, Label: label, Body: body}
}

func NewGoto(label *symbol.Symbol, pos *position.Position) *Goto {
	return &Goto{base: base{pos: pos}, Label: label}
}

func NewReturn(value expr.Expr, pos *position.Position) *Return {
	return &Return{base: base{pos: pos}, Value: value}
}

// Destroy recurses into s's substatements, a no-op placeholder for the
// reference-dropping destructor §4.7 describes: Go's GC reclaims the
// tree once unreachable, but this still walks it once so a caller
// porting the C original's explicit-destruction discipline has a single
// place to hang Unref calls on attached expressions/types/positions.
func Destroy(s Stmt) {
	switch v := s.(type) {
	case nil:
		return
	case *Compound:
		for _, sub := range v.Body {
			Destroy(sub)
		}
	case *If:
		Destroy(v.Then)
		Destroy(v.Else)
	case *While:
		Destroy(v.Body)
	case *DoWhile:
		Destroy(v.Body)
	case *For:
		Destroy(v.Init)
		Destroy(v.Body)
	case *Switch:
		Destroy(v.Body)
	case *Labeled:
		Destroy(v.Body)
	case *Case:
		Destroy(v.Body)
	case *Default:
		Destroy(v.Body)
	}
}
