package expr

import (
	"github.com/xyproto/cc11/constant"
	"github.com/xyproto/cc11/diag"
	"github.com/xyproto/cc11/internal/position"
	"github.com/xyproto/cc11/internal/symbol"
	"github.com/xyproto/cc11/target"
	"github.com/xyproto/cc11/types"
)

// NewIntegerLiteral builds a folded integer constant expression. sign
// and suffix width/unsignedness are the caller's (litparse's) job; this
// constructor just wraps the already-classified value.
func NewIntegerLiteral(value uint64, width int, unsigned bool, pos *position.Position) *IntegerLiteral {
	var c constant.Value
	if unsigned {
		c = constant.NewUnsignedInt(width, value)
	} else {
		c = constant.NewSignedInt(width, int64(value))
	}
	return &IntegerLiteral{
		base:  base{valueType: types.NewInt(width, unsigned), folded: &c, pos: pos},
		Value: value,
	}
}

func NewFloatLiteral(value float64, width types.FloatWidth, realSize int, pos *position.Position) *FloatLiteral {
	c := constant.NewReal(width, realSize, value)
	return &FloatLiteral{
		base:  base{valueType: types.NewFloat(width, types.Real, realSize), folded: &c, pos: pos},
		Value: value,
	}
}

func NewCharLiteral(value int64, width int, unsigned bool, pos *position.Position) *CharLiteral {
	var c constant.Value
	if unsigned {
		c = constant.NewUnsignedInt(width, uint64(value))
	} else {
		c = constant.NewSignedInt(width, value)
	}
	return &CharLiteral{
		base:  base{valueType: types.NewInt(width, unsigned), folded: &c, pos: pos},
		Value: value,
	}
}

// NewStringLiteral's value-type is an array of elemType sized len(bytes)
// in elements of elemWidth, plus one element for the implicit NUL
// terminator; bytes must not already include that terminator.
func NewStringLiteral(bytes []byte, elemType types.Type, elemWidth int, pos *position.Position) *StringLiteral {
	count := len(bytes)/elemWidth + 1 // +1 for the implicit NUL terminator
	arr := types.NewArray(elemType, count)
	return &StringLiteral{base: base{valueType: arr, pos: pos}, Bytes: bytes}
}

func NewIdentifierRef(name *symbol.Symbol, valueType types.Type, folded *constant.Value, pos *position.Position) *IdentifierRef {
	return &IdentifierRef{base: base{valueType: valueType, folded: folded, pos: pos}, Name: name}
}

func NewEnumConstant(enum *types.EnumT, name *symbol.Symbol, pos *position.Position) (*EnumConstant, *diag.Error) {
	v, ok := enum.LookupValueBySymbol(name)
	if !ok {
		return nil, diag.New(diag.MemberNotFound, "enum %s has no member %q", enum.String(), name.Name())
	}
	width := enum.Sizeof()
	var c constant.Value
	if enum.Unsigned {
		c = constant.NewUnsignedInt(width, uint64(v.Value))
	} else {
		c = constant.NewSignedInt(width, v.Value)
	}
	return &EnumConstant{base: base{valueType: enum, folded: &c, pos: pos}, Enum: enum, Name: name}, nil
}

// NewSizeofType implements sizeof(type): fails on function type per
// §4.6; the result is size_t-width unsigned with value type.Sizeof()
// (zero for an unsized array, per §4.4's array sizeof rule).
func NewSizeofType(t types.Type, sizeT *types.IntT, pos *position.Position) (*SizeofType, *diag.Error) {
	if _, ok := types.Dequalify(t).(*types.FunctionT); ok {
		return nil, diag.New(diag.BadAlignofArgument, "sizeof cannot be applied to a function type")
	}
	c := constant.NewUnsignedInt(sizeT.Sizeof(), uint64(t.Sizeof()))
	return &SizeofType{base: base{valueType: sizeT, folded: &c, pos: pos}, Of: t}, nil
}

func NewSizeofExpr(e Expr, sizeT *types.IntT, pos *position.Position) (*SizeofExpr, *diag.Error) {
	if _, ok := types.Dequalify(e.ValueType()).(*types.FunctionT); ok {
		return nil, diag.New(diag.BadAlignofArgument, "sizeof cannot be applied to a function type")
	}
	c := constant.NewUnsignedInt(sizeT.Sizeof(), uint64(e.ValueType().Sizeof()))
	return &SizeofExpr{base: base{valueType: sizeT, folded: &c, pos: pos}, Of: e}, nil
}

// NewAlignofType implements alignof(type): fails on function type or an
// incomplete struct/union, per §4.6.
func NewAlignofType(t types.Type, sizeT *types.IntT, pos *position.Position) (*AlignofType, *diag.Error) {
	if err := checkAlignofArgument(t); err != nil {
		return nil, err
	}
	c := constant.NewUnsignedInt(sizeT.Sizeof(), uint64(t.Alignof()))
	return &AlignofType{base: base{valueType: sizeT, folded: &c, pos: pos}, Of: t}, nil
}

func NewAlignofExpr(e Expr, sizeT *types.IntT, pos *position.Position) (*AlignofExpr, *diag.Error) {
	t := e.ValueType()
	if err := checkAlignofArgument(t); err != nil {
		return nil, err
	}
	c := constant.NewUnsignedInt(sizeT.Sizeof(), uint64(t.Alignof()))
	return &AlignofExpr{base: base{valueType: sizeT, folded: &c, pos: pos}, Of: e}, nil
}

func checkAlignofArgument(t types.Type) *diag.Error {
	d := types.Dequalify(t)
	if _, ok := d.(*types.FunctionT); ok {
		return diag.New(diag.BadAlignofArgument, "alignof cannot be applied to a function type")
	}
	switch v := d.(type) {
	case *types.StructT:
		if v.Incomplete {
			return diag.New(diag.BadAlignofArgument, "alignof cannot be applied to an incomplete struct")
		}
	case *types.UnionT:
		if v.Incomplete {
			return diag.New(diag.BadAlignofArgument, "alignof cannot be applied to an incomplete union")
		}
	}
	return nil
}

// NewUnary builds !, ~, unary -, & and *, validating each operator's
// shape per §4.6.
func NewUnary(op Op, operand Expr, prof *target.Profile, intWidth int, pos *position.Position) (*Unary, *diag.Error) {
	t := operand.ValueType()
	var resultType types.Type
	var folded *constant.Value

	switch op {
	case OpNot:
		resultType = types.NewInt(intWidth, false)
		if !types.IsScalar(t) {
			return nil, diag.New(diag.BadOperatorTypes, "'!' requires a scalar operand, got %s", t.String())
		}
		if c := operand.Constant(); c != nil {
			tri := constant.ScalarToTristate(*c)
			v := constant.NewSignedInt(intWidth, boolToInt(tri == constant.No))
			folded = &v
		}
	case OpBitNot:
		if !types.IsInteger(t) {
			return nil, diag.New(diag.BadOperatorTypes, "'~' requires an integer operand, got %s", t.String())
		}
		resultType = t
		if c := operand.Constant(); c != nil {
			v := constant.Not(*c)
			folded = &v
		}
	case OpNeg:
		if !types.IsArithmetic(t) {
			return nil, diag.New(diag.BadOperatorTypes, "unary '-' requires an arithmetic operand, got %s", t.String())
		}
		resultType = t
		if c := operand.Constant(); c != nil {
			v := constant.Negate(*c)
			folded = &v
		}
	case OpAddr:
		if !isLvalue(operand) {
			return nil, diag.New(diag.BadOperatorTypes, "'&' requires an lvalue operand")
		}
		resultType = types.NewPointer(t, prof.SizeofPointer)
	case OpDeref:
		if !types.IsPointer(t) {
			return nil, diag.New(diag.BadOperatorTypes, "'*' requires a pointer operand, got %s", t.String())
		}
		resultType = types.PointerDereference(t)
	default:
		return nil, diag.New(diag.BadOperatorTypes, "not a unary operator")
	}

	return &Unary{base: base{valueType: resultType, folded: folded, pos: pos}, Op: op, Operand: operand}, nil
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// isLvalue approximates §4.6's "identifier, deref, subscript, or
// member-access" lvalue shapes.
func isLvalue(e Expr) bool {
	switch e.(type) {
	case *IdentifierRef:
		return true
	case *Unary:
		return e.(*Unary).Op == OpDeref
	case *Subscript:
		return true
	case *MemberAccess:
		return true
	}
	return false
}

// NewBinary builds +, -, *, /, %, <<, >>, &, |, ^, comparisons, &&, ||
// and comma, applying each operator's shape rule and, for pointer
// arithmetic, the pointer-specific result type.
func NewBinary(op Op, left, right Expr, prof *target.Profile, intWidth int, ptrDiffWidth int, pos *position.Position) (*Binary, *diag.Error) {
	lt, rt := left.ValueType(), right.ValueType()

	switch op {
	case OpAdd, OpSub:
		return buildAdditive(op, left, right, lt, rt, prof, ptrDiffWidth, pos)
	case OpMul, OpDiv:
		return buildArithmeticOnly(op, left, right, lt, rt, prof, pos)
	case OpMod, OpShl, OpShr, OpAnd, OpOr, OpXor:
		return buildIntegerOnly(op, left, right, lt, rt, prof, pos)
	case OpLt, OpLe, OpGt, OpGe, OpEq, OpNe:
		return buildComparison(op, left, right, lt, rt, prof, intWidth, pos)
	case OpLAnd, OpLOr:
		return buildLogical(op, left, right, lt, rt, intWidth, pos)
	case OpComma:
		return &Binary{base: base{valueType: rt, folded: right.Constant(), pos: pos}, Op: op, Left: left, Right: right}, nil
	}
	return nil, diag.New(diag.BadOperatorTypes, "not a binary operator")
}

func buildAdditive(op Op, left, right Expr, lt, rt types.Type, prof *target.Profile, ptrDiffWidth int, pos *position.Position) (*Binary, *diag.Error) {
	if types.IsArithmetic(lt) && types.IsArithmetic(rt) {
		result, err := types.UsualArithmeticConversion(lt, rt, prof)
		if err != nil {
			return nil, err
		}
		return foldedBinary(op, left, right, result, pos), nil
	}
	if types.IsPointer(lt) && types.IsInteger(rt) {
		folded := foldPointerInteger(left, right, lt, op == OpSub)
		return &Binary{base: base{valueType: lt, folded: folded, pos: pos}, Op: op, Left: left, Right: right}, nil
	}
	if op == OpAdd && types.IsInteger(lt) && types.IsPointer(rt) {
		folded := foldPointerInteger(right, left, rt, false)
		return &Binary{base: base{valueType: rt, folded: folded, pos: pos}, Op: op, Left: left, Right: right}, nil
	}
	if op == OpSub && types.IsPointer(lt) && types.IsPointer(rt) {
		if !types.Compatible(types.PointerDereference(lt), types.PointerDereference(rt)) {
			return nil, diag.New(diag.BadOperatorTypes, "pointer subtraction requires compatible pointee types")
		}
		return &Binary{base: base{valueType: types.NewInt(ptrDiffWidth, false), pos: pos}, Op: op, Left: left, Right: right}, nil
	}
	return nil, diag.New(diag.BadOperatorTypes, "invalid operands to binary %s: %s and %s", opName(op), lt.String(), rt.String())
}

// foldPointerInteger implements §8 scenario 6's pointer-integer fold:
// when ptr is a constant and idx is a constant, the result folds to an
// offset-from-base constant with base ptr and delta idx·sizeof(pointee),
// negated when the operator is subtraction. Returns nil (leaving the
// binary node unfolded) when either operand is not constant.
func foldPointerInteger(ptr, idx Expr, ptrType types.Type, negate bool) *constant.Value {
	pc := ptr.Constant()
	ic := idx.Constant()
	if pc == nil || ic == nil {
		return nil
	}
	if pc.IsFail() {
		return pc
	}
	if ic.IsFail() {
		return ic
	}
	elemSize := int64(types.PointerDereference(ptrType).Sizeof())
	delta := ic.Int64() * elemSize
	if negate {
		delta = -delta
	}
	v := constant.NewOffset(*pc, delta)
	return &v
}

func buildArithmeticOnly(op Op, left, right Expr, lt, rt types.Type, prof *target.Profile, pos *position.Position) (*Binary, *diag.Error) {
	if !types.IsArithmetic(lt) || !types.IsArithmetic(rt) {
		return nil, diag.New(diag.BadOperatorTypes, "'%s' requires arithmetic operands, got %s and %s", opName(op), lt.String(), rt.String())
	}
	result, err := types.UsualArithmeticConversion(lt, rt, prof)
	if err != nil {
		return nil, err
	}
	return foldedBinary(op, left, right, result, pos), nil
}

func buildIntegerOnly(op Op, left, right Expr, lt, rt types.Type, prof *target.Profile, pos *position.Position) (*Binary, *diag.Error) {
	if !types.IsInteger(lt) || !types.IsInteger(rt) {
		return nil, diag.New(diag.BadOperatorTypes, "'%s' requires integer operands, got %s and %s", opName(op), lt.String(), rt.String())
	}
	result, err := types.UsualArithmeticConversion(lt, rt, prof)
	if err != nil {
		return nil, err
	}
	return foldedBinary(op, left, right, result, pos), nil
}

func buildComparison(op Op, left, right Expr, lt, rt types.Type, prof *target.Profile, intWidth int, pos *position.Position) (*Binary, *diag.Error) {
	bothArith := types.IsArithmetic(lt) && types.IsArithmetic(rt)
	bothPtr := types.IsPointer(lt) && types.IsPointer(rt) && types.Compatible(types.PointerDereference(lt), types.PointerDereference(rt))
	if !bothArith && !bothPtr {
		return nil, diag.New(diag.BadOperatorTypes, "'%s' requires comparable operands, got %s and %s", opName(op), lt.String(), rt.String())
	}
	resultType := types.Type(types.NewInt(intWidth, false))
	var folded *constant.Value
	if lc, rc := left.Constant(), right.Constant(); lc != nil && rc != nil && bothArith {
		a, b := *lc, *rc
		if _, err := types.UsualArithmeticConversion(lt, rt, prof); err == nil {
			v := compareFold(op, a, b, intWidth)
			folded = &v
		}
	}
	return &Binary{base: base{valueType: resultType, folded: folded, pos: pos}, Op: op, Left: left, Right: right}, nil
}

func compareFold(op Op, a, b constant.Value, intWidth int) constant.Value {
	switch op {
	case OpLt:
		return constant.Less(a, b, intWidth)
	case OpLe:
		return constant.LessEq(a, b, intWidth)
	case OpGt:
		return constant.Greater(a, b, intWidth)
	case OpGe:
		return constant.GreaterEq(a, b, intWidth)
	case OpEq:
		return constant.Equal(a, b, intWidth)
	default:
		return constant.NotEqual(a, b, intWidth)
	}
}

func buildLogical(op Op, left, right Expr, lt, rt types.Type, intWidth int, pos *position.Position) (*Binary, *diag.Error) {
	if !types.IsScalar(lt) || !types.IsScalar(rt) {
		return nil, diag.New(diag.BadOperatorTypes, "'%s' requires scalar operands", opName(op))
	}
	resultType := types.Type(types.NewInt(intWidth, false))
	var folded *constant.Value
	if lc := left.Constant(); lc != nil {
		ltri := constant.ScalarToTristate(*lc)
		// Short-circuit: && with a false left, or || with a true left,
		// folds without needing the right operand at all.
		if op == OpLAnd && ltri == constant.No {
			v := constant.NewSignedInt(intWidth, 0)
			folded = &v
		} else if op == OpLOr && ltri == constant.Yes {
			v := constant.NewSignedInt(intWidth, 1)
			folded = &v
		} else if rc := right.Constant(); rc != nil {
			rtri := constant.ScalarToTristate(*rc)
			if ltri != constant.Maybe && rtri != constant.Maybe {
				var result bool
				if op == OpLAnd {
					result = ltri == constant.Yes && rtri == constant.Yes
				} else {
					result = ltri == constant.Yes || rtri == constant.Yes
				}
				v := constant.NewSignedInt(intWidth, boolToInt(result))
				folded = &v
			}
		}
	}
	return &Binary{base: base{valueType: resultType, folded: folded, pos: pos}, Op: op, Left: left, Right: right}, nil
}

func foldedBinary(op Op, left, right Expr, resultType types.Type, pos *position.Position) *Binary {
	var folded *constant.Value
	if lc, rc := left.Constant(), right.Constant(); lc != nil && rc != nil {
		a, b := *lc, *rc
		switch rt := types.Dequalify(resultType).(type) {
		case *types.IntT:
			dom := constant.SignedInt
			if rt.Unsigned {
				dom = constant.UnsignedInt
			}
			a, b = constant.Cast(dom, rt.Width, 0, a), constant.Cast(dom, rt.Width, 0, b)
		case *types.FloatT:
			dom := []constant.Domain{constant.RealFloat, constant.ComplexFloat, constant.ImaginaryFloat}[rt.Domain]
			a, b = constant.Cast(dom, rt.Alignof(), rt.Width, a), constant.Cast(dom, rt.Alignof(), rt.Width, b)
		}
		v := arithFold(op, a, b)
		folded = &v
	}
	return &Binary{base: base{valueType: resultType, folded: folded, pos: pos}, Op: op, Left: left, Right: right}
}

func arithFold(op Op, a, b constant.Value) constant.Value {
	switch op {
	case OpAdd:
		return constant.Add(a, b)
	case OpSub:
		return constant.Sub(a, b)
	case OpMul:
		return constant.Mul(a, b)
	case OpDiv:
		return constant.Div(a, b)
	case OpMod:
		return constant.Rem(a, b)
	case OpShl:
		return constant.Shl(a, b)
	case OpShr:
		return constant.Shr(a, b)
	case OpAnd:
		return constant.And(a, b)
	case OpOr:
		return constant.Or(a, b)
	case OpXor:
		return constant.Xor(a, b)
	}
	return constant.NewFail(diag.BadOperatorTypes)
}

func opName(op Op) string {
	names := map[Op]string{
		OpAdd: "+", OpSub: "-", OpMul: "*", OpDiv: "/", OpMod: "%",
		OpShl: "<<", OpShr: ">>", OpAnd: "&", OpOr: "|", OpXor: "^",
		OpLAnd: "&&", OpLOr: "||", OpLt: "<", OpLe: "<=", OpGt: ">", OpGe: ">=",
		OpEq: "==", OpNe: "!=", OpComma: ",",
	}
	if n, ok := names[op]; ok {
		return n
	}
	return "?"
}

// NewTernary builds `cond ? then : else`, folding via the condition's
// tristate classification when it is constant.
func NewTernary(cond, then, els Expr, prof *target.Profile, pos *position.Position) (*Ternary, *diag.Error) {
	if !types.IsScalar(cond.ValueType()) {
		return nil, diag.New(diag.ExprNotCondition, "ternary condition must be scalar, got %s", cond.ValueType().String())
	}
	tt, et := then.ValueType(), els.ValueType()
	var resultType types.Type
	var err *diag.Error
	switch {
	case types.IsArithmetic(tt) && types.IsArithmetic(et):
		resultType, err = types.UsualArithmeticConversion(tt, et, prof)
	case types.IsPointer(tt) && types.IsPointer(et) && types.Compatible(types.PointerDereference(tt), types.PointerDereference(et)):
		resultType = tt
	default:
		err = diag.New(diag.BadOperatorTypes, "ternary arms must be compatible, got %s and %s", tt.String(), et.String())
	}
	if err != nil {
		return nil, err
	}

	var folded *constant.Value
	if cc := cond.Constant(); cc != nil {
		switch constant.ScalarToTristate(*cc) {
		case constant.Yes:
			folded = then.Constant()
		case constant.No:
			folded = els.Constant()
		}
	}
	return &Ternary{base: base{valueType: resultType, folded: folded, pos: pos}, Cond: cond, Then: then, Else: els}, nil
}

// NewCall validates the callee has function (or pointer-to-function)
// type and that arity matches (or, with varargs, is at least the
// declared parameter count).
func NewCall(callee Expr, args []Expr, pos *position.Position) (*Call, *diag.Error) {
	t := callee.ValueType()
	if p, ok := types.Dequalify(t).(*types.PointerT); ok {
		t = types.Dequalify(p.Target)
	}
	fn, ok := t.(*types.FunctionT)
	if !ok {
		return nil, diag.New(diag.BadOperatorTypes, "called object is not a function or function pointer, has type %s", callee.ValueType().String())
	}
	if len(args) < len(fn.Params) || (!fn.Varargs && len(args) != len(fn.Params)) {
		return nil, diag.New(diag.ArityMismatch, "call expects %d arguments, got %d", len(fn.Params), len(args))
	}
	return &Call{base: base{valueType: fn.Return, pos: pos}, Callee: callee, Args: args}, nil
}

// NewCast applies the constant engine's cast when operand is constant.
func NewCast(target types.Type, operand Expr, dstDomain constant.Domain, width int, fw types.FloatWidth, pos *position.Position) *Cast {
	var folded *constant.Value
	if c := operand.Constant(); c != nil {
		v := constant.Cast(dstDomain, width, fw, *c)
		folded = &v
	}
	return &Cast{base: base{valueType: target, folded: folded, pos: pos}, Target: target, Operand: operand}
}

// NewMemberAccess implements `.`/`->`: `.` requires struct/union; `->`
// additionally requires a pointer operand and auto-dereferences before
// the same by-symbol lookup `.` uses.
func NewMemberAccess(object Expr, name *symbol.Symbol, arrow bool, pos *position.Position) (*MemberAccess, *diag.Error) {
	t := object.ValueType()
	if arrow {
		if !types.IsPointer(t) {
			return nil, diag.New(diag.BadOperatorTypes, "'->' requires a pointer operand, got %s", t.String())
		}
		t = types.PointerDereference(t)
	}
	d := types.Dequalify(t)
	var memberType types.Type
	switch agg := d.(type) {
	case *types.StructT:
		m, ok := agg.LookupMemberBySymbol(name)
		if !ok {
			return nil, diag.New(diag.MemberNotFound, "struct %s has no member %q", agg.String(), name.Name())
		}
		memberType = m.Type
	case *types.UnionT:
		m, ok := agg.LookupBranchBySymbol(name)
		if !ok {
			return nil, diag.New(diag.MemberNotFound, "union %s has no member %q", agg.String(), name.Name())
		}
		memberType = m.Type
	default:
		return nil, diag.New(diag.BadOperatorTypes, "member access requires a struct or union operand, got %s", t.String())
	}
	return &MemberAccess{base: base{valueType: memberType, pos: pos}, Object: object, Name: name, Arrow: arrow}, nil
}

// NewSubscript implements a[i]: requires a pointer or array operand and
// an integer index, result type is the pointee/element type.
func NewSubscript(arr, index Expr, pos *position.Position) (*Subscript, *diag.Error) {
	if !types.IsInteger(index.ValueType()) {
		return nil, diag.New(diag.BadOperatorTypes, "array subscript must be an integer, got %s", index.ValueType().String())
	}
	d := types.Dequalify(arr.ValueType())
	var elem types.Type
	switch v := d.(type) {
	case *types.PointerT:
		elem = v.Target
	case *types.ArrayT:
		elem = v.Elem
	case *types.VLAT:
		elem = v.Elem
	default:
		return nil, diag.New(diag.BadOperatorTypes, "subscript requires a pointer, array or VLA operand, got %s", arr.ValueType().String())
	}
	return &Subscript{base: base{valueType: elem, pos: pos}, Array: arr, Index: index}, nil
}

// NewGenericSelection implements the supplemented _Generic expression
// (SPEC_FULL.md): the controlling expression's (unqualified) type is
// matched against each association's type in order; a match (or, absent
// one, the default association) is selected and the whole node adopts
// that association's type and fold.
func NewGenericSelection(controlling Expr, assocs []GenericAssoc, pos *position.Position) (*GenericSelection, *diag.Error) {
	ctrlType := types.Dequalify(controlling.ValueType())
	var chosen *GenericAssoc
	var defaultAssoc *GenericAssoc
	for i := range assocs {
		a := &assocs[i]
		if a.Type == nil {
			defaultAssoc = a
			continue
		}
		if types.Compatible(ctrlType, a.Type) {
			chosen = a
			break
		}
	}
	if chosen == nil {
		chosen = defaultAssoc
	}
	if chosen == nil {
		return nil, diag.New(diag.BadOperatorTypes, "_Generic: controlling expression type %s matches no association and there is no default", ctrlType.String())
	}
	return &GenericSelection{
		base:        base{valueType: chosen.Result.ValueType(), folded: chosen.Result.Constant(), pos: pos},
		Controlling: controlling,
		Assocs:      assocs,
		Chosen:      chosen.Result,
	}, nil
}

// NewCompoundLiteral wraps an already-flattened, designator-resolved
// piece list (the caller validates each piece's designator chain against
// t's shape — member for struct/union, subscript for array — before
// calling this). When every piece is constant the node itself carries no
// single scalar constant (a struct/array has no Value-domain
// representation in package constant), mirroring the spec's "assembles a
// literal-value constant of the right size" note at the byte-layout
// level the IR lowering stage is responsible for, not this builder.
func NewCompoundLiteral(t types.Type, pieces []InitPiece, pos *position.Position) *CompoundLiteral {
	return &CompoundLiteral{base: base{valueType: t, pos: pos}, Type: t, Pieces: pieces}
}
