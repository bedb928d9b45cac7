// Package typecheck transforms raw AST into typed AST, decorating every
// expression with a value type and every statement with a statement kind,
// and reporting diagnostics for anything that cannot be typed rather than
// failing outright.
//
// The checker is a small struct holding whatever context is needed (here,
// the variable catalog and the diagnostic sink) with one method per AST
// variant, dispatched through an exhaustive type switch rather than the
// visitor pattern.
package typecheck

import (
	"fmt"

	"github.com/tchecker-go/tchecker/pkg/diag"
	"github.com/tchecker-go/tchecker/pkg/lang/ast"
	"github.com/tchecker-go/tchecker/pkg/lang/typed"
	"github.com/tchecker-go/tchecker/pkg/vars"
)

// Checker type-checks expressions and statements against a fixed variable
// catalog, reporting diagnostics to an injected sink.  A Checker never
// panics on user error; malformed input is reported and poisoned instead.
type Checker struct {
	ints   *vars.IntVars
	clocks *vars.Clocks
	sink   diag.Sink
}

// New constructs a Checker over the given catalog, reporting to sink.
func New(catalog *vars.Catalog, sink diag.Sink) *Checker {
	return &Checker{catalog.Ints, catalog.Clocks, sink}
}

// CheckExpr type-checks a raw expression in the given diagnostic context
// (e.g. "Attribute invariant: x<=5"), returning its typed mirror.  Every
// diagnostic produced while checking e (and its descendants) is reported
// under context.
func (c *Checker) CheckExpr(context string, e ast.Expr) typed.Expr {
	return c.expr(context, e, false)
}

// CheckStmt type-checks a raw statement in the given diagnostic context,
// returning its typed mirror.
func (c *Checker) CheckStmt(context string, s ast.Stmt) typed.Stmt {
	return c.stmt(context, s)
}

// expr type-checks e.  preferClock hints that, where a bare identifier is
// ambiguous (declared as both an integer variable and a clock), the clock
// interpretation should be tried first: this is used only for the left
// operand of a comparison, where the clock-constraint shape
// (clock-lvalue(1), int-term) is the more specific of the two valid shapes.
// Every other position defaults to the integer interpretation.
func (c *Checker) expr(context string, e ast.Expr, preferClock bool) typed.Expr {
	switch n := e.(type) {
	case *ast.IntLit:
		return &typed.IntLit{Value: n.Value}
	case *ast.VarRef:
		return c.variable(context, n, preferClock)
	case *ast.ArrayAccess:
		return c.arrayAccess(context, n)
	case *ast.Unary:
		return c.unary(context, n)
	case *ast.BinArith:
		return c.binArith(context, n)
	case *ast.BinCmp:
		return c.binCmp(context, n)
	case *ast.BinLogic:
		return c.binLogic(context, n)
	case *ast.Paren:
		inner := c.expr(context, n.Inner, preferClock)
		return &typed.Paren{Inner: inner}
	default:
		c.sink.Error(context, "internal error: unrecognised expression")
		return &typed.Var{T: typed.IllTypedType, VarId: -1}
	}
}

// coercesToIntTerm reports whether an expression of type t may appear
// wherever an int-term is required: it must itself be an int-term, or be an
// integer lvalue that is implicitly read.
func coercesToIntTerm(t typed.Type) bool {
	return t.Kind == typed.IntTerm || t.Kind == typed.IntLvalue
}

func (c *Checker) variable(context string, n *ast.VarRef, preferClock bool) typed.Expr {
	if preferClock {
		if cv, ok := c.clocks.Lookup(n.Name); ok {
			return c.clockVarType(cv)
		}
	}
	//
	if iv, ok := c.ints.Lookup(n.Name); ok {
		return c.intVarType(iv)
	}
	//
	if cv, ok := c.clocks.Lookup(n.Name); ok {
		return c.clockVarType(cv)
	}
	//
	c.sink.Error(context, fmt.Sprintf("unknown identifier %q", n.Name))
	return &typed.Var{T: typed.IllTypedType, Name: n.Name, VarId: -1}
}

func (c *Checker) intVarType(v vars.IntVar) *typed.Var {
	t := typed.IntLvalueType(1)
	if v.Size > 1 {
		t = typed.IntArrayType(v.Size)
	}
	//
	return &typed.Var{T: t, Name: v.Name, VarId: v.Id, Offset: v.Offset}
}

func (c *Checker) clockVarType(v vars.Clock) *typed.Var {
	t := typed.ClockLvalueType(1)
	if v.Size > 1 {
		t = typed.ClockArrayType(v.Size)
	}
	//
	return &typed.Var{T: t, Name: v.Name, VarId: v.Id, Offset: v.Offset}
}

func (c *Checker) arrayAccess(context string, n *ast.ArrayAccess) *typed.ArrayAccess {
	var (
		base  = c.expr(context, n.Base, false)
		index = c.expr(context, n.Index, false)
	)
	// Index must be usable as an integer term.
	if !index.Type().IsIllTyped() && !coercesToIntTerm(index.Type()) {
		c.sink.Error(context, fmt.Sprintf("array index must be an integer (found %s)", index.Type()))
		return &typed.ArrayAccess{T: typed.IllTypedType, Base: base, Index: index, VarId: -1}
	}
	//
	if base.Type().IsIllTyped() || index.Type().IsIllTyped() {
		return &typed.ArrayAccess{T: typed.IllTypedType, Base: base, Index: index, VarId: -1}
	}
	//
	bv, isVar := underlyingVar(base)
	//
	switch base.Type().Kind {
	case typed.IntArray:
		elem := typed.IntLvalueType(1)
		if isVar {
			return &typed.ArrayAccess{T: elem, Base: base, Index: index, VarId: bv.VarId, BaseOffset: bv.Offset}
		}
		//
		return &typed.ArrayAccess{T: elem, Base: base, Index: index, VarId: -1}
	case typed.ClockArray:
		elem := typed.ClockLvalueType(1)
		if isVar {
			return &typed.ArrayAccess{T: elem, Base: base, Index: index, VarId: bv.VarId, BaseOffset: bv.Offset}
		}
		//
		return &typed.ArrayAccess{T: elem, Base: base, Index: index, VarId: -1}
	default:
		c.sink.Error(context, fmt.Sprintf("expected array (found %s)", base.Type()))
		return &typed.ArrayAccess{T: typed.IllTypedType, Base: base, Index: index, VarId: -1}
	}
}

// underlyingVar unwraps any Paren nodes to find the Var identifying the
// array being indexed.
func underlyingVar(e typed.Expr) (*typed.Var, bool) {
	switch n := e.(type) {
	case *typed.Var:
		return n, true
	case *typed.Paren:
		return underlyingVar(n.Inner)
	default:
		return nil, false
	}
}

// isClock reports whether t denotes a clock value in any shape: clocks may
// never participate in arithmetic or boolean negation, only comparisons and
// resets.
func isClock(t typed.Type) bool {
	return t.Kind == typed.ClockLvalue || t.Kind == typed.ClockArray
}

func (c *Checker) unary(context string, n *ast.Unary) *typed.Unary {
	arg := c.expr(context, n.Arg, false)
	//
	switch n.Op {
	case ast.Neg:
		if arg.Type().IsIllTyped() {
			return &typed.Unary{T: typed.IllTypedType, Op: n.Op, Arg: arg}
		} else if isClock(arg.Type()) {
			c.sink.Error(context, fmt.Sprintf("clock in arithmetic is not permitted (found %s)", arg.Type()))
			return &typed.Unary{T: typed.IllTypedType, Op: n.Op, Arg: arg}
		} else if !coercesToIntTerm(arg.Type()) {
			c.sink.Error(context, fmt.Sprintf("expected integer operand for unary '-' (found %s)", arg.Type()))
			return &typed.Unary{T: typed.IllTypedType, Op: n.Op, Arg: arg}
		}
		//
		return &typed.Unary{T: typed.IntTermType, Op: n.Op, Arg: arg}
	case ast.Not:
		if arg.Type().IsIllTyped() {
			return &typed.Unary{T: typed.IllTypedType, Op: n.Op, Arg: arg}
		} else if isClock(arg.Type()) {
			c.sink.Error(context, fmt.Sprintf("clock in '!' is not permitted (found %s)", arg.Type()))
			return &typed.Unary{T: typed.IllTypedType, Op: n.Op, Arg: arg}
		} else if arg.Type().Kind != typed.Bool {
			c.sink.Error(context, fmt.Sprintf("expected boolean operand for '!' (found %s)", arg.Type()))
			return &typed.Unary{T: typed.IllTypedType, Op: n.Op, Arg: arg}
		}
		//
		return &typed.Unary{T: typed.BoolType, Op: n.Op, Arg: arg}
	default:
		panic("unknown unary operator")
	}
}

func (c *Checker) binArith(context string, n *ast.BinArith) *typed.BinArith {
	var (
		left  = c.expr(context, n.Left, false)
		right = c.expr(context, n.Right, false)
		ill   = left.Type().IsIllTyped() || right.Type().IsIllTyped()
	)
	//
	if !ill && isClock(left.Type()) {
		c.sink.Error(context, fmt.Sprintf("clock in arithmetic is not permitted (found %s)", left.Type()))
		ill = true
	} else if !ill && !coercesToIntTerm(left.Type()) {
		c.sink.Error(context, fmt.Sprintf("expected integer operand for '%s' (found %s)", n.Op, left.Type()))
		ill = true
	}
	//
	if !ill && isClock(right.Type()) {
		c.sink.Error(context, fmt.Sprintf("clock in arithmetic is not permitted (found %s)", right.Type()))
		ill = true
	} else if !ill && !coercesToIntTerm(right.Type()) {
		c.sink.Error(context, fmt.Sprintf("expected integer operand for '%s' (found %s)", n.Op, right.Type()))
		ill = true
	}
	//
	if ill {
		return &typed.BinArith{T: typed.IllTypedType, Op: n.Op, Left: left, Right: right}
	}
	//
	return &typed.BinArith{T: typed.IntTermType, Op: n.Op, Left: left, Right: right}
}

func (c *Checker) binCmp(context string, n *ast.BinCmp) *typed.BinCmp {
	var (
		left  = c.expr(context, n.Left, true)
		right = c.expr(context, n.Right, false)
	)
	//
	if left.Type().IsIllTyped() || right.Type().IsIllTyped() {
		return &typed.BinCmp{T: typed.IllTypedType, Op: n.Op, Left: left, Right: right}
	}
	// (int-term, int-term) -> bool
	if coercesToIntTerm(left.Type()) && coercesToIntTerm(right.Type()) {
		return &typed.BinCmp{T: typed.BoolType, Op: n.Op, Left: left, Right: right, ClockConstraint: false}
	}
	// (clock-lvalue(1), int-term) -> bool, a clock constraint. '!=' is
	// excluded: whether it should hold as a conjunction of '<' and '>' is
	// unsettled, and this specification forbids it outright.
	if left.Type().Kind == typed.ClockLvalue && left.Type().Size == 1 && coercesToIntTerm(right.Type()) {
		if n.Op == ast.Ne {
			c.sink.Error(context, "clock constraints do not support '!='")
			return &typed.BinCmp{T: typed.IllTypedType, Op: n.Op, Left: left, Right: right}
		}
		//
		return &typed.BinCmp{T: typed.BoolType, Op: n.Op, Left: left, Right: right, ClockConstraint: true}
	}
	//
	msg := fmt.Sprintf("invalid comparison between %s and %s", left.Type(), right.Type())
	c.sink.Error(context, msg)
	return &typed.BinCmp{T: typed.IllTypedType, Op: n.Op, Left: left, Right: right}
}

func (c *Checker) binLogic(context string, n *ast.BinLogic) *typed.BinLogic {
	var (
		left  = c.expr(context, n.Left, false)
		right = c.expr(context, n.Right, false)
		ill   = left.Type().IsIllTyped() || right.Type().IsIllTyped()
	)
	//
	if !ill && left.Type().Kind != typed.Bool {
		c.sink.Error(context, fmt.Sprintf("expected boolean operand for '%s' (found %s)", n.Op, left.Type()))
		ill = true
	}
	//
	if !ill && right.Type().Kind != typed.Bool {
		c.sink.Error(context, fmt.Sprintf("expected boolean operand for '%s' (found %s)", n.Op, right.Type()))
		ill = true
	}
	//
	if ill {
		return &typed.BinLogic{T: typed.IllTypedType, Op: n.Op, Left: left, Right: right}
	}
	//
	return &typed.BinLogic{T: typed.BoolType, Op: n.Op, Left: left, Right: right}
}

// stmt type-checks s.
func (c *Checker) stmt(context string, s ast.Stmt) typed.Stmt {
	switch n := s.(type) {
	case *ast.Nop:
		return &typed.Nop{}
	case *ast.Assign:
		return c.assign(context, n)
	case *ast.Seq:
		left := c.stmt(context, n.Left)
		right := c.stmt(context, n.Right)
		k := typed.KindSequence
		//
		if left.Kind() == typed.KindIllTyped || right.Kind() == typed.KindIllTyped {
			k = typed.KindIllTyped
		}
		//
		return &typed.Seq{K: k, Left: left, Right: right}
	default:
		c.sink.Error(context, "internal error: unrecognised statement")
		return &typed.Assign{K: typed.KindIllTyped, Lhs: &typed.Var{T: typed.IllTypedType, VarId: -1}, Rhs: &typed.IntLit{}}
	}
}

func (c *Checker) assign(context string, n *ast.Assign) *typed.Assign {
	var (
		lhs = c.expr(context, n.Lhs, false)
		rhs = c.expr(context, n.Rhs, false)
	)
	//
	if lhs.Type().IsIllTyped() || rhs.Type().IsIllTyped() {
		return &typed.Assign{K: typed.KindIllTyped, Lhs: lhs, Rhs: rhs}
	}
	//
	switch {
	case lhs.Type().Kind == typed.IntLvalue && coercesToIntTerm(rhs.Type()):
		return &typed.Assign{K: typed.KindIntAssign, Lhs: lhs, Rhs: rhs}
	case lhs.Type().Kind == typed.ClockLvalue && coercesToIntTerm(rhs.Type()):
		if v, ok := foldConstInt(n.Rhs); !ok || v != 0 {
			c.sink.Error(context, "clock reset requires literal 0")
			return &typed.Assign{K: typed.KindIllTyped, Lhs: lhs, Rhs: rhs}
		}
		//
		return &typed.Assign{K: typed.KindClockReset, Lhs: lhs, Rhs: rhs}
	default:
		msg := fmt.Sprintf("cannot assign %s to %s", rhs.Type(), lhs.Type())
		c.sink.Error(context, msg)
		return &typed.Assign{K: typed.KindIllTyped, Lhs: lhs, Rhs: rhs}
	}
}

// foldConstInt attempts to constant-fold a raw integer expression to a
// literal value.  Only literals, unary negation and integer arithmetic over
// foldable sub-trees fold; anything containing a variable does not.  This is
// used solely to check the "clock reset requires literal 0" rule; it is not
// a general optimisation pass (bytecode optimisation is out of scope).
func foldConstInt(e ast.Expr) (int64, bool) {
	switch n := e.(type) {
	case *ast.IntLit:
		return n.Value, true
	case *ast.Paren:
		return foldConstInt(n.Inner)
	case *ast.Unary:
		if n.Op != ast.Neg {
			return 0, false
		}
		//
		v, ok := foldConstInt(n.Arg)
		return -v, ok
	case *ast.BinArith:
		l, lok := foldConstInt(n.Left)
		r, rok := foldConstInt(n.Right)
		//
		if !lok || !rok {
			return 0, false
		}
		//
		switch n.Op {
		case ast.Add:
			return l + r, true
		case ast.Sub:
			return l - r, true
		case ast.Mul:
			return l * r, true
		case ast.Div:
			if r == 0 {
				return 0, false
			}
			//
			return l / r, true
		case ast.Mod:
			if r == 0 {
				return 0, false
			}
			//
			return l % r, true
		default:
			return 0, false
		}
	default:
		return 0, false
	}
}
