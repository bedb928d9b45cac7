package bytecode

import (
	"github.com/tchecker-go/tchecker/pkg/diag"
	"github.com/tchecker-go/tchecker/pkg/lang/ast"
	"github.com/tchecker-go/tchecker/pkg/lang/typed"
)

// Compiler lowers typed AST into a Program.  It never re-reports a
// diagnostic for a node the type checker has already poisoned: an ill-typed
// node lowers straight to FAIL. Its sink is reserved for the rarer case of
// an internal-invariant breach (an unrecognised node reaching the compiler),
// which is a distinct failure kind from a type error.
type Compiler struct {
	sink diag.Sink
}

// New constructs a Compiler reporting internal-invariant breaches to sink.
func New(sink diag.Sink) *Compiler {
	return &Compiler{sink}
}

// builder accumulates instructions and resolves forward jumps.
type builder struct {
	instrs []Instr
}

func (b *builder) emit(op Op) int {
	b.instrs = append(b.instrs, Instr{Op: op})
	return len(b.instrs) - 1
}

func (b *builder) emitArg(op Op, arg int) int {
	b.instrs = append(b.instrs, Instr{Op: op, Arg: arg})
	return len(b.instrs) - 1
}

func (b *builder) here() int { return len(b.instrs) }

// patchJump sets the Arg of the jump instruction at index at so that it
// lands on the instruction that follows the last one emitted so far.
func (b *builder) patchJump(at int) {
	b.instrs[at].Arg = b.here() - at - 1
}

// emitJump emits an unconditional jump. There is no dedicated opcode for
// one: it is synthesised as "push a known-zero sentinel, then JZ", which
// always takes the branch and consumes only the sentinel it just pushed.
func (b *builder) emitJump() int {
	b.emitArg(PUSH, 0)
	return b.emit(JZ)
}

// CompileExpr lowers a type-checked expression into a program which, when
// run, leaves its value on top of the stack and then halts.  If e is
// ill-typed the program is a single FAIL followed by HALT.
func (c *Compiler) CompileExpr(context string, e typed.Expr) *Program {
	b := &builder{}
	//
	if e.Type().IsIllTyped() {
		b.emit(FAIL)
	} else {
		c.lowerExpr(b, context, e)
	}
	//
	b.emit(HALT)
	return &Program{Context: context, Instrs: b.instrs}
}

// CompileStmt lowers a type-checked statement into a program which, when
// run, performs its effect and then halts.  If s is ill-typed the program is
// a single FAIL followed by HALT.
func (c *Compiler) CompileStmt(context string, s typed.Stmt) *Program {
	b := &builder{}
	//
	if s.Kind() == typed.KindIllTyped {
		b.emit(FAIL)
	} else {
		c.lowerStmt(b, context, s)
	}
	//
	b.emit(HALT)
	return &Program{Context: context, Instrs: b.instrs}
}

func (c *Compiler) lowerExpr(b *builder, context string, e typed.Expr) {
	switch n := e.(type) {
	case *typed.IntLit:
		b.emitArg(PUSH, int(n.Value))
	case *typed.Var:
		c.lowerVar(b, n)
	case *typed.ArrayAccess:
		c.lowerArrayRead(b, context, n)
	case *typed.Unary:
		c.lowerUnary(b, context, n)
	case *typed.BinArith:
		c.lowerBinArith(b, context, n)
	case *typed.BinCmp:
		c.lowerBinCmp(b, context, n)
	case *typed.BinLogic:
		c.lowerBinLogic(b, context, n)
	case *typed.Paren:
		c.lowerExpr(b, context, n.Inner)
	default:
		c.sink.Error(context, "internal error: unrecognised typed expression")
		b.emit(FAIL)
	}
}

// lowerVar pushes the value of a scalar int variable, or the id of a scalar
// clock (a clock is never read as a value; it only ever appears as the
// left-hand operand of a clock constraint or as a reset target).
func (c *Compiler) lowerVar(b *builder, n *typed.Var) {
	if n.T.Kind == typed.ClockLvalue {
		b.emitArg(LOAD_CLK, n.Offset)
		return
	}
	//
	b.emitArg(LOAD_INT, n.Offset)
}

// lowerArrayRead pushes the value at a computed array element: a constant
// index folds to a direct offset and a plain LOAD; a dynamic index computes
// base+index at runtime and uses the *_DYN opcode.
func (c *Compiler) lowerArrayRead(b *builder, context string, n *typed.ArrayAccess) {
	if n.VarId < 0 {
		c.sink.Error(context, "internal error: array access missing variable identity")
		b.emit(FAIL)
		return
	}
	//
	loadOp, dynOp := LOAD_INT, LOAD_INT_DYN
	if n.T.Kind == typed.ClockLvalue {
		loadOp, dynOp = LOAD_CLK, LOAD_CLK_DYN
	}
	//
	if k, ok := foldConstIndex(n.Index); ok {
		b.emitArg(loadOp, n.BaseOffset+k)
		return
	}
	//
	c.lowerExpr(b, context, n.Index)
	b.emitArg(PUSH, n.BaseOffset)
	b.emit(ADD)
	b.emit(dynOp)
}

func (c *Compiler) lowerUnary(b *builder, context string, n *typed.Unary) {
	c.lowerExpr(b, context, n.Arg)
	//
	switch n.Op {
	case ast.Neg:
		b.emit(NEG)
	case ast.Not:
		b.emit(LNOT)
	default:
		c.sink.Error(context, "internal error: unrecognised unary operator")
		b.emit(FAIL)
	}
}

func (c *Compiler) lowerBinArith(b *builder, context string, n *typed.BinArith) {
	c.lowerExpr(b, context, n.Left)
	c.lowerExpr(b, context, n.Right)
	//
	switch n.Op {
	case ast.Add:
		b.emit(ADD)
	case ast.Sub:
		b.emit(SUB)
	case ast.Mul:
		b.emit(MUL)
	case ast.Div:
		b.emit(DIV)
	case ast.Mod:
		b.emit(MOD)
	default:
		c.sink.Error(context, "internal error: unrecognised arithmetic operator")
		b.emit(FAIL)
	}
}

// lowerBinCmp lowers a comparison.  For a clock constraint, Left is a clock
// (Var or ArrayAccess of clock-lvalue type) whose lowering already pushes
// the clock's id rather than a value, exactly what CLK_* expects below it on
// the stack.
func (c *Compiler) lowerBinCmp(b *builder, context string, n *typed.BinCmp) {
	c.lowerExpr(b, context, n.Left)
	c.lowerExpr(b, context, n.Right)
	//
	if n.ClockConstraint {
		switch n.Op {
		case ast.Lt:
			b.emit(CLK_LT)
		case ast.Le:
			b.emit(CLK_LE)
		case ast.Eq:
			b.emit(CLK_EQ)
		case ast.Ge:
			b.emit(CLK_GE)
		case ast.Gt:
			b.emit(CLK_GT)
		default:
			c.sink.Error(context, "internal error: unsupported clock constraint operator")
			b.emit(FAIL)
		}
		//
		return
	}
	//
	switch n.Op {
	case ast.Eq:
		b.emit(EQ)
	case ast.Ne:
		b.emit(NE)
	case ast.Lt:
		b.emit(LT)
	case ast.Le:
		b.emit(LE)
	case ast.Gt:
		b.emit(GT)
	case ast.Ge:
		b.emit(GE)
	default:
		c.sink.Error(context, "internal error: unrecognised comparison operator")
		b.emit(FAIL)
	}
}

// lowerBinLogic short-circuits: '&&' evaluates right only if left is true,
// otherwise the result is false without evaluating right; '||' evaluates
// right only if left is false, otherwise the result is true. Both branches
// converge on a single value left on the stack.
func (c *Compiler) lowerBinLogic(b *builder, context string, n *typed.BinLogic) {
	c.lowerExpr(b, context, n.Left)
	//
	switch n.Op {
	case ast.And:
		toFalse := b.emitArg(JZ, 0)
		c.lowerExpr(b, context, n.Right)
		toEnd := b.emitJump()
		b.patchJump(toFalse)
		b.emitArg(PUSH, 0)
		b.patchJump(toEnd)
	case ast.Or:
		toTrue := b.emitArg(JNZ, 0)
		c.lowerExpr(b, context, n.Right)
		toEnd := b.emitJump()
		b.patchJump(toTrue)
		b.emitArg(PUSH, 1)
		b.patchJump(toEnd)
	default:
		c.sink.Error(context, "internal error: unrecognised logical operator")
		b.emit(FAIL)
	}
}

func (c *Compiler) lowerStmt(b *builder, context string, s typed.Stmt) {
	switch n := s.(type) {
	case *typed.Nop:
		return
	case *typed.Assign:
		c.lowerAssign(b, context, n)
	case *typed.Seq:
		c.lowerStmt(b, context, n.Left)
		c.lowerStmt(b, context, n.Right)
	default:
		c.sink.Error(context, "internal error: unrecognised typed statement")
		b.emit(FAIL)
	}
}

func (c *Compiler) lowerAssign(b *builder, context string, n *typed.Assign) {
	switch n.K {
	case typed.KindIntAssign:
		c.lowerExpr(b, context, n.Rhs)
		c.lowerIntStore(b, context, n.Lhs)
	case typed.KindClockReset:
		c.lowerClockReset(b, context, n.Lhs)
	default:
		c.sink.Error(context, "internal error: unrecognised assignment kind")
		b.emit(FAIL)
	}
}

// lowerIntStore pops the value on top of the stack and writes it to the
// integer lvalue lhs (a scalar variable or an array element).
func (c *Compiler) lowerIntStore(b *builder, context string, lhs typed.Expr) {
	switch n := lhs.(type) {
	case *typed.Var:
		b.emitArg(STORE_INT, n.Offset)
	case *typed.ArrayAccess:
		if n.VarId < 0 {
			c.sink.Error(context, "internal error: array access missing variable identity")
			b.emit(FAIL)
			return
		}
		//
		if k, ok := foldConstIndex(n.Index); ok {
			b.emitArg(STORE_INT, n.BaseOffset+k)
			return
		}
		//
		c.lowerExpr(b, context, n.Index)
		b.emitArg(PUSH, n.BaseOffset)
		b.emit(ADD)
		b.emit(STORE_INT_DYN)
	case *typed.Paren:
		c.lowerIntStore(b, context, n.Inner)
	default:
		c.sink.Error(context, "internal error: assignment target is not an lvalue")
		b.emit(FAIL)
	}
}

// lowerClockReset pushes the target clock's id (or its computed offset, for
// an array element) and emits RESET_CLK.  The reset value itself is not
// pushed: the type checker has already verified rhs constant-folds to 0.
func (c *Compiler) lowerClockReset(b *builder, context string, lhs typed.Expr) {
	switch n := lhs.(type) {
	case *typed.Var:
		b.emitArg(LOAD_CLK, n.Offset)
		b.emit(RESET_CLK)
	case *typed.ArrayAccess:
		if n.VarId < 0 {
			c.sink.Error(context, "internal error: array access missing variable identity")
			b.emit(FAIL)
			return
		}
		//
		if k, ok := foldConstIndex(n.Index); ok {
			b.emitArg(LOAD_CLK, n.BaseOffset+k)
			b.emit(RESET_CLK)
			return
		}
		//
		c.lowerExpr(b, context, n.Index)
		b.emitArg(PUSH, n.BaseOffset)
		b.emit(ADD)
		b.emit(LOAD_CLK_DYN)
		b.emit(RESET_CLK)
	case *typed.Paren:
		c.lowerClockReset(b, context, n.Inner)
	default:
		c.sink.Error(context, "internal error: clock reset target is not an lvalue")
		b.emit(FAIL)
	}
}

// foldConstIndex constant-folds an array index expression, mirroring
// typecheck.foldConstInt but over the typed tree: literals, negation and
// arithmetic over foldable sub-trees fold; anything reading a variable does
// not. Used only to choose between a direct offset and a computed one; it is
// not a general optimisation pass.
func foldConstIndex(e typed.Expr) (int, bool) {
	switch n := e.(type) {
	case *typed.IntLit:
		return int(n.Value), true
	case *typed.Paren:
		return foldConstIndex(n.Inner)
	case *typed.Unary:
		if n.Op != ast.Neg {
			return 0, false
		}
		//
		v, ok := foldConstIndex(n.Arg)
		return -v, ok
	case *typed.BinArith:
		l, lok := foldConstIndex(n.Left)
		r, rok := foldConstIndex(n.Right)
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
