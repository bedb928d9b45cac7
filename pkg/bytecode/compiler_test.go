package bytecode_test

import (
	"testing"

	"github.com/tchecker-go/tchecker/pkg/bytecode"
	"github.com/tchecker-go/tchecker/pkg/diag"
	"github.com/tchecker-go/tchecker/pkg/lang/ast"
	"github.com/tchecker-go/tchecker/pkg/lang/typed"
)

func intVar(name string, id, offset int) *typed.Var {
	return &typed.Var{T: typed.IntLvalueType(1), Name: name, VarId: id, Offset: offset}
}

func clockVar(name string, id, offset int) *typed.Var {
	return &typed.Var{T: typed.ClockLvalueType(1), Name: name, VarId: id, Offset: offset}
}

func lit(v int64) *typed.IntLit { return &typed.IntLit{Value: v} }

func TestCompileExpr_Literal(t *testing.T) {
	c := bytecode.New(diag.NewCollector())
	p := c.CompileExpr("literal", lit(42))
	//
	tr := bytecode.NewTrace(bytecode.NewState(0, 0))
	stack, err := tr.Run(p)
	//
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	} else if len(stack) != 1 || stack[0] != 42 {
		t.Fatalf("expected [42], got %v", stack)
	}
}

func TestCompileExpr_IntVarRead(t *testing.T) {
	c := bytecode.New(diag.NewCollector())
	p := c.CompileExpr("read x", intVar("x", 0, 3))
	//
	st := bytecode.NewState(4, 0)
	st.Ints[3] = 7
	//
	stack, err := bytecode.NewTrace(st).Run(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	} else if len(stack) != 1 || stack[0] != 7 {
		t.Fatalf("expected [7], got %v", stack)
	}
}

func TestCompileExpr_BinArith(t *testing.T) {
	e := &typed.BinArith{T: typed.IntTermType, Op: ast.Add, Left: lit(2), Right: lit(3)}
	c := bytecode.New(diag.NewCollector())
	p := c.CompileExpr("2+3", e)
	//
	stack, err := bytecode.NewTrace(bytecode.NewState(0, 0)).Run(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	} else if len(stack) != 1 || stack[0] != 5 {
		t.Fatalf("expected [5], got %v", stack)
	}
}

func TestCompileExpr_ClockConstraint(t *testing.T) {
	e := &typed.BinCmp{
		T: typed.BoolType, Op: ast.Lt, Left: clockVar("x", 0, 0), Right: lit(5), ClockConstraint: true,
	}
	c := bytecode.New(diag.NewCollector())
	p := c.CompileExpr("x<5", e)
	//
	st := bytecode.NewState(0, 1)
	st.Clocks[0] = 3
	//
	stack, err := bytecode.NewTrace(st).Run(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	} else if len(stack) != 1 || stack[0] != 1 {
		t.Fatalf("expected [1] (3<5), got %v", stack)
	}
	//
	st.Clocks[0] = 9
	stack, err = bytecode.NewTrace(st).Run(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	} else if len(stack) != 1 || stack[0] != 0 {
		t.Fatalf("expected [0] (9<5 is false), got %v", stack)
	}
}

func TestCompileExpr_ShortCircuitAnd(t *testing.T) {
	// false && (1/0 == 0): the right side must never execute, or this
	// program would trap on division by zero.
	right := &typed.BinCmp{
		T:  typed.BoolType,
		Op: ast.Eq,
		Left: &typed.BinArith{
			T: typed.IntTermType, Op: ast.Div, Left: lit(1), Right: lit(0),
		},
		Right: lit(0),
	}
	e := &typed.BinLogic{T: typed.BoolType, Op: ast.And, Left: boolLit(false), Right: right}
	//
	c := bytecode.New(diag.NewCollector())
	p := c.CompileExpr("false && ...", e)
	//
	stack, err := bytecode.NewTrace(bytecode.NewState(0, 0)).Run(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	} else if len(stack) != 1 || stack[0] != 0 {
		t.Fatalf("expected [0], got %v", stack)
	}
}

func TestCompileExpr_ShortCircuitOr(t *testing.T) {
	left := boolLit(true)
	right := &typed.BinCmp{
		T:  typed.BoolType,
		Op: ast.Eq,
		Left: &typed.BinArith{
			T: typed.IntTermType, Op: ast.Div, Left: lit(1), Right: lit(0),
		},
		Right: lit(0),
	}
	e := &typed.BinLogic{T: typed.BoolType, Op: ast.Or, Left: left, Right: right}
	//
	c := bytecode.New(diag.NewCollector())
	p := c.CompileExpr("true || ...", e)
	//
	stack, err := bytecode.NewTrace(bytecode.NewState(0, 0)).Run(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	} else if len(stack) != 1 || stack[0] != 1 {
		t.Fatalf("expected [1], got %v", stack)
	}
}

// boolLit encodes a boolean literal as the comparison "0==0" (true) or
// "0==1" (false), since typed.IntLit is always int-term, never bool.
func boolLit(v bool) typed.Expr {
	rhs := int64(1)
	if v {
		rhs = 0
	}
	//
	return &typed.BinCmp{T: typed.BoolType, Op: ast.Eq, Left: lit(0), Right: lit(rhs)}
}

func TestCompileStmt_IntAssign(t *testing.T) {
	lhs := intVar("x", 0, 2)
	s := &typed.Assign{K: typed.KindIntAssign, Lhs: lhs, Rhs: lit(9)}
	//
	c := bytecode.New(diag.NewCollector())
	p := c.CompileStmt("x=9", s)
	//
	st := bytecode.NewState(3, 0)
	if _, err := bytecode.NewTrace(st).Run(p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	} else if st.Ints[2] != 9 {
		t.Fatalf("expected Ints[2]==9, got %d", st.Ints[2])
	}
}

func TestCompileStmt_ClockReset(t *testing.T) {
	lhs := clockVar("y", 0, 1)
	s := &typed.Assign{K: typed.KindClockReset, Lhs: lhs, Rhs: lit(0)}
	//
	c := bytecode.New(diag.NewCollector())
	p := c.CompileStmt("y=0", s)
	//
	st := bytecode.NewState(0, 2)
	st.Clocks[1] = 42
	if _, err := bytecode.NewTrace(st).Run(p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	} else if st.Clocks[1] != 0 {
		t.Fatalf("expected Clocks[1]==0, got %d", st.Clocks[1])
	}
}

func TestCompileExpr_ArrayAccessConstantIndex(t *testing.T) {
	base := intVar("a", 0, 5)
	e := &typed.ArrayAccess{T: typed.IntLvalueType(1), Base: base, Index: lit(2), VarId: 0, BaseOffset: 5}
	//
	c := bytecode.New(diag.NewCollector())
	p := c.CompileExpr("a[2]", e)
	//
	st := bytecode.NewState(10, 0)
	st.Ints[7] = 99
	//
	stack, err := bytecode.NewTrace(st).Run(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	} else if len(stack) != 1 || stack[0] != 99 {
		t.Fatalf("expected [99], got %v", stack)
	}
	// A constant index must fold to a direct LOAD_INT, not a dynamic one.
	for _, instr := range p.Instrs {
		if instr.Op == bytecode.LOAD_INT_DYN {
			t.Fatalf("expected constant-folded offset, found LOAD_INT_DYN in %v", p)
		}
	}
}

func TestCompileExpr_ArrayAccessDynamicIndex(t *testing.T) {
	base := intVar("a", 0, 5)
	index := intVar("i", 1, 0)
	e := &typed.ArrayAccess{T: typed.IntLvalueType(1), Base: base, Index: index, VarId: 0, BaseOffset: 5}
	//
	c := bytecode.New(diag.NewCollector())
	p := c.CompileExpr("a[i]", e)
	//
	st := bytecode.NewState(10, 0)
	st.Ints[0] = 3
	st.Ints[8] = 123
	//
	stack, err := bytecode.NewTrace(st).Run(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	} else if len(stack) != 1 || stack[0] != 123 {
		t.Fatalf("expected [123], got %v", stack)
	}
}

func TestCompileExpr_IllTypedEmitsFailWithoutReporting(t *testing.T) {
	sink := diag.NewCollector()
	c := bytecode.New(sink)
	//
	p := c.CompileExpr("bad", &typed.Var{T: typed.IllTypedType, Name: "?", VarId: -1})
	//
	if sink.ErrorCount() != 0 {
		t.Fatalf("compiler must not re-report an already-poisoned node, got %d diagnostics", sink.ErrorCount())
	}
	//
	_, err := bytecode.NewTrace(bytecode.NewState(0, 0)).Run(p)
	if err != bytecode.ErrFail {
		t.Fatalf("expected ErrFail, got %v", err)
	}
}

func TestCompileExpr_Idempotent(t *testing.T) {
	e := &typed.BinArith{T: typed.IntTermType, Op: ast.Mul, Left: intVar("x", 0, 0), Right: lit(3)}
	//
	c := bytecode.New(diag.NewCollector())
	p1 := c.CompileExpr("x*3", e)
	p2 := c.CompileExpr("x*3", e)
	//
	if !p1.Equal(p2) {
		t.Fatalf("expected recompiling the same tree to be idempotent:\n%s\nvs\n%s", p1, p2)
	}
}
