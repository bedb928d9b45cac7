package typed

import (
	"fmt"

	"github.com/tchecker-go/tchecker/pkg/lang/ast"
)

// Expr is the closed variant of typed expression nodes: a structural mirror
// of ast.Expr where every node additionally reports its resolved Type.
type Expr interface {
	// Type returns the value type resolved for this node.  IllTypedType
	// indicates this node (or a descendant) failed to type check; a
	// diagnostic has already been reported for it.
	Type() Type
	// Clone returns a deep copy of this node.  Typed trees own their
	// children exclusively: no sharing, no cycles.
	Clone() Expr
	// Visit dispatches to the appropriate callback on v.
	Visit(v ExprVisitor)
	// String renders the erased (untyped) textual form of this node.
	String() string
	exprNode()
}

// IntLit mirrors ast.IntLit.
type IntLit struct {
	Value int64
}

func (e *IntLit) exprNode()          {}
func (e *IntLit) Type() Type         { return IntTermType }
func (e *IntLit) Clone() Expr        { return &IntLit{e.Value} }
func (e *IntLit) Visit(v ExprVisitor) { v.VisitIntLit(e) }
func (e *IntLit) String() string     { return fmt.Sprintf("%d", e.Value) }

// Var mirrors ast.VarRef.  When T is IllTypedType, VarId is -1 and Name
// retains the offending identifier for diagnostics.
type Var struct {
	T      Type
	Name   string
	VarId  int
	Offset int
}

func (e *Var) exprNode()          {}
func (e *Var) Type() Type         { return e.T }
func (e *Var) Clone() Expr        { return &Var{e.T, e.Name, e.VarId, e.Offset} }
func (e *Var) Visit(v ExprVisitor) { v.VisitVar(e) }
func (e *Var) String() string     { return e.Name }

// ArrayAccess mirrors ast.ArrayAccess.  VarId/BaseOffset identify the array
// variable being indexed (meaningless when T is IllTypedType).
type ArrayAccess struct {
	T          Type
	Base       Expr
	Index      Expr
	VarId      int
	BaseOffset int
}

func (e *ArrayAccess) exprNode()  {}
func (e *ArrayAccess) Type() Type { return e.T }
func (e *ArrayAccess) Clone() Expr {
	return &ArrayAccess{e.T, e.Base.Clone(), e.Index.Clone(), e.VarId, e.BaseOffset}
}
func (e *ArrayAccess) Visit(v ExprVisitor) { v.VisitArrayAccess(e) }
func (e *ArrayAccess) String() string {
	return fmt.Sprintf("%s[%s]", e.Base.String(), e.Index.String())
}

// Unary mirrors ast.Unary.
type Unary struct {
	T   Type
	Op  ast.UnaryOp
	Arg Expr
}

func (e *Unary) exprNode()          {}
func (e *Unary) Type() Type         { return e.T }
func (e *Unary) Clone() Expr        { return &Unary{e.T, e.Op, e.Arg.Clone()} }
func (e *Unary) Visit(v ExprVisitor) { v.VisitUnary(e) }
func (e *Unary) String() string     { return fmt.Sprintf("%s%s", e.Op, e.Arg.String()) }

// BinArith mirrors ast.BinArith.
type BinArith struct {
	T     Type
	Op    ast.ArithOp
	Left  Expr
	Right Expr
}

func (e *BinArith) exprNode()  {}
func (e *BinArith) Type() Type { return e.T }
func (e *BinArith) Clone() Expr {
	return &BinArith{e.T, e.Op, e.Left.Clone(), e.Right.Clone()}
}
func (e *BinArith) Visit(v ExprVisitor) { v.VisitBinArith(e) }
func (e *BinArith) String() string {
	return fmt.Sprintf("%s %s %s", e.Left.String(), e.Op, e.Right.String())
}

// BinCmp mirrors ast.BinCmp.  ClockConstraint records whether the checker
// resolved this as a clock-vs-bound comparison (as opposed to an
// integer-vs-integer one); the bytecode compiler uses this to pick between
// the CLK_* and integer comparison opcodes.
type BinCmp struct {
	T               Type
	Op              ast.CmpOp
	Left            Expr
	Right           Expr
	ClockConstraint bool
}

func (e *BinCmp) exprNode()  {}
func (e *BinCmp) Type() Type { return e.T }
func (e *BinCmp) Clone() Expr {
	return &BinCmp{e.T, e.Op, e.Left.Clone(), e.Right.Clone(), e.ClockConstraint}
}
func (e *BinCmp) Visit(v ExprVisitor) { v.VisitBinCmp(e) }
func (e *BinCmp) String() string {
	return fmt.Sprintf("%s %s %s", e.Left.String(), e.Op, e.Right.String())
}

// BinLogic mirrors ast.BinLogic.
type BinLogic struct {
	T     Type
	Op    ast.LogicOp
	Left  Expr
	Right Expr
}

func (e *BinLogic) exprNode()  {}
func (e *BinLogic) Type() Type { return e.T }
func (e *BinLogic) Clone() Expr {
	return &BinLogic{e.T, e.Op, e.Left.Clone(), e.Right.Clone()}
}
func (e *BinLogic) Visit(v ExprVisitor) { v.VisitBinLogic(e) }
func (e *BinLogic) String() string {
	return fmt.Sprintf("%s %s %s", e.Left.String(), e.Op, e.Right.String())
}

// Paren mirrors ast.Paren.  Its type is always that of Inner (or
// IllTypedType if Inner is ill-typed).
type Paren struct {
	Inner Expr
}

func (e *Paren) exprNode()          {}
func (e *Paren) Type() Type         { return e.Inner.Type() }
func (e *Paren) Clone() Expr        { return &Paren{e.Inner.Clone()} }
func (e *Paren) Visit(v ExprVisitor) { v.VisitParen(e) }
func (e *Paren) String() string     { return fmt.Sprintf("(%s)", e.Inner.String()) }

// ExprVisitor allows external consumers to walk a typed expression tree
// without a type switch over every concrete node kind.
type ExprVisitor interface {
	VisitIntLit(*IntLit)
	VisitVar(*Var)
	VisitArrayAccess(*ArrayAccess)
	VisitUnary(*Unary)
	VisitBinArith(*BinArith)
	VisitBinCmp(*BinCmp)
	VisitBinLogic(*BinLogic)
	VisitParen(*Paren)
}
