package ast

// IntLit is an integer literal.
type IntLit struct {
	Value int64
}

func (e *IntLit) exprNode() {}

// Clone returns a deep copy of this expression.
func (e *IntLit) Clone() Expr { return &IntLit{e.Value} }

// Visit dispatches to the appropriate callback on v.
func (e *IntLit) Visit(v ExprVisitor) { v.VisitIntLit(e) }

// VarRef is a reference to a variable by name.  Whether this denotes an
// integer or a clock, and whether it is scalar or an array, is resolved by
// the type checker.
type VarRef struct {
	Name string
}

func (e *VarRef) exprNode()   {}
func (e *VarRef) lvalueNode() {}

// Clone returns a deep copy of this expression.
func (e *VarRef) Clone() Expr { return &VarRef{e.Name} }

// Visit dispatches to the appropriate callback on v.
func (e *VarRef) Visit(v ExprVisitor) { v.VisitVarRef(e) }

// ArrayAccess is an indexed access "base[index]".  Base must resolve to an
// array variable; index must be an integer term.
type ArrayAccess struct {
	Base  Expr
	Index Expr
}

func (e *ArrayAccess) exprNode()   {}
func (e *ArrayAccess) lvalueNode() {}

// Clone returns a deep copy of this expression.
func (e *ArrayAccess) Clone() Expr {
	return &ArrayAccess{e.Base.Clone(), e.Index.Clone()}
}

// Visit dispatches to the appropriate callback on v.
func (e *ArrayAccess) Visit(v ExprVisitor) { v.VisitArrayAccess(e) }

// Unary is a unary operator application, "-e" or "!e".
type Unary struct {
	Op  UnaryOp
	Arg Expr
}

func (e *Unary) exprNode() {}

// Clone returns a deep copy of this expression.
func (e *Unary) Clone() Expr { return &Unary{e.Op, e.Arg.Clone()} }

// Visit dispatches to the appropriate callback on v.
func (e *Unary) Visit(v ExprVisitor) { v.VisitUnary(e) }

// BinArith is a binary integer arithmetic operator application.
type BinArith struct {
	Op    ArithOp
	Left  Expr
	Right Expr
}

func (e *BinArith) exprNode() {}

// Clone returns a deep copy of this expression.
func (e *BinArith) Clone() Expr {
	return &BinArith{e.Op, e.Left.Clone(), e.Right.Clone()}
}

// Visit dispatches to the appropriate callback on v.
func (e *BinArith) Visit(v ExprVisitor) { v.VisitBinArith(e) }

// BinCmp is a binary comparison operator application.
type BinCmp struct {
	Op    CmpOp
	Left  Expr
	Right Expr
}

func (e *BinCmp) exprNode() {}

// Clone returns a deep copy of this expression.
func (e *BinCmp) Clone() Expr {
	return &BinCmp{e.Op, e.Left.Clone(), e.Right.Clone()}
}

// Visit dispatches to the appropriate callback on v.
func (e *BinCmp) Visit(v ExprVisitor) { v.VisitBinCmp(e) }

// BinLogic is a binary logical connective application.
type BinLogic struct {
	Op    LogicOp
	Left  Expr
	Right Expr
}

func (e *BinLogic) exprNode() {}

// Clone returns a deep copy of this expression.
func (e *BinLogic) Clone() Expr {
	return &BinLogic{e.Op, e.Left.Clone(), e.Right.Clone()}
}

// Visit dispatches to the appropriate callback on v.
func (e *BinLogic) Visit(v ExprVisitor) { v.VisitBinLogic(e) }

// Paren is an explicit parenthesisation, retained purely so the
// pretty-printer can reproduce the input grouping when it was redundant with
// respect to operator precedence.
type Paren struct {
	Inner Expr
}

func (e *Paren) exprNode() {}

// Clone returns a deep copy of this expression.
func (e *Paren) Clone() Expr { return &Paren{e.Inner.Clone()} }

// Visit dispatches to the appropriate callback on v.
func (e *Paren) Visit(v ExprVisitor) { v.VisitParen(e) }

// ExprVisitor is the external walk-without-a-type-switch contract for raw
// expressions.  Internally, this package's own logic (and the type checker)
// uses an exhaustive type switch instead; see the design notes for why.
type ExprVisitor interface {
	VisitIntLit(*IntLit)
	VisitVarRef(*VarRef)
	VisitArrayAccess(*ArrayAccess)
	VisitUnary(*Unary)
	VisitBinArith(*BinArith)
	VisitBinCmp(*BinCmp)
	VisitBinLogic(*BinLogic)
	VisitParen(*Paren)
}
