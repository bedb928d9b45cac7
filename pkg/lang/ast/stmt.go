package ast

// Nop is the no-op statement.
type Nop struct{}

func (s *Nop) stmtNode() {}

// Clone returns a deep copy of this statement.
func (s *Nop) Clone() Stmt { return &Nop{} }

// Visit dispatches to the appropriate callback on v.
func (s *Nop) Visit(v StmtVisitor) { v.VisitNop(s) }

// Assign is an assignment "lhs <- rhs".  Lhs is guaranteed to be an Lvalue;
// use NewAssign rather than constructing this literal to get that guarantee
// checked.
type Assign struct {
	Lhs Lvalue
	Rhs Expr
}

// NewAssign constructs an assignment statement.  It fails with
// InvalidArgument if lhs is not an Lvalue.
func NewAssign(lhs Expr, rhs Expr) (*Assign, error) {
	lv, ok := lhs.(Lvalue)
	if !ok {
		return nil, &InvalidArgument{"assignment target must be an lvalue"}
	}
	//
	return &Assign{lv, rhs}, nil
}

func (s *Assign) stmtNode() {}

// Clone returns a deep copy of this statement.
func (s *Assign) Clone() Stmt {
	return &Assign{s.Lhs.Clone().(Lvalue), s.Rhs.Clone()}
}

// Visit dispatches to the appropriate callback on v.
func (s *Assign) Visit(v StmtVisitor) { v.VisitAssign(s) }

// Seq is a sequence of two statements, "left ; right".  Nested sequences may
// be associated either way; the pretty-printer renders both groupings
// identically, as "left; right" without parentheses.
type Seq struct {
	Left  Stmt
	Right Stmt
}

func (s *Seq) stmtNode() {}

// Clone returns a deep copy of this statement.
func (s *Seq) Clone() Stmt { return &Seq{s.Left.Clone(), s.Right.Clone()} }

// Visit dispatches to the appropriate callback on v.
func (s *Seq) Visit(v StmtVisitor) { v.VisitSeq(s) }

// StmtVisitor is the external walk-without-a-type-switch contract for raw
// statements.
type StmtVisitor interface {
	VisitNop(*Nop)
	VisitAssign(*Assign)
	VisitSeq(*Seq)
}
