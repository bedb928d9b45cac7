package typed

import "fmt"

// Stmt is the closed variant of typed statement nodes.
type Stmt interface {
	// Kind returns the resolved statement kind.  KindIllTyped indicates
	// this node (or a descendant) failed to type check.
	Kind() StmtKind
	// Clone returns a deep copy of this node.
	Clone() Stmt
	// Visit dispatches to the appropriate callback on v.
	Visit(v StmtVisitor)
	// String renders the erased (untyped) textual form of this node.
	String() string
	stmtNode()
}

// Nop mirrors ast.Nop; always well-typed.
type Nop struct{}

func (s *Nop) stmtNode()          {}
func (s *Nop) Kind() StmtKind     { return KindNop }
func (s *Nop) Clone() Stmt        { return &Nop{} }
func (s *Nop) Visit(v StmtVisitor) { v.VisitNop(s) }
func (s *Nop) String() string     { return "nop" }

// Assign mirrors ast.Assign.  K is KindIntAssign for an integer assignment,
// KindClockReset for a clock reset (Rhs is guaranteed to fold to the literal
// 0 in that case), or KindIllTyped.
type Assign struct {
	K   StmtKind
	Lhs Expr
	Rhs Expr
}

func (s *Assign) stmtNode()      {}
func (s *Assign) Kind() StmtKind { return s.K }
func (s *Assign) Clone() Stmt {
	return &Assign{s.K, s.Lhs.Clone(), s.Rhs.Clone()}
}
func (s *Assign) Visit(v StmtVisitor) { v.VisitAssign(s) }
func (s *Assign) String() string {
	return fmt.Sprintf("%s = %s", s.Lhs.String(), s.Rhs.String())
}

// Seq mirrors ast.Seq.  K is KindIllTyped iff either child is ill-typed.
type Seq struct {
	K     StmtKind
	Left  Stmt
	Right Stmt
}

func (s *Seq) stmtNode()      {}
func (s *Seq) Kind() StmtKind { return s.K }
func (s *Seq) Clone() Stmt {
	return &Seq{s.K, s.Left.Clone(), s.Right.Clone()}
}
func (s *Seq) Visit(v StmtVisitor) { v.VisitSeq(s) }
func (s *Seq) String() string {
	return fmt.Sprintf("%s; %s", s.Left.String(), s.Right.String())
}

// StmtVisitor allows external consumers to walk a typed statement tree
// without a type switch.
type StmtVisitor interface {
	VisitNop(*Nop)
	VisitAssign(*Assign)
	VisitSeq(*Seq)
}
