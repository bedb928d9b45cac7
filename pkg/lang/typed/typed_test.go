package typed_test

import (
	"testing"

	"github.com/tchecker-go/tchecker/pkg/lang/ast"
	"github.com/tchecker-go/tchecker/pkg/lang/typed"
)

func TestType_String(t *testing.T) {
	cases := []struct {
		t    typed.Type
		want string
	}{
		{typed.BoolType, "bool"},
		{typed.IntTermType, "int-term"},
		{typed.IllTypedType, "ill-typed"},
		{typed.IntLvalueType(1), "int-lvalue(1)"},
		{typed.ClockArrayType(4), "clock-array(4)"},
	}

	for _, c := range cases {
		if got := c.t.String(); got != c.want {
			t.Fatalf("got %q, want %q", got, c.want)
		}
	}
}

func TestClone_IsDeep(t *testing.T) {
	orig := &typed.BinArith{
		T: typed.IntTermType, Op: ast.Add,
		Left:  &typed.Var{T: typed.IntLvalueType(1), Name: "a", VarId: 0},
		Right: &typed.IntLit{Value: 1},
	}
	clone := orig.Clone().(*typed.BinArith)

	clone.Left.(*typed.Var).Name = "mutated"

	if orig.Left.(*typed.Var).Name != "a" {
		t.Fatalf("mutating the clone affected the original")
	}
}

// String on a typed node renders the erased form, matching the raw AST's
// own textual notation, so a typed tree and its raw ancestor print
// identically wherever nothing was rewritten.
func TestString_MatchesErasedForm(t *testing.T) {
	e := &typed.BinCmp{
		T: typed.BoolType, Op: ast.Lt,
		Left:  &typed.Var{T: typed.IntLvalueType(1), Name: "i"},
		Right: &typed.IntLit{Value: 3},
	}
	if got, want := e.String(), "i < 3"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestArrayAccess_String(t *testing.T) {
	e := &typed.ArrayAccess{
		T:    typed.IntLvalueType(1),
		Base: &typed.Var{T: typed.IntArrayType(4), Name: "a"},
		Index: &typed.IntLit{Value: 2},
	}
	if got, want := e.String(), "a[2]"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

type exprVisitorRecorder struct{ visited string }

func (r *exprVisitorRecorder) VisitIntLit(*typed.IntLit)           { r.visited = "IntLit" }
func (r *exprVisitorRecorder) VisitVar(*typed.Var)                 { r.visited = "Var" }
func (r *exprVisitorRecorder) VisitArrayAccess(*typed.ArrayAccess) { r.visited = "ArrayAccess" }
func (r *exprVisitorRecorder) VisitUnary(*typed.Unary)             { r.visited = "Unary" }
func (r *exprVisitorRecorder) VisitBinArith(*typed.BinArith)       { r.visited = "BinArith" }
func (r *exprVisitorRecorder) VisitBinCmp(*typed.BinCmp)           { r.visited = "BinCmp" }
func (r *exprVisitorRecorder) VisitBinLogic(*typed.BinLogic)       { r.visited = "BinLogic" }
func (r *exprVisitorRecorder) VisitParen(*typed.Paren)             { r.visited = "Paren" }

func TestVisit_DispatchesToMatchingCallback(t *testing.T) {
	r := &exprVisitorRecorder{}
	(&typed.BinArith{T: typed.IntTermType, Op: ast.Add, Left: &typed.IntLit{Value: 1}, Right: &typed.IntLit{Value: 2}}).Visit(r)
	if r.visited != "BinArith" {
		t.Fatalf("expected dispatch to VisitBinArith, got %s", r.visited)
	}
}

func TestSeq_KindReturnsRecordedIllTyped(t *testing.T) {
	s := &typed.Seq{
		K:     typed.KindIllTyped,
		Left:  &typed.Nop{},
		Right: &typed.Assign{K: typed.KindIllTyped, Lhs: &typed.Var{T: typed.IllTypedType, VarId: -1}, Rhs: &typed.IntLit{}},
	}
	if s.Kind() != typed.KindIllTyped {
		t.Fatalf("expected KindIllTyped")
	}
}

func TestStmtKind_String(t *testing.T) {
	cases := []struct {
		k    typed.StmtKind
		want string
	}{
		{typed.KindNop, "nop"},
		{typed.KindIntAssign, "int-assign"},
		{typed.KindClockReset, "clock-reset"},
		{typed.KindIllTyped, "ill-typed"},
	}

	for _, c := range cases {
		if got := c.k.String(); got != c.want {
			t.Fatalf("got %q, want %q", got, c.want)
		}
	}
}
