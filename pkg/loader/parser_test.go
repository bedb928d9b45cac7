package loader_test

import (
	"testing"

	"github.com/tchecker-go/tchecker/pkg/lang/ast"
	"github.com/tchecker-go/tchecker/pkg/loader"
)

func TestParseExpr_Precedence(t *testing.T) {
	e, err := loader.ParseExpr("t", "1+2*3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	add, ok := e.(*ast.BinArith)
	if !ok || add.Op != ast.Add {
		t.Fatalf("expected top-level '+', got %s", e)
	}

	if _, ok := add.Right.(*ast.BinArith); !ok {
		t.Fatalf("expected '2*3' nested on the right, got %s", add.Right)
	}
}

func TestParseExpr_ComparisonNonAssociative(t *testing.T) {
	if _, err := loader.ParseExpr("t", "1<2<3"); err == nil {
		t.Fatalf("expected a syntax error for chained comparison")
	}
}

func TestParseExpr_ClockConstraint(t *testing.T) {
	e, err := loader.ParseExpr("t", "x<=5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cmp, ok := e.(*ast.BinCmp)
	if !ok || cmp.Op != ast.Le {
		t.Fatalf("expected top-level '<=', got %s", e)
	}
}

func TestParseExpr_ArrayAccess(t *testing.T) {
	e, err := loader.ParseExpr("t", "a[i+1]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	access, ok := e.(*ast.ArrayAccess)
	if !ok {
		t.Fatalf("expected array access, got %s", e)
	}

	if _, ok := access.Index.(*ast.BinArith); !ok {
		t.Fatalf("expected 'i+1' index, got %s", access.Index)
	}
}

func TestParseExpr_ParenPreserved(t *testing.T) {
	e, err := loader.ParseExpr("t", "(1+2)*3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mul, ok := e.(*ast.BinArith)
	if !ok || mul.Op != ast.Mul {
		t.Fatalf("expected top-level '*', got %s", e)
	}

	if _, ok := mul.Left.(*ast.Paren); !ok {
		t.Fatalf("expected explicit paren preserved on the left, got %s", mul.Left)
	}
}

func TestParseExpr_ShortCircuitOperators(t *testing.T) {
	e, err := loader.ParseExpr("t", "a==1 && b==2 || !c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	or, ok := e.(*ast.BinLogic)
	if !ok || or.Op != ast.Or {
		t.Fatalf("expected top-level '||', got %s", e)
	}

	and, ok := or.Left.(*ast.BinLogic)
	if !ok || and.Op != ast.And {
		t.Fatalf("expected '&&' nested on the left, got %s", or.Left)
	}
}

func TestParseStmt_Sequence(t *testing.T) {
	s, err := loader.ParseStmt("t", "i=i+1;x=0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := s.(*ast.Seq); !ok {
		t.Fatalf("expected a Seq, got %s", s)
	}
}

func TestParseStmt_Nop(t *testing.T) {
	s, err := loader.ParseStmt("t", "nop")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := s.(*ast.Nop); !ok {
		t.Fatalf("expected a Nop, got %s", s)
	}
}

// RoundTrip verifies that printing a parsed expression and re-parsing it
// yields the identical structure, up to the explicit-paren shape print.go
// itself preserves.
func TestParseExpr_RoundTrip(t *testing.T) {
	inputs := []string{
		"1+2*3",
		"(1+2)*3",
		"a[i]<5",
		"x<=5 && y>1",
		"-a+b",
		"!(a==1)",
	}

	for _, in := range inputs {
		e, err := loader.ParseExpr("t", in)
		if err != nil {
			t.Fatalf("parse(%q): unexpected error: %v", in, err)
		}

		printed := e.String()

		reparsed, err := loader.ParseExpr("t2", printed)
		if err != nil {
			t.Fatalf("parse(print(parse(%q))) = %q: unexpected error: %v", in, printed, err)
		}

		if reprinted := reparsed.String(); reprinted != printed {
			t.Fatalf("round-trip mismatch for %q: got %q from %q", in, reprinted, printed)
		}
	}
}

func TestParseExpr_UnexpectedCharacter(t *testing.T) {
	if _, err := loader.ParseExpr("t", "1 $ 2"); err == nil {
		t.Fatalf("expected a syntax error for '$'")
	}
}

func TestParseExpr_TrailingInput(t *testing.T) {
	if _, err := loader.ParseExpr("t", "1+2 3"); err == nil {
		t.Fatalf("expected a syntax error for trailing input")
	}
}
