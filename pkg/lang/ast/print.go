package ast

import "fmt"

// Precedence levels, low to high.  Used only to decide where the
// pretty-printer must insert parentheses to preserve meaning; Paren nodes
// are printed literally regardless of precedence, to preserve redundant
// grouping present in the original source.
const (
	precOr = iota
	precAnd
	precCmp
	precAdd
	precMul
	precUnary
	precPrimary
)

func precedenceOf(e Expr) int {
	switch n := e.(type) {
	case *BinLogic:
		if n.Op == Or {
			return precOr
		}
		return precAnd
	case *BinCmp:
		return precCmp
	case *BinArith:
		if n.Op == Add || n.Op == Sub {
			return precAdd
		}
		return precMul
	case *Unary:
		return precUnary
	default:
		return precPrimary
	}
}

// String returns the canonical textual form of this expression.
func (e *IntLit) String() string { return fmt.Sprintf("%d", e.Value) }

// String returns the canonical textual form of this expression.
func (e *VarRef) String() string { return e.Name }

// String returns the canonical textual form of this expression.
func (e *ArrayAccess) String() string {
	return fmt.Sprintf("%s[%s]", e.Base.String(), e.Index.String())
}

// String returns the canonical textual form of this expression.
func (e *Unary) String() string {
	return fmt.Sprintf("%s%s", e.Op, wrap(e.Arg, precUnary, false))
}

// String returns the canonical textual form of this expression.
func (e *BinArith) String() string {
	p := precedenceOf(e)
	return fmt.Sprintf("%s %s %s", wrap(e.Left, p, false), e.Op, wrap(e.Right, p, true))
}

// String returns the canonical textual form of this expression.
func (e *BinCmp) String() string {
	return fmt.Sprintf("%s %s %s", wrap(e.Left, precCmp, true), e.Op, wrap(e.Right, precCmp, true))
}

// String returns the canonical textual form of this expression.
func (e *BinLogic) String() string {
	p := precedenceOf(e)
	return fmt.Sprintf("%s %s %s", wrap(e.Left, p, false), e.Op, wrap(e.Right, p, true))
}

// String returns the canonical textual form of this expression.
func (e *Paren) String() string {
	return fmt.Sprintf("(%s)", e.Inner.String())
}

// wrap renders child in parentheses when its precedence is too low to appear
// unparenthesised at this position.  strict additionally forces parentheses
// when the precedences are equal, which is required on the right-hand side
// of a left-associative operator and on both sides of a non-associative one.
func wrap(child Expr, parentPrec int, strict bool) string {
	cp := precedenceOf(child)
	//
	if cp < parentPrec || (strict && cp == parentPrec) {
		return fmt.Sprintf("(%s)", child.String())
	}
	//
	return child.String()
}

// String returns the canonical textual form of this statement.
func (s *Nop) String() string { return "nop" }

// String returns the canonical textual form of this statement.
func (s *Assign) String() string {
	return fmt.Sprintf("%s = %s", s.Lhs.String(), s.Rhs.String())
}

// String returns the canonical textual form of this statement.
func (s *Seq) String() string {
	return fmt.Sprintf("%s; %s", s.Left.String(), s.Right.String())
}
