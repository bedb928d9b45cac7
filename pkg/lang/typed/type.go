// Package typed defines the typed abstract syntax tree produced by the type
// checker: a structural mirror of pkg/lang/ast, where every expression node
// additionally carries a resolved value type and every statement node
// carries a resolved statement kind.
package typed

import "fmt"

// Kind identifies the shape of value an expression node produces.
type Kind uint8

// Value type kinds, per the type-checking rules.
const (
	Bool Kind = iota
	IntTerm
	IntLvalue
	ClockLvalue
	IntArray
	ClockArray
	IllTyped
)

func (k Kind) String() string {
	switch k {
	case Bool:
		return "bool"
	case IntTerm:
		return "int-term"
	case IntLvalue:
		return "int-lvalue"
	case ClockLvalue:
		return "clock-lvalue"
	case IntArray:
		return "int-array"
	case ClockArray:
		return "clock-array"
	case IllTyped:
		return "ill-typed"
	default:
		panic("unknown kind")
	}
}

// Type is the value type attached to every typed expression node.  Size is
// meaningful only for the lvalue and array kinds, where it records the
// (flat) array length (1 for a scalar lvalue).
type Type struct {
	Kind Kind
	Size int
}

// String renders a type for diagnostics, e.g. "int-lvalue(1)".
func (t Type) String() string {
	switch t.Kind {
	case IntLvalue, ClockLvalue, IntArray, ClockArray:
		return fmt.Sprintf("%s(%d)", t.Kind, t.Size)
	default:
		return t.Kind.String()
	}
}

// IllTypedType is the poison value: any node with this type must have
// caused at least one diagnostic to be reported.
var IllTypedType = Type{Kind: IllTyped}

// BoolType is the type of boolean-valued expressions.
var BoolType = Type{Kind: Bool}

// IntTermType is the type of an integer value used as a term (a read).
var IntTermType = Type{Kind: IntTerm}

// IntLvalueType constructs the type of a scalar or array-element integer
// lvalue.
func IntLvalueType(size int) Type { return Type{Kind: IntLvalue, Size: size} }

// ClockLvalueType constructs the type of a scalar or array-element clock
// lvalue.
func ClockLvalueType(size int) Type { return Type{Kind: ClockLvalue, Size: size} }

// IntArrayType constructs the type of an integer array variable.
func IntArrayType(size int) Type { return Type{Kind: IntArray, Size: size} }

// ClockArrayType constructs the type of a clock array variable.
func ClockArrayType(size int) Type { return Type{Kind: ClockArray, Size: size} }

// IsIllTyped reports whether t is the poison type.
func (t Type) IsIllTyped() bool { return t.Kind == IllTyped }

// StmtKind identifies the resolved shape of a typed statement.
type StmtKind uint8

// Statement kinds.
const (
	KindNop StmtKind = iota
	KindIntAssign
	KindClockReset
	KindSequence
	KindIllTyped
)

func (k StmtKind) String() string {
	switch k {
	case KindNop:
		return "nop"
	case KindIntAssign:
		return "int-assign"
	case KindClockReset:
		return "clock-reset"
	case KindSequence:
		return "sequence"
	case KindIllTyped:
		return "ill-typed"
	default:
		panic("unknown statement kind")
	}
}
