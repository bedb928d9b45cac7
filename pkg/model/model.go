// Package model orchestrates the static validator, type checker and
// bytecode compiler over every location and edge of a system, and owns the
// resulting typed ASTs and bytecode streams.
package model

import (
	"fmt"

	"github.com/tchecker-go/tchecker/pkg/bytecode"
	"github.com/tchecker-go/tchecker/pkg/diag"
	"github.com/tchecker-go/tchecker/pkg/lang/ast"
	"github.com/tchecker-go/tchecker/pkg/lang/typed"
	"github.com/tchecker-go/tchecker/pkg/system"
	"github.com/tchecker-go/tchecker/pkg/typecheck"
	"github.com/tchecker-go/tchecker/pkg/validate"
	"github.com/tchecker-go/tchecker/pkg/vars"
)

// trueExpr is the typed stand-in for an absent invariant or guard. The raw
// expression language has no boolean literal, so "syntactically absent"
// (equivalent to true) is represented directly at the typed level rather
// than round-tripped through the type checker.
func trueExpr() typed.Expr {
	return &typed.BinCmp{T: typed.BoolType, Op: ast.Eq, Left: &typed.IntLit{Value: 0}, Right: &typed.IntLit{Value: 0}}
}

// FailureKind classifies why construction failed.
type FailureKind uint8

const (
	// Ok indicates construction succeeded.
	Ok FailureKind = iota
	// Invalid indicates a static validator rule was violated; construction
	// stopped before any type checking or compilation was attempted.
	Invalid
	// CompileFailed indicates the sink recorded at least one diagnostic
	// while type-checking or compiling locations and edges.
	CompileFailed
)

func (k FailureKind) String() string {
	switch k {
	case Ok:
		return "ok"
	case Invalid:
		return "invalid"
	case CompileFailed:
		return "compile-failed"
	default:
		return fmt.Sprintf("FailureKind(%d)", k)
	}
}

// Model bundles a system's variable catalog together with the typed ASTs
// and compiled bytecode for every location's invariant and every edge's
// guard and statement. Every vector is indexed by the system's own dense
// LocId/EdgeId space; a nil bytecode entry means that annotation's tree was
// ill-typed or otherwise failed to lower.
type Model struct {
	catalog *vars.Catalog

	invariants     []typed.Expr
	invariantCode  []*bytecode.Program
	guards         []typed.Expr
	guardCode      []*bytecode.Program
	statements     []typed.Stmt
	statementCode  []*bytecode.Program
}

// Catalog returns the variable catalog this model was built against.
func (m *Model) Catalog() *vars.Catalog { return m.catalog }

// TypedInvariant returns the typed invariant of location loc. loc must be in
// range: an out-of-range index is a programming error and panics.
func (m *Model) TypedInvariant(loc system.LocId) typed.Expr { return m.invariants[loc] }

// InvariantBytecode returns the compiled invariant of location loc, or nil
// if it was ill-typed or failed to compile.
func (m *Model) InvariantBytecode(loc system.LocId) *bytecode.Program { return m.invariantCode[loc] }

// TypedGuard returns the typed guard of edge e.
func (m *Model) TypedGuard(e system.EdgeId) typed.Expr { return m.guards[e] }

// GuardBytecode returns the compiled guard of edge e, or nil if absent.
func (m *Model) GuardBytecode(e system.EdgeId) *bytecode.Program { return m.guardCode[e] }

// TypedStatement returns the typed statement of edge e.
func (m *Model) TypedStatement(e system.EdgeId) typed.Stmt { return m.statements[e] }

// StatementBytecode returns the compiled statement of edge e, or nil if
// absent.
func (m *Model) StatementBytecode(e system.EdgeId) *bytecode.Program { return m.statementCode[e] }

// Clone deep-clones every typed AST this model owns and recompiles bytecode
// from the clones, rather than sharing or bitwise-copying the compiled
// streams: recompilation is cheap and keeps the two models fully
// independent.
func (m *Model) Clone() *Model {
	compiler := bytecode.New(diag.NewCollector())
	out := &Model{
		catalog:       m.catalog,
		invariants:    make([]typed.Expr, len(m.invariants)),
		invariantCode: make([]*bytecode.Program, len(m.invariantCode)),
		guards:        make([]typed.Expr, len(m.guards)),
		guardCode:     make([]*bytecode.Program, len(m.guardCode)),
		statements:    make([]typed.Stmt, len(m.statements)),
		statementCode: make([]*bytecode.Program, len(m.statementCode)),
	}

	for i, e := range m.invariants {
		out.invariants[i] = e.Clone()
		if m.invariantCode[i] != nil {
			out.invariantCode[i] = compiler.CompileExpr(fmt.Sprintf("location %d invariant", i), out.invariants[i])
		}
	}

	for i, e := range m.guards {
		out.guards[i] = e.Clone()
		if m.guardCode[i] != nil {
			out.guardCode[i] = compiler.CompileExpr(fmt.Sprintf("edge %d guard", i), out.guards[i])
		}
	}

	for i, s := range m.statements {
		out.statements[i] = s.Clone()
		if m.statementCode[i] != nil {
			out.statementCode[i] = compiler.CompileStmt(fmt.Sprintf("edge %d statement", i), out.statements[i])
		}
	}

	return out
}

// BuildResult wraps the outcome of Build: on success Model is non-nil and
// Kind is Ok; on failure Model is nil and Diagnostics explains why.
type BuildResult struct {
	Model       *Model
	Diagnostics []diag.Diagnostic
	Kind        FailureKind
}

// Build runs the full construction sequence over sys: it applies the static
// validator, then type-checks and compiles every invariant, guard and
// statement, accumulating diagnostics rather than stopping at the first one.
// rules overrides the default validator rule set; pass nil to use
// validate.Default.
func Build(sys system.Provider, rules []validate.Rule) BuildResult {
	if rules == nil {
		rules = validate.Default
	}

	if diags := validate.Run(sys, rules); len(diags) > 0 {
		return BuildResult{Diagnostics: diags, Kind: Invalid}
	}

	var (
		catalog  = &vars.Catalog{Ints: vars.NewIntVars(sys.IntVars()), Clocks: vars.NewClocks(sys.Clocks())}
		sink     = diag.NewCollector()
		checker  = typecheck.New(catalog, sink)
		compiler = bytecode.New(sink)

		locs  = sys.Locations()
		edges = sys.Edges()

		m = &Model{
			catalog:       catalog,
			invariants:    make([]typed.Expr, len(locs)),
			invariantCode: make([]*bytecode.Program, len(locs)),
			guards:        make([]typed.Expr, len(edges)),
			guardCode:     make([]*bytecode.Program, len(edges)),
			statements:    make([]typed.Stmt, len(edges)),
			statementCode: make([]*bytecode.Program, len(edges)),
		}
	)

	for _, loc := range locs {
		context := fmt.Sprintf("location %d invariant", loc.Id)
		typedInv := trueExpr()

		if loc.Invariant != nil {
			typedInv = checker.CheckExpr(context, loc.Invariant)
		}

		m.invariants[loc.Id] = typedInv

		if !typedInv.Type().IsIllTyped() {
			m.invariantCode[loc.Id] = compiler.CompileExpr(context, typedInv)
		}
	}

	for _, e := range edges {
		guardCtx := fmt.Sprintf("edge %d guard", e.Id)
		typedGuard := trueExpr()

		if e.Guard != nil {
			typedGuard = checker.CheckExpr(guardCtx, e.Guard)
		}

		m.guards[e.Id] = typedGuard

		if !typedGuard.Type().IsIllTyped() {
			m.guardCode[e.Id] = compiler.CompileExpr(guardCtx, typedGuard)
		}

		stmtCtx := fmt.Sprintf("edge %d statement", e.Id)
		stmtSrc := e.Statement
		if stmtSrc == nil {
			stmtSrc = &ast.Nop{}
		}

		typedStmt := checker.CheckStmt(stmtCtx, stmtSrc)
		m.statements[e.Id] = typedStmt

		if typedStmt.Kind() != typed.KindIllTyped {
			m.statementCode[e.Id] = compiler.CompileStmt(stmtCtx, typedStmt)
		}
	}

	if sink.ErrorCount() > 0 {
		return BuildResult{Diagnostics: sink.Diagnostics(), Kind: CompileFailed}
	}

	return BuildResult{Model: m, Kind: Ok}
}
