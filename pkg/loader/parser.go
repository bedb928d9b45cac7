package loader

import (
	"fmt"
	"strconv"

	"github.com/tchecker-go/tchecker/pkg/lang/ast"
	"github.com/tchecker-go/tchecker/pkg/util/source"
)

// Parser is a minimal recursive-descent parser for the surface syntax of the
// expression/statement language: variables, integer literals, array
// indexing, unary '-'/'!', the arithmetic/comparison/logical operators,
// parenthesisation, assignment and ';' sequencing, plus the "nop" keyword.
// It exists purely to give the CLI and integration tests a textual notation
// to type-check and compile; the core never sees it.
type Parser struct {
	file   *source.File
	tokens []token
	pos    int
}

// NewParser tokenises src, associated with filename for error messages.
func NewParser(filename, src string) (*Parser, error) {
	file := source.NewSourceFile(filename, []byte(src))

	toks, err := tokenize(file)
	if err != nil {
		return nil, err
	}

	return &Parser{file, toks, 0}, nil
}

// ParseExpr parses src as a standalone expression, in the given filename's
// error-reporting context.
func ParseExpr(filename, src string) (ast.Expr, error) {
	p, err := NewParser(filename, src)
	if err != nil {
		return nil, err
	}

	e, err := p.Expr()
	if err != nil {
		return nil, err
	}

	if err := p.expectEOF(); err != nil {
		return nil, err
	}

	return e, nil
}

// ParseStmt parses src as a standalone statement.
func ParseStmt(filename, src string) (ast.Stmt, error) {
	p, err := NewParser(filename, src)
	if err != nil {
		return nil, err
	}

	s, err := p.Stmt()
	if err != nil {
		return nil, err
	}

	if err := p.expectEOF(); err != nil {
		return nil, err
	}

	return s, nil
}

func (p *Parser) peek() token   { return p.tokens[p.pos] }
func (p *Parser) advance() token {
	t := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) errorAt(span source.Span, msg string) error {
	return p.file.SyntaxError(span, msg)
}

func (p *Parser) expect(kind tokenKind, what string) (token, error) {
	t := p.peek()
	if t.kind != kind {
		return token{}, p.errorAt(t.span, fmt.Sprintf("expected %s, found %q", what, t.text))
	}

	return p.advance(), nil
}

func (p *Parser) expectEOF() error {
	if t := p.peek(); t.kind != tokEOF {
		return p.errorAt(t.span, fmt.Sprintf("unexpected trailing input %q", t.text))
	}

	return nil
}

// Stmt parses a single statement, including a ';'-separated sequence.
func (p *Parser) Stmt() (ast.Stmt, error) {
	left, err := p.simpleStmt()
	if err != nil {
		return nil, err
	}

	for p.peek().kind == tokSemi {
		p.advance()

		right, err := p.simpleStmt()
		if err != nil {
			return nil, err
		}

		left = &ast.Seq{Left: left, Right: right}
	}

	return left, nil
}

func (p *Parser) simpleStmt() (ast.Stmt, error) {
	if t := p.peek(); t.kind == tokIdent && t.text == "nop" {
		p.advance()
		return &ast.Nop{}, nil
	}

	lhs, err := p.Expr()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(tokAssign, "'='"); err != nil {
		return nil, err
	}

	rhs, err := p.Expr()
	if err != nil {
		return nil, err
	}

	stmt, err := ast.NewAssign(lhs, rhs)
	if err != nil {
		return nil, p.errorAt(p.tokens[p.pos-1].span, err.Error())
	}

	return stmt, nil
}

// Expr parses a single expression at the lowest precedence level ('||').
func (p *Parser) Expr() (ast.Expr, error) { return p.orExpr() }

func (p *Parser) orExpr() (ast.Expr, error) {
	left, err := p.andExpr()
	if err != nil {
		return nil, err
	}

	for p.peek().kind == tokOr {
		p.advance()

		right, err := p.andExpr()
		if err != nil {
			return nil, err
		}

		left = &ast.BinLogic{Op: ast.Or, Left: left, Right: right}
	}

	return left, nil
}

func (p *Parser) andExpr() (ast.Expr, error) {
	left, err := p.cmpExpr()
	if err != nil {
		return nil, err
	}

	for p.peek().kind == tokAnd {
		p.advance()

		right, err := p.cmpExpr()
		if err != nil {
			return nil, err
		}

		left = &ast.BinLogic{Op: ast.And, Left: left, Right: right}
	}

	return left, nil
}

var cmpOps = map[tokenKind]ast.CmpOp{
	tokLt: ast.Lt, tokLe: ast.Le, tokEq: ast.Eq, tokNe: ast.Ne, tokGe: ast.Ge, tokGt: ast.Gt,
}

// cmpExpr is non-associative: a comparison's operands are additive
// expressions, never another comparison, matching the printer's "strict on
// both sides" treatment of precCmp.
func (p *Parser) cmpExpr() (ast.Expr, error) {
	left, err := p.addExpr()
	if err != nil {
		return nil, err
	}

	op, ok := cmpOps[p.peek().kind]
	if !ok {
		return left, nil
	}

	p.advance()

	right, err := p.addExpr()
	if err != nil {
		return nil, err
	}

	return &ast.BinCmp{Op: op, Left: left, Right: right}, nil
}

func (p *Parser) addExpr() (ast.Expr, error) {
	left, err := p.mulExpr()
	if err != nil {
		return nil, err
	}

	for {
		var op ast.ArithOp

		switch p.peek().kind {
		case tokPlus:
			op = ast.Add
		case tokMinus:
			op = ast.Sub
		default:
			return left, nil
		}

		p.advance()

		right, err := p.mulExpr()
		if err != nil {
			return nil, err
		}

		left = &ast.BinArith{Op: op, Left: left, Right: right}
	}
}

func (p *Parser) mulExpr() (ast.Expr, error) {
	left, err := p.unaryExpr()
	if err != nil {
		return nil, err
	}

	for {
		var op ast.ArithOp

		switch p.peek().kind {
		case tokStar:
			op = ast.Mul
		case tokSlash:
			op = ast.Div
		case tokPercent:
			op = ast.Mod
		default:
			return left, nil
		}

		p.advance()

		right, err := p.unaryExpr()
		if err != nil {
			return nil, err
		}

		left = &ast.BinArith{Op: op, Left: left, Right: right}
	}
}

func (p *Parser) unaryExpr() (ast.Expr, error) {
	switch p.peek().kind {
	case tokMinus:
		p.advance()

		arg, err := p.unaryExpr()
		if err != nil {
			return nil, err
		}

		return &ast.Unary{Op: ast.Neg, Arg: arg}, nil
	case tokNot:
		p.advance()

		arg, err := p.unaryExpr()
		if err != nil {
			return nil, err
		}

		return &ast.Unary{Op: ast.Not, Arg: arg}, nil
	default:
		return p.primary()
	}
}

func (p *Parser) primary() (ast.Expr, error) {
	t := p.peek()

	switch t.kind {
	case tokNumber:
		p.advance()

		v, err := strconv.ParseInt(t.text, 10, 64)
		if err != nil {
			return nil, p.errorAt(t.span, fmt.Sprintf("invalid integer literal %q", t.text))
		}

		return &ast.IntLit{Value: v}, nil
	case tokIdent:
		p.advance()
		return p.maybeIndex(&ast.VarRef{Name: t.text})
	case tokLParen:
		p.advance()

		inner, err := p.Expr()
		if err != nil {
			return nil, err
		}

		if _, err := p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}

		return p.maybeIndex(&ast.Paren{Inner: inner})
	default:
		return nil, p.errorAt(t.span, fmt.Sprintf("unexpected token %q", t.text))
	}
}

func (p *Parser) maybeIndex(base ast.Expr) (ast.Expr, error) {
	if p.peek().kind != tokLBracket {
		return base, nil
	}

	p.advance()

	index, err := p.Expr()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(tokRBracket, "']'"); err != nil {
		return nil, err
	}

	return &ast.ArrayAccess{Base: base, Index: index}, nil
}
