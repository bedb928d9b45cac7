// Package loader implements the surface syntax the CLI and integration
// tests use to exercise the compilation core: a small textual
// expression/statement language (this file and parser.go) and a JSON
// system description (system.go), giving something concrete to feed
// pkg/model with.
package loader

import (
	"fmt"

	"github.com/tchecker-go/tchecker/pkg/util/source"
)

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokIdent
	tokNumber
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokPercent
	tokLParen
	tokRParen
	tokLBracket
	tokRBracket
	tokAssign
	tokEq
	tokNe
	tokLt
	tokLe
	tokGt
	tokGe
	tokAnd
	tokOr
	tokNot
	tokSemi
)

type token struct {
	kind tokenKind
	text string
	span source.Span
}

func isIdentStart(c rune) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c rune) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

// tokenize scans the whole of file into a token stream terminated by a
// single tokEOF, or fails with the first unrecognised character reported as
// a source.SyntaxError.
func tokenize(file *source.File) ([]token, error) {
	var (
		runes = file.Contents()
		toks  []token
		i     = 0
	)

	for i < len(runes) {
		c := runes[i]

		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case isDigit(c):
			j := i + 1
			for j < len(runes) && isDigit(runes[j]) {
				j++
			}

			toks = append(toks, token{tokNumber, string(runes[i:j]), source.NewSpan(i, j)})
			i = j
		case isIdentStart(c):
			j := i + 1
			for j < len(runes) && isIdentPart(runes[j]) {
				j++
			}

			toks = append(toks, token{tokIdent, string(runes[i:j]), source.NewSpan(i, j)})
			i = j
		default:
			n, err := lexOperator(file, runes, i)
			if err != nil {
				return nil, err
			}

			toks = append(toks, n.tok)
			i = n.next
		}
	}

	toks = append(toks, token{tokEOF, "", source.NewSpan(len(runes), len(runes))})

	return toks, nil
}

type lexedOp struct {
	tok  token
	next int
}

var twoCharOps = map[string]tokenKind{
	"&&": tokAnd, "||": tokOr, "==": tokEq, "!=": tokNe, "<=": tokLe, ">=": tokGe,
}

var oneCharOps = map[rune]tokenKind{
	'+': tokPlus, '-': tokMinus, '*': tokStar, '/': tokSlash, '%': tokPercent,
	'(': tokLParen, ')': tokRParen, '[': tokLBracket, ']': tokRBracket,
	'=': tokAssign, '<': tokLt, '>': tokGt, '!': tokNot, ';': tokSemi,
}

func lexOperator(file *source.File, runes []rune, i int) (lexedOp, error) {
	if i+1 < len(runes) {
		two := string(runes[i : i+2])
		if kind, ok := twoCharOps[two]; ok {
			return lexedOp{token{kind, two, source.NewSpan(i, i+2)}, i + 2}, nil
		}
	}

	if kind, ok := oneCharOps[runes[i]]; ok {
		return lexedOp{token{kind, string(runes[i]), source.NewSpan(i, i+1)}, i + 1}, nil
	}

	span := source.NewSpan(i, i+1)
	return lexedOp{}, file.SyntaxError(span, fmt.Sprintf("unexpected character %q", string(runes[i])))
}
