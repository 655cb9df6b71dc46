package parser

import "github.com/akashmaji946/ruchy/lexer"

// Precedence levels, spec.md §4.2 (lowest to highest so that
// `minPrec < precedenceOf(tok)` drives the climb correctly).
const (
	LOWEST = iota
	ASSIGNMENT  // = += -= *= /= %=  (right-assoc, handled specially)
	PIPE_PREC   // |>
	RANGE_PREC  // .. ..=
	LOGIC_OR    // ||
	LOGIC_AND   // &&
	EQUALITY    // == != < <= > >=
	BIT_OR      // |
	BIT_XOR     // ^
	BIT_AND     // &
	SHIFT       // << >>
	ADDITIVE    // + -
	MULTIPLIC   // * / %
	POSTFIX     // call, method, field, index, slice, ?, ++, --
)

func precedenceOf(t lexer.TokenType) int {
	switch t {
	case lexer.ASSIGN, lexer.PLUS_EQ, lexer.MINUS_EQ, lexer.STAR_EQ, lexer.SLASH_EQ, lexer.PCT_EQ:
		return ASSIGNMENT
	case lexer.PIPE_GT:
		return PIPE_PREC
	case lexer.RANGE, lexer.RANGE_EQ:
		return RANGE_PREC
	case lexer.OR:
		return LOGIC_OR
	case lexer.AND:
		return LOGIC_AND
	case lexer.EQ, lexer.NE, lexer.LT, lexer.LE, lexer.GT, lexer.GE:
		return EQUALITY
	case lexer.PIPE:
		return BIT_OR
	case lexer.CARET:
		return BIT_XOR
	case lexer.AMP:
		return BIT_AND
	case lexer.SHL, lexer.SHR:
		return SHIFT
	case lexer.PLUS, lexer.MINUS:
		return ADDITIVE
	case lexer.STAR, lexer.SLASH, lexer.PERCENT:
		return MULTIPLIC
	case lexer.LPAREN, lexer.DOT, lexer.QDOT, lexer.LBRACKET, lexer.QUESTION, lexer.INC, lexer.DEC:
		return POSTFIX
	}
	return LOWEST
}

// rightAssoc reports whether the operator at this precedence binds
// right-to-left (only assignment forms, per spec.md §4.2).
func rightAssoc(t lexer.TokenType) bool {
	switch t {
	case lexer.ASSIGN, lexer.PLUS_EQ, lexer.MINUS_EQ, lexer.STAR_EQ, lexer.SLASH_EQ, lexer.PCT_EQ:
		return true
	}
	return false
}
