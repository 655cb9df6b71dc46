// Package parser implements a recursive-descent parser with
// Pratt-style precedence climbing for Ruchy source, producing the
// shared ast.Expr tree the interpreter and transpiler both consume.
package parser

import (
	"fmt"

	"github.com/akashmaji946/ruchy/ast"
	"github.com/akashmaji946/ruchy/lexer"
)

// prefixParseFn parses an expression that can start at the current
// token (literals, identifiers, prefix operators, grouped forms).
type prefixParseFn func(p *Parser) *ast.Expr

// infixParseFn parses the continuation of an expression given its
// already-parsed left operand.
type infixParseFn func(p *Parser, left *ast.Expr) *ast.Expr

// Parser holds lexer lookahead and the registered Pratt dispatch
// tables, the same shape as the teacher's Parser (Lex/CurrToken/
// NextToken/UnaryFuncs/BinaryFuncs), generalized to Ruchy's grammar.
type Parser struct {
	lex *lexer.Lexer

	cur  lexer.Token
	peek lexer.Token

	prefixFns map[lexer.TokenType]prefixParseFn
	infixFns  map[lexer.TokenType]infixParseFn

	errors []ErrorNode
}

// New creates a parser over src and primes its two-token lookahead.
func New(src string) *Parser {
	p := &Parser{lex: lexer.New(src)}
	p.prefixFns = make(map[lexer.TokenType]prefixParseFn)
	p.infixFns = make(map[lexer.TokenType]infixParseFn)
	p.registerPrefix()
	p.registerInfix()
	p.advance()
	p.advance()
	return p
}

// Errors returns accumulated parse errors (best-effort, non-aborting).
func (p *Parser) Errors() []ErrorNode { return p.errors }

func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.lex.NextToken()
	for p.cur.Type == lexer.LINE_COMMENT || p.cur.Type == lexer.BLOCK_COMMENT {
		p.cur = p.peek
		p.peek = p.lex.NextToken()
	}
}

func (p *Parser) curIs(t lexer.TokenType) bool  { return p.cur.Type == t }
func (p *Parser) peekIs(t lexer.TokenType) bool { return p.peek.Type == t }

// peek2 looks one token past p.peek without disturbing the real
// lexer's position, by scanning a disposable clone (lexer.Clone).
// Used only for rare disambiguation (block vs. object literal).
func (p *Parser) peek2() lexer.Token {
	return p.lex.Clone().NextToken()
}

func (p *Parser) expect(t lexer.TokenType) lexer.Token {
	if !p.curIs(t) {
		p.errorf("expected %s, found %s", t, p.cur.Type)
		return p.cur
	}
	tok := p.cur
	p.advance()
	return tok
}

func (p *Parser) errorf(format string, args ...any) {
	p.errors = append(p.errors, ErrorNode{
		Span:    spanOf(p.cur),
		Message: fmt.Sprintf(format, args...),
	})
}

func spanOf(t lexer.Token) ast.Span {
	return ast.Span{Start: t.Span.Start, End: t.Span.End, Line: t.Span.Line, Col: t.Span.Col}
}

// Parse parses a whole program: a Block when multiple top-level
// expressions exist, a single Expr otherwise (spec.md §4.2).
func Parse(src string) (*ast.Expr, []ErrorNode) {
	p := New(src)
	var exprs []*ast.Expr
	for !p.curIs(lexer.EOF) {
		e := p.parseTopLevel()
		if e != nil {
			exprs = append(exprs, e)
		}
		for p.curIs(lexer.SEMI) {
			p.advance()
		}
	}
	if len(exprs) == 1 {
		return exprs[0], p.errors
	}
	span := ast.Span{}
	if len(exprs) > 0 {
		span = exprs[0].Span.Union(exprs[len(exprs)-1].Span)
	}
	return &ast.Expr{Kind: ast.KindBlock, Span: span, Exprs: exprs}, p.errors
}

func (p *Parser) parseTopLevel() *ast.Expr {
	attrs := p.parseAttributes()
	e := p.parseExpression(LOWEST)
	if e != nil {
		e.Attributes = attrs
	}
	return e
}

// parseAttributes consumes zero or more `@decorator(args...)` prefixes.
// Rust-style `#[...]` is rejected with a localized error per spec.md §4.2.
func (p *Parser) parseAttributes() []ast.Attribute {
	var attrs []ast.Attribute
	for p.curIs(lexer.AT) {
		start := p.cur.Span
		p.advance()
		name := p.expect(lexer.IDENT).Literal
		var args []*ast.Expr
		if p.curIs(lexer.LPAREN) {
			p.advance()
			for !p.curIs(lexer.RPAREN) && !p.curIs(lexer.EOF) {
				args = append(args, p.parseExpression(LOWEST))
				if p.curIs(lexer.COMMA) {
					p.advance()
				}
			}
			p.expect(lexer.RPAREN)
		}
		attrs = append(attrs, ast.Attribute{Name: name, Args: args, Span: spanOf(lexer.Token{Span: start})})
	}
	if p.cur.Literal == "#" {
		p.errorf("attributes use `@decorator` form, not `#[...]`")
		for !p.curIs(lexer.RBRACKET) && !p.curIs(lexer.EOF) {
			p.advance()
		}
		if p.curIs(lexer.RBRACKET) {
			p.advance()
		}
	}
	return attrs
}

// ErrorNode records a parse failure with its span and message; the
// parser resynchronizes and keeps going rather than aborting (spec.md
// §4.2), generalizing the teacher's "collect Errors, don't panic" idea.
type ErrorNode struct {
	Span    ast.Span
	Message string
}

func (e ErrorNode) String() string {
	return fmt.Sprintf("%d:%d: %s", e.Span.Line, e.Span.Col, e.Message)
}

// synchronize skips tokens until the next `;`, a closing brace at the
// current depth, or a known statement-starting keyword, per spec.md
// §4.2's recovery contract.
func (p *Parser) synchronize() {
	for !p.curIs(lexer.EOF) {
		if p.curIs(lexer.SEMI) {
			p.advance()
			return
		}
		if p.curIs(lexer.RBRACE) {
			return
		}
		switch p.cur.Type {
		case lexer.LET, lexer.FN, lexer.IF, lexer.WHILE, lexer.FOR, lexer.LOOP,
			lexer.RETURN, lexer.STRUCT, lexer.ENUM, lexer.IMPL, lexer.ACTOR, lexer.USE:
			return
		}
		p.advance()
	}
}

func (p *Parser) registerPrefix() {
	p.prefixFns[lexer.INT] = parseIntLiteral
	p.prefixFns[lexer.FLOAT] = parseFloatLiteral
	p.prefixFns[lexer.STRING] = parseStringLiteral
	p.prefixFns[lexer.FSTRING] = parseFStringLiteral
	p.prefixFns[lexer.CHAR] = parseCharLiteral
	p.prefixFns[lexer.BOOL] = parseBoolLiteral
	p.prefixFns[lexer.NIL] = parseNilLiteral
	p.prefixFns[lexer.IDENT] = parseIdentOrQualified
	p.prefixFns[lexer.SELF] = parseIdentOrQualified
	p.prefixFns[lexer.LPAREN] = parseParenOrTuple
	p.prefixFns[lexer.LBRACKET] = parseListLiteral
	p.prefixFns[lexer.LBRACE] = parseBlockOrObjectOrPipe
	p.prefixFns[lexer.MINUS] = parsePrefixUnary
	p.prefixFns[lexer.NOT] = parsePrefixUnary
	p.prefixFns[lexer.TILDE] = parsePrefixUnary
	p.prefixFns[lexer.INC] = parsePrefixIncDec
	p.prefixFns[lexer.DEC] = parsePrefixIncDec
	p.prefixFns[lexer.LET] = parseLet
	p.prefixFns[lexer.IF] = parseIf
	p.prefixFns[lexer.MATCH] = parseMatch
	p.prefixFns[lexer.WHILE] = parseWhile
	p.prefixFns[lexer.FOR] = parseFor
	p.prefixFns[lexer.LOOP] = parseLoop
	p.prefixFns[lexer.BREAK] = parseBreak
	p.prefixFns[lexer.CONTINUE] = parseContinue
	p.prefixFns[lexer.RETURN] = parseReturn
	p.prefixFns[lexer.FN] = parseFunction
	p.prefixFns[lexer.PIPE] = parseLambdaPipe
	p.prefixFns[lexer.OR] = parseLambdaPipe
	p.prefixFns[lexer.STRUCT] = parseStructDef
	p.prefixFns[lexer.ENUM] = parseEnumDef
	p.prefixFns[lexer.IMPL] = parseImplDef
	p.prefixFns[lexer.ACTOR] = parseActorDef
	p.prefixFns[lexer.USE] = parseUse
}

func (p *Parser) registerInfix() {
	bin := func(tt lexer.TokenType) {
		p.infixFns[tt] = parseBinary
	}
	for _, tt := range []lexer.TokenType{
		lexer.STAR, lexer.SLASH, lexer.PERCENT,
		lexer.PLUS, lexer.MINUS,
		lexer.SHL, lexer.SHR,
		lexer.AMP, lexer.CARET, lexer.PIPE,
		lexer.EQ, lexer.NE, lexer.LT, lexer.LE, lexer.GT, lexer.GE,
		lexer.AND, lexer.OR,
	} {
		bin(tt)
	}
	p.infixFns[lexer.RANGE] = parseRange
	p.infixFns[lexer.RANGE_EQ] = parseRange
	p.infixFns[lexer.PIPE_GT] = parsePipe
	p.infixFns[lexer.ASSIGN] = parseAssign
	for _, tt := range []lexer.TokenType{lexer.PLUS_EQ, lexer.MINUS_EQ, lexer.STAR_EQ, lexer.SLASH_EQ, lexer.PCT_EQ} {
		p.infixFns[tt] = parseCompoundAssign
	}
	p.infixFns[lexer.LPAREN] = parseCall
	p.infixFns[lexer.DOT] = parseFieldOrMethod
	p.infixFns[lexer.QDOT] = parseOptionalField
	p.infixFns[lexer.LBRACKET] = parseIndexOrSlice
	p.infixFns[lexer.INC] = parsePostfixIncDec
	p.infixFns[lexer.DEC] = parsePostfixIncDec
	p.infixFns[lexer.QUESTION] = parseTryOperator
}

// parseExpression is the Pratt core: parse a prefix/primary form,
// then repeatedly extend it with infix/postfix forms whose precedence
// exceeds minPrec.
func (p *Parser) parseExpression(minPrec int) *ast.Expr {
	prefix, ok := p.prefixFns[p.cur.Type]
	if !ok {
		p.errorf("unexpected token %s", p.cur.Type)
		p.advance()
		p.synchronize()
		return &ast.Expr{Kind: ast.KindLiteral, LitKind: ast.LitUnit, Span: spanOf(p.cur)}
	}
	left := prefix(p)

	for !p.curIs(lexer.SEMI) && minPrec < precedenceOf(p.cur.Type) {
		infix, ok := p.infixFns[p.cur.Type]
		if !ok {
			return left
		}
		left = infix(p, left)
	}
	return left
}
