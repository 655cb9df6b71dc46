package parser

import (
	"github.com/akashmaji946/ruchy/ast"
	"github.com/akashmaji946/ruchy/lexer"
)

// parseLet parses `let [mut] name [: T] = expr [else { ... }]` and
// its pattern-destructuring form `let [mut] pattern = expr [else {...}]`.
// The scoped continuation (`body`) is whatever follows in the
// enclosing block; since blocks are parsed expression-by-expression,
// `Let`'s body is the sentinel unit literal here and the interpreter
// treats a unit-bodied Let as adding to the current environment in
// place, per spec.md §4.4.
func parseLet(p *Parser) *ast.Expr {
	start := p.cur
	p.advance()
	mut := false
	if p.curIs(lexer.MUT) {
		mut = true
		p.advance()
	}

	// Disambiguate simple-name let from pattern-destructuring let: a
	// bare identifier followed by `:`/`=` is the common name form; a
	// `(`/`[` introduces a destructuring pattern.
	if p.curIs(lexer.LPAREN) || p.curIs(lexer.LBRACKET) {
		pat := p.parsePattern()
		p.expect(lexer.ASSIGN)
		value := p.parseExpression(LOWEST)
		elseBlock := p.parseOptionalElse()
		body := unitSentinel(value.Span)
		return &ast.Expr{
			Kind: ast.KindLetPattern, LetPattern: pat, IsMutable: mut,
			Value: value, Body: body, ElseBlock: elseBlock,
			Span: spanOf(start).Union(value.Span),
		}
	}

	nameTok := p.expect(lexer.IDENT)
	var typ *ast.Type
	if p.curIs(lexer.COLON) {
		p.advance()
		typ = p.parseType()
	}
	p.expect(lexer.ASSIGN)
	value := p.parseExpression(LOWEST)
	elseBlock := p.parseOptionalElse()
	body := unitSentinel(value.Span)
	return &ast.Expr{
		Kind: ast.KindLet, LetName: nameTok.Literal, IsMutable: mut, LetType: typ,
		Value: value, Body: body, ElseBlock: elseBlock,
		Span: spanOf(start).Union(value.Span),
	}
}

func (p *Parser) parseOptionalElse() *ast.Expr {
	if !p.curIs(lexer.ELSE) {
		return nil
	}
	p.advance()
	return parseBlock(p)
}

func unitSentinel(span ast.Span) *ast.Expr {
	return &ast.Expr{Kind: ast.KindLiteral, LitKind: ast.LitUnit, Span: span}
}

func parseIf(p *Parser) *ast.Expr {
	start := p.cur
	p.advance()
	cond := p.parseExpression(LOWEST)
	then := parseBlock(p)
	var elseExpr *ast.Expr
	if p.curIs(lexer.ELSE) {
		p.advance()
		if p.curIs(lexer.IF) {
			elseExpr = parseIf(p)
		} else {
			elseExpr = parseBlock(p)
		}
	}
	span := spanOf(start).Union(then.Span)
	if elseExpr != nil {
		span = span.Union(elseExpr.Span)
	}
	return &ast.Expr{Kind: ast.KindIf, Cond: cond, Then: then, Else: elseExpr, Span: span}
}

func parseMatch(p *Parser) *ast.Expr {
	start := p.cur
	p.advance()
	scrutinee := p.parseExpression(LOWEST)
	p.expect(lexer.LBRACE)
	var arms []ast.MatchArm
	for !p.curIs(lexer.RBRACE) && !p.curIs(lexer.EOF) {
		armStart := p.cur
		pat := p.parsePattern()
		var guard *ast.Expr
		if p.curIs(lexer.IF) {
			p.advance()
			guard = p.parseExpression(LOWEST)
		}
		p.expect(lexer.FATARROW)
		body := p.parseExpression(LOWEST)
		arms = append(arms, ast.MatchArm{Pattern: pat, Guard: guard, Body: body, Span: spanOf(armStart).Union(body.Span)})
		if p.curIs(lexer.COMMA) {
			p.advance()
		}
	}
	end := p.expect(lexer.RBRACE)
	return &ast.Expr{Kind: ast.KindMatch, Scrutinee: scrutinee, Arms: arms, Span: spanOf(start).Union(spanOf(end))}
}

func parseWhile(p *Parser) *ast.Expr {
	start := p.cur
	p.advance()
	cond := p.parseExpression(LOWEST)
	body := parseBlock(p)
	return &ast.Expr{Kind: ast.KindWhile, Cond: cond, Body: body, Span: spanOf(start).Union(body.Span)}
}

func parseFor(p *Parser) *ast.Expr {
	start := p.cur
	p.advance()
	var loopVar string
	var loopPat *ast.Pattern
	if p.curIs(lexer.LPAREN) || p.curIs(lexer.LBRACKET) {
		loopPat = p.parsePattern()
	} else {
		loopVar = p.expect(lexer.IDENT).Literal
	}
	p.expect(lexer.IN)
	iter := p.parseExpression(LOWEST)
	body := parseBlock(p)
	return &ast.Expr{Kind: ast.KindFor, LoopVar: loopVar, LoopPat: loopPat, Iter: iter, Body: body, Span: spanOf(start).Union(body.Span)}
}

func parseLoop(p *Parser) *ast.Expr {
	start := p.cur
	p.advance()
	body := parseBlock(p)
	return &ast.Expr{Kind: ast.KindLoop, Body: body, Span: spanOf(start).Union(body.Span)}
}

// Loop labels have no dedicated token in this grammar (no `'label`
// syntax), so break/continue never consume a following identifier as
// one here; the Label field exists on the AST for a future surface
// syntax and is always empty coming out of the parser today.
func parseBreak(p *Parser) *ast.Expr {
	start := p.cur
	p.advance()
	e := &ast.Expr{Kind: ast.KindBreak, Span: spanOf(start)}
	if !atExprBoundary(p) {
		e.BreakVal = p.parseExpression(LOWEST)
		e.Span = e.Span.Union(e.BreakVal.Span)
	}
	return e
}

func parseContinue(p *Parser) *ast.Expr {
	start := p.cur
	p.advance()
	return &ast.Expr{Kind: ast.KindContinue, Span: spanOf(start)}
}

func parseReturn(p *Parser) *ast.Expr {
	start := p.cur
	p.advance()
	e := &ast.Expr{Kind: ast.KindReturn, Span: spanOf(start)}
	if !atExprBoundary(p) {
		e.Arg = p.parseExpression(LOWEST)
		e.Span = e.Span.Union(e.Arg.Span)
	}
	return e
}

func atExprBoundary(p *Parser) bool {
	switch p.cur.Type {
	case lexer.SEMI, lexer.RBRACE, lexer.RPAREN, lexer.RBRACKET, lexer.COMMA, lexer.EOF:
		return true
	}
	return false
}
