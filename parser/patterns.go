package parser

import (
	"github.com/akashmaji946/ruchy/ast"
	"github.com/akashmaji946/ruchy/lexer"
)

// parsePattern parses the pattern grammar used by `let`, match arms,
// and destructuring function parameters (spec.md §3/§4.2): `_`,
// literal, identifier binding, tuple, list with optional `..rest`,
// struct, tuple-struct, or-pattern `A | B`, range, `name @ sub`, `&p`.
func (p *Parser) parsePattern() *ast.Pattern {
	base := p.parsePrimaryPattern()
	if p.curIs(lexer.PIPE) {
		alts := []*ast.Pattern{base}
		span := base.Span
		for p.curIs(lexer.PIPE) {
			p.advance()
			next := p.parsePrimaryPattern()
			alts = append(alts, next)
			span = span.Union(next.Span)
		}
		return &ast.Pattern{Kind: ast.PatOr, Alternatives: alts, Span: span}
	}
	return base
}

func (p *Parser) parsePrimaryPattern() *ast.Pattern {
	switch p.cur.Type {
	case lexer.IDENT:
		tok := p.cur
		if tok.Literal == "_" {
			p.advance()
			return &ast.Pattern{Kind: ast.PatWildcard, Span: spanOf(tok)}
		}
		p.advance()
		// tuple-struct / struct pattern: Name(...) or Name { ... }
		if p.curIs(lexer.LPAREN) {
			return p.parseTupleStructPattern(tok.Literal, spanOf(tok))
		}
		if p.curIs(lexer.LBRACE) {
			return p.parseStructPattern(tok.Literal, spanOf(tok))
		}
		if p.curIs(lexer.AT) {
			p.advance()
			sub := p.parsePattern()
			return &ast.Pattern{Kind: ast.PatBinding, Name: tok.Literal, Sub: sub, Span: spanOf(tok).Union(sub.Span)}
		}
		return p.maybeRangePattern(&ast.Pattern{Kind: ast.PatIdentifier, Name: tok.Literal, Span: spanOf(tok)}, tok)
	case lexer.INT, lexer.FLOAT, lexer.STRING, lexer.CHAR, lexer.BOOL, lexer.NIL:
		tok := p.cur
		lit := p.prefixFns[p.cur.Type](p)
		return p.maybeRangePattern(&ast.Pattern{Kind: ast.PatLiteral, Lit: lit, Span: lit.Span}, tok)
	case lexer.MINUS:
		lit := parsePrefixUnary(p)
		return &ast.Pattern{Kind: ast.PatLiteral, Lit: lit, Span: lit.Span}
	case lexer.LPAREN:
		return p.parseTuplePattern()
	case lexer.LBRACKET:
		return p.parseListPattern()
	case lexer.AMP:
		start := p.cur
		p.advance()
		mut := false
		if p.curIs(lexer.MUT) {
			mut = true
			p.advance()
		}
		inner := p.parsePattern()
		return &ast.Pattern{Kind: ast.PatReference, Mutable: mut, Inner: inner, Span: spanOf(start).Union(inner.Span)}
	default:
		p.errorf("unexpected token %s in pattern", p.cur.Type)
		tok := p.cur
		p.advance()
		return &ast.Pattern{Kind: ast.PatWildcard, Span: spanOf(tok)}
	}
}

func (p *Parser) maybeRangePattern(lhs *ast.Pattern, startTok lexer.Token) *ast.Pattern {
	if !p.curIs(lexer.RANGE) && !p.curIs(lexer.RANGE_EQ) {
		return lhs
	}
	inclusive := p.curIs(lexer.RANGE_EQ)
	p.advance()
	rhs := p.parsePrimaryPattern()
	return &ast.Pattern{Kind: ast.PatRange, RangeLow: lhs, RangeHigh: rhs, Inclusive: inclusive, Span: lhs.Span.Union(rhs.Span)}
}

func (p *Parser) parseTuplePattern() *ast.Pattern {
	start := p.cur
	p.advance()
	var elems []*ast.Pattern
	for !p.curIs(lexer.RPAREN) && !p.curIs(lexer.EOF) {
		elems = append(elems, p.parsePattern())
		if p.curIs(lexer.COMMA) {
			p.advance()
		} else {
			break
		}
	}
	end := p.expect(lexer.RPAREN)
	return &ast.Pattern{Kind: ast.PatTuple, Elements: elems, Span: spanOf(start).Union(spanOf(end))}
}

// parseListPattern parses `[a, b, ..rest]` with an optional rest
// binding anywhere in the element list.
func (p *Parser) parseListPattern() *ast.Pattern {
	start := p.cur
	p.advance()
	var elems []*ast.Pattern
	var rest *string
	restPos := -1
	for !p.curIs(lexer.RBRACKET) && !p.curIs(lexer.EOF) {
		if p.curIs(lexer.RANGE) {
			p.advance()
			name := ""
			if p.curIs(lexer.IDENT) {
				name = p.cur.Literal
				p.advance()
			}
			rest = &name
			restPos = len(elems)
		} else {
			elems = append(elems, p.parsePattern())
		}
		if p.curIs(lexer.COMMA) {
			p.advance()
		} else {
			break
		}
	}
	end := p.expect(lexer.RBRACKET)
	return &ast.Pattern{Kind: ast.PatList, Elements: elems, Rest: rest, RestPos: restPos, Span: spanOf(start).Union(spanOf(end))}
}

func (p *Parser) parseTupleStructPattern(name string, start ast.Span) *ast.Pattern {
	p.advance() // (
	var elems []*ast.Pattern
	for !p.curIs(lexer.RPAREN) && !p.curIs(lexer.EOF) {
		elems = append(elems, p.parsePattern())
		if p.curIs(lexer.COMMA) {
			p.advance()
		} else {
			break
		}
	}
	end := p.expect(lexer.RPAREN)
	return &ast.Pattern{Kind: ast.PatTupleStruct, TypeName: name, TuplePats: elems, Span: start.Union(spanOf(end))}
}

func (p *Parser) parseStructPattern(name string, start ast.Span) *ast.Pattern {
	p.advance() // {
	var fields []ast.FieldPattern
	for !p.curIs(lexer.RBRACE) && !p.curIs(lexer.EOF) {
		fname := p.expect(lexer.IDENT).Literal
		if p.curIs(lexer.COLON) {
			p.advance()
			sub := p.parsePattern()
			fields = append(fields, ast.FieldPattern{Name: fname, Pattern: sub})
		} else {
			fields = append(fields, ast.FieldPattern{Name: fname, Shorthand: true})
		}
		if p.curIs(lexer.COMMA) {
			p.advance()
		} else {
			break
		}
	}
	end := p.expect(lexer.RBRACE)
	return &ast.Pattern{Kind: ast.PatStruct, TypeName: name, FieldPats: fields, Span: start.Union(spanOf(end))}
}
