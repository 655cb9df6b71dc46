package parser

import (
	"github.com/akashmaji946/ruchy/ast"
	"github.com/akashmaji946/ruchy/lexer"
)

// parseType parses a surface type annotation (spec.md §3): named,
// generic, list, tuple, function, optional, reference.
func (p *Parser) parseType() *ast.Type {
	switch p.cur.Type {
	case lexer.AMP:
		start := p.cur
		p.advance()
		mut := false
		if p.curIs(lexer.MUT) {
			mut = true
			p.advance()
		}
		inner := p.parseType()
		return &ast.Type{Kind: ast.TypeReference, Mutable: mut, Inner: inner, Span: spanOf(start).Union(inner.Span)}
	case lexer.LBRACKET:
		start := p.cur
		p.advance()
		elem := p.parseType()
		end := p.expect(lexer.RBRACKET)
		return &ast.Type{Kind: ast.TypeList, Elem: elem, Span: spanOf(start).Union(spanOf(end))}
	case lexer.LPAREN:
		start := p.cur
		p.advance()
		var elems []*ast.Type
		for !p.curIs(lexer.RPAREN) && !p.curIs(lexer.EOF) {
			elems = append(elems, p.parseType())
			if p.curIs(lexer.COMMA) {
				p.advance()
			} else {
				break
			}
		}
		end := p.expect(lexer.RPAREN)
		return &ast.Type{Kind: ast.TypeTuple, Elements: elems, Span: spanOf(start).Union(spanOf(end))}
	case lexer.FN:
		start := p.cur
		p.advance()
		p.expect(lexer.LPAREN)
		var params []*ast.Type
		for !p.curIs(lexer.RPAREN) && !p.curIs(lexer.EOF) {
			params = append(params, p.parseType())
			if p.curIs(lexer.COMMA) {
				p.advance()
			} else {
				break
			}
		}
		end := p.expect(lexer.RPAREN)
		var ret *ast.Type
		if p.curIs(lexer.ARROW) {
			p.advance()
			ret = p.parseType()
		}
		span := spanOf(start).Union(spanOf(end))
		if ret != nil {
			span = span.Union(ret.Span)
		}
		return &ast.Type{Kind: ast.TypeFunction, Params: params, Return: ret, Span: span}
	default:
		name := p.expect(lexer.IDENT)
		span := spanOf(name)
		var t *ast.Type
		if p.curIs(lexer.LT) {
			p.advance()
			var args []*ast.Type
			for !p.curIs(lexer.GT) && !p.curIs(lexer.EOF) {
				args = append(args, p.parseType())
				if p.curIs(lexer.COMMA) {
					p.advance()
				} else {
					break
				}
			}
			end := p.expect(lexer.GT)
			span = span.Union(spanOf(end))
			t = &ast.Type{Kind: ast.TypeGeneric, Name: name.Literal, Args: args, Span: span}
		} else {
			t = &ast.Type{Kind: ast.TypeNamed, Name: name.Literal, Span: span}
		}
		if p.curIs(lexer.QUESTION) {
			q := p.cur
			p.advance()
			return &ast.Type{Kind: ast.TypeOptional, Inner: t, Span: span.Union(spanOf(q))}
		}
		return t
	}
}
