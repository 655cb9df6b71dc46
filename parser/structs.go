package parser

import (
	"github.com/akashmaji946/ruchy/ast"
	"github.com/akashmaji946/ruchy/lexer"
)

// parseStructDef parses `struct S { f: T, ... }` (derives, if any,
// arrive as attributes already consumed by parseTopLevel/parseAttributes
// and attached to the returned Expr by the caller).
func parseStructDef(p *Parser) *ast.Expr {
	start := p.cur
	p.advance()
	name := p.expect(lexer.IDENT).Literal
	if p.curIs(lexer.LPAREN) {
		return parseTupleStructBody(p, start, name)
	}
	p.expect(lexer.LBRACE)
	var fields []ast.Field
	for !p.curIs(lexer.RBRACE) && !p.curIs(lexer.EOF) {
		fstart := p.cur
		fname := p.expect(lexer.IDENT).Literal
		p.expect(lexer.COLON)
		ftype := p.parseType()
		fields = append(fields, ast.Field{Name: fname, Type: ftype, Span: spanOf(fstart)})
		if p.curIs(lexer.COMMA) {
			p.advance()
		} else {
			break
		}
	}
	end := p.expect(lexer.RBRACE)
	return &ast.Expr{Kind: ast.KindStruct, TypeName: name, Fields: fields, Span: spanOf(start).Union(spanOf(end))}
}

func parseTupleStructBody(p *Parser, start lexer.Token, name string) *ast.Expr {
	p.advance() // (
	var types []*ast.Type
	for !p.curIs(lexer.RPAREN) && !p.curIs(lexer.EOF) {
		types = append(types, p.parseType())
		if p.curIs(lexer.COMMA) {
			p.advance()
		} else {
			break
		}
	}
	end := p.expect(lexer.RPAREN)
	if p.curIs(lexer.SEMI) {
		p.advance()
	}
	return &ast.Expr{Kind: ast.KindTupleStruct, TypeName: name, TupleTypes: types, Span: spanOf(start).Union(spanOf(end))}
}

// parseEnumDef parses `enum E { A, B(T) }`.
func parseEnumDef(p *Parser) *ast.Expr {
	start := p.cur
	p.advance()
	name := p.expect(lexer.IDENT).Literal
	p.expect(lexer.LBRACE)
	var variants []ast.EnumVariant
	for !p.curIs(lexer.RBRACE) && !p.curIs(lexer.EOF) {
		vstart := p.cur
		vname := p.expect(lexer.IDENT).Literal
		var fields []*ast.Type
		if p.curIs(lexer.LPAREN) {
			p.advance()
			for !p.curIs(lexer.RPAREN) && !p.curIs(lexer.EOF) {
				fields = append(fields, p.parseType())
				if p.curIs(lexer.COMMA) {
					p.advance()
				} else {
					break
				}
			}
			p.expect(lexer.RPAREN)
		}
		variants = append(variants, ast.EnumVariant{Name: vname, Fields: fields, Span: spanOf(vstart)})
		if p.curIs(lexer.COMMA) {
			p.advance()
		} else {
			break
		}
	}
	end := p.expect(lexer.RBRACE)
	return &ast.Expr{Kind: ast.KindEnum, TypeName: name, EnumVariant: variants, Span: spanOf(start).Union(spanOf(end))}
}

// parseImplDef parses `impl S { fn m(self, ...) { ... } }`.
func parseImplDef(p *Parser) *ast.Expr {
	start := p.cur
	p.advance()
	name := p.expect(lexer.IDENT).Literal
	p.expect(lexer.LBRACE)
	var methods []*ast.Expr
	for !p.curIs(lexer.RBRACE) && !p.curIs(lexer.EOF) {
		attrs := p.parseAttributes()
		m := parseFunction(p)
		m.Attributes = attrs
		methods = append(methods, m)
	}
	end := p.expect(lexer.RBRACE)
	return &ast.Expr{Kind: ast.KindImpl, ImplType: name, ImplMethods: methods, Span: spanOf(start).Union(spanOf(end))}
}

// parseActorDef parses `actor A { field: T; receive M(p: T) { ... } }`.
func parseActorDef(p *Parser) *ast.Expr {
	start := p.cur
	p.advance()
	name := p.expect(lexer.IDENT).Literal
	p.expect(lexer.LBRACE)
	var fields []ast.Field
	var handlers []ast.ReceiveHandler
	for !p.curIs(lexer.RBRACE) && !p.curIs(lexer.EOF) {
		if p.curIs(lexer.RECEIVE) {
			handlers = append(handlers, p.parseReceiveHandler())
			continue
		}
		fstart := p.cur
		fname := p.expect(lexer.IDENT).Literal
		p.expect(lexer.COLON)
		ftype := p.parseType()
		fields = append(fields, ast.Field{Name: fname, Type: ftype, Span: spanOf(fstart)})
		if p.curIs(lexer.SEMI) || p.curIs(lexer.COMMA) {
			p.advance()
		}
	}
	end := p.expect(lexer.RBRACE)
	return &ast.Expr{Kind: ast.KindActor, ActorName: name, StateField: fields, Handlers: handlers, Span: spanOf(start).Union(spanOf(end))}
}

func (p *Parser) parseReceiveHandler() ast.ReceiveHandler {
	start := p.cur
	p.advance() // receive
	msgType := p.expect(lexer.IDENT).Literal
	params := p.parseParamList()
	var ret *ast.Type
	if p.curIs(lexer.ARROW) {
		p.advance()
		ret = p.parseType()
	}
	body := parseBlock(p)
	return ast.ReceiveHandler{MessageType: msgType, Params: params, ReturnType: ret, Body: body, Span: spanOf(start).Union(body.Span)}
}
