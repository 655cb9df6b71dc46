package parser

import (
	"github.com/akashmaji946/ruchy/ast"
	"github.com/akashmaji946/ruchy/lexer"
)

// parseFunction parses `fn name(p1: T1, p2: T2) -> R { ... }`.
func parseFunction(p *Parser) *ast.Expr {
	start := p.cur
	p.advance()
	name := p.expect(lexer.IDENT).Literal
	params := p.parseParamList()
	var ret *ast.Type
	if p.curIs(lexer.ARROW) {
		p.advance()
		ret = p.parseType()
	}
	body := parseBlock(p)
	return &ast.Expr{Kind: ast.KindFunction, FuncName: name, Params: params, ReturnType: ret, Body: body, Span: spanOf(start).Union(body.Span)}
}

func (p *Parser) parseParamList() []ast.Param {
	p.expect(lexer.LPAREN)
	var params []ast.Param
	for !p.curIs(lexer.RPAREN) && !p.curIs(lexer.EOF) {
		start := p.cur
		if p.curIs(lexer.SELF) {
			p.advance()
			params = append(params, ast.Param{Name: "self", Span: spanOf(start)})
		} else {
			pname := p.expect(lexer.IDENT).Literal
			var typ *ast.Type
			if p.curIs(lexer.COLON) {
				p.advance()
				typ = p.parseType()
			}
			var def *ast.Expr
			if p.curIs(lexer.ASSIGN) {
				p.advance()
				def = p.parseExpression(LOWEST)
			}
			params = append(params, ast.Param{Name: pname, Type: typ, Default: def, Span: spanOf(start)})
		}
		if p.curIs(lexer.COMMA) {
			p.advance()
		} else {
			break
		}
	}
	p.expect(lexer.RPAREN)
	return params
}

// parseLambdaPipe parses `|x, y| expr` and `|| expr`, triggered on a
// leading `|` (OR's `||` is re-split into two empty-param pipes at
// this call site since the lexer cannot tell `||` apart from empty
// lambda params without grammar context).
func parseLambdaPipe(p *Parser) *ast.Expr {
	start := p.cur
	if p.curIs(lexer.OR) {
		// `|| expr` lexed as a single OR token: zero-parameter lambda.
		p.advance()
		body := p.parseExpression(ASSIGNMENT - 1)
		return &ast.Expr{Kind: ast.KindLambda, Params: nil, Body: body, Span: spanOf(start).Union(body.Span)}
	}
	p.advance() // consume |
	var params []ast.Param
	for !p.curIs(lexer.PIPE) && !p.curIs(lexer.EOF) {
		pstart := p.cur
		pname := p.expect(lexer.IDENT).Literal
		var typ *ast.Type
		if p.curIs(lexer.COLON) {
			p.advance()
			typ = p.parseType()
		}
		params = append(params, ast.Param{Name: pname, Type: typ, Span: spanOf(pstart)})
		if p.curIs(lexer.COMMA) {
			p.advance()
		} else {
			break
		}
	}
	p.expect(lexer.PIPE)
	body := p.parseExpression(ASSIGNMENT - 1)
	return &ast.Expr{Kind: ast.KindLambda, Params: params, Body: body, Span: spanOf(start).Union(body.Span)}
}
