package parser

import (
	"github.com/akashmaji946/ruchy/ast"
	"github.com/akashmaji946/ruchy/lexer"
)

// parseObjectLiteral parses `{ field: value, ..base, field2: value2 }`.
// The `..base` spread form is the resolved semantics for struct field
// update (spec.md §9's open question), lowered by the interpreter
// into a copy-with-override.
func parseObjectLiteral(p *Parser) *ast.Expr {
	start := p.cur
	p.expect(lexer.LBRACE)
	var fields []ast.ObjectField
	for !p.curIs(lexer.RBRACE) && !p.curIs(lexer.EOF) {
		if p.curIs(lexer.RANGE) {
			p.advance()
			base := p.parseExpression(LOWEST)
			fields = append(fields, ast.ObjectField{Spread: true, Value: base, Span: base.Span})
		} else {
			name := p.expect(lexer.IDENT)
			var val *ast.Expr
			if p.curIs(lexer.COLON) {
				p.advance()
				val = p.parseExpression(LOWEST)
			} else {
				val = &ast.Expr{Kind: ast.KindIdentifier, Name: name.Literal, Span: spanOf(name)}
			}
			fields = append(fields, ast.ObjectField{Name: name.Literal, Value: val, Span: spanOf(name).Union(val.Span)})
		}
		if p.curIs(lexer.COMMA) {
			p.advance()
		} else {
			break
		}
	}
	end := p.expect(lexer.RBRACE)
	return &ast.Expr{Kind: ast.KindObjectLiteral, ObjFields: fields, Span: spanOf(start).Union(spanOf(end))}
}
