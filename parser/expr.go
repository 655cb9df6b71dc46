package parser

import (
	"strconv"
	"strings"

	"github.com/akashmaji946/ruchy/ast"
	"github.com/akashmaji946/ruchy/lexer"
)

func parseIntLiteral(p *Parser) *ast.Expr {
	tok := p.cur
	lit := tok.Literal
	suffix := ""
	for _, s := range []string{"i32", "i64", "u8", "u16", "u32", "u64"} {
		if strings.HasSuffix(lit, s) {
			suffix = s
			lit = strings.TrimSuffix(lit, s)
			break
		}
	}
	lit = strings.ReplaceAll(lit, "_", "")
	v, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		p.errorf("invalid integer literal %q", tok.Literal)
	}
	p.advance()
	return &ast.Expr{Kind: ast.KindLiteral, LitKind: ast.LitInt, IntVal: v, IntSuffix: suffix, Span: spanOf(tok)}
}

func parseFloatLiteral(p *Parser) *ast.Expr {
	tok := p.cur
	lit := strings.ReplaceAll(tok.Literal, "_", "")
	lit = strings.TrimSuffix(strings.TrimSuffix(lit, "f64"), "f32")
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		p.errorf("invalid float literal %q", tok.Literal)
	}
	p.advance()
	return &ast.Expr{Kind: ast.KindLiteral, LitKind: ast.LitFloat, FloatVal: v, Span: spanOf(tok)}
}

func parseStringLiteral(p *Parser) *ast.Expr {
	tok := p.cur
	p.advance()
	return &ast.Expr{Kind: ast.KindLiteral, LitKind: ast.LitString, StrVal: tok.Literal, Span: spanOf(tok)}
}

// parseFStringLiteral splits the raw f-string body via
// lexer.SplitInterpolation and parses each embedded expression with a
// fresh sub-parser; a format spec is kept as raw text (spec.md §4.2).
func parseFStringLiteral(p *Parser) *ast.Expr {
	tok := p.cur
	p.advance()
	parts := lexer.SplitInterpolation(tok.Literal)
	out := make([]ast.StringPart, 0, len(parts))
	for _, part := range parts {
		switch part.Kind {
		case lexer.InterpText:
			out = append(out, ast.StringPart{Text: part.Text})
		case lexer.InterpExpr:
			out = append(out, ast.StringPart{Expr: parseSubExpr(p, part.Expr)})
		case lexer.InterpExprFormatted:
			out = append(out, ast.StringPart{Expr: parseSubExpr(p, part.Expr), FormatSpec: part.FormatSpec})
		}
	}
	return &ast.Expr{Kind: ast.KindInterpolation, Parts2: out, Span: spanOf(tok)}
}

// parseSubExpr parses an expression fragment extracted from inside an
// interpolated string. Errors from the sub-parser are appended to the
// enclosing parser's errors; there is no fallback to plain text.
func parseSubExpr(p *Parser, src string) *ast.Expr {
	sub := New(src)
	e := sub.parseExpression(LOWEST)
	if len(sub.errors) > 0 {
		p.errors = append(p.errors, sub.errors...)
	}
	return e
}

func parseCharLiteral(p *Parser) *ast.Expr {
	tok := p.cur
	p.advance()
	var r rune
	for _, c := range tok.Literal {
		r = c
		break
	}
	return &ast.Expr{Kind: ast.KindLiteral, LitKind: ast.LitChar, CharVal: r, Span: spanOf(tok)}
}

func parseBoolLiteral(p *Parser) *ast.Expr {
	tok := p.cur
	p.advance()
	return &ast.Expr{Kind: ast.KindLiteral, LitKind: ast.LitBool, BoolVal: tok.Literal == "true", Span: spanOf(tok)}
}

func parseNilLiteral(p *Parser) *ast.Expr {
	tok := p.cur
	p.advance()
	return &ast.Expr{Kind: ast.KindLiteral, LitKind: ast.LitNil, Span: spanOf(tok)}
}

// parseIdentOrQualified parses `x`, `a::b::c`, or a macro invocation
// `name!(args...)` (spec.md §3's reserved MacroInvocation kind, for
// `println!`/`format!`-style forms in the target output).
func parseIdentOrQualified(p *Parser) *ast.Expr {
	tok := p.cur
	p.advance()
	name := tok.Literal
	if tok.Type == lexer.SELF {
		name = "self"
	}
	if p.curIs(lexer.NOT) && p.peekIs(lexer.LPAREN) {
		p.advance() // consume !
		p.advance() // consume (
		var args []*ast.Expr
		for !p.curIs(lexer.RPAREN) && !p.curIs(lexer.EOF) {
			args = append(args, p.parseExpression(LOWEST))
			if p.curIs(lexer.COMMA) {
				p.advance()
			} else {
				break
			}
		}
		end := p.expect(lexer.RPAREN)
		return &ast.Expr{Kind: ast.KindMacroInvocation, MacroName: name, MacroArgs: args, Span: spanOf(tok).Union(spanOf(end))}
	}
	if !p.curIs(lexer.COLONCOLON) {
		return &ast.Expr{Kind: ast.KindIdentifier, Name: name, Span: spanOf(tok)}
	}
	parts := []string{name}
	span := spanOf(tok)
	for p.curIs(lexer.COLONCOLON) {
		p.advance()
		seg := p.expect(lexer.IDENT)
		parts = append(parts, seg.Literal)
		span = span.Union(spanOf(seg))
	}
	return &ast.Expr{Kind: ast.KindQualifiedName, Parts: parts, Span: span}
}

// parseParenOrTuple parses `(expr)`, `()` (unit), or `(a, b, ...)` (tuple).
func parseParenOrTuple(p *Parser) *ast.Expr {
	start := p.cur
	p.advance()
	if p.curIs(lexer.RPAREN) {
		p.advance()
		return &ast.Expr{Kind: ast.KindLiteral, LitKind: ast.LitUnit, Span: spanOf(start)}
	}
	first := p.parseExpression(LOWEST)
	if p.curIs(lexer.COMMA) {
		elems := []*ast.Expr{first}
		for p.curIs(lexer.COMMA) {
			p.advance()
			if p.curIs(lexer.RPAREN) {
				break
			}
			elems = append(elems, p.parseExpression(LOWEST))
		}
		end := p.expect(lexer.RPAREN)
		return &ast.Expr{Kind: ast.KindTuple, Elements: elems, Span: spanOf(start).Union(spanOf(end))}
	}
	end := p.expect(lexer.RPAREN)
	first.Span = first.Span.Union(spanOf(end))
	return first
}

func parseListLiteral(p *Parser) *ast.Expr {
	start := p.cur
	p.advance()
	var elems []*ast.Expr
	for !p.curIs(lexer.RBRACKET) && !p.curIs(lexer.EOF) {
		elems = append(elems, p.parseExpression(LOWEST))
		if p.curIs(lexer.COMMA) {
			p.advance()
		} else {
			break
		}
	}
	end := p.expect(lexer.RBRACKET)
	return &ast.Expr{Kind: ast.KindList, Elements: elems, Span: spanOf(start).Union(spanOf(end))}
}

// parseBlockOrObjectOrPipe disambiguates `{ stmt; stmt }` (block) from
// `{ field: v, ..base }` (object literal) by lookahead: a leading `..`,
// or an identifier directly followed by `:` or `,`, signals an object
// literal.
func parseBlockOrObjectOrPipe(p *Parser) *ast.Expr {
	if looksLikeObjectLiteral(p) {
		return parseObjectLiteral(p)
	}
	return parseBlock(p)
}

// looksLikeObjectLiteral disambiguates `{ field: v, ... }` / `{ ..base }`
// object literals from `{ stmt; stmt }` blocks. An empty `{}` is a
// block (evaluates to unit); `{ ..base }` is unambiguously a spread;
// `{ ident : ` or `{ ident , ` is an object literal — anything else
// starting with an identifier (`{ ident }`, `{ ident + 1 }`,
// `{ ident(...) }`, ...) is a block.
func looksLikeObjectLiteral(p *Parser) bool {
	if p.peekIs(lexer.RBRACE) {
		return false
	}
	if p.peekIs(lexer.RANGE) {
		return true
	}
	if !p.peekIs(lexer.IDENT) {
		return false
	}
	// `{ ident }` alone is kept as a block (the common case: a block
	// whose value is a bare variable); only an explicit `:` or a `,`
	// introducing a second field commits to object-literal parsing.
	switch p.peek2().Type {
	case lexer.COLON, lexer.COMMA:
		return true
	default:
		return false
	}
}

// parseBlock parses `{ e1; e2; ... eN }`. An expression followed by
// `;` is evaluated for its side effect only; spec.md §4.4 says its
// value is discarded and unit substituted, so a trailing `;` appends
// a synthetic unit expression after it — the interpreter's "value is
// the last expression" rule then does the right thing unmodified.
func parseBlock(p *Parser) *ast.Expr {
	start := p.cur
	p.expect(lexer.LBRACE)
	var exprs []*ast.Expr
	for !p.curIs(lexer.RBRACE) && !p.curIs(lexer.EOF) {
		e := p.parseExpression(LOWEST)
		if e == nil {
			break
		}
		exprs = append(exprs, e)
		if p.curIs(lexer.SEMI) {
			p.advance()
			if p.curIs(lexer.RBRACE) {
				exprs = append(exprs, &ast.Expr{Kind: ast.KindLiteral, LitKind: ast.LitUnit, Span: e.Span})
			}
		}
	}
	end := p.expect(lexer.RBRACE)
	return &ast.Expr{Kind: ast.KindBlock, Exprs: exprs, Span: spanOf(start).Union(spanOf(end))}
}

func parsePrefixUnary(p *Parser) *ast.Expr {
	op := p.cur
	p.advance()
	operand := p.parseExpression(POSTFIX)
	return &ast.Expr{Kind: ast.KindUnary, Op: string(op.Type), Arg: operand, Span: spanOf(op).Union(operand.Span)}
}

func parsePrefixIncDec(p *Parser) *ast.Expr {
	op := p.cur
	p.advance()
	operand := p.parseExpression(POSTFIX)
	kind := ast.KindPreIncrement
	if op.Type == lexer.DEC {
		kind = ast.KindPreDecrement
	}
	return &ast.Expr{Kind: kind, Arg: operand, Span: spanOf(op).Union(operand.Span)}
}

func parsePostfixIncDec(p *Parser, left *ast.Expr) *ast.Expr {
	op := p.cur
	p.advance()
	kind := ast.KindPostIncrement
	if op.Type == lexer.DEC {
		kind = ast.KindPostDecrement
	}
	return &ast.Expr{Kind: kind, Arg: left, Span: left.Span.Union(spanOf(op))}
}

func parseBinary(p *Parser, left *ast.Expr) *ast.Expr {
	op := p.cur
	prec := precedenceOf(op.Type)
	p.advance()
	nextMin := prec
	if rightAssoc(op.Type) {
		nextMin = prec - 1
	}
	right := p.parseExpression(nextMin)
	return &ast.Expr{Kind: ast.KindBinary, Op: string(op.Type), Left: left, Right: right, Span: left.Span.Union(right.Span)}
}

func parseRange(p *Parser, left *ast.Expr) *ast.Expr {
	op := p.cur
	inclusive := op.Type == lexer.RANGE_EQ
	p.advance()
	var right *ast.Expr
	if p.curIs(lexer.RBRACE) || p.curIs(lexer.RBRACKET) || p.curIs(lexer.RPAREN) || p.curIs(lexer.SEMI) || p.curIs(lexer.EOF) {
		right = nil
	} else {
		right = p.parseExpression(RANGE_PREC)
	}
	span := left.Span
	if right != nil {
		span = span.Union(right.Span)
	}
	return &ast.Expr{Kind: ast.KindRange, RangeStart: left, RangeEnd: right, Inclusive: inclusive, Span: span}
}

// parsePipe desugars `x |> f(args...)` into `f(x, args...)` at parse
// time, left-associative (spec.md §4.2 level 13).
func parsePipe(p *Parser, left *ast.Expr) *ast.Expr {
	p.advance()
	rhs := p.parseExpression(PIPE_PREC)
	if rhs.Kind == ast.KindCall {
		args := append([]*ast.Expr{left}, rhs.Args...)
		return &ast.Expr{Kind: ast.KindCall, Callee: rhs.Callee, Args: args, Span: left.Span.Union(rhs.Span)}
	}
	return &ast.Expr{Kind: ast.KindCall, Callee: rhs, Args: []*ast.Expr{left}, Span: left.Span.Union(rhs.Span)}
}

func parseAssign(p *Parser, left *ast.Expr) *ast.Expr {
	op := p.cur
	p.advance()
	right := p.parseExpression(ASSIGNMENT - 1)
	return &ast.Expr{Kind: ast.KindAssign, Left: left, Right: right, Span: left.Span.Union(right.Span), Op: string(op.Type)}
}

var compoundOps = map[lexer.TokenType]string{
	lexer.PLUS_EQ: "+", lexer.MINUS_EQ: "-", lexer.STAR_EQ: "*", lexer.SLASH_EQ: "/", lexer.PCT_EQ: "%",
}

func parseCompoundAssign(p *Parser, left *ast.Expr) *ast.Expr {
	op := p.cur
	p.advance()
	right := p.parseExpression(ASSIGNMENT - 1)
	return &ast.Expr{Kind: ast.KindCompoundAssign, Left: left, Right: right, Op: compoundOps[op.Type], Span: left.Span.Union(right.Span)}
}

func parseCall(p *Parser, left *ast.Expr) *ast.Expr {
	p.advance() // consume (
	var args []*ast.Expr
	for !p.curIs(lexer.RPAREN) && !p.curIs(lexer.EOF) {
		args = append(args, p.parseExpression(LOWEST))
		if p.curIs(lexer.COMMA) {
			p.advance()
		} else {
			break
		}
	}
	end := p.expect(lexer.RPAREN)
	return &ast.Expr{Kind: ast.KindCall, Callee: left, Args: args, Span: left.Span.Union(spanOf(end))}
}

func parseFieldOrMethod(p *Parser, left *ast.Expr) *ast.Expr {
	p.advance() // consume .
	name := p.expect(lexer.IDENT)
	if p.curIs(lexer.LPAREN) {
		p.advance()
		var args []*ast.Expr
		for !p.curIs(lexer.RPAREN) && !p.curIs(lexer.EOF) {
			args = append(args, p.parseExpression(LOWEST))
			if p.curIs(lexer.COMMA) {
				p.advance()
			} else {
				break
			}
		}
		end := p.expect(lexer.RPAREN)
		return &ast.Expr{Kind: ast.KindMethodCall, Receiver: left, Method: name.Literal, Args: args, Span: left.Span.Union(spanOf(end))}
	}
	return &ast.Expr{Kind: ast.KindFieldAccess, Object: left, Field: name.Literal, Span: left.Span.Union(spanOf(name))}
}

func parseOptionalField(p *Parser, left *ast.Expr) *ast.Expr {
	p.advance() // consume ?.
	name := p.expect(lexer.IDENT)
	return &ast.Expr{Kind: ast.KindOptionalFieldAccess, Object: left, Field: name.Literal, Span: left.Span.Union(spanOf(name))}
}

// parseIndexOrSlice parses `obj[i]` or `obj[lo:hi]`.
func parseIndexOrSlice(p *Parser, left *ast.Expr) *ast.Expr {
	p.advance() // consume [
	var low *ast.Expr
	if !p.curIs(lexer.COLON) {
		low = p.parseExpression(LOWEST)
	}
	if p.curIs(lexer.COLON) {
		p.advance()
		var high *ast.Expr
		if !p.curIs(lexer.RBRACKET) {
			high = p.parseExpression(LOWEST)
		}
		end := p.expect(lexer.RBRACKET)
		return &ast.Expr{Kind: ast.KindSlice, Object: left, SliceLow: low, SliceHigh: high, Span: left.Span.Union(spanOf(end))}
	}
	end := p.expect(lexer.RBRACKET)
	return &ast.Expr{Kind: ast.KindIndexAccess, Object: left, Index: low, Span: left.Span.Union(spanOf(end))}
}

// parseTryOperator parses the postfix `?` error-propagation operator.
func parseTryOperator(p *Parser, left *ast.Expr) *ast.Expr {
	tok := p.cur
	p.advance()
	return &ast.Expr{Kind: ast.KindUnary, Op: "?", Arg: left, Span: left.Span.Union(spanOf(tok))}
}

func parseUse(p *Parser) *ast.Expr {
	start := p.cur
	p.advance()
	var parts []string
	parts = append(parts, p.expect(lexer.IDENT).Literal)
	for p.curIs(lexer.COLONCOLON) {
		p.advance()
		parts = append(parts, p.expect(lexer.IDENT).Literal)
	}
	end := p.cur
	if p.curIs(lexer.SEMI) {
		p.advance()
	}
	return &ast.Expr{Kind: ast.KindUse, UsePath: parts, Span: spanOf(start).Union(spanOf(end))}
}
