package transpiler

import (
	"github.com/akashmaji946/ruchy/analysis"
	"github.com/akashmaji946/ruchy/ast"
)

// transpileLet lowers `let [mut] name [: T] = value [; body]`, the
// effective-mutability and body-shape rules of spec.md §4.5. Grounded
// line-for-line on original_source/src/backend/transpiler/bindings.rs's
// `transpile_let`/`generate_let_binding`.
func (t *Transpiler) transpileLet(name string, value, body *ast.Expr, isMutable bool, typeAnn *ast.Type) (*TokenStream, error) {
	safe := SafeIdent(name)
	effectiveMut := isMutable || t.mutableVars[name] || analysis.IsVariableMutated(name, body)
	if effectiveMut {
		t.mutableVars[name] = true
	}

	valueTokens, needsVecHint, err := t.letValueTokens(name, value, typeAnn, effectiveMut)
	if err != nil {
		return nil, err
	}

	kw := New("let")
	if effectiveMut {
		kw = New("let", "mut")
	}

	var typeTokens *TokenStream
	switch {
	case typeAnn != nil:
		typeTokens = New(":", transpileType(typeAnn))
	case needsVecHint:
		typeTokens = New(":", "Vec<_>")
	default:
		typeTokens = New()
	}

	binding := New().Append(kw).Tok(safe).Append(typeTokens).Tok("=").Append(valueTokens).Tok(";")

	isUnitBody := body != nil && body.Kind == ast.KindLiteral && body.LitKind == ast.LitUnit
	if isUnitBody {
		return binding, nil
	}

	if body.Kind == ast.KindBlock {
		return t.transpileLetBlockBody(binding, body)
	}
	bodyTokens, err := t.transpileExpr(body)
	if err != nil {
		return nil, err
	}
	return Group("{", New().Append(binding).Append(bodyTokens), "}"), nil
}

// transpileLetBlockBody inlines the binding as the block's first
// statement and transpiles the rest sequentially, rather than nesting
// another `{ ... }` scope (bindings.rs's `transpile_let_block`).
func (t *Transpiler) transpileLetBlockBody(binding *TokenStream, block *ast.Expr) (*TokenStream, error) {
	out := New().Append(binding)
	for i, e := range block.Exprs {
		exprTokens, err := t.transpileExpr(e)
		if err != nil {
			return nil, err
		}
		out.Append(exprTokens)
		isLet := e.Kind == ast.KindLet || e.Kind == ast.KindLetPattern
		if isLet {
			continue
		}
		if i < len(block.Exprs)-1 || isVoidExpr(e) {
			out.Tok(";")
		}
	}
	return out, nil
}

// isVoidExpr mirrors function_analysis::is_void_expression: statements
// whose value carries no information for the enclosing block's result
// (assignments, loops, definitions) get a trailing `;` even in tail
// position.
func isVoidExpr(e *ast.Expr) bool {
	switch e.Kind {
	case ast.KindAssign, ast.KindCompoundAssign, ast.KindWhile, ast.KindFor,
		ast.KindFunction, ast.KindStruct, ast.KindTupleStruct, ast.KindEnum,
		ast.KindImpl, ast.KindUse, ast.KindMacroInvocation:
		return true
	}
	return false
}

// letValueTokens special-cases empty-list literals per spec.md §4.5
// ("an empty list literal is emitted with a `Vec<_>` annotation", since
// `vec![]` alone gives the target compiler nothing to infer the
// element type from). String literals have no slice-preserving path
// here: every literal always lowers through transpileLiteral's
// unconditional `.to_string()`, the same choice
// original_source/src/backend/transpiler/bindings.rs's own base
// `transpile_let` makes for an unannotated binding.
func (t *Transpiler) letValueTokens(name string, value *ast.Expr, typeAnn *ast.Type, isMutable bool) (*TokenStream, bool, error) {
	switch {
	case value.Kind == ast.KindList && len(value.Elements) == 0:
		tokens, err := t.transpileExpr(value)
		return tokens, true, err
	default:
		tokens, err := t.transpileExpr(value)
		return tokens, false, err
	}
}

// transpileLetPattern lowers destructuring `let pattern = value [; body]`.
func (t *Transpiler) transpileLetPattern(pattern *ast.Pattern, value, body *ast.Expr) (*TokenStream, error) {
	patTokens, err := t.transpilePattern(pattern)
	if err != nil {
		return nil, err
	}
	valueTokens, err := t.transpileExpr(value)
	if err != nil {
		return nil, err
	}
	if patternNeedsSlice(pattern) && valueCreatesVec(value) {
		valueTokens = New("&").Append(valueTokens).Tok("[..]")
	}
	binding := New("let").Append(patTokens).Tok("=").Append(valueTokens).Tok(";")

	isUnitBody := body != nil && body.Kind == ast.KindLiteral && body.LitKind == ast.LitUnit
	if isUnitBody {
		return binding, nil
	}
	bodyTokens, err := t.transpileExpr(body)
	if err != nil {
		return nil, err
	}
	return Group("{", New().Append(binding).Append(bodyTokens), "}"), nil
}
