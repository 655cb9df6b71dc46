package transpiler

import (
	"github.com/akashmaji946/ruchy/analysis"
	"github.com/akashmaji946/ruchy/ast"
)

// transpileBlock lowers `{ e1; e2; ... eN }` to a Rust block, giving
// every non-tail statement a trailing `;` and the tail expression none
// unless it is itself void (bindings.rs's `transpile_let_block` tail
// logic, generalized to a standalone block with no leading `let`).
func (t *Transpiler) transpileBlock(e *ast.Expr) (*TokenStream, error) {
	out := New("{")
	for i, sub := range e.Exprs {
		// A statement-form let has a unit body, so its scope for mutation
		// analysis is the rest of this block.
		if sub.Kind == ast.KindLet && analysis.IsVariableMutated(sub.LetName, &ast.Expr{Kind: ast.KindBlock, Exprs: e.Exprs[i+1:]}) {
			t.mutableVars[sub.LetName] = true
		}
		tokens, err := t.transpileExpr(sub)
		if err != nil {
			return nil, err
		}
		out.Append(tokens)
		if i < len(e.Exprs)-1 || isVoidExpr(sub) {
			out.Tok(";")
		}
	}
	out.Tok("}")
	return out, nil
}

func (t *Transpiler) transpileIf(e *ast.Expr) (*TokenStream, error) {
	cond, err := t.transpileExpr(e.Cond)
	if err != nil {
		return nil, err
	}
	then, err := t.transpileExpr(e.Then)
	if err != nil {
		return nil, err
	}
	out := New("if").Append(cond).Append(then)
	if e.Else != nil {
		els, err := t.transpileExpr(e.Else)
		if err != nil {
			return nil, err
		}
		out.Tok("else").Append(els)
	}
	return out, nil
}

// transpileMatch maps one-to-one onto Rust's native `match`
// (spec.md §4.5 "control flow"); `Ok`/`Err`/`Some`/`None` constructor
// patterns are what result_type.rs's `transpile_result_match` special-
// cases, generalized here through the ordinary pattern lowering since
// this AST's pattern grammar already models them as tuple-struct
// patterns.
func (t *Transpiler) transpileMatch(e *ast.Expr) (*TokenStream, error) {
	scrutinee, err := t.transpileExpr(e.Scrutinee)
	if err != nil {
		return nil, err
	}
	out := New("match").Append(scrutinee).Tok("{")
	for _, arm := range e.Arms {
		patTokens, err := t.transpilePattern(arm.Pattern)
		if err != nil {
			return nil, err
		}
		out.Append(patTokens)
		if arm.Guard != nil {
			guard, err := t.transpileExpr(arm.Guard)
			if err != nil {
				return nil, err
			}
			out.Tok("if").Append(guard)
		}
		out.Tok("=>")
		body, err := t.transpileExpr(arm.Body)
		if err != nil {
			return nil, err
		}
		out.Append(body).Tok(",")
	}
	out.Tok("}")
	return out, nil
}

func (t *Transpiler) transpileWhile(e *ast.Expr) (*TokenStream, error) {
	cond, err := t.transpileExpr(e.Cond)
	if err != nil {
		return nil, err
	}
	body, err := t.transpileExpr(e.Body)
	if err != nil {
		return nil, err
	}
	out := New()
	if e.Label != "" {
		out.Tok("'" + e.Label + ":")
	}
	return out.Tok("while").Append(cond).Append(body), nil
}

// transpileFor emits Rust's native `for x in iter { ... }` with no
// iterator adapter on the iterable, for lists and ranges alike (Vec
// implements IntoIterator and Ruchy ranges lower to Rust ranges).
func (t *Transpiler) transpileFor(e *ast.Expr) (*TokenStream, error) {
	iter, err := t.transpileExpr(e.Iter)
	if err != nil {
		return nil, err
	}
	body, err := t.transpileExpr(e.Body)
	if err != nil {
		return nil, err
	}
	var binder *TokenStream
	if e.LoopPat != nil {
		binder, err = t.transpilePattern(e.LoopPat)
		if err != nil {
			return nil, err
		}
	} else {
		binder = New(SafeIdent(e.LoopVar))
	}
	out := New()
	if e.Label != "" {
		out.Tok("'" + e.Label + ":")
	}
	return out.Tok("for").Append(binder).Tok("in").Append(iter).Append(body), nil
}

func (t *Transpiler) transpileLoop(e *ast.Expr) (*TokenStream, error) {
	body, err := t.transpileExpr(e.Body)
	if err != nil {
		return nil, err
	}
	out := New()
	if e.Label != "" {
		out.Tok("'" + e.Label + ":")
	}
	return out.Tok("loop").Append(body), nil
}

func (t *Transpiler) transpileBreak(e *ast.Expr) (*TokenStream, error) {
	out := New("break")
	if e.Label != "" {
		out.Tok("'" + e.Label)
	}
	if e.BreakVal != nil {
		v, err := t.transpileExpr(e.BreakVal)
		if err != nil {
			return nil, err
		}
		out.Append(v)
	}
	return out, nil
}

func (t *Transpiler) transpileContinue(e *ast.Expr) (*TokenStream, error) {
	out := New("continue")
	if e.Label != "" {
		out.Tok("'" + e.Label)
	}
	return out, nil
}

func (t *Transpiler) transpileReturn(e *ast.Expr) (*TokenStream, error) {
	out := New("return")
	if e.Arg != nil {
		v, err := t.transpileExpr(e.Arg)
		if err != nil {
			return nil, err
		}
		out.Append(v)
	}
	return out, nil
}
