package transpiler

import "github.com/akashmaji946/ruchy/ast"

// transpileLambda emits a target closure, prefixed with `move` when
// lambdaCapturesMutably finds the body assigning to a name that is not
// one of its parameters (spec.md §4.5). Parameters are emitted by name
// only, with no type annotation, even where the source declares one.
func (t *Transpiler) transpileLambda(e *ast.Expr) (*TokenStream, error) {
	paramsTokens := New("|")
	for i, p := range e.Params {
		if i > 0 {
			paramsTokens.Tok(",")
		}
		paramsTokens.Tok(SafeIdent(p.Name))
	}
	paramsTokens.Tok("|")

	body, err := t.transpileExpr(e.Body)
	if err != nil {
		return nil, err
	}

	out := New()
	if lambdaCapturesMutably(e) {
		out.Tok("move")
	}
	return out.Append(paramsTokens).Append(body), nil
}

// lambdaCapturesMutably reports whether any free variable the lambda
// reads is itself reassigned inside the lambda body, which forces a
// `move` closure in the target so the capture outlives the defining
// scope when returned (spec.md §4.5 "captures of mutably-used
// variables emit a move or mutable closure as needed").
func lambdaCapturesMutably(e *ast.Expr) bool {
	bound := map[string]bool{}
	for _, p := range e.Params {
		bound[p.Name] = true
	}
	mutated := false
	var walk func(*ast.Expr)
	walk = func(n *ast.Expr) {
		if n == nil || mutated {
			return
		}
		switch n.Kind {
		case ast.KindAssign, ast.KindCompoundAssign:
			if n.Left != nil && n.Left.Kind == ast.KindIdentifier && !bound[n.Left.Name] {
				mutated = true
			}
		case ast.KindPreIncrement, ast.KindPostIncrement, ast.KindPreDecrement, ast.KindPostDecrement:
			if n.Arg != nil && n.Arg.Kind == ast.KindIdentifier && !bound[n.Arg.Name] {
				mutated = true
			}
		}
		for _, c := range childrenOf(n) {
			walk(c)
		}
	}
	walk(e.Body)
	return mutated
}

// childrenOf is a light structural-child enumerator used by the
// transpiler's own free-variable/mutation scans; it covers the node
// shapes analysis.traverse does plus Loop, MethodCall and a call's
// callee, kept separate
// since this package lowers to tokens rather than booleans.
func childrenOf(e *ast.Expr) []*ast.Expr {
	if e == nil {
		return nil
	}
	switch e.Kind {
	case ast.KindBlock:
		return e.Exprs
	case ast.KindIf:
		cs := []*ast.Expr{e.Cond, e.Then}
		if e.Else != nil {
			cs = append(cs, e.Else)
		}
		return cs
	case ast.KindLet, ast.KindLetPattern:
		return []*ast.Expr{e.Value, e.Body}
	case ast.KindBinary:
		return []*ast.Expr{e.Left, e.Right}
	case ast.KindWhile:
		return []*ast.Expr{e.Cond, e.Body}
	case ast.KindFor:
		return []*ast.Expr{e.Iter, e.Body}
	case ast.KindLoop:
		return []*ast.Expr{e.Body}
	case ast.KindAssign, ast.KindCompoundAssign:
		return []*ast.Expr{e.Left, e.Right}
	case ast.KindCall:
		return append([]*ast.Expr{e.Callee}, e.Args...)
	case ast.KindMethodCall:
		return append([]*ast.Expr{e.Receiver}, e.Args...)
	case ast.KindIndexAccess:
		return []*ast.Expr{e.Object, e.Index}
	case ast.KindUnary:
		return []*ast.Expr{e.Arg}
	case ast.KindLambda, ast.KindFunction:
		return []*ast.Expr{e.Body}
	default:
		return nil
	}
}

// transpileFunction emits `fn name(p1: T1, ...) -> R { ... }`, filling
// parameter and return types via infer.go (spec.md §4.5 "Function
// signatures").
func (t *Transpiler) transpileFunction(e *ast.Expr) (*TokenStream, error) {
	sig := New("fn", SafeIdent(e.FuncName), "(")
	for i, p := range e.Params {
		if i > 0 {
			sig.Tok(",")
		}
		sig.Tok(SafeIdent(p.Name)).Tok(":").Tok(paramTargetType(p, e.Body))
	}
	sig.Tok(")").Tok("->").Tok(returnTargetType(e))

	body, err := t.transpileExpr(e.Body)
	if err != nil {
		return nil, err
	}
	return sig.Append(body), nil
}
