package interp

import (
	"fmt"

	"github.com/akashmaji946/ruchy/ast"
	"github.com/akashmaji946/ruchy/value"
)

func (it *Interp) evalLambda(expr *ast.Expr, env *value.Env) (value.Value, error) {
	return &value.Closure{
		Name:   "<lambda>",
		Params: expr.Params,
		Body:   expr.Body,
		Env:    env.Snapshot(),
	}, nil
}

func (it *Interp) evalFunction(expr *ast.Expr, env *value.Env) (value.Value, error) {
	cl := &value.Closure{
		Name:   expr.FuncName,
		Params: expr.Params,
		Body:   expr.Body,
		Env:    env.Snapshot(),
	}
	// A named function binds its own name into its captured
	// environment slot before evaluation, so direct recursion works
	// without a fix-point combinator (spec.md §9).
	cl.Env.Bind(expr.FuncName, cl)
	env.Bind(expr.FuncName, cl)
	return cl, nil
}

func (it *Interp) evalCall(expr *ast.Expr, env *value.Env) (value.Value, error) {
	callee, err := it.eval(expr.Callee, env)
	if err != nil {
		return nil, err
	}
	args := make([]value.Value, len(expr.Args))
	for i, a := range expr.Args {
		v, err := it.eval(a, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return it.callValue(callee, args, expr.Span.Start)
}

// callValue invokes a Closure or Builtin with already-evaluated
// arguments, handling the return-signal unwrap at the function
// boundary (spec.md §9: "return v ... unwinds to the nearest enclosing
// function boundary").
func (it *Interp) callValue(callee value.Value, args []value.Value, pos int) (value.Value, error) {
	switch fn := callee.(type) {
	case *value.Closure:
		if len(args) != len(fn.Params) {
			return nil, newError(KindTypeMismatch, pos, "wrong number of arguments: expected %d, got %d", len(fn.Params), len(args))
		}
		// Depth-check before descending: unbounded recursion (e.g. `fn f(n)
		// { f(n+1) }`) must raise a catchable Error, not overflow the Go
		// goroutine stack (spec.md §7's stack/recursion depth limit).
		if depthErr := it.check.enterCall(pos); depthErr != nil {
			return nil, depthErr
		}
		defer it.check.exitCall()
		callEnv := fn.Env.Child()
		for i, p := range fn.Params {
			callEnv.Bind(p.Name, args[i])
		}
		v, err := it.eval(fn.Body, callEnv)
		if err != nil {
			if rs, ok := err.(*returnSignal); ok {
				return rs.Value, nil
			}
			return nil, err
		}
		return v, nil
	case *value.Builtin:
		return fn.Fn(args)
	default:
		return nil, newError(KindNonCallable, pos, "value of type %s is not callable", callee.Type())
	}
}

func (it *Interp) evalMethodCall(expr *ast.Expr, env *value.Env) (value.Value, error) {
	recv, err := it.eval(expr.Receiver, env)
	if err != nil {
		return nil, err
	}
	args := make([]value.Value, len(expr.Args))
	for i, a := range expr.Args {
		v, err := it.eval(a, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	if s, ok := recv.(*value.Struct); ok {
		if m, ok := s.Def.Methods[expr.Method]; ok {
			fullArgs := append([]value.Value{recv}, args...)
			return it.callValue(m, fullArgs, expr.Span.Start)
		}
	}

	if v, handled, err := it.callBuiltinMethod(expr.Method, recv, args, expr.Span.Start); handled {
		return v, err
	}

	// Last resort (spec.md §4.4): a free function of the same name,
	// called with the receiver as its first argument — lets `x.f(y)`
	// reach a top-level `fn f(x, y)` when no method table claims it.
	if fn, ok := env.Get(expr.Method); ok {
		fullArgs := append([]value.Value{recv}, args...)
		return it.callValue(fn, fullArgs, expr.Span.Start)
	}

	return nil, newError(KindUndefinedMethod, expr.Span.Start, "undefined method %s on %s", expr.Method, recv.Type())
}

func (it *Interp) evalMacro(expr *ast.Expr, env *value.Env) (value.Value, error) {
	args := make([]value.Value, len(expr.MacroArgs))
	for i, a := range expr.MacroArgs {
		v, err := it.eval(a, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	switch expr.MacroName {
	case "println", "print", "eprintln", "eprint":
		var parts []any
		for _, a := range args {
			parts = append(parts, a.String())
		}
		line := fmt.Sprint(parts...)
		if expr.MacroName == "println" || expr.MacroName == "eprintln" {
			fmt.Fprintln(it.Writer, line)
		} else {
			fmt.Fprint(it.Writer, line)
		}
		return &value.Unit{}, nil
	case "format":
		var b string
		for _, a := range args {
			b += a.String()
		}
		return &value.Str{Val: b}, nil
	default:
		if b, ok := it.Builtins[expr.MacroName]; ok {
			return b.Fn(args)
		}
		return nil, newError(KindUndefinedFunction, expr.Span.Start, "undefined macro %s!", expr.MacroName)
	}
}
