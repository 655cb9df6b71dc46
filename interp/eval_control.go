package interp

import (
	"github.com/akashmaji946/ruchy/ast"
	"github.com/akashmaji946/ruchy/value"
)

func (it *Interp) evalLet(expr *ast.Expr, env *value.Env) (value.Value, error) {
	v, err := it.eval(expr.Value, env)
	if err != nil {
		return nil, err
	}
	isUnitBody := expr.Body != nil && expr.Body.Kind == ast.KindLiteral && expr.Body.LitKind == ast.LitUnit
	if isUnitBody {
		// Top-level statement form (spec.md §4.4): bind into the
		// current environment in place.
		env.Bind(expr.LetName, v)
		return &value.Unit{}, nil
	}
	child := env.Child()
	child.Bind(expr.LetName, v)
	return it.eval(expr.Body, child)
}

func (it *Interp) evalLetPattern(expr *ast.Expr, env *value.Env) (value.Value, error) {
	v, err := it.eval(expr.Value, env)
	if err != nil {
		return nil, err
	}
	isUnitBody := expr.Body != nil && expr.Body.Kind == ast.KindLiteral && expr.Body.LitKind == ast.LitUnit
	target := env
	if !isUnitBody {
		target = env.Child()
	}
	if !matchPattern(expr.LetPattern, v, target) {
		if expr.ElseBlock == nil {
			return nil, newError(KindIrrefutableLet, expr.Span.Start, "pattern did not match and no else block was given")
		}
		return it.eval(expr.ElseBlock, env)
	}
	if isUnitBody {
		return &value.Unit{}, nil
	}
	return it.eval(expr.Body, target)
}

func (it *Interp) evalBlock(expr *ast.Expr, env *value.Env) (value.Value, error) {
	child := env.Child()
	var result value.Value = &value.Unit{}
	for _, e := range expr.Exprs {
		if breach := it.check.sample(e.Span.Start); breach != nil {
			return nil, breach
		}
		v, err := it.eval(e, child)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

func (it *Interp) evalIf(expr *ast.Expr, env *value.Env) (value.Value, error) {
	cond, err := it.eval(expr.Cond, env)
	if err != nil {
		return nil, err
	}
	b, ok := cond.(*value.Bool)
	if !ok {
		return nil, newError(KindNonBooleanCond, expr.Cond.Span.Start, "if condition must be bool, got %s", cond.Type())
	}
	if b.Val {
		return it.eval(expr.Then, env)
	}
	if expr.Else != nil {
		return it.eval(expr.Else, env)
	}
	return &value.Unit{}, nil
}

func (it *Interp) evalMatch(expr *ast.Expr, env *value.Env) (value.Value, error) {
	scrutinee, err := it.eval(expr.Scrutinee, env)
	if err != nil {
		return nil, err
	}
	for _, arm := range expr.Arms {
		child := env.Child()
		if !matchPattern(arm.Pattern, scrutinee, child) {
			continue
		}
		if arm.Guard != nil {
			g, err := it.eval(arm.Guard, child)
			if err != nil {
				return nil, err
			}
			gb, ok := g.(*value.Bool)
			if !ok || !gb.Val {
				continue
			}
		}
		return it.eval(arm.Body, child)
	}
	return nil, newError(KindMatchExhaustion, expr.Span.Start, "no match arm matched the scrutinee")
}

func (it *Interp) evalWhile(expr *ast.Expr, env *value.Env) (value.Value, error) {
	for {
		if breach := it.check.sample(expr.Span.Start); breach != nil {
			return nil, breach
		}
		if breach := it.check.tickIteration(expr.Span.Start); breach != nil {
			return nil, breach
		}
		cond, err := it.eval(expr.Cond, env)
		if err != nil {
			return nil, err
		}
		b, ok := cond.(*value.Bool)
		if !ok {
			return nil, newError(KindNonBooleanCond, expr.Cond.Span.Start, "while condition must be bool, got %s", cond.Type())
		}
		if !b.Val {
			return &value.Unit{}, nil
		}
		_, err = it.eval(expr.Body, env)
		if err != nil {
			if bs, ok := err.(*breakSignal); ok && matchesLabel(bs.Label, expr.Label) {
				if bs.Value != nil {
					return bs.Value, nil
				}
				return &value.Unit{}, nil
			}
			if cs, ok := err.(*continueSignal); ok && matchesLabel(cs.Label, expr.Label) {
				continue
			}
			return nil, err
		}
	}
}

func (it *Interp) evalLoop(expr *ast.Expr, env *value.Env) (value.Value, error) {
	for {
		if breach := it.check.sample(expr.Span.Start); breach != nil {
			return nil, breach
		}
		if breach := it.check.tickIteration(expr.Span.Start); breach != nil {
			return nil, breach
		}
		_, err := it.eval(expr.Body, env)
		if err != nil {
			if bs, ok := err.(*breakSignal); ok && matchesLabel(bs.Label, expr.Label) {
				if bs.Value != nil {
					return bs.Value, nil
				}
				return &value.Unit{}, nil
			}
			if cs, ok := err.(*continueSignal); ok && matchesLabel(cs.Label, expr.Label) {
				continue
			}
			return nil, err
		}
	}
}

func (it *Interp) evalFor(expr *ast.Expr, env *value.Env) (value.Value, error) {
	iter, err := it.eval(expr.Iter, env)
	if err != nil {
		return nil, err
	}
	elems, err := iterableElements(iter, expr.Iter.Span.Start)
	if err != nil {
		return nil, err
	}
	for _, el := range elems {
		if breach := it.check.sample(expr.Span.Start); breach != nil {
			return nil, breach
		}
		if breach := it.check.tickIteration(expr.Span.Start); breach != nil {
			return nil, breach
		}
		child := env.Child()
		if expr.LoopPat != nil {
			if !matchPattern(expr.LoopPat, el, child) {
				return nil, newError(KindIrrefutableLet, expr.Span.Start, "for-loop pattern did not match element")
			}
		} else {
			child.Bind(expr.LoopVar, el)
		}
		_, err := it.eval(expr.Body, child)
		if err != nil {
			if bs, ok := err.(*breakSignal); ok && matchesLabel(bs.Label, expr.Label) {
				if bs.Value != nil {
					return bs.Value, nil
				}
				return &value.Unit{}, nil
			}
			if cs, ok := err.(*continueSignal); ok && matchesLabel(cs.Label, expr.Label) {
				continue
			}
			return nil, err
		}
	}
	return &value.Unit{}, nil
}

func iterableElements(v value.Value, pos int) ([]value.Value, error) {
	switch x := v.(type) {
	case *value.Range:
		var out []value.Value
		end := x.End
		if x.Inclusive {
			end++
		}
		for i := x.Start; i < end; i++ {
			out = append(out, &value.Int{Val: i})
		}
		return out, nil
	case *value.List:
		return x.Elements, nil
	case *value.Tuple:
		return x.Elements, nil
	case *value.Str:
		var out []value.Value
		for _, r := range x.Val {
			out = append(out, &value.Str{Val: string(r)})
		}
		return out, nil
	default:
		return nil, newError(KindNonIterable, pos, "value of type %s is not iterable", v.Type())
	}
}

func matchesLabel(signalLabel, loopLabel string) bool {
	return signalLabel == "" || signalLabel == loopLabel
}

func (it *Interp) evalBreak(expr *ast.Expr, env *value.Env) (value.Value, error) {
	var v value.Value
	if expr.BreakVal != nil {
		var err error
		v, err = it.eval(expr.BreakVal, env)
		if err != nil {
			return nil, err
		}
	}
	return nil, &breakSignal{Label: expr.Label, Value: v}
}

func (it *Interp) evalContinue(expr *ast.Expr, env *value.Env) (value.Value, error) {
	return nil, &continueSignal{Label: expr.Label}
}

func (it *Interp) evalReturn(expr *ast.Expr, env *value.Env) (value.Value, error) {
	var v value.Value = &value.Unit{}
	if expr.Arg != nil {
		var err error
		v, err = it.eval(expr.Arg, env)
		if err != nil {
			return nil, err
		}
	}
	return nil, &returnSignal{Value: v}
}
