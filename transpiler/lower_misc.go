package transpiler

import (
	"fmt"

	"github.com/akashmaji946/ruchy/ast"
)

func (t *Transpiler) transpileInterpolation(e *ast.Expr) (*TokenStream, error) {
	// f"Hello {name}!" lowers to `format!("Hello {}!", name)`, the
	// target-nearest macro per spec.md §4.5's "Macros" rule.
	fmtStr := ""
	var args []*TokenStream
	for _, part := range e.Parts2 {
		if part.Expr == nil {
			fmtStr += part.Text
			continue
		}
		fmtStr += "{}"
		argTokens, err := t.transpileExpr(part.Expr)
		if err != nil {
			return nil, err
		}
		args = append(args, argTokens)
	}
	out := New("format!", "(", fmt.Sprintf("%q", fmtStr))
	for _, a := range args {
		out.Tok(",").Append(a)
	}
	out.Tok(")")
	return out, nil
}

func (t *Transpiler) transpileBinary(e *ast.Expr) (*TokenStream, error) {
	left, err := t.transpileExpr(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := t.transpileExpr(e.Right)
	if err != nil {
		return nil, err
	}
	return Group("(", New().Append(left).Tok(e.Op).Append(right), ")"), nil
}

func (t *Transpiler) transpileUnary(e *ast.Expr) (*TokenStream, error) {
	arg, err := t.transpileExpr(e.Arg)
	if err != nil {
		return nil, err
	}
	if e.Op == "?" {
		// Error type / `?` (spec.md §4.5): when the enclosing function
		// returns a result-like type the target's own `?` operator
		// propagates; our AST carries no static result-type check, so
		// we emit the operator directly and let the target compiler
		// reject it where it would not type-check, same as leaving
		// type errors to "an external collaborator" (spec.md §9).
		return New().Append(arg).Tok("?"), nil
	}
	return New(e.Op).Append(arg), nil
}

func (t *Transpiler) transpileAssign(e *ast.Expr) (*TokenStream, error) {
	left, err := t.transpileExpr(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := t.transpileExpr(e.Right)
	if err != nil {
		return nil, err
	}
	return New().Append(left).Tok("=").Append(right), nil
}

func (t *Transpiler) transpileCompoundAssign(e *ast.Expr) (*TokenStream, error) {
	left, err := t.transpileExpr(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := t.transpileExpr(e.Right)
	if err != nil {
		return nil, err
	}
	return New().Append(left).Tok(e.Op + "=").Append(right), nil
}

func (t *Transpiler) transpileIncDec(e *ast.Expr) (*TokenStream, error) {
	arg, err := t.transpileExpr(e.Arg)
	if err != nil {
		return nil, err
	}
	op := "+= 1"
	if e.Kind == ast.KindPreDecrement || e.Kind == ast.KindPostDecrement {
		op = "-= 1"
	}
	// Rust has no ++/--; desugar to a compound-assign statement. As in
	// the evaluator, the pre forms yield the updated target and the post
	// forms yield the value read before the update.
	if e.Kind == ast.KindPostIncrement || e.Kind == ast.KindPostDecrement {
		return Group("{", New("let", "__old", "=").Append(arg).Tok(";").Append(arg).Tok(op).Tok(";").Tok("__old"), "}"), nil
	}
	return Group("{", New().Append(arg).Tok(op).Tok(";").Append(arg), "}"), nil
}

func (t *Transpiler) transpileCall(e *ast.Expr) (*TokenStream, error) {
	callee, err := t.transpileExpr(e.Callee)
	if err != nil {
		return nil, err
	}
	args, err := t.transpileExprList(e.Args)
	if err != nil {
		return nil, err
	}
	return New().Append(callee).Append(Join("(", args, ",", ")")), nil
}

func (t *Transpiler) transpileMethodCall(e *ast.Expr) (*TokenStream, error) {
	recv, err := t.transpileExpr(e.Receiver)
	if err != nil {
		return nil, err
	}
	args, err := t.transpileExprList(e.Args)
	if err != nil {
		return nil, err
	}
	method := targetMethodName(e.Method)
	return New().Append(recv).Tok(".").Tok(method).Append(Join("(", args, ",", ")")), nil
}

// targetMethodName maps a handful of Ruchy method names onto their
// Rust stdlib spelling where they differ (spec.md §4.4's built-in
// method table, mirrored here so transpiled output behaves the same
// as the interpreter's `callBuiltinMethod`).
func targetMethodName(name string) string {
	switch name {
	case "upper":
		return "to_uppercase"
	case "lower":
		return "to_lowercase"
	case "push":
		return "push"
	case "count", "len":
		return "len"
	default:
		return name
	}
}

func (t *Transpiler) transpileExprList(es []*ast.Expr) ([]*TokenStream, error) {
	out := make([]*TokenStream, len(es))
	for i, e := range es {
		ts, err := t.transpileExpr(e)
		if err != nil {
			return nil, err
		}
		out[i] = ts
	}
	return out, nil
}

func (t *Transpiler) transpileList(e *ast.Expr) (*TokenStream, error) {
	items, err := t.transpileExprList(e.Elements)
	if err != nil {
		return nil, err
	}
	return New("vec!").Append(Join("[", items, ",", "]")), nil
}

func (t *Transpiler) transpileTuple(e *ast.Expr) (*TokenStream, error) {
	items, err := t.transpileExprList(e.Elements)
	if err != nil {
		return nil, err
	}
	return Join("(", items, ",", ")"), nil
}

func (t *Transpiler) transpileRange(e *ast.Expr) (*TokenStream, error) {
	start, err := t.transpileExpr(e.RangeStart)
	if err != nil {
		return nil, err
	}
	end, err := t.transpileExpr(e.RangeEnd)
	if err != nil {
		return nil, err
	}
	op := ".."
	if e.Inclusive {
		op = "..="
	}
	return New().Append(start).Tok(op).Append(end), nil
}

func (t *Transpiler) transpileIndex(e *ast.Expr) (*TokenStream, error) {
	obj, err := t.transpileExpr(e.Object)
	if err != nil {
		return nil, err
	}
	idx, err := t.transpileExpr(e.Index)
	if err != nil {
		return nil, err
	}
	return New().Append(obj).Append(Group("[", idx, "]")), nil
}

func (t *Transpiler) transpileSlice(e *ast.Expr) (*TokenStream, error) {
	obj, err := t.transpileExpr(e.Object)
	if err != nil {
		return nil, err
	}
	out := New().Append(obj).Tok("[")
	if e.SliceLow != nil {
		low, err := t.transpileExpr(e.SliceLow)
		if err != nil {
			return nil, err
		}
		out.Append(low)
	}
	out.Tok("..")
	if e.SliceHigh != nil {
		high, err := t.transpileExpr(e.SliceHigh)
		if err != nil {
			return nil, err
		}
		out.Append(high)
	}
	out.Tok("]")
	return out, nil
}

func (t *Transpiler) transpileFieldAccess(e *ast.Expr) (*TokenStream, error) {
	obj, err := t.transpileExpr(e.Object)
	if err != nil {
		return nil, err
	}
	if e.Kind == ast.KindOptionalFieldAccess {
		return New().Append(obj).Tok("?").Tok(".").Tok(e.Field), nil
	}
	return New().Append(obj).Tok(".").Tok(e.Field), nil
}

func (t *Transpiler) transpileStructDef(e *ast.Expr) (*TokenStream, error) {
	out := New("struct", e.TypeName, "{")
	for i, f := range e.Fields {
		if i > 0 {
			out.Tok(",")
		}
		out.Tok(SafeIdent(f.Name)).Tok(":").Tok(transpileType(f.Type))
	}
	out.Tok("}")
	return out, nil
}

func (t *Transpiler) transpileTupleStructDef(e *ast.Expr) (*TokenStream, error) {
	out := New("struct", e.TypeName, "(")
	for i, ty := range e.TupleTypes {
		if i > 0 {
			out.Tok(",")
		}
		out.Tok(transpileType(ty))
	}
	out.Tok(")").Tok(";")
	return out, nil
}

func (t *Transpiler) transpileObjectLiteral(e *ast.Expr) (*TokenStream, error) {
	// `{ ..base, field: v }` struct-field update (spec.md §9's resolved
	// open question): Rust's native functional-update syntax is the
	// direct target-language equivalent, so this lowers verbatim rather
	// than expanding into a copy-then-assign sequence.
	out := New("{")
	var spread *TokenStream
	named := 0
	for _, f := range e.ObjFields {
		if f.Spread {
			base, err := t.transpileExpr(f.Value)
			if err != nil {
				return nil, err
			}
			spread = base
			continue
		}
		if named > 0 {
			out.Tok(",")
		}
		named++
		v, err := t.transpileExpr(f.Value)
		if err != nil {
			return nil, err
		}
		out.Tok(f.Name).Tok(":").Append(v)
	}
	if spread != nil {
		if named > 0 {
			out.Tok(",")
		}
		out.Tok("..").Append(spread)
	}
	out.Tok("}")
	return out, nil
}

func (t *Transpiler) transpileEnumDef(e *ast.Expr) (*TokenStream, error) {
	out := New("enum", e.TypeName, "{")
	for i, v := range e.EnumVariant {
		if i > 0 {
			out.Tok(",")
		}
		out.Tok(v.Name)
		if len(v.Fields) > 0 {
			out.Tok("(")
			for j, f := range v.Fields {
				if j > 0 {
					out.Tok(",")
				}
				out.Tok(transpileType(f))
			}
			out.Tok(")")
		}
	}
	out.Tok("}")
	return out, nil
}

func (t *Transpiler) transpileActorDef(e *ast.Expr) (*TokenStream, error) {
	// Parsed fully; lowered as a struct + inherent impl with one method
	// per receive handler, the same "actor evaluates as a struct with
	// methods" resolution the interpreter applies (spec.md §9) — no
	// mailbox/runtime type exists in the target-language output either.
	out := New("struct", e.ActorName, "{")
	for i, f := range e.StateField {
		if i > 0 {
			out.Tok(",")
		}
		out.Tok(SafeIdent(f.Name)).Tok(":").Tok(transpileType(f.Type))
	}
	out.Tok("}").Toks("impl", e.ActorName, "{")
	for _, h := range e.Handlers {
		sig := New("fn", SafeIdent(h.MessageType), "(", "&mut self")
		for _, p := range h.Params {
			sig.Tok(",").Tok(SafeIdent(p.Name)).Tok(":").Tok(paramTargetType(p, h.Body))
		}
		sig.Tok(")")
		if h.ReturnType != nil {
			sig.Tok("->").Tok(transpileType(h.ReturnType))
		}
		body, err := t.transpileExpr(h.Body)
		if err != nil {
			return nil, err
		}
		out.Append(sig).Append(body)
	}
	out.Tok("}")
	return out, nil
}

func (t *Transpiler) transpileImpl(e *ast.Expr) (*TokenStream, error) {
	out := New("impl", e.ImplType, "{")
	for _, m := range e.ImplMethods {
		fn, err := t.transpileFunction(m)
		if err != nil {
			return nil, err
		}
		out.Append(fn)
	}
	out.Tok("}")
	return out, nil
}

// transpileMacro lowers println!/print!/eprintln!/eprint!/format!
// invocations directly onto the target's matching macro (spec.md
// §4.5's "Macros" rule — these already share a name and argument
// shape with Rust's own macros).
func (t *Transpiler) transpileMacro(e *ast.Expr) (*TokenStream, error) {
	args, err := t.transpileExprList(e.MacroArgs)
	if err != nil {
		return nil, err
	}
	return New(e.MacroName + "!").Append(Join("(", args, ",", ")")), nil
}
