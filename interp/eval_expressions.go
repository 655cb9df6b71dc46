package interp

import (
	"fmt"
	"math"
	"strings"

	"github.com/akashmaji946/ruchy/ast"
	"github.com/akashmaji946/ruchy/value"
)

func (it *Interp) evalLiteral(expr *ast.Expr) (value.Value, error) {
	return literalValue(expr)
}

func literalValue(expr *ast.Expr) (value.Value, error) {
	switch expr.LitKind {
	case ast.LitInt:
		return &value.Int{Val: expr.IntVal}, nil
	case ast.LitFloat:
		return &value.Float{Val: expr.FloatVal}, nil
	case ast.LitString:
		return &value.Str{Val: expr.StrVal}, nil
	case ast.LitChar:
		return &value.Str{Val: string(expr.CharVal)}, nil
	case ast.LitBool:
		return &value.Bool{Val: expr.BoolVal}, nil
	case ast.LitNil:
		return &value.Nil{}, nil
	default:
		return &value.Unit{}, nil
	}
}

func (it *Interp) evalIdentifier(expr *ast.Expr, env *value.Env) (value.Value, error) {
	name := expr.Name
	if name == "" && len(expr.Parts) > 0 {
		name = strings.Join(expr.Parts, "::")
	}
	if v, ok := env.Get(name); ok {
		return v, nil
	}
	if b, ok := it.Builtins[name]; ok {
		return b, nil
	}
	return nil, newError(KindUndefinedName, expr.Span.Start, "undefined name: %s", name)
}

func (it *Interp) evalInterpolation(expr *ast.Expr, env *value.Env) (value.Value, error) {
	var b strings.Builder
	for _, part := range expr.Parts2 {
		if part.Expr == nil {
			b.WriteString(part.Text)
			continue
		}
		v, err := it.eval(part.Expr, env)
		if err != nil {
			return nil, err
		}
		if part.FormatSpec != "" {
			b.WriteString(applyFormatSpec(v, part.FormatSpec))
		} else {
			b.WriteString(v.String())
		}
	}
	return &value.Str{Val: b.String()}, nil
}

// applyFormatSpec supports the common numeric width/zero-pad spec
// (e.g. `{x:02}`); anything else falls back to plain display, since
// spec.md §4.2 only commits to the `{expr:spec}` syntax existing, not
// a full format-spec mini-language.
func applyFormatSpec(v value.Value, spec string) string {
	width := 0
	zero := strings.HasPrefix(spec, "0")
	digits := strings.TrimLeft(spec, "0")
	fmt.Sscanf(digits, "%d", &width)
	s := v.String()
	if width <= len(s) {
		return s
	}
	pad := width - len(s)
	fill := " "
	if zero {
		fill = "0"
	}
	return strings.Repeat(fill, pad) + s
}

func (it *Interp) evalBinary(expr *ast.Expr, env *value.Env) (value.Value, error) {
	left, err := it.eval(expr.Left, env)
	if err != nil {
		return nil, err
	}
	switch expr.Op {
	case "&&":
		if !isBool(left) {
			return nil, newError(KindTypeMismatch, expr.Span.Start, "&& requires bool operands")
		}
		if !left.(*value.Bool).Val {
			return &value.Bool{Val: false}, nil
		}
		right, err := it.eval(expr.Right, env)
		if err != nil {
			return nil, err
		}
		if !isBool(right) {
			return nil, newError(KindTypeMismatch, expr.Span.Start, "&& requires bool operands")
		}
		return right, nil
	case "||":
		if !isBool(left) {
			return nil, newError(KindTypeMismatch, expr.Span.Start, "|| requires bool operands")
		}
		if left.(*value.Bool).Val {
			return &value.Bool{Val: true}, nil
		}
		right, err := it.eval(expr.Right, env)
		if err != nil {
			return nil, err
		}
		if !isBool(right) {
			return nil, newError(KindTypeMismatch, expr.Span.Start, "|| requires bool operands")
		}
		return right, nil
	}

	right, err := it.eval(expr.Right, env)
	if err != nil {
		return nil, err
	}
	return applyBinaryOp(expr.Op, left, right, expr.Span.Start)
}

func isBool(v value.Value) bool { _, ok := v.(*value.Bool); return ok }

func applyBinaryOp(op string, left, right value.Value, pos int) (value.Value, error) {
	if op == "+" {
		if _, ok := left.(*value.Str); ok {
			return &value.Str{Val: left.String() + right.String()}, nil
		}
		if _, ok := right.(*value.Str); ok {
			return &value.Str{Val: left.String() + right.String()}, nil
		}
	}

	switch op {
	case "==", "!=", "<", "<=", ">", ">=":
		return compareValues(op, left, right, pos)
	}

	li, lIsInt := left.(*value.Int)
	ri, rIsInt := right.(*value.Int)
	if lIsInt && rIsInt {
		return intBinaryOp(op, li.Val, ri.Val, pos)
	}

	lf, lok := numericAsFloat(left)
	rf, rok := numericAsFloat(right)
	if lok && rok {
		return floatBinaryOp(op, lf, rf, pos)
	}

	return nil, newError(KindTypeMismatch, pos, "operator %s not defined for %s and %s", op, left.Type(), right.Type())
}

func numericAsFloat(v value.Value) (float64, bool) {
	switch x := v.(type) {
	case *value.Int:
		return float64(x.Val), true
	case *value.Float:
		return x.Val, true
	}
	return 0, false
}

func intBinaryOp(op string, l, r int64, pos int) (value.Value, error) {
	switch op {
	case "+":
		sum := l + r
		// Overflow only happens when both operands share a sign and the
		// result's sign disagrees with theirs (spec.md §7/§8: trap, don't wrap).
		if (l > 0 && r > 0 && sum < 0) || (l < 0 && r < 0 && sum > 0) {
			return nil, newError(KindIntegerOverflow, pos, "integer overflow: %d + %d", l, r)
		}
		return &value.Int{Val: sum}, nil
	case "-":
		diff := l - r
		if (r < 0 && diff < l) || (r > 0 && diff > l) {
			return nil, newError(KindIntegerOverflow, pos, "integer overflow: %d - %d", l, r)
		}
		return &value.Int{Val: diff}, nil
	case "*":
		if l == 0 || r == 0 {
			return &value.Int{Val: 0}, nil
		}
		if (l == -1 && r == math.MinInt64) || (r == -1 && l == math.MinInt64) {
			return nil, newError(KindIntegerOverflow, pos, "integer overflow: %d * %d", l, r)
		}
		prod := l * r
		if prod/r != l {
			return nil, newError(KindIntegerOverflow, pos, "integer overflow: %d * %d", l, r)
		}
		return &value.Int{Val: prod}, nil
	case "/":
		if r == 0 {
			return nil, newError(KindDivisionByZero, pos, "division by zero")
		}
		return &value.Int{Val: l / r}, nil
	case "%":
		if r == 0 {
			return nil, newError(KindDivisionByZero, pos, "modulo by zero")
		}
		return &value.Int{Val: l % r}, nil
	case "&":
		return &value.Int{Val: l & r}, nil
	case "|":
		return &value.Int{Val: l | r}, nil
	case "^":
		return &value.Int{Val: l ^ r}, nil
	case "<<":
		return &value.Int{Val: l << uint(r)}, nil
	case ">>":
		return &value.Int{Val: l >> uint(r)}, nil
	}
	return nil, newError(KindTypeMismatch, pos, "unknown integer operator %s", op)
}

func floatBinaryOp(op string, l, r float64, pos int) (value.Value, error) {
	switch op {
	case "+":
		return &value.Float{Val: l + r}, nil
	case "-":
		return &value.Float{Val: l - r}, nil
	case "*":
		return &value.Float{Val: l * r}, nil
	case "/":
		return &value.Float{Val: l / r}, nil
	}
	return nil, newError(KindTypeMismatch, pos, "operator %s not defined for float operands", op)
}

func compareValues(op string, left, right value.Value, pos int) (value.Value, error) {
	lf, lok := numericAsFloat(left)
	rf, rok := numericAsFloat(right)
	if lok && rok {
		return &value.Bool{Val: numericCompare(op, lf, rf)}, nil
	}
	ls, lIsStr := left.(*value.Str)
	rs, rIsStr := right.(*value.Str)
	if lIsStr && rIsStr {
		switch op {
		case "==":
			return &value.Bool{Val: ls.Val == rs.Val}, nil
		case "!=":
			return &value.Bool{Val: ls.Val != rs.Val}, nil
		case "<":
			return &value.Bool{Val: ls.Val < rs.Val}, nil
		case "<=":
			return &value.Bool{Val: ls.Val <= rs.Val}, nil
		case ">":
			return &value.Bool{Val: ls.Val > rs.Val}, nil
		case ">=":
			return &value.Bool{Val: ls.Val >= rs.Val}, nil
		}
	}
	if op == "==" || op == "!=" {
		eq := left.Type() == right.Type() && left.String() == right.String()
		if op == "!=" {
			eq = !eq
		}
		return &value.Bool{Val: eq}, nil
	}
	return nil, newError(KindTypeMismatch, pos, "cannot compare %s and %s", left.Type(), right.Type())
}

func numericCompare(op string, l, r float64) bool {
	switch op {
	case "==":
		return l == r
	case "!=":
		return l != r
	case "<":
		return l < r
	case "<=":
		return l <= r
	case ">":
		return l > r
	case ">=":
		return l >= r
	}
	return false
}

func (it *Interp) evalUnary(expr *ast.Expr, env *value.Env) (value.Value, error) {
	v, err := it.eval(expr.Arg, env)
	if err != nil {
		return nil, err
	}
	switch expr.Op {
	case "!":
		b, ok := v.(*value.Bool)
		if !ok {
			return nil, newError(KindTypeMismatch, expr.Span.Start, "! requires a bool operand")
		}
		return &value.Bool{Val: !b.Val}, nil
	case "-":
		switch n := v.(type) {
		case *value.Int:
			return &value.Int{Val: -n.Val}, nil
		case *value.Float:
			return &value.Float{Val: -n.Val}, nil
		}
		return nil, newError(KindTypeMismatch, expr.Span.Start, "unary - requires a numeric operand")
	case "~":
		n, ok := v.(*value.Int)
		if !ok {
			return nil, newError(KindTypeMismatch, expr.Span.Start, "~ requires an int operand")
		}
		return &value.Int{Val: ^n.Val}, nil
	case "?":
		ev, ok := v.(*value.EnumVariant)
		if !ok {
			return nil, newError(KindTypeMismatch, expr.Span.Start, "? requires an Ok/Err or Some/None value")
		}
		switch ev.VariantName {
		case "Ok", "Some":
			if len(ev.Payload) == 0 {
				return &value.Unit{}, nil
			}
			return ev.Payload[0], nil
		case "Err", "None":
			// Propagates the failing variant to the nearest enclosing
			// function boundary, the same unwinding path as `return`
			// (spec.md §4.5: `?` maps to the target's error-propagation
			// operator; here that's "early-return the variant").
			return nil, &returnSignal{Value: ev}
		}
		return nil, newError(KindTypeMismatch, expr.Span.Start, "? requires an Ok/Err or Some/None value")
	}
	return nil, newError(KindTypeMismatch, expr.Span.Start, "unknown unary operator %s", expr.Op)
}

// assignPlace stores v into an assignment target, implementing
// spec.md §9's "place" concept for identifiers, field access, and
// index access; any other target kind is an error.
func (it *Interp) assignPlace(target *ast.Expr, env *value.Env, v value.Value) error {
	switch target.Kind {
	case ast.KindIdentifier:
		if !env.Assign(target.Name, v) {
			return newError(KindUndefinedName, target.Span.Start, "undefined name: %s", target.Name)
		}
		return nil
	case ast.KindFieldAccess:
		obj, err := it.eval(target.Object, env)
		if err != nil {
			return err
		}
		s, ok := obj.(*value.Struct)
		if !ok {
			return newError(KindTypeMismatch, target.Span.Start, "field assignment target is not a struct")
		}
		s.Fields[target.Field] = v
		return nil
	case ast.KindIndexAccess:
		obj, err := it.eval(target.Object, env)
		if err != nil {
			return err
		}
		idxVal, err := it.eval(target.Index, env)
		if err != nil {
			return err
		}
		idx, ok := idxVal.(*value.Int)
		if !ok {
			return newError(KindTypeMismatch, target.Span.Start, "index must be an integer")
		}
		lst, ok := obj.(*value.List)
		if !ok {
			return newError(KindTypeMismatch, target.Span.Start, "index assignment target is not a list")
		}
		if idx.Val < 0 || int(idx.Val) >= len(lst.Elements) {
			return newError(KindIndexOutOfBounds, target.Span.Start, "index %d out of bounds", idx.Val)
		}
		lst.Elements[idx.Val] = v
		return nil
	default:
		return newError(KindTypeMismatch, target.Span.Start, "invalid assignment target")
	}
}

func (it *Interp) evalAssign(expr *ast.Expr, env *value.Env) (value.Value, error) {
	v, err := it.eval(expr.Right, env)
	if err != nil {
		return nil, err
	}
	if err := it.assignPlace(expr.Left, env, v); err != nil {
		return nil, err
	}
	return &value.Unit{}, nil
}

func (it *Interp) evalCompoundAssign(expr *ast.Expr, env *value.Env) (value.Value, error) {
	cur, err := it.eval(expr.Left, env)
	if err != nil {
		return nil, err
	}
	rhs, err := it.eval(expr.Right, env)
	if err != nil {
		return nil, err
	}
	newVal, err := applyBinaryOp(expr.Op, cur, rhs, expr.Span.Start)
	if err != nil {
		return nil, err
	}
	if err := it.assignPlace(expr.Left, env, newVal); err != nil {
		return nil, err
	}
	return &value.Unit{}, nil
}

func (it *Interp) evalIncDec(expr *ast.Expr, env *value.Env) (value.Value, error) {
	cur, err := it.eval(expr.Arg, env)
	if err != nil {
		return nil, err
	}
	n, ok := cur.(*value.Int)
	if !ok {
		return nil, newError(KindTypeMismatch, expr.Span.Start, "++/-- require an int operand")
	}
	delta := int64(1)
	if expr.Kind == ast.KindPreDecrement || expr.Kind == ast.KindPostDecrement {
		delta = -1
	}
	updated := &value.Int{Val: n.Val + delta}
	if err := it.assignPlace(expr.Arg, env, updated); err != nil {
		return nil, err
	}
	switch expr.Kind {
	case ast.KindPreIncrement, ast.KindPreDecrement:
		return updated, nil
	default:
		return n, nil
	}
}
