package analysis

import "github.com/akashmaji946/ruchy/ast"

// ParamType is the target-language type hint infer_param_type
// resolves a parameter to, or empty when no clue was found (spec.md
// §4.3: "Absent a clue, return None and let the target language's
// inference resolve the type").
type ParamType string

const (
	ParamUnknown     ParamType = ""
	ParamSeqSeqInt   ParamType = "Vec<Vec<i32>>"
	ParamSeqInt      ParamType = "Vec<i32>"
	ParamInt         ParamType = "i32"
	ParamBool        ParamType = "bool"
	ParamString      ParamType = "String"
)

// InferParamType returns a target-language type hint for param_name
// based on how it is used within body, in the same precedence order
// as original_source's infer_param_type: array-indexed first
// (dimensionality detected by a nested IndexAccess), then len(p),
// then used-as-index, then boolean usage, then numeric usage (with
// the string-concatenation exception), then string usage.
func InferParamType(paramName string, body *ast.Expr) ParamType {
	if isParamUsedAsArray(paramName, body) {
		if isNestedArrayAccess(paramName, body) {
			return ParamSeqSeqInt
		}
		return ParamSeqInt
	}
	if isParamUsedWithLen(paramName, body) {
		return ParamSeqInt
	}
	if isParamUsedAsIndex(paramName, body) {
		return ParamInt
	}
	if isParamUsedAsBool(paramName, body) {
		return ParamBool
	}
	if isParamUsedNumerically(paramName, body) {
		return ParamInt
	}
	if isParamUsedAsString(paramName, body) {
		return ParamString
	}
	return ParamUnknown
}

// traverse walks expr and its children (using the same child-set as
// original_source's collect_child_exprs) until check returns true or
// the tree is exhausted.
func traverse(expr *ast.Expr, check func(*ast.Expr) bool) bool {
	if expr == nil {
		return false
	}
	if check(expr) {
		return true
	}
	for _, child := range children(expr) {
		if traverse(child, check) {
			return true
		}
	}
	return false
}

func children(expr *ast.Expr) []*ast.Expr {
	switch expr.Kind {
	case ast.KindBlock:
		return expr.Exprs
	case ast.KindIf:
		cs := []*ast.Expr{expr.Cond, expr.Then}
		if expr.Else != nil {
			cs = append(cs, expr.Else)
		}
		return cs
	case ast.KindLet, ast.KindLetPattern:
		return []*ast.Expr{expr.Value, expr.Body}
	case ast.KindBinary:
		return []*ast.Expr{expr.Left, expr.Right}
	case ast.KindWhile:
		return []*ast.Expr{expr.Cond, expr.Body}
	case ast.KindFor:
		return []*ast.Expr{expr.Iter, expr.Body}
	case ast.KindAssign, ast.KindCompoundAssign:
		return []*ast.Expr{expr.Left, expr.Right}
	case ast.KindCall:
		return expr.Args
	case ast.KindIndexAccess:
		return []*ast.Expr{expr.Object, expr.Index}
	case ast.KindUnary:
		return []*ast.Expr{expr.Arg}
	case ast.KindLambda, ast.KindFunction:
		return []*ast.Expr{expr.Body}
	default:
		return nil
	}
}

func isIdentifier(e *ast.Expr, name string) bool {
	return e != nil && e.Kind == ast.KindIdentifier && e.Name == name
}

// containsParam reports whether expr mentions param_name anywhere in
// an identifier, binary, block, or call — a lighter-weight traversal
// than the full children() set, matching original_source's contains_param.
func containsParam(paramName string, expr *ast.Expr) bool {
	if expr == nil {
		return false
	}
	switch expr.Kind {
	case ast.KindIdentifier:
		return expr.Name == paramName
	case ast.KindBinary:
		return containsParam(paramName, expr.Left) || containsParam(paramName, expr.Right)
	case ast.KindBlock:
		for _, e := range expr.Exprs {
			if containsParam(paramName, e) {
				return true
			}
		}
		return false
	case ast.KindCall:
		if containsParam(paramName, expr.Callee) {
			return true
		}
		for _, a := range expr.Args {
			if containsParam(paramName, a) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func isParamUsedAsArray(paramName string, expr *ast.Expr) bool {
	return traverse(expr, func(e *ast.Expr) bool {
		return e.Kind == ast.KindIndexAccess && isIdentifier(e.Object, paramName)
	})
}

func isNestedArrayAccess(paramName string, expr *ast.Expr) bool {
	return traverse(expr, func(e *ast.Expr) bool {
		if e.Kind != ast.KindIndexAccess {
			return false
		}
		inner := e.Object
		return inner != nil && inner.Kind == ast.KindIndexAccess && isIdentifier(inner.Object, paramName)
	})
}

func isParamUsedWithLen(paramName string, expr *ast.Expr) bool {
	return traverse(expr, func(e *ast.Expr) bool {
		if e.Kind != ast.KindCall || !isIdentifier(e.Callee, "len") {
			return false
		}
		for _, a := range e.Args {
			if isIdentifier(a, paramName) {
				return true
			}
		}
		return false
	})
}

func isParamUsedAsIndex(paramName string, expr *ast.Expr) bool {
	return traverse(expr, func(e *ast.Expr) bool {
		return e.Kind == ast.KindIndexAccess && containsParam(paramName, e.Index)
	})
}

func isParamUsedAsBool(paramName string, expr *ast.Expr) bool {
	return traverse(expr, func(e *ast.Expr) bool {
		switch e.Kind {
		case ast.KindIf:
			return isIdentifier(e.Cond, paramName)
		case ast.KindWhile:
			return isIdentifier(e.Cond, paramName)
		case ast.KindUnary:
			return e.Op == "!" && isIdentifier(e.Arg, paramName)
		case ast.KindBinary:
			if e.Op == "&&" || e.Op == "||" {
				return isIdentifier(e.Left, paramName) || isIdentifier(e.Right, paramName)
			}
		}
		return false
	})
}

func isNumericOperator(op string) bool {
	switch op {
	case "+", "-", "*", "/", "%", "<", ">", "<=", ">=":
		return true
	}
	return false
}

func isStringLiteral(e *ast.Expr) bool {
	return e != nil && e.Kind == ast.KindLiteral && e.LitKind == ast.LitString
}

func isStringConcatenation(op string, left, right *ast.Expr) bool {
	return op == "+" && (isStringLiteral(left) || isStringLiteral(right) ||
		left.Kind == ast.KindInterpolation || (right != nil && right.Kind == ast.KindInterpolation))
}

func isParamUsedNumerically(paramName string, expr *ast.Expr) bool {
	return traverse(expr, func(e *ast.Expr) bool {
		if e.Kind != ast.KindBinary {
			return false
		}
		if !isNumericOperator(e.Op) {
			return false
		}
		if !(containsParam(paramName, e.Left) || containsParam(paramName, e.Right)) {
			return false
		}
		return !isStringConcatenation(e.Op, e.Left, e.Right)
	})
}

// isParamUsedAsString detects `param + "literal"` concatenation and
// f-string interpolation that embeds the parameter.
func isParamUsedAsString(paramName string, expr *ast.Expr) bool {
	return traverse(expr, func(e *ast.Expr) bool {
		switch e.Kind {
		case ast.KindBinary:
			if e.Op != "+" {
				return false
			}
			if !isStringConcatenation(e.Op, e.Left, e.Right) {
				return false
			}
			return containsParam(paramName, e.Left) || containsParam(paramName, e.Right)
		case ast.KindInterpolation:
			for _, part := range e.Parts2 {
				if part.Expr != nil && containsParam(paramName, part.Expr) {
					return true
				}
			}
			return false
		}
		return false
	})
}
