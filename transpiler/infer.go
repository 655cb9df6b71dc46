package transpiler

import (
	"strings"

	"github.com/akashmaji946/ruchy/analysis"
	"github.com/akashmaji946/ruchy/ast"
)

// transpileType renders a surface Type annotation as target-language
// syntax. Grounded on original_source/src/backend/transpiler/bindings.rs's
// `transpile_type`/`generate_type_tokens` family.
func transpileType(t *ast.Type) string {
	if t == nil {
		return ""
	}
	switch t.Kind {
	case ast.TypeNamed:
		return rustPrimitive(t.Name)
	case ast.TypeGeneric:
		args := make([]string, len(t.Args))
		for i, a := range t.Args {
			args[i] = transpileType(a)
		}
		return t.Name + "<" + strings.Join(args, ", ") + ">"
	case ast.TypeList:
		return "Vec<" + transpileType(t.Elem) + ">"
	case ast.TypeTuple:
		parts := make([]string, len(t.Elements))
		for i, e := range t.Elements {
			parts[i] = transpileType(e)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case ast.TypeFunction:
		params := make([]string, len(t.Params))
		for i, p := range t.Params {
			params[i] = transpileType(p)
		}
		ret := "()"
		if t.Return != nil {
			ret = transpileType(t.Return)
		}
		return "impl Fn(" + strings.Join(params, ", ") + ") -> " + ret
	case ast.TypeOptional:
		return "Option<" + transpileType(t.Inner) + ">"
	case ast.TypeReference:
		if t.Mutable {
			return "&mut " + transpileType(t.Inner)
		}
		return "&" + transpileType(t.Inner)
	}
	return "_"
}

// rustPrimitive maps Ruchy's surface primitive names to Rust's: `int`
// becomes `i32`, `float` becomes `f64`, and `str`/`string` become
// `String`; every other name (`i32`, `f64`, `bool`, `String`, user
// types) passes through unchanged as it is already Rust spelling.
func rustPrimitive(name string) string {
	switch name {
	case "int":
		return "i32"
	case "float":
		return "f64"
	case "str", "string":
		return "String"
	default:
		return name
	}
}

// paramTargetType resolves one parameter's target-language type: an
// explicit annotation wins; otherwise fall back to usage-based
// inference over the function body (analysis.InferParamType), and
// finally a generic placeholder (spec.md §4.5 "Function signatures").
func paramTargetType(p ast.Param, body *ast.Expr) string {
	if p.Type != nil {
		return transpileType(p.Type)
	}
	switch analysis.InferParamType(p.Name, body) {
	case analysis.ParamSeqSeqInt:
		return "Vec<Vec<i32>>"
	case analysis.ParamSeqInt:
		return "Vec<i32>"
	case analysis.ParamInt:
		return "i32"
	case analysis.ParamBool:
		return "bool"
	case analysis.ParamString:
		return "String"
	default:
		return "impl std::fmt::Debug"
	}
}

// returnTargetType resolves a function's target-language return type:
// an explicit annotation wins; otherwise a lightweight inference over
// the final expression of the body: `()` when the body has no final
// expression, and the placeholder `_` when that expression gives
// nothing more specific (spec.md §4.5).
func returnTargetType(fn *ast.Expr) string {
	if fn.ReturnType != nil {
		return transpileType(fn.ReturnType)
	}
	last := finalExpr(fn.Body)
	if last == nil {
		return "()"
	}
	switch last.Kind {
	case ast.KindLiteral:
		switch last.LitKind {
		case ast.LitInt:
			return "i32"
		case ast.LitFloat:
			return "f64"
		case ast.LitString:
			return "String"
		case ast.LitBool:
			return "bool"
		case ast.LitChar:
			return "char"
		}
	case ast.KindBinary:
		if isComparisonOp(last.Op) {
			return "bool"
		}
	}
	return "_"
}

func isComparisonOp(op string) bool {
	switch op {
	case "==", "!=", "<", "<=", ">", ">=":
		return true
	}
	return false
}

// finalExpr follows Block chains to the expression whose value the
// block (and so the function) evaluates to.
func finalExpr(e *ast.Expr) *ast.Expr {
	if e == nil {
		return nil
	}
	if e.Kind == ast.KindBlock {
		if len(e.Exprs) == 0 {
			return nil
		}
		return finalExpr(e.Exprs[len(e.Exprs)-1])
	}
	return e
}
