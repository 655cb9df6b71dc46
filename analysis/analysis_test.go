package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/ruchy/ast"
	"github.com/akashmaji946/ruchy/parser"
)

func mustParse(t *testing.T, src string) *ast.Expr {
	t.Helper()
	e, errs := parser.Parse(src)
	assert.Empty(t, errs, "unexpected parse errors for %q", src)
	return e
}

func findFunctionBody(t *testing.T, root *ast.Expr, name string) *ast.Expr {
	t.Helper()
	var found *ast.Expr
	var walk func(*ast.Expr)
	walk = func(e *ast.Expr) {
		if e == nil || found != nil {
			return
		}
		if e.Kind == ast.KindFunction && e.FuncName == name {
			found = e.Body
			return
		}
		if e.Kind == ast.KindBlock {
			for _, c := range e.Exprs {
				walk(c)
			}
		}
	}
	walk(root)
	if found == nil {
		t.Fatalf("function %q not found", name)
	}
	return found
}

func TestIsVariableMutated_SimpleAssign(t *testing.T) {
	body := findFunctionBody(t, mustParse(t, `fn f() { x = 1 }`), "f")
	assert.True(t, IsVariableMutated("x", body))
	assert.False(t, IsVariableMutated("y", body))
}

func TestIsVariableMutated_CompoundAssignInLoop(t *testing.T) {
	body := findFunctionBody(t, mustParse(t, `fn f() { while true { total += 1 } }`), "f")
	assert.True(t, IsVariableMutated("total", body))
}

func TestIsVariableMutated_IncrementInFor(t *testing.T) {
	body := findFunctionBody(t, mustParse(t, `fn f() { for i in 0..10 { count++ } }`), "f")
	assert.True(t, IsVariableMutated("count", body))
}

func TestIsVariableMutated_ReadOnlyUseIsNotMutation(t *testing.T) {
	body := findFunctionBody(t, mustParse(t, `fn f() { let y = x + 1; println!(y) }`), "f")
	assert.False(t, IsVariableMutated("x", body))
}

func TestIsVariableMutated_NestedIfBranches(t *testing.T) {
	body := findFunctionBody(t, mustParse(t, `fn f() { if cond { x = 1 } else { x = 2 } }`), "f")
	assert.True(t, IsVariableMutated("x", body))
}

func TestInferParamType_ArrayIndexed(t *testing.T) {
	body := findFunctionBody(t, mustParse(t, `fn f(xs) { xs[0] }`), "f")
	assert.Equal(t, ParamSeqInt, InferParamType("xs", body))
}

func TestInferParamType_NestedArrayIndexed(t *testing.T) {
	body := findFunctionBody(t, mustParse(t, `fn f(grid) { grid[0][1] }`), "f")
	assert.Equal(t, ParamSeqSeqInt, InferParamType("grid", body))
}

func TestInferParamType_LenUsage(t *testing.T) {
	body := findFunctionBody(t, mustParse(t, `fn f(xs) { len(xs) }`), "f")
	assert.Equal(t, ParamSeqInt, InferParamType("xs", body))
}

func TestInferParamType_UsedAsIndex(t *testing.T) {
	body := findFunctionBody(t, mustParse(t, `fn f(i) { arr[i] }`), "f")
	assert.Equal(t, ParamInt, InferParamType("i", body))
}

func TestInferParamType_UsedAsBool(t *testing.T) {
	body := findFunctionBody(t, mustParse(t, `fn f(flag) { if flag { 1 } else { 0 } }`), "f")
	assert.Equal(t, ParamBool, InferParamType("flag", body))
}

func TestInferParamType_UsedNumerically(t *testing.T) {
	body := findFunctionBody(t, mustParse(t, `fn f(n) { n * 2 }`), "f")
	assert.Equal(t, ParamInt, InferParamType("n", body))
}

func TestInferParamType_Unknown(t *testing.T) {
	body := findFunctionBody(t, mustParse(t, `fn f(x) { println!(x) }`), "f")
	assert.Equal(t, ParamUnknown, InferParamType("x", body))
}
