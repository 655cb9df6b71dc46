package parser

import (
	"testing"

	"github.com/akashmaji946/ruchy/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOK(t *testing.T, src string) *ast.Expr {
	t.Helper()
	e, errs := Parse(src)
	require.Empty(t, errs, "unexpected parse errors for %q: %v", src, errs)
	return e
}

func TestParse_Arithmetic_Precedence(t *testing.T) {
	e := parseOK(t, "1 + 2 * 3")
	require.Equal(t, ast.KindBinary, e.Kind)
	assert.Equal(t, "+", e.Op)
	assert.Equal(t, ast.KindLiteral, e.Left.Kind)
	require.Equal(t, ast.KindBinary, e.Right.Kind)
	assert.Equal(t, "*", e.Right.Op)
}

func TestParse_LetShadowing(t *testing.T) {
	e := parseOK(t, "let x = 10; let x = x + 1; x")
	require.Equal(t, ast.KindBlock, e.Kind)
	require.Len(t, e.Exprs, 3)
	assert.Equal(t, ast.KindLet, e.Exprs[0].Kind)
	assert.Equal(t, "x", e.Exprs[0].LetName)
}

func TestParse_IfElse(t *testing.T) {
	e := parseOK(t, "if n <= 1 { 1 } else { n }")
	require.Equal(t, ast.KindIf, e.Kind)
	require.NotNil(t, e.Else)
}

func TestParse_FunctionDef_Recursive(t *testing.T) {
	e := parseOK(t, "fn fact(n) { if n <= 1 { 1 } else { n * fact(n - 1) } }")
	require.Equal(t, ast.KindFunction, e.Kind)
	assert.Equal(t, "fact", e.FuncName)
	require.Len(t, e.Params, 1)
	assert.Equal(t, "n", e.Params[0].Name)
}

func TestParse_Lambda(t *testing.T) {
	e := parseOK(t, "|x, y| x + y")
	require.Equal(t, ast.KindLambda, e.Kind)
	require.Len(t, e.Params, 2)
	require.Equal(t, ast.KindBinary, e.Body.Kind)
}

func TestParse_MatchExpression(t *testing.T) {
	e := parseOK(t, `match 2 { 1 => "one", 2 => "two", _ => "other" }`)
	require.Equal(t, ast.KindMatch, e.Kind)
	require.Len(t, e.Arms, 3)
	assert.Equal(t, ast.PatWildcard, e.Arms[2].Pattern.Kind)
}

func TestParse_FString(t *testing.T) {
	e := parseOK(t, `f"Hello, {name}!"`)
	require.Equal(t, ast.KindInterpolation, e.Kind)
	require.Len(t, e.Parts2, 3)
	assert.Equal(t, "Hello, ", e.Parts2[0].Text)
	require.NotNil(t, e.Parts2[1].Expr)
	assert.Equal(t, "name", e.Parts2[1].Expr.Name)
}

func TestParse_MethodChain_Filter_Count(t *testing.T) {
	e := parseOK(t, "[1,2,3,4,5].filter(|x| x > 2).count()")
	require.Equal(t, ast.KindMethodCall, e.Kind)
	assert.Equal(t, "count", e.Method)
	require.Equal(t, ast.KindMethodCall, e.Receiver.Kind)
	assert.Equal(t, "filter", e.Receiver.Method)
}

func TestParse_ListDestructuringLet(t *testing.T) {
	e := parseOK(t, "let [a, b, c] = [1,2,3]; a + b + c")
	require.Equal(t, ast.KindBlock, e.Kind)
	require.Equal(t, ast.KindLetPattern, e.Exprs[0].Kind)
	assert.Equal(t, ast.PatList, e.Exprs[0].LetPattern.Kind)
}

func TestParse_RangeInclusiveForLoop(t *testing.T) {
	e := parseOK(t, "let mut s = 0; for i in 1..=5 { s = s + i }; s")
	require.Equal(t, ast.KindBlock, e.Kind)
	forExpr := e.Exprs[1]
	require.Equal(t, ast.KindFor, forExpr.Kind)
	require.Equal(t, ast.KindRange, forExpr.Iter.Kind)
	assert.True(t, forExpr.Iter.Inclusive)
}

func TestParse_AttributeDecorator(t *testing.T) {
	e := parseOK(t, "@derive(Debug, Clone) struct Point { x: i32, y: i32 }")
	require.Equal(t, ast.KindStruct, e.Kind)
	require.Len(t, e.Attributes, 1)
	assert.Equal(t, "derive", e.Attributes[0].Name)
}

func TestParse_HashAttributeProducesLocalizedError(t *testing.T) {
	_, errs := Parse("#[derive(Debug)] struct Point { x: i32 }")
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Message, "@decorator")
}

func TestParse_ObjectLiteralSpreadUpdate(t *testing.T) {
	e := parseOK(t, "{ ..base, x: 5 }")
	require.Equal(t, ast.KindObjectLiteral, e.Kind)
	require.Len(t, e.ObjFields, 2)
	assert.True(t, e.ObjFields[0].Spread)
	assert.Equal(t, "x", e.ObjFields[1].Name)
}

func TestParse_PipeOperatorDesugarsToCall(t *testing.T) {
	e := parseOK(t, "5 |> double()")
	require.Equal(t, ast.KindCall, e.Kind)
	require.Len(t, e.Args, 1)
	assert.Equal(t, ast.KindLiteral, e.Args[0].Kind)
}

func TestParse_CompoundAssign(t *testing.T) {
	e := parseOK(t, "x += 1")
	require.Equal(t, ast.KindCompoundAssign, e.Kind)
	assert.Equal(t, "+", e.Op)
}

func TestParse_MacroInvocation(t *testing.T) {
	e := parseOK(t, `println!("hi")`)
	require.Equal(t, ast.KindMacroInvocation, e.Kind)
	assert.Equal(t, "println", e.MacroName)
}

func TestParse_ErrorRecoveryContinuesParsing(t *testing.T) {
	_, errs := Parse("let x = ; let y = 2;")
	assert.NotEmpty(t, errs)
}

func TestParse_Determinism(t *testing.T) {
	src := "fn add(x, y) { x + y }; add(3, 4)"
	e1 := parseOK(t, src)
	e2 := parseOK(t, src)
	assert.Equal(t, stripSpans(e1), stripSpans(e2))
}

// stripSpans zeroes span fields so structural comparisons ignore byte
// offsets, matching spec.md §8's "modulo span numbering" determinism
// property.
func stripSpans(e *ast.Expr) *ast.Expr {
	if e == nil {
		return nil
	}
	clone := *e
	clone.Span = ast.Span{}
	clone.Left = stripSpans(e.Left)
	clone.Right = stripSpans(e.Right)
	clone.Cond = stripSpans(e.Cond)
	clone.Then = stripSpans(e.Then)
	clone.Else = stripSpans(e.Else)
	clone.Value = stripSpans(e.Value)
	clone.Body = stripSpans(e.Body)
	for i := range clone.Exprs {
		clone.Exprs[i] = stripSpans(e.Exprs[i])
	}
	for i := range clone.Args {
		clone.Args[i] = stripSpans(e.Args[i])
	}
	return &clone
}
