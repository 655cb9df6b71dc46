package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/ruchy/parser"
	"github.com/akashmaji946/ruchy/value"
)

func run(t *testing.T, src string) value.Value {
	t.Helper()
	expr, errs := parser.Parse(src)
	require.Empty(t, errs, "unexpected parse errors for %q", src)
	it := New()
	v, err := it.Eval(expr)
	require.NoError(t, err, "unexpected eval error for %q", src)
	return v
}

func TestEval_ArithmeticPrecedence(t *testing.T) {
	v := run(t, `1 + 2 * 3`)
	assert.Equal(t, int64(7), v.(*value.Int).Val)
}

func TestEval_LetShadowing(t *testing.T) {
	v := run(t, `let x = 10; let x = x + 1; x`)
	assert.Equal(t, int64(11), v.(*value.Int).Val)
}

func TestEval_ForAccumulation(t *testing.T) {
	v := run(t, `let mut s = 0; for i in 1..=5 { s = s + i }; s`)
	assert.Equal(t, int64(15), v.(*value.Int).Val)
}

func TestEval_RecursiveFactorial(t *testing.T) {
	v := run(t, `fn fact(n) { if n <= 1 { 1 } else { n * fact(n - 1) } }; fact(5)`)
	assert.Equal(t, int64(120), v.(*value.Int).Val)
}

func TestEval_LambdaAdd(t *testing.T) {
	v := run(t, `let add = |x, y| x + y; add(3, 4)`)
	assert.Equal(t, int64(7), v.(*value.Int).Val)
}

func TestEval_MatchExpression(t *testing.T) {
	v := run(t, `match 2 { 1 => "one", 2 => "two", _ => "other" }`)
	assert.Equal(t, "two", v.(*value.Str).Val)
}

func TestEval_StringInterpolation(t *testing.T) {
	v := run(t, `let name = "world"; f"Hello, {name}!"`)
	assert.Equal(t, "Hello, world!", v.(*value.Str).Val)
}

func TestEval_FilterCount(t *testing.T) {
	v := run(t, `[1,2,3,4,5].filter(|x| x > 2).count()`)
	assert.Equal(t, int64(3), v.(*value.Int).Val)
}

func TestEval_DivisionByZero(t *testing.T) {
	expr, errs := parser.Parse(`1 / 0`)
	require.Empty(t, errs)
	it := New()
	_, err := it.Eval(expr)
	require.Error(t, err)
	ierr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindDivisionByZero, ierr.Kind)
}

func TestEval_IntegerOverflowTraps(t *testing.T) {
	expr, errs := parser.Parse(`9223372036854775807 + 1`)
	require.Empty(t, errs)
	it := New()
	_, err := it.Eval(expr)
	require.Error(t, err)
	ierr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindIntegerOverflow, ierr.Kind)
}

func TestEval_IntegerOverflowTrapsOnMultiply(t *testing.T) {
	expr, errs := parser.Parse(`9223372036854775807 * 2`)
	require.Empty(t, errs)
	it := New()
	_, err := it.Eval(expr)
	require.Error(t, err)
	ierr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindIntegerOverflow, ierr.Kind)
}

func TestEval_UnboundedRecursionTrapsWithStackDepthLimit(t *testing.T) {
	expr, errs := parser.Parse(`fn f(n) { f(n + 1) }; f(0)`)
	require.Empty(t, errs)
	it := New()
	it.SetBounds(Bounds{MaxCallDepth: 50})
	_, err := it.Eval(expr)
	require.Error(t, err)
	ierr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindRecursionLimit, ierr.Kind)
}

func TestEval_RunawayLoopTrapsWithIterationLimit(t *testing.T) {
	expr, errs := parser.Parse(`loop { }`)
	require.Empty(t, errs)
	it := New()
	it.SetBounds(Bounds{MaxIterations: 100})
	_, err := it.Eval(expr)
	require.Error(t, err)
	ierr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindIterationLimit, ierr.Kind)
}

func TestEval_ListDestructuringLet(t *testing.T) {
	v := run(t, `let [a, b, c] = [1,2,3]; a + b + c`)
	assert.Equal(t, int64(6), v.(*value.Int).Val)
}

func TestEval_ClosureCapturesAtDefinitionTime(t *testing.T) {
	v := run(t, `let x = 1; let f = || x; let x = 2; f()`)
	assert.Equal(t, int64(1), v.(*value.Int).Val)
}

func TestEval_ShortCircuitAnd(t *testing.T) {
	v := run(t, `let mut hit = false; let f = || { hit = true; true }; false && f(); hit`)
	assert.Equal(t, false, v.(*value.Bool).Val)
}

func TestEval_BreakValueFromLoop(t *testing.T) {
	v := run(t, `loop { break 7 }`)
	assert.Equal(t, int64(7), v.(*value.Int).Val)
}

func TestEval_WhileFalseEvaluatesToUnit(t *testing.T) {
	v := run(t, `while false { }`)
	assert.IsType(t, &value.Unit{}, v)
}

func TestEval_EmptyForRunsZeroTimes(t *testing.T) {
	v := run(t, `let mut count = 0; for x in [] { count = count + 1 }; count`)
	assert.Equal(t, int64(0), v.(*value.Int).Val)
}

func TestEval_NonBooleanConditionRaisesNonBooleanCond(t *testing.T) {
	expr, errs := parser.Parse(`if 1 { 2 } else { 3 }`)
	require.Empty(t, errs)
	it := New()
	_, err := it.Eval(expr)
	require.Error(t, err)
	ierr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindNonBooleanCond, ierr.Kind)
}

func TestEval_StructFieldUpdateViaObjectSpread(t *testing.T) {
	v := run(t, `let p = { x: 1, y: 2 }; let p2 = { ..p, x: 9 }; p2.x + p2.y`)
	assert.Equal(t, int64(11), v.(*value.Int).Val)
}

func TestEval_MatchExhaustionRaises(t *testing.T) {
	expr, errs := parser.Parse(`match 5 { 1 => "a" }`)
	require.Empty(t, errs)
	it := New()
	_, err := it.Eval(expr)
	require.Error(t, err)
	ierr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindMatchExhaustion, ierr.Kind)
}
