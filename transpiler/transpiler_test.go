package transpiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/ruchy/parser"
)

func transpileSrc(t *testing.T, src string) string {
	t.Helper()
	expr, errs := parser.Parse(src)
	require.Empty(t, errs, "unexpected parse errors for %q: %v", src, errs)
	ts, err := Transpile(expr)
	require.NoError(t, err)
	return ts.String()
}

func TestTranspile_ImmutableLet(t *testing.T) {
	out := transpileSrc(t, `let x = 1; x`)
	assert.Contains(t, out, "let x = 1;")
	assert.NotContains(t, out, "let mut x")
}

func TestTranspile_MutationInferredLet(t *testing.T) {
	out := transpileSrc(t, `let mut s = 0; s = s + 1; s`)
	assert.Contains(t, out, "let mut s")
}

func TestTranspile_AutoDetectedMutation(t *testing.T) {
	out := transpileSrc(t, `let s = 0; s = s + 1; s`)
	assert.Contains(t, out, "let mut s")
}

func TestTranspile_EmptyListGetsVecTypeHint(t *testing.T) {
	out := transpileSrc(t, `let xs = []; xs`)
	assert.Contains(t, out, "Vec<_>")
}

func TestTranspile_IfElse(t *testing.T) {
	out := transpileSrc(t, `if n <= 1 { 1 } else { n }`)
	assert.Contains(t, out, "if")
	assert.Contains(t, out, "else")
}

func TestTranspile_FunctionSignature(t *testing.T) {
	out := transpileSrc(t, `fn fact(n) { if n <= 1 { 1 } else { n * fact(n - 1) } }`)
	assert.Contains(t, out, "fn fact")
	assert.Contains(t, out, "->")
}

func TestTranspile_ArrayParamInfersVecI32(t *testing.T) {
	out := transpileSrc(t, `fn sum(xs) { xs[0] }`)
	assert.Contains(t, out, "Vec<i32>")
}

func TestTranspile_ReservedKeywordRawIdentifier(t *testing.T) {
	out := transpileSrc(t, `let type = 1; type`)
	assert.Contains(t, out, "r#type")
}

func TestTranspile_StringInterpolationBecomesFormatMacro(t *testing.T) {
	out := transpileSrc(t, `let name = "world"; f"Hello, {name}!"`)
	assert.Contains(t, out, "format!")
}

func TestTranspile_MatchArmsLowerToNativeMatch(t *testing.T) {
	out := transpileSrc(t, `match 2 { 1 => "one", 2 => "two", _ => "other" }`)
	assert.Contains(t, out, "match")
	assert.Contains(t, out, "=>")
}

func TestTranspile_ListDestructuringLetUsesSliceView(t *testing.T) {
	out := transpileSrc(t, `let [a, b, c] = [1,2,3]; a`)
	assert.Contains(t, out, "[..]")
}

func TestTranspile_PrintlnMacroLowersDirectly(t *testing.T) {
	out := transpileSrc(t, `println!("hi")`)
	assert.Contains(t, out, "println!")
}

func TestTranspile_RangeForLoop(t *testing.T) {
	out := transpileSrc(t, `for i in 1..=5 { i }`)
	assert.Contains(t, out, "..=")
	assert.Contains(t, out, "for")
}

func TestTranspile_TryOperatorPassesThrough(t *testing.T) {
	out := transpileSrc(t, `fn f(r) { r? }`)
	assert.Contains(t, out, "?")
}

func TestTranspile_StructFieldUpdateUsesFunctionalUpdateSyntax(t *testing.T) {
	out := transpileSrc(t, `let p = { x: 1, y: 2 }; { ..p, x: 9 }`)
	assert.Contains(t, out, "..")
}
