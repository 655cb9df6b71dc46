package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tokenTypes(toks []Token) []TokenType {
	out := make([]TokenType, 0, len(toks))
	for _, tk := range toks {
		if tk.Type == EOF {
			continue
		}
		out = append(out, tk.Type)
	}
	return out
}

func TestLexer_Arithmetic(t *testing.T) {
	toks := New("1 + 2 * 3 - 4 / 5").Tokenize()
	assert.Equal(t, []TokenType{INT, PLUS, INT, STAR, INT, MINUS, INT, SLASH, INT}, tokenTypes(toks))
}

func TestLexer_Keywords(t *testing.T) {
	toks := New("let mut x = if else match while for in loop break continue fn return struct enum impl actor receive use self").Tokenize()
	want := []TokenType{LET, MUT, IDENT, ASSIGN, IF, ELSE, MATCH, WHILE, FOR, IN, LOOP, BREAK, CONTINUE, FN, RETURN, STRUCT, ENUM, IMPL, ACTOR, RECEIVE, USE, SELF}
	assert.Equal(t, want, tokenTypes(toks))
}

func TestLexer_Operators_LongestMatchFirst(t *testing.T) {
	toks := New("<<= >>= ..= ... .. |> :: => -> ?. ++ -- == != <= >=").Tokenize()
	want := []TokenType{SHL_EQ, SHR_EQ, RANGE_EQ, ELLIPSIS, RANGE, PIPE_GT, COLONCOLON, FATARROW, ARROW, QDOT, INC, DEC, EQ, NE, LE, GE}
	assert.Equal(t, want, tokenTypes(toks))
}

func TestLexer_CompoundAssign(t *testing.T) {
	toks := New("+= -= *= /= %=").Tokenize()
	assert.Equal(t, []TokenType{PLUS_EQ, MINUS_EQ, STAR_EQ, SLASH_EQ, PCT_EQ}, tokenTypes(toks))
}

func TestLexer_Numbers(t *testing.T) {
	toks := New("42 3.14 1_000 2e10 1.5e-3").Tokenize()
	assert.Equal(t, []TokenType{INT, FLOAT, INT, FLOAT, FLOAT}, tokenTypes(toks))
	assert.Equal(t, "1_000", toks[2].Literal)
}

func TestLexer_StringEscapes(t *testing.T) {
	toks := New(`"a\nb\tc\"d"`).Tokenize()
	assert.Equal(t, STRING, toks[0].Type)
	assert.Equal(t, "a\nb\tc\"d", toks[0].Literal)
}

func TestLexer_RawString(t *testing.T) {
	toks := New(`r"a\nb"`).Tokenize()
	assert.Equal(t, STRING, toks[0].Type)
	assert.Equal(t, `a\nb`, toks[0].Literal)
}

func TestLexer_FString(t *testing.T) {
	toks := New(`f"hello {name}!"`).Tokenize()
	assert.Equal(t, FSTRING, toks[0].Type)
	assert.Equal(t, `hello {name}!`, toks[0].Literal)
}

func TestLexer_Comments(t *testing.T) {
	toks := New("1 // line comment\n+ /* block\ncomment */ 2").Tokenize()
	assert.Equal(t, []TokenType{INT, PLUS, INT}, tokenTypes(toks))
}

func TestLexer_Booleans(t *testing.T) {
	toks := New("true false").Tokenize()
	assert.Equal(t, []TokenType{BOOL, BOOL}, tokenTypes(toks))
	assert.Equal(t, "true", toks[0].Literal)
	assert.Equal(t, "false", toks[1].Literal)
}

func TestLexer_UnrecognizedCharacterRecorded(t *testing.T) {
	l := New("1 $ 2")
	toks := l.Tokenize()
	assert.Equal(t, []TokenType{INT, INVALID, INT}, tokenTypes(toks))
	assert.Len(t, l.Errors(), 1)
}

func TestSplitInterpolation_TextAndExpr(t *testing.T) {
	parts := SplitInterpolation("Hello {name}!")
	assert.Len(t, parts, 3)
	assert.Equal(t, InterpText, parts[0].Kind)
	assert.Equal(t, "Hello ", parts[0].Text)
	assert.Equal(t, InterpExpr, parts[1].Kind)
	assert.Equal(t, "name", parts[1].Expr)
	assert.Equal(t, InterpText, parts[2].Kind)
	assert.Equal(t, "!", parts[2].Text)
}

func TestSplitInterpolation_EscapedBraces(t *testing.T) {
	parts := SplitInterpolation("Value: {{42}}")
	assert.Len(t, parts, 1)
	assert.Equal(t, "Value: {42}", parts[0].Text)
}

func TestSplitInterpolation_FormatSpec(t *testing.T) {
	parts := SplitInterpolation("pi = {value:.2f}")
	assert.Len(t, parts, 2)
	assert.Equal(t, InterpExprFormatted, parts[1].Kind)
	assert.Equal(t, "value", parts[1].Expr)
	assert.Equal(t, ".2f", parts[1].FormatSpec)
}

func TestSplitInterpolation_ColonInsideNestedStringIsNotFormatSpec(t *testing.T) {
	parts := SplitInterpolation(`{f("a:b")}`)
	assert.Len(t, parts, 1)
	assert.Equal(t, InterpExpr, parts[0].Kind)
	assert.Equal(t, `f("a:b")`, parts[0].Expr)
}

func TestSplitInterpolation_Multiple(t *testing.T) {
	parts := SplitInterpolation("{a} + {b} = {c}")
	assert.Len(t, parts, 5)
	assert.Equal(t, InterpExpr, parts[0].Kind)
	assert.Equal(t, InterpText, parts[1].Kind)
	assert.Equal(t, " + ", parts[1].Text)
	assert.Equal(t, InterpExpr, parts[2].Kind)
	assert.Equal(t, InterpText, parts[3].Kind)
	assert.Equal(t, InterpExpr, parts[4].Kind)
}
