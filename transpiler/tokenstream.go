// Package transpiler lowers the shared AST into target systems-language
// source (spec.md §4.5). The target language is Rust, matching
// original_source's own `proc_macro2::TokenStream` + `quote!` pipeline
// (backend/transpiler/{bindings,result_type}.rs) — this package has no
// teacher equivalent (go-mix has no transpiler at all), so its shape is
// grounded entirely on original_source with names translated to Go.
package transpiler

import "strings"

// TokenStream is a sequence of target-source tokens, the Go stand-in
// for original_source's `proc_macro2::TokenStream` built by `quote!`.
// Rendering defers pretty-printing to an external formatter (spec.md
// §4.5: "downstream formatting is deferred to a target-language
// pretty-printer"); String just joins tokens with the minimal spacing
// needed to be re-lexable.
type TokenStream struct {
	tokens []string
}

// noSpaceBefore holds punctuation that should not be preceded by a
// space when rendered, so `f(x)` doesn't become `f (x)`.
var noSpaceBefore = map[string]bool{
	",": true, ";": true, ")": true, "]": true, "}": true,
	".": true, "::": true, "?": true, ":": true,
}

var noSpaceAfter = map[string]bool{
	"(": true, "[": true, ".": true, "::": true, "&": true, "!": true,
}

// Tok appends a single raw token.
func (ts *TokenStream) Tok(s string) *TokenStream {
	ts.tokens = append(ts.tokens, s)
	return ts
}

// Toks appends each of the given tokens in order.
func (ts *TokenStream) Toks(ss ...string) *TokenStream {
	for _, s := range ss {
		ts.Tok(s)
	}
	return ts
}

// Append splices another stream's tokens onto this one.
func (ts *TokenStream) Append(other *TokenStream) *TokenStream {
	if other == nil {
		return ts
	}
	ts.tokens = append(ts.tokens, other.tokens...)
	return ts
}

// Group wraps other's tokens in open/close delimiters, e.g.
// Group("{", body, "}") for a block.
func Group(open string, other *TokenStream, close string) *TokenStream {
	ts := &TokenStream{}
	ts.Tok(open).Append(other).Tok(close)
	return ts
}

// Join builds `open item, item, ... close` from already-rendered
// streams, the Go equivalent of `quote!{ #(#items),* }`.
func Join(open string, items []*TokenStream, sep, close string) *TokenStream {
	ts := &TokenStream{}
	ts.Tok(open)
	for i, it := range items {
		if i > 0 {
			ts.Tok(sep)
		}
		ts.Append(it)
	}
	ts.Tok(close)
	return ts
}

func New(tokens ...string) *TokenStream {
	return (&TokenStream{}).Toks(tokens...)
}

// String renders the stream to source text.
func (ts *TokenStream) String() string {
	var b strings.Builder
	for i, t := range ts.tokens {
		if i > 0 && !noSpaceBefore[t] && !noSpaceAfter[ts.tokens[i-1]] {
			b.WriteByte(' ')
		}
		b.WriteString(t)
	}
	return b.String()
}
