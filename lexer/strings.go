package lexer

import "strings"

// InterpPartKind tags one piece of a split f-string.
type InterpPartKind int

const (
	InterpText InterpPartKind = iota
	InterpExpr
	InterpExprFormatted
)

// InterpPart is one piece of an f-string after splitting on `{expr}`
// and `{expr:spec}` boundaries, escaped-brace `{{`/`}}` already
// resolved. Expr/FormatSpec carry raw source text, re-lexed and
// re-parsed by the parser as an ordinary sub-expression.
type InterpPart struct {
	Kind       InterpPartKind
	Text       string
	Expr       string
	FormatSpec string
}

// SplitInterpolation splits an f-string body (the text between the
// opening f" and closing ", as captured verbatim by readString) into
// text/expression parts. Ported from original_source's
// parse_string_interpolation state machine: brace depth plus
// in_string/in_char/escaped flags track where a `}` genuinely closes
// the current interpolation versus belonging to a nested string or
// char literal inside it.
func SplitInterpolation(s string) []InterpPart {
	var parts []InterpPart
	var text strings.Builder
	runes := []rune(s)
	i := 0
	flushText := func() {
		if text.Len() > 0 {
			parts = append(parts, InterpPart{Kind: InterpText, Text: unescape(text.String())})
			text.Reset()
		}
	}
	for i < len(runes) {
		ch := runes[i]
		switch {
		case ch == '{' && i+1 < len(runes) && runes[i+1] == '{':
			text.WriteRune('{')
			i += 2
		case ch == '}' && i+1 < len(runes) && runes[i+1] == '}':
			text.WriteRune('}')
			i += 2
		case ch == '{':
			flushText()
			exprText, next := extractExprText(runes, i+1)
			i = next
			expr, spec := splitFormatSpec(exprText)
			if spec != "" {
				parts = append(parts, InterpPart{Kind: InterpExprFormatted, Expr: expr, FormatSpec: spec})
			} else {
				parts = append(parts, InterpPart{Kind: InterpExpr, Expr: expr})
			}
		default:
			text.WriteRune(ch)
			i++
		}
	}
	flushText()
	return parts
}

// extractExprText scans from just after an opening `{` until the
// matching `}` (brace depth starts at 1), respecting nested string
// and char literals so a `}` inside "..."  or '...' doesn't
// terminate early. Returns the raw expression text and the index just
// past the closing brace.
func extractExprText(runes []rune, start int) (string, int) {
	var b strings.Builder
	braceCount := 1
	inString, inChar, escaped := false, false, false
	i := start
	for i < len(runes) {
		ch := runes[i]
		switch {
		case ch == '"' && !inChar && !escaped:
			inString = !inString
			b.WriteRune(ch)
		case ch == '\'' && !inString && !escaped:
			inChar = !inChar
			b.WriteRune(ch)
		case ch == '{' && !inString && !inChar:
			braceCount++
			b.WriteRune(ch)
		case ch == '}' && !inString && !inChar:
			braceCount--
			if braceCount == 0 {
				i++
				return b.String(), i
			}
			b.WriteRune(ch)
		case ch == '\\' && (inString || inChar) && !escaped:
			escaped = true
			b.WriteRune(ch)
			i++
			continue
		default:
			b.WriteRune(ch)
		}
		escaped = false
		i++
	}
	return b.String(), i
}

// splitFormatSpec peels a trailing `:spec` off an interpolated
// expression, unless the colon appears inside a nested string/char
// literal within the expression text (original_source's
// split_format_specifier rule).
func splitFormatSpec(exprText string) (expr, spec string) {
	idx := strings.IndexByte(exprText, ':')
	if idx < 0 {
		return exprText, ""
	}
	before := exprText[:idx]
	if strings.ContainsAny(before, "\"'") {
		return exprText, ""
	}
	return before, exprText[idx+1:]
}
