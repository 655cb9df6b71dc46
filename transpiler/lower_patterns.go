package transpiler

import "github.com/akashmaji946/ruchy/ast"

// transpilePattern renders a Pattern as target-language match/let
// syntax. Grounded on original_source/src/backend/transpiler/bindings.rs's
// `transpile_pattern` (invoked from `transpile_let_pattern`) and
// `result_type.rs`'s `Ok(value)`/`Err(error)` arm rendering for the
// struct/tuple-struct cases.
func (t *Transpiler) transpilePattern(p *ast.Pattern) (*TokenStream, error) {
	if p == nil {
		return New("_"), nil
	}
	switch p.Kind {
	case ast.PatWildcard:
		return New("_"), nil
	case ast.PatIdentifier:
		return New(SafeIdent(p.Name)), nil
	case ast.PatLiteral:
		return t.transpileExpr(p.Lit)
	case ast.PatBinding:
		sub, err := t.transpilePattern(p.Sub)
		if err != nil {
			return nil, err
		}
		return New(SafeIdent(p.Name), "@").Append(sub), nil
	case ast.PatOr:
		items := make([]*TokenStream, len(p.Alternatives))
		for i, a := range p.Alternatives {
			ts, err := t.transpilePattern(a)
			if err != nil {
				return nil, err
			}
			items[i] = ts
		}
		return Join("", items, "|", ""), nil
	case ast.PatTuple:
		items, err := t.transpilePatternList(p.Elements)
		if err != nil {
			return nil, err
		}
		return Join("(", items, ",", ")"), nil
	case ast.PatList:
		return t.transpileListPattern(p)
	case ast.PatRange:
		return t.transpileRangePattern(p)
	case ast.PatReference:
		inner, err := t.transpilePattern(p.Inner)
		if err != nil {
			return nil, err
		}
		if p.Mutable {
			return New("&mut").Append(inner), nil
		}
		return New("&").Append(inner), nil
	case ast.PatStruct:
		return t.transpileStructPattern(p)
	case ast.PatTupleStruct:
		items, err := t.transpilePatternList(p.TuplePats)
		if err != nil {
			return nil, err
		}
		return New(p.TypeName).Append(Join("(", items, ",", ")")), nil
	}
	return New("_"), nil
}

func (t *Transpiler) transpilePatternList(ps []*ast.Pattern) ([]*TokenStream, error) {
	out := make([]*TokenStream, len(ps))
	for i, p := range ps {
		ts, err := t.transpilePattern(p)
		if err != nil {
			return nil, err
		}
		out[i] = ts
	}
	return out, nil
}

// transpileListPattern renders `[a, b, ..rest]` as a Rust slice
// pattern `[a, b, rest @ ..]`.
func (t *Transpiler) transpileListPattern(p *ast.Pattern) (*TokenStream, error) {
	var parts []string
	for i, el := range p.Elements {
		if p.Rest != nil && i == p.RestPos {
			parts = append(parts, SafeIdent(*p.Rest)+" @ ..")
		}
		sub, err := t.transpilePattern(el)
		if err != nil {
			return nil, err
		}
		parts = append(parts, sub.String())
	}
	if p.Rest != nil && p.RestPos >= len(p.Elements) {
		parts = append(parts, SafeIdent(*p.Rest)+" @ ..")
	}
	ts := New("[")
	for i, s := range parts {
		if i > 0 {
			ts.Tok(",")
		}
		ts.Tok(s)
	}
	ts.Tok("]")
	return ts, nil
}

func (t *Transpiler) transpileRangePattern(p *ast.Pattern) (*TokenStream, error) {
	low, err := t.transpilePattern(p.RangeLow)
	if err != nil {
		return nil, err
	}
	high, err := t.transpilePattern(p.RangeHigh)
	if err != nil {
		return nil, err
	}
	op := ".."
	if p.Inclusive {
		op = "..="
	}
	return New().Append(low).Tok(op).Append(high), nil
}

func (t *Transpiler) transpileStructPattern(p *ast.Pattern) (*TokenStream, error) {
	ts := New(p.TypeName, "{")
	for i, f := range p.FieldPats {
		if i > 0 {
			ts.Tok(",")
		}
		if f.Shorthand {
			ts.Tok(SafeIdent(f.Name))
			continue
		}
		sub, err := t.transpilePattern(f.Pattern)
		if err != nil {
			return nil, err
		}
		ts.Tok(f.Name).Tok(":").Append(sub)
	}
	ts.Tok("}")
	return ts, nil
}

// patternNeedsSlice reports whether a pattern match against value
// requires converting the scrutinee into a slice view, per spec.md
// §4.5 ("refutable list patterns require converting the scrutinee to
// a slice view") and bindings.rs's `pattern_needs_slice`.
func patternNeedsSlice(p *ast.Pattern) bool {
	return p != nil && p.Kind == ast.PatList
}

func valueCreatesVec(e *ast.Expr) bool {
	return e != nil && e.Kind == ast.KindList
}
