package interp

import (
	"github.com/akashmaji946/ruchy/ast"
	"github.com/akashmaji946/ruchy/value"
)

// matchPattern attempts to match v against pat, binding any names it
// introduces into env. Returns true on a successful match; bindings
// are only committed to env when the overall match succeeds, since a
// partial match (e.g. a tuple pattern whose third element fails)
// must not leave stray bindings behind.
func matchPattern(pat *ast.Pattern, v value.Value, env *value.Env) bool {
	bindings := map[string]value.Value{}
	if !collectPattern(pat, v, bindings) {
		return false
	}
	for name, bv := range bindings {
		env.Bind(name, bv)
	}
	return true
}

func collectPattern(pat *ast.Pattern, v value.Value, bindings map[string]value.Value) bool {
	switch pat.Kind {
	case ast.PatWildcard:
		return true
	case ast.PatIdentifier:
		bindings[pat.Name] = v
		return true
	case ast.PatLiteral:
		lit, err := literalValue(pat.Lit)
		if err != nil {
			return false
		}
		return valuesEqual(lit, v)
	case ast.PatBinding:
		if !collectPattern(pat.Sub, v, bindings) {
			return false
		}
		bindings[pat.Name] = v
		return true
	case ast.PatOr:
		for _, alt := range pat.Alternatives {
			trial := map[string]value.Value{}
			if collectPattern(alt, v, trial) {
				for k, tv := range trial {
					bindings[k] = tv
				}
				return true
			}
		}
		return false
	case ast.PatTuple:
		t, ok := v.(*value.Tuple)
		if !ok || len(t.Elements) != len(pat.Elements) {
			return false
		}
		for i, sub := range pat.Elements {
			if !collectPattern(sub, t.Elements[i], bindings) {
				return false
			}
		}
		return true
	case ast.PatList:
		return collectListPattern(pat, v, bindings)
	case ast.PatRange:
		return collectRangePattern(pat, v)
	case ast.PatStruct:
		s, ok := v.(*value.Struct)
		if !ok || s.Def.Name != pat.TypeName {
			return false
		}
		for _, fp := range pat.FieldPats {
			fv, ok := s.Fields[fp.Name]
			if !ok {
				return false
			}
			if fp.Shorthand {
				bindings[fp.Name] = fv
				continue
			}
			if !collectPattern(fp.Pattern, fv, bindings) {
				return false
			}
		}
		return true
	case ast.PatTupleStruct:
		s, ok := v.(*value.Struct)
		if !ok || s.Def.Name != pat.TypeName || len(pat.TuplePats) != len(s.Def.Fields) {
			return false
		}
		for i, sub := range pat.TuplePats {
			if !collectPattern(sub, s.Fields[s.Def.Fields[i]], bindings) {
				return false
			}
		}
		return true
	case ast.PatReference:
		return collectPattern(pat.Inner, v, bindings)
	default:
		return false
	}
}

func collectListPattern(pat *ast.Pattern, v value.Value, bindings map[string]value.Value) bool {
	lst, ok := v.(*value.List)
	if !ok {
		return false
	}
	if pat.Rest == nil {
		if len(lst.Elements) != len(pat.Elements) {
			return false
		}
		for i, sub := range pat.Elements {
			if !collectPattern(sub, lst.Elements[i], bindings) {
				return false
			}
		}
		return true
	}
	fixed := len(pat.Elements)
	if len(lst.Elements) < fixed {
		return false
	}
	for i := 0; i < pat.RestPos; i++ {
		if !collectPattern(pat.Elements[i], lst.Elements[i], bindings) {
			return false
		}
	}
	restLen := len(lst.Elements) - fixed
	restElems := append([]value.Value{}, lst.Elements[pat.RestPos:pat.RestPos+restLen]...)
	if *pat.Rest != "" {
		bindings[*pat.Rest] = &value.List{Elements: restElems}
	}
	for i := pat.RestPos; i < fixed; i++ {
		if !collectPattern(pat.Elements[i], lst.Elements[i+restLen], bindings) {
			return false
		}
	}
	return true
}

func collectRangePattern(pat *ast.Pattern, v value.Value) bool {
	n, ok := v.(*value.Int)
	if !ok {
		return false
	}
	lowBindings, highBindings := map[string]value.Value{}, map[string]value.Value{}
	if pat.RangeLow != nil && !collectPattern(pat.RangeLow, v, lowBindings) && pat.RangeLow.Kind == ast.PatLiteral {
		low := pat.RangeLow.Lit.IntVal
		if n.Val < low {
			return false
		}
	}
	if pat.RangeHigh != nil && pat.RangeHigh.Kind == ast.PatLiteral {
		high := pat.RangeHigh.Lit.IntVal
		if pat.Inclusive {
			if n.Val > high {
				return false
			}
		} else if n.Val >= high {
			return false
		}
	}
	_ = highBindings
	return true
}

func valuesEqual(a, b value.Value) bool {
	if a.Type() != b.Type() {
		if af, aok := numericAsFloat(a); aok {
			if bf, bok := numericAsFloat(b); bok {
				return af == bf
			}
		}
		return false
	}
	return a.String() == b.String()
}
