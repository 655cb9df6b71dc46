package interp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/akashmaji946/ruchy/value"
)

// registerBuiltins builds the small built-in table spec.md §1 commits
// the core to: `len`, `print`, `println`, numeric coercions, and
// string methods — everything else the teacher's std/ package offers
// (arrays, crypto, http, json, regex, ...) is explicitly out of scope
// here (see DESIGN.md). Grounded on the teacher's Builtin{Name,
// Callback} shape, adapted to this package's Value/Env vocabulary.
func registerBuiltins(it *Interp) map[string]*value.Builtin {
	table := map[string]*value.Builtin{}
	add := func(name string, fn func(args []value.Value) (value.Value, error)) {
		table[name] = &value.Builtin{Name: name, Fn: fn}
	}

	add("len", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("len expects 1 argument, got %d", len(args))
		}
		switch v := args[0].(type) {
		case *value.List:
			return &value.Int{Val: int64(len(v.Elements))}, nil
		case *value.Tuple:
			return &value.Int{Val: int64(len(v.Elements))}, nil
		case *value.Str:
			return &value.Int{Val: int64(len([]rune(v.Val)))}, nil
		default:
			return nil, fmt.Errorf("len is not defined for %s", v.Type())
		}
	})

	add("print", func(args []value.Value) (value.Value, error) {
		fmt.Fprint(it.Writer, joinValues(args))
		return &value.Unit{}, nil
	})
	add("println", func(args []value.Value) (value.Value, error) {
		fmt.Fprintln(it.Writer, joinValues(args))
		return &value.Unit{}, nil
	})

	add("to_int", func(args []value.Value) (value.Value, error) { return coerceInt(args) })
	add("to_float", func(args []value.Value) (value.Value, error) { return coerceFloat(args) })
	add("to_string", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("to_string expects 1 argument")
		}
		return &value.Str{Val: args[0].String()}, nil
	})

	return table
}

func joinValues(args []value.Value) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	return strings.Join(parts, " ")
}

func coerceInt(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("to_int expects 1 argument")
	}
	switch v := args[0].(type) {
	case *value.Int:
		return v, nil
	case *value.Float:
		return &value.Int{Val: int64(v.Val)}, nil
	case *value.Str:
		n, err := strconv.ParseInt(strings.TrimSpace(v.Val), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("cannot convert %q to int", v.Val)
		}
		return &value.Int{Val: n}, nil
	default:
		return nil, fmt.Errorf("cannot convert %s to int", v.Type())
	}
}

func coerceFloat(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("to_float expects 1 argument")
	}
	switch v := args[0].(type) {
	case *value.Float:
		return v, nil
	case *value.Int:
		return &value.Float{Val: float64(v.Val)}, nil
	case *value.Str:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Val), 64)
		if err != nil {
			return nil, fmt.Errorf("cannot convert %q to float", v.Val)
		}
		return &value.Float{Val: f}, nil
	default:
		return nil, fmt.Errorf("cannot convert %s to float", v.Type())
	}
}

// callBuiltinMethod implements spec.md §4.4's type-directed method
// dispatch (`len` on list/string, `to_string` on anything, string
// methods, list methods) tried before falling back to a free-function
// call with the receiver as the first argument. `handled` is false
// when no built-in method of that name exists for recv's type, so the
// caller can report UndefinedMethod instead of silently no-op'ing.
func (it *Interp) callBuiltinMethod(method string, recv value.Value, args []value.Value, pos int) (value.Value, bool, error) {
	switch method {
	case "len":
		v, err := lenOf(recv)
		return v, true, err
	case "to_string":
		return &value.Str{Val: recv.String()}, true, nil
	}

	if s, ok := recv.(*value.Str); ok {
		if v, handled, err := stringMethod(method, s, args); handled {
			return v, true, err
		}
	}
	if l, ok := recv.(*value.List); ok {
		if v, handled, err := it.listMethod(method, l, args, pos); handled {
			return v, true, err
		}
	}
	return nil, false, nil
}

func lenOf(v value.Value) (value.Value, error) {
	switch x := v.(type) {
	case *value.List:
		return &value.Int{Val: int64(len(x.Elements))}, nil
	case *value.Tuple:
		return &value.Int{Val: int64(len(x.Elements))}, nil
	case *value.Str:
		return &value.Int{Val: int64(len([]rune(x.Val)))}, nil
	}
	return nil, fmt.Errorf("len is not defined for %s", v.Type())
}

func stringMethod(method string, s *value.Str, args []value.Value) (value.Value, bool, error) {
	switch method {
	case "upper":
		return &value.Str{Val: strings.ToUpper(s.Val)}, true, nil
	case "lower":
		return &value.Str{Val: strings.ToLower(s.Val)}, true, nil
	case "trim":
		return &value.Str{Val: strings.TrimSpace(s.Val)}, true, nil
	case "contains":
		return &value.Bool{Val: strings.Contains(s.Val, argString(args, 0))}, true, nil
	case "starts_with":
		return &value.Bool{Val: strings.HasPrefix(s.Val, argString(args, 0))}, true, nil
	case "ends_with":
		return &value.Bool{Val: strings.HasSuffix(s.Val, argString(args, 0))}, true, nil
	case "split":
		parts := strings.Split(s.Val, argString(args, 0))
		elems := make([]value.Value, len(parts))
		for i, p := range parts {
			elems[i] = &value.Str{Val: p}
		}
		return &value.List{Elements: elems}, true, nil
	case "len":
		return &value.Int{Val: int64(len([]rune(s.Val)))}, true, nil
	}
	return nil, false, nil
}

func argString(args []value.Value, i int) string {
	if i >= len(args) {
		return ""
	}
	if s, ok := args[i].(*value.Str); ok {
		return s.Val
	}
	return args[i].String()
}

func (it *Interp) listMethod(method string, l *value.List, args []value.Value, pos int) (value.Value, bool, error) {
	switch method {
	case "push":
		l.Elements = append(l.Elements, args...)
		return l, true, nil
	case "pop":
		if len(l.Elements) == 0 {
			return nil, true, newError(KindIndexOutOfBounds, pos, "pop on empty list")
		}
		last := l.Elements[len(l.Elements)-1]
		l.Elements = l.Elements[:len(l.Elements)-1]
		return last, true, nil
	case "first":
		if len(l.Elements) == 0 {
			return &value.Nil{}, true, nil
		}
		return l.Elements[0], true, nil
	case "last":
		if len(l.Elements) == 0 {
			return &value.Nil{}, true, nil
		}
		return l.Elements[len(l.Elements)-1], true, nil
	case "count":
		return &value.Int{Val: int64(len(l.Elements))}, true, nil
	case "map":
		if len(args) != 1 {
			return nil, true, fmt.Errorf("map expects 1 function argument")
		}
		out := make([]value.Value, len(l.Elements))
		for i, e := range l.Elements {
			v, err := it.callValue(args[0], []value.Value{e}, pos)
			if err != nil {
				return nil, true, err
			}
			out[i] = v
		}
		return &value.List{Elements: out}, true, nil
	case "filter":
		if len(args) != 1 {
			return nil, true, fmt.Errorf("filter expects 1 function argument")
		}
		var out []value.Value
		for _, e := range l.Elements {
			v, err := it.callValue(args[0], []value.Value{e}, pos)
			if err != nil {
				return nil, true, err
			}
			b, ok := v.(*value.Bool)
			if !ok {
				return nil, true, newError(KindTypeMismatch, pos, "filter predicate must return bool")
			}
			if b.Val {
				out = append(out, e)
			}
		}
		return &value.List{Elements: out}, true, nil
	}
	return nil, false, nil
}
