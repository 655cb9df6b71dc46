package interp

import (
	"github.com/akashmaji946/ruchy/ast"
	"github.com/akashmaji946/ruchy/value"
)

func (it *Interp) evalList(expr *ast.Expr, env *value.Env) (value.Value, error) {
	elems := make([]value.Value, len(expr.Elements))
	for i, e := range expr.Elements {
		v, err := it.eval(e, env)
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	it.check.account(int64(len(elems)) * 16)
	return &value.List{Elements: elems}, nil
}

func (it *Interp) evalTuple(expr *ast.Expr, env *value.Env) (value.Value, error) {
	elems := make([]value.Value, len(expr.Elements))
	for i, e := range expr.Elements {
		v, err := it.eval(e, env)
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	return &value.Tuple{Elements: elems}, nil
}

func (it *Interp) evalRange(expr *ast.Expr, env *value.Env) (value.Value, error) {
	start, err := it.eval(expr.RangeStart, env)
	if err != nil {
		return nil, err
	}
	end, err := it.eval(expr.RangeEnd, env)
	if err != nil {
		return nil, err
	}
	si, ok := start.(*value.Int)
	if !ok {
		return nil, newError(KindTypeMismatch, expr.Span.Start, "range bounds must be integers")
	}
	ei, ok := end.(*value.Int)
	if !ok {
		return nil, newError(KindTypeMismatch, expr.Span.Start, "range bounds must be integers")
	}
	return &value.Range{Start: si.Val, End: ei.Val, Inclusive: expr.Inclusive}, nil
}

func (it *Interp) evalIndex(expr *ast.Expr, env *value.Env) (value.Value, error) {
	obj, err := it.eval(expr.Object, env)
	if err != nil {
		return nil, err
	}
	idxVal, err := it.eval(expr.Index, env)
	if err != nil {
		return nil, err
	}
	idx, ok := idxVal.(*value.Int)
	if !ok {
		return nil, newError(KindTypeMismatch, expr.Span.Start, "index must be an integer")
	}
	switch c := obj.(type) {
	case *value.List:
		if idx.Val < 0 || int(idx.Val) >= len(c.Elements) {
			return nil, newError(KindIndexOutOfBounds, expr.Span.Start, "index %d out of bounds (len %d)", idx.Val, len(c.Elements))
		}
		return c.Elements[idx.Val], nil
	case *value.Tuple:
		if idx.Val < 0 || int(idx.Val) >= len(c.Elements) {
			return nil, newError(KindIndexOutOfBounds, expr.Span.Start, "index %d out of bounds (len %d)", idx.Val, len(c.Elements))
		}
		return c.Elements[idx.Val], nil
	case *value.Str:
		runes := []rune(c.Val)
		if idx.Val < 0 || int(idx.Val) >= len(runes) {
			return nil, newError(KindIndexOutOfBounds, expr.Span.Start, "index %d out of bounds (len %d)", idx.Val, len(runes))
		}
		return &value.Str{Val: string(runes[idx.Val])}, nil
	default:
		return nil, newError(KindTypeMismatch, expr.Span.Start, "value of type %s is not indexable", obj.Type())
	}
}

func (it *Interp) evalSlice(expr *ast.Expr, env *value.Env) (value.Value, error) {
	obj, err := it.eval(expr.Object, env)
	if err != nil {
		return nil, err
	}
	lst, ok := obj.(*value.List)
	if !ok {
		return nil, newError(KindTypeMismatch, expr.Span.Start, "slice target must be a list")
	}
	low, high := 0, len(lst.Elements)
	if expr.SliceLow != nil {
		v, err := it.eval(expr.SliceLow, env)
		if err != nil {
			return nil, err
		}
		low = int(v.(*value.Int).Val)
	}
	if expr.SliceHigh != nil {
		v, err := it.eval(expr.SliceHigh, env)
		if err != nil {
			return nil, err
		}
		high = int(v.(*value.Int).Val)
	}
	if low < 0 || high > len(lst.Elements) || low > high {
		return nil, newError(KindBadSliceBounds, expr.Span.Start, "slice bounds [%d:%d] out of range for length %d", low, high, len(lst.Elements))
	}
	out := append([]value.Value{}, lst.Elements[low:high]...)
	return &value.List{Elements: out}, nil
}

func (it *Interp) evalFieldAccess(expr *ast.Expr, env *value.Env) (value.Value, error) {
	obj, err := it.eval(expr.Object, env)
	if err != nil {
		return nil, err
	}
	s, ok := obj.(*value.Struct)
	if !ok {
		return nil, newError(KindTypeMismatch, expr.Span.Start, "field access target is not a struct")
	}
	v, ok := s.Fields[expr.Field]
	if !ok {
		return nil, newError(KindKeyNotFound, expr.Span.Start, "struct %s has no field %s", s.Def.Name, expr.Field)
	}
	return v, nil
}

func (it *Interp) evalOptionalFieldAccess(expr *ast.Expr, env *value.Env) (value.Value, error) {
	obj, err := it.eval(expr.Object, env)
	if err != nil {
		return nil, err
	}
	if _, isNil := obj.(*value.Nil); isNil {
		return &value.Nil{}, nil
	}
	s, ok := obj.(*value.Struct)
	if !ok {
		return nil, newError(KindTypeMismatch, expr.Span.Start, "field access target is not a struct")
	}
	if v, ok := s.Fields[expr.Field]; ok {
		return v, nil
	}
	return &value.Nil{}, nil
}

func (it *Interp) evalStructDef(expr *ast.Expr, env *value.Env) (value.Value, error) {
	def := &value.StructDef{Name: expr.TypeName, Methods: map[string]*value.Closure{}}
	for _, f := range expr.Fields {
		def.Fields = append(def.Fields, f.Name)
	}
	for i := range expr.TupleTypes {
		def.Fields = append(def.Fields, intFieldName(i))
	}
	env.Bind(expr.TypeName, def)
	return def, nil
}

func intFieldName(i int) string {
	const digits = "0123456789"
	if i < 10 {
		return string(digits[i])
	}
	return "f" + string(rune('0'+i))
}

func (it *Interp) evalObjectLiteral(expr *ast.Expr, env *value.Env) (value.Value, error) {
	fields := map[string]value.Value{}
	var defName string
	var order []string
	for _, f := range expr.ObjFields {
		if f.Spread {
			base, err := it.eval(f.Value, env)
			if err != nil {
				return nil, err
			}
			bs, ok := base.(*value.Struct)
			if !ok {
				return nil, newError(KindTypeMismatch, f.Span.Start, "spread target in object literal must be a struct")
			}
			defName = bs.Def.Name
			for _, name := range bs.Def.Fields {
				if _, seen := fields[name]; !seen {
					order = append(order, name)
				}
				fields[name] = bs.Fields[name]
			}
			continue
		}
		v, err := it.eval(f.Value, env)
		if err != nil {
			return nil, err
		}
		if _, seen := fields[f.Name]; !seen {
			order = append(order, f.Name)
		}
		fields[f.Name] = v
	}
	def := &value.StructDef{Name: defName, Fields: order, Methods: map[string]*value.Closure{}}
	if defName != "" {
		if existing, ok := env.Get(defName); ok {
			if ed, ok := existing.(*value.StructDef); ok {
				def = ed
			}
		}
	}
	return &value.Struct{Def: def, Fields: fields}, nil
}

func (it *Interp) evalEnumDef(expr *ast.Expr, env *value.Env) (value.Value, error) {
	def := &value.StructDef{Name: expr.TypeName, Methods: map[string]*value.Closure{}}
	env.Bind(expr.TypeName, def)
	for _, variant := range expr.EnumVariant {
		v := variant
		if len(v.Fields) == 0 {
			env.Bind(expr.TypeName+"::"+v.Name, &value.EnumVariant{EnumName: expr.TypeName, VariantName: v.Name})
			continue
		}
		ctor := &value.Builtin{
			Name: expr.TypeName + "::" + v.Name,
			Fn: func(args []value.Value) (value.Value, error) {
				return &value.EnumVariant{EnumName: expr.TypeName, VariantName: v.Name, Payload: args}, nil
			},
		}
		env.Bind(expr.TypeName+"::"+v.Name, ctor)
	}
	return def, nil
}

func (it *Interp) evalActorDef(expr *ast.Expr, env *value.Env) (value.Value, error) {
	// Parsed fully, evaluated as a struct-with-methods per spec.md §9's
	// open-question resolution: no mailbox/scheduler in the core.
	def := &value.StructDef{Name: expr.ActorName, Methods: map[string]*value.Closure{}}
	for _, f := range expr.StateField {
		def.Fields = append(def.Fields, f.Name)
	}
	for _, h := range expr.Handlers {
		handler := h
		cl := &value.Closure{Name: handler.MessageType, Params: handler.Params, Body: handler.Body, Env: env.Snapshot()}
		def.Methods[handler.MessageType] = cl
	}
	env.Bind(expr.ActorName, def)
	return def, nil
}

func (it *Interp) evalImpl(expr *ast.Expr, env *value.Env) (value.Value, error) {
	existing, ok := env.Get(expr.ImplType)
	def, isDef := existing.(*value.StructDef)
	if !ok || !isDef {
		def = &value.StructDef{Name: expr.ImplType, Methods: map[string]*value.Closure{}}
		env.Bind(expr.ImplType, def)
	}
	for _, m := range expr.ImplMethods {
		cl := &value.Closure{Name: m.FuncName, Params: m.Params, Body: m.Body, Env: env.Snapshot()}
		def.Methods[m.FuncName] = cl
	}
	return def, nil
}
