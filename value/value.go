// Package value defines the runtime object model the interpreter
// produces and consumes (spec.md §4.4): every Ruchy value at runtime
// implements Value, the same three-method shape as go-mix's
// GoMixObject (GetType/ToString/ToObject), renamed to this domain's
// Type/String/Inspect vocabulary.
package value

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/ruchy/ast"
)

// Type identifies a Value's runtime type, the same string-constant
// idiom as go-mix's GoMixType.
type Type string

const (
	IntType      Type = "int"
	FloatType    Type = "float"
	StringType   Type = "string"
	BoolType     Type = "bool"
	UnitType     Type = "unit"
	NilType      Type = "nil"
	ListType     Type = "list"
	TupleType    Type = "tuple"
	RangeType    Type = "range"
	StructType   Type = "struct"
	EnumType     Type = "enum"
	ClosureType  Type = "closure"
	BuiltinType  Type = "builtin"
)

// Value is the core interface every runtime object implements: type
// identification, a display form (String), and a debug-inspection
// form (Inspect), mirroring go-mix's GoMixObject three-method shape.
type Value interface {
	Type() Type
	String() string
	Inspect() string
}

// Int is a 64-bit signed integer value.
type Int struct{ Val int64 }

func (i *Int) Type() Type      { return IntType }
func (i *Int) String() string  { return fmt.Sprintf("%d", i.Val) }
func (i *Int) Inspect() string { return fmt.Sprintf("<int(%d)>", i.Val) }

// Float is a 64-bit floating-point value.
type Float struct{ Val float64 }

func (f *Float) Type() Type      { return FloatType }
func (f *Float) String() string  { return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%f", f.Val), "0"), ".") }
func (f *Float) Inspect() string { return fmt.Sprintf("<float(%s)>", f.String()) }

// Str is a string value.
type Str struct{ Val string }

func (s *Str) Type() Type      { return StringType }
func (s *Str) String() string  { return s.Val }
func (s *Str) Inspect() string { return fmt.Sprintf("<string(%s)>", s.Val) }

// Bool is a boolean value.
type Bool struct{ Val bool }

func (b *Bool) Type() Type      { return BoolType }
func (b *Bool) String() string  { return fmt.Sprintf("%t", b.Val) }
func (b *Bool) Inspect() string { return fmt.Sprintf("<bool(%t)>", b.Val) }

// Unit is Ruchy's `()` value — the result of statements and discarded
// block expressions (spec.md §3's "everything is an expression").
type Unit struct{}

func (u *Unit) Type() Type      { return UnitType }
func (u *Unit) String() string  { return "()" }
func (u *Unit) Inspect() string { return "<unit()>" }

// Nil is Ruchy's nil/None value.
type Nil struct{}

func (n *Nil) Type() Type      { return NilType }
func (n *Nil) String() string  { return "nil" }
func (n *Nil) Inspect() string { return "<nil()>" }

// List is a mutable, heterogeneous sequence value.
type List struct{ Elements []Value }

func (l *List) Type() Type { return ListType }
func (l *List) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range l.Elements {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.String())
	}
	b.WriteByte(']')
	return b.String()
}
func (l *List) Inspect() string {
	var b strings.Builder
	b.WriteString("<list([")
	for i, e := range l.Elements {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.Inspect())
	}
	b.WriteString("])>")
	return b.String()
}

// Tuple is an immutable, heterogeneous fixed-size sequence value.
type Tuple struct{ Elements []Value }

func (t *Tuple) Type() Type { return TupleType }
func (t *Tuple) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, e := range t.Elements {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.String())
	}
	if len(t.Elements) == 1 {
		b.WriteByte(',')
	}
	b.WriteByte(')')
	return b.String()
}
func (t *Tuple) Inspect() string {
	var b strings.Builder
	b.WriteString("<tuple(")
	for i, e := range t.Elements {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.Inspect())
	}
	b.WriteString(")>")
	return b.String()
}

// Range is an integer range, inclusive or exclusive of End, used for
// `for x in a..b` iteration (spec.md §4.2).
type Range struct {
	Start, End int64
	Inclusive  bool
}

func (r *Range) Type() Type { return RangeType }
func (r *Range) String() string {
	op := ".."
	if r.Inclusive {
		op = "..="
	}
	return fmt.Sprintf("%d%s%d", r.Start, op, r.End)
}
func (r *Range) Inspect() string { return fmt.Sprintf("<range(%s)>", r.String()) }

// StructDef is a struct/class type definition: its field order (for
// tuple structs and default display) and its inherent methods.
type StructDef struct {
	Name    string
	Fields  []string
	Methods map[string]*Closure
}

func (d *StructDef) Type() Type      { return StructType }
func (d *StructDef) String() string  { return fmt.Sprintf("struct(%s)", d.Name) }
func (d *StructDef) Inspect() string { return fmt.Sprintf("<struct(%s)>", d.Name) }

// Struct is an instance of a StructDef: field values keyed by name.
type Struct struct {
	Def    *StructDef
	Fields map[string]Value
}

func (s *Struct) Type() Type     { return StructType }
func (s *Struct) String() string { return fmt.Sprintf("%s { ... }", s.Def.Name) }
func (s *Struct) Inspect() string {
	var b strings.Builder
	fmt.Fprintf(&b, "<%s { ", s.Def.Name)
	for i, name := range s.Def.Fields {
		if i > 0 {
			b.WriteString(", ")
		}
		if v, ok := s.Fields[name]; ok {
			fmt.Fprintf(&b, "%s: %s", name, v.Inspect())
		}
	}
	b.WriteString(" }>")
	return b.String()
}

// EnumVariant is a value of a declared enum type, optionally carrying
// tuple-style payload values (e.g. `Option::Some(5)`).
type EnumVariant struct {
	EnumName    string
	VariantName string
	Payload     []Value
}

func (e *EnumVariant) Type() Type { return EnumType }
func (e *EnumVariant) String() string {
	if len(e.Payload) == 0 {
		return e.VariantName
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s(", e.VariantName)
	for i, p := range e.Payload {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteByte(')')
	return b.String()
}
func (e *EnumVariant) Inspect() string {
	return fmt.Sprintf("<%s::%s>", e.EnumName, e.String())
}

// Closure is a user-defined function or lambda, capturing the
// environment it was defined in (spec.md §4.4's closure semantics),
// the same Name/Params/Body/captured-scope shape as go-mix's
// function.Function, generalized to Ruchy's ast.Param/ast.Expr.
type Closure struct {
	Name   string
	Params []ast.Param
	Body   *ast.Expr
	Env    *Env
}

func (c *Closure) Type() Type     { return ClosureType }
func (c *Closure) String() string { return fmt.Sprintf("fn(%s)", c.Name) }
func (c *Closure) Inspect() string {
	var b strings.Builder
	fmt.Fprintf(&b, "<fn[%s(", c.Name)
	for i, p := range c.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Name)
	}
	b.WriteString(")]>")
	return b.String()
}

// Builtin wraps a Go-implemented built-in function (e.g. len, print)
// so it can be stored and called through the same Value interface as
// user closures.
type Builtin struct {
	Name string
	Fn   func(args []Value) (Value, error)
}

func (b *Builtin) Type() Type      { return BuiltinType }
func (b *Builtin) String() string  { return fmt.Sprintf("builtin(%s)", b.Name) }
func (b *Builtin) Inspect() string { return fmt.Sprintf("<builtin(%s)>", b.Name) }

