// Package ast is the algebraic data model shared by the parser,
// the mutation/usage analysis passes, the interpreter, and the
// transpiler (spec §3/§9: "one AST, many traversals").
package ast

// Span is re-exported from lexer so ast does not import lexer back
// (avoids an import cycle: lexer -> ast would be needed for token
// spans, ast -> lexer would be needed for this type). Kept as a
// plain struct mirroring lexer.Span exactly.
type Span struct {
	Start, End int
	Line, Col  int
}

// Union returns the smallest span covering both s and other, per
// spec.md §3's "enclosing nodes' spans cover their children's".
func (s Span) Union(other Span) Span {
	start, end := s.Start, s.End
	if other.Start < start {
		start = other.Start
	}
	if other.End > end {
		end = other.End
	}
	return Span{Start: start, End: end, Line: s.Line, Col: s.Col}
}

// Kind discriminates an Expr node. A tagged struct rather than a
// visitor hierarchy (see DESIGN.md for why).
type Kind int

const (
	KindLiteral Kind = iota
	KindIdentifier
	KindQualifiedName
	KindInterpolation
	KindBinary
	KindUnary
	KindAssign
	KindCompoundAssign
	KindPreIncrement
	KindPostIncrement
	KindPreDecrement
	KindPostDecrement
	KindLet
	KindLetPattern
	KindBlock
	KindIf
	KindMatch
	KindWhile
	KindFor
	KindLoop
	KindBreak
	KindContinue
	KindReturn
	KindCall
	KindMethodCall
	KindLambda
	KindFunction
	KindList
	KindTuple
	KindRange
	KindIndexAccess
	KindSlice
	KindFieldAccess
	KindOptionalFieldAccess
	KindStruct
	KindTupleStruct
	KindClass
	KindObjectLiteral
	KindEnum
	KindActor
	KindMacroInvocation
	KindDataFrame
	KindUse
	KindImpl
)

func (k Kind) String() string {
	names := [...]string{
		"Literal", "Identifier", "QualifiedName", "Interpolation",
		"Binary", "Unary", "Assign", "CompoundAssign",
		"PreIncrement", "PostIncrement", "PreDecrement", "PostDecrement",
		"Let", "LetPattern", "Block", "If", "Match", "While", "For", "Loop",
		"Break", "Continue", "Return", "Call", "MethodCall", "Lambda",
		"Function", "List", "Tuple", "Range", "IndexAccess", "Slice",
		"FieldAccess", "OptionalFieldAccess", "Struct", "TupleStruct",
		"Class", "ObjectLiteral", "Enum", "Actor", "MacroInvocation",
		"DataFrame", "Use", "Impl",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// LiteralKind distinguishes the Literal payload.
type LiteralKind int

const (
	LitInt LiteralKind = iota
	LitFloat
	LitString
	LitChar
	LitBool
	LitUnit
	LitNil
)

// Attribute is a parsed `@decorator(args...)` annotation.
type Attribute struct {
	Name string
	Args []*Expr
	Span Span
}

// StringPart is one piece of an f-string: plain text, a bare
// sub-expression, or a sub-expression with a format specifier.
type StringPart struct {
	Text       string // valid when Expr == nil
	Expr       *Expr  // valid when non-nil
	FormatSpec string // valid when Expr != nil and a format spec was given
}

// MatchArm is one `pattern [if guard] => body` branch.
type MatchArm struct {
	Pattern *Pattern
	Guard   *Expr
	Body    *Expr
	Span    Span
}

// Param is a function/lambda parameter: a name, an optional surface
// type annotation, and an optional default value.
type Param struct {
	Name    string
	Type    *Type
	Default *Expr
	Span    Span
}

// Field is a struct/class field declaration.
type Field struct {
	Name string
	Type *Type
	Span Span
}

// ReceiveHandler is one `receive M(p: T) -> R { ... }` clause of an actor.
type ReceiveHandler struct {
	MessageType string
	Params      []Param
	ReturnType  *Type
	Body        *Expr
	Span        Span
}

// Expr is every node in the Ruchy AST: everything is an expression
// (spec.md §3), including blocks, let-bindings, and definitions.
type Expr struct {
	Kind Kind
	Span Span

	Attributes      []Attribute
	LeadingComments []string
	TrailingComment string

	// Literal
	LitKind   LiteralKind
	IntVal    int64
	IntSuffix string
	FloatVal  float64
	StrVal    string
	CharVal   rune
	BoolVal   bool

	// Identifier / QualifiedName
	Name  string
	Parts []string // QualifiedName segments

	// Interpolation
	Parts2 []StringPart

	// Binary / Unary / Assign / CompoundAssign
	Op    string
	Left  *Expr
	Right *Expr
	Arg   *Expr // Unary operand, PreInc/Dec and PostInc/Dec target, Return value

	// Let / LetPattern
	LetName    string
	LetPattern *Pattern
	IsMutable  bool
	LetType    *Type
	Value      *Expr
	Body       *Expr
	ElseBlock  *Expr

	// Block
	Exprs []*Expr

	// If
	Cond *Expr
	Then *Expr
	Else *Expr

	// Match
	Scrutinee *Expr
	Arms      []MatchArm

	// While / For / Loop / Break / Continue
	Label     string
	LoopVar   string
	LoopPat   *Pattern
	Iter      *Expr
	BreakVal  *Expr

	// Call / MethodCall
	Callee   *Expr
	Args     []*Expr
	Receiver *Expr
	Method   string

	// Lambda / Function
	Params     []Param
	ReturnType *Type
	FuncName   string

	// List / Tuple
	Elements []*Expr

	// Range
	RangeStart *Expr
	RangeEnd   *Expr
	Inclusive  bool

	// IndexAccess / Slice / FieldAccess / OptionalFieldAccess
	Object    *Expr
	Index     *Expr
	SliceLow  *Expr
	SliceHigh *Expr
	Field     string

	// Struct / TupleStruct / Class / Enum
	TypeName    string
	Fields      []Field
	TupleTypes  []*Type
	Derives     []string
	EnumVariant []EnumVariant

	// ObjectLiteral
	ObjFields []ObjectField

	// Actor
	ActorName  string
	StateField []Field
	Handlers   []ReceiveHandler

	// MacroInvocation
	MacroName string
	MacroArgs []*Expr

	// Use
	UsePath []string

	// Impl
	ImplType    string
	ImplMethods []*Expr
}

// EnumVariant is one `enum E { A, B(T) }` variant.
type EnumVariant struct {
	Name   string
	Fields []*Type
	Span   Span
}

// ObjectField is one `field: value` or `..spread` entry of an
// object literal (spec.md §9's resolved struct-update-as-spread).
type ObjectField struct {
	Name   string
	Value  *Expr
	Spread bool // true for `..base`
	Span   Span
}
