package transpiler

import (
	"fmt"

	"github.com/akashmaji946/ruchy/ast"
)

// Transpiler lowers a shared AST into target (Rust) source tokens.
// Grounded on original_source's `Transpiler` struct (bindings.rs,
// result_type.rs): a `mutable_vars` set threaded through let-lowering
// so nested closures and re-bound names see prior mutability
// decisions, here kept as Go map state on the struct itself since this
// package has no borrow-checker to satisfy.
type Transpiler struct {
	mutableVars map[string]bool
}

// New returns a Transpiler ready to lower a program.
func New() *Transpiler {
	return &Transpiler{mutableVars: map[string]bool{}}
}

// Transpile is the package's public operation (spec.md §4.5):
// transpile(AST) -> TargetTokenStream.
func Transpile(root *ast.Expr) (*TokenStream, error) {
	return New().transpileExpr(root)
}

func (t *Transpiler) transpileExpr(e *ast.Expr) (*TokenStream, error) {
	if e == nil {
		return New(), nil
	}
	switch e.Kind {
	case ast.KindLiteral:
		return t.transpileLiteral(e)
	case ast.KindIdentifier:
		return New(SafeIdent(e.Name)), nil
	case ast.KindQualifiedName:
		return New(joinParts(e.Parts, "::")), nil
	case ast.KindInterpolation:
		return t.transpileInterpolation(e)
	case ast.KindBinary:
		return t.transpileBinary(e)
	case ast.KindUnary:
		return t.transpileUnary(e)
	case ast.KindAssign:
		return t.transpileAssign(e)
	case ast.KindCompoundAssign:
		return t.transpileCompoundAssign(e)
	case ast.KindPreIncrement, ast.KindPostIncrement, ast.KindPreDecrement, ast.KindPostDecrement:
		return t.transpileIncDec(e)
	case ast.KindLet:
		return t.transpileLet(e.LetName, e.Value, e.Body, e.IsMutable, e.LetType)
	case ast.KindLetPattern:
		return t.transpileLetPattern(e.LetPattern, e.Value, e.Body)
	case ast.KindBlock:
		return t.transpileBlock(e)
	case ast.KindIf:
		return t.transpileIf(e)
	case ast.KindMatch:
		return t.transpileMatch(e)
	case ast.KindWhile:
		return t.transpileWhile(e)
	case ast.KindFor:
		return t.transpileFor(e)
	case ast.KindLoop:
		return t.transpileLoop(e)
	case ast.KindBreak:
		return t.transpileBreak(e)
	case ast.KindContinue:
		return t.transpileContinue(e)
	case ast.KindReturn:
		return t.transpileReturn(e)
	case ast.KindCall:
		return t.transpileCall(e)
	case ast.KindMethodCall:
		return t.transpileMethodCall(e)
	case ast.KindLambda:
		return t.transpileLambda(e)
	case ast.KindFunction:
		return t.transpileFunction(e)
	case ast.KindList:
		return t.transpileList(e)
	case ast.KindTuple:
		return t.transpileTuple(e)
	case ast.KindRange:
		return t.transpileRange(e)
	case ast.KindIndexAccess:
		return t.transpileIndex(e)
	case ast.KindSlice:
		return t.transpileSlice(e)
	case ast.KindFieldAccess, ast.KindOptionalFieldAccess:
		return t.transpileFieldAccess(e)
	case ast.KindStruct, ast.KindClass:
		return t.transpileStructDef(e)
	case ast.KindTupleStruct:
		return t.transpileTupleStructDef(e)
	case ast.KindObjectLiteral:
		return t.transpileObjectLiteral(e)
	case ast.KindEnum:
		return t.transpileEnumDef(e)
	case ast.KindActor:
		return t.transpileActorDef(e)
	case ast.KindMacroInvocation:
		return t.transpileMacro(e)
	case ast.KindUse:
		return New("use", joinParts(e.UsePath, "::"), ";"), nil
	case ast.KindImpl:
		return t.transpileImpl(e)
	default:
		return nil, fmt.Errorf("transpiler: unhandled node kind %s", e.Kind)
	}
}

func joinParts(parts []string, sep string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += sep
		}
		out += p
	}
	return out
}

func (t *Transpiler) transpileLiteral(e *ast.Expr) (*TokenStream, error) {
	switch e.LitKind {
	case ast.LitInt:
		if e.IntSuffix != "" {
			return New(fmt.Sprintf("%d%s", e.IntVal, e.IntSuffix)), nil
		}
		return New(fmt.Sprintf("%d", e.IntVal)), nil
	case ast.LitFloat:
		return New(fmt.Sprintf("%gf64", e.FloatVal)), nil
	case ast.LitString:
		return New(fmt.Sprintf("%q", e.StrVal), ".to_string()"), nil
	case ast.LitChar:
		return New(fmt.Sprintf("'%c'", e.CharVal)), nil
	case ast.LitBool:
		if e.BoolVal {
			return New("true"), nil
		}
		return New("false"), nil
	case ast.LitNil:
		return New("None"), nil
	default: // LitUnit
		return New("()"), nil
	}
}
