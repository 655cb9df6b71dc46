// Package analysis implements pure, read-only AST walks shared by
// the interpreter and the transpiler (spec.md §4.3): mutation
// detection and parameter-usage-driven type inference. Neither pass
// ever rewrites the AST.
package analysis

import "github.com/akashmaji946/ruchy/ast"

// IsVariableMutated reports whether expr assigns to, compound-assigns
// to, or pre/post-increments/decrements name. Ported case-for-case
// from original_source's is_variable_mutated (mutation_detection.rs):
// Assign, CompoundAssign, the four Increment/Decrement forms, Block,
// If, While, For, Loop, Match, Let/LetPattern, Function, Lambda,
// Binary, Unary, Call, MethodCall. Only those kinds are descended
// into, and only through the children each case names: a let's bound
// value, an assignment's right-hand side, match guards, a for loop's
// iterable, and every other node kind (lists, tuples, indexing, field
// access, return/break values, macro arguments) are not searched.
func IsVariableMutated(name string, expr *ast.Expr) bool {
	if expr == nil {
		return false
	}
	switch expr.Kind {
	case ast.KindAssign:
		return targetIsName(expr.Left, name)
	case ast.KindCompoundAssign:
		return targetIsName(expr.Left, name)
	case ast.KindPreIncrement, ast.KindPostIncrement, ast.KindPreDecrement, ast.KindPostDecrement:
		return targetIsName(expr.Arg, name)
	case ast.KindBlock:
		for _, e := range expr.Exprs {
			if IsVariableMutated(name, e) {
				return true
			}
		}
		return false
	case ast.KindIf:
		return IsVariableMutated(name, expr.Cond) ||
			IsVariableMutated(name, expr.Then) ||
			(expr.Else != nil && IsVariableMutated(name, expr.Else))
	case ast.KindWhile:
		return IsVariableMutated(name, expr.Cond) || IsVariableMutated(name, expr.Body)
	case ast.KindFor, ast.KindLoop:
		return IsVariableMutated(name, expr.Body)
	case ast.KindMatch:
		if IsVariableMutated(name, expr.Scrutinee) {
			return true
		}
		for _, arm := range expr.Arms {
			if IsVariableMutated(name, arm.Body) {
				return true
			}
		}
		return false
	case ast.KindLet, ast.KindLetPattern:
		return IsVariableMutated(name, expr.Body)
	case ast.KindFunction, ast.KindLambda:
		return IsVariableMutated(name, expr.Body)
	case ast.KindBinary:
		return IsVariableMutated(name, expr.Left) || IsVariableMutated(name, expr.Right)
	case ast.KindUnary:
		return IsVariableMutated(name, expr.Arg)
	case ast.KindCall:
		if IsVariableMutated(name, expr.Callee) {
			return true
		}
		for _, a := range expr.Args {
			if IsVariableMutated(name, a) {
				return true
			}
		}
		return false
	case ast.KindMethodCall:
		if IsVariableMutated(name, expr.Receiver) {
			return true
		}
		for _, a := range expr.Args {
			if IsVariableMutated(name, a) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func targetIsName(target *ast.Expr, name string) bool {
	return target != nil && target.Kind == ast.KindIdentifier && target.Name == name
}
