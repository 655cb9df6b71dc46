package transpiler

// rustReserved is the target (Rust) keyword set. Grounded on
// original_source/src/backend/transpiler/bindings.rs's
// `is_rust_reserved_keyword`/`r#name` raw-identifier escape — this is
// lexer/token.go's `Keywords` map idiom run in reverse: there we map a
// SOURCE keyword string to a token kind, here we map a Ruchy identifier
// that happens to collide with a TARGET keyword to its safe spelling.
var rustReserved = map[string]bool{
	"as": true, "break": true, "const": true, "continue": true, "crate": true,
	"else": true, "enum": true, "extern": true, "false": true, "fn": true,
	"for": true, "if": true, "impl": true, "in": true, "let": true,
	"loop": true, "match": true, "mod": true, "move": true, "mut": true,
	"pub": true, "ref": true, "return": true, "self": true, "Self": true,
	"static": true, "struct": true, "super": true, "trait": true, "true": true,
	"type": true, "unsafe": true, "use": true, "where": true, "while": true,
	"async": true, "await": true, "dyn": true,
}

// IsReservedKeyword reports whether name collides with a target-
// language keyword and therefore needs raw-identifier escaping.
func IsReservedKeyword(name string) bool {
	return rustReserved[name]
}

// SafeIdent returns name unchanged, or prefixed with the target's
// raw-identifier marker (`r#`) when it collides with a keyword
// (spec.md §4.5 "Name safety").
func SafeIdent(name string) string {
	if IsReservedKeyword(name) {
		return "r#" + name
	}
	return name
}
