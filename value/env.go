package value

// Env is a lexical environment frame with parent chaining, the same
// shape as go-mix's scope.Scope (Variables map + Parent pointer),
// generalized to Ruchy's single Value interface — Ruchy's `let` infers
// mutability from usage (analysis.IsVariableMutated) rather than
// locking a declared type per binding, so the teacher's Consts/LetVars/
// LetTypes bookkeeping has no Ruchy equivalent and is dropped.
type Env struct {
	vars   map[string]Value
	parent *Env
}

// NewEnv creates a new environment frame chained to parent (nil for
// the global/root environment).
func NewEnv(parent *Env) *Env {
	return &Env{vars: make(map[string]Value), parent: parent}
}

// Get looks up name in this frame and, if absent, each enclosing
// frame in turn, mirroring Scope.LookUp's walk-to-root search.
func (e *Env) Get(name string) (Value, bool) {
	if v, ok := e.vars[name]; ok {
		return v, true
	}
	if e.parent != nil {
		return e.parent.Get(name)
	}
	return nil, false
}

// Bind creates or overwrites a binding in this frame only, the
// current-scope-only semantics of Scope.Bind (used for `let` and
// function parameter binding).
func (e *Env) Bind(name string, v Value) {
	e.vars[name] = v
}

// Assign updates name in the frame where it was originally bound,
// walking up the chain like Scope.Assign, so closures can mutate
// variables captured from an enclosing scope. Returns false if name
// is unbound anywhere in the chain.
func (e *Env) Assign(name string, v Value) bool {
	if _, ok := e.vars[name]; ok {
		e.vars[name] = v
		return true
	}
	if e.parent != nil {
		return e.parent.Assign(name, v)
	}
	return false
}

// Snapshot returns an independent copy of this frame's own bindings
// (not the parent chain, which is shared) for closure capture at
// function-definition time — the same shallow-copy contract as
// Scope.Copy.
func (e *Env) Snapshot() *Env {
	cp := &Env{vars: make(map[string]Value, len(e.vars)), parent: e.parent}
	for k, v := range e.vars {
		cp.vars[k] = v
	}
	return cp
}

// Child creates a new frame nested under e, for block/loop/function
// scoping.
func (e *Env) Child() *Env {
	return NewEnv(e)
}
