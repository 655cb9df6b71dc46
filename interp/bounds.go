package interp

import "time"

// Bounds is the interpreter's resource ceiling: a wall-clock deadline,
// a byte allocation ceiling, a call-stack depth ceiling, and a loop
// iteration ceiling (spec.md §7's Bounds taxonomy: "timeout, memory
// limit, stack/recursion depth limit, iteration count limit"). Zero
// values mean "no limit" so tests and the transpiler-facing
// `evaluate(AST, ∅, ∞)` contract can run unbounded.
type Bounds struct {
	Deadline      time.Time
	MaxAllocBytes int64
	MaxCallDepth  int
	MaxIterations int64
}

// Unbounded returns a Bounds with no deadline and no allocation,
// depth, or iteration ceiling.
func Unbounded() Bounds { return Bounds{} }

// DefaultBounds mirrors the ceilings original_source applies to guard
// against runaway recursion/loops even when the caller sets no
// explicit wall-clock deadline — 10000 call frames (well under the Go
// goroutine stack's own limit) and a generous iteration count so
// ordinary programs never trip it.
func DefaultBounds() Bounds {
	return Bounds{MaxCallDepth: 10000, MaxIterations: 100_000_000}
}

// checker tracks a running allocation estimate, call depth, and
// iteration count against Bounds and is consulted at the sampling
// points spec.md §5 names: before each block statement, on entry to
// each loop iteration, and on entry to each function call.
type checker struct {
	bounds     Bounds
	allocated  int64
	callDepth  int
	iterations int64
}

func newChecker(b Bounds) *checker { return &checker{bounds: b} }

// sample checks the deadline and allocation ceiling, returning a
// *Error (Timeout or MemoryLimit) on breach.
func (c *checker) sample(pos int) *Error {
	if !c.bounds.Deadline.IsZero() && time.Now().After(c.bounds.Deadline) {
		return newError(KindTimeout, pos, "execution exceeded deadline")
	}
	if c.bounds.MaxAllocBytes > 0 && c.allocated > c.bounds.MaxAllocBytes {
		return newError(KindMemoryLimit, pos, "allocation ceiling of %d bytes exceeded", c.bounds.MaxAllocBytes)
	}
	return nil
}

// account adds n bytes to the running allocation estimate. The
// interpreter calls this only when it builds a list (16 bytes per
// element); tuples, structs and strings are not counted. It is a
// coarse estimate, not a precise tracker, matching spec.md §5's
// "samples an allocation counter" contract rather than a true GC
// integration.
func (c *checker) account(n int64) {
	c.allocated += n
}

// enterCall increments the call-stack depth counter, raising
// KindRecursionLimit before unbounded Ruchy recursion can overflow the
// Go goroutine stack itself. Call exitCall (typically via defer) on
// the matching return path.
func (c *checker) enterCall(pos int) *Error {
	if c.bounds.MaxCallDepth > 0 && c.callDepth >= c.bounds.MaxCallDepth {
		return newError(KindRecursionLimit, pos, "call stack exceeded depth %d", c.bounds.MaxCallDepth)
	}
	c.callDepth++
	return nil
}

func (c *checker) exitCall() {
	c.callDepth--
}

// tickIteration increments the loop iteration counter, raising
// KindIterationLimit once MaxIterations is exceeded (spec.md §7's
// "iteration count limit", independent of the wall-clock deadline).
func (c *checker) tickIteration(pos int) *Error {
	if c.bounds.MaxIterations > 0 {
		c.iterations++
		if c.iterations > c.bounds.MaxIterations {
			return newError(KindIterationLimit, pos, "loop exceeded %d iterations", c.bounds.MaxIterations)
		}
	}
	return nil
}
