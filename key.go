package ccengine

// Key is the contract a caller's term type must satisfy to be managed by an
// Engine. It mirrors internal/closure.Term structurally (so internal/closure
// never has to import this package) but is declared independently here as
// the public surface.
//
// ShallowEqual compares only the outermost constructor of the term — the
// label of a function symbol, say — never the successors. Two terms with
// different successors can still be ShallowEqual; congruence of the
// successors is established separately by the engine via their tokens.
//
// Successors returns the term's immediate subterms in a fixed, deterministic
// order. The order is positionally significant: f(a, b) and f(b, a) are
// never congruent unless a and b are themselves equivalent.
type Key[T any] interface {
	ShallowEqual(other T) bool
	Successors() []T
}
