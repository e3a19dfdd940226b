// Package ccengine implements an incremental congruence closure engine
// over terms with structural successors.
//
// # Overview
//
// An Engine maintains an equivalence relation over a growing set of terms
// such that whenever two terms are declared equal and their corresponding
// successors are already equal, the engine automatically infers and
// records the induced equalities on any parent terms. This is the classical
// congruence-closure problem used by theorem provers, type inference
// engines, and program-analysis tools to reason about uninterpreted
// function symbols.
//
// The engine does not normalize terms, does not implement E-matching, does
// not provide a solver interface, does not persist state, and does not
// parse or construct term representations — the caller supplies the term
// type by implementing Key.
//
// # Usage
//
//	type Term struct {
//	    Label string
//	    Kids  []Term
//	}
//
//	func (t Term) ShallowEqual(other Term) bool { return t.Label == other.Label }
//	func (t Term) Successors() []Term           { return t.Kids }
//
//	e := ccengine.New[Term]()
//	a := Term{Label: "a"}
//	b := Term{Label: "b"}
//	fa := Term{Label: "f", Kids: []Term{a}}
//	fb := Term{Label: "f", Kids: []Term{b}}
//
//	e.Merge(a, b)
//	e.Merged(fa, fb) // true
//
// # Concurrency
//
// An Engine is not safe for concurrent use. All public operations mutate
// shared state and must be serialized by the caller.
package ccengine
