// Package interner provides the injective key-to-token mapping used by the
// congruence closure engine.
//
// # Overview
//
// An Interner assigns each distinct key a stable, dense Token the first time
// it is seen, and returns the existing token on every subsequent lookup of
// an equal key. It has no knowledge of the term graph or the union-find
// table; callers that also need to keep a graph node and a union-find slot
// in lockstep with the token (as ccengine.Engine does) are responsible for
// allocating those in the same call that allocates the token and for
// asserting the three indices agree.
//
// # Usage
//
//	in := interner.New[string](0)
//	isNew, tok := in.Intern("f(a)")
package interner
