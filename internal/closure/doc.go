// Package closure implements the incremental congruence-closure protocol,
// layered over an interner, a term graph, and a union-find table.
//
// # Overview
//
// Closure does not own any of its three substructures; it holds pointers
// to them and keeps no state of its own. ccengine.Engine constructs one
// when the Engine is created and reuses it for every public call.
//
// The five operations below — Add, Merge, MaybeMerge, Congruent, AllPreds —
// are infallible on valid input and never return an error. The only fatal
// condition (the index-coincidence assertion) is checked by the caller at
// the point it allocates a token, not by this package.
package closure
