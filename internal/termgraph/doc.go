// Package termgraph implements an append-only directed term graph: nodes
// carry an interned key, and edges point from a parent term to each of its
// immediate successors in insertion order.
//
// # Overview
//
// A Graph is never mutated except by appending a node or an edge: nodes are
// never removed, edges are never removed, and a node's successor list never
// changes once installed. This append-only discipline is what lets the
// closure algorithm in internal/closure snapshot a node's predecessor set
// before installing a new edge and trust that nothing it already read can
// be invalidated out from under it.
//
// Successor order is positionally significant (congruent comparisons are
// positional, not set-based); predecessor order is unspecified but the set
// returned is always complete as of the call.
package termgraph
