// Package unionfind implements a disjoint-set table: one slot per token,
// union-by-rank with path compression, and full equivalence-class
// enumeration via UnionedKeys.
//
// # Overview
//
// The payload of every slot is unit — this package, like the engine it
// backs, never attaches user data to a class. Find uses an iterative,
// two-pass path compression (collect the path to the root, then relink it)
// rather than the textbook recursive formulation, the same technique
// Lengauer-Tarjan dominator computation uses to avoid stack overflow on
// long ancestor chains (see compressPath32 in the hprof dominator analysis
// this package is partly grounded on).
//
// Class enumeration (UnionedKeys) does not walk the union-find tree at all:
// every token also belongs to a circular singly-linked list threaded
// through the members of its class, independent of the tree's parent
// pointers. Union splices two classes' lists together in O(1) by swapping
// the next pointers of the two tokens passed to Union (a textbook trick for
// maintaining enumerable equivalence classes alongside a disjoint-set
// forest). Enumeration then walks that list once, in O(class size).
package unionfind
