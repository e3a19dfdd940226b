package termgraph

import "github.com/congruence-lab/ccengine/internal/token"

type node[K any] struct {
	key    K
	succs  []token.Token
	preds  []token.Token
}

// Graph is a directed, append-only graph over dense token indices. The zero
// value is not usable; construct with New.
type Graph[K any] struct {
	nodes []node[K]
}

// New creates an empty Graph. expectedTerms is a capacity hint for the
// backing slice and has no effect on behavior.
func New[K any](expectedTerms int) *Graph[K] {
	if expectedTerms < 0 {
		expectedTerms = 0
	}
	return &Graph[K]{
		nodes: make([]node[K], 0, expectedTerms),
	}
}

// AddNode appends a node carrying key and returns its dense index, which is
// the next token in sequence.
func (g *Graph[K]) AddNode(key K) token.Token {
	tok := token.Token(len(g.nodes))
	g.nodes = append(g.nodes, node[K]{key: key})
	return tok
}

func (g *Graph[K]) valid(n token.Token) bool {
	return n >= 0 && int(n) < len(g.nodes)
}

// AddEdge records a directed edge from parent to successor. Duplicate
// edges between the same pair are permitted; the closure algorithm does
// not depend on edge-set minimality.
func (g *Graph[K]) AddEdge(parent, successor token.Token) {
	if !g.valid(parent) || !g.valid(successor) {
		panic(ErrUnknownNode)
	}
	g.nodes[parent].succs = append(g.nodes[parent].succs, successor)
	g.nodes[successor].preds = append(g.nodes[successor].preds, parent)
}

// SuccessorNodes returns the immediate successors of n in insertion order.
func (g *Graph[K]) SuccessorNodes(n token.Token) []token.Token {
	if !g.valid(n) {
		panic(ErrUnknownNode)
	}
	return g.nodes[n].succs
}

// PredecessorNodes returns every node with an outgoing edge to n. The
// returned slice is a snapshot as of the call; order is unspecified.
func (g *Graph[K]) PredecessorNodes(n token.Token) []token.Token {
	if !g.valid(n) {
		panic(ErrUnknownNode)
	}
	preds := g.nodes[n].preds
	out := make([]token.Token, len(preds))
	copy(out, preds)
	return out
}

// NodeData returns the key stored at n.
func (g *Graph[K]) NodeData(n token.Token) K {
	if !g.valid(n) {
		panic(ErrUnknownNode)
	}
	return g.nodes[n].key
}

// Len returns the number of nodes in the graph.
func (g *Graph[K]) Len() int {
	return len(g.nodes)
}

// EdgeCount returns the total number of directed edges installed, counting
// duplicates.
func (g *Graph[K]) EdgeCount() int {
	count := 0
	for i := range g.nodes {
		count += len(g.nodes[i].succs)
	}
	return count
}
