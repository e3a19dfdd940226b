package termgraph

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Stringify returns a one-line, human-readable summary of the graph's
// size, with node/edge counts formatted using locale-aware thousands
// separators. It is a debugging aid only; nothing in the closure algorithm
// depends on its output.
func (g *Graph[K]) Stringify() string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("termgraph: %d nodes, %d edges", g.Len(), g.EdgeCount())
}
