package closure

import (
	"fmt"
	"testing"
)

// chain builds a term `f(f(f(...leaf...)))` of the given depth, the shape
// that exercises both the recursive and iterative Add paths most heavily.
func chain(depth int) term {
	t := leaf("leaf")
	for i := 0; i < depth; i++ {
		t = node("f", t)
	}
	return t
}

func BenchmarkAdd_Chain(b *testing.B) {
	depths := []int{10, 100, 1000}
	for _, depth := range depths {
		b.Run(fmt.Sprintf("%d_deep", depth), func(b *testing.B) {
			term := chain(depth)
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				h := newHarness(b)
				h.closure.Add(term)
			}
		})
	}
}

func BenchmarkAddIterative_Chain(b *testing.B) {
	depths := []int{10, 100, 1000}
	for _, depth := range depths {
		b.Run(fmt.Sprintf("%d_deep", depth), func(b *testing.B) {
			term := chain(depth)
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				h := newHarness(b)
				h.closure.AddIterative(term)
			}
		})
	}
}

// BenchmarkMerge_FanIn merges two classes each with n parent terms sharing
// a successor, the shape that stresses AllPreds / MaybeMerge the hardest.
func BenchmarkMerge_FanIn(b *testing.B) {
	sizes := []int{10, 100, 1000}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("%d_parents", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				h := newHarness(b)
				x := h.add(leaf("x"))
				y := h.add(leaf("y"))
				for j := 0; j < size; j++ {
					h.add(node(fmt.Sprintf("p%d", j), leaf("x")))
					h.add(node(fmt.Sprintf("p%d", j), leaf("y")))
				}
				b.StartTimer()

				h.merge(x, y)
			}
		})
	}
}
