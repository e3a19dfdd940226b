package unionfind

import (
	"fmt"
	"testing"
)

// BenchmarkUnion_Chain benchmarks unioning n singleton classes into one,
// mirroring the access pattern of merge's propagation loop on a long
// equivalence class.
func BenchmarkUnion_Chain(b *testing.B) {
	sizes := []int{10, 100, 1000, 10000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%d_keys", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				uf := New(size)
				toks := newN(uf, size)
				b.StartTimer()

				for j := 1; j < size; j++ {
					uf.Union(toks[0], toks[j])
				}
			}
		})
	}
}

// BenchmarkUnionedKeys benchmarks class enumeration after fully merging a
// class of the given size.
func BenchmarkUnionedKeys(b *testing.B) {
	sizes := []int{10, 100, 1000, 10000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%d_keys", size), func(b *testing.B) {
			uf := New(size)
			toks := newN(uf, size)
			for j := 1; j < size; j++ {
				uf.Union(toks[0], toks[j])
			}

			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = uf.UnionedKeys(toks[0])
			}
		})
	}
}
