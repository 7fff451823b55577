package longest_test

import (
	"testing"

	"github.com/katalvlaran/longpath/core"
	"github.com/katalvlaran/longpath/longest"
)

// benchGraph builds a complete digraph on n vertices with deterministic
// weights, the densest (worst) shape for simple-path enumeration.
func benchGraph(n int64) *core.Graph {
	g := core.NewGraph()
	for i := int64(0); i < n; i++ {
		for j := int64(0); j < n; j++ {
			if i == j {
				continue
			}
			_ = g.AddEdge(i, j, float64((i*31+j*17)%11)+0.5)
		}
	}

	return g
}

func benchmarkLongest(b *testing.B, n int64, algo longest.BoundAlgo) {
	g := benchGraph(n)
	opts := longest.DefaultOptions()
	opts.Bound = algo

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := longest.Longest(g, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLongest_K7_PrefixSumBound(b *testing.B) { benchmarkLongest(b, 7, longest.PrefixSumBound) }
func BenchmarkLongest_K7_NoBound(b *testing.B)        { benchmarkLongest(b, 7, longest.NoBound) }
func BenchmarkLongest_K9_PrefixSumBound(b *testing.B) { benchmarkLongest(b, 9, longest.PrefixSumBound) }
