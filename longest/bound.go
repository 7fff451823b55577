package longest

import "sort"

// boundTable precomputes prefix sums over all edge weights sorted descending.
// prefix[i] is the maximum total weight achievable by traversing the i
// heaviest edges anywhere in the graph. That is an over-approximation: it
// ignores whether those edges can actually be chained into a simple path
// from the current vertex. That looseness is the point: the bound may never
// underestimate the true achievable remainder, and this one cannot.
//
// With negative weights in the graph the table still follows the historical
// contract (prefix at exactly min(hops, totalEdges)); admissibility in the
// strict sense assumes the usual non-negative-weight inputs.
type boundTable struct {
	prefix []float64 // prefix[0] == 0; len == totalEdges+1
}

// newBoundTable copies weights, sorts the copy descending and accumulates
// prefix sums. The input slice is not modified.
//
// Complexity: O(E log E) time, O(E) space.
func newBoundTable(weights []float64) boundTable {
	sorted := make([]float64, len(weights))
	copy(sorted, weights)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))

	prefix := make([]float64, len(sorted)+1)
	for i, w := range sorted {
		prefix[i+1] = prefix[i] + w
	}

	return boundTable{prefix: prefix}
}

// upperBound returns the optimistic cap on total weight gained by up to
// hops further edge traversals: the prefix sum at min(hops, totalEdges),
// or 0 when hops <= 0.
//
// Complexity: O(1).
func (b boundTable) upperBound(hops int) float64 {
	if hops <= 0 {
		return 0
	}
	if last := len(b.prefix) - 1; hops > last {
		hops = last
	}

	return b.prefix[hops]
}
