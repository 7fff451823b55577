package longest

// Path cost utilities shared by the searcher and its tests. These helpers
// recompute a path's total distance independently of the search (a
// round-trip check) and validate the structural invariants of a returned
// sequence. Side-effect free; only the graph's public read surface is used.

import (
	"fmt"
	"math"

	"github.com/katalvlaran/longpath/core"
)

// roundScale controls final distance stabilization precision (1e-9).
// Avoids tiny FP drifts across platforms without affecting comparisons.
const roundScale = 1e9

// round1e9 stabilizes x to 1e-9 precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// PathDistance recomputes the total weight along path from g alone.
//
// For each consecutive pair the heaviest parallel edge contributes: the
// searcher explores every parallel edge as a distinct option and its strict
// '>' rule guarantees the recorded incumbent used the heaviest one.
//
// Contracts:
//   - g non-nil (ErrGraphNil), path non-empty (ErrInvalidPath).
//   - Every vertex of path must exist in g (core.ErrVertexNotFound).
//   - Every consecutive pair must be connected (ErrInvalidPath, wrapped with
//     the offending pair).
//   - A single-vertex path costs 0.
//
// The result is stabilized to 1e-9, matching Result.Distance.
//
// Complexity: O(Σ deg(path[i])).
func PathDistance(g *core.Graph, path []int64) (float64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	if len(path) == 0 {
		return 0, ErrInvalidPath
	}
	if !g.HasVertex(path[len(path)-1]) {
		return 0, core.ErrVertexNotFound
	}

	var total float64
	for i := 0; i+1 < len(path); i++ {
		w, err := maxEdgeWeight(g, path[i], path[i+1])
		if err != nil {
			return 0, err
		}
		total += w
	}

	return round1e9(total), nil
}

// maxEdgeWeight returns the maximum weight among parallel edges from → to.
func maxEdgeWeight(g *core.Graph, from, to int64) (float64, error) {
	edges, err := g.OutEdges(from)
	if err != nil {
		return 0, err
	}

	best := math.Inf(-1)
	for _, e := range edges {
		if e.To == to && e.Weight > best {
			best = e.Weight
		}
	}
	if math.IsInf(best, -1) {
		return 0, fmt.Errorf("%w: no edge %d->%d", ErrInvalidPath, from, to)
	}

	return best, nil
}

// ValidatePath checks the structural invariants of a search result:
// every vertex unique and every consecutive pair connected by an edge
// present in g.
//
// A sequence of length >= 3 whose first and last vertices coincide is
// treated as a closed tour (the ClosedTours result shape): the closing
// repetition is allowed, everything else must be distinct. The two-element
// sequence [s, s] is rejected; a self-loop never forms a tour.
//
// Complexity: O(V + Σ deg(path[i])).
func ValidatePath(g *core.Graph, path []int64) error {
	if g == nil {
		return ErrGraphNil
	}
	if len(path) == 0 {
		return ErrInvalidPath
	}

	simple := path
	if len(path) >= 3 && path[0] == path[len(path)-1] {
		simple = path[:len(path)-1] // closed tour: drop the closing repetition
	}

	seen := make(map[int64]struct{}, len(simple))
	for _, v := range simple {
		if _, dup := seen[v]; dup {
			return fmt.Errorf("%w: vertex %d repeats", ErrInvalidPath, v)
		}
		if !g.HasVertex(v) {
			return fmt.Errorf("%w: vertex %d", core.ErrVertexNotFound, v)
		}
		seen[v] = struct{}{}
	}

	for i := 0; i+1 < len(path); i++ {
		if _, err := maxEdgeWeight(g, path[i], path[i+1]); err != nil {
			return err
		}
	}

	return nil
}
