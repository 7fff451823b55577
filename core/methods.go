package core

import (
	"math"
	"sort"
)

// AddVertex registers id in the vertex set if absent and bootstraps its
// (empty) adjacency entry. Adding an existing vertex is a no-op.
// Thread-safe: acquires a write lock.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id int64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(id)
}

// addVertexLocked is the lock-free body of AddVertex, shared with AddEdge.
func (g *Graph) addVertexLocked(id int64) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
	g.adjacency[id] = nil
}

// AddEdge appends a directed edge from → to with the given weight.
// Both endpoints are auto-registered. Parallel edges accumulate; self-loops
// are stored as-is. NaN and ±Inf weights are rejected with ErrBadWeight.
// Thread-safe: acquires a write lock.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int64, weight float64) error {
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return ErrBadWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(from)
	g.addVertexLocked(to)
	g.adjacency[from] = append(g.adjacency[from], Edge{From: from, To: to, Weight: weight})
	g.edgeCount++

	return nil
}

// HasVertex reports whether id appears in the vertex set.
// Thread-safe: acquires a read lock.
//
// Complexity: O(1).
func (g *Graph) HasVertex(id int64) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex identifiers in ascending numeric order.
// This is the stable enumeration surface downstream algorithms iterate over;
// rely on it for reproducible outputs.
// Thread-safe: acquires a read lock.
//
// Complexity: O(V log V).
func (g *Graph) Vertices() []int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]int64, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// OutEdges returns a copy of the outgoing edges of id in insertion order.
// Returns ErrVertexNotFound when id is unknown; a known vertex with no
// outgoing edges yields an empty (nil) slice and no error.
// Thread-safe: acquires a read lock.
//
// Complexity: O(deg(id)).
func (g *Graph) OutEdges(id int64) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	edges := g.adjacency[id]
	if len(edges) == 0 {
		return nil, nil
	}
	out := make([]Edge, len(edges))
	copy(out, edges)

	return out, nil
}

// VertexCount returns the number of distinct vertices.
// Thread-safe: acquires a read lock.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the total number of stored edges, parallels included.
// Thread-safe: acquires a read lock.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// EdgeWeights returns the multiset of all edge weights in an unspecified
// order. The bound estimator sorts its own copy; callers own the slice.
// Thread-safe: acquires a read lock.
//
// Complexity: O(E).
func (g *Graph) EdgeWeights() []float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	weights := make([]float64, 0, g.edgeCount)
	for _, edges := range g.adjacency {
		for _, e := range edges {
			weights = append(weights, e.Weight)
		}
	}

	return weights
}

// Edges returns a copy of every stored edge, grouped by source vertex in
// ascending order and by insertion order within a source. Primarily a
// rendering and diagnostics surface.
// Thread-safe: acquires a read lock (via Vertices/OutEdges snapshots).
//
// Complexity: O(V log V + E).
func (g *Graph) Edges() []Edge {
	ids := g.Vertices()

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for _, id := range ids {
		out = append(out, g.adjacency[id]...)
	}

	return out
}
