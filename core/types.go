package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates an edge weight that is NaN or ±Inf.
	ErrBadWeight = errors.New("core: edge weight must be finite")
)

// Edge represents a directed connection between two vertices.
//
// Edges are value objects: the same (From, To, Weight) triple may appear
// several times in a graph, each occurrence a distinct traversal option.
type Edge struct {
	// From is the source vertex identifier.
	From int64

	// To is the destination vertex identifier.
	To int64

	// Weight is the distance contributed by traversing this edge.
	Weight float64
}

// Graph is the in-memory directed weighted multigraph.
//
// Parallel edges and self-loops are always permitted. The zero value is not
// usable; construct with NewGraph.
type Graph struct {
	mu sync.RWMutex // guards vertices, adjacency and edgeCount

	// vertices is the set of all identifiers seen as either endpoint.
	vertices map[int64]struct{}

	// adjacency maps a source vertex to its outgoing edges in insertion order.
	// Every vertex in vertices has an entry, possibly empty.
	adjacency map[int64][]Edge

	// edgeCount is the total number of stored edges, parallels included.
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[int64]struct{}),
		adjacency: make(map[int64][]Edge),
	}
}
