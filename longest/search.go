package longest

import (
	"math"
	"time"

	"github.com/katalvlaran/longpath/core"
)

// searchEngine holds all search data and policies. A dedicated engine struct
// (instead of closures over Longest's locals) keeps dependencies explicit,
// testing simpler, and hot-path state predictable.
type searchEngine struct {
	// Configuration / policy
	useBound    bool
	closedTours bool

	// Time budget
	useDeadline bool
	deadline    time.Time
	steps       int // sparse deadline check counter
	halted      bool

	// Graph data, prefetched once: adjacency in insertion order,
	// start vertices in ascending id order.
	verts      []int64
	adj        map[int64][]core.Edge
	totalEdges int
	bounds     boundTable

	// Current search state
	start   int64
	visited map[int64]bool // invariant: v ∈ visited ⇔ v ∈ path
	path    []int64        // active root-to-frontier walk

	// Current best incumbent
	bestPath []int64
	bestDist float64 // −Inf until the first candidate lands
	found    bool

	// Diagnostics
	pruned uint64
}

// deadlineCheck performs a rare deadline test (every 4096 node events).
// Once the deadline trips, halted short-circuits the remaining recursion.
func (e *searchEngine) deadlineCheck() bool {
	if !e.useDeadline {
		return false
	}
	e.steps++
	if (e.steps & 4095) != 0 {
		return e.halted
	}
	if time.Now().After(e.deadline) {
		e.halted = true
	}

	return e.halted
}

// record commits the current path as the new incumbent. bestDist stays
// unrounded internally so incumbent comparisons and the running distance
// share one scale; stabilization happens once, in the returned Result.
// The path buffer is live and mutated by backtracking, so a copy is taken.
func (e *searchEngine) record(distance float64) {
	e.bestPath = append(e.bestPath[:0], e.path...)
	e.bestDist = distance
	e.found = true
}

// recordTour commits the current path closed back to the start vertex.
func (e *searchEngine) recordTour(total float64) {
	e.bestPath = append(e.bestPath[:0], e.path...)
	e.bestPath = append(e.bestPath, e.start)
	e.bestDist = total
	e.found = true
}

// dfs explores all simple-path extensions of the current frontier vertex.
//
// On entry, visited and path already contain current. Pruning: no extension
// can traverse more than min(remainingVertices, totalEdges) further edges
// (one more under ClosedTours, for the closing edge back to the start), so
// when distance plus the bound on that many hops cannot beat the incumbent,
// the whole subtree is abandoned.
func (e *searchEngine) dfs(current int64, distance float64) {
	if e.deadlineCheck() {
		return
	}

	if e.useBound {
		hops := len(e.verts) - len(e.path) // vertices not yet on the path
		if e.closedTours {
			hops++ // the closing edge back to the start is one extra traversal
		}
		if e.totalEdges < hops {
			hops = e.totalEdges
		}
		if distance+e.bounds.upperBound(hops) <= e.bestDist {
			e.pruned++

			return
		}
	}

	extended := false
	for _, edge := range e.adj[current] {
		// Closing edge back to the start: a candidate tour under ClosedTours.
		// A self-loop on the start is not a tour (current == start).
		if e.closedTours && edge.To == e.start && current != e.start {
			if total := distance + edge.Weight; total > e.bestDist {
				e.recordTour(total)
			}
		}
		if e.visited[edge.To] {
			continue // simple-path constraint: no revisits
		}

		e.visited[edge.To] = true
		e.path = append(e.path, edge.To)
		e.dfs(edge.To, distance+edge.Weight)
		e.path = e.path[:len(e.path)-1]
		delete(e.visited, edge.To)
		extended = true
	}

	// Dead end: every outgoing edge led to a visited vertex (or none exist).
	// Strict '>' keeps the first-found path on ties.
	if !extended && distance > e.bestDist {
		e.record(distance)
	}
}

// Longest explores, from every vertex of g taken as a start, all maximal
// simple directed paths, and returns the one with greatest total edge
// weight.
//
// Contracts:
//   - g must be non-nil (ErrGraphNil otherwise); it is treated as read-only.
//   - An empty graph yields Result{Found: false} and no error.
//   - A vertex with no usable outgoing edge stands as its own single-vertex
//     path at distance 0, kept only if nothing scores higher.
//   - With a positive TimeLimit, exceeding the budget returns ErrTimeLimit
//     and a zero Result, even when an incumbent existed.
//
// Determinism: see package documentation; identical inputs and options give
// identical results.
//
// Complexity: exponential worst case; O(V+E) space for prefetched adjacency
// plus O(V) recursion.
func Longest(g *core.Graph, opts Options) (Result, error) {
	if g == nil {
		return Result{}, ErrGraphNil
	}
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}

	verts := g.Vertices()
	if len(verts) == 0 {
		return Result{}, nil
	}

	// Engine initialization: snapshot the graph once, then never touch its
	// locks inside the hot loop.
	e := searchEngine{
		useBound:    opts.Bound == PrefixSumBound,
		closedTours: opts.Closure == ClosedTours,
		verts:       verts,
		adj:         make(map[int64][]core.Edge, len(verts)),
		totalEdges:  g.EdgeCount(),
		bounds:      newBoundTable(g.EdgeWeights()),
		visited:     make(map[int64]bool, len(verts)),
		path:        make([]int64, 0, len(verts)+1),
		bestDist:    math.Inf(-1),
	}
	var err error
	for _, v := range verts {
		if e.adj[v], err = g.OutEdges(v); err != nil {
			return Result{}, err
		}
	}

	if opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(opts.TimeLimit)
	}

	// One DFS tree per start vertex, ascending id order.
	for _, s := range verts {
		if e.halted {
			break
		}
		e.start = s
		e.visited[s] = true
		e.path = append(e.path, s)
		e.dfs(s, 0)
		e.path = e.path[:0]
		delete(e.visited, s)
	}

	if e.useDeadline && (e.halted || time.Now().After(e.deadline)) {
		return Result{}, ErrTimeLimit
	}

	return Result{
		Path:     e.bestPath,
		Distance: round1e9(finiteOrZero(e.bestDist)),
		Found:    e.found,
		Pruned:   e.pruned,
	}, nil
}

// finiteOrZero maps the −Inf "nothing recorded" sentinel to 0 for the
// public Result. Unreachable for non-empty graphs (the start vertex itself
// always lands as a candidate), kept as a guard.
func finiteOrZero(x float64) float64 {
	if math.IsInf(x, -1) {
		return 0
	}

	return x
}
