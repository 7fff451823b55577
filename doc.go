// Package longpath finds a longest simple path (no repeated vertex) in a
// finite edge-weighted directed graph given as a flat edge list.
//
// The computation is a one-shot pipeline of three stages:
//
//	edgelist/ - decode `src, dst, weight` text records into a core.Graph
//	longest/  - branch-and-bound DFS with an admissible prefix-sum bound
//	edgelist/ - encode the winning vertex sequence, CRLF-separated
//
// Supporting packages:
//
//	core/    - directed weighted multigraph (vertex set + adjacency)
//	render/  - Graphviz DOT / SVG visualization with the path highlighted
//	cmd/longpath - command-line front end (stdin to stdout by default)
//
// Longest simple path is NP-hard in general; the searcher relies on pruning
// to stay practical on small-to-moderate instances. See longest/doc.go for
// the algorithm contract and its configuration surface.
package longpath
