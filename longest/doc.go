// Package longest finds a longest simple path in a directed weighted
// multigraph via exhaustive depth-first enumeration with Branch-and-Bound
// pruning.
//
// Algorithm (succinct):
//  1. Precompute a bound table: all edge weights sorted descending plus
//     their prefix sums. upperBound(k) is the total weight of the k heaviest
//     edges in the whole graph: a deliberately loose but admissible
//     (never-underestimating) cap on any remaining extension, which is the
//     correctness requirement for sound pruning.
//  2. DFS from every vertex taken as a start, in ascending id order. The
//     visited set and path buffer follow strict push/pop discipline: they
//     reflect exactly the active call chain on every entry and exit.
//  3. At each node, prune when
//     distance + upperBound(min(remainingVertices, totalEdges)) <= best.
//     Under ClosedTours the hop count is remainingVertices+1, since a tour
//     completion spends one further edge closing back to the start.
//  4. A dead end (every outgoing edge leads to an already-visited vertex, or
//     no outgoing edges at all) records a new incumbent under strict '>',
//     so earlier-found equal-distance paths are never overwritten.
//
// Closure policy is a contract-level configuration: DeadEndOnly (default)
// accepts only dead-end terminations; ClosedTours additionally accepts an
// edge returning to the start vertex, recording the sequence with the start
// repeated at the end. The two policies produce different results on graphs
// containing cycles through the start.
//
// Governance:
//   - Options.Bound: PrefixSumBound (default) or NoBound, which disables
//     pruning for brute-force verification. Both must agree on every finite
//     graph; NoBound exists for tests and benchmarks.
//   - Options.TimeLimit: optional soft budget with sparse deadline checks;
//     exceeding it returns ErrTimeLimit.
//
// Complexity: worst case exponential in V (longest simple path is NP-hard);
// pruning keeps small-to-moderate instances practical. Per node the bound
// costs O(1) after an O(E log E) precompute. Recursion depth is bounded by
// V, since a simple path visits each vertex at most once.
//
// Determinism: identical inputs and options yield identical results.
// Start vertices run in ascending id order, adjacency in input insertion
// order, with strict '>' incumbent updates.
package longest
