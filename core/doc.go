// Package core defines the central Graph and Edge types used by the
// longest-path pipeline.
//
// The Graph is a directed, float64-weighted multigraph over int64 vertex
// identifiers. It is intentionally permissive: parallel edges between the
// same ordered pair are kept as distinct traversal options, and self-loops
// are stored as ordinary edges (a simple-path search can never use one, but
// dropping them is not this package's call).
//
// Vertices carry no payload, identity only. A vertex exists as soon as any
// edge references it as either endpoint, and every known vertex has an
// adjacency entry even when its outgoing list is empty.
//
// Ordering guarantees:
//   - Vertices() returns identifiers in ascending numeric order.
//   - OutEdges(id) returns edges in input insertion order.
//
// Mutating methods acquire a write lock and query methods a read lock, so a
// Graph may be built from several goroutines; algorithms downstream treat it
// as read-only.
//
// Errors:
//
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrBadWeight      - edge weight is NaN or ±Inf.
package core
