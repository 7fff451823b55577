package longest

import (
	"errors"
	"time"
)

// BoundAlgo selects the pruning bound used by the searcher.
type BoundAlgo int

const (
	// PrefixSumBound prunes with the sorted-weight prefix-sum table (default).
	PrefixSumBound BoundAlgo = iota

	// NoBound disables pruning entirely: full enumeration. Intended for
	// verification and benchmarking; results must match PrefixSumBound.
	NoBound
)

// ClosurePolicy decides which partial paths count as complete candidates.
type ClosurePolicy int

const (
	// DeadEndOnly accepts a candidate only at a dead end: a frontier vertex
	// whose every outgoing edge leads to an already-visited vertex (default).
	DeadEndOnly ClosurePolicy = iota

	// ClosedTours additionally accepts an edge returning to the original
	// start vertex, in addition to (not instead of) the dead-end rule. The
	// recorded sequence ends with the start vertex repeated.
	ClosedTours
)

// Sentinel errors for the searcher and its helpers.
var (
	// ErrGraphNil is returned when a nil *core.Graph is passed in.
	ErrGraphNil = errors.New("longest: graph is nil")

	// ErrTimeLimit is returned when a positive Options.TimeLimit is exceeded.
	ErrTimeLimit = errors.New("longest: time limit exceeded")

	// ErrBadTimeLimit rejects a negative Options.TimeLimit.
	ErrBadTimeLimit = errors.New("longest: time limit must be non-negative")

	// ErrUnsupportedBound rejects an unknown Options.Bound value.
	ErrUnsupportedBound = errors.New("longest: unsupported bound algorithm")

	// ErrUnsupportedClosure rejects an unknown Options.Closure value.
	ErrUnsupportedClosure = errors.New("longest: unsupported closure policy")

	// ErrInvalidPath indicates a vertex sequence that is not a simple path
	// (or closed tour) of the graph under validation.
	ErrInvalidPath = errors.New("longest: invalid path")
)

// Options holds configurable parameters for the search.
type Options struct {
	// Bound selects the pruning bound. Default PrefixSumBound.
	Bound BoundAlgo

	// Closure selects the candidate-completion policy. Default DeadEndOnly.
	Closure ClosurePolicy

	// TimeLimit, when positive, imposes a soft deadline on the whole search.
	// Checks are sparse (every few thousand node events), so overruns stay
	// small. Zero disables the budget. Default 0.
	TimeLimit time.Duration
}

// DefaultOptions returns the canonical configuration:
// prefix-sum pruning, dead-end closure, no time budget.
func DefaultOptions() Options {
	return Options{
		Bound:     PrefixSumBound,
		Closure:   DeadEndOnly,
		TimeLimit: 0,
	}
}

// validateOptions checks internal consistency of Options.
// Deterministic, side-effect free. Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.TimeLimit < 0 {
		return ErrBadTimeLimit
	}
	switch opts.Bound {
	case PrefixSumBound, NoBound:
	default:
		return ErrUnsupportedBound
	}
	switch opts.Closure {
	case DeadEndOnly, ClosedTours:
	default:
		return ErrUnsupportedClosure
	}

	return nil
}

// Result captures the outcome of one search.
type Result struct {
	// Path is the winning vertex sequence. Under ClosedTours a tour ends
	// with the start vertex repeated. Nil when Found is false.
	Path []int64

	// Distance is the summed edge weight along Path, stabilized to 1e-9.
	// Zero for a single-vertex path and when Found is false.
	Distance float64

	// Found reports whether any candidate was recorded. False only for an
	// empty graph.
	Found bool

	// Pruned counts subtrees abandoned by the bound check. Diagnostics only;
	// always 0 under NoBound.
	Pruned uint64
}
