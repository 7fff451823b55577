package edgelist

import (
	"errors"

	"github.com/katalvlaran/longpath/core"
)

var (
	// ErrNilReader is returned when Decode receives a nil reader.
	ErrNilReader = errors.New("edgelist: reader is nil")

	// ErrNilWriter is returned when EncodePath receives a nil writer.
	ErrNilWriter = errors.New("edgelist: writer is nil")

	// ErrMalformedRecord indicates a line that does not parse as three valid
	// fields. Surfaced only under strict decoding; lenient decoding drops the
	// record and counts it instead.
	ErrMalformedRecord = errors.New("edgelist: malformed record")
)

// Option configures optional behavior of Decode.
type Option func(*Options)

// Options holds configurable parameters for edge-list decoding.
type Options struct {
	// Strict aborts decoding on the first malformed record instead of
	// silently dropping it. Default is false (lenient).
	Strict bool
}

// DefaultOptions returns the lenient decoding configuration.
func DefaultOptions() Options {
	return Options{Strict: false}
}

// WithStrict returns an Option that enables strict decoding: any malformed
// record fails the whole decode with ErrMalformedRecord.
func WithStrict() Option {
	return func(o *Options) { o.Strict = true }
}

// DecodeResult captures the outcome of one Decode run.
type DecodeResult struct {
	// Graph is the adjacency structure built from the accepted records.
	// Never nil on success, even for empty input.
	Graph *core.Graph

	// Records is the number of non-blank lines seen.
	Records int

	// Edges is the number of records accepted into the graph.
	Edges int

	// Skipped is the number of malformed records dropped under lenient
	// decoding. Always 0 under strict decoding (the first one aborts).
	Skipped int
}
