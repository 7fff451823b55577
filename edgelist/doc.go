// Package edgelist decodes flat text edge lists into core.Graph values and
// encodes vertex sequences back to text.
//
// Input format, one record per line:
//
//	<source>, <destination>, <weight>
//
// where source and destination are integers and weight is a real number.
// Whitespace around each field is trimmed; blank lines are ignored.
//
// Parsing policy is configurable:
//   - Lenient (default): records that fail to parse as three valid fields
//     are silently dropped and counted in DecodeResult.Skipped. This is a
//     deliberate compatibility decision, not an oversight.
//   - Strict (WithStrict): the first malformed record aborts decoding with
//     an error wrapping ErrMalformedRecord and the 1-based line number.
//
// Duplicate edges are preserved as distinct options; no merging happens at
// this layer. The vertex set is inferred entirely from edge endpoints.
//
// Output format: EncodePath joins integer identifiers with CRLF ("\r\n")
// separators, no trailing separator. An empty path produces no output.
package edgelist
