package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/longpath/core"
)

// fieldsPerRecord is the fixed arity of an edge record: source, destination, weight.
const fieldsPerRecord = 3

// Decode reads edge records from r and builds the adjacency graph.
//
// Contract:
//   - r must be non-nil (ErrNilReader otherwise).
//   - Blank lines are ignored and not counted as records.
//   - Lenient mode drops malformed records silently; strict mode returns an
//     error wrapping ErrMalformedRecord with the 1-based line number.
//   - A weight that parses but is NaN or ±Inf counts as malformed: it has no
//     meaningful place in a summed distance.
//
// Complexity: O(L) over input lines, O(V+E) space for the graph.
func Decode(r io.Reader, opts ...Option) (*DecodeResult, error) {
	if r == nil {
		return nil, ErrNilReader
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	res := &DecodeResult{Graph: core.NewGraph()}

	scanner := bufio.NewScanner(r)
	var lineNo int
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		res.Records++

		from, to, weight, ok := parseRecord(line)
		if !ok {
			if dopts.Strict {
				return nil, fmt.Errorf("edgelist: line %d: %w", lineNo, ErrMalformedRecord)
			}
			res.Skipped++

			continue
		}
		if err := res.Graph.AddEdge(from, to, weight); err != nil {
			// Unreachable with a finite parsed weight; keep the guard anyway.
			if dopts.Strict {
				return nil, fmt.Errorf("edgelist: line %d: %w", lineNo, err)
			}
			res.Skipped++

			continue
		}
		res.Edges++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("edgelist: read: %w", err)
	}

	return res, nil
}

// parseRecord splits one non-blank line into (from, to, weight).
// ok is false when the line does not have exactly three fields or any field
// fails numeric parsing.
func parseRecord(line string) (from, to int64, weight float64, ok bool) {
	fields := strings.Split(line, ",")
	if len(fields) != fieldsPerRecord {
		return 0, 0, 0, false
	}

	var err error
	if from, err = strconv.ParseInt(strings.TrimSpace(fields[0]), 10, 64); err != nil {
		return 0, 0, 0, false
	}
	if to, err = strconv.ParseInt(strings.TrimSpace(fields[1]), 10, 64); err != nil {
		return 0, 0, 0, false
	}
	if weight, err = strconv.ParseFloat(strings.TrimSpace(fields[2]), 64); err != nil {
		return 0, 0, 0, false
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return 0, 0, 0, false
	}

	return from, to, weight, true
}
