package edgelist

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// pathSeparator joins vertex identifiers in encoded output.
// CRLF is the historical wire format of this tool; keep it platform-independent.
const pathSeparator = "\r\n"

// FormatPath renders path as integer identifiers joined with CRLF.
// An empty or nil path yields the empty string.
//
// Complexity: O(len(path)).
func FormatPath(path []int64) string {
	if len(path) == 0 {
		return ""
	}

	var b strings.Builder
	for i, id := range path {
		if i > 0 {
			b.WriteString(pathSeparator)
		}
		b.WriteString(strconv.FormatInt(id, 10))
	}

	return b.String()
}

// EncodePath writes FormatPath(path) to w. An empty path writes nothing and
// returns nil, matching the "empty graph → no output" contract.
func EncodePath(w io.Writer, path []int64) error {
	if w == nil {
		return ErrNilWriter
	}
	if len(path) == 0 {
		return nil
	}
	if _, err := io.WriteString(w, FormatPath(path)); err != nil {
		return fmt.Errorf("edgelist: write: %w", err)
	}

	return nil
}
