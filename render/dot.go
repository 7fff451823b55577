package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/longpath/core"
)

// Options configures DOT generation.
type Options struct {
	// Label, when non-empty, is placed under the drawing (e.g. the total
	// distance of the highlighted path).
	Label string
}

// pathEdgeSet marks the consecutive (from, to) pairs of a highlighted path.
type pathEdgeSet map[[2]int64]struct{}

func newPathEdgeSet(path []int64) pathEdgeSet {
	set := make(pathEdgeSet, len(path))
	for i := 0; i+1 < len(path); i++ {
		set[[2]int64{path[i], path[i+1]}] = struct{}{}
	}

	return set
}

// ToDOT converts g to Graphviz DOT. Vertices and edges on path are drawn
// bold red; everything else stays grey. The resulting string renders with
// RenderSVG or any external dot binary.
//
// Every stored edge is emitted, parallels included, each labelled with its
// weight. With parallel edges on a highlighted pair, all of them pick up
// the highlight: the drawing marks the pair, not one specific traversal.
func ToDOT(g *core.Graph, path []int64, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph longpath {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=12];\n")
	buf.WriteString("  edge [color=grey50, fontsize=10];\n")
	buf.WriteString("\n")

	onPath := make(map[int64]struct{}, len(path))
	for _, v := range path {
		onPath[v] = struct{}{}
	}
	pathEdges := newPathEdgeSet(path)

	if g != nil {
		for _, v := range g.Vertices() {
			if _, hit := onPath[v]; hit {
				fmt.Fprintf(&buf, "  %d [fillcolor=mistyrose, color=red];\n", v)
			} else {
				fmt.Fprintf(&buf, "  %d;\n", v)
			}
		}

		buf.WriteString("\n")
		for _, e := range g.Edges() {
			if _, hit := pathEdges[[2]int64{e.From, e.To}]; hit {
				fmt.Fprintf(&buf, "  %d -> %d [label=\"%g\", color=red, penwidth=2];\n", e.From, e.To, e.Weight)
			} else {
				fmt.Fprintf(&buf, "  %d -> %d [label=\"%g\"];\n", e.From, e.To, e.Weight)
			}
		}
	}

	if opts.Label != "" {
		fmt.Fprintf(&buf, "\n  label=%q;\n", opts.Label)
	}
	buf.WriteString("}\n")

	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using the embedded Graphviz engine.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("render: init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("render: parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	return buf.Bytes(), nil
}
