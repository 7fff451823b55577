package render_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/longpath/core"
	"github.com/katalvlaran/longpath/render"
)

func buildGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 8.54))
	require.NoError(t, g.AddEdge(2, 3, 3.11))
	require.NoError(t, g.AddEdge(3, 1, 2.19))

	return g
}

func TestToDOT_NilGraph(t *testing.T) {
	dot := render.ToDOT(nil, nil, render.Options{})
	assert.True(t, strings.HasPrefix(dot, "digraph longpath {"))
	assert.True(t, strings.HasSuffix(dot, "}\n"))
}

func TestToDOT_EmitsAllVerticesAndEdges(t *testing.T) {
	dot := render.ToDOT(buildGraph(t), nil, render.Options{})

	assert.Contains(t, dot, "  1;")
	assert.Contains(t, dot, "  2;")
	assert.Contains(t, dot, "  3;")
	assert.Contains(t, dot, `1 -> 2 [label="8.54"]`)
	assert.Contains(t, dot, `2 -> 3 [label="3.11"]`)
	assert.Contains(t, dot, `3 -> 1 [label="2.19"]`)
}

func TestToDOT_HighlightsPath(t *testing.T) {
	dot := render.ToDOT(buildGraph(t), []int64{1, 2, 3}, render.Options{})

	assert.Contains(t, dot, `1 -> 2 [label="8.54", color=red, penwidth=2]`)
	assert.Contains(t, dot, `2 -> 3 [label="3.11", color=red, penwidth=2]`)
	// The unused back edge keeps the default style.
	assert.Contains(t, dot, `3 -> 1 [label="2.19"];`)
	assert.Contains(t, dot, "1 [fillcolor=mistyrose, color=red]")
}

func TestToDOT_ParallelEdgesAllEmitted(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 3))
	require.NoError(t, g.AddEdge(1, 2, 5))

	dot := render.ToDOT(g, nil, render.Options{})
	assert.Contains(t, dot, `1 -> 2 [label="3"]`)
	assert.Contains(t, dot, `1 -> 2 [label="5"]`)
}

func TestToDOT_Label(t *testing.T) {
	dot := render.ToDOT(buildGraph(t), nil, render.Options{Label: "distance 15.65"})
	assert.Contains(t, dot, `label="distance 15.65";`)
}

func TestRenderSVG_RoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("graphviz layout is slow in -short mode")
	}

	dot := render.ToDOT(buildGraph(t), []int64{1, 2, 3}, render.Options{})
	svg, err := render.RenderSVG(context.Background(), dot)
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
}
