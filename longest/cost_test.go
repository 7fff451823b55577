package longest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/longpath/core"
	"github.com/katalvlaran/longpath/longest"
)

func TestPathDistance_NilGraph(t *testing.T) {
	_, err := longest.PathDistance(nil, []int64{1})
	assert.ErrorIs(t, err, longest.ErrGraphNil)
}

func TestPathDistance_EmptyPath(t *testing.T) {
	_, err := longest.PathDistance(core.NewGraph(), nil)
	assert.ErrorIs(t, err, longest.ErrInvalidPath)
}

func TestPathDistance_SingleVertex(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex(3)

	d, err := longest.PathDistance(g, []int64{3})
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)
}

func TestPathDistance_UnknownVertex(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex(1)

	_, err := longest.PathDistance(g, []int64{99})
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestPathDistance_MissingEdge(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 1))
	g.AddVertex(3)

	_, err := longest.PathDistance(g, []int64{1, 2, 3})
	assert.ErrorIs(t, err, longest.ErrInvalidPath)
	assert.Contains(t, err.Error(), "2->3")
}

func TestPathDistance_ParallelEdgesUseMax(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 3))
	require.NoError(t, g.AddEdge(1, 2, 5))
	require.NoError(t, g.AddEdge(2, 3, 1))

	d, err := longest.PathDistance(g, []int64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 6.0, d)
}

func TestValidatePath_SimplePathOK(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))

	assert.NoError(t, longest.ValidatePath(g, []int64{1, 2, 3}))
}

func TestValidatePath_RepeatedVertexRejected(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 1, 1))
	require.NoError(t, g.AddEdge(1, 3, 1))

	// 1 repeats in the middle of the walk: not simple, not a tour shape.
	err := longest.ValidatePath(g, []int64{2, 1, 3, 1})
	assert.ErrorIs(t, err, longest.ErrInvalidPath)
}

func TestValidatePath_ClosedTourShapeAccepted(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))
	require.NoError(t, g.AddEdge(3, 1, 1))

	assert.NoError(t, longest.ValidatePath(g, []int64{1, 2, 3, 1}))
}

func TestValidatePath_SelfLoopTourRejected(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(5, 5, 2))

	assert.ErrorIs(t, longest.ValidatePath(g, []int64{5, 5}), longest.ErrInvalidPath)
}

func TestValidatePath_DisconnectedPairRejected(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 1))
	g.AddVertex(4)

	assert.ErrorIs(t, longest.ValidatePath(g, []int64{1, 4}), longest.ErrInvalidPath)
}
