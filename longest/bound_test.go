package longest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundTable_PrefixSumsDescending(t *testing.T) {
	b := newBoundTable([]float64{2, 8.54, 4})

	// prefix[i] = sum of the i heaviest weights.
	assert.Equal(t, 0.0, b.upperBound(0))
	assert.InDelta(t, 8.54, b.upperBound(1), 1e-12)
	assert.InDelta(t, 12.54, b.upperBound(2), 1e-12)
	assert.InDelta(t, 14.54, b.upperBound(3), 1e-12)
}

func TestBoundTable_ClampsHops(t *testing.T) {
	b := newBoundTable([]float64{1, 1})

	assert.Equal(t, 0.0, b.upperBound(-5))
	assert.Equal(t, 0.0, b.upperBound(0))
	assert.Equal(t, 2.0, b.upperBound(2))
	assert.Equal(t, 2.0, b.upperBound(99), "hops beyond totalEdges saturate")
}

func TestBoundTable_Empty(t *testing.T) {
	b := newBoundTable(nil)

	assert.Equal(t, 0.0, b.upperBound(0))
	assert.Equal(t, 0.0, b.upperBound(7))
}

func TestBoundTable_DoesNotMutateInput(t *testing.T) {
	ws := []float64{1, 3, 2}
	_ = newBoundTable(ws)

	assert.Equal(t, []float64{1, 3, 2}, ws)
}

// The bound must never underestimate any achievable remainder: for every k,
// the k heaviest edges of the whole graph cap any k-edge extension.
func TestBoundTable_Admissible(t *testing.T) {
	weights := []float64{8.54, 3.11, 2.19, 4, 1.4}
	b := newBoundTable(weights)

	// Any sum of k distinct weights is <= upperBound(k).
	var sum3 = 3.11 + 2.19 + 1.4 // an arbitrary 3-edge remainder
	assert.LessOrEqual(t, sum3, b.upperBound(3))
	assert.LessOrEqual(t, 8.54+4, b.upperBound(2))
}
