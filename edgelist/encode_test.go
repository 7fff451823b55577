package edgelist_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/longpath/edgelist"
)

func TestFormatPath_Empty(t *testing.T) {
	assert.Equal(t, "", edgelist.FormatPath(nil))
	assert.Equal(t, "", edgelist.FormatPath([]int64{}))
}

func TestFormatPath_SingleVertex(t *testing.T) {
	assert.Equal(t, "42", edgelist.FormatPath([]int64{42}))
}

func TestFormatPath_CRLFJoined(t *testing.T) {
	got := edgelist.FormatPath([]int64{1, 2, 3, 4})
	assert.Equal(t, "1\r\n2\r\n3\r\n4", got)
	assert.False(t, strings.HasSuffix(got, "\r\n"), "no trailing separator")
}

func TestEncodePath_NilWriter(t *testing.T) {
	assert.ErrorIs(t, edgelist.EncodePath(nil, []int64{1}), edgelist.ErrNilWriter)
}

func TestEncodePath_EmptyPathWritesNothing(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, edgelist.EncodePath(&sb, nil))
	assert.Equal(t, "", sb.String())
}

func TestEncodePath_RoundTripWithFormat(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, edgelist.EncodePath(&sb, []int64{1, 2}))
	assert.Equal(t, "1\r\n2", sb.String())
}
