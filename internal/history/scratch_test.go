package history_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subgraphminer/gspanmine/internal/embedding"
	"github.com/subgraphminer/gspanmine/internal/history"
	"github.com/subgraphminer/gspanmine/internal/patterngraph"
)

// chainOfTwo builds a two-edge embedding 0-1, 1-2 (root first, then the
// forward extension), matching how internal/engine grows a projection.
func chainOfTwo() *embedding.Embedding {
	root := &embedding.Embedding{GraphID: 0, Edge: &patterngraph.Edge{From: 0, To: 1, Label: 1, ID: 0}}
	tip := &embedding.Embedding{GraphID: 0, Edge: &patterngraph.Edge{From: 1, To: 2, Label: 1, ID: 1}, Prev: root}
	return tip
}

func TestScratch_BuildAndQuery(t *testing.T) {
	s := history.NewScratch(8, 8)
	s.Build(chainOfTwo())

	require.Equal(t, 2, s.Len())
	assert.True(t, s.HasEdge(0))
	assert.True(t, s.HasEdge(1))
	assert.False(t, s.HasEdge(2))
	assert.True(t, s.HasVertex(0))
	assert.True(t, s.HasVertex(1))
	assert.True(t, s.HasVertex(2))
	assert.False(t, s.HasVertex(3))

	// GetEdge takes a DFS-code index: code 0 maps to the root (0-1), code 1
	// to the forward extension (1-2).
	assert.Equal(t, 0, s.GetEdge(0).From)
	assert.Equal(t, 1, s.GetEdge(1).From)
}

func TestScratch_ResetsBetweenBuilds(t *testing.T) {
	s := history.NewScratch(8, 8)
	s.Build(chainOfTwo())

	single := &embedding.Embedding{GraphID: 1, Edge: &patterngraph.Edge{From: 3, To: 4, Label: 2, ID: 2}}
	s.Build(single)

	require.Equal(t, 1, s.Len())
	assert.False(t, s.HasEdge(0), "stale state from the previous build must be cleared")
	assert.False(t, s.HasVertex(0))
	assert.True(t, s.HasVertex(3))
}
