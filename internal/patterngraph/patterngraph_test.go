package patterngraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subgraphminer/gspanmine/internal/patterngraph"
)

// triangleRaw builds the S1 fixture: one graph, vertices 0:A 1:A 2:A,
// edges 0-1:x 1-2:x 0-2:x.
func triangleRaw() patterngraph.RawGraph {
	return patterngraph.RawGraph{
		ID: 0,
		Vertices: []patterngraph.RawVertex{
			{ID: 0, Label: 1}, {ID: 1, Label: 1}, {ID: 2, Label: 1},
		},
		Edges: []patterngraph.RawEdge{
			{From: 0, To: 1, Label: 1},
			{From: 1, To: 2, Label: 1},
			{From: 0, To: 2, Label: 1},
		},
	}
}

func TestComputeFrequency_Triangle(t *testing.T) {
	freq := patterngraph.ComputeFrequency([]patterngraph.RawGraph{triangleRaw()}, 1)
	assert.Equal(t, []int{0}, freq.VertexLabels[1])
	assert.Equal(t, 1, freq.EdgeLabels[1])
}

// TestComputeFrequency_LabelPruning encodes S4: graph with vertices A,A,B
// and edges A-x-A, A-y-B; support 1.0 over a single graph means every
// label present passes frequency (document frequency 1 == nsupport 1).
func TestComputeFrequency_LabelPruning(t *testing.T) {
	raw := patterngraph.RawGraph{
		ID: 0,
		Vertices: []patterngraph.RawVertex{
			{ID: 0, Label: 1}, {ID: 1, Label: 1}, {ID: 2, Label: 2},
		},
		Edges: []patterngraph.RawEdge{
			{From: 0, To: 1, Label: 1},
			{From: 1, To: 2, Label: 2},
		},
	}
	freq := patterngraph.ComputeFrequency([]patterngraph.RawGraph{raw}, 1)
	assert.Contains(t, freq.VertexLabels, 1)
	assert.Contains(t, freq.VertexLabels, 2)
	assert.Contains(t, freq.EdgeLabels, 1)
	assert.Contains(t, freq.EdgeLabels, 2)
}

func TestComputeFrequency_ThresholdDropsLabel(t *testing.T) {
	// Two of three graphs share edge label 1 between label-1 vertices; the
	// third has only a differently-labeled edge. nsupport=2 should keep
	// label 1 (df=2) and drop the third graph's private label (df=1).
	mk := func(id int, edgeLabel int) patterngraph.RawGraph {
		return patterngraph.RawGraph{
			ID:       id,
			Vertices: []patterngraph.RawVertex{{ID: 0, Label: 1}, {ID: 1, Label: 1}},
			Edges:    []patterngraph.RawEdge{{From: 0, To: 1, Label: edgeLabel}},
		}
	}
	raws := []patterngraph.RawGraph{mk(0, 1), mk(1, 1), mk(2, 2)}
	freq := patterngraph.ComputeFrequency(raws, 2)
	assert.Contains(t, freq.EdgeLabels, 1)
	assert.NotContains(t, freq.EdgeLabels, 2)
}

func TestPrune_DoublesEdgesAndRenumbers(t *testing.T) {
	raw := triangleRaw()
	freq := patterngraph.ComputeFrequency([]patterngraph.RawGraph{raw}, 1)
	g := patterngraph.Prune(raw, freq)

	require.Len(t, g.Vertices, 3)
	require.Equal(t, 3, g.NEdges)
	for v := range g.Vertices {
		assert.Len(t, g.Adjacency[v], 2, "each triangle vertex has degree 2")
	}
}

func TestPrune_DropsVertexWithInfrequentLabel(t *testing.T) {
	raw := patterngraph.RawGraph{
		ID: 0,
		Vertices: []patterngraph.RawVertex{
			{ID: 0, Label: 1}, {ID: 1, Label: 9}, {ID: 2, Label: 1},
		},
		Edges: []patterngraph.RawEdge{
			{From: 0, To: 1, Label: 1},
			{From: 1, To: 2, Label: 1},
		},
	}
	// Label 9 appears in zero graphs after we force-exclude it from freq.
	freq := patterngraph.Frequency{
		VertexLabels: map[int][]int{1: {0}},
		EdgeLabels:   map[int]int{1: 1},
	}
	g := patterngraph.Prune(raw, freq)

	require.Len(t, g.Vertices, 2, "vertex labeled 9 is dropped")
	assert.Equal(t, 0, g.NEdges, "both edges touched the dropped vertex")
}

func TestNewDatabase_RejectsBadSupport(t *testing.T) {
	_, err := patterngraph.NewDatabase([]patterngraph.RawGraph{triangleRaw()}, 0)
	assert.ErrorIs(t, err, patterngraph.ErrInvalidSupport)

	_, err = patterngraph.NewDatabase([]patterngraph.RawGraph{triangleRaw()}, 1.5)
	assert.ErrorIs(t, err, patterngraph.ErrInvalidSupport)

	_, err = patterngraph.NewDatabase(nil, 1.0)
	assert.ErrorIs(t, err, patterngraph.ErrEmptyDatabase)
}

func TestNewDatabase_Triangle(t *testing.T) {
	db, err := patterngraph.NewDatabase([]patterngraph.RawGraph{triangleRaw()}, 1.0)
	require.NoError(t, err)
	assert.Equal(t, 1, db.NSupport)
	require.Len(t, db.Graphs, 1)
	assert.Equal(t, 3, db.MaxVertices)
	assert.Equal(t, 4, db.MaxEdges) // nedges(3) + 1
}
