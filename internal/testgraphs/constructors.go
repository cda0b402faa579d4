package testgraphs

import "github.com/subgraphminer/gspanmine/internal/patterngraph"

// File-local constants for the minimum size each constructor accepts.
const (
	minCycleVertices    = 3
	minCompleteVertices = 1
	minPathVertices     = 1
)

// Cycle returns the n-vertex simple cycle C_n, every vertex labeled
// vertexLabel and every edge labeled edgeLabel, edges emitted in the
// stable order i -> (i+1)%n for i=0..n-1. Panics if n < 3: fixture
// construction is a test-time concern, not a runtime one.
func Cycle(id, n, vertexLabel, edgeLabel int) patterngraph.RawGraph {
	if n < minCycleVertices {
		panic("testgraphs: Cycle requires n >= 3")
	}
	g := patterngraph.RawGraph{
		ID:       id,
		Vertices: make([]patterngraph.RawVertex, n),
	}
	for i := 0; i < n; i++ {
		g.Vertices[i] = patterngraph.RawVertex{ID: i, Label: vertexLabel}
		g.Edges = append(g.Edges, patterngraph.RawEdge{From: i, To: (i + 1) % n, Label: edgeLabel})
	}
	return g
}

// Complete returns the complete graph K_n, every vertex labeled
// vertexLabel and every edge labeled edgeLabel, edges emitted in
// lexicographic (i, j) order with i < j. Panics if n < 1.
func Complete(id, n, vertexLabel, edgeLabel int) patterngraph.RawGraph {
	if n < minCompleteVertices {
		panic("testgraphs: Complete requires n >= 1")
	}
	g := patterngraph.RawGraph{
		ID:       id,
		Vertices: make([]patterngraph.RawVertex, n),
	}
	for i := 0; i < n; i++ {
		g.Vertices[i] = patterngraph.RawVertex{ID: i, Label: vertexLabel}
		for j := i + 1; j < n; j++ {
			g.Edges = append(g.Edges, patterngraph.RawEdge{From: i, To: j, Label: edgeLabel})
		}
	}
	return g
}

// Path returns the n-vertex simple path, every vertex labeled vertexLabel
// and every edge labeled edgeLabel, edges emitted i -> i+1 for
// i=0..n-2. Panics if n < 1.
func Path(id, n, vertexLabel, edgeLabel int) patterngraph.RawGraph {
	if n < minPathVertices {
		panic("testgraphs: Path requires n >= 1")
	}
	g := patterngraph.RawGraph{
		ID:       id,
		Vertices: make([]patterngraph.RawVertex, n),
	}
	for i := 0; i < n; i++ {
		g.Vertices[i] = patterngraph.RawVertex{ID: i, Label: vertexLabel}
		if i+1 < n {
			g.Edges = append(g.Edges, patterngraph.RawEdge{From: i, To: i + 1, Label: edgeLabel})
		}
	}
	return g
}

// Triangle is the n=3 special case of Cycle, named separately since it is
// the canonical minimal-example fixture used across most of this module's
// tests.
func Triangle(id, vertexLabel, edgeLabel int) patterngraph.RawGraph {
	return Cycle(id, 3, vertexLabel, edgeLabel)
}

// Star returns the (n+1)-vertex star with vertex 0 as the center, labeled
// centerLabel, and n leaves labeled leafLabel, every edge labeled
// edgeLabel. Panics if n < 1.
func Star(id, n, centerLabel, leafLabel, edgeLabel int) patterngraph.RawGraph {
	if n < 1 {
		panic("testgraphs: Star requires n >= 1")
	}
	g := patterngraph.RawGraph{
		ID:       id,
		Vertices: make([]patterngraph.RawVertex, n+1),
	}
	g.Vertices[0] = patterngraph.RawVertex{ID: 0, Label: centerLabel}
	for i := 1; i <= n; i++ {
		g.Vertices[i] = patterngraph.RawVertex{ID: i, Label: leafLabel}
		g.Edges = append(g.Edges, patterngraph.RawEdge{From: 0, To: i, Label: edgeLabel})
	}
	return g
}
