package canon

import (
	"github.com/subgraphminer/gspanmine/internal/dfscode"
	"github.com/subgraphminer/gspanmine/internal/patterngraph"
)

// buildMinGraph rebuilds s.minGraph from seq: vertices
// resized to the largest vertex id seq references, plus one; each code
// deposits two mirrored half-edges, with edge IDs assigned in sequence
// order (0..len(seq)-1). Reuses the scratch's backing arrays when they are
// already large enough.
func (s *Scratch) buildMinGraph(seq dfscode.Sequence) {
	n := dfscode.RightmostVertex(seq) + 1
	g := s.minGraph

	if cap(g.Vertices) < n {
		g.Vertices = make([]patterngraph.Vertex, n)
		g.Adjacency = make([][]patterngraph.Edge, n)
	} else {
		g.Vertices = g.Vertices[:n]
		g.Adjacency = g.Adjacency[:n]
		for i := range g.Adjacency {
			g.Adjacency[i] = g.Adjacency[i][:0]
		}
	}

	for i := 0; i < n; i++ {
		g.Vertices[i].ID = i
	}
	for id, c := range seq {
		g.Vertices[c.From].Label = c.FromLabel
		g.Vertices[c.To].Label = c.ToLabel
		g.Adjacency[c.From] = append(g.Adjacency[c.From], patterngraph.Edge{From: c.From, To: c.To, Label: c.EdgeLabel, ID: id})
		g.Adjacency[c.To] = append(g.Adjacency[c.To], patterngraph.Edge{From: c.To, To: c.From, Label: c.EdgeLabel, ID: id})
	}
	g.NEdges = len(seq)
}
