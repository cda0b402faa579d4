package canon

import "github.com/subgraphminer/gspanmine/internal/patterngraph"

// Scratch is one worker's reusable canonicality-test buffer: the minimum
// graph, the indexed min-projection, the rightmost path, and the
// min-history helper. It is exclusive to the worker that owns it and is
// sized once at NewScratch to the worst case over the pruned database.
type Scratch struct {
	minGraph      *patterngraph.Graph
	minProjection []MinEmbedding
	rmp           []int
	hist          *minHistory
}

// MinGraph returns the minimum graph built by the most recent IsMin call.
// It is valid only until the next IsMin call on the same Scratch — callers
// that need to keep it must clone what they use before calling IsMin
// again.
func (s *Scratch) MinGraph() *patterngraph.Graph { return s.minGraph }

// NewScratch allocates a Scratch sized for a database whose largest pruned
// graph has at most maxEdges distinct edges and maxVertices vertices — the
// minimum graph of any candidate pattern can never exceed those bounds,
// since a pattern is itself a subgraph of some database graph.
func NewScratch(maxVertices, maxEdges int) *Scratch {
	return &Scratch{
		minGraph: &patterngraph.Graph{
			Vertices:  make([]patterngraph.Vertex, 0, maxVertices),
			Adjacency: make([][]patterngraph.Edge, 0, maxVertices),
		},
		minProjection: make([]MinEmbedding, 0, maxEdges),
		hist:          newMinHistory(maxVertices, maxEdges),
	}
}
