package history

import (
	"github.com/subgraphminer/gspanmine/internal/embedding"
	"github.com/subgraphminer/gspanmine/internal/patterngraph"
)

// Scratch is one worker's reusable history buffer. It is exclusive to the
// worker that owns it and must never be touched by another worker;
// Build resets and repopulates it in place so the hot path inside
// internal/engine allocates nothing beyond growing candidate projections.
type Scratch struct {
	edges      []*patterngraph.Edge // ordered newest-to-oldest along the Prev chain
	hasEdges   []bool               // indexed by edge ID
	hasVertice []bool               // indexed by vertex ID
}

// NewScratch allocates a Scratch sized for a database whose largest pruned
// graph has at most maxEdges distinct edges and maxVertices vertices.
// This sizing happens once at worker initialization; Build never grows
// these slices.
func NewScratch(maxVertices, maxEdges int) *Scratch {
	return &Scratch{
		hasEdges:   make([]bool, maxEdges+1),
		hasVertice: make([]bool, maxVertices+1),
	}
}

// Build rebuilds the scratch buffers from emb, the head of one embedding's
// linked chain. has_edges and has_vertice are reset to all-false first.
func (s *Scratch) Build(emb *embedding.Embedding) {
	for i := range s.hasEdges {
		s.hasEdges[i] = false
	}
	for i := range s.hasVertice {
		s.hasVertice[i] = false
	}
	s.edges = s.edges[:0]

	for cur := emb; cur != nil; cur = cur.Prev {
		e := cur.Edge
		s.edges = append(s.edges, e)
		s.hasEdges[e.ID] = true
		s.hasVertice[e.From] = true
		s.hasVertice[e.To] = true
	}
}

// HasEdge reports whether edge id is used by the embedding the scratch was
// last built from.
func (s *Scratch) HasEdge(id int) bool { return s.hasEdges[id] }

// HasVertex reports whether vertex id is used by the embedding the scratch
// was last built from.
func (s *Scratch) HasVertex(id int) bool { return s.hasVertice[id] }

// GetEdge returns the edge that DFS code rmpIndex of the pattern maps to
// in this embedding, counting from the bottom of the pattern: rmpIndex 0
// is the root edge, and callers pass the entries of a rightmost path
// (rmp[0] resolves to the edge that discovered the rightmost vertex).
func (s *Scratch) GetEdge(rmpIndex int) *patterngraph.Edge {
	return s.edges[len(s.edges)-rmpIndex-1]
}

// Len reports how many edges the last Build populated (the embedding's
// depth).
func (s *Scratch) Len() int { return len(s.edges) }
