package canon

import "github.com/subgraphminer/gspanmine/internal/patterngraph"

// minHistory is history.Scratch's sibling for the indexed min-projection:
// same reset-and-rebuild discipline, but it walks MinEmbedding.Prev
// indices into a []MinEmbedding instead of following linked
// embedding.Embedding pointers.
type minHistory struct {
	edges      []*patterngraph.Edge
	hasEdges   []bool
	hasVertice []bool
}

func newMinHistory(maxVertices, maxEdges int) *minHistory {
	return &minHistory{
		hasEdges:   make([]bool, maxEdges+1),
		hasVertice: make([]bool, maxVertices+1),
	}
}

// build rebuilds the history from row idx of proj, walking Prev back to
// the root (Prev == -1).
func (h *minHistory) build(proj []MinEmbedding, idx int) {
	for i := range h.hasEdges {
		h.hasEdges[i] = false
	}
	for i := range h.hasVertice {
		h.hasVertice[i] = false
	}
	h.edges = h.edges[:0]

	for cur := idx; cur != -1; cur = proj[cur].Prev {
		e := proj[cur].Edge
		h.edges = append(h.edges, e)
		h.hasEdges[e.ID] = true
		h.hasVertice[e.From] = true
		h.hasVertice[e.To] = true
	}
}

func (h *minHistory) hasEdge(id int) bool   { return h.hasEdges[id] }
func (h *minHistory) hasVertex(id int) bool { return h.hasVertice[id] }

func (h *minHistory) getEdge(rmpIndex int) *patterngraph.Edge {
	return h.edges[len(h.edges)-rmpIndex-1]
}
