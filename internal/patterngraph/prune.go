package patterngraph

// Prune rebuilds raw into a pruned Graph: vertices whose label is
// not in freq.VertexLabels are removed; surviving vertices are renumbered
// contiguously from 0 in input order (skipped vertices leave gaps in the
// id map); edges with an infrequent label or a removed endpoint are
// dropped; every surviving edge is materialized twice, with a shared edge
// ID assigned in insertion order starting from 0.
func Prune(raw RawGraph, freq Frequency) *Graph {
	idMap := make([]int, len(raw.Vertices)) // old id -> new id, or -1 if dropped
	vertices := make([]Vertex, 0, len(raw.Vertices))

	next := 0
	for _, v := range raw.Vertices {
		if _, ok := freq.VertexLabels[v.Label]; !ok {
			idMap[v.ID] = -1
			continue
		}
		idMap[v.ID] = next
		vertices = append(vertices, Vertex{ID: next, Label: v.Label})
		next++
	}

	adjacency := make([][]Edge, len(vertices))
	nedges := 0
	for _, e := range raw.Edges {
		if _, ok := freq.EdgeLabels[e.Label]; !ok {
			continue
		}
		if e.From >= len(idMap) || e.To >= len(idMap) {
			continue
		}
		from, to := idMap[e.From], idMap[e.To]
		if from == -1 || to == -1 {
			continue
		}

		id := nedges
		nedges++
		adjacency[from] = append(adjacency[from], Edge{From: from, To: to, Label: e.Label, ID: id})
		adjacency[to] = append(adjacency[to], Edge{From: to, To: from, Label: e.Label, ID: id})
	}

	return &Graph{ID: raw.ID, Vertices: vertices, Adjacency: adjacency, NEdges: nedges}
}
