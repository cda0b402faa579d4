package patterngraph

// Frequency holds the result of the single frequency pass over the raw
// input: the set of vertex labels (with posting lists, since
// --output-frequent-nodes needs them) and the set of edge labels whose
// document frequency meets nsupport.
type Frequency struct {
	// VertexLabels maps a frequent vertex label to the list of raw graph
	// IDs that contain at least one vertex with that label, in the order
	// the graphs appear in the input.
	VertexLabels map[int][]int

	// EdgeLabels maps a frequent edge label to the number of raw graphs
	// that contain at least one edge with that label.
	EdgeLabels map[int]int
}

// ComputeFrequency performs the label-frequency pass: for each graph, it
// collects the *set* of vertex labels and the *set* of edge labels present
// (so a label counts at most once per graph), aggregates document
// frequency across graphs, and retains only labels at or above nsupport.
//
// Complexity: O(sum of |V|+|E| over all graphs).
func ComputeFrequency(graphs []RawGraph, nsupport int) Frequency {
	vertexDF := make(map[int][]int) // label -> graph ids seen so far (pre-filter)
	edgeDF := make(map[int]int)     // label -> count of graphs seen so far (pre-filter)

	for _, g := range graphs {
		seenVertexLabel := make(map[int]bool, len(g.Vertices))
		for _, v := range g.Vertices {
			if !seenVertexLabel[v.Label] {
				seenVertexLabel[v.Label] = true
				vertexDF[v.Label] = append(vertexDF[v.Label], g.ID)
			}
		}

		seenEdgeLabel := make(map[int]bool, len(g.Edges))
		for _, e := range g.Edges {
			if !seenEdgeLabel[e.Label] {
				seenEdgeLabel[e.Label] = true
				edgeDF[e.Label]++
			}
		}
	}

	freq := Frequency{
		VertexLabels: make(map[int][]int, len(vertexDF)),
		EdgeLabels:   make(map[int]int, len(edgeDF)),
	}
	for label, postings := range vertexDF {
		if len(postings) >= nsupport {
			freq.VertexLabels[label] = postings
		}
	}
	for label, count := range edgeDF {
		if count >= nsupport {
			freq.EdgeLabels[label] = count
		}
	}

	return freq
}
