package embedding

import "github.com/subgraphminer/gspanmine/internal/patterngraph"

// Embedding is one occurrence of a pattern in a specific input graph,
// encoded as a linked list through the pattern in reverse: Edge is the
// most recently discovered edge of this occurrence, and Prev chains back
// toward the root edge (Prev == nil at the root).
type Embedding struct {
	GraphID int
	Edge    *patterngraph.Edge
	Prev    *Embedding
}

// Depth returns the number of edges in this occurrence (the pattern's edge
// count), walking the Prev chain.
func (e *Embedding) Depth() int {
	n := 0
	for cur := e; cur != nil; cur = cur.Prev {
		n++
	}
	return n
}

// Projection is an ordered list of embeddings grouped by GraphID: all
// embeddings with the same GraphID are contiguous, and two distinct
// GraphID values bracket distinct runs.
type Projection []Embedding
