package engine

import (
	"github.com/subgraphminer/gspanmine/internal/dfscode"
	"github.com/subgraphminer/gspanmine/internal/embedding"
	"github.com/subgraphminer/gspanmine/internal/history"
	"github.com/subgraphminer/gspanmine/internal/patterngraph"
)

// Result is the pair of ordered candidate maps Enumerate produces: the
// backward extensions (ordered by dfscode.CompareBackward) and the forward
// extensions (ordered by dfscode.CompareForward).
type Result struct {
	Backward *ProjectionMap
	Forward  *ProjectionMap
}

// Enumerate runs the full rightmost-extension step for one pattern: for
// every embedding in proj, it rebuilds
// scratch's history against that embedding's graph, then runs the
// backward, first-forward and other-forward rules and appends every
// resulting extension to the appropriate ordered map.
//
// scratch is the caller's per-worker history.Scratch; Enumerate mutates it
// on every embedding but leaves it exclusively owned by the caller.
func Enumerate(seq dfscode.Sequence, proj embedding.Projection, rmp []int, graphs map[int]*patterngraph.Graph, scratch *history.Scratch) Result {
	backward := NewBackwardMap()
	forward := NewForwardMap()

	for i := range proj {
		emb := &proj[i]
		g := graphs[emb.GraphID]
		scratch.Build(emb)

		edgeAt := scratch.GetEdge
		used := scratch.HasEdge
		inEmbedding := scratch.HasVertex

		for _, c := range Backward(g, seq, rmp, edgeAt, used) {
			backward.Append(c.Code, embedding.Embedding{GraphID: emb.GraphID, Edge: c.Edge, Prev: emb})
		}
		for _, c := range FirstForward(g, seq, rmp, edgeAt, inEmbedding) {
			forward.Append(c.Code, embedding.Embedding{GraphID: emb.GraphID, Edge: c.Edge, Prev: emb})
		}
		for _, c := range OtherForward(g, seq, rmp, edgeAt, inEmbedding) {
			forward.Append(c.Code, embedding.Embedding{GraphID: emb.GraphID, Edge: c.Edge, Prev: emb})
		}
	}

	return Result{Backward: backward, Forward: forward}
}
