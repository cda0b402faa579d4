package engine

import (
	"github.com/subgraphminer/gspanmine/internal/dfscode"
	"github.com/subgraphminer/gspanmine/internal/patterngraph"
)

// Candidate is one rightmost-path extension: the DFS code that would
// describe it, paired with the graph edge that realizes it.
type Candidate struct {
	Code dfscode.Code
	Edge *patterngraph.Edge
}

// EdgeAt resolves the edge discovered at rightmost-path position idx,
// counting from the bottom of the pattern. Real enumeration
// backs this with history.Scratch.GetEdge; the canonicality test backs it
// with its own indexed min-history.
type EdgeAt func(rmpIndex int) *patterngraph.Edge

// Used reports whether edge id is already part of the current embedding.
type Used func(edgeID int) bool

// InEmbedding reports whether vertex id is already part of the current
// embedding.
type InEmbedding func(vertexID int) bool

// Backward enumerates the backward extensions of one embedding: edges
// from the rightmost vertex closing a cycle to an earlier vertex on the
// rightmost path. lastEdge is the edge that discovered the rightmost
// vertex (rmp[0]); the loop walks the rightmost path from its top
// (excluding position 0, which only supplies the rightmost vertex itself)
// down to position 1.
func Backward(g *patterngraph.Graph, seq dfscode.Sequence, rmp []int, edgeAt EdgeAt, used Used) []Candidate {
	if len(rmp) < 2 {
		return nil
	}

	lastEdge := edgeAt(rmp[0])
	lastNode := g.Vertices[lastEdge.To]

	var out []Candidate
	for i := len(rmp) - 1; i >= 1; i-- {
		edge := edgeAt(rmp[i])
		adj := g.Adjacency[lastEdge.To]
		for idx := range adj {
			ln := &adj[idx]
			if used(ln.ID) {
				continue
			}
			if ln.To != edge.From {
				continue
			}
			if !(ln.Label > edge.Label || (ln.Label == edge.Label && lastNode.Label >= g.Vertices[edge.To].Label)) {
				continue
			}

			out = append(out, Candidate{
				Code: dfscode.Code{
					From:      seq[rmp[0]].To,
					To:        seq[rmp[i]].From,
					FromLabel: lastNode.Label,
					EdgeLabel: ln.Label,
					ToLabel:   g.Vertices[edge.From].Label,
				},
				Edge: ln,
			})
		}
	}
	return out
}

// FirstForward enumerates forward extensions directly from the rightmost
// vertex.
func FirstForward(g *patterngraph.Graph, seq dfscode.Sequence, rmp []int, edgeAt EdgeAt, inEmbedding InEmbedding) []Candidate {
	lastEdge := edgeAt(rmp[0])
	lastNode := g.Vertices[lastEdge.To]
	rmp0To := seq[rmp[0]].To
	minFromLabel := seq[0].FromLabel

	var out []Candidate
	adj := g.Adjacency[lastEdge.To]
	for idx := range adj {
		ln := &adj[idx]
		if inEmbedding(ln.To) {
			continue
		}
		if g.Vertices[ln.To].Label < minFromLabel {
			continue
		}

		out = append(out, Candidate{
			Code: dfscode.Code{
				From:      rmp0To,
				To:        rmp0To + 1,
				FromLabel: lastNode.Label,
				EdgeLabel: ln.Label,
				ToLabel:   g.Vertices[ln.To].Label,
			},
			Edge: ln,
		})
	}
	return out
}

// OtherForward enumerates forward extensions from every rightmost-path
// vertex other than the rightmost one itself.
func OtherForward(g *patterngraph.Graph, seq dfscode.Sequence, rmp []int, edgeAt EdgeAt, inEmbedding InEmbedding) []Candidate {
	newTo := seq[rmp[0]].To + 1
	minFromLabel := seq[0].FromLabel

	var out []Candidate
	for _, idx := range rmp {
		curEdge := edgeAt(idx)
		curNode := g.Vertices[curEdge.From]
		adj := g.Adjacency[curEdge.From]
		for j := range adj {
			cn := &adj[j]
			if cn.To == curEdge.To {
				continue
			}
			if inEmbedding(cn.To) {
				continue
			}
			if g.Vertices[cn.To].Label < minFromLabel {
				continue
			}
			if !(curEdge.Label < cn.Label || (curEdge.Label == cn.Label && g.Vertices[curEdge.To].Label <= g.Vertices[cn.To].Label)) {
				continue
			}

			out = append(out, Candidate{
				Code: dfscode.Code{
					From:      seq[idx].From,
					To:        newTo,
					FromLabel: curNode.Label,
					EdgeLabel: cn.Label,
					ToLabel:   g.Vertices[cn.To].Label,
				},
				Edge: cn,
			})
		}
	}
	return out
}
