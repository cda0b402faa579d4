package canon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/subgraphminer/gspanmine/internal/canon"
	"github.com/subgraphminer/gspanmine/internal/dfscode"
)

func TestIsMin_Triangle_CanonicalSequenceAccepted(t *testing.T) {
	seq := dfscode.Sequence{
		{From: 0, To: 1, FromLabel: 1, EdgeLabel: 1, ToLabel: 1},
		{From: 1, To: 2, FromLabel: 1, EdgeLabel: 1, ToLabel: 1},
		{From: 2, To: 0, FromLabel: 1, EdgeLabel: 1, ToLabel: 1},
	}

	s := canon.NewScratch(8, 8)
	assert.True(t, s.IsMin(seq))
}

func TestIsMin_StarRootedAtLeaf_Accepted(t *testing.T) {
	// center labeled 2, both leaves labeled 1 — the canonical root is the
	// smaller-labeled leaf, since its (FromLabel, EdgeLabel, ToLabel)
	// triple of (1, 1, 2) beats the center-first triple of (2, 1, 1).
	seq := dfscode.Sequence{
		{From: 0, To: 1, FromLabel: 1, EdgeLabel: 1, ToLabel: 2},
		{From: 1, To: 2, FromLabel: 2, EdgeLabel: 1, ToLabel: 1},
	}

	s := canon.NewScratch(8, 8)
	assert.True(t, s.IsMin(seq))
}

func TestIsMin_StarRootedAtCenter_Rejected(t *testing.T) {
	// Same star, rooted at the center first — not canonical, since a
	// smaller root (the leaf-first code above) exists.
	seq := dfscode.Sequence{
		{From: 0, To: 1, FromLabel: 2, EdgeLabel: 1, ToLabel: 1},
		{From: 0, To: 2, FromLabel: 2, EdgeLabel: 1, ToLabel: 1},
	}

	s := canon.NewScratch(8, 8)
	assert.False(t, s.IsMin(seq))
}

func TestIsMin_FourCycle_CanonicalSequenceAccepted(t *testing.T) {
	seq := dfscode.Sequence{
		{From: 0, To: 1, FromLabel: 1, EdgeLabel: 1, ToLabel: 1},
		{From: 1, To: 2, FromLabel: 1, EdgeLabel: 1, ToLabel: 1},
		{From: 2, To: 3, FromLabel: 1, EdgeLabel: 1, ToLabel: 1},
		{From: 3, To: 0, FromLabel: 1, EdgeLabel: 1, ToLabel: 1},
	}

	s := canon.NewScratch(8, 8)
	assert.True(t, s.IsMin(seq))
}

func TestIsMin_ThreeEdgePath_CanonicalSequenceAccepted(t *testing.T) {
	seq := dfscode.Sequence{
		{From: 0, To: 1, FromLabel: 1, EdgeLabel: 1, ToLabel: 1},
		{From: 1, To: 2, FromLabel: 1, EdgeLabel: 1, ToLabel: 1},
		{From: 2, To: 3, FromLabel: 1, EdgeLabel: 1, ToLabel: 1},
	}

	s := canon.NewScratch(8, 8)
	assert.True(t, s.IsMin(seq))
}

func TestIsMin_PathRootedAtMiddleEdge_Rejected(t *testing.T) {
	// The same 3-edge path, but rooted at its middle edge: vertex 2 hangs
	// off vertex 1, vertex 3 hangs off vertex 0. The smaller extension
	// (2, 3) that disproves minimality at the last step is only reachable
	// from an embedding that enters the path at one of its far ends —
	// which is why the test must track every embedding of the prefix, not
	// just the one that maps the pattern onto itself.
	seq := dfscode.Sequence{
		{From: 0, To: 1, FromLabel: 1, EdgeLabel: 1, ToLabel: 1},
		{From: 1, To: 2, FromLabel: 1, EdgeLabel: 1, ToLabel: 1},
		{From: 0, To: 3, FromLabel: 1, EdgeLabel: 1, ToLabel: 1},
	}

	s := canon.NewScratch(8, 8)
	assert.False(t, s.IsMin(seq))
}

func TestIsMin_SingleCode_TriviallyMinimal(t *testing.T) {
	seq := dfscode.Sequence{{From: 0, To: 1, FromLabel: 1, EdgeLabel: 2, ToLabel: 3}}

	s := canon.NewScratch(8, 8)
	assert.True(t, s.IsMin(seq))
}

func TestIsMin_TriangleForwardClosingEdge_Rejected(t *testing.T) {
	// A backward edge closing the triangle back to vertex 0 is available
	// at step 2 (rmp = [1, 0]); encoding the same closure as a forward
	// edge instead violates the backward-before-forward precedence rule.
	seq := dfscode.Sequence{
		{From: 0, To: 1, FromLabel: 1, EdgeLabel: 1, ToLabel: 1},
		{From: 1, To: 2, FromLabel: 1, EdgeLabel: 1, ToLabel: 1},
		{From: 0, To: 2, FromLabel: 1, EdgeLabel: 1, ToLabel: 1},
	}

	s := canon.NewScratch(8, 8)
	assert.False(t, s.IsMin(seq))
}
