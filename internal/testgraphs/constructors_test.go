package testgraphs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/subgraphminer/gspanmine/internal/testgraphs"
)

func TestCycle_EmitsExpectedShape(t *testing.T) {
	g := testgraphs.Cycle(0, 4, 1, 2)
	assert.Len(t, g.Vertices, 4)
	assert.Len(t, g.Edges, 4)
	assert.Equal(t, 3, g.Edges[3].From)
	assert.Equal(t, 0, g.Edges[3].To) // wraps back to the first vertex
}

func TestComplete_EmitsAllPairs(t *testing.T) {
	g := testgraphs.Complete(0, 4, 1, 1)
	assert.Len(t, g.Vertices, 4)
	assert.Len(t, g.Edges, 6) // C(4,2)
}

func TestStar_CenterConnectsEveryLeaf(t *testing.T) {
	g := testgraphs.Star(0, 3, 2, 1, 1)
	assert.Len(t, g.Vertices, 4)
	assert.Len(t, g.Edges, 3)
	for _, e := range g.Edges {
		assert.Equal(t, 0, e.From)
	}
}
