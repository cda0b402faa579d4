package canon

import "github.com/subgraphminer/gspanmine/internal/patterngraph"

// MinEmbedding is one row of the indexed min-projection used only by the
// canonicality test: Edge is the edge this row contributes, Prev is the
// index of the row this one extends, or -1 at the root. It is indexed
// rather than linked because the test must truncate the projection on
// every tentative-code rejection.
type MinEmbedding struct {
	Edge *patterngraph.Edge
	Prev int
}
