package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const triangleInput = `t # 0
v 0 1
v 1 1
v 2 1
e 0 1 2
e 1 2 2
e 0 2 2

t # 1
v 0 1
v 1 1
v 2 1
e 0 1 2
e 1 2 2
e 0 2 2
`

func TestParse_TwoTriangles(t *testing.T) {
	graphs, err := parse(strings.NewReader(triangleInput), Options{}.resolved())
	require.NoError(t, err)
	require.Len(t, graphs, 2)

	for _, g := range graphs {
		assert.Len(t, g.Vertices, 3)
		assert.Len(t, g.Edges, 3)
	}
	assert.Equal(t, 0, graphs[0].ID)
	assert.Equal(t, 1, graphs[1].ID)
}

func TestParse_BlankLinesIgnored(t *testing.T) {
	input := "\nt # 0\n\nv 0 7\n\ne 0 0 3\n\n"
	graphs, err := parse(strings.NewReader(input), Options{}.resolved())
	require.NoError(t, err)
	require.Len(t, graphs, 1)
	assert.Len(t, graphs[0].Vertices, 1)
	assert.Len(t, graphs[0].Edges, 1)
}

func TestParse_CustomMark(t *testing.T) {
	input := "t,#,0\nv,0,5\nv,1,6\ne,0,1,9\n"
	graphs, err := parse(strings.NewReader(input), Options{Mark: ","}.resolved())
	require.NoError(t, err)
	require.Len(t, graphs, 1)
	assert.Equal(t, 5, graphs[0].Vertices[0].Label)
	assert.Equal(t, 9, graphs[0].Edges[0].Label)
}

func TestParse_Rejects(t *testing.T) {
	cases := map[string]string{
		"unknown tag":             "z 0 1\n",
		"bad header literal":      "t X 0\n",
		"bad header id":           "t # notanumber\n",
		"vertex before header":    "v 0 1\n",
		"edge before header":      "e 0 1 2\n",
		"vertex wrong arity":      "t # 0\nv 0\n",
		"edge wrong arity":        "t # 0\ne 0 1\n",
		"vertex non-numeric id":   "t # 0\nv x 1\n",
		"edge non-numeric label":  "t # 0\ne 0 1 x\n",
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parse(strings.NewReader(input), Options{}.resolved())
			assert.Error(t, err)
		})
	}
}

func TestOptions_Resolved_DefaultsMark(t *testing.T) {
	assert.Equal(t, " ", Options{}.resolved().Mark)
	assert.Equal(t, ";", Options{Mark: ";"}.resolved().Mark)
}
