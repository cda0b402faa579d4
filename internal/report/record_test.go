package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/subgraphminer/gspanmine/internal/dfscode"
	"github.com/subgraphminer/gspanmine/internal/patterngraph"
	"github.com/subgraphminer/gspanmine/internal/report"
)

func triangleRecord() report.Record {
	g := &patterngraph.Graph{
		Vertices: []patterngraph.Vertex{{ID: 0, Label: 1}, {ID: 1, Label: 1}, {ID: 2, Label: 1}},
	}
	codes := dfscode.Sequence{
		{From: 0, To: 1, FromLabel: 1, EdgeLabel: 1, ToLabel: 1},
		{From: 1, To: 2, FromLabel: 1, EdgeLabel: 1, ToLabel: 1},
		{From: 2, To: 0, FromLabel: 1, EdgeLabel: 1, ToLabel: 1},
	}
	return report.Record{Seq: 2, Support: 1, Thread: 0, ParentSeq: -1, Graph: g, Codes: codes, GraphIDs: []int{0}}
}

func TestRecord_Format_HeaderOnly(t *testing.T) {
	r := triangleRecord()
	got := r.Format(report.Options{})
	assert.Equal(t, "t # 2 * 1\n", got)
}

func TestRecord_Format_WithParentsAtRoot(t *testing.T) {
	r := triangleRecord()
	got := r.Format(report.Options{EmitParents: true})
	assert.Equal(t, "t # 2 * 1\nparent : -1\n", got)
}

func TestRecord_Format_WithParentsNonRoot(t *testing.T) {
	r := triangleRecord()
	r.ParentSeq = 1
	r.Thread = 3
	got := r.Format(report.Options{EmitParents: true})
	assert.Equal(t, "t # 2 * 1\nparent : 1 thread : 3\n", got)
}

func TestRecord_Format_WithDFSBody(t *testing.T) {
	r := triangleRecord()
	got := r.Format(report.Options{EmitDFS: true})
	assert.Equal(t, "t # 2 * 1\nv 0 1\nv 1 1\nv 2 1\ne 0 1 1\ne 1 2 1\ne 2 0 1\nx: 0\n", got)
}
