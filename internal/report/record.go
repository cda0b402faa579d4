package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/subgraphminer/gspanmine/internal/dfscode"
	"github.com/subgraphminer/gspanmine/internal/patterngraph"
)

// Record is one emitted pattern: its sequence number, support, the thread
// (the logical id of the root branch it was mined under, not a worker
// id), its parent's sequence number (-1 at the
// root), the minimum graph built from its codes (for vertex lines), its
// DFS codes (for edge lines), and the distinct graph ids it occurs in, in
// their appearance order.
type Record struct {
	Seq       int
	Support   int
	Thread    int
	ParentSeq int
	Graph     *patterngraph.Graph
	Codes     dfscode.Sequence
	GraphIDs  []int
}

// Options controls which optional sections Format emits, mirroring the
// CLI's -p/--parents and -d/--dfs flags.
type Options struct {
	EmitParents bool
	EmitDFS     bool
}

// Format renders r: the header line always, the parent line
// when opts.EmitParents, and the vertex/edge/x body when opts.EmitDFS.
func (r Record) Format(opts Options) string {
	var b strings.Builder

	fmt.Fprintf(&b, "t # %d * %d\n", r.Seq, r.Support)

	if opts.EmitParents {
		if r.ParentSeq < 0 {
			b.WriteString("parent : -1\n")
		} else {
			fmt.Fprintf(&b, "parent : %d thread : %d\n", r.ParentSeq, r.Thread)
		}
	}

	if opts.EmitDFS {
		for _, v := range r.Graph.Vertices {
			fmt.Fprintf(&b, "v %d %d\n", v.ID, v.Label)
		}
		for _, c := range r.Codes {
			fmt.Fprintf(&b, "e %d %d %d\n", c.From, c.To, c.EdgeLabel)
		}
		ids := make([]string, len(r.GraphIDs))
		for i, id := range r.GraphIDs {
			ids[i] = strconv.Itoa(id)
		}
		fmt.Fprintf(&b, "x: %s\n", strings.Join(ids, " "))
	}

	return b.String()
}
