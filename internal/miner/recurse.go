package miner

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/subgraphminer/gspanmine/internal/dfscode"
	"github.com/subgraphminer/gspanmine/internal/embedding"
	"github.com/subgraphminer/gspanmine/internal/engine"
	"github.com/subgraphminer/gspanmine/internal/patterngraph"
	"github.com/subgraphminer/gspanmine/internal/report"
)

// mineChild filters one candidate extension by support, tests
// canonicality, reports, and recurses. thread is a logical trace id inherited
// unchanged from the root candidate that began this recursive branch —
// not a worker/goroutine identifier — so that a child's "thread" field
// always matches the thread its parent was reported under.
func (m *Miner) mineChild(ctx context.Context, eg *errgroup.Group, proj embedding.Projection, seq dfscode.Sequence, parentSeq int, thread int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	support := embedding.CountSupport(proj)
	if support < m.db.NSupport {
		return nil
	}

	ws := m.pool.acquire()
	isMin := ws.canon.IsMin(seq)

	if m.log != nil {
		m.log.Task(m.taskID(), parentSeq, len(seq)).WithField("canonical", isMin).Debug("candidate evaluated")
	}

	if !isMin {
		// Not the pattern's minimum DFS code: it will be (or was) produced
		// and reported under its canonical code elsewhere.
		m.pool.release(ws)
		return nil
	}

	// The record's vertex lines come from the minimum graph the
	// canonicality test just built; it is scratch state, so the vertex
	// slice is copied out before the scratch goes back to the pool. The
	// output buffer is indexed by the held scratch's slot id — holding the
	// scratch is what makes the append exclusive.
	src := ws.canon.MinGraph()
	minGraph := &patterngraph.Graph{Vertices: append([]patterngraph.Vertex(nil), src.Vertices...)}

	mySeq := m.nextPatternSeq()
	m.coll.Buffer(ws.id).Append(report.Record{
		Seq:       mySeq,
		Support:   support,
		Thread:    thread,
		ParentSeq: parentSeq,
		Graph:     minGraph,
		Codes:     seq.Clone(),
		GraphIDs:  embedding.GraphIDs(proj),
	})
	m.pool.release(ws)

	rmp := dfscode.RightmostPath(seq)
	return m.mineSubgraph(ctx, eg, proj, seq, rmp, mySeq, thread)
}

// mineSubgraph enumerates this pattern's extensions, then hands each to
// mineChild in key order — backward extensions ascending, then forward
// extensions descending, so growing-depth extensions are explored first.
func (m *Miner) mineSubgraph(ctx context.Context, eg *errgroup.Group, proj embedding.Projection, seq dfscode.Sequence, rmp []int, parentSeq int, thread int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ws := m.pool.acquire()
	result := engine.Enumerate(seq, proj, rmp, m.graphs, ws.hist)
	m.pool.release(ws)

	for _, entry := range result.Backward.Entries() {
		childSeq := append(seq.Clone(), entry.Code) // value copy: the child task must not alias the parent's codes
		childProj := entry.Projection
		if err := m.submit(eg, func() error {
			return m.mineChild(ctx, eg, childProj, childSeq, parentSeq, thread)
		}); err != nil {
			return err
		}
	}
	for _, entry := range result.Forward.EntriesDescending() {
		childSeq := append(seq.Clone(), entry.Code)
		childProj := entry.Projection
		if err := m.submit(eg, func() error {
			return m.mineChild(ctx, eg, childProj, childSeq, parentSeq, thread)
		}); err != nil {
			return err
		}
	}

	return nil
}
