package miner

import (
	"context"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/subgraphminer/gspanmine/internal/dfscode"
	"github.com/subgraphminer/gspanmine/internal/embedding"
	"github.com/subgraphminer/gspanmine/internal/engine"
	"github.com/subgraphminer/gspanmine/internal/minelog"
	"github.com/subgraphminer/gspanmine/internal/patterngraph"
	"github.com/subgraphminer/gspanmine/internal/report"
)

// Miner holds the read-only pruned database and the worker-exclusive
// resources (scratch pool, output collector) that the recursive search
// shares across tasks.
type Miner struct {
	db     *patterngraph.Database
	graphs map[int]*patterngraph.Graph
	cfg    Config
	pool   scratchPool
	coll   *report.Collector
	log    *minelog.Logger

	nextSeq    int64
	nextThread int64
}

// NewMinerFromGraphs builds a Miner over db. log may be nil to disable
// diagnostic logging entirely.
func NewMinerFromGraphs(db *patterngraph.Database, cfg Config, log *minelog.Logger) *Miner {
	cfg = cfg.resolved()

	graphs := make(map[int]*patterngraph.Graph, len(db.Graphs))
	for _, g := range db.Graphs {
		graphs[g.ID] = g
	}

	return &Miner{
		db:     db,
		graphs: graphs,
		cfg:    cfg,
		pool:   newScratchPool(cfg.Workers, db.MaxVertices+1, db.MaxEdges+1),
		coll:   report.NewCollector(cfg.Workers),
		log:    log,
	}
}

// Mine runs the full recursive enumeration to completion and returns the
// collected pattern records. The core itself never fails during normal
// operation — every infrequent, non-canonical, or exhausted branch
// returns normally; ctx is plumbed through purely as a cooperative
// cancellation point and is otherwise unused.
func (m *Miner) Mine(ctx context.Context) (*report.Collector, error) {
	eg, ctx := errgroup.WithContext(ctx)
	if !m.cfg.Serial {
		eg.SetLimit(m.cfg.Workers)
	}

	for _, entry := range m.rootCandidates() {
		thread := m.nextThreadID()
		seq := dfscode.Sequence{entry.Code}
		proj := entry.Projection

		if err := m.submit(eg, func() error { return m.mineChild(ctx, eg, proj, seq, -1, thread) }); err != nil {
			return nil, err
		}
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return m.coll, nil
}

// rootCandidates builds the initial one-edge patterns: the same
// construction first-forward extension uses, but keyed by project-order
// instead of forward-order, since there is no rightmost path yet to
// orient a backward/forward distinction.
func (m *Miner) rootCandidates() []engine.Entry {
	pm := engine.NewProjectMap()

	for _, g := range m.db.Graphs {
		for vID := range g.Vertices {
			v := g.Vertices[vID]
			for idx := range g.Adjacency[vID] {
				e := &g.Adjacency[vID][idx]
				to := g.Vertices[e.To]
				if v.Label > to.Label {
					continue // symmetric pruning: the opposite orientation is visited when roles swap
				}
				code := dfscode.Code{From: 0, To: 1, FromLabel: v.Label, EdgeLabel: e.Label, ToLabel: to.Label}
				pm.Append(code, embedding.Embedding{GraphID: g.ID, Edge: e})
			}
		}
	}

	return pm.Entries()
}

// submit hands task to the fork-join pool if a worker slot is free, and
// runs it inline on the calling goroutine otherwise. Inline fallback
// rather than a blocking Go: tasks submit their own children while still
// occupying a slot, so blocking here until a slot frees would let every
// worker wait on every other. Inline errors propagate directly through
// the caller's return; scheduled errors surface later via eg.Wait().
func (m *Miner) submit(eg *errgroup.Group, task func() error) error {
	if m.cfg.Serial || !eg.TryGo(task) {
		return task()
	}
	return nil
}

func (m *Miner) nextPatternSeq() int {
	return int(atomic.AddInt64(&m.nextSeq, 1) - 1)
}

func (m *Miner) nextThreadID() int {
	return int(atomic.AddInt64(&m.nextThread, 1) - 1)
}

func (m *Miner) taskID() string { return uuid.NewString() }
