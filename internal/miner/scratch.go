package miner

import (
	"github.com/subgraphminer/gspanmine/internal/canon"
	"github.com/subgraphminer/gspanmine/internal/history"
)

// workerScratch bundles one logical worker's exclusive per-call scratch:
// a history.Scratch for enumerate and a canon.Scratch for the
// canonicality test. Both are sized once at pool construction and reused
// for the life of the miner.
type workerScratch struct {
	id    int
	hist  *history.Scratch
	canon *canon.Scratch
}

// scratchPool is a fixed free-list of workerScratch, retrieved and
// returned around each unit of work that needs one. A fixed free-list
// rather than sync.Pool: this scratch is never garbage — it is reused
// deterministically until the miner finishes, so nothing should be
// allowed to evict it under GC pressure mid-recursion.
type scratchPool chan *workerScratch

func newScratchPool(workers, maxVertices, maxEdges int) scratchPool {
	pool := make(scratchPool, workers)
	for i := 0; i < workers; i++ {
		pool <- &workerScratch{
			id:    i,
			hist:  history.NewScratch(maxVertices, maxEdges),
			canon: canon.NewScratch(maxVertices, maxEdges),
		}
	}
	return pool
}

func (p scratchPool) acquire() *workerScratch { return <-p }
func (p scratchPool) release(ws *workerScratch) { p <- ws }
