package report

import "sort"

// Buffer is one worker's exclusive output buffer: records are
// appended only by the worker that owns it, in the order that worker
// emits them, and never touched by another worker.
type Buffer struct {
	records []Record
}

// Append adds r to the buffer.
func (b *Buffer) Append(r Record) {
	b.records = append(b.records, r)
}

// Collector owns one Buffer per worker slot, allocated once up front so
// that no worker ever contends on a shared append.
type Collector struct {
	buffers []*Buffer
}

// NewCollector allocates a Collector with one Buffer per worker.
func NewCollector(workers int) *Collector {
	buffers := make([]*Buffer, workers)
	for i := range buffers {
		buffers[i] = &Buffer{}
	}
	return &Collector{buffers: buffers}
}

// Buffer returns the exclusive Buffer for worker thread.
func (c *Collector) Buffer(thread int) *Buffer {
	return c.buffers[thread]
}

// Len reports how many worker buffers the Collector holds.
func (c *Collector) Len() int { return len(c.buffers) }

// All merges every worker's buffer into one slice, ordered by Seq. Pattern
// emission order across workers is not deterministic; ordering the
// saved file by assignment sequence keeps output stable across runs
// without claiming anything about emission order itself.
func (c *Collector) All() []Record {
	var out []Record
	for _, buf := range c.buffers {
		out = append(out, buf.records...)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Seq < out[j].Seq })
	return out
}
