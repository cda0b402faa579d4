package engine

import (
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"

	"github.com/subgraphminer/gspanmine/internal/dfscode"
	"github.com/subgraphminer/gspanmine/internal/embedding"
)

// ProjectionMap is an ordered candidate-code -> extended-Projection map.
// It wraps a red-black tree keyed by dfscode.Code so that draining it in
// key order — ascending for backward extensions, descending for forward
// ones — never requires a separate sort pass.
type ProjectionMap struct {
	tree *redblacktree.Tree
}

// newComparator adapts a dfscode.Code comparator to gods' utils.Comparator
// signature.
func newComparator(cmp func(a, b dfscode.Code) int) utils.Comparator {
	return func(a, b interface{}) int {
		return cmp(a.(dfscode.Code), b.(dfscode.Code))
	}
}

// NewBackwardMap returns an empty ProjectionMap ordered by
// dfscode.CompareBackward.
func NewBackwardMap() *ProjectionMap {
	return &ProjectionMap{tree: redblacktree.NewWith(newComparator(dfscode.CompareBackward))}
}

// NewForwardMap returns an empty ProjectionMap ordered by
// dfscode.CompareForward.
func NewForwardMap() *ProjectionMap {
	return &ProjectionMap{tree: redblacktree.NewWith(newComparator(dfscode.CompareForward))}
}

// NewProjectMap returns an empty ProjectionMap ordered by
// dfscode.CompareProject, used at the pattern root where initial one-edge
// candidates are keyed by project-order rather than backward/forward-order.
func NewProjectMap() *ProjectionMap {
	return &ProjectionMap{tree: redblacktree.NewWith(newComparator(dfscode.CompareProject))}
}

// Append adds one extension entry under code, creating the entry's
// projection if this is the first embedding to produce that candidate
// code.
func (m *ProjectionMap) Append(code dfscode.Code, entry embedding.Embedding) {
	if v, found := m.tree.Get(code); found {
		p := v.(*embedding.Projection)
		*p = append(*p, entry)
		return
	}
	p := &embedding.Projection{entry}
	m.tree.Put(code, p)
}

// Entry pairs a candidate code with its accumulated projection.
type Entry struct {
	Code       dfscode.Code
	Projection embedding.Projection
}

// Entries drains the map into a slice in ascending key order (per the
// comparator it was constructed with).
func (m *ProjectionMap) Entries() []Entry {
	keys := m.tree.Keys()
	out := make([]Entry, 0, len(keys))
	for _, k := range keys {
		v, _ := m.tree.Get(k)
		out = append(out, Entry{Code: k.(dfscode.Code), Projection: *v.(*embedding.Projection)})
	}
	return out
}

// EntriesDescending drains the map into a slice in descending key order.
func (m *ProjectionMap) EntriesDescending() []Entry {
	asc := m.Entries()
	for i, j := 0, len(asc)-1; i < j; i, j = i+1, j-1 {
		asc[i], asc[j] = asc[j], asc[i]
	}
	return asc
}

// Size reports the number of distinct candidate codes currently held.
func (m *ProjectionMap) Size() int { return m.tree.Size() }
