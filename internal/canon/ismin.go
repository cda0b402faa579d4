package canon

import (
	"github.com/subgraphminer/gspanmine/internal/dfscode"
	"github.com/subgraphminer/gspanmine/internal/engine"
)

// IsMin reports whether seq is the minimum DFS code of the pattern it
// describes. The pattern is rebuilt as its own minimum graph, and every
// code in seq is then replayed against every embedding of the preceding
// prefix inside that graph, under the same backward/forward rules
// internal/engine applies to real database graphs. The first step at
// which a strictly smaller extension exists — in any embedding of the
// prefix, not just one — proves seq non-canonical; the pattern will be
// (or was) produced under its true minimum code elsewhere.
//
// The min-projection grows one slice per step: rows [start, end) hold
// every embedding of seq[:step], and the rows appended while checking
// seq[step] become the next step's slice. Keeping the whole slice is
// load-bearing: symmetric patterns (cycles, equal-label paths) embed
// into their own minimum graph many times over, and the smallest
// extension at a step may be reachable from any one of those
// embeddings.
func (s *Scratch) IsMin(seq dfscode.Sequence) bool {
	s.buildMinGraph(seq)
	s.minProjection = s.minProjection[:0]
	s.rmp = append(s.rmp[:0], 0)
	if len(seq) == 1 {
		return true
	}
	g := s.minGraph

	// Root step: every half-edge whose endpoint labels are non-decreasing
	// is a candidate starting direction (the mirrored half-edge covers the
	// opposite orientation when the roles swap). A root strictly smaller
	// than seq[0] in project order disproves minimality outright; every
	// root equal to it seeds one row of the projection.
	root := seq[0]
	for from := range g.Vertices {
		for idx := range g.Adjacency[from] {
			e := &g.Adjacency[from][idx]
			if g.Vertices[e.From].Label > g.Vertices[e.To].Label {
				continue
			}
			cand := dfscode.Code{
				From:      0,
				To:        1,
				FromLabel: g.Vertices[e.From].Label,
				EdgeLabel: e.Label,
				ToLabel:   g.Vertices[e.To].Label,
			}
			switch c := dfscode.CompareProject(cand, root); {
			case c < 0:
				return false
			case c == 0:
				s.minProjection = append(s.minProjection, MinEmbedding{Edge: e, Prev: -1})
			}
		}
	}

	start := 0
	for step := 1; step < len(seq); step++ {
		code := seq[step]
		prefix := seq[:step]
		s.rmp = dfscode.RightmostPath(prefix)
		end := len(s.minProjection)

		if code.IsBackward() {
			found := false
			var best dfscode.Code
			for j := start; j < end; j++ {
				s.hist.build(s.minProjection, j)
				for _, c := range engine.Backward(g, prefix, s.rmp, s.hist.getEdge, s.hist.hasEdge) {
					if !found || dfscode.CompareBackward(c.Code, best) < 0 {
						found, best = true, c.Code
					}
					if c.Code.Equal(code) {
						s.minProjection = append(s.minProjection, MinEmbedding{Edge: c.Edge, Prev: j})
					}
				}
			}
			if !found || !best.Equal(code) {
				return false
			}
			start = end
			continue
		}

		// A forward code is canonical only if no backward extension exists
		// anywhere in this slice: backward codes always precede forward
		// ones at the same step, so one realizable backward edge means a
		// smaller sequence describes the same pattern.
		found := false
		var best dfscode.Code
		for j := start; j < end; j++ {
			s.hist.build(s.minProjection, j)
			if len(engine.Backward(g, prefix, s.rmp, s.hist.getEdge, s.hist.hasEdge)) > 0 {
				return false
			}
			cands := engine.FirstForward(g, prefix, s.rmp, s.hist.getEdge, s.hist.hasVertex)
			cands = append(cands, engine.OtherForward(g, prefix, s.rmp, s.hist.getEdge, s.hist.hasVertex)...)
			for _, c := range cands {
				if !found || dfscode.CompareForward(c.Code, best) < 0 {
					found, best = true, c.Code
				}
				if c.Code.Equal(code) {
					s.minProjection = append(s.minProjection, MinEmbedding{Edge: c.Edge, Prev: j})
				}
			}
		}
		if !found || !best.Equal(code) {
			return false
		}
		start = end
	}

	return true
}
