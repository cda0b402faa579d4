package dfscode

// RightmostPath computes the path in seq's DFS tree from vertex 0 to the
// largest-numbered vertex, returned as a list of indices into seq, stored
// in reverse order of discovery: the first entry is the index of the code
// that discovered the rightmost vertex, and subsequent entries walk back
// toward vertex 0.
//
// Recomputed whenever a forward code is appended to seq; unchanged by a
// backward append (callers only need to call this after forward
// extensions, but it is cheap enough — O(len(seq)) — to call unconditionally).
func RightmostPath(seq Sequence) []int {
	var rmp []int
	prevFrom := -1
	for i := len(seq) - 1; i >= 0; i-- {
		c := seq[i]
		if c.IsForward() && (len(rmp) == 0 || c.To == prevFrom) {
			rmp = append(rmp, i)
			prevFrom = c.From
		}
	}
	return rmp
}

// RightmostVertex returns the ID of the endpoint discovered by the last
// forward edge in seq — the rightmost vertex of the pattern described by
// seq. seq must be non-empty.
func RightmostVertex(seq Sequence) int {
	max := 0
	for _, c := range seq {
		if c.To > max {
			max = c.To
		}
		if c.From > max {
			max = c.From
		}
	}
	return max
}
