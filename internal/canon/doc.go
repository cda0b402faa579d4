// Package canon implements the minimum-DFS-code canonicality test: given a
// candidate dfscode.Sequence, decide whether it is the lexicographically
// smallest DFS code describing the pattern it encodes. Without
// this test internal/miner would emit every pattern once per distinct DFS
// traversal that discovers it — exponentially many times.
//
// What:
//
//   - Scratch: one worker's reusable buffer — the minimum graph rebuilt
//     from the candidate's own codes, the indexed min-projection, and a
//     small history-like helper that walks the min-projection's Prev
//     indices instead of linked pointers (the min-projection must be
//     truncatable on every tentative-code rejection, which an
//     internal/embedding-style linked list cannot do cheaply).
//   - IsMin: the minimality check itself — build the minimum graph,
//     check the root code, then inductively verify each further code is
//     the smallest possible extension at its step, reusing
//     internal/engine's Backward/FirstForward/OtherForward rules applied
//     to the minimum graph instead of a database graph.
//
// Complexity:
//
//   - IsMin: O(len(seq) * size of the minimum graph) in the worst case —
//     bounded by the pattern itself, since the minimum graph has no more
//     vertices or edges than the candidate pattern does.
package canon
