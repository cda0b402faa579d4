// Package history implements the per-worker scratch buffer that
// reconstructs, in O(pattern depth), the edge and vertex membership of one
// embedding within its input graph — the embedding's history.
//
// What:
//
//   - Scratch: sized once at worker startup to the worst-case graph in the
//     pruned database (max edge id + 1, max vertex count + 1). Build
//     rebuilds three buffers from a single embedding: an ordered slice of
//     edge pointers (newest-to-oldest along the embedding's Prev chain), a
//     has-edge bitmap indexed by edge ID, and a has-vertex bitmap indexed
//     by vertex ID.
//   - GetEdge(rmpIndex) returns the edge that DFS code rmpIndex maps to,
//     counting from the bottom of the pattern (index 0 is the root edge;
//     callers pass rightmost-path entries, which are DFS-code indices).
//
// Why:
//
//   - Every embedding in a projection shares structure with its ancestors
//     (internal/embedding's linked representation), so re-deriving "which
//     edges/vertices does this occurrence touch" from scratch each time a
//     candidate is tested is the only way to get a correct "not already
//     used" check without mutating shared state.
//
// Complexity:
//
//   - Build: O(depth of the embedding), i.e. O(pattern edge count).
//   - HasEdge/HasVertex/GetEdge: O(1).
package history
