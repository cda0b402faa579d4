// Package embedding defines one occurrence of a pattern inside a specific
// input graph (an embedding), and the ordered, graph-id-grouped list of
// all occurrences across the database (a Projection).
//
// What:
//
//   - Embedding: a linked list through the pattern's edges in reverse —
//     the most recently discovered edge is the head, walking Prev toward
//     the root edge (Prev == nil there). Length equals the pattern's edge
//     count.
//   - Projection: an ordered []Embedding grouped by GraphID; all
//     embeddings of the same graph are contiguous.
//   - CountSupport: the number of distinct GraphID runs in a Projection.
//
// Why:
//
//   - A linked representation lets internal/engine extend an embedding by
//     appending one node without touching the embeddings it was derived
//     from — every embedding in a projection shares structure with its
//     parent projection's embeddings, which is exactly what makes the
//     recursive extension O(pattern edges) per new embedding rather than
//     O(pattern edges squared).
//
// Complexity:
//
//   - CountSupport: O(len(projection)).
package embedding
