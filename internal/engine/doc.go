// Package engine implements the gSpan rightmost-extension rules: the
// three candidate-generation procedures (backward, first-forward,
// other-forward) applied against a graph's adjacency lists, and the
// Enumerate driver that applies them across an entire Projection to build
// the two ordered candidate maps the recursive miner consumes.
//
// What:
//
//   - Backward/FirstForward/OtherForward: pure functions over a single
//     graph, a DFS code Sequence, a rightmost path, and the caller's
//     "already used" / "already in the embedding" predicates. They know
//     nothing about whether they're being run against a real database
//     graph (many embeddings, via internal/history) or the single minimum
//     graph internal/canon reconstructs from a candidate's own codes —
//     that distinction lives entirely in the predicates the caller passes.
//   - Enumerate: the real-database driver. For every embedding in a
//     pattern's projection, rebuilds history, runs the three rules, and
//     appends each resulting extension to an ordered map keyed by
//     candidate dfscode.Code — backward entries ordered by
//     dfscode.CompareBackward, forward entries by dfscode.CompareForward.
//
// Why sharing the candidate rules with internal/canon matters: the
// canonicality test must apply the *identical* extension rule to the
// candidate's own minimum graph, or it risks drifting from what Enumerate
// actually produces and silently dropping frequent patterns.
//
// Complexity:
//
//   - Enumerate: O(len(projection) * (|rmp| + max degree)).
package engine
