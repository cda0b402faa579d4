// Package dfscode implements the DFS code: the five-tuple
// (from, to, from_label, edge_label, to_label) that describes one edge of
// a DFS traversal of a pattern, the three total orders gSpan imposes on
// DFS codes, and the rightmost-path computation those orders depend on.
//
// What:
//
//   - Code: one DFS code tuple. From < To is a forward edge (discovers a
//     new vertex); From > To is backward (closes a cycle). From == To is
//     invalid and never constructed.
//   - Sequence: an ordered []Code describing the traversal order of a DFS
//     tree; every prefix of a Sequence describes a connected subgraph.
//   - CompareProject/CompareBackward/CompareForward: gSpan's three code
//     orders, each falling back to a full five-field comparison to
//     produce a genuine total order (needed because they back an ordered
//     map key in internal/engine).
//   - RightmostPath: the path from vertex 0 to the largest-numbered vertex,
//     stored as Sequence indices in reverse order of discovery.
//
// Why:
//
//   - Every other package operates on Sequence and these orders; keeping
//     them in one small, dependency-free package makes the orders easy to
//     test in isolation against the gSpan literature's worked examples.
//
// Complexity:
//
//   - Compare* functions: O(1).
//   - RightmostPath: O(len(seq)).
package dfscode
