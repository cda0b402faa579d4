// Package patterngraph owns the graph database that gSpan mines over: the
// raw input graphs as read by internal/ingest, the frequency pass that
// decides which vertex and edge labels survive, and the pruned graphs that
// the rest of the miner sees.
//
// What:
//
//   - RawGraph/RawVertex/RawEdge: the ingest-level representation, one edge
//     per input "e" line.
//   - Frequency: one linear pass over the raw graphs producing the frequent
//     vertex- and edge-label sets (with posting lists for vertex labels).
//   - Graph/Vertex/Edge: the pruned, renumbered representation used by every
//     downstream package. Every surviving edge is materialized twice, once
//     on each endpoint's adjacency list, sharing an edge ID.
//   - Database: the read-only collection of pruned graphs plus the label
//     sets and the derived minimum support count.
//
// Why:
//
//   - Centralizing pruning here means internal/engine, internal/canon and
//     internal/miner only ever see graphs with contiguous vertex IDs,
//     frequent labels, and doubled adjacency — no defensive checks needed
//     downstream.
//
// Complexity:
//
//   - Frequency pass: O(sum of |V|+|E| over all raw graphs).
//   - Pruning: O(sum of |V|+|E|), one renumbering pass per graph.
//
// Errors:
//
//   - ErrEmptyDatabase        no raw graphs were supplied.
//   - ErrInvalidSupport       support threshold outside (0, 1].
package patterngraph
