// Package ingest parses the line-oriented graph input format: "t # <id>"
// starts a graph, "v <id> <label>" adds a vertex, "e <from> <to> <label>"
// adds an undirected edge, and blank lines are ignored.
//
// What:
//
//   - Options: the configurable field separator (Mark, default " ").
//   - Load: opens path (with a small bounded retry around the transient
//     os.Open boundary) and parses it into []patterngraph.RawGraph.
//
// Why:
//
//   - This is the one real I/O boundary in the mining pipeline; everything
//     downstream of Load operates on in-memory values — the whole input
//     database is assumed to fit in memory.
//
// Errors:
//
//   - ErrMalformedLine   a v/e/t line had the wrong token count or a
//     non-numeric field where an integer was expected.
//   - ErrUnknownTag      a non-blank line's leading token was not t/v/e.
//   - ErrIO              the input path could not be opened or read.
//
// Malformed lines are rejected with a fatal error rather than silently
// truncated or accepted by prefix.
package ingest
