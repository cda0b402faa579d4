// Package testgraphs builds small, deterministic RawGraph fixtures —
// triangles, cycles, complete graphs, paths, stars — for use in tests
// across the rest of the module. Constructors return plain
// patterngraph.RawGraph values with a stable vertex and edge order, so a
// test's expected pattern set never shifts under it.
package testgraphs
