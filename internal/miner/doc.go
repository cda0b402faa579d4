// Package miner implements the recursive frequent-subgraph search:
// mineSubgraph drains one pattern's backward/forward extensions in key
// order and hands each to mineChild, which filters by support, tests
// canonicality, reports, and recurses. Parallelism is a bounded fork-join
// pool (golang.org/x/sync/errgroup); a serial mode with identical
// semantics is a runtime switch, not a build-time one.
package miner
