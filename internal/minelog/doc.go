// Package minelog provides the structured diagnostic logger used by
// internal/miner and cmd/gspanmine. The candidate-generation and
// canonicality packages (internal/engine, internal/canon) never import
// it — it exists purely for operator-facing observability (structured
// fields via logrus, optional rotating file output via lumberjack), not
// for anything the mining core depends on for correctness.
package minelog
