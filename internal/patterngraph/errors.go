package patterngraph

import "errors"

// Sentinel errors for graph-store construction. All are fatal parameter
// errors at the boundary between internal/ingest and the mining driver.
var (
	// ErrEmptyDatabase indicates zero raw graphs were supplied to NewDatabase.
	ErrEmptyDatabase = errors.New("patterngraph: no input graphs")

	// ErrInvalidSupport indicates the support threshold was not in (0, 1].
	ErrInvalidSupport = errors.New("patterngraph: support threshold must be in (0, 1]")
)
