package miner

import "runtime"

// Config holds the mining runtime knobs: whether mining runs in parallel
// at all, and how many worker scratch slots to preallocate.
//
// The fork-join pool is the default (Serial's zero value is false): a
// bool field can't default true at its zero value, so the sense is
// inverted instead of relying on a separate "was this set" flag.
type Config struct {
	// Serial disables the fork-join pool and runs every task inline on
	// the calling goroutine, with identical semantics to the parallel
	// path (the tests compare both modes' pattern sets).
	Serial bool

	// Workers bounds concurrent tasks and sizes the scratch free-list.
	// Zero means runtime.GOMAXPROCS(0). Ignored when Serial is set.
	Workers int
}

func (c Config) resolved() Config {
	out := c
	if out.Workers <= 0 {
		out.Workers = runtime.GOMAXPROCS(0)
	}
	if out.Serial {
		out.Workers = 1
	}
	return out
}
