// Command gspanmine is the CLI front end for the frequent-subgraph miner:
// it parses an input graph database, mines it for frequent connected
// subgraph patterns, and writes the results in the gSpan text format.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
