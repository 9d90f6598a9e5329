// Command minesolve drives the constraint-propagation solver: an
// interactive TUI, a batch JSON scenario replayer, and a
// self-play benchmark.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
