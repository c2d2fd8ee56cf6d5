// Command arcpart generates a synthetic FPGA-like grid of pips and
// routing arcs, runs the recursive spatial partitioner over it, and
// prints the resulting distortion bands.
package main

import (
	"context"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
