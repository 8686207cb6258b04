// Command epiunfold visualizes a distributed game and its epistemic
// unfolding up to homomorphic cores, writing DOT sources and rendered PNG
// images for the input game, every discovered location's model, and the
// unfolded location graph.
package main

import (
	"fmt"
	"os"

	"github.com/arvonis/epiunfold/cmd/epiunfold/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
