// Package cmd wires the epiunfold command-line interface with cobra, as a
// single-command tool with persistent flags bound in init.
package cmd

import (
	"github.com/spf13/cobra"
)

var (
	outputDir string
	verbose   bool
	skipCore  bool
)

// rootCmd is epiunfold's single command: it takes one positional
// argument, the path to a game file.
var rootCmd = &cobra.Command{
	Use:   "epiunfold <game-file>",
	Short: "Visualize a distributed game and its epistemic unfolding",
	Long: `epiunfold loads a distributed game of imperfect information from a
game file, visualizes it, and fully unfolds its epistemic model up to
homomorphic cores, writing DOT sources and rendered PNG images for the
input game, every discovered location, and the resulting unfolded
location graph.`,
	Example: `  # Unfold a game, writing results to ./main
  epiunfold ./testdata/coin_flip.game

  # Unfold verbosely into a custom directory, skipping core reduction
  epiunfold -v -c -d ./out ./testdata/coin_flip.game`,
	Args: cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		return run(args[0], outputDir, verbose, skipCore)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().StringVarP(&outputDir, "dir", "d", "main", "write the results to DIR")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print the encountered models of the unfolding")
	rootCmd.Flags().BoolVarP(&skipCore, "skip-core", "c", false, "skip finding the homomorphic core of the unfolded game (generally produces unwieldy games)")
}
