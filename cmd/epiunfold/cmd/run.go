package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arvonis/epiunfold/epmodel"
	"github.com/arvonis/epiunfold/gamefile"
	"github.com/arvonis/epiunfold/unfold"
	"github.com/arvonis/epiunfold/vizdot"
)

// run loads the game at path, visualizes it, fully unfolds its epistemic
// model, and writes every artifact under dirPath (main.py's main /
// unfold_fully).
func run(path, dirPath string, verbose, skipCore bool) error {
	g, err := gamefile.Read(path)
	if err != nil {
		return fmt.Errorf("epiunfold: loading game: %w", err)
	}
	if verbose {
		fmt.Println("Game successfully loaded.")
	}

	if err := os.MkdirAll(dirPath, 0o755); err != nil {
		return fmt.Errorf("epiunfold: creating output directory: %w", err)
	}

	gameDotPath := filepath.Join(dirPath, "input_game.dot")
	gamePNGPath := filepath.Join(dirPath, "input_game.png")
	if err := vizdot.WriteAndRenderPNG(gameDotPath, gamePNGPath, vizdot.GameDOT(g)); err != nil {
		return fmt.Errorf("epiunfold: visualizing input game: %w", err)
	}
	if verbose {
		fmt.Println("Input game successfully visualized.")
		fmt.Println("Starting epistemic unfolding...")
	}

	modelDirName := "models"
	if err := os.MkdirAll(filepath.Join(dirPath, modelDirName), 0o755); err != nil {
		return fmt.Errorf("epiunfold: creating model directory: %w", err)
	}

	opts := []unfold.Option{unfold.WithCore(!skipCore)}
	if verbose {
		opts = append(opts, verboseHooks()...)
	}

	result, err := unfold.Unfold(g, opts...)
	if err != nil {
		return fmt.Errorf("epiunfold: unfolding game: %w", err)
	}

	images := make([]string, len(result.Locations))
	for i, loc := range result.Locations {
		relPath := filepath.Join(modelDirName, fmt.Sprintf("model%d.png", i))
		images[i] = relPath
		dotPath := filepath.Join(dirPath, modelDirName, fmt.Sprintf("model%d.dot", i))
		pngPath := filepath.Join(dirPath, relPath)
		if err := vizdot.WriteAndRenderPNG(dotPath, pngPath, vizdot.ModelDOT(loc)); err != nil {
			return fmt.Errorf("epiunfold: visualizing location %d: %w", i, err)
		}
	}

	unfoldedDotPath := filepath.Join(dirPath, "unfolded_game.dot")
	unfoldedPNGPath := filepath.Join(dirPath, "unfolded_game.png")
	if err := vizdot.WriteAndRenderPNG(unfoldedDotPath, unfoldedPNGPath, vizdot.UnfoldedDOT(result, images)); err != nil {
		return fmt.Errorf("epiunfold: visualizing unfolded game: %w", err)
	}

	return nil
}

// verboseHooks wires unfold.Options callbacks to print the unfolding's
// progress the way main.py's verbose mode does.
func verboseHooks() []unfold.Option {
	return []unfold.Option{
		unfold.WithOnDequeue(func(model *epmodel.EpistemicModel, index int) {
			fmt.Println()
			fmt.Println()
			fmt.Println(strings.Repeat("=", 79))
			fmt.Println(strings.Repeat("=", 79))
			fmt.Println(strings.Repeat("=", 79))
			fmt.Println("considering new model:")
			fmt.Println(model)
		}),
		unfold.WithOnSuccessors(func(model *epmodel.EpistemicModel, successors []epmodel.Successor) {
			fmt.Println(strings.Repeat(">", 79))
			fmt.Println("UNFOLDED TO", len(successors), "SUCCESSORS:")
		}),
		unfold.WithOnNewLocation(func(model *epmodel.EpistemicModel, index int) {
			fmt.Println(strings.Repeat("=", 40))
			fmt.Println("STRATEGIES:")
			fmt.Println(model)
		}),
		unfold.WithOnRepetition(func(model *epmodel.EpistemicModel, existingIndex int) {
			fmt.Println("MODEL REPETITION: Done unfolding the above model as it is isomorphic to:")
			fmt.Println(model)
		}),
	}
}
