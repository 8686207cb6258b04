package vizdot

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// ErrDotNotFound is returned when the `dot` binary cannot be located on
// PATH. Rendering DOT text to a file always succeeds independent of
// this; only PNG rendering needs the binary.
var ErrDotNotFound = errors.New("vizdot: the graphviz `dot` binary was not found on PATH")

// WriteDOT writes dot text to path, truncating any existing file. The
// handle is closed on every return path.
func WriteDOT(path, dot string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("vizdot: creating %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(dot); err != nil {
		return fmt.Errorf("vizdot: writing %s: %w", path, err)
	}
	return nil
}

// RenderPNG shells out to the `dot` binary to render dotPath to a PNG at
// pngPath, the same mechanism main.py's CLI entry point uses
// (`dot -Tpng ... -o ...`).
func RenderPNG(dotPath, pngPath string) error {
	if _, err := exec.LookPath("dot"); err != nil {
		return ErrDotNotFound
	}
	cmd := exec.Command("dot", "-Tpng", dotPath, "-o", pngPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("vizdot: rendering %s to %s: %w: %s", dotPath, pngPath, err, out)
	}
	return nil
}

// WriteAndRenderPNG writes dot text to dotPath and renders it to a PNG at
// pngPath in one step.
func WriteAndRenderPNG(dotPath, pngPath, dot string) error {
	if err := WriteDOT(dotPath, dot); err != nil {
		return err
	}
	return RenderPNG(dotPath, pngPath)
}
