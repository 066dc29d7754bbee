package export

import (
	"os"
	"os/exec"
)

// WriteFile writes rendered DOT text to disk.
func WriteFile(path, data string) error {
	return os.WriteFile(path, []byte(data), 0644)
}

// Render shells out to the Graphviz dot binary to rasterize a DOT file.
// Callers treat a failure here as non-fatal: the DOT text itself is the
// deliverable, the image is a convenience.
func Render(pathDOT, outPath, format, dotBin string) error {
	if format == "" {
		format = "svg"
	}
	if dotBin == "" {
		dotBin = "dot"
	}
	cmd := exec.Command(dotBin, "-T"+format, pathDOT, "-o", outPath)
	cmd.Stderr = os.Stderr
	cmd.Stdout = os.Stdout
	return cmd.Run()
}
