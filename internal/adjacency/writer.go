package adjacency

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/grafo-social/social-graph-backend/internal/graph"
)

// WriteList writes g in the colon list format, one person per line with
// their friends comma-separated:
//
//	alice: bob, carol
//
// People and friends are emitted in sorted order so output is stable.
// People with no friends are skipped, matching the shape the graph store
// exports.
func WriteList(w io.Writer, g *graph.Graph) error {
	bw := bufio.NewWriter(w)
	for _, name := range g.People() {
		friends := g.Neighbors(name)
		if len(friends) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(bw, "%s: %s\n", name, strings.Join(friends, ", ")); err != nil {
			return fmt.Errorf("write adjacency list: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write adjacency list: %w", err)
	}
	return nil
}

// WriteListFile writes the colon list format to path, truncating any
// existing file.
func WriteListFile(path string, g *graph.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create adjacency file: %w", err)
	}
	if err := WriteList(f, g); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
