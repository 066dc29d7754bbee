package main

import (
	"log"
	"os"
	"strings"

	"github.com/grafo-social/social-graph-backend/internal/adjacency"
	"github.com/grafo-social/social-graph-backend/internal/graph"
	"github.com/grafo-social/social-graph-backend/internal/graph/export"
)

// RunExportDOT renders a pair file as Graphviz DOT. With DOT_BIN set and an
// out path ending in .png or .svg, the image is rendered as well.
func RunExportDOT(args []string) {
	if len(args) < 1 {
		log.Fatal("usage: worker export-dot <pairsFile> [out.dot] [title]")
	}

	g := readGraph(args[0])

	outPath := "graph.dot"
	if len(args) > 1 {
		outPath = args[1]
	}
	title := "Social Network"
	if len(args) > 2 {
		title = args[2]
	}

	dot := export.ToDOT(g, title)
	if err := export.WriteFile(outPath, dot); err != nil {
		log.Fatalf("write %s: %v", outPath, err)
	}
	log.Printf("wrote %s (%d people, %d friendships)", outPath, g.PersonCount(), g.EdgeCount())

	if bin := os.Getenv("DOT_BIN"); bin != "" {
		pngPath := strings.TrimSuffix(outPath, ".dot") + ".png"
		if err := export.Render(outPath, pngPath, "png", bin); err != nil {
			log.Printf("render skipped: %v", err)
			return
		}
		log.Printf("rendered %s", pngPath)
	}
}

// RunExportAdjacency rewrites a pair file in the colon adjacency format.
func RunExportAdjacency(args []string) {
	if len(args) < 1 {
		log.Fatal("usage: worker export-adjacency <pairsFile> [outFile]")
	}

	g := readGraph(args[0])

	if len(args) > 1 {
		if err := adjacency.WriteListFile(args[1], g); err != nil {
			log.Fatalf("write %s: %v", args[1], err)
		}
		log.Printf("wrote %s", args[1])
		return
	}

	if err := adjacency.WriteList(os.Stdout, g); err != nil {
		log.Fatalf("write adjacency list: %v", err)
	}
}

// readGraph loads a friendship pair file into an in-memory graph. The colon
// adjacency format is accepted too: a ':' in the first data line selects it,
// so later lines never flip the format mid-file.
func readGraph(path string) *graph.Graph {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("read %s: %v", path, err)
	}

	content := string(raw)
	var pairs adjacency.PairList
	if firstDataLineHasColon(content) {
		pairs, err = adjacency.ReadList(strings.NewReader(content))
	} else {
		pairs, err = adjacency.ReadPairs(strings.NewReader(content))
	}
	if err != nil {
		log.Fatalf("parse %s: %v", path, err)
	}

	g := graph.New()
	for _, p := range pairs {
		g.AddFriendship(p.A, p.B)
	}
	return g
}

func firstDataLineHasColon(content string) bool {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return strings.Contains(line, ":")
	}
	return false
}
