package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/grafo-social/social-graph-backend/internal/graph"
)

// ToDOT renders the snapshot as undirected Graphviz text. Node and edge
// order follow the graph's sorted ordering so output is stable.
func ToDOT(g *graph.Graph, title string) string {
	var b strings.Builder
	b.WriteString("graph G {\n  layout=neato;\n  node [shape=circle, style=filled, fillcolor=\"#eef6ff\"];\n")
	if title != "" {
		b.WriteString(fmt.Sprintf(`  labelloc="t"; label="%s"; fontname="Helvetica";`, escape(title)))
		b.WriteString("\n")
	}

	for _, name := range g.People() {
		b.WriteString(fmt.Sprintf("  \"%s\";\n", escape(name)))
	}

	for _, e := range sortedEdges(g) {
		b.WriteString(fmt.Sprintf("  \"%s\" -- \"%s\";\n", escape(e.A), escape(e.B)))
	}

	b.WriteString("}\n")
	return b.String()
}

func sortedEdges(g *graph.Graph) []graph.Friendship {
	edges := append([]graph.Friendship(nil), g.Edges...)
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].A != edges[j].A {
			return edges[i].A < edges[j].A
		}
		return edges[i].B < edges[j].B
	})
	return edges
}

// escape quotes a name for a DOT string literal. Backslashes go first so
// the quote escaping cannot be re-escaped.
func escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
