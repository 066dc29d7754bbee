package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grafo-social/social-graph-backend/internal/graph"
)

func TestToDOT(t *testing.T) {
	g := graph.New()
	g.AddFriendship("carol", "alice")
	g.AddFriendship("alice", "bob")
	g.AddPerson("zed")

	dot := ToDOT(g, "Social Network")

	assert.True(t, strings.HasPrefix(dot, "graph G {"), "undirected graph header")
	assert.True(t, strings.HasSuffix(dot, "}\n"))
	assert.Contains(t, dot, `label="Social Network"`)

	for _, name := range []string{"alice", "bob", "carol", "zed"} {
		assert.Contains(t, dot, `"`+name+`";`)
	}

	assert.Contains(t, dot, `"alice" -- "bob";`)
	assert.Contains(t, dot, `"alice" -- "carol";`)
	assert.NotContains(t, dot, "->", "edges must be undirected")

	// stable output: edges in canonical sorted order
	bobIdx := strings.Index(dot, `"alice" -- "bob";`)
	carolIdx := strings.Index(dot, `"alice" -- "carol";`)
	assert.Less(t, bobIdx, carolIdx)
}

func TestToDOTWithoutTitle(t *testing.T) {
	dot := ToDOT(graph.New(), "")
	assert.NotContains(t, dot, "label=")
}

func TestToDOTEscapesQuotes(t *testing.T) {
	g := graph.New()
	g.AddFriendship(`alice "ace"`, "bob")

	dot := ToDOT(g, "")
	assert.Contains(t, dot, `\"ace\"`)
}

func TestToDOTEscapesBackslashes(t *testing.T) {
	g := graph.New()
	g.AddFriendship(`dom\`, "bob")

	dot := ToDOT(g, "")
	assert.Contains(t, dot, `"dom\\"`, "a trailing backslash must not escape the closing quote")
}
