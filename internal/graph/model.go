package graph

import "sort"

// Person is a vertex in the social graph. People are created implicitly the
// first time they appear in a friendship pair.
type Person struct {
	Name string `json:"name"`
}

// Friendship is an undirected edge between two people. A and B are stored in
// canonical (lexicographic) order so the same pair always compares equal.
type Friendship struct {
	A string `json:"a"`
	B string `json:"b"`
}

// NewFriendship returns the canonical form of the (a, b) edge.
func NewFriendship(a, b string) Friendship {
	if b < a {
		a, b = b, a
	}
	return Friendship{A: a, B: b}
}

// Graph is an in-memory snapshot of the social network. The persistent copy
// lives in Neo4j; this form is what analysis and export operate on.
type Graph struct {
	Nodes map[string]*Person `json:"nodes"`
	Edges []Friendship       `json:"edges"`
	// adjacency for algorithms
	Adj map[string][]string `json:"-"`

	edgeSet map[Friendship]bool
}

func New() *Graph {
	return &Graph{
		Nodes:   map[string]*Person{},
		Edges:   []Friendship{},
		Adj:     map[string][]string{},
		edgeSet: map[Friendship]bool{},
	}
}

func (g *Graph) AddPerson(name string) {
	if _, ok := g.Nodes[name]; !ok {
		g.Nodes[name] = &Person{Name: name}
	}
}

// AddFriendship records an undirected edge between a and b, creating either
// person if needed. Self-loops and duplicate pairs are ignored.
func (g *Graph) AddFriendship(a, b string) {
	if a == b {
		return
	}
	g.AddPerson(a)
	g.AddPerson(b)

	e := NewFriendship(a, b)
	if g.edgeSet[e] {
		return
	}
	g.edgeSet[e] = true
	g.Edges = append(g.Edges, e)
	g.Adj[a] = append(g.Adj[a], b)
	g.Adj[b] = append(g.Adj[b], a)
}

func (g *Graph) HasFriendship(a, b string) bool {
	return g.edgeSet[NewFriendship(a, b)]
}

// Neighbors returns the person's direct friends in sorted order.
func (g *Graph) Neighbors(name string) []string {
	n := append([]string(nil), g.Adj[name]...)
	sort.Strings(n)
	return n
}

// People returns every person's name in sorted order.
func (g *Graph) People() []string {
	names := make([]string, 0, len(g.Nodes))
	for name := range g.Nodes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (g *Graph) PersonCount() int { return len(g.Nodes) }

func (g *Graph) EdgeCount() int { return len(g.Edges) }
