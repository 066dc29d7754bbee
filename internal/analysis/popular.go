package analysis

import "github.com/grafo-social/social-graph-backend/internal/graph"

// Popularity pairs a person with their friend count.
type Popularity struct {
	Name    string `json:"name"`
	Friends int    `json:"friends"`
}

// MostPopular returns everyone tied for the highest friend count, sorted by
// name. An empty graph yields nil.
func MostPopular(g *graph.Graph) []Popularity {
	max := -1
	var popular []Popularity

	for _, name := range g.People() {
		n := len(g.Adj[name])
		switch {
		case n > max:
			max = n
			popular = []Popularity{{Name: name, Friends: n}}
		case n == max:
			popular = append(popular, Popularity{Name: name, Friends: n})
		}
	}

	return popular
}
