package analysis

import (
	"sort"

	"github.com/grafo-social/social-graph-backend/internal/graph"
)

// Recommendations suggests friends-of-friends for every person: anyone
// reachable through a direct friend who is not already a friend and not the
// person themselves. Each person maps to a sorted, deduplicated list; people
// with nothing to suggest map to an empty list.
func Recommendations(g *graph.Graph) map[string][]string {
	recs := make(map[string][]string, g.PersonCount())

	for _, person := range g.People() {
		friends := map[string]bool{}
		for _, f := range g.Adj[person] {
			friends[f] = true
		}

		candidates := map[string]bool{}
		for f := range friends {
			for _, fof := range g.Adj[f] {
				if fof == person || friends[fof] {
					continue
				}
				candidates[fof] = true
			}
		}

		list := make([]string, 0, len(candidates))
		for c := range candidates {
			list = append(list, c)
		}
		sort.Strings(list)
		recs[person] = list
	}

	return recs
}
