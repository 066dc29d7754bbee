package analysis

import (
	"errors"

	"github.com/grafo-social/social-graph-backend/internal/graph"
)

// ErrPersonNotFound is returned by ShortestPath when an endpoint is not in
// the graph.
var ErrPersonNotFound = errors.New("analysis: person not found")

// ShortestPath returns the fewest-hops path between from and to, endpoints
// included, found by breadth-first search. The second return is false when
// the two people are in different components.
func ShortestPath(g *graph.Graph, from, to string) ([]string, bool, error) {
	if _, ok := g.Nodes[from]; !ok {
		return nil, false, ErrPersonNotFound
	}
	if _, ok := g.Nodes[to]; !ok {
		return nil, false, ErrPersonNotFound
	}
	if from == to {
		return []string{from}, true, nil
	}

	visited := map[string]bool{from: true}
	parent := map[string]string{}
	queue := []string{from}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == to {
			var path []string
			for at := to; at != from; at = parent[at] {
				path = append(path, at)
			}
			path = append(path, from)
			reverse(path)
			return path, true, nil
		}

		for _, friend := range g.Neighbors(current) {
			if !visited[friend] {
				visited[friend] = true
				parent[friend] = current
				queue = append(queue, friend)
			}
		}
	}

	return nil, false, nil
}

func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
