// Package analysis computes social metrics over an in-memory graph
// snapshot. Every function is pure: it reads the snapshot and allocates its
// own bookkeeping, so results for the same snapshot are deterministic.
package analysis

import (
	"fmt"

	"github.com/grafo-social/social-graph-backend/internal/graph"
)

// Strategy selects the traversal used by FriendGroups. Both visit the same
// component set; only the visit order differs.
type Strategy string

const (
	BFS Strategy = "bfs"
	DFS Strategy = "dfs"
)

// ParseStrategy maps a user-supplied string to a Strategy, defaulting to BFS
// for the empty string.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case "", BFS:
		return BFS, nil
	case DFS:
		return DFS, nil
	default:
		return "", fmt.Errorf("unknown traversal strategy %q", s)
	}
}

// FriendGroups returns the connected components of g, each component a
// sorted-start traversal from its lowest-named member. Components are
// ordered by that member, members in visit order.
func FriendGroups(g *graph.Graph, strategy Strategy) [][]string {
	visited := map[string]bool{}
	var groups [][]string

	for _, name := range g.People() {
		if visited[name] {
			continue
		}
		var members []string
		if strategy == DFS {
			members = dfsFrom(g, name, visited)
		} else {
			members = bfsFrom(g, name, visited)
		}
		groups = append(groups, members)
	}

	return groups
}

func bfsFrom(g *graph.Graph, start string, visited map[string]bool) []string {
	queue := []string{start}
	visited[start] = true
	var order []string

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		order = append(order, current)

		for _, friend := range g.Neighbors(current) {
			if !visited[friend] {
				visited[friend] = true
				queue = append(queue, friend)
			}
		}
	}
	return order
}

func dfsFrom(g *graph.Graph, start string, visited map[string]bool) []string {
	stack := []string{start}
	visited[start] = true
	var order []string

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, current)

		for _, friend := range g.Neighbors(current) {
			if !visited[friend] {
				visited[friend] = true
				stack = append(stack, friend)
			}
		}
	}
	return order
}
