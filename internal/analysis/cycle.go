package analysis

import "github.com/grafo-social/social-graph-backend/internal/graph"

// FindCycle looks for a cycle of friendships. Friendship edges are
// undirected, so the search is parent-aware: revisiting the friend we just
// arrived from is not a cycle. The returned slice lists the cycle members
// with the starting person repeated at the end; ok is false when the graph
// is acyclic.
func FindCycle(g *graph.Graph) (cycle []string, ok bool) {
	visited := map[string]bool{}

	var path []string
	onPath := map[string]int{}

	var dfs func(current, parent string) []string
	dfs = func(current, parent string) []string {
		visited[current] = true
		onPath[current] = len(path)
		path = append(path, current)

		for _, friend := range g.Neighbors(current) {
			if friend == parent {
				continue
			}
			if idx, on := onPath[friend]; on {
				found := append([]string(nil), path[idx:]...)
				return append(found, friend)
			}
			if visited[friend] {
				continue
			}
			if found := dfs(friend, current); found != nil {
				return found
			}
		}

		path = path[:len(path)-1]
		delete(onPath, current)
		return nil
	}

	for _, name := range g.People() {
		if visited[name] {
			continue
		}
		path = path[:0]
		clear(onPath)
		if found := dfs(name, ""); found != nil {
			return found, true
		}
	}

	return nil, false
}
