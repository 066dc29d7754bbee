package socialgraph

import "github.com/grafo-social/social-graph-backend/internal/adjacency"

// LoadRequest loads an adjacency list either from a file path visible to the
// server (the Neo4j import-directory workflow) or from inline pairs.
type LoadRequest struct {
	Path  string          `json:"path,omitempty"`
	Pairs []adjacency.Pair `json:"pairs,omitempty"`
}

type FriendRequest struct {
	A string `json:"a" binding:"required"`
	B string `json:"b" binding:"required"`
}

type PathResponse struct {
	From  string   `json:"from"`
	To    string   `json:"to"`
	Found bool     `json:"found"`
	Path  []string `json:"path,omitempty"`
}

type CycleResponse struct {
	Found bool     `json:"found"`
	Cycle []string `json:"cycle,omitempty"`
}

type GroupsResponse struct {
	Strategy string     `json:"strategy"`
	Count    int        `json:"count"`
	Groups   [][]string `json:"groups"`
}
