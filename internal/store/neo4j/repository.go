package neo4j

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"github.com/grafo-social/social-graph-backend/internal/adjacency"
	"github.com/grafo-social/social-graph-backend/internal/graph"
)

// AddFriend upserts both people and the friendship between them. The
// relationship is stored in both directions, so the edge is undirected and
// repeating the call changes nothing.
func (s *Store) AddFriend(ctx context.Context, a, b string) error {
	if a == b {
		return fmt.Errorf("%w: %s", adjacency.ErrSelfLoop, a)
	}

	session := s.writeSession(ctx)
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		return tx.Run(ctx, `
			MERGE (a:Person {name: $a})
			MERGE (b:Person {name: $b})
			MERGE (a)-[:FRIEND]->(b)
			MERGE (b)-[:FRIEND]->(a)
		`, map[string]any{"a": a, "b": b})
	})
	if err != nil {
		return fmt.Errorf("%w: add friend %s-%s: %v", ErrWrite, a, b, err)
	}

	s.log.Info("friendship added", zap.String("a", a), zap.String("b", b))
	return nil
}

// RemoveFriend deletes the friendship in both directions. People stay.
func (s *Store) RemoveFriend(ctx context.Context, a, b string) error {
	session := s.writeSession(ctx)
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		return tx.Run(ctx, `
			MATCH (a:Person {name: $a})-[r:FRIEND]-(b:Person {name: $b})
			DELETE r
		`, map[string]any{"a": a, "b": b})
	})
	if err != nil {
		return fmt.Errorf("%w: remove friend %s-%s: %v", ErrWrite, a, b, err)
	}

	s.log.Info("friendship removed", zap.String("a", a), zap.String("b", b))
	return nil
}

// DeleteAccounts removes people and all their friendships.
func (s *Store) DeleteAccounts(ctx context.Context, names ...string) error {
	if len(names) == 0 {
		return nil
	}

	session := s.writeSession(ctx)
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		return tx.Run(ctx, `
			UNWIND $names AS name
			MATCH (p:Person {name: name})
			DETACH DELETE p
		`, map[string]any{"names": names})
	})
	if err != nil {
		return fmt.Errorf("%w: delete accounts: %v", ErrWrite, err)
	}

	s.log.Info("accounts deleted", zap.Strings("names", names))
	return nil
}

// LoadPairs bulk-upserts an adjacency list in one write transaction. Merge
// semantics make the operation idempotent: loading the same list twice
// leaves the graph unchanged.
func (s *Store) LoadPairs(ctx context.Context, pairs adjacency.PairList) error {
	if len(pairs) == 0 {
		return nil
	}

	rows := make([]map[string]any, 0, len(pairs))
	for _, p := range pairs {
		if p.A == p.B {
			return fmt.Errorf("%w: %s", adjacency.ErrSelfLoop, p.A)
		}
		rows = append(rows, map[string]any{"a": p.A, "b": p.B})
	}

	session := s.writeSession(ctx)
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		return tx.Run(ctx, `
			UNWIND $pairs AS pair
			MERGE (a:Person {name: pair.a})
			MERGE (b:Person {name: pair.b})
			MERGE (a)-[:FRIEND]->(b)
			MERGE (b)-[:FRIEND]->(a)
		`, map[string]any{"pairs": rows})
	})
	if err != nil {
		return fmt.Errorf("%w: load %d pairs: %v", ErrWrite, len(pairs), err)
	}

	s.log.Info("adjacency list loaded", zap.Int("pairs", len(pairs)))
	return nil
}

// AllAccounts returns every person's name, sorted.
func (s *Store) AllAccounts(ctx context.Context) ([]string, error) {
	session := s.readSession(ctx)
	defer session.Close(ctx)

	result, err := session.Run(ctx, `
		MATCH (p:Person)
		RETURN p.name AS name
		ORDER BY name
	`, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: list accounts: %v", ErrConnection, err)
	}

	var names []string
	for result.Next(ctx) {
		if name, ok := stringValue(result.Record(), "name"); ok {
			names = append(names, name)
		}
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("%w: list accounts: %v", ErrConnection, err)
	}

	return names, nil
}

// Snapshot fetches the whole graph into memory for analysis and export.
// Isolated people are included.
func (s *Store) Snapshot(ctx context.Context) (*graph.Graph, error) {
	session := s.readSession(ctx)
	defer session.Close(ctx)

	result, err := session.Run(ctx, `
		MATCH (p:Person)
		OPTIONAL MATCH (p)-[:FRIEND]->(f:Person)
		RETURN p.name AS person, collect(f.name) AS friends
	`, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: snapshot: %v", ErrConnection, err)
	}

	g := graph.New()
	for result.Next(ctx) {
		record := result.Record()
		person, ok := stringValue(record, "person")
		if !ok {
			continue
		}
		g.AddPerson(person)
		for _, friend := range stringListValue(record, "friends") {
			g.AddFriendship(person, friend)
		}
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("%w: snapshot: %v", ErrConnection, err)
	}

	return g, nil
}

func stringValue(record *neo4j.Record, key string) (string, bool) {
	val, ok := record.Get(key)
	if !ok || val == nil {
		return "", false
	}
	str, ok := val.(string)
	return str, ok
}

func stringListValue(record *neo4j.Record, key string) []string {
	val, ok := record.Get(key)
	if !ok || val == nil {
		return nil
	}
	list, ok := val.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, v := range list {
		if str, ok := v.(string); ok {
			out = append(out, str)
		}
	}
	return out
}
