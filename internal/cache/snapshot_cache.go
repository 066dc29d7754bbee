// Package cache keeps the latest graph snapshot in Redis so analysis and
// export endpoints do not hit Neo4j on every request. The cache is
// best-effort: a miss or a Redis failure just means refetching.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/grafo-social/social-graph-backend/internal/graph"
)

const (
	snapshotKey = "social:graph:snapshot" // JSON-encoded snapshot
	defaultTTL  = 5 * time.Minute
)

// snapshotPayload is the wire form: people plus canonical edges is enough to
// rebuild the full adjacency structure.
type snapshotPayload struct {
	People []string           `json:"people"`
	Edges  []graph.Friendship `json:"edges"`
}

type SnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSnapshotCache(client *redis.Client, ttl time.Duration) *SnapshotCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &SnapshotCache{client: client, ttl: ttl}
}

// Get returns the cached snapshot, or ok=false on a miss.
func (c *SnapshotCache) Get(ctx context.Context) (*graph.Graph, bool, error) {
	data, err := c.client.Get(ctx, snapshotKey).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get cached snapshot: %w", err)
	}

	var payload snapshotPayload
	if err := json.Unmarshal([]byte(data), &payload); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached snapshot: %w", err)
	}

	g := graph.New()
	for _, name := range payload.People {
		g.AddPerson(name)
	}
	for _, e := range payload.Edges {
		g.AddFriendship(e.A, e.B)
	}
	return g, true, nil
}

// Set stores the snapshot with the configured TTL.
func (c *SnapshotCache) Set(ctx context.Context, g *graph.Graph) error {
	payload := snapshotPayload{
		People: g.People(),
		Edges:  g.Edges,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	if err := c.client.Set(ctx, snapshotKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("set cached snapshot: %w", err)
	}
	return nil
}

// Invalidate drops the cached snapshot. Implements loader.Invalidator.
func (c *SnapshotCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, snapshotKey).Err(); err != nil {
		return fmt.Errorf("invalidate cached snapshot: %w", err)
	}
	return nil
}
