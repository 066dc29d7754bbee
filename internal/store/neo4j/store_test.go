package neo4j

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/grafo-social/social-graph-backend/config"
	"github.com/grafo-social/social-graph-backend/internal/adjacency"
)

func TestOpenUnreachableEndpoint(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Nothing listens on port 1, so verification fails without a server.
	store, err := Open(ctx, config.Neo4jConfig{
		URI:      "neo4j://127.0.0.1:1",
		Username: "neo4j",
		Password: "wrong",
		Database: "neo4j",
	}, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConnection)
	assert.Nil(t, store)
}

func TestMutationGuardsRunBeforeAnySession(t *testing.T) {
	// A zero driver would panic if these guards did not return first.
	s := &Store{log: zap.NewNop()}
	ctx := context.Background()

	t.Run("add friend rejects a self-loop", func(t *testing.T) {
		err := s.AddFriend(ctx, "alice", "alice")
		assert.ErrorIs(t, err, adjacency.ErrSelfLoop)
	})

	t.Run("load pairs rejects a self-loop", func(t *testing.T) {
		err := s.LoadPairs(ctx, adjacency.PairList{
			{A: "alice", B: "bob"},
			{A: "carol", B: "carol"},
		})
		assert.ErrorIs(t, err, adjacency.ErrSelfLoop)
	})

	t.Run("empty pair list is a no-op", func(t *testing.T) {
		assert.NoError(t, s.LoadPairs(ctx, nil))
	})

	t.Run("deleting no accounts is a no-op", func(t *testing.T) {
		assert.NoError(t, s.DeleteAccounts(ctx))
	})
}

// openTestStore connects to the instance named by NEO4J_TEST_URI, skipping
// when none is configured.
func openTestStore(t *testing.T) *Store {
	t.Helper()

	uri := os.Getenv("NEO4J_TEST_URI")
	if uri == "" {
		t.Skip("NEO4J_TEST_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := Open(ctx, config.Neo4jConfig{
		URI:      uri,
		Username: os.Getenv("NEO4J_TEST_USERNAME"),
		Password: os.Getenv("NEO4J_TEST_PASSWORD"),
		Database: os.Getenv("NEO4J_TEST_DATABASE"),
	}, nil)
	require.NoError(t, err)

	t.Cleanup(func() { store.Close(context.Background()) })
	return store
}

func TestStoreRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	names := []string{"rt_alice", "rt_bob", "rt_carol"}
	require.NoError(t, store.DeleteAccounts(ctx, names...))
	t.Cleanup(func() { store.DeleteAccounts(context.Background(), names...) })

	pairs := adjacency.PairList{
		{A: "rt_alice", B: "rt_bob"},
		{A: "rt_bob", B: "rt_carol"},
	}
	require.NoError(t, store.LoadPairs(ctx, pairs))
	// Loading twice must not duplicate anything.
	require.NoError(t, store.LoadPairs(ctx, pairs))

	g, err := store.Snapshot(ctx)
	require.NoError(t, err)
	assert.True(t, g.HasFriendship("rt_alice", "rt_bob"))
	assert.True(t, g.HasFriendship("rt_carol", "rt_bob"), "edges are undirected")
	assert.Equal(t, []string{"rt_alice", "rt_carol"}, g.Neighbors("rt_bob"))

	require.NoError(t, store.RemoveFriend(ctx, "rt_alice", "rt_bob"))
	g, err = store.Snapshot(ctx)
	require.NoError(t, err)
	assert.False(t, g.HasFriendship("rt_alice", "rt_bob"))
}
