package socialgraph

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grafo-social/social-graph-backend/internal/adjacency"
	"github.com/grafo-social/social-graph-backend/internal/graph"
	"github.com/grafo-social/social-graph-backend/internal/loader"
	"github.com/grafo-social/social-graph-backend/internal/social"
	neo4jstore "github.com/grafo-social/social-graph-backend/internal/store/neo4j"
)

type memStore struct {
	g   *graph.Graph
	err error
}

func newMemStore() *memStore {
	return &memStore{g: graph.New()}
}

func (s *memStore) AddFriend(ctx context.Context, a, b string) error {
	if s.err != nil {
		return s.err
	}
	s.g.AddFriendship(a, b)
	return nil
}

func (s *memStore) RemoveFriend(ctx context.Context, a, b string) error {
	return s.err
}

func (s *memStore) DeleteAccounts(ctx context.Context, names ...string) error {
	if s.err != nil {
		return s.err
	}
	for _, name := range names {
		delete(s.g.Nodes, name)
	}
	return nil
}

func (s *memStore) AllAccounts(ctx context.Context) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.g.People(), nil
}

func (s *memStore) LoadPairs(ctx context.Context, pairs adjacency.PairList) error {
	if s.err != nil {
		return s.err
	}
	for _, p := range pairs {
		s.g.AddFriendship(p.A, p.B)
	}
	return nil
}

func (s *memStore) Snapshot(ctx context.Context) (*graph.Graph, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.g, nil
}

type memHistory struct {
	runs []loader.Report
}

func (h *memHistory) RecentLoadRuns(ctx context.Context, limit int) ([]loader.Report, error) {
	if limit > len(h.runs) {
		limit = len(h.runs)
	}
	return h.runs[:limit], nil
}

func setupRouter(store *memStore, history HistoryReader) *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := social.NewService(store, nil, nil)
	ld := loader.New(store, nil, nil, nil)

	r := gin.New()
	NewHandler(svc, ld, history).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoadEndpoint(t *testing.T) {
	t.Run("loads inline pairs", func(t *testing.T) {
		store := newMemStore()
		r := setupRouter(store, nil)

		w := doJSON(t, r, http.MethodPost, "/api/v1/load", LoadRequest{
			Pairs: []adjacency.Pair{{A: "alice", B: "bob"}, {A: "bob", B: "carol"}},
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 3, store.g.PersonCount())

		var resp struct {
			OK     bool          `json:"ok"`
			Report loader.Report `json:"report"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.OK)
		assert.Equal(t, loader.StatusSucceeded, resp.Report.Status)
		assert.Equal(t, 2, resp.Report.Pairs)
	})

	t.Run("rejects an empty request", func(t *testing.T) {
		r := setupRouter(newMemStore(), nil)

		w := doJSON(t, r, http.MethodPost, "/api/v1/load", LoadRequest{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects path and pairs together", func(t *testing.T) {
		r := setupRouter(newMemStore(), nil)

		w := doJSON(t, r, http.MethodPost, "/api/v1/load", LoadRequest{
			Path:  "friends.txt",
			Pairs: []adjacency.Pair{{A: "a", B: "b"}},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("a missing file is a bad request", func(t *testing.T) {
		r := setupRouter(newMemStore(), nil)

		w := doJSON(t, r, http.MethodPost, "/api/v1/load", LoadRequest{Path: "/does/not/exist.txt"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("an inline self-loop pair is rejected", func(t *testing.T) {
		store := newMemStore()
		r := setupRouter(store, nil)

		w := doJSON(t, r, http.MethodPost, "/api/v1/load", LoadRequest{
			Pairs: []adjacency.Pair{{A: "alice", B: "alice"}},
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 0, store.g.PersonCount(), "nothing may be written")
	})

	t.Run("an inline pair with an empty name is rejected", func(t *testing.T) {
		store := newMemStore()
		r := setupRouter(store, nil)

		w := doJSON(t, r, http.MethodPost, "/api/v1/load", LoadRequest{
			Pairs: []adjacency.Pair{{A: "", B: "bob"}},
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 0, store.g.PersonCount())
	})

	t.Run("store write failure maps to bad gateway", func(t *testing.T) {
		store := newMemStore()
		store.err = neo4jstore.ErrWrite
		r := setupRouter(store, nil)

		w := doJSON(t, r, http.MethodPost, "/api/v1/load", LoadRequest{
			Pairs: []adjacency.Pair{{A: "a", B: "b"}},
		})
		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestLoadsEndpoint(t *testing.T) {
	t.Run("returns recent runs", func(t *testing.T) {
		history := &memHistory{runs: []loader.Report{
			{ID: "r1", Status: loader.StatusSucceeded},
			{ID: "r2", Status: loader.StatusFailed},
		}}
		r := setupRouter(newMemStore(), history)

		w := doJSON(t, r, http.MethodGet, "/api/v1/loads?limit=1", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Runs []loader.Report `json:"runs"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Runs, 1)
		assert.Equal(t, "r1", resp.Runs[0].ID)
	})

	t.Run("without history the list is empty", func(t *testing.T) {
		r := setupRouter(newMemStore(), nil)

		w := doJSON(t, r, http.MethodGet, "/api/v1/loads", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"runs":[]`)
	})
}

func TestPeopleEndpoints(t *testing.T) {
	store := newMemStore()
	store.g.AddFriendship("alice", "bob")
	r := setupRouter(store, nil)

	t.Run("lists people sorted", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/v1/people", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"people":["alice","bob"]`)
	})

	t.Run("deletes a person", func(t *testing.T) {
		w := doJSON(t, r, http.MethodDelete, "/api/v1/people/alice", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		_, ok := store.g.Nodes["alice"]
		assert.False(t, ok)
	})
}

func TestFriendEndpoints(t *testing.T) {
	t.Run("adds a friendship", func(t *testing.T) {
		store := newMemStore()
		r := setupRouter(store, nil)

		w := doJSON(t, r, http.MethodPost, "/api/v1/friends", FriendRequest{A: "alice", B: "bob"})
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, store.g.HasFriendship("alice", "bob"))
	})

	t.Run("self friendship maps to bad request", func(t *testing.T) {
		store := newMemStore()
		store.err = adjacency.ErrSelfLoop
		r := setupRouter(store, nil)

		w := doJSON(t, r, http.MethodPost, "/api/v1/friends", FriendRequest{A: "alice", B: "alice"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing names are rejected by binding", func(t *testing.T) {
		r := setupRouter(newMemStore(), nil)

		w := doJSON(t, r, http.MethodPost, "/api/v1/friends", map[string]string{"a": "alice"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("whitespace-only names are rejected", func(t *testing.T) {
		store := newMemStore()
		r := setupRouter(store, nil)

		w := doJSON(t, r, http.MethodPost, "/api/v1/friends", FriendRequest{A: "   ", B: "bob"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 0, store.g.PersonCount(), "no empty-name person may be created")

		w = doJSON(t, r, http.MethodDelete, "/api/v1/friends", FriendRequest{A: "alice", B: "\t"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGraphEndpoints(t *testing.T) {
	store := newMemStore()
	store.g.AddFriendship("alice", "bob")
	r := setupRouter(store, nil)

	t.Run("json snapshot", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/v1/graph", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"nodes"`)
		assert.Contains(t, w.Body.String(), `"edges"`)
	})

	t.Run("dot rendering", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/v1/graph/dot?title=Friends", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "graphviz")
		assert.Contains(t, w.Body.String(), `"alice" -- "bob";`)
		assert.Contains(t, w.Body.String(), `label="Friends"`)
	})

	t.Run("adjacency rendering", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/v1/graph/adjacency", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "alice: bob\nbob: alice\n", w.Body.String())
	})

	t.Run("store connection failure maps to service unavailable", func(t *testing.T) {
		broken := newMemStore()
		broken.err = neo4jstore.ErrConnection
		rb := setupRouter(broken, nil)

		w := doJSON(t, rb, http.MethodGet, "/api/v1/graph", nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestAnalysisEndpoints(t *testing.T) {
	store := newMemStore()
	store.g.AddFriendship("alice", "bob")
	store.g.AddFriendship("bob", "carol")
	store.g.AddFriendship("dave", "erin")
	r := setupRouter(store, nil)

	t.Run("groups", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/v1/analysis/groups", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Result GroupsResponse `json:"result"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "bfs", resp.Result.Strategy)
		assert.Equal(t, 2, resp.Result.Count)
	})

	t.Run("groups with unknown strategy", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/v1/analysis/groups?strategy=dijkstra", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("recommendations", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/v1/analysis/recommendations", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"alice":["carol"]`)
	})

	t.Run("popular", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/v1/analysis/popular", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"name":"bob"`)
	})

	t.Run("path", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/v1/analysis/path?from=alice&to=carol", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Result PathResponse `json:"result"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Result.Found)
		assert.Equal(t, []string{"alice", "bob", "carol"}, resp.Result.Path)
	})

	t.Run("path with unknown person is not found", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/v1/analysis/path?from=alice&to=nobody", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("path requires both endpoints", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/v1/analysis/path?from=alice", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("cycle on an acyclic graph", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/v1/analysis/cycle", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"found":false`)
	})
}
