// Package social is the application service over the graph store: it owns
// snapshot caching and exposes the mutation and analysis operations the API
// and the worker both call.
package social

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/grafo-social/social-graph-backend/internal/adjacency"
	"github.com/grafo-social/social-graph-backend/internal/analysis"
	"github.com/grafo-social/social-graph-backend/internal/graph"
	"github.com/grafo-social/social-graph-backend/internal/graph/export"
)

// Store is the slice of the Neo4j store the service needs. Tests substitute
// an in-memory implementation.
type Store interface {
	AddFriend(ctx context.Context, a, b string) error
	RemoveFriend(ctx context.Context, a, b string) error
	DeleteAccounts(ctx context.Context, names ...string) error
	AllAccounts(ctx context.Context) ([]string, error)
	LoadPairs(ctx context.Context, pairs adjacency.PairList) error
	Snapshot(ctx context.Context) (*graph.Graph, error)
}

// SnapshotCache is the cache surface the service uses; nil disables caching.
type SnapshotCache interface {
	Get(ctx context.Context) (*graph.Graph, bool, error)
	Set(ctx context.Context, g *graph.Graph) error
	Invalidate(ctx context.Context) error
}

type Service struct {
	store Store
	cache SnapshotCache
	log   *zap.Logger
}

func NewService(store Store, cache SnapshotCache, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: store, cache: cache, log: log}
}

// Snapshot returns the current graph, from cache when possible. Cache
// failures fall through to the store.
func (s *Service) Snapshot(ctx context.Context) (*graph.Graph, error) {
	if s.cache != nil {
		g, ok, err := s.cache.Get(ctx)
		if err != nil {
			s.log.Warn("snapshot cache read failed", zap.Error(err))
		} else if ok {
			return g, nil
		}
	}

	g, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, g); err != nil {
			s.log.Warn("snapshot cache write failed", zap.Error(err))
		}
	}
	return g, nil
}

// RefreshSnapshot re-fetches from the store and repopulates the cache.
// Used by the scheduler; a no-op without a cache.
func (s *Service) RefreshSnapshot(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	g, err := s.store.Snapshot(ctx)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, g)
}

func (s *Service) AddFriend(ctx context.Context, a, b string) error {
	if err := s.store.AddFriend(ctx, a, b); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *Service) RemoveFriend(ctx context.Context, a, b string) error {
	if err := s.store.RemoveFriend(ctx, a, b); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *Service) DeleteAccounts(ctx context.Context, names ...string) error {
	if err := s.store.DeleteAccounts(ctx, names...); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *Service) AllAccounts(ctx context.Context) ([]string, error) {
	return s.store.AllAccounts(ctx)
}

func (s *Service) FriendGroups(ctx context.Context, strategy analysis.Strategy) ([][]string, error) {
	g, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return analysis.FriendGroups(g, strategy), nil
}

func (s *Service) Recommendations(ctx context.Context) (map[string][]string, error) {
	g, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return analysis.Recommendations(g), nil
}

func (s *Service) MostPopular(ctx context.Context) ([]analysis.Popularity, error) {
	g, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return analysis.MostPopular(g), nil
}

func (s *Service) ShortestPath(ctx context.Context, from, to string) ([]string, bool, error) {
	g, err := s.Snapshot(ctx)
	if err != nil {
		return nil, false, err
	}
	return analysis.ShortestPath(g, from, to)
}

func (s *Service) FindCycle(ctx context.Context) ([]string, bool, error) {
	g, err := s.Snapshot(ctx)
	if err != nil {
		return nil, false, err
	}
	cycle, ok := analysis.FindCycle(g)
	return cycle, ok, nil
}

// DOT renders the current graph as Graphviz text.
func (s *Service) DOT(ctx context.Context, title string) (string, error) {
	g, err := s.Snapshot(ctx)
	if err != nil {
		return "", err
	}
	return export.ToDOT(g, title), nil
}

// AdjacencyList renders the current graph in the colon list format.
func (s *Service) AdjacencyList(ctx context.Context) (string, error) {
	g, err := s.Snapshot(ctx)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	if err := adjacency.WriteList(&b, g); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (s *Service) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn("snapshot cache invalidation failed", zap.Error(err))
	}
}
