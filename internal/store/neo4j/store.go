// Package neo4j persists the social graph in a Neo4j database. It is the
// sole long-lived owner of Person and Friendship state; everything else in
// the service works on transient snapshots fetched from here.
package neo4j

import (
	"context"
	"errors"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"github.com/grafo-social/social-graph-backend/config"
)

// ErrConnection reports an unreachable or unauthenticated graph database.
var ErrConnection = errors.New("neo4j: connection failed")

// ErrWrite reports a mutation the graph database rejected.
var ErrWrite = errors.New("neo4j: write rejected")

// Store wraps a Neo4j driver scoped to one database. Open it before a load,
// Close it on every exit path; there is no package-level default connection.
type Store struct {
	driver   neo4j.DriverWithContext
	database string
	log      *zap.Logger
}

// Open connects and verifies connectivity before returning, so an
// unreachable endpoint fails here with ErrConnection rather than on the
// first query.
func Open(ctx context.Context, cfg config.Neo4jConfig, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}

	driver, err := neo4j.NewDriverWithContext(cfg.URI, neo4j.BasicAuth(cfg.Username, cfg.Password, ""))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}

	log.Info("connected to neo4j", zap.String("uri", cfg.URI), zap.String("database", cfg.Database))

	return &Store{
		driver:   driver,
		database: cfg.Database,
		log:      log,
	}, nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.driver.Close(ctx)
}

// Ping re-verifies connectivity, for health checks.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.driver.VerifyConnectivity(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return nil
}

func (s *Store) readSession(ctx context.Context) neo4j.SessionWithContext {
	return s.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeRead,
		DatabaseName: s.database,
	})
}

func (s *Store) writeSession(ctx context.Context) neo4j.SessionWithContext {
	return s.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeWrite,
		DatabaseName: s.database,
	})
}
