package main

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/grafo-social/social-graph-backend/config"
	"github.com/grafo-social/social-graph-backend/internal/cache"
	"github.com/grafo-social/social-graph-backend/internal/loader"
	"github.com/grafo-social/social-graph-backend/internal/storage/postgres"
	neo4jstore "github.com/grafo-social/social-graph-backend/internal/store/neo4j"
)

// RunLoad reads a pair file and upserts it into Neo4j, recording the run in
// the history database when one is configured.
func RunLoad(args []string) {
	if len(args) < 1 {
		log.Fatal("usage: worker load <pairsFile>")
	}
	path := args[0]

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zlog, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zlog.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	store, err := neo4jstore.Open(ctx, cfg.Neo4j, zlog)
	if err != nil {
		zlog.Fatal("neo4j connect failed", zap.Error(err))
	}
	defer store.Close(context.Background())

	var history loader.History
	if cfg.History.DSN != "" {
		pool, err := postgres.Open(ctx, postgres.Options{DSN: cfg.History.DSN})
		if err != nil {
			zlog.Fatal("history db connect failed", zap.Error(err))
		}
		defer pool.Close()

		hs := postgres.NewHistoryStore(pool)
		if err := hs.EnsureSchema(ctx); err != nil {
			zlog.Fatal("history schema failed", zap.Error(err))
		}
		history = hs
	}

	var invalidator loader.Invalidator
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		defer client.Close()
		invalidator = cache.NewSnapshotCache(client, cfg.Redis.CacheTTL)
	}

	report, err := loader.New(store, history, invalidator, zlog).LoadFile(ctx, path)
	if err != nil {
		zlog.Fatal("load failed", zap.String("path", path), zap.Error(err))
	}

	zlog.Info("load succeeded",
		zap.String("id", report.ID),
		zap.Int("pairs", report.Pairs),
		zap.Int("people", report.People),
		zap.Duration("duration", report.Duration),
	)
}
