package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/grafo-social/social-graph-backend/config"
	"github.com/grafo-social/social-graph-backend/internal/api/http/socialgraph"
	"github.com/grafo-social/social-graph-backend/internal/bootstrap"
	"github.com/grafo-social/social-graph-backend/internal/cache"
	croninternal "github.com/grafo-social/social-graph-backend/internal/cron"
	"github.com/grafo-social/social-graph-backend/internal/loader"
	"github.com/grafo-social/social-graph-backend/internal/social"
	"github.com/grafo-social/social-graph-backend/internal/storage/postgres"
	neo4jstore "github.com/grafo-social/social-graph-backend/internal/store/neo4j"
)

const serviceName = "social-graph-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := buildLogger(cfg.App.Environment)
	defer log.Sync()

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := neo4jstore.Open(ctx, cfg.Neo4j, log)
	if err != nil {
		log.Fatal("neo4j connect failed", zap.Error(err))
	}
	defer store.Close(context.Background())

	var (
		redisClient   *redis.Client
		snapshotCache *cache.SnapshotCache
	)
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		defer redisClient.Close()
		snapshotCache = cache.NewSnapshotCache(redisClient, cfg.Redis.CacheTTL)
	}

	var (
		loadHistory loader.History
		historyRead socialgraph.HistoryReader
		invalidator loader.Invalidator
	)
	if cfg.History.DSN != "" {
		pool, err := postgres.Open(ctx, postgres.Options{DSN: cfg.History.DSN})
		if err != nil {
			log.Fatal("history db connect failed", zap.Error(err))
		}
		defer pool.Close()

		history := postgres.NewHistoryStore(pool)
		if err := history.EnsureSchema(ctx); err != nil {
			log.Fatal("history schema failed", zap.Error(err))
		}
		loadHistory = history
		historyRead = history
	}
	if snapshotCache != nil {
		invalidator = snapshotCache
	}

	svc := social.NewService(store, cacheOrNil(snapshotCache), log)
	ld := loader.New(store, loadHistory, invalidator, log)

	var scheduler *croninternal.Scheduler
	if snapshotCache != nil && cfg.App.RefreshSpec != "" {
		scheduler = croninternal.NewScheduler(svc, cfg.App.RefreshSpec, log)
		if err := scheduler.Start(); err != nil {
			log.Fatal("scheduler start failed", zap.Error(err))
		}
		defer scheduler.Stop()
	}

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		Service:     svc,
		Loader:      ld,
		History:     historyRead,
		Store:       store,
		Redis:       redisClient,
		RateRPS:     rate.Limit(20),
		RateBurst:   40,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Info("listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("shutdown incomplete", zap.Error(err))
	}
}

// cacheOrNil keeps the service's cache interface nil when Redis is disabled,
// instead of a typed nil pointer.
func cacheOrNil(c *cache.SnapshotCache) social.SnapshotCache {
	if c == nil {
		return nil
	}
	return c
}

func buildLogger(env string) *zap.Logger {
	if env == "production" {
		log, err := zap.NewProduction()
		if err != nil {
			panic(err)
		}
		return log
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	return log
}
