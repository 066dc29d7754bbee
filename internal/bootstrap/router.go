package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	httpapi "github.com/grafo-social/social-graph-backend/internal/api/http"
	"github.com/grafo-social/social-graph-backend/internal/api/http/middleware"
	"github.com/grafo-social/social-graph-backend/internal/api/http/socialgraph"
	"github.com/grafo-social/social-graph-backend/internal/loader"
	"github.com/grafo-social/social-graph-backend/internal/social"
)

type RouterDeps struct {
	ServiceName string
	Version     string

	Service *social.Service
	Loader  *loader.Loader
	History socialgraph.HistoryReader

	Store httpapi.Pinger
	Redis *redis.Client

	RateRPS   rate.Limit
	RateBurst int
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "X-Request-Id"},
	}))
	r.Use(middleware.RequestID())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Store, dep.Redis)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")
	if dep.RateRPS > 0 {
		api.Use(middleware.RateLimit(dep.RateRPS, dep.RateBurst))
	}

	handler := socialgraph.NewHandler(dep.Service, dep.Loader, dep.History)
	handler.RegisterRoutes(api)

	return r
}
