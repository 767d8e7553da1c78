package bootstrap

import (
	"database/sql"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/GoSim-25-26J-441/jobly-backend/internal/api/http"
	"github.com/GoSim-25-26J-441/jobly-backend/internal/api/http/middleware"
	"github.com/GoSim-25-26J-441/jobly-backend/internal/api/http/routes"
	authmw "github.com/GoSim-25-26J-441/jobly-backend/internal/auth/middleware"
	"github.com/GoSim-25-26J-441/jobly-backend/internal/events"
	"github.com/GoSim-25-26J-441/jobly-backend/internal/storage/postgres"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	DB          *sql.DB
	Publisher   events.Publisher
	// Verifier is nil when Firebase is not configured.
	Verifier       authmw.TokenVerifier
	AuthDisabled   bool
	CORSOrigins    []string
	RateLimitRPS   float64
	RateLimitBurst int
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(cors.New(corsConfig(dep.CORSOrigins)))

	var store httpapi.StoreChecker
	if dep.DB != nil {
		store = postgres.NewReadiness(dep.DB)
	}
	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, store)
	healthHandler.RegisterRoutes(r)

	api := r.Group("")
	if dep.RateLimitRPS > 0 {
		api.Use(middleware.NewRateLimiter(dep.RateLimitRPS, dep.RateLimitBurst).Middleware())
	}
	api.Use(authmw.Authenticate(dep.Verifier))

	routes.RegisterV1(api, routes.V1Deps{
		DB:           dep.DB,
		Publisher:    dep.Publisher,
		AuthDisabled: dep.AuthDisabled,
	})

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", middleware.RequestIDHeader}
	cfg.ExposeHeaders = []string{middleware.RequestIDHeader}
	return cfg
}
