package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/use-agent/pagecheck/api/handler"
	"github.com/use-agent/pagecheck/api/middleware"
	"github.com/use-agent/pagecheck/config"
	"github.com/use-agent/pagecheck/inspector"
	"github.com/use-agent/pagecheck/users"
)

// NewRouter creates a configured Gin engine with all routes and middleware.
//
// Middleware chain:
//
//	Global:     Recovery → Logger
//	Inspection: Auth (if enabled) → RateLimit
//
// /ping and /health stay outside auth so probes always work. Unmatched
// routes (including wrong methods on known paths) fall through to the
// informational handler with status 200.
func NewRouter(in *inspector.Inspector, uc *users.Client, cfg *config.Config, startTime time.Time) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.Logger())

	r.Any("/ping", handler.Ping())
	r.GET("/health", handler.Health(startTime))

	protected := r.Group("")
	if cfg.Auth.Enabled {
		protected.Use(middleware.Auth(cfg.Auth.APIKeys))
	}
	protected.Use(middleware.RateLimit(cfg.RateLimit))

	protected.GET("/result", handler.Result(in, uc))

	r.NoRoute(handler.Info())

	return r
}
