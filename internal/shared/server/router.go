package server

import (
	"github.com/gin-gonic/gin"

	"screener-backend/internal/filters"
	"screener-backend/internal/screening"
	"screener-backend/internal/shared/config"
	"screener-backend/internal/shared/server/middleware"
	"screener-backend/internal/shared/server/respond"
)

// RouterDeps carries the constructed handlers and the process-wide limiter.
type RouterDeps struct {
	Config    config.Config
	Limiter   *middleware.RateLimiter
	Screening *screening.Handler
	Filters   *filters.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
// The access policy (shared secret + rate limit) wraps the two LLM endpoints;
// the liveness probe stays outside it so it never fails.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/health", func(c *gin.Context) {
		respond.OK(c, gin.H{"ok": true})
	})

	api := r.Group("/")
	api.Use(
		middleware.SharedSecret(deps.Config.SharedSecret),
		middleware.RateLimit(deps.Limiter),
	)
	deps.Screening.RegisterRoutes(api)
	deps.Filters.RegisterRoutes(api)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
