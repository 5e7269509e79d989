package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Saubhagya1707/crying-tailor/internal/account"
	"github.com/Saubhagya1707/crying-tailor/internal/auth"
	"github.com/Saubhagya1707/crying-tailor/internal/documents"
	"github.com/Saubhagya1707/crying-tailor/internal/profiles"
	"github.com/Saubhagya1707/crying-tailor/internal/services/health"
	"github.com/Saubhagya1707/crying-tailor/internal/shared/config"
	"github.com/Saubhagya1707/crying-tailor/internal/shared/metrics"
	"github.com/Saubhagya1707/crying-tailor/internal/shared/server/middleware"
	"github.com/Saubhagya1707/crying-tailor/internal/users"
)

const (
	// GenerationGroup covers endpoints that call the generative model.
	GenerationGroup = "GENERATION"
	defaultGroup    = "DEFAULT"
)

var generationRoutes = map[string]bool{
	http.MethodPost + " /api/v1/documents":           true,
	http.MethodPost + " /api/v1/profile/import":      true,
	http.MethodPost + " /api/v1/profile/import/file": true,
}

// DefaultRateLimits allows a handful of model calls per minute per user.
var DefaultRateLimits = map[string]middleware.RateLimitRule{
	GenerationGroup: {Rate: 10.0 / 60.0, Burst: 5},
	defaultGroup:    {Rate: 10, Burst: 50},
}

// RouterDeps groups the handlers mounted under /api/v1. Nil handlers are
// skipped.
type RouterDeps struct {
	Config          config.Config
	Health          *health.Service
	Credentials     *auth.CredentialsHandler
	GoogleAuth      *auth.GoogleService
	UserHandler     *users.Handler
	ProfileHandler  *profiles.Handler
	DocumentHandler *documents.Handler
	AccountHandler  *account.Handler
	RateLimits      map[string]middleware.RateLimitRule
	RateLimiter     *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	limits := deps.RateLimits
	if limits == nil {
		limits = DefaultRateLimits
	}

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(middleware.DefaultPublicPrefixes...),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules:        limits,
			DefaultGroup: defaultGroup,
			GroupFor:     rateLimitGroup,
			Limiter:      deps.RateLimiter,
		}),
	)

	api := r.Group("/api/v1")
	deps.Health.RegisterRoutes(api)
	api.GET("/metrics", metrics.Handler())

	if deps.Credentials != nil {
		deps.Credentials.RegisterRoutes(api)
	}
	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.UserHandler != nil {
		deps.UserHandler.RegisterRoutes(api)
	}
	if deps.ProfileHandler != nil {
		deps.ProfileHandler.RegisterRoutes(api)
	}
	if deps.DocumentHandler != nil {
		deps.DocumentHandler.RegisterRoutes(api)
	}
	if deps.AccountHandler != nil {
		deps.AccountHandler.RegisterRoutes(api)
	}

	return r
}

func rateLimitGroup(c *gin.Context) string {
	if generationRoutes[c.Request.Method+" "+c.FullPath()] {
		return GenerationGroup
	}
	return defaultGroup
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
