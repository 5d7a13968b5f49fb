package handler

import (
	"taxhub/internal/adapter/http/middleware"
	redisStore "taxhub/internal/adapter/storage/redis"
	"taxhub/internal/core/ports"
	"taxhub/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	RegistrySvc    ports.RequestRegistry
	CoordinatorSvc ports.CaptchaCoordinator
	LookupSvc      ports.LookupService
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Metrics        *metrics.Metrics // nil = metrics endpoint disabled
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit
	r.Use(middleware.Authenticate(deps.TokenSvc, deps.Logger))
	if deps.Metrics != nil {
		r.Use(middleware.HTTPMetrics(deps.Metrics))
	}

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Auth ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/login", rl("auth_login"), authHandler.Login)
		auth.GET("/me", middleware.RequireAuth(), authHandler.Me)
	}

	// --- Orchestrated lookups ---
	servicesHandler := NewServicesHandler(deps.LookupSvc)
	services := v1.Group("/services", middleware.RequireAuth())
	{
		services.POST("/cnd", rl("lookups"), servicesHandler.Cnd)
		services.POST("/dte/federal", rl("lookups"), servicesHandler.DteFederal)
		services.POST("/dte/estadual", rl("lookups"), servicesHandler.DteEstadual)
		services.POST("/cnpj", rl("lookups"), servicesHandler.Cnpj)
	}

	// --- Service request registry ---
	requestHandler := NewRequestHandler(deps.RegistrySvc)
	requests := v1.Group("/service-requests", middleware.RequireAuth())
	{
		requests.GET("", rl("lookups"), requestHandler.List)
		requests.GET("/:id", rl("lookups"), requestHandler.Get)
	}

	// --- Captcha challenges (polled by solver UIs, so a looser limit) ---
	challengeHandler := NewChallengeHandler(deps.CoordinatorSvc)
	challenges := v1.Group("/challenges", middleware.RequireAuth())
	{
		challenges.POST("", rl("challenges"), challengeHandler.Create)
		challenges.GET("/:id", rl("challenges"), challengeHandler.Get)
		challenges.POST("/:id/solution", rl("challenges"), challengeHandler.Solve)
	}

	return r
}
