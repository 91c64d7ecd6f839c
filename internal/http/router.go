package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/storefront-cart/internal/metrics"
	"github.com/guttosm/storefront-cart/internal/middleware"
	"github.com/guttosm/storefront-cart/internal/service"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit  int
	RateWindow time.Duration
	// SessionRateLimit caps requests per cart session on top of the per-IP limit.
	SessionRateLimit  int
	EnableIdempotency bool
	CORSOrigins       []string
	SwaggerUser       string
	SwaggerPass       string
	RequestTimeout    time.Duration

	SessionTokens service.SessionTokens
	CartService   service.CartService

	// Owned by the caller, which stops them on shutdown. Created when nil.
	RateLimiter        *middleware.RateLimiter
	SessionRateLimiter *middleware.RateLimiter
	Idempotency        *middleware.IdempotencyConfig
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:         100,
		RateWindow:        time.Minute,
		EnableIdempotency: true,
		RequestTimeout:    middleware.DefaultTimeoutConfig().Timeout,
	}
}

// NewRouter creates and configures the Gin router for the cart service.
func NewRouter(healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()
	// Variant IDs are URL-encoded into paths and may contain slashes.
	router.UseRawPath = true
	router.UnescapePathValues = true

	configureGlobalMiddleware(router, &cfg)
	registerInfrastructureRoutes(router, healthHandler, &cfg)

	api := router.Group("/api")
	configureAPIMiddleware(api, &cfg)
	registerRoutes(api, &cfg)

	return router
}

func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	router.Use(
		middleware.CORS(cfg.CORSOrigins),
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression("/metrics"),
		middleware.RequestLogger(),
		middleware.ErrorHandler(),
	)

	if cfg.RateLimit > 0 {
		if cfg.RateLimiter == nil {
			cfg.RateLimiter = middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		}
		router.Use(cfg.RateLimiter.RateLimit())
	}
}

func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	if healthHandler != nil {
		healthHandler.Register(router)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// configureAPIMiddleware sets up middleware for the API group. Idempotency runs after
// Session because replays are scoped to the session.
func configureAPIMiddleware(api *gin.RouterGroup, cfg *RouterConfig) {
	api.Use(middleware.TimeoutWithDuration(cfg.RequestTimeout))

	if cfg.SessionTokens != nil {
		api.Use(middleware.Session(cfg.SessionTokens))
	}

	if cfg.SessionRateLimit > 0 {
		if cfg.SessionRateLimiter == nil {
			cfg.SessionRateLimiter = middleware.NewRateLimiter(cfg.SessionRateLimit, cfg.RateWindow)
		}
		api.Use(cfg.SessionRateLimiter.SessionRateLimit())
	}

	if cfg.EnableIdempotency {
		if cfg.Idempotency == nil {
			idempotencyCfg := middleware.DefaultIdempotencyConfig()
			cfg.Idempotency = &idempotencyCfg
		}
		api.Use(middleware.Idempotency(*cfg.Idempotency))
	}
}
