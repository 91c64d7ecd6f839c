// Package app provides router configuration.
package app

import (
	"github.com/guttosm/storefront-cart/config"
	"github.com/guttosm/storefront-cart/internal/http"
	"github.com/guttosm/storefront-cart/internal/middleware"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter builds the health handler and router configuration.
func InitializeRouter(
	cfg config.Config,
	services *ServiceComponents,
	storage *StorageComponents,
	checkoutComponents *CheckoutComponents,
) *RouterComponents {
	healthHandler := http.NewHealthHandler()
	healthHandler.RegisterChecker("store", http.HealthCheckerFunc(storage.Store.Ping))
	if storage.Breaker != nil {
		healthHandler.RegisterCircuitBreaker("store", storage.Breaker)
	}
	if checkoutComponents.Breaker != nil {
		healthHandler.RegisterCircuitBreaker("checkout", checkoutComponents.Breaker)
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		SessionRateLimit:  cfg.Server.SessionRateLimit,
		EnableIdempotency: cfg.Server.EnableIdempotency,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		RequestTimeout:    cfg.Server.RequestTimeout,
		SessionTokens:     services.SessionTokens,
		CartService:       services.CartService,
	}
	if cfg.Server.RateLimit > 0 {
		routerCfg.RateLimiter = middleware.NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateWindow)
	}
	if cfg.Server.SessionRateLimit > 0 {
		routerCfg.SessionRateLimiter = middleware.NewRateLimiter(cfg.Server.SessionRateLimit, cfg.Server.RateWindow)
	}
	if cfg.Server.EnableIdempotency {
		idempotency := middleware.DefaultIdempotencyConfig()
		routerCfg.Idempotency = &idempotency
	}

	return &RouterComponents{
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}

// Stop halts the background cleanup of the rate limiters and idempotency cache.
func (r *RouterComponents) Stop() {
	if r.Config.RateLimiter != nil {
		r.Config.RateLimiter.Stop()
	}
	if r.Config.SessionRateLimiter != nil {
		r.Config.SessionRateLimiter.Stop()
	}
	if r.Config.Idempotency != nil {
		r.Config.Idempotency.Stop()
	}
}
