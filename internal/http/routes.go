package http

import (
	"github.com/gin-gonic/gin"
)

// RouteGroup defines a group of routes that can be registered.
type RouteGroup interface {
	// RegisterRoutes registers routes to the given router group.
	RegisterRoutes(rg *gin.RouterGroup)
}

// registerRoutes mounts the business routes when a cart service is configured.
func registerRoutes(api *gin.RouterGroup, cfg *RouterConfig) {
	if cfg.CartService == nil {
		return
	}
	groups := []RouteGroup{
		NewCartRoutes(cfg.CartService),
		NewCheckoutRoutes(cfg.CartService),
	}
	for _, group := range groups {
		group.RegisterRoutes(api)
	}
}
