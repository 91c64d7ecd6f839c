package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/storefront-cart/internal/service"
)

// CartRoutes registers the cart engine endpoints.
type CartRoutes struct {
	handler *CartHandler
}

// NewCartRoutes creates cart routes.
func NewCartRoutes(carts service.CartService) *CartRoutes {
	return &CartRoutes{handler: NewCartHandler(carts)}
}

// RegisterRoutes registers the routes under /cart.
func (r *CartRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	cart := rg.Group("/cart")
	cart.GET("", r.handler.GetCart)
	cart.DELETE("", r.handler.Clear)
	cart.GET("/summary", r.handler.Summary)

	cart.POST("/items", r.handler.AddItem)
	cart.PATCH("/items/:id", r.handler.UpdateQuantity)
	cart.DELETE("/items/:id", r.handler.RemoveItem)

	cart.POST("/undo", r.handler.UndoRemove)
	cart.DELETE("/last-removed", r.handler.ClearLastRemoved)
	cart.POST("/removals/:removedAt/undo", r.handler.UndoRemoveByID)
	cart.DELETE("/removals/:removedAt", r.handler.DismissRemoval)

	cart.PUT("/panel", r.handler.SetPanel)
	cart.POST("/panel/toggle", r.handler.TogglePanel)
}

// CheckoutRoutes registers the checkout hand-off endpoints.
type CheckoutRoutes struct {
	handler *CheckoutHandler
}

// NewCheckoutRoutes creates checkout routes.
func NewCheckoutRoutes(carts service.CartService) *CheckoutRoutes {
	return &CheckoutRoutes{handler: NewCheckoutHandler(carts)}
}

// RegisterRoutes registers the routes under /checkout.
func (r *CheckoutRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	checkout := rg.Group("/checkout")
	checkout.POST("", r.handler.Checkout)
	checkout.DELETE("", r.handler.AbandonCheckout)
	checkout.GET("", r.handler.CheckoutStatus)
}
