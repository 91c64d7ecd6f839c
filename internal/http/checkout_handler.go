package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/storefront-cart/internal/domain/dto"
	"github.com/guttosm/storefront-cart/internal/middleware"
	"github.com/guttosm/storefront-cart/internal/service"
)

// CheckoutHandler hands the caller's cart over to the hosted checkout.
type CheckoutHandler struct {
	carts service.CartService
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(carts service.CartService) *CheckoutHandler {
	return &CheckoutHandler{carts: carts}
}

// Checkout handles POST /api/checkout.
//
// @Summary      Start checkout
// @Description  Creates a checkout on the commerce platform from the current cart and returns the URL to redirect the shopper to. A rejection by the platform returns 422 with its message verbatim.
// @Tags         Checkout
// @Produce      json
// @Param        X-Cart-Session header string false "Signed cart session token"
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Success      200 {object} dto.SuccessResponse{data=dto.CheckoutResponse}
// @Failure      400 {object} dto.ErrorResponse "Cart is empty"
// @Failure      409 {object} dto.ErrorResponse "Checkout already in progress or abandoned"
// @Failure      422 {object} dto.ErrorResponse "Rejected by the commerce platform"
// @Failure      502 {object} dto.ErrorResponse "Commerce platform unreachable"
// @Failure      503 {object} dto.ErrorResponse "Commerce platform circuit open"
// @Failure      504 {object} dto.ErrorResponse "Timed out"
// @Router       /api/checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	builder := NewResponseBuilder(c)
	url, err := h.carts.Checkout(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		builder.writeServiceError(err)
		return
	}
	builder.SuccessOK(dto.CheckoutResponse{RedirectURL: url})
}

// AbandonCheckout handles DELETE /api/checkout.
//
// @Summary      Abandon checkout
// @Description  Cancels the running attempt, if any. A result that arrives afterwards is discarded.
// @Tags         Checkout
// @Produce      json
// @Param        X-Cart-Session header string false "Signed cart session token"
// @Success      200 {object} dto.SuccessResponse{data=dto.AbandonCheckoutResponse}
// @Router       /api/checkout [delete]
func (h *CheckoutHandler) AbandonCheckout(c *gin.Context) {
	builder := NewResponseBuilder(c)
	abandoned, err := h.carts.AbandonCheckout(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		builder.writeServiceError(err)
		return
	}
	builder.SuccessOK(dto.AbandonCheckoutResponse{Abandoned: abandoned})
}

// CheckoutStatus handles GET /api/checkout.
//
// @Summary      Checkout status
// @Tags         Checkout
// @Produce      json
// @Param        X-Cart-Session header string false "Signed cart session token"
// @Success      200 {object} dto.SuccessResponse{data=dto.CheckoutStatusResponse}
// @Router       /api/checkout [get]
func (h *CheckoutHandler) CheckoutStatus(c *gin.Context) {
	builder := NewResponseBuilder(c)
	status, err := h.carts.CheckoutStatus(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		builder.writeServiceError(err)
		return
	}
	builder.SuccessOK(dto.CheckoutStatusResponse(status))
}
