package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/storefront-cart/internal/domain/dto"
	"github.com/guttosm/storefront-cart/internal/i18n"
	"github.com/guttosm/storefront-cart/internal/middleware"
	"github.com/guttosm/storefront-cart/internal/service"
)

// CartHandler exposes the cart engine operations of the caller's session.
type CartHandler struct {
	carts service.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(carts service.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

func cartResponse(snap service.CartSnapshot) dto.CartResponse {
	return dto.NewCartResponse(snap.State, snap.TotalItems, snap.TotalPrice, snap.TotalWeight, snap.CurrencyCode)
}

// respond writes the cart snapshot or maps err.
func respond(c *gin.Context, snap service.CartSnapshot, err error) {
	builder := NewResponseBuilder(c)
	if err != nil {
		builder.writeServiceError(err)
		return
	}
	builder.SuccessOK(cartResponse(snap))
}

func removedAtParam(c *gin.Context) (int64, bool) {
	removedAt, err := strconv.ParseInt(c.Param("removedAt"), 10, 64)
	if err != nil {
		NewResponseBuilder(c).Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return 0, false
	}
	return removedAt, true
}

// GetCart handles GET /api/cart.
//
// @Summary      Get the cart
// @Description  Returns the items, pending undo, removal history and totals of the caller's cart. A session is started when the request carries no X-Cart-Session token.
// @Tags         Cart
// @Produce      json
// @Param        X-Cart-Session header string false "Signed cart session token"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse}
// @Failure      401 {object} dto.ErrorResponse "Invalid session token"
// @Failure      429 {object} dto.ErrorResponse "Rate limit exceeded"
// @Router       /api/cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	snap, err := h.carts.Get(c.Request.Context(), middleware.GetSessionID(c))
	respond(c, snap, err)
}

// AddItem handles POST /api/cart/items.
//
// @Summary      Add a variant to the cart
// @Description  Adds the variant or increases the quantity of its existing line. The request carries the stock snapshot of the variant; adding beyond it is rejected with 409 and details.available.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        X-Cart-Session header string false "Signed cart session token"
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.AddItemRequest true "Variant to add"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse}
// @Failure      400 {object} dto.ErrorResponse "Invalid request body"
// @Failure      409 {object} dto.ErrorResponse "Out of stock"
// @Router       /api/cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	req, err := BuildRequestAndValidate[dto.AddItemRequest](c)
	if err != nil {
		h.badRequest(c, err)
		return
	}
	snap, err := h.carts.AddItem(c.Request.Context(), middleware.GetSessionID(c), req.ToInput())
	respond(c, snap, err)
}

// UpdateQuantity handles PATCH /api/cart/items/:id.
//
// @Summary      Set a line quantity
// @Description  Sets the quantity of a line in place. Zero removes the line and records it for undo.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        X-Cart-Session header string false "Signed cart session token"
// @Param        id path string true "URL-encoded variant ID"
// @Param        request body dto.UpdateQuantityRequest true "New quantity"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse}
// @Failure      400 {object} dto.ErrorResponse "Invalid request body"
// @Failure      404 {object} dto.ErrorResponse "Item not in cart"
// @Failure      409 {object} dto.ErrorResponse "Out of stock"
// @Router       /api/cart/items/{id} [patch]
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	req, err := BuildRequestAndValidate[dto.UpdateQuantityRequest](c)
	if err != nil {
		h.badRequest(c, err)
		return
	}
	snap, err := h.carts.UpdateQuantity(c.Request.Context(), middleware.GetSessionID(c), c.Param("id"), *req.Quantity)
	respond(c, snap, err)
}

// RemoveItem handles DELETE /api/cart/items/:id.
//
// @Summary      Remove a line
// @Description  Removes the line and records it for undo. Unknown IDs leave the cart unchanged.
// @Tags         Cart
// @Produce      json
// @Param        X-Cart-Session header string false "Signed cart session token"
// @Param        id path string true "URL-encoded variant ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse}
// @Router       /api/cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	snap, err := h.carts.RemoveItem(c.Request.Context(), middleware.GetSessionID(c), c.Param("id"))
	respond(c, snap, err)
}

// UndoRemove handles POST /api/cart/undo.
//
// @Summary      Undo the last removal
// @Tags         Cart
// @Produce      json
// @Param        X-Cart-Session header string false "Signed cart session token"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse}
// @Failure      409 {object} dto.ErrorResponse "Restoring would exceed the stock bound"
// @Router       /api/cart/undo [post]
func (h *CartHandler) UndoRemove(c *gin.Context) {
	snap, err := h.carts.UndoRemove(c.Request.Context(), middleware.GetSessionID(c))
	respond(c, snap, err)
}

// UndoRemoveByID handles POST /api/cart/removals/:removedAt/undo.
//
// @Summary      Restore a removal history entry
// @Tags         Cart
// @Produce      json
// @Param        X-Cart-Session header string false "Signed cart session token"
// @Param        removedAt path int true "Removal timestamp (Unix milliseconds)"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse}
// @Failure      400 {object} dto.ErrorResponse "Invalid timestamp"
// @Failure      409 {object} dto.ErrorResponse "Restoring would exceed the stock bound"
// @Router       /api/cart/removals/{removedAt}/undo [post]
func (h *CartHandler) UndoRemoveByID(c *gin.Context) {
	removedAt, ok := removedAtParam(c)
	if !ok {
		return
	}
	snap, err := h.carts.UndoRemoveByID(c.Request.Context(), middleware.GetSessionID(c), removedAt)
	respond(c, snap, err)
}

// DismissRemoval handles DELETE /api/cart/removals/:removedAt.
//
// @Summary      Dismiss a removal history entry
// @Tags         Cart
// @Produce      json
// @Param        X-Cart-Session header string false "Signed cart session token"
// @Param        removedAt path int true "Removal timestamp (Unix milliseconds)"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse}
// @Failure      400 {object} dto.ErrorResponse "Invalid timestamp"
// @Router       /api/cart/removals/{removedAt} [delete]
func (h *CartHandler) DismissRemoval(c *gin.Context) {
	removedAt, ok := removedAtParam(c)
	if !ok {
		return
	}
	snap, err := h.carts.DismissRemoval(c.Request.Context(), middleware.GetSessionID(c), removedAt)
	respond(c, snap, err)
}

// ClearLastRemoved handles DELETE /api/cart/last-removed.
//
// @Summary      Forget the pending undo
// @Tags         Cart
// @Produce      json
// @Param        X-Cart-Session header string false "Signed cart session token"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse}
// @Router       /api/cart/last-removed [delete]
func (h *CartHandler) ClearLastRemoved(c *gin.Context) {
	snap, err := h.carts.ClearLastRemoved(c.Request.Context(), middleware.GetSessionID(c))
	respond(c, snap, err)
}

// Clear handles DELETE /api/cart.
//
// @Summary      Empty the cart
// @Description  Removes every line, the pending undo and the removal history. The panel state is kept.
// @Tags         Cart
// @Produce      json
// @Param        X-Cart-Session header string false "Signed cart session token"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse}
// @Router       /api/cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	snap, err := h.carts.Clear(c.Request.Context(), middleware.GetSessionID(c))
	respond(c, snap, err)
}

// SetPanel handles PUT /api/cart/panel.
//
// @Summary      Open or close the cart panel
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        X-Cart-Session header string false "Signed cart session token"
// @Param        request body dto.SetPanelRequest true "Panel state"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse}
// @Failure      400 {object} dto.ErrorResponse "Invalid request body"
// @Router       /api/cart/panel [put]
func (h *CartHandler) SetPanel(c *gin.Context) {
	req, err := BuildRequestAndValidate[dto.SetPanelRequest](c)
	if err != nil {
		h.badRequest(c, err)
		return
	}
	snap, err := h.carts.SetPanelOpen(c.Request.Context(), middleware.GetSessionID(c), *req.Open)
	respond(c, snap, err)
}

// TogglePanel handles POST /api/cart/panel/toggle.
//
// @Summary      Toggle the cart panel
// @Tags         Cart
// @Produce      json
// @Param        X-Cart-Session header string false "Signed cart session token"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse}
// @Router       /api/cart/panel/toggle [post]
func (h *CartHandler) TogglePanel(c *gin.Context) {
	snap, err := h.carts.TogglePanel(c.Request.Context(), middleware.GetSessionID(c))
	respond(c, snap, err)
}

// Summary handles GET /api/cart/summary.
//
// @Summary      Cart totals and promotion progress
// @Description  Returns the subtotal with free-shipping and reward-tier progress for the cart drawer.
// @Tags         Cart
// @Produce      json
// @Param        X-Cart-Session header string false "Signed cart session token"
// @Success      200 {object} dto.SuccessResponse{data=dto.SummaryResponse}
// @Router       /api/cart/summary [get]
func (h *CartHandler) Summary(c *gin.Context) {
	builder := NewResponseBuilder(c)
	summary, err := h.carts.Summary(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		builder.writeServiceError(err)
		return
	}
	builder.SuccessOK(dto.SummaryResponse{
		TotalItems:   summary.TotalItems,
		Subtotal:     summary.Subtotal,
		TotalWeight:  summary.TotalWeight,
		CurrencyCode: summary.CurrencyCode,
		FreeShipping: summary.FreeShipping,
		Rewards:      summary.Rewards,
	})
}

func (h *CartHandler) badRequest(c *gin.Context, err error) {
	builder := NewResponseBuilder(c)
	var verr *dto.ValidationError
	if errors.As(err, &verr) {
		builder.Fail(http.StatusBadRequest, dto.ErrCodeInvalidRequest, verr.Error(),
			map[string]interface{}{"field": verr.Field}, nil)
		return
	}
	builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
}
