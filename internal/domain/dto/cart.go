package dto

import (
	"github.com/shopspring/decimal"

	"github.com/guttosm/storefront-cart/internal/cart"
	"github.com/guttosm/storefront-cart/internal/checkout"
)

// CartResponse is the cart state together with its derived totals.
// @Description Cart contents and totals
type CartResponse struct {
	Items           []cart.LineItem     `json:"items"`
	IsCartPanelOpen bool                `json:"is_cart_panel_open"`
	LastRemoved     *cart.LineItem      `json:"last_removed,omitempty"`
	RemovalHistory  []cart.RemovalEntry `json:"removal_history"`
	TotalItems      int                 `json:"total_items" example:"3"`
	TotalPrice      decimal.Decimal     `json:"total_price" swaggertype:"string" example:"60.00"`
	TotalWeight     decimal.Decimal     `json:"total_weight" swaggertype:"string" example:"1.5"`
	CurrencyCode    string              `json:"currency_code,omitempty" example:"EUR"`
} // @name CartResponse

// SummaryResponse carries the data behind the cart drawer's progress bars.
// @Description Cart totals with free-shipping and reward progress
type SummaryResponse struct {
	TotalItems   int                   `json:"total_items" example:"3"`
	Subtotal     decimal.Decimal       `json:"subtotal" swaggertype:"string" example:"60.00"`
	TotalWeight  decimal.Decimal       `json:"total_weight" swaggertype:"string" example:"1.5"`
	CurrencyCode string                `json:"currency_code,omitempty" example:"EUR"`
	FreeShipping cart.ShippingProgress `json:"free_shipping"`
	Rewards      cart.RewardProgress   `json:"rewards"`
} // @name SummaryResponse

// CheckoutResponse carries the hosted checkout URL the shopper is sent to.
type CheckoutResponse struct {
	RedirectURL string `json:"redirect_url" example:"https://shop.example.com/checkouts/c/9f2"`
} // @name CheckoutResponse

// AbandonCheckoutResponse reports whether a running attempt was abandoned.
type AbandonCheckoutResponse struct {
	Abandoned bool `json:"abandoned" example:"true"`
} // @name AbandonCheckoutResponse

// CheckoutStatusResponse is the current checkout flow state.
type CheckoutStatusResponse = checkout.FlowStatus

// NewCartResponse builds a CartResponse. Nil slices are rendered as empty arrays.
func NewCartResponse(state cart.State, totalItems int, totalPrice, totalWeight decimal.Decimal, currency string) CartResponse {
	items := state.Items
	if items == nil {
		items = []cart.LineItem{}
	}
	history := state.RemovalHistory
	if history == nil {
		history = []cart.RemovalEntry{}
	}
	return CartResponse{
		Items:           items,
		IsCartPanelOpen: state.IsCartPanelOpen,
		LastRemoved:     state.LastRemoved,
		RemovalHistory:  history,
		TotalItems:      totalItems,
		TotalPrice:      totalPrice,
		TotalWeight:     totalWeight,
		CurrencyCode:    currency,
	}
}
