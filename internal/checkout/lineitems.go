// Package checkout turns a cart into a checkout on the hosted commerce platform and
// tracks the in-flight attempt for a session.
package checkout

import "github.com/guttosm/storefront-cart/internal/cart"

// LineItemInput is the per-line payload accepted by the checkout creation call.
type LineItemInput struct {
	VariantID string `json:"variantId"`
	Quantity  int    `json:"quantity"`
}

// BuildLineItems projects the cart onto checkout line items, preserving cart order.
func BuildLineItems(state cart.State) ([]LineItemInput, error) {
	if len(state.Items) == 0 {
		return nil, ErrEmptyCart
	}
	lines := make([]LineItemInput, 0, len(state.Items))
	for _, item := range state.Items {
		lines = append(lines, LineItemInput{VariantID: item.ID, Quantity: item.Quantity})
	}
	return lines, nil
}
