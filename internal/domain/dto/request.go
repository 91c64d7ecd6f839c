// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs decouple the HTTP layer from the cart engine types, providing validation
// and serialization for API communication.
package dto

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/guttosm/storefront-cart/internal/cart"
)

// AddItemRequest represents the JSON request body for adding a variant to the cart.
//
// QuantityAvailable and AvailableForSale are the stock snapshot the storefront read
// from the commerce platform when the shopper pressed "add".
//
// @Description Request to add a product variant to the cart
// @Example {"id": "gid://shop/ProductVariant/101", "product_id": "gid://shop/Product/7", "title": "Linen Shirt", "price": "20.00", "currency_code": "EUR", "quantity": 1, "quantity_available": 3}
type AddItemRequest struct {
	// ID is the variant identifier.
	ID           string          `json:"id" binding:"required" example:"gid://shop/ProductVariant/101"`
	ProductID    string          `json:"product_id" example:"gid://shop/Product/7"`
	Handle       string          `json:"handle" example:"linen-shirt"`
	Title        string          `json:"title" binding:"required" example:"Linen Shirt"`
	VariantLabel string          `json:"variant_label,omitempty" example:"M"`
	Image        string          `json:"image,omitempty"`
	Price        decimal.Decimal `json:"price" swaggertype:"string" example:"20.00"`
	CurrencyCode string          `json:"currency_code" binding:"required,len=3" example:"EUR"`
	// Quantity defaults to 1 when omitted.
	Quantity          int              `json:"quantity" binding:"gte=0" example:"1"`
	QuantityAvailable *int             `json:"quantity_available,omitempty" example:"3"`
	AvailableForSale  *bool            `json:"available_for_sale,omitempty" example:"true"`
	Weight            *decimal.Decimal `json:"weight,omitempty" swaggertype:"string" example:"0.4"`
} // @name AddItemRequest

// UpdateQuantityRequest represents the JSON request body for setting a line quantity.
// Zero removes the line.
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required" example:"2"`
} // @name UpdateQuantityRequest

// SetPanelRequest represents the JSON request body for opening or closing the cart panel.
type SetPanelRequest struct {
	Open *bool `json:"open" binding:"required" example:"true"`
} // @name SetPanelRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

var (
	// ErrInvalidPrice is returned when price is negative.
	ErrInvalidPrice = &ValidationError{
		Field:   "price",
		Message: "must not be negative",
	}
	// ErrInvalidWeight is returned when weight is negative.
	ErrInvalidWeight = &ValidationError{
		Field:   "weight",
		Message: "must not be negative",
	}
	// ErrInvalidQuantity is returned when quantity is negative.
	ErrInvalidQuantity = &ValidationError{
		Field:   "quantity",
		Message: "must not be negative",
	}
	// ErrBlankID is returned when the variant id is only whitespace.
	ErrBlankID = &ValidationError{
		Field:   "id",
		Message: "must not be blank",
	}
)

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate performs the checks binding tags cannot express.
func (r *AddItemRequest) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return ErrBlankID
	}
	if r.Price.IsNegative() {
		return ErrInvalidPrice
	}
	if r.Weight != nil && r.Weight.IsNegative() {
		return ErrInvalidWeight
	}
	if r.Quantity < 0 {
		return ErrInvalidQuantity
	}
	return nil
}

// ToInput converts the request into engine input.
func (r *AddItemRequest) ToInput() cart.AddItemInput {
	return cart.AddItemInput{
		ID:                strings.TrimSpace(r.ID),
		ProductID:         r.ProductID,
		Handle:            r.Handle,
		Title:             r.Title,
		VariantLabel:      r.VariantLabel,
		Image:             r.Image,
		Price:             r.Price,
		CurrencyCode:      strings.ToUpper(r.CurrencyCode),
		Quantity:          r.Quantity,
		QuantityAvailable: r.QuantityAvailable,
		AvailableForSale:  r.AvailableForSale,
		Weight:            r.Weight,
	}
}

// Validate performs custom validation on the request.
func (r *UpdateQuantityRequest) Validate() error {
	if r.Quantity == nil || *r.Quantity < 0 {
		return ErrInvalidQuantity
	}
	return nil
}
