// Package cart implements the client-side cart engine: the line-item model, stock-aware
// mutation rules, reversible removal and the derived totals used by promotional
// thresholds.
//
// The engine performs no I/O. Every mutation returns an Effect describing what the
// host has to persist, so the persistence strategy can change without touching the
// rules in this package.
package cart

import (
	"github.com/shopspring/decimal"
)

// DefaultWeight is the shipping-weight hint used for items that carry none.
var DefaultWeight = decimal.NewFromFloat(0.5)

// LineItem is one purchasable variant in the cart.
//
// ID is the variant identifier and the only uniqueness key. ProductID identifies the
// parent product and is never used for cart identity.
type LineItem struct {
	ID           string          `json:"id" example:"gid://shop/ProductVariant/101"`
	ProductID    string          `json:"productId" example:"gid://shop/Product/7"`
	Handle       string          `json:"handle" example:"linen-shirt"`
	Title        string          `json:"title" example:"Linen Shirt"`
	VariantLabel string          `json:"variantLabel,omitempty" example:"M"`
	Image        string          `json:"image,omitempty"`
	Price        decimal.Decimal `json:"price" swaggertype:"string" example:"20.00"`
	CurrencyCode string          `json:"currencyCode" example:"EUR"`
	Quantity     int             `json:"quantity" example:"1"`
	// QuantityAvailable is the stock snapshot taken at the last add. Nil means unconstrained.
	QuantityAvailable *int `json:"quantityAvailable,omitempty"`
	// Weight defaults to DefaultWeight when nil.
	Weight *decimal.Decimal `json:"weight,omitempty" swaggertype:"string"`
}

// LineTotal returns price × quantity.
func (i LineItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// ShippingWeight returns the weight hint × quantity.
func (i LineItem) ShippingWeight() decimal.Decimal {
	w := DefaultWeight
	if i.Weight != nil {
		w = *i.Weight
	}
	return w.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// limit returns the positive stock bound of the item, if any.
func (i LineItem) limit() (int, bool) {
	return positiveBound(i.QuantityAvailable)
}

func (i LineItem) clone() LineItem {
	c := i
	if i.QuantityAvailable != nil {
		q := *i.QuantityAvailable
		c.QuantityAvailable = &q
	}
	if i.Weight != nil {
		w := *i.Weight
		c.Weight = &w
	}
	return c
}

// AddItemInput carries everything needed to add a variant, including the Stock Oracle
// data attached by the caller.
type AddItemInput struct {
	ID           string
	ProductID    string
	Handle       string
	Title        string
	VariantLabel string
	Image        string
	Price        decimal.Decimal
	CurrencyCode string
	// Quantity to add. Zero or less means 1.
	Quantity          int
	QuantityAvailable *int
	// AvailableForSale is nil when the caller has no availability flag.
	AvailableForSale *bool
	Weight           *decimal.Decimal
}

func (in AddItemInput) quantity() int {
	if in.Quantity <= 0 {
		return 1
	}
	return in.Quantity
}

func (in AddItemInput) lineItem(quantity int) LineItem {
	return LineItem{
		ID:                in.ID,
		ProductID:         in.ProductID,
		Handle:            in.Handle,
		Title:             in.Title,
		VariantLabel:      in.VariantLabel,
		Image:             in.Image,
		Price:             in.Price,
		CurrencyCode:      in.CurrencyCode,
		Quantity:          quantity,
		QuantityAvailable: copyInt(in.QuantityAvailable),
		Weight:            copyDecimal(in.Weight),
	}
}

// RemovalEntry is one removed item together with the time it was removed.
// RemovedAt is a Unix millisecond timestamp, unique within a cart.
// Restored is set once the item went back through UndoRemove.
type RemovalEntry struct {
	Item      LineItem `json:"item"`
	RemovedAt int64    `json:"removedAt" example:"1760601600000"`
	Restored  bool     `json:"restored,omitempty"`
}

// State is the aggregate root persisted for a session.
type State struct {
	Items           []LineItem `json:"items"`
	IsCartPanelOpen bool       `json:"isCartPanelOpen"`
	LastRemoved     *LineItem  `json:"lastRemoved,omitempty"`
	// LastRemovedAt links LastRemoved to its history entry.
	LastRemovedAt  int64          `json:"lastRemovedAt,omitempty"`
	RemovalHistory []RemovalEntry `json:"removalHistory"`
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	c := State{
		Items:           make([]LineItem, len(s.Items)),
		IsCartPanelOpen: s.IsCartPanelOpen,
		LastRemovedAt:   s.LastRemovedAt,
		RemovalHistory:  make([]RemovalEntry, len(s.RemovalHistory)),
	}
	for i, item := range s.Items {
		c.Items[i] = item.clone()
	}
	for i, entry := range s.RemovalHistory {
		c.RemovalHistory[i] = RemovalEntry{Item: entry.Item.clone(), RemovedAt: entry.RemovedAt, Restored: entry.Restored}
	}
	if s.LastRemoved != nil {
		last := s.LastRemoved.clone()
		c.LastRemoved = &last
	}
	return c
}

func positiveBound(q *int) (int, bool) {
	if q == nil || *q <= 0 {
		return 0, false
	}
	return *q, true
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func copyDecimal(v *decimal.Decimal) *decimal.Decimal {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
