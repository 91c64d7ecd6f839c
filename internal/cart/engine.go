package cart

import (
	"time"

	"github.com/shopspring/decimal"
)

// EffectKind tells the host what to do after a mutation.
type EffectKind int

const (
	// EffectNone means the state did not change.
	EffectNone EffectKind = iota
	// EffectPersist means the attached snapshot must be written to storage.
	EffectPersist
)

// String returns the string representation of the kind.
func (k EffectKind) String() string {
	switch k {
	case EffectNone:
		return "none"
	case EffectPersist:
		return "persist"
	default:
		return "unknown"
	}
}

// Effect is returned by every mutating operation.
type Effect struct {
	Kind  EffectKind
	State State
}

// ShouldPersist reports whether the effect carries a snapshot to write.
func (e Effect) ShouldPersist() bool {
	return e.Kind == EffectPersist
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the time source used for removal timestamps.
func WithClock(clock func() time.Time) Option {
	return func(e *Engine) {
		if clock != nil {
			e.clock = clock
		}
	}
}

// Engine owns the mutable cart state of one session.
// It is not safe for concurrent use; the host linearizes calls per session.
type Engine struct {
	state State
	clock func() time.Time
}

// New creates an engine with an empty cart.
func New(opts ...Option) *Engine {
	return Restore(State{}, opts...)
}

// Restore creates an engine from a previously persisted state.
func Restore(state State, opts ...Option) *Engine {
	e := &Engine{
		state: state.Clone(),
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Snapshot returns a deep copy of the current state.
func (e *Engine) Snapshot() State {
	return e.state.Clone()
}

// Item returns the line item with the given variant ID.
func (e *Engine) Item(id string) (LineItem, bool) {
	if idx := e.indexOf(id); idx >= 0 {
		return e.state.Items[idx].clone(), true
	}
	return LineItem{}, false
}

// AddItem adds a variant or increases the quantity of an existing line.
// A quantity that would exceed the known stock bound is rejected as a whole.
func (e *Engine) AddItem(in AddItemInput) (Effect, error) {
	qty := in.quantity()

	if in.AvailableForSale != nil && !*in.AvailableForSale {
		return e.none(), &OutOfStockError{ItemID: in.ID, Limit: 0, Requested: qty}
	}

	idx := e.indexOf(in.ID)
	if idx < 0 {
		if limit, ok := positiveBound(in.QuantityAvailable); ok && qty > limit {
			return e.none(), &OutOfStockError{ItemID: in.ID, Limit: limit, Requested: qty}
		}
		e.state.Items = append(e.state.Items, in.lineItem(qty))
		return e.persist(), nil
	}

	existing := &e.state.Items[idx]
	newQty := existing.Quantity + qty

	// Newest stock data wins; fall back to the stored snapshot.
	limit, bounded := positiveBound(in.QuantityAvailable)
	if in.QuantityAvailable == nil {
		limit, bounded = existing.limit()
	}
	if bounded && newQty > limit {
		return e.none(), &OutOfStockError{ItemID: in.ID, Limit: limit, Requested: newQty}
	}

	existing.Quantity = newQty
	if in.QuantityAvailable != nil {
		existing.QuantityAvailable = copyInt(in.QuantityAvailable)
	}
	return e.persist(), nil
}

// RemoveItem removes a line and records it for undo. Unknown IDs are ignored.
func (e *Engine) RemoveItem(id string) Effect {
	idx := e.indexOf(id)
	if idx < 0 {
		return e.none()
	}

	removed := e.state.Items[idx]
	e.state.Items = append(e.state.Items[:idx:idx], e.state.Items[idx+1:]...)

	ts := e.nextRemovalTimestamp()
	last := removed.clone()
	e.state.LastRemoved = &last
	e.state.LastRemovedAt = ts
	e.state.RemovalHistory = append(e.state.RemovalHistory, RemovalEntry{
		Item:      removed,
		RemovedAt: ts,
	})
	return e.persist()
}

// UpdateQuantity sets the quantity of a line in place.
// Zero or less removes the line.
func (e *Engine) UpdateQuantity(id string, quantity int) (Effect, error) {
	if quantity <= 0 {
		return e.RemoveItem(id), nil
	}

	idx := e.indexOf(id)
	if idx < 0 {
		return e.none(), ErrItemNotFound
	}

	item := &e.state.Items[idx]
	if limit, ok := item.limit(); ok && quantity > limit {
		return e.none(), &OutOfStockError{ItemID: id, Limit: limit, Requested: quantity}
	}
	if item.Quantity == quantity {
		return e.none(), nil
	}

	item.Quantity = quantity
	return e.persist(), nil
}

// Clear empties the cart, the pending undo and the removal history.
func (e *Engine) Clear() Effect {
	if len(e.state.Items) == 0 && e.state.LastRemoved == nil && len(e.state.RemovalHistory) == 0 {
		return e.none()
	}
	e.state.Items = nil
	e.state.LastRemoved = nil
	e.state.LastRemovedAt = 0
	e.state.RemovalHistory = nil
	return e.persist()
}

// SetCartPanelOpen records the cart panel visibility.
func (e *Engine) SetCartPanelOpen(open bool) Effect {
	if e.state.IsCartPanelOpen == open {
		return e.none()
	}
	e.state.IsCartPanelOpen = open
	return e.persist()
}

// ToggleCartPanel flips the cart panel visibility.
func (e *Engine) ToggleCartPanel() Effect {
	return e.SetCartPanelOpen(!e.state.IsCartPanelOpen)
}

// TotalItems returns the sum of all quantities.
func (e *Engine) TotalItems() int {
	total := 0
	for _, item := range e.state.Items {
		total += item.Quantity
	}
	return total
}

// TotalPrice returns Σ price × quantity.
func (e *Engine) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range e.state.Items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// TotalWeight returns Σ weight × quantity, using DefaultWeight for items without one.
func (e *Engine) TotalWeight() decimal.Decimal {
	total := decimal.Zero
	for _, item := range e.state.Items {
		total = total.Add(item.ShippingWeight())
	}
	return total
}

// CurrencyCode returns the currency tag of the first line, or "" for an empty cart.
func (e *Engine) CurrencyCode() string {
	if len(e.state.Items) == 0 {
		return ""
	}
	return e.state.Items[0].CurrencyCode
}

func (e *Engine) indexOf(id string) int {
	for i := range e.state.Items {
		if e.state.Items[i].ID == id {
			return i
		}
	}
	return -1
}

// nextRemovalTimestamp returns now in milliseconds, bumped past the newest history entry.
func (e *Engine) nextRemovalTimestamp() int64 {
	ts := e.clock().UnixMilli()
	if n := len(e.state.RemovalHistory); n > 0 {
		if newest := e.state.RemovalHistory[n-1].RemovedAt; ts <= newest {
			ts = newest + 1
		}
	}
	return ts
}

func (e *Engine) none() Effect {
	return Effect{Kind: EffectNone}
}

func (e *Engine) persist() Effect {
	return Effect{Kind: EffectPersist, State: e.state.Clone()}
}
