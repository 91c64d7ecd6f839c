package cart

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfStock is matched by every *OutOfStockError.
	ErrOutOfStock = errors.New("cart: out of stock")
	// ErrItemNotFound is returned when a quantity update targets an item that is not in the cart.
	ErrItemNotFound = errors.New("cart: item not found")
	// ErrUnsupportedVersion is returned when a persisted document has an unknown version.
	ErrUnsupportedVersion = errors.New("cart: unsupported document version")
)

// OutOfStockError reports a quantity that exceeds the known stock bound.
// Limit is the available quantity, zero when the variant is not for sale.
type OutOfStockError struct {
	ItemID    string
	Limit     int
	Requested int
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("cart: out of stock for %s: requested %d, only %d available", e.ItemID, e.Requested, e.Limit)
}

// Is makes errors.Is(err, ErrOutOfStock) hold.
func (e *OutOfStockError) Is(target error) bool {
	return target == ErrOutOfStock
}

// AsOutOfStock extracts the stock error from err, if any.
func AsOutOfStock(err error) (*OutOfStockError, bool) {
	var oos *OutOfStockError
	if errors.As(err, &oos) {
		return oos, true
	}
	return nil, false
}
