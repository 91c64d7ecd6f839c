package checkout

import (
	"errors"
	"fmt"
)

var (
	// ErrCheckoutCreationFailed matches every failed checkout creation, remote or transport.
	ErrCheckoutCreationFailed = errors.New("checkout creation failed")
	// ErrEmptyCart is returned when a checkout is requested for a cart with no items.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrCheckoutInProgress is returned when a second attempt starts while one is awaiting the remote.
	ErrCheckoutInProgress = errors.New("checkout already in progress")
	// ErrCheckoutAbandoned is returned for an attempt that was abandoned before its result arrived.
	ErrCheckoutAbandoned = errors.New("checkout abandoned")
)

// CreationFailedError is a failure reported by the commerce platform itself.
// Message is shown to the shopper verbatim; it is empty when the platform gave none.
type CreationFailedError struct {
	Field   string
	Message string
}

func (e *CreationFailedError) Error() string {
	if e.Message == "" {
		return ErrCheckoutCreationFailed.Error()
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", ErrCheckoutCreationFailed, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", ErrCheckoutCreationFailed, e.Message)
}

// Is makes errors.Is(err, ErrCheckoutCreationFailed) hold.
func (e *CreationFailedError) Is(target error) bool {
	return target == ErrCheckoutCreationFailed
}

// AsCreationFailed extracts a *CreationFailedError from err.
func AsCreationFailed(err error) (*CreationFailedError, bool) {
	var target *CreationFailedError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}
