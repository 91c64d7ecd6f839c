package checkout

import (
	"context"
	"fmt"
)

// UserError is a validation message returned by the checkout creation call.
type UserError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// CreateResult is the outcome of a checkout creation call that reached the platform.
type CreateResult struct {
	RedirectURL string
	UserErrors  []UserError
}

// Creator creates a hosted checkout from line items.
type Creator interface {
	CreateCheckout(ctx context.Context, lines []LineItemInput) (*CreateResult, error)
}

// Handoff interprets the creator response. It keeps no state.
type Handoff struct {
	creator Creator
}

// NewHandoff creates a handoff backed by creator.
func NewHandoff(creator Creator) *Handoff {
	return &Handoff{creator: creator}
}

// RequestCheckout returns the redirect URL for lines.
// The first user error is surfaced verbatim as a *CreationFailedError.
func (h *Handoff) RequestCheckout(ctx context.Context, lines []LineItemInput) (string, error) {
	if len(lines) == 0 {
		return "", ErrEmptyCart
	}

	result, err := h.creator.CreateCheckout(ctx, lines)
	if err != nil {
		if _, ok := AsCreationFailed(err); ok {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", ErrCheckoutCreationFailed, err)
	}
	if result == nil {
		return "", &CreationFailedError{}
	}

	if len(result.UserErrors) > 0 {
		first := result.UserErrors[0]
		return "", &CreationFailedError{Field: first.Field, Message: first.Message}
	}
	if result.RedirectURL == "" {
		return "", &CreationFailedError{}
	}
	return result.RedirectURL, nil
}
