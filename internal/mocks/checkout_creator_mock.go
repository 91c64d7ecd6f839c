// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/storefront-cart/internal/checkout"
)

type MockCheckoutCreator struct {
	mock.Mock
}

func (m *MockCheckoutCreator) CreateCheckout(ctx context.Context, lines []checkout.LineItemInput) (*checkout.CreateResult, error) {
	args := m.Called(ctx, lines)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*checkout.CreateResult), args.Error(1)
}
