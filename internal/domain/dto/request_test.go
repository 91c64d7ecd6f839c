package dto

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestAddItemRequest_Validate(t *testing.T) {
	negative := decimal.NewFromInt(-1)

	tests := []struct {
		name        string
		request     AddItemRequest
		expectedErr error
	}{
		{
			name:    "valid request",
			request: AddItemRequest{ID: "v1", Title: "Shirt", Price: decimal.NewFromInt(20), Quantity: 1},
		},
		{
			name:    "zero quantity defaults later",
			request: AddItemRequest{ID: "v1", Price: decimal.Zero},
		},
		{
			name:        "blank id",
			request:     AddItemRequest{ID: "  ", Price: decimal.NewFromInt(1)},
			expectedErr: ErrBlankID,
		},
		{
			name:        "negative price",
			request:     AddItemRequest{ID: "v1", Price: negative},
			expectedErr: ErrInvalidPrice,
		},
		{
			name:        "negative weight",
			request:     AddItemRequest{ID: "v1", Weight: &negative},
			expectedErr: ErrInvalidWeight,
		},
		{
			name:        "negative quantity",
			request:     AddItemRequest{ID: "v1", Quantity: -2},
			expectedErr: ErrInvalidQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.expectedErr != nil {
				assert.Equal(t, tt.expectedErr, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAddItemRequest_ToInput(t *testing.T) {
	req := AddItemRequest{
		ID:                " v1 ",
		ProductID:         "p1",
		Title:             "Shirt",
		Price:             decimal.RequireFromString("19.90"),
		CurrencyCode:      "eur",
		Quantity:          2,
		QuantityAvailable: intPtr(4),
	}

	in := req.ToInput()

	assert.Equal(t, "v1", in.ID)
	assert.Equal(t, "p1", in.ProductID)
	assert.Equal(t, "EUR", in.CurrencyCode)
	assert.Equal(t, 2, in.Quantity)
	assert.True(t, decimal.RequireFromString("19.9").Equal(in.Price))
	assert.Equal(t, 4, *in.QuantityAvailable)
}

func TestUpdateQuantityRequest_Validate(t *testing.T) {
	assert.NoError(t, (&UpdateQuantityRequest{Quantity: intPtr(0)}).Validate())
	assert.NoError(t, (&UpdateQuantityRequest{Quantity: intPtr(3)}).Validate())
	assert.Equal(t, ErrInvalidQuantity, (&UpdateQuantityRequest{}).Validate())
	assert.Equal(t, ErrInvalidQuantity, (&UpdateQuantityRequest{Quantity: intPtr(-1)}).Validate())
}

func TestValidationError_Error(t *testing.T) {
	assert.Equal(t, "price: must not be negative", ErrInvalidPrice.Error())
}
