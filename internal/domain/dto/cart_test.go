package dto

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/storefront-cart/internal/cart"
)

func TestNewCartResponse_EmptyCartRendersArrays(t *testing.T) {
	resp := NewCartResponse(cart.State{}, 0, decimal.Zero, decimal.Zero, "")

	data, err := json.Marshal(resp)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &body))
	assert.Equal(t, []interface{}{}, body["items"])
	assert.Equal(t, []interface{}{}, body["removal_history"])
	assert.Equal(t, "0", body["total_price"])
	assert.NotContains(t, body, "last_removed")
	assert.NotContains(t, body, "currency_code")
}
