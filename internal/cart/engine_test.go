package cart

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func boolPtr(v bool) *bool { return &v }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got)
}

func input(id, price string, available *int) AddItemInput {
	return AddItemInput{
		ID:                id,
		ProductID:         "p-" + id,
		Handle:            "handle-" + id,
		Title:             "Title " + id,
		Price:             dec(price),
		CurrencyCode:      "EUR",
		QuantityAvailable: available,
	}
}

// fixedClock returns a clock that advances by step on every call.
func fixedClock(start time.Time, step time.Duration) func() time.Time {
	current := start
	return func() time.Time {
		t := current
		current = current.Add(step)
		return t
	}
}

func TestEngine_AddItem(t *testing.T) {
	tests := []struct {
		name          string
		setup         func(*Engine)
		in            AddItemInput
		expectedErr   error
		expectedLimit int
		expectedQty   int
		expectedItems int
	}{
		{
			name:          "appends new item with default quantity",
			in:            input("v1", "20.00", nil),
			expectedQty:   1,
			expectedItems: 1,
		},
		{
			name: "increments existing item",
			setup: func(e *Engine) {
				_, _ = e.AddItem(input("v1", "20.00", intPtr(5)))
			},
			in:            AddItemInput{ID: "v1", Quantity: 2, QuantityAvailable: intPtr(5)},
			expectedQty:   3,
			expectedItems: 1,
		},
		{
			name: "rejects re-add beyond bound",
			setup: func(e *Engine) {
				_, _ = e.AddItem(input("v1", "20.00", intPtr(1)))
			},
			in:            AddItemInput{ID: "v1", Quantity: 1, QuantityAvailable: intPtr(1)},
			expectedErr:   ErrOutOfStock,
			expectedLimit: 1,
			expectedQty:   1,
			expectedItems: 1,
		},
		{
			name: "uses stored bound when input carries none",
			setup: func(e *Engine) {
				_, _ = e.AddItem(input("v1", "20.00", intPtr(2)))
			},
			in:            AddItemInput{ID: "v1", Quantity: 2},
			expectedErr:   ErrOutOfStock,
			expectedLimit: 2,
			expectedQty:   1,
			expectedItems: 1,
		},
		{
			name: "newest stock data wins over stored bound",
			setup: func(e *Engine) {
				_, _ = e.AddItem(input("v1", "20.00", intPtr(1)))
			},
			in:            AddItemInput{ID: "v1", Quantity: 2, QuantityAvailable: intPtr(10)},
			expectedQty:   3,
			expectedItems: 1,
		},
		{
			name:          "rejects new item above bound",
			in:            AddItemInput{ID: "v2", Quantity: 4, QuantityAvailable: intPtr(3)},
			expectedErr:   ErrOutOfStock,
			expectedLimit: 3,
			expectedItems: 0,
		},
		{
			name:          "rejects variant not for sale",
			in:            AddItemInput{ID: "v3", AvailableForSale: boolPtr(false)},
			expectedErr:   ErrOutOfStock,
			expectedLimit: 0,
			expectedItems: 0,
		},
		{
			name:          "zero bound is unconstrained",
			in:            AddItemInput{ID: "v4", Quantity: 7, QuantityAvailable: intPtr(0)},
			expectedQty:   7,
			expectedItems: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New()
			if tt.setup != nil {
				tt.setup(e)
			}
			before := e.Snapshot()

			effect, err := e.AddItem(tt.in)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				oos, ok := AsOutOfStock(err)
				require.True(t, ok)
				assert.Equal(t, tt.expectedLimit, oos.Limit)
				assert.Equal(t, EffectNone, effect.Kind)
				assert.Equal(t, before, e.Snapshot())
			} else {
				require.NoError(t, err)
				assert.True(t, effect.ShouldPersist())
			}

			assert.Len(t, e.Snapshot().Items, tt.expectedItems)
			if tt.expectedItems > 0 {
				item, ok := e.Item(tt.in.ID)
				if tt.expectedQty > 0 {
					require.True(t, ok)
					assert.Equal(t, tt.expectedQty, item.Quantity)
				}
			}
		})
	}
}

func TestEngine_AddItem_RefreshesStockSnapshot(t *testing.T) {
	e := New()
	_, err := e.AddItem(input("v1", "10.00", intPtr(3)))
	require.NoError(t, err)

	_, err = e.AddItem(AddItemInput{ID: "v1", QuantityAvailable: intPtr(8)})
	require.NoError(t, err)

	item, _ := e.Item("v1")
	require.NotNil(t, item.QuantityAvailable)
	assert.Equal(t, 8, *item.QuantityAvailable)
	assert.Equal(t, "Title v1", item.Title, "display data is immutable once added")
}

func TestEngine_AddItem_KeepsStockSnapshotWithoutNewData(t *testing.T) {
	e := New()
	_, err := e.AddItem(AddItemInput{ID: "v1", Quantity: 2, QuantityAvailable: intPtr(3)})
	require.NoError(t, err)

	_, err = e.AddItem(AddItemInput{ID: "v1"})
	require.NoError(t, err)

	item, _ := e.Item("v1")
	require.NotNil(t, item.QuantityAvailable)
	assert.Equal(t, 3, *item.QuantityAvailable)
	assert.Equal(t, 3, item.Quantity)

	_, err = e.AddItem(AddItemInput{ID: "v1"})
	oos, ok := AsOutOfStock(err)
	require.True(t, ok)
	assert.Equal(t, 3, oos.Limit)
}

func TestEngine_RemoveItem(t *testing.T) {
	clock := fixedClock(time.UnixMilli(1_000), 0)
	e := New(WithClock(clock))
	_, _ = e.AddItem(input("v1", "5.00", nil))
	_, _ = e.AddItem(input("v2", "7.50", nil))

	t.Run("unknown id is a no-op", func(t *testing.T) {
		effect := e.RemoveItem("missing")
		assert.Equal(t, EffectNone, effect.Kind)
		assert.Len(t, e.Snapshot().Items, 2)
	})

	t.Run("removes and records history", func(t *testing.T) {
		effect := e.RemoveItem("v1")
		assert.True(t, effect.ShouldPersist())

		s := e.Snapshot()
		require.Len(t, s.Items, 1)
		assert.Equal(t, "v2", s.Items[0].ID)
		require.NotNil(t, s.LastRemoved)
		assert.Equal(t, "v1", s.LastRemoved.ID)
		require.Len(t, s.RemovalHistory, 1)
		assert.Equal(t, int64(1_000), s.RemovalHistory[0].RemovedAt)
	})

	t.Run("same-millisecond removals get distinct timestamps", func(t *testing.T) {
		e.RemoveItem("v2")
		s := e.Snapshot()
		require.Len(t, s.RemovalHistory, 2)
		assert.Equal(t, int64(1_001), s.RemovalHistory[1].RemovedAt)
		assert.Equal(t, "v2", s.LastRemoved.ID)
	})
}

func TestEngine_UpdateQuantity(t *testing.T) {
	tests := []struct {
		name        string
		id          string
		quantity    int
		expectedErr error
		validate    func(*testing.T, State)
	}{
		{
			name:     "sets quantity in place",
			id:       "v1",
			quantity: 3,
			validate: func(t *testing.T, s State) {
				require.Len(t, s.Items, 2)
				assert.Equal(t, "v1", s.Items[0].ID)
				assert.Equal(t, 3, s.Items[0].Quantity)
			},
		},
		{
			name:        "rejects above bound and keeps state",
			id:          "v1",
			quantity:    5,
			expectedErr: ErrOutOfStock,
			validate: func(t *testing.T, s State) {
				assert.Equal(t, 1, s.Items[0].Quantity)
			},
		},
		{
			name:     "zero removes",
			id:       "v1",
			quantity: 0,
			validate: func(t *testing.T, s State) {
				require.Len(t, s.Items, 1)
				assert.Equal(t, "v2", s.Items[0].ID)
				require.NotNil(t, s.LastRemoved)
				assert.Len(t, s.RemovalHistory, 1)
			},
		},
		{
			name:     "negative removes",
			id:       "v2",
			quantity: -3,
			validate: func(t *testing.T, s State) {
				require.Len(t, s.Items, 1)
				assert.Equal(t, "v1", s.Items[0].ID)
			},
		},
		{
			name:        "unknown id",
			id:          "nope",
			quantity:    2,
			expectedErr: ErrItemNotFound,
			validate: func(t *testing.T, s State) {
				assert.Len(t, s.Items, 2)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New()
			_, _ = e.AddItem(input("v1", "20.00", intPtr(4)))
			_, _ = e.AddItem(input("v2", "5.00", nil))

			_, err := e.UpdateQuantity(tt.id, tt.quantity)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			tt.validate(t, e.Snapshot())
		})
	}
}

func TestEngine_Totals(t *testing.T) {
	t.Run("empty cart is zero", func(t *testing.T) {
		e := New()
		assert.Equal(t, 0, e.TotalItems())
		assertDecimal(t, "0", e.TotalPrice())
		assertDecimal(t, "0", e.TotalWeight())
		assert.Equal(t, "", e.CurrencyCode())
	})

	t.Run("sums price and weight by quantity", func(t *testing.T) {
		e := New()
		heavy := dec("2.25")
		_, _ = e.AddItem(AddItemInput{ID: "a", Price: dec("19.99"), CurrencyCode: "USD", Quantity: 2})
		_, _ = e.AddItem(AddItemInput{ID: "b", Price: dec("0.01"), CurrencyCode: "USD", Quantity: 3, Weight: &heavy})

		assert.Equal(t, 5, e.TotalItems())
		assertDecimal(t, "40.01", e.TotalPrice())
		assertDecimal(t, "7.75", e.TotalWeight())
		assert.Equal(t, "USD", e.CurrencyCode())
	})
}

func TestEngine_ClearAndPanel(t *testing.T) {
	e := New()
	_, _ = e.AddItem(input("v1", "1.00", nil))
	e.RemoveItem("v1")
	_, _ = e.AddItem(input("v2", "1.00", nil))

	assert.True(t, e.SetCartPanelOpen(true).ShouldPersist())
	assert.False(t, e.SetCartPanelOpen(true).ShouldPersist())
	assert.True(t, e.ToggleCartPanel().ShouldPersist())
	assert.False(t, e.Snapshot().IsCartPanelOpen)

	e.SetCartPanelOpen(true)
	assert.True(t, e.Clear().ShouldPersist())
	s := e.Snapshot()
	assert.Empty(t, s.Items)
	assert.Nil(t, s.LastRemoved)
	assert.Empty(t, s.RemovalHistory)
	assert.True(t, s.IsCartPanelOpen)

	assert.Equal(t, EffectNone, e.Clear().Kind)
}

func TestEngine_SnapshotIsIsolated(t *testing.T) {
	e := New()
	_, _ = e.AddItem(input("v1", "3.00", intPtr(9)))

	s := e.Snapshot()
	s.Items[0].Quantity = 99
	*s.Items[0].QuantityAvailable = 0

	item, _ := e.Item("v1")
	assert.Equal(t, 1, item.Quantity)
	assert.Equal(t, 9, *item.QuantityAvailable)
}

// TestEngine_InvariantsHold drives a fixed pseudo-random sequence of operations and
// checks uniqueness, positive quantities and the subtotal formula after each step.
func TestEngine_InvariantsHold(t *testing.T) {
	e := New()
	ids := []string{"a", "b", "c", "d"}
	seed := uint32(7)
	next := func(n int) int {
		seed = seed*1664525 + 1013904223
		return int(seed>>16) % n
	}

	for step := 0; step < 500; step++ {
		id := ids[next(len(ids))]
		switch next(6) {
		case 0, 1:
			_, _ = e.AddItem(AddItemInput{ID: id, Price: dec("2.50"), Quantity: next(4), QuantityAvailable: intPtr(next(6))})
		case 2:
			e.RemoveItem(id)
		case 3:
			_, _ = e.UpdateQuantity(id, next(7)-2)
		case 4:
			_, _ = e.UndoRemove()
		case 5:
			s := e.Snapshot()
			if len(s.RemovalHistory) > 0 {
				_, _ = e.UndoRemoveByID(s.RemovalHistory[next(len(s.RemovalHistory))].RemovedAt)
			}
		}

		s := e.Snapshot()
		seen := make(map[string]bool)
		expected := decimal.Zero
		for _, item := range s.Items {
			assert.False(t, seen[item.ID], "duplicate id %s at step %d", item.ID, step)
			seen[item.ID] = true
			assert.GreaterOrEqual(t, item.Quantity, 1, "step %d", step)
			if item.QuantityAvailable != nil && *item.QuantityAvailable > 0 {
				assert.LessOrEqual(t, item.Quantity, *item.QuantityAvailable, "step %d", step)
			}
			expected = expected.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
		assert.True(t, expected.Equal(e.TotalPrice()), "step %d", step)
	}
}
