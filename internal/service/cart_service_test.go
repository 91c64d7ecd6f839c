package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/storefront-cart/internal/cart"
	"github.com/guttosm/storefront-cart/internal/checkout"
	"github.com/guttosm/storefront-cart/internal/mocks"
	"github.com/guttosm/storefront-cart/internal/repository"
)

func intPtr(v int) *int { return &v }

func setupService(t *testing.T) (*CartServiceImpl, *repository.MemoryCartStore, *mocks.MockCheckoutCreator) {
	t.Helper()
	store := repository.NewMemoryCartStore()
	creator := new(mocks.MockCheckoutCreator)
	svc := NewCartService(store, NewSyncPersister(store, time.Second), creator, CartServiceConfig{
		FreeShippingThreshold: decimal.NewFromInt(75),
		RewardTiers: []cart.RewardTier{
			{Threshold: decimal.NewFromInt(50), Label: "Free tote"},
			{Threshold: decimal.NewFromInt(100), Label: "10% off"},
		},
		Sessions: SessionCacheConfig{Capacity: 100, IdleTTL: time.Minute, Shards: 4},
	})
	t.Cleanup(svc.Stop)
	return svc, store, creator
}

func shirt(q int, available *int) cart.AddItemInput {
	return cart.AddItemInput{
		ID:                "v1",
		ProductID:         "p1",
		Title:             "Linen Shirt",
		Price:             decimal.NewFromInt(20),
		CurrencyCode:      "EUR",
		Quantity:          q,
		QuantityAvailable: available,
	}
}

func TestCartService_InvalidSession(t *testing.T) {
	svc, _, _ := setupService(t)

	_, err := svc.Get(context.Background(), " ")
	assert.ErrorIs(t, err, ErrInvalidSession)
	_, err = svc.AddItem(context.Background(), "", shirt(1, nil))
	assert.ErrorIs(t, err, ErrInvalidSession)
	_, err = svc.Checkout(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestCartService_AddItemPersists(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := setupService(t)

	snap, err := svc.AddItem(ctx, "s1", shirt(2, intPtr(5)))
	require.NoError(t, err)
	assert.Equal(t, 2, snap.TotalItems)
	assert.True(t, decimal.NewFromInt(40).Equal(snap.TotalPrice))
	assert.Equal(t, "EUR", snap.CurrencyCode)

	state := loadState(t, store, CartKey("s1"))
	require.Len(t, state.Items, 1)
	assert.Equal(t, 2, state.Items[0].Quantity)
}

func TestCartService_OutOfStockLeavesStoreUntouched(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := setupService(t)

	_, err := svc.AddItem(ctx, "s1", shirt(1, intPtr(1)))
	require.NoError(t, err)
	before, _ := store.Load(ctx, CartKey("s1"))

	_, err = svc.AddItem(ctx, "s1", shirt(1, intPtr(1)))
	require.Error(t, err)
	oos, ok := cart.AsOutOfStock(err)
	require.True(t, ok)
	assert.Equal(t, 1, oos.Limit)

	after, _ := store.Load(ctx, CartKey("s1"))
	assert.Equal(t, before, after)
}

func TestCartService_SessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setupService(t)

	_, err := svc.AddItem(ctx, "s1", shirt(1, nil))
	require.NoError(t, err)

	snap, err := svc.Get(ctx, "s2")
	require.NoError(t, err)
	assert.Empty(t, snap.State.Items)
}

func TestCartService_RehydratesFromStore(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryCartStore()
	creator := new(mocks.MockCheckoutCreator)

	first := NewCartService(store, NewSyncPersister(store, time.Second), creator, CartServiceConfig{})
	_, err := first.AddItem(ctx, "s1", shirt(3, nil))
	require.NoError(t, err)
	_, err = first.SetPanelOpen(ctx, "s1", true)
	require.NoError(t, err)
	first.Stop()

	second := NewCartService(store, NewSyncPersister(store, time.Second), creator, CartServiceConfig{})
	defer second.Stop()

	snap, err := second.Get(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, snap.State.Items, 1)
	assert.Equal(t, 3, snap.State.Items[0].Quantity)
	assert.True(t, snap.State.IsCartPanelOpen)
}

func TestCartService_LoadFailures(t *testing.T) {
	tests := []struct {
		name        string
		setupMock   func(*mocks.MockCartStore)
		expectedErr error
	}{
		{
			name: "corrupt document",
			setupMock: func(m *mocks.MockCartStore) {
				m.On("Load", mock.Anything, CartKey("s1")).Return([]byte(`{"version":`), nil)
			},
		},
		{
			name: "unsupported version",
			setupMock: func(m *mocks.MockCartStore) {
				m.On("Load", mock.Anything, CartKey("s1")).Return([]byte(`{"version":99}`), nil)
			},
		},
		{
			name: "store unavailable",
			setupMock: func(m *mocks.MockCartStore) {
				m.On("Load", mock.Anything, CartKey("s1")).Return(nil, errors.New("connection refused"))
			},
			expectedErr: ErrCartUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(mocks.MockCartStore)
			tt.setupMock(store)
			svc := NewCartService(store, NewSyncPersister(store, time.Second), new(mocks.MockCheckoutCreator), CartServiceConfig{})
			defer svc.Stop()

			snap, err := svc.Get(context.Background(), "s1")
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Zero(t, svc.CacheStats().Size)
			} else {
				require.NoError(t, err)
				assert.Empty(t, snap.State.Items)
			}
			store.AssertExpectations(t)
		})
	}
}

// flakyStore fails the next failLoads reads, then serves the wrapped store.
type flakyStore struct {
	*repository.MemoryCartStore
	mu        sync.Mutex
	failLoads int
}

func (s *flakyStore) Load(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	if s.failLoads > 0 {
		s.failLoads--
		s.mu.Unlock()
		return nil, errors.New("connection reset")
	}
	s.mu.Unlock()
	return s.MemoryCartStore.Load(ctx, key)
}

func TestCartService_LoadErrorKeepsStoredCart(t *testing.T) {
	ctx := context.Background()
	stored := cart.New()
	_, err := stored.AddItem(cart.AddItemInput{ID: "a", Price: decimal.NewFromInt(5), Quantity: 3})
	require.NoError(t, err)
	_, err = stored.AddItem(cart.AddItemInput{ID: "b", Price: decimal.NewFromInt(7), Quantity: 1})
	require.NoError(t, err)
	data, err := cart.Marshal(stored.Snapshot())
	require.NoError(t, err)

	store := &flakyStore{MemoryCartStore: repository.NewMemoryCartStore(), failLoads: 1}
	require.NoError(t, store.Save(ctx, CartKey("s1"), data))
	svc := NewCartService(store, NewSyncPersister(store, time.Second), new(mocks.MockCheckoutCreator), CartServiceConfig{})
	defer svc.Stop()

	add := cart.AddItemInput{ID: "c", Price: decimal.NewFromInt(2), Quantity: 1}
	_, err = svc.AddItem(ctx, "s1", add)
	require.ErrorIs(t, err, ErrCartUnavailable)

	raw, err := store.MemoryCartStore.Load(ctx, CartKey("s1"))
	require.NoError(t, err)
	assert.Equal(t, data, raw, "a failed read must not overwrite the stored cart")

	snap, err := svc.AddItem(ctx, "s1", add)
	require.NoError(t, err)
	require.Len(t, snap.State.Items, 3)
	assert.Equal(t, 5, snap.TotalItems)

	raw, err = store.MemoryCartStore.Load(ctx, CartKey("s1"))
	require.NoError(t, err)
	persisted, err := cart.Unmarshal(raw)
	require.NoError(t, err)
	assert.Len(t, persisted.Items, 3)
}

func TestCartService_PersistenceFailureKeepsMutation(t *testing.T) {
	store := new(mocks.MockCartStore)
	store.On("Load", mock.Anything, CartKey("s1")).Return(nil, nil)
	store.On("Save", mock.Anything, CartKey("s1"), mock.Anything).Return(errors.New("write conflict"))
	svc := NewCartService(store, NewSyncPersister(store, time.Second), new(mocks.MockCheckoutCreator), CartServiceConfig{})
	defer svc.Stop()

	snap, err := svc.AddItem(context.Background(), "s1", shirt(1, nil))
	require.NoError(t, err)
	assert.Equal(t, 1, snap.TotalItems)

	snap, err = svc.Get(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, 1, snap.TotalItems)
}

func TestCartService_NoOpDoesNotPersist(t *testing.T) {
	store := new(mocks.MockCartStore)
	store.On("Load", mock.Anything, CartKey("s1")).Return(nil, nil)
	svc := NewCartService(store, NewSyncPersister(store, time.Second), new(mocks.MockCheckoutCreator), CartServiceConfig{})
	defer svc.Stop()

	ctx := context.Background()
	_, err := svc.RemoveItem(ctx, "s1", "missing")
	require.NoError(t, err)
	_, err = svc.UndoRemove(ctx, "s1")
	require.NoError(t, err)
	_, err = svc.ClearLastRemoved(ctx, "s1")
	require.NoError(t, err)
	_, err = svc.Clear(ctx, "s1")
	require.NoError(t, err)

	store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

func TestCartService_RemoveAndUndo(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := setupService(t)

	_, err := svc.AddItem(ctx, "s1", shirt(2, nil))
	require.NoError(t, err)

	snap, err := svc.RemoveItem(ctx, "s1", "v1")
	require.NoError(t, err)
	assert.Empty(t, snap.State.Items)
	require.Len(t, snap.State.RemovalHistory, 1)
	removedAt := snap.State.RemovalHistory[0].RemovedAt

	snap, err = svc.UndoRemoveByID(ctx, "s1", removedAt)
	require.NoError(t, err)
	require.Len(t, snap.State.Items, 1)
	assert.Equal(t, 2, snap.State.Items[0].Quantity)
	assert.Empty(t, snap.State.RemovalHistory)

	_, err = svc.RemoveItem(ctx, "s1", "v1")
	require.NoError(t, err)
	snap, err = svc.UndoRemove(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, snap.State.Items, 1)
	assert.Nil(t, snap.State.LastRemoved)

	stamp := snap.State.RemovalHistory[0].RemovedAt
	snap, err = svc.DismissRemoval(ctx, "s1", stamp)
	require.NoError(t, err)
	assert.Empty(t, snap.State.RemovalHistory)

	assert.Empty(t, loadState(t, store, CartKey("s1")).RemovalHistory)
}

func TestCartService_UpdateQuantity(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setupService(t)

	_, err := svc.AddItem(ctx, "s1", shirt(1, intPtr(3)))
	require.NoError(t, err)

	snap, err := svc.UpdateQuantity(ctx, "s1", "v1", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, snap.TotalItems)

	_, err = svc.UpdateQuantity(ctx, "s1", "v1", 4)
	assert.ErrorIs(t, err, cart.ErrOutOfStock)

	_, err = svc.UpdateQuantity(ctx, "s1", "nope", 2)
	assert.ErrorIs(t, err, cart.ErrItemNotFound)

	snap, err = svc.UpdateQuantity(ctx, "s1", "v1", 0)
	require.NoError(t, err)
	assert.Zero(t, snap.TotalItems)
}

func TestCartService_Panel(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setupService(t)

	snap, err := svc.TogglePanel(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, snap.State.IsCartPanelOpen)

	snap, err = svc.SetPanelOpen(ctx, "s1", false)
	require.NoError(t, err)
	assert.False(t, snap.State.IsCartPanelOpen)
}

func TestCartService_Summary(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setupService(t)

	summary, err := svc.Summary(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, summary.Subtotal.IsZero())
	assert.False(t, summary.FreeShipping.Qualifies)
	assert.True(t, decimal.NewFromInt(75).Equal(summary.FreeShipping.Remaining))

	_, err = svc.AddItem(ctx, "s1", shirt(3, nil))
	require.NoError(t, err)

	summary, err = svc.Summary(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 3, summary.TotalItems)
	assert.True(t, decimal.NewFromInt(60).Equal(summary.Subtotal))
	assert.True(t, decimal.NewFromInt(15).Equal(summary.FreeShipping.Remaining))
	require.Len(t, summary.Rewards.Unlocked, 1)
	require.NotNil(t, summary.Rewards.Next)
	assert.Equal(t, "10% off", summary.Rewards.Next.Label)
}

func TestCartService_Checkout(t *testing.T) {
	ctx := context.Background()

	t.Run("empty cart", func(t *testing.T) {
		svc, _, creator := setupService(t)
		_, err := svc.Checkout(ctx, "s1")
		assert.ErrorIs(t, err, checkout.ErrEmptyCart)
		creator.AssertNotCalled(t, "CreateCheckout", mock.Anything, mock.Anything)
	})

	t.Run("redirect url", func(t *testing.T) {
		svc, _, creator := setupService(t)
		creator.On("CreateCheckout", mock.Anything, []checkout.LineItemInput{{VariantID: "v1", Quantity: 2}}).
			Return(&checkout.CreateResult{RedirectURL: "https://pay.example.com/c/9"}, nil)

		_, err := svc.AddItem(ctx, "s1", shirt(2, nil))
		require.NoError(t, err)

		url, err := svc.Checkout(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, "https://pay.example.com/c/9", url)

		status, err := svc.CheckoutStatus(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, checkout.StatusRedirecting, status.Status)

		abandoned, err := svc.AbandonCheckout(ctx, "s1")
		require.NoError(t, err)
		assert.False(t, abandoned)
		status, _ = svc.CheckoutStatus(ctx, "s1")
		assert.Equal(t, checkout.StatusIdle, status.Status)
	})

	t.Run("remote rejection", func(t *testing.T) {
		svc, _, creator := setupService(t)
		creator.On("CreateCheckout", mock.Anything, mock.Anything).
			Return(&checkout.CreateResult{UserErrors: []checkout.UserError{{Message: "Variant sold out"}}}, nil)

		_, err := svc.AddItem(ctx, "s1", shirt(1, nil))
		require.NoError(t, err)

		_, err = svc.Checkout(ctx, "s1")
		failed, ok := checkout.AsCreationFailed(err)
		require.True(t, ok)
		assert.Equal(t, "Variant sold out", failed.Message)
	})
}

func TestCartService_ConcurrentMutationsAreLinearized(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := setupService(t)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.AddItem(ctx, "s1", shirt(1, nil))
		}()
	}
	wg.Wait()

	snap, err := svc.Get(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, snap.State.Items, 1)
	assert.Equal(t, 50, snap.State.Items[0].Quantity)
	assert.Equal(t, 50, loadState(t, store, CartKey("s1")).Items[0].Quantity)
}

func TestCheckoutResult(t *testing.T) {
	assert.Equal(t, "success", checkoutResult(nil))
	assert.Equal(t, "empty_cart", checkoutResult(checkout.ErrEmptyCart))
	assert.Equal(t, "in_progress", checkoutResult(checkout.ErrCheckoutInProgress))
	assert.Equal(t, "abandoned", checkoutResult(checkout.ErrCheckoutAbandoned))
	assert.Equal(t, "rejected", checkoutResult(&checkout.CreationFailedError{Message: "x"}))
	assert.Equal(t, "error", checkoutResult(errors.New("boom")))
}
