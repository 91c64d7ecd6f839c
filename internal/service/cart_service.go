// Package service hosts one cart engine per shopper session and applies the
// effects the engine returns.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/guttosm/storefront-cart/internal/cart"
	"github.com/guttosm/storefront-cart/internal/checkout"
	"github.com/guttosm/storefront-cart/internal/logger"
	"github.com/guttosm/storefront-cart/internal/metrics"
	"github.com/guttosm/storefront-cart/internal/repository"
)

var (
	// ErrInvalidSession is returned for an empty session ID.
	ErrInvalidSession = errors.New("invalid cart session")
	// ErrCartUnavailable is returned when the stored cart cannot be read.
	// The session is not cached, so the next request retries the load.
	ErrCartUnavailable = errors.New("cart storage unavailable")
)

const keyPrefix = "cart:"

// CartKey returns the storage key of a session's cart document.
func CartKey(sessionID string) string {
	return keyPrefix + sessionID
}

// CartSnapshot is the cart state together with its derived totals.
type CartSnapshot struct {
	State        cart.State
	TotalItems   int
	TotalPrice   decimal.Decimal
	TotalWeight  decimal.Decimal
	CurrencyCode string
}

// Summary is the data behind the cart drawer's progress bars.
type Summary struct {
	TotalItems   int
	Subtotal     decimal.Decimal
	TotalWeight  decimal.Decimal
	CurrencyCode string
	FreeShipping cart.ShippingProgress
	Rewards      cart.RewardProgress
}

// CartService exposes the cart engine operations per session.
type CartService interface {
	Get(ctx context.Context, sessionID string) (CartSnapshot, error)
	AddItem(ctx context.Context, sessionID string, in cart.AddItemInput) (CartSnapshot, error)
	RemoveItem(ctx context.Context, sessionID, itemID string) (CartSnapshot, error)
	UpdateQuantity(ctx context.Context, sessionID, itemID string, quantity int) (CartSnapshot, error)
	UndoRemove(ctx context.Context, sessionID string) (CartSnapshot, error)
	UndoRemoveByID(ctx context.Context, sessionID string, removedAt int64) (CartSnapshot, error)
	DismissRemoval(ctx context.Context, sessionID string, removedAt int64) (CartSnapshot, error)
	ClearLastRemoved(ctx context.Context, sessionID string) (CartSnapshot, error)
	Clear(ctx context.Context, sessionID string) (CartSnapshot, error)
	SetPanelOpen(ctx context.Context, sessionID string, open bool) (CartSnapshot, error)
	TogglePanel(ctx context.Context, sessionID string) (CartSnapshot, error)
	Summary(ctx context.Context, sessionID string) (Summary, error)
	Checkout(ctx context.Context, sessionID string) (string, error)
	AbandonCheckout(ctx context.Context, sessionID string) (bool, error)
	CheckoutStatus(ctx context.Context, sessionID string) (checkout.FlowStatus, error)
}

// CartServiceConfig holds the promotional thresholds and session settings.
type CartServiceConfig struct {
	FreeShippingThreshold decimal.Decimal
	RewardTiers           []cart.RewardTier
	Sessions              SessionCacheConfig
}

type session struct {
	mu     sync.Mutex
	engine *cart.Engine
	flow   *checkout.Flow
}

// CartServiceImpl is the default CartService.
type CartServiceImpl struct {
	store     repository.CartStore
	persister Persister
	handoff   *checkout.Handoff
	sessions  *sessionCache
	cfg       CartServiceConfig
	clock     func() time.Time
}

// NewCartService creates a cart service. store is read on session misses;
// writes go through persister.
func NewCartService(store repository.CartStore, persister Persister, creator checkout.Creator, cfg CartServiceConfig) *CartServiceImpl {
	return &CartServiceImpl{
		store:     store,
		persister: persister,
		handoff:   checkout.NewHandoff(creator),
		sessions:  newSessionCache(cfg.Sessions),
		cfg:       cfg,
		clock:     time.Now,
	}
}

// Stop releases background resources. Pending writes are drained by the persister owner.
func (s *CartServiceImpl) Stop() {
	s.sessions.Stop()
}

// CacheStats returns session cache counters.
func (s *CartServiceImpl) CacheStats() CacheStats {
	return s.sessions.Stats()
}

// session returns the live session, rehydrating it from storage on a miss.
// Missing and unreadable documents yield an empty cart; a failed read is returned.
func (s *CartServiceImpl) session(ctx context.Context, sessionID string) (*session, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrInvalidSession
	}
	key := CartKey(sessionID)
	if sess, ok := s.sessions.Get(key); ok {
		return sess, nil
	}

	state, err := s.load(ctx, key)
	if err != nil {
		return nil, err
	}
	sess := &session{
		engine: cart.Restore(state, cart.WithClock(s.clock)),
		flow:   checkout.NewFlow(s.handoff),
	}
	return s.sessions.SetIfAbsent(key, sess), nil
}

func (s *CartServiceImpl) load(ctx context.Context, key string) (cart.State, error) {
	log := logger.FromContext(ctx)

	data, err := s.store.Load(ctx, key)
	if err != nil {
		metrics.RecordCartLoad("error")
		log.Error().Err(err).Str("key", key).Msg("Failed to load cart")
		return cart.State{}, fmt.Errorf("%w: %w", ErrCartUnavailable, err)
	}
	if data == nil {
		metrics.RecordCartLoad("absent")
		return cart.State{}, nil
	}

	state, err := cart.Unmarshal(data)
	if err != nil {
		metrics.RecordCartLoad("discarded")
		log.Error().Err(err).Str("key", key).Msg("Discarding unreadable cart document")
		return cart.State{}, nil
	}
	metrics.RecordCartLoad("loaded")
	return state, nil
}

// mutate runs op against the session engine under the session lock and applies its effect.
func (s *CartServiceImpl) mutate(ctx context.Context, sessionID, operation string, op func(*cart.Engine) (cart.Effect, error)) (CartSnapshot, error) {
	sess, err := s.session(ctx, sessionID)
	if err != nil {
		return CartSnapshot{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	effect, err := op(sess.engine)
	if err != nil {
		metrics.RecordCartMutation(operation, "rejected")
		if errors.Is(err, cart.ErrOutOfStock) {
			metrics.RecordOutOfStock()
		}
		log := logger.FromContext(ctx)
		log.Debug().Err(err).Str("operation", operation).Msg("Cart mutation rejected")
		return CartSnapshot{}, err
	}

	if effect.ShouldPersist() {
		metrics.RecordCartMutation(operation, "changed")
		s.persister.Persist(ctx, CartKey(sessionID), effect.State)
	} else {
		metrics.RecordCartMutation(operation, "unchanged")
	}
	return snapshotOf(sess.engine), nil
}

func snapshotOf(e *cart.Engine) CartSnapshot {
	return CartSnapshot{
		State:        e.Snapshot(),
		TotalItems:   e.TotalItems(),
		TotalPrice:   e.TotalPrice(),
		TotalWeight:  e.TotalWeight(),
		CurrencyCode: e.CurrencyCode(),
	}
}

func (s *CartServiceImpl) Get(ctx context.Context, sessionID string) (CartSnapshot, error) {
	sess, err := s.session(ctx, sessionID)
	if err != nil {
		return CartSnapshot{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return snapshotOf(sess.engine), nil
}

func (s *CartServiceImpl) AddItem(ctx context.Context, sessionID string, in cart.AddItemInput) (CartSnapshot, error) {
	return s.mutate(ctx, sessionID, "add_item", func(e *cart.Engine) (cart.Effect, error) {
		return e.AddItem(in)
	})
}

func (s *CartServiceImpl) RemoveItem(ctx context.Context, sessionID, itemID string) (CartSnapshot, error) {
	return s.mutate(ctx, sessionID, "remove_item", func(e *cart.Engine) (cart.Effect, error) {
		return e.RemoveItem(itemID), nil
	})
}

func (s *CartServiceImpl) UpdateQuantity(ctx context.Context, sessionID, itemID string, quantity int) (CartSnapshot, error) {
	return s.mutate(ctx, sessionID, "update_quantity", func(e *cart.Engine) (cart.Effect, error) {
		return e.UpdateQuantity(itemID, quantity)
	})
}

func (s *CartServiceImpl) UndoRemove(ctx context.Context, sessionID string) (CartSnapshot, error) {
	return s.mutate(ctx, sessionID, "undo_remove", func(e *cart.Engine) (cart.Effect, error) {
		return e.UndoRemove()
	})
}

func (s *CartServiceImpl) UndoRemoveByID(ctx context.Context, sessionID string, removedAt int64) (CartSnapshot, error) {
	return s.mutate(ctx, sessionID, "undo_remove_by_id", func(e *cart.Engine) (cart.Effect, error) {
		return e.UndoRemoveByID(removedAt)
	})
}

func (s *CartServiceImpl) DismissRemoval(ctx context.Context, sessionID string, removedAt int64) (CartSnapshot, error) {
	return s.mutate(ctx, sessionID, "dismiss_removal", func(e *cart.Engine) (cart.Effect, error) {
		return e.DismissRemovedItem(removedAt), nil
	})
}

func (s *CartServiceImpl) ClearLastRemoved(ctx context.Context, sessionID string) (CartSnapshot, error) {
	return s.mutate(ctx, sessionID, "clear_last_removed", func(e *cart.Engine) (cart.Effect, error) {
		return e.ClearLastRemoved(), nil
	})
}

func (s *CartServiceImpl) Clear(ctx context.Context, sessionID string) (CartSnapshot, error) {
	return s.mutate(ctx, sessionID, "clear", func(e *cart.Engine) (cart.Effect, error) {
		return e.Clear(), nil
	})
}

func (s *CartServiceImpl) SetPanelOpen(ctx context.Context, sessionID string, open bool) (CartSnapshot, error) {
	return s.mutate(ctx, sessionID, "set_panel_open", func(e *cart.Engine) (cart.Effect, error) {
		return e.SetCartPanelOpen(open), nil
	})
}

func (s *CartServiceImpl) TogglePanel(ctx context.Context, sessionID string) (CartSnapshot, error) {
	return s.mutate(ctx, sessionID, "toggle_panel", func(e *cart.Engine) (cart.Effect, error) {
		return e.ToggleCartPanel(), nil
	})
}

func (s *CartServiceImpl) Summary(ctx context.Context, sessionID string) (Summary, error) {
	snap, err := s.Get(ctx, sessionID)
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		TotalItems:   snap.TotalItems,
		Subtotal:     snap.TotalPrice,
		TotalWeight:  snap.TotalWeight,
		CurrencyCode: snap.CurrencyCode,
		FreeShipping: cart.FreeShipping(snap.TotalPrice, s.cfg.FreeShippingThreshold),
		Rewards:      cart.Rewards(snap.TotalPrice, s.cfg.RewardTiers),
	}, nil
}

// Checkout snapshots the cart under the session lock and runs the checkout flow
// outside it, so reads of the cart are not blocked by the remote call.
func (s *CartServiceImpl) Checkout(ctx context.Context, sessionID string) (string, error) {
	sess, err := s.session(ctx, sessionID)
	if err != nil {
		return "", err
	}

	sess.mu.Lock()
	state := sess.engine.Snapshot()
	sess.mu.Unlock()

	start := time.Now()
	url, err := sess.flow.Start(ctx, state)
	result := checkoutResult(err)
	metrics.RecordCheckout(result, time.Since(start))

	log := logger.FromContext(ctx)
	if err != nil {
		event := log.Warn()
		if result == "error" {
			event = log.Error()
		}
		event.Err(err).Str("result", result).Int("line_items", len(state.Items)).Msg("Checkout failed")
		return "", err
	}
	log.Info().Int("line_items", len(state.Items)).Msg("Checkout created")
	return url, nil
}

func checkoutResult(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, checkout.ErrEmptyCart):
		return "empty_cart"
	case errors.Is(err, checkout.ErrCheckoutInProgress):
		return "in_progress"
	case errors.Is(err, checkout.ErrCheckoutAbandoned):
		return "abandoned"
	}
	if _, ok := checkout.AsCreationFailed(err); ok {
		return "rejected"
	}
	return "error"
}

func (s *CartServiceImpl) AbandonCheckout(ctx context.Context, sessionID string) (bool, error) {
	sess, err := s.session(ctx, sessionID)
	if err != nil {
		return false, err
	}
	abandoned := sess.flow.Abandon()
	if abandoned {
		log := logger.FromContext(ctx)
		log.Info().Msg("Checkout abandoned")
	}
	return abandoned, nil
}

func (s *CartServiceImpl) CheckoutStatus(ctx context.Context, sessionID string) (checkout.FlowStatus, error) {
	sess, err := s.session(ctx, sessionID)
	if err != nil {
		return checkout.FlowStatus{}, err
	}
	return sess.flow.Status(), nil
}
