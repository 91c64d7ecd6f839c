package repository

import (
	"context"

	"github.com/guttosm/storefront-cart/internal/circuitbreaker"
)

// CartStoreWithCircuitBreaker guards a CartStore with a circuit breaker.
// While the circuit is open, Load and Save fail fast with
// circuitbreaker.ErrCircuitOpen.
type CartStoreWithCircuitBreaker struct {
	store          CartStore
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewCartStoreWithCircuitBreaker wraps store.
func NewCartStoreWithCircuitBreaker(store CartStore, cb *circuitbreaker.CircuitBreaker) *CartStoreWithCircuitBreaker {
	return &CartStoreWithCircuitBreaker{store: store, circuitBreaker: cb}
}

func (r *CartStoreWithCircuitBreaker) Save(ctx context.Context, key string, data []byte) error {
	return r.circuitBreaker.Execute(ctx, func(ctx context.Context) error {
		return r.store.Save(ctx, key, data)
	})
}

func (r *CartStoreWithCircuitBreaker) Load(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := r.circuitBreaker.Execute(ctx, func(ctx context.Context) error {
		var loadErr error
		data, loadErr = r.store.Load(ctx, key)
		return loadErr
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (r *CartStoreWithCircuitBreaker) Delete(ctx context.Context, key string) error {
	return r.circuitBreaker.Execute(ctx, func(ctx context.Context) error {
		return r.store.Delete(ctx, key)
	})
}

// Ping bypasses the breaker so readiness reflects the backend itself.
func (r *CartStoreWithCircuitBreaker) Ping(ctx context.Context) error {
	return r.store.Ping(ctx)
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *CartStoreWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
