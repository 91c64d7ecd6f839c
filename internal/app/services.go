// Package app provides service initialization.
package app

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/storefront-cart/config"
	"github.com/guttosm/storefront-cart/internal/checkout"
	"github.com/guttosm/storefront-cart/internal/repository"
	"github.com/guttosm/storefront-cart/internal/service"
)

// ServiceComponents holds the cart service and its collaborators.
type ServiceComponents struct {
	CartService   *service.CartServiceImpl
	Persister     service.Persister
	SessionTokens *service.SessionTokenService
}

// InitializeServices builds the persister, the session host and the token service.
func InitializeServices(cfg config.Config, store repository.CartStore, creator checkout.Creator) (*ServiceComponents, error) {
	tokens, err := service.NewSessionTokenService(service.SessionTokenConfig{
		SecretKey: cfg.Session.SecretKey,
		TTL:       cfg.Session.TokenTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("initialize session tokens: %w", err)
	}

	persister, err := newPersister(cfg.Storage, store)
	if err != nil {
		return nil, err
	}

	sessions := service.DefaultSessionCacheConfig()
	if cfg.Session.CacheCapacity > 0 {
		sessions.Capacity = cfg.Session.CacheCapacity
	}
	if cfg.Session.CacheIdleTTL > 0 {
		sessions.IdleTTL = cfg.Session.CacheIdleTTL
	}

	carts := service.NewCartService(store, persister, creator, service.CartServiceConfig{
		FreeShippingThreshold: cfg.Cart.FreeShippingThreshold,
		RewardTiers:           cfg.Cart.RewardTiers,
		Sessions:              sessions,
	})

	return &ServiceComponents{
		CartService:   carts,
		Persister:     persister,
		SessionTokens: tokens,
	}, nil
}

func newPersister(cfg config.StorageConfig, store repository.CartStore) (service.Persister, error) {
	switch cfg.PersisterMode {
	case "", config.PersisterSync:
		return service.NewSyncPersister(store, cfg.WriteTimeout), nil
	case config.PersisterAsync:
		log.Info().Int("workers", cfg.AsyncWorkers).Int("buffer", cfg.AsyncBuffer).Msg("Persisting carts asynchronously")
		return service.NewAsyncPersister(store, service.AsyncPersisterConfig{
			BufferSize:   cfg.AsyncBuffer,
			NumWorkers:   cfg.AsyncWorkers,
			WriteTimeout: cfg.WriteTimeout,
		}), nil
	default:
		return nil, fmt.Errorf("unknown persister mode %q", cfg.PersisterMode)
	}
}

// Stop halts the session cache and drains pending writes.
func (s *ServiceComponents) Stop() {
	s.CartService.Stop()
	s.Persister.Stop()
}
