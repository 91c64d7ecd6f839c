// Package app provides cart storage initialization and setup.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/storefront-cart/config"
	"github.com/guttosm/storefront-cart/internal/circuitbreaker"
	"github.com/guttosm/storefront-cart/internal/metrics"
	"github.com/guttosm/storefront-cart/internal/repository"
)

// StorageComponents holds the cart store and what it needs at shutdown.
type StorageComponents struct {
	Store repository.CartStore
	// Breaker is nil for the in-memory backend.
	Breaker *circuitbreaker.CircuitBreaker

	mongo *repository.MongoDB
	redis *redis.Client
}

// InitializeStorage connects the configured backend. Remote backends are wrapped in
// a circuit breaker so a storage outage degrades to empty carts instead of stalled
// requests.
func InitializeStorage(cfg config.StorageConfig) (*StorageComponents, error) {
	switch cfg.Backend {
	case "", config.StorageMemory:
		log.Warn().Msg("Using in-memory cart storage; carts are lost on restart")
		return &StorageComponents{Store: repository.NewMemoryCartStore()}, nil

	case config.StorageMongoDB:
		db, err := repository.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, fmt.Errorf("initialize mongodb cart store: %w", err)
		}
		log.Info().Str("database", cfg.MongoDatabase).Msg("Connected to MongoDB")
		cb := newStorageBreaker(cfg, "mongodb-carts")
		return &StorageComponents{
			Store:   repository.NewCartStoreWithCircuitBreaker(repository.NewMongoCartStore(db, cfg.TTL), cb),
			Breaker: cb,
			mongo:   db,
		}, nil

	case config.StorageRedis:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		client, err := repository.NewRedisClient(ctx, repository.RedisConfig{
			Addr:      cfg.RedisAddr,
			Password:  cfg.RedisPassword,
			DB:        cfg.RedisDB,
			KeyPrefix: cfg.RedisPrefix,
		})
		if err != nil {
			return nil, fmt.Errorf("initialize redis cart store: %w", err)
		}
		log.Info().Str("addr", cfg.RedisAddr).Msg("Connected to Redis")
		cb := newStorageBreaker(cfg, "redis-carts")
		return &StorageComponents{
			Store:   repository.NewCartStoreWithCircuitBreaker(repository.NewRedisCartStore(client, cfg.RedisPrefix, cfg.TTL), cb),
			Breaker: cb,
			redis:   client,
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// Close disconnects the backend client, if any.
func (s *StorageComponents) Close(ctx context.Context) {
	if s.mongo != nil {
		if err := s.mongo.Close(ctx); err != nil {
			log.Warn().Err(err).Msg("Failed to disconnect MongoDB")
		}
	}
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close Redis client")
		}
	}
}

func newStorageBreaker(cfg config.StorageConfig, name string) *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Config{
		Name:             name,
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		OnStateChange:    recordBreakerState,
	})
}

func recordBreakerState(name string, _, to circuitbreaker.State) {
	metrics.SetCircuitBreakerState(name, int(to))
}
