// Package config provides configuration management for the cart service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/guttosm/storefront-cart/internal/cart"
)

// Storage backends accepted in STORAGE_BACKEND.
const (
	StorageMemory  = "memory"
	StorageMongoDB = "mongodb"
	StorageRedis   = "redis"
)

// Persister modes accepted in PERSISTER_MODE.
const (
	PersisterSync  = "sync"
	PersisterAsync = "async"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Logging  LoggingConfig
	Session  SessionConfig
	Cart     CartConfig
	Storage  StorageConfig
	Checkout CheckoutConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port              string
	RateLimit         int
	RateWindow        time.Duration
	SessionRateLimit  int
	RequestTimeout    time.Duration
	EnableIdempotency bool
	CORSOrigins       []string
	SwaggerUser       string
	SwaggerPass       string
}

// LoggingConfig holds logger configuration.
type LoggingConfig struct {
	Level  string
	Pretty bool
}

// SessionConfig holds cart session token and cache configuration.
type SessionConfig struct {
	SecretKey string
	TokenTTL  time.Duration
	// CacheCapacity bounds the number of live cart engines held in memory.
	CacheCapacity int
	CacheIdleTTL  time.Duration
}

// CartConfig holds promotion configuration.
type CartConfig struct {
	FreeShippingThreshold decimal.Decimal
	RewardTiers           []cart.RewardTier
}

// StorageConfig holds cart document storage configuration.
type StorageConfig struct {
	Backend string
	// TTL is how long an untouched cart document survives in the store.
	TTL           time.Duration
	WriteTimeout  time.Duration
	PersisterMode string
	AsyncWorkers  int
	AsyncBuffer   int

	MongoURI      string
	MongoDatabase string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string

	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// CheckoutConfig holds the commerce platform connection.
type CheckoutConfig struct {
	Endpoint    string
	AccessToken string
	TokenHeader string
	Timeout     time.Duration
	// MutationFile optionally points at a custom checkoutCreate document.
	MutationFile string

	CircuitBreakerFailureThreshold int
	CircuitBreakerTimeout          time.Duration
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:              getEnv("PORT", "8080"),
			RateLimit:         getEnvInt("RATE_LIMIT", 100),
			RateWindow:        getEnvDuration("RATE_WINDOW", time.Minute),
			SessionRateLimit:  getEnvInt("SESSION_RATE_LIMIT", 60),
			RequestTimeout:    getEnvDuration("REQUEST_TIMEOUT", 10*time.Second),
			EnableIdempotency: getEnvBool("IDEMPOTENCY_ENABLED", true),
			CORSOrigins:       parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:       getEnv("SWAGGER_USER", ""),
			SwaggerPass:       getEnv("SWAGGER_PASS", ""),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvBool("LOG_PRETTY", false),
		},
		Session: SessionConfig{
			SecretKey:     getEnv("SESSION_SECRET_KEY", "change-me-in-production-at-least-32-bytes"),
			TokenTTL:      getEnvDuration("SESSION_TOKEN_TTL", 30*24*time.Hour),
			CacheCapacity: getEnvInt("SESSION_CACHE_CAPACITY", 10000),
			CacheIdleTTL:  getEnvDuration("SESSION_CACHE_IDLE_TTL", 30*time.Minute),
		},
		Cart: CartConfig{
			FreeShippingThreshold: getEnvDecimal("FREE_SHIPPING_THRESHOLD", decimal.NewFromInt(75)),
			RewardTiers:           parseRewardTiers(os.Getenv("REWARD_TIERS")),
		},
		Storage: StorageConfig{
			Backend:       strings.ToLower(getEnv("STORAGE_BACKEND", StorageMemory)),
			TTL:           getEnvDuration("CART_TTL", 30*24*time.Hour),
			WriteTimeout:  getEnvDuration("STORAGE_WRITE_TIMEOUT", 5*time.Second),
			PersisterMode: strings.ToLower(getEnv("PERSISTER_MODE", PersisterSync)),
			AsyncWorkers:  getEnvInt("PERSISTER_WORKERS", 4),
			AsyncBuffer:   getEnvInt("PERSISTER_BUFFER", 256),

			MongoURI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			MongoDatabase: getEnv("MONGODB_DATABASE", "storefront_cart"),

			RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       getEnvInt("REDIS_DB", 0),
			RedisPrefix:   getEnv("REDIS_KEY_PREFIX", "storefront"),

			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		Checkout: CheckoutConfig{
			Endpoint:    getEnv("CHECKOUT_ENDPOINT", ""),
			AccessToken: getEnv("CHECKOUT_ACCESS_TOKEN", ""),
			TokenHeader: getEnv("CHECKOUT_TOKEN_HEADER", "X-Shopify-Storefront-Access-Token"),
			Timeout:     getEnvDuration("CHECKOUT_TIMEOUT", 10*time.Second),

			MutationFile: getEnv("CHECKOUT_MUTATION_FILE", ""),

			CircuitBreakerFailureThreshold: getEnvInt("CHECKOUT_CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerTimeout:          getEnvDuration("CHECKOUT_CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvDecimal(key string, defaultValue decimal.Decimal) decimal.Decimal {
	if v := os.Getenv(key); v != "" {
		if d, err := decimal.NewFromString(strings.TrimSpace(v)); err == nil && !d.IsNegative() {
			return d
		}
	}
	return defaultValue
}

// parseRewardTiers falls back to no tiers when the list is malformed.
func parseRewardTiers(s string) []cart.RewardTier {
	tiers, err := cart.ParseRewardTiers(s)
	if err != nil {
		log.Warn().Err(err).Str("value", s).Msg("Ignoring malformed REWARD_TIERS")
		return nil
	}
	return tiers
}

func parseCORSOrigins(s string) []string {
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
