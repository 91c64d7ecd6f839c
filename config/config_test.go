package config

import (
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("loads default values", func(t *testing.T) {
		os.Clearenv()

		cfg := Load()

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.True(t, cfg.Server.EnableIdempotency)
		assert.Equal(t, "info", cfg.Logging.Level)
		assert.Equal(t, 30*24*time.Hour, cfg.Session.TokenTTL)
		assert.GreaterOrEqual(t, len(cfg.Session.SecretKey), 32)
		assert.True(t, decimal.NewFromInt(75).Equal(cfg.Cart.FreeShippingThreshold))
		assert.Nil(t, cfg.Cart.RewardTiers)
		assert.Equal(t, StorageMemory, cfg.Storage.Backend)
		assert.Equal(t, PersisterSync, cfg.Storage.PersisterMode)
		assert.Empty(t, cfg.Checkout.Endpoint)
		assert.Equal(t, "X-Shopify-Storefront-Access-Token", cfg.Checkout.TokenHeader)
	})

	t.Run("loads values from environment", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("PORT", "9090")
		_ = os.Setenv("RATE_LIMIT", "50")
		_ = os.Setenv("RATE_WINDOW", "30s")
		_ = os.Setenv("LOG_PRETTY", "true")
		_ = os.Setenv("SESSION_TOKEN_TTL", "48h")
		_ = os.Setenv("FREE_SHIPPING_THRESHOLD", "49.90")
		_ = os.Setenv("REWARD_TIERS", "50:Free tote,100:10% off")
		_ = os.Setenv("STORAGE_BACKEND", "Redis")
		_ = os.Setenv("PERSISTER_MODE", "async")
		_ = os.Setenv("REDIS_ADDR", "cache:6379")
		_ = os.Setenv("CHECKOUT_ENDPOINT", "https://shop.example.com/api/graphql")
		_ = os.Setenv("CHECKOUT_TIMEOUT", "3s")
		_ = os.Setenv("CHECKOUT_MUTATION_FILE", "/etc/cart/checkout.graphql")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, 50, cfg.Server.RateLimit)
		assert.Equal(t, 30*time.Second, cfg.Server.RateWindow)
		assert.True(t, cfg.Logging.Pretty)
		assert.Equal(t, 48*time.Hour, cfg.Session.TokenTTL)
		assert.True(t, decimal.RequireFromString("49.90").Equal(cfg.Cart.FreeShippingThreshold))
		require.Len(t, cfg.Cart.RewardTiers, 2)
		assert.Equal(t, "10% off", cfg.Cart.RewardTiers[1].Label)
		assert.Equal(t, StorageRedis, cfg.Storage.Backend)
		assert.Equal(t, PersisterAsync, cfg.Storage.PersisterMode)
		assert.Equal(t, "cache:6379", cfg.Storage.RedisAddr)
		assert.Equal(t, "https://shop.example.com/api/graphql", cfg.Checkout.Endpoint)
		assert.Equal(t, 3*time.Second, cfg.Checkout.Timeout)
		assert.Equal(t, "/etc/cart/checkout.graphql", cfg.Checkout.MutationFile)
	})

	t.Run("handles invalid values gracefully", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("RATE_LIMIT", "invalid")
		_ = os.Setenv("LOG_PRETTY", "invalid")
		_ = os.Setenv("RATE_WINDOW", "invalid")
		_ = os.Setenv("FREE_SHIPPING_THRESHOLD", "-10")
		_ = os.Setenv("REWARD_TIERS", "50,abc:label")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.False(t, cfg.Logging.Pretty)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.True(t, decimal.NewFromInt(75).Equal(cfg.Cart.FreeShippingThreshold))
		assert.Nil(t, cfg.Cart.RewardTiers)
	})

	t.Run("appends CORS origins to the local defaults", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("CORS_ORIGINS", " https://shop.example.com , ")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"https://shop.example.com",
		}, cfg.Server.CORSOrigins)
	})
}
