// Package app provides checkout client initialization.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/storefront-cart/config"
	"github.com/guttosm/storefront-cart/internal/checkout"
	"github.com/guttosm/storefront-cart/internal/circuitbreaker"
)

// errCheckoutNotConfigured is returned for every checkout when no endpoint is set.
var errCheckoutNotConfigured = errors.New("checkout endpoint not configured")

// CheckoutComponents holds the checkout creator and its circuit breaker.
type CheckoutComponents struct {
	Creator checkout.Creator
	// Breaker is nil when no endpoint is configured.
	Breaker *circuitbreaker.CircuitBreaker
}

type unconfiguredCreator struct{}

func (unconfiguredCreator) CreateCheckout(context.Context, []checkout.LineItemInput) (*checkout.CreateResult, error) {
	return nil, errCheckoutNotConfigured
}

// InitializeCheckout builds the Storefront GraphQL client. Only transport failures
// count against its circuit; rejections by the platform do not.
func InitializeCheckout(cfg config.CheckoutConfig) (*CheckoutComponents, error) {
	if cfg.Endpoint == "" {
		log.Warn().Msg("CHECKOUT_ENDPOINT not set; checkout requests will fail")
		return &CheckoutComponents{Creator: unconfiguredCreator{}}, nil
	}

	cb := circuitbreaker.New(circuitbreaker.Config{
		Name:             "checkout",
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: 1,
		Timeout:          cfg.CircuitBreakerTimeout,
		IsFailure:        checkout.IsTransportFailure,
		OnStateChange:    recordBreakerState,
	})

	var mutation string
	if cfg.MutationFile != "" {
		data, err := os.ReadFile(cfg.MutationFile)
		if err != nil {
			return nil, fmt.Errorf("read checkout mutation: %w", err)
		}
		mutation = string(data)
	}

	client, err := checkout.NewStorefrontClient(checkout.StorefrontConfig{
		Endpoint:    cfg.Endpoint,
		AccessToken: cfg.AccessToken,
		TokenHeader: cfg.TokenHeader,
		Timeout:     cfg.Timeout,
		Mutation:    mutation,
	}, cb)
	if err != nil {
		return nil, fmt.Errorf("initialize checkout client: %w", err)
	}
	log.Info().Str("endpoint", cfg.Endpoint).Msg("Checkout client ready")
	return &CheckoutComponents{Creator: client, Breaker: cb}, nil
}
