package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/guttosm/storefront-cart/internal/circuitbreaker"
)

const checkoutCreateOperation = "CheckoutCreate"

// DefaultCheckoutMutation is the checkout document used when none is configured.
const DefaultCheckoutMutation = `mutation CheckoutCreate($input: CheckoutCreateInput!) {
  checkoutCreate(input: $input) {
    checkout {
      id
      webUrl
    }
    checkoutUserErrors {
      code
      field
      message
    }
  }
}`

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 1 << 20

// StorefrontConfig configures the GraphQL checkout client.
type StorefrontConfig struct {
	Endpoint    string
	AccessToken string
	TokenHeader string
	Timeout     time.Duration
	// Mutation replaces DefaultCheckoutMutation. It is validated against the schema.
	Mutation string
}

// StorefrontClient creates checkouts through the platform's Storefront GraphQL API.
type StorefrontClient struct {
	endpoint    string
	mutation    string
	accessToken string
	tokenHeader string
	httpClient  *http.Client
	breaker     *circuitbreaker.CircuitBreaker
	tracer      trace.Tracer
}

// NewStorefrontClient validates the checkout mutation and returns a client.
// breaker may be nil.
func NewStorefrontClient(cfg StorefrontConfig, breaker *circuitbreaker.CircuitBreaker) (*StorefrontClient, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("storefront endpoint is required")
	}
	if strings.TrimSpace(cfg.Mutation) == "" {
		cfg.Mutation = DefaultCheckoutMutation
	}
	if err := ValidateMutation(cfg.Mutation); err != nil {
		return nil, err
	}
	if cfg.TokenHeader == "" {
		cfg.TokenHeader = "X-Shopify-Storefront-Access-Token"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	return &StorefrontClient{
		endpoint:    cfg.Endpoint,
		mutation:    cfg.Mutation,
		accessToken: cfg.AccessToken,
		tokenHeader: cfg.TokenHeader,
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		breaker:     breaker,
		tracer:      otel.Tracer("github.com/guttosm/storefront-cart/internal/checkout"),
	}, nil
}

type graphQLRequest struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type checkoutCreateResponse struct {
	Data struct {
		CheckoutCreate *struct {
			Checkout *struct {
				ID     string `json:"id"`
				WebURL string `json:"webUrl"`
			} `json:"checkout"`
			CheckoutUserErrors []struct {
				Code    string   `json:"code"`
				Field   []string `json:"field"`
				Message string   `json:"message"`
			} `json:"checkoutUserErrors"`
		} `json:"checkoutCreate"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

// CreateCheckout implements Creator.
func (c *StorefrontClient) CreateCheckout(ctx context.Context, lines []LineItemInput) (*CreateResult, error) {
	ctx, span := c.tracer.Start(ctx, "checkout.create",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.Int("checkout.line_items", len(lines)),
			attribute.String("graphql.operation.name", checkoutCreateOperation),
		),
	)
	defer span.End()

	var result *CreateResult
	call := func(ctx context.Context) error {
		var err error
		result, err = c.post(ctx, lines)
		return err
	}

	var err error
	if c.breaker != nil {
		err = c.breaker.Execute(ctx, call)
	} else {
		err = call(ctx)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("checkout.user_errors", len(result.UserErrors)))
	if len(result.UserErrors) > 0 {
		span.SetStatus(codes.Error, "checkout user errors")
	}
	return result, nil
}

func (c *StorefrontClient) post(ctx context.Context, lines []LineItemInput) (*CreateResult, error) {
	body, err := json.Marshal(graphQLRequest{
		Query:         c.mutation,
		OperationName: checkoutCreateOperation,
		Variables: map[string]any{
			"input": map[string]any{"lineItems": lines},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("encode checkout request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build checkout request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.accessToken != "" {
		req.Header.Set(c.tokenHeader, c.accessToken)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send checkout request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read checkout response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("storefront api returned status %d", resp.StatusCode)
	}

	var decoded checkoutCreateResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("decode checkout response: %w", err)
	}

	if len(decoded.Errors) > 0 {
		return nil, &CreationFailedError{Message: decoded.Errors[0].Message}
	}

	payload := decoded.Data.CheckoutCreate
	if payload == nil {
		return nil, &CreationFailedError{}
	}

	result := &CreateResult{}
	for _, ue := range payload.CheckoutUserErrors {
		result.UserErrors = append(result.UserErrors, UserError{
			Field:   strings.Join(ue.Field, "."),
			Message: ue.Message,
		})
	}
	if payload.Checkout != nil {
		result.RedirectURL = payload.Checkout.WebURL
	}
	return result, nil
}

// IsTransportFailure reports whether err should count against the checkout circuit.
// Failures the platform reported about the request itself do not.
func IsTransportFailure(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	_, remote := AsCreationFailed(err)
	return !remote
}
