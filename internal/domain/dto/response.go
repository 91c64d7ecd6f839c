package dto

import (
	"net/http"
	"time"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates a missing or tampered session token.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
	// ErrCodeOutOfStock indicates a quantity above the known stock bound.
	ErrCodeOutOfStock = "out_of_stock"
	// ErrCodeItemNotFound indicates a line that is not in the cart.
	ErrCodeItemNotFound = "item_not_found"
	// ErrCodeEmptyCart indicates a checkout of an empty cart.
	ErrCodeEmptyCart = "empty_cart"
	// ErrCodeCheckoutInProgress indicates a checkout attempt is already running.
	ErrCodeCheckoutInProgress = "checkout_in_progress"
	// ErrCodeCheckoutAbandoned indicates the attempt was abandoned before it finished.
	ErrCodeCheckoutAbandoned = "checkout_abandoned"
	// ErrCodeCheckoutFailed indicates the commerce platform rejected the checkout.
	ErrCodeCheckoutFailed = "checkout_failed"
	// ErrCodeStorageUnavailable indicates the stored cart could not be read.
	ErrCodeStorageUnavailable = "storage_unavailable"
	// ErrCodeUpstream indicates the commerce platform could not be reached.
	ErrCodeUpstream = "upstream_unavailable"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data
	Data      interface{} `json:"data" swaggertype:"object"`
	RequestID string      `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time   `json:"timestamp" example:"2026-10-16T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"out_of_stock"`
	Message string `json:"message,omitempty" example:"Only 1 left in stock"`
	// Details contains additional error details (optional)
	// Example: {"available": 1, "item_id": "gid://shop/ProductVariant/101"}
	Details   map[string]interface{} `json:"details,omitempty" swaggertype:"object"`
	RequestID string                 `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time              `json:"timestamp" example:"2026-10-16T10:00:00Z"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// WithDetail adds one detail entry to the error response.
func (e ErrorResponse) WithDetail(key string, value interface{}) ErrorResponse {
	details := make(map[string]interface{}, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details[key] = value
	e.Details = details
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusBadGateway:
		return ErrCodeUpstream
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	default:
		return ErrCodeInternal
	}
}
