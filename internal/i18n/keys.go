package i18n

// Error message translation keys.
const (
	ErrKeyInvalidRequest     = "error.invalid_request"
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	ErrKeyInternalError      = "error.internal_error"
	// ErrKeyInvalidSession indicates a missing, expired or tampered session token.
	ErrKeyInvalidSession    = "error.invalid_session"
	ErrKeyNotFound          = "error.not_found"
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	ErrKeyConflict          = "error.conflict"
	ErrKeyTimeout           = "error.timeout"

	// ErrKeyOutOfStock takes the available quantity as its only argument.
	ErrKeyOutOfStock   = "error.out_of_stock"
	ErrKeySoldOut      = "error.sold_out"
	ErrKeyItemNotFound = "error.item_not_found"
	// ErrKeyCartUnavailable is used when a stored cart cannot be read.
	ErrKeyCartUnavailable = "error.cart_unavailable"

	ErrKeyEmptyCart          = "error.empty_cart"
	ErrKeyCheckoutInProgress = "error.checkout_in_progress"
	ErrKeyCheckoutAbandoned  = "error.checkout_abandoned"
	// ErrKeyCheckoutFailed is the generic retry prompt used when the platform gave no message.
	ErrKeyCheckoutFailed = "error.checkout_failed"
)
