package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/guttosm/storefront-cart/internal/cart"
	"github.com/guttosm/storefront-cart/internal/checkout"
	"github.com/guttosm/storefront-cart/internal/circuitbreaker"
	"github.com/guttosm/storefront-cart/internal/domain/dto"
	"github.com/guttosm/storefront-cart/internal/i18n"
	"github.com/guttosm/storefront-cart/internal/service"
)

// writeServiceError maps cart and checkout errors onto HTTP responses with a
// shopper-facing message in the request's locale.
func (b *ResponseBuilder) writeServiceError(err error) {
	if oos, ok := cart.AsOutOfStock(err); ok {
		message := b.Translate(i18n.ErrKeyOutOfStock, oos.Limit)
		if oos.Limit == 0 {
			message = b.Translate(i18n.ErrKeySoldOut)
		}
		b.Fail(http.StatusConflict, dto.ErrCodeOutOfStock, message, map[string]interface{}{
			"item_id":   oos.ItemID,
			"available": oos.Limit,
			"requested": oos.Requested,
		}, nil)
		return
	}

	if failed, ok := checkout.AsCreationFailed(err); ok {
		message := failed.Message
		if message == "" {
			message = b.Translate(i18n.ErrKeyCheckoutFailed)
		}
		var details map[string]interface{}
		if failed.Field != "" {
			details = map[string]interface{}{"field": failed.Field}
		}
		b.Fail(http.StatusUnprocessableEntity, dto.ErrCodeCheckoutFailed, message, details, nil)
		return
	}

	switch {
	case errors.Is(err, service.ErrCartUnavailable):
		b.Fail(http.StatusServiceUnavailable, dto.ErrCodeStorageUnavailable, b.Translate(i18n.ErrKeyCartUnavailable), nil, err)
	case errors.Is(err, service.ErrInvalidSession):
		b.Fail(http.StatusUnauthorized, dto.ErrCodeUnauthorized, b.Translate(i18n.ErrKeyInvalidSession), nil, nil)
	case errors.Is(err, cart.ErrItemNotFound):
		b.Fail(http.StatusNotFound, dto.ErrCodeItemNotFound, b.Translate(i18n.ErrKeyItemNotFound), nil, nil)
	case errors.Is(err, checkout.ErrEmptyCart):
		b.Fail(http.StatusBadRequest, dto.ErrCodeEmptyCart, b.Translate(i18n.ErrKeyEmptyCart), nil, nil)
	case errors.Is(err, checkout.ErrCheckoutInProgress):
		b.Fail(http.StatusConflict, dto.ErrCodeCheckoutInProgress, b.Translate(i18n.ErrKeyCheckoutInProgress), nil, nil)
	case errors.Is(err, context.DeadlineExceeded):
		b.Fail(http.StatusGatewayTimeout, dto.ErrCodeTimeout, b.Translate(i18n.ErrKeyTimeout), nil, err)
	case errors.Is(err, checkout.ErrCheckoutAbandoned):
		b.Fail(http.StatusConflict, dto.ErrCodeCheckoutAbandoned, b.Translate(i18n.ErrKeyCheckoutAbandoned), nil, nil)
	case errors.Is(err, circuitbreaker.ErrCircuitOpen):
		b.Fail(http.StatusServiceUnavailable, dto.ErrCodeUpstream, b.Translate(i18n.ErrKeyCheckoutFailed), nil, err)
	case errors.Is(err, checkout.ErrCheckoutCreationFailed):
		b.Fail(http.StatusBadGateway, dto.ErrCodeUpstream, b.Translate(i18n.ErrKeyCheckoutFailed), nil, err)
	default:
		b.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}
