package http

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/storefront-cart/internal/domain/dto"
	"github.com/guttosm/storefront-cart/internal/i18n"
	"github.com/guttosm/storefront-cart/internal/middleware"
)

var (
	successResponsePool = sync.Pool{
		New: func() interface{} {
			return &dto.SuccessResponse{}
		},
	}

	errorResponsePool = sync.Pool{
		New: func() interface{} {
			return &dto.ErrorResponse{}
		},
	}
)

func getSuccessResponse() *dto.SuccessResponse {
	if resp, ok := successResponsePool.Get().(*dto.SuccessResponse); ok {
		return resp
	}
	return &dto.SuccessResponse{}
}

func putSuccessResponse(resp *dto.SuccessResponse) {
	*resp = dto.SuccessResponse{}
	successResponsePool.Put(resp)
}

func getErrorResponse() *dto.ErrorResponse {
	if resp, ok := errorResponsePool.Get().(*dto.ErrorResponse); ok {
		return resp
	}
	return &dto.ErrorResponse{}
}

func putErrorResponse(resp *dto.ErrorResponse) {
	*resp = dto.ErrorResponse{}
	errorResponsePool.Put(resp)
}

// Validator is implemented by requests that check themselves after binding.
type Validator interface {
	Validate() error
}

// BuildRequestAndValidate binds the JSON body into T and runs its Validate method, if any.
func BuildRequestAndValidate[T any](c *gin.Context) (*T, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	if validator, ok := any(&req).(Validator); ok {
		if err := validator.Validate(); err != nil {
			return nil, err
		}
	}
	return &req, nil
}

// ResponseBuilder writes the API envelopes. Response DTOs are pooled; gin serializes
// synchronously so they can be returned right after writing.
type ResponseBuilder struct {
	c      *gin.Context
	locale string
}

// NewResponseBuilder creates a new response builder for the given context.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c, locale: i18n.GetLocale(c)}
}

// Success sends data wrapped in a SuccessResponse.
func (b *ResponseBuilder) Success(statusCode int, data interface{}) {
	resp := getSuccessResponse()
	resp.Data = data
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	b.c.JSON(statusCode, resp)
	putSuccessResponse(resp)
}

// SuccessOK sends a 200 OK response with the given data.
func (b *ResponseBuilder) SuccessOK(data interface{}) {
	b.Success(200, data)
}

// Translate returns the message for key in the request's locale.
func (b *ResponseBuilder) Translate(key string, args ...interface{}) string {
	if len(args) > 0 {
		return i18n.GetTranslator().Translatef(key, b.locale, args...)
	}
	return i18n.GetTranslator().Translate(key, b.locale)
}

// Error sends an error whose code is derived from the status and whose message is
// the translation of messageKey.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	b.Fail(statusCode, dto.ErrCodeFromStatus(statusCode), b.Translate(messageKey), nil, err)
}

// Fail sends an error response with an explicit code, message and details.
// err, when set, is attached to the gin context for the error handler to log.
func (b *ResponseBuilder) Fail(statusCode int, code, message string, details map[string]interface{}, err error) {
	resp := getErrorResponse()
	resp.Error = code
	resp.Message = message
	resp.Details = details
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	if err != nil {
		_ = b.c.Error(err)
	}
	b.c.AbortWithStatusJSON(statusCode, resp)
	putErrorResponse(resp)
}
