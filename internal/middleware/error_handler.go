package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/storefront-cart/internal/domain/dto"
	"github.com/guttosm/storefront-cart/internal/i18n"
	"github.com/guttosm/storefront-cart/internal/logger"
)

// ErrorHandler logs errors attached to the gin context. Handlers that already wrote a
// response keep it; otherwise a generic 500 is sent.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		status := c.Writer.Status()
		log := logger.FromContext(c.Request.Context())
		event := log.Warn()
		if !c.Writer.Written() || status >= http.StatusInternalServerError {
			event = log.Error()
		}
		event.
			Err(err.Err).
			Int("status", status).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Request error")

		if !c.Writer.Written() {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, i18n.GetLocale(c))
			c.JSON(http.StatusInternalServerError,
				dto.NewError(dto.ErrCodeInternal, message).WithRequestID(GetRequestID(c)))
		}
	}
}
