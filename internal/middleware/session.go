package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/storefront-cart/internal/domain/dto"
	"github.com/guttosm/storefront-cart/internal/i18n"
	"github.com/guttosm/storefront-cart/internal/logger"
	"github.com/guttosm/storefront-cart/internal/service"
)

// SessionHeader carries the signed cart session token in both directions.
const SessionHeader = "X-Cart-Session"

// SessionIDKey is the gin context key for the cart session ID.
const SessionIDKey ContextKey = "session_id"

// Session resolves the shopper's cart session from the X-Cart-Session token.
//
// A request without a token, or with an expired one, starts a new session. A token
// that fails signature or format checks is rejected with 401 so a tampered token
// never silently maps onto another cart. The current token is always echoed back.
func Session(tokens service.SessionTokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.FromContext(c.Request.Context())
		token := c.GetHeader(SessionHeader)

		var sessionID string
		var err error
		renew := false

		if token != "" {
			sessionID, renew, err = tokens.Validate(token)
			switch {
			case errors.Is(err, service.ErrSessionTokenExpired):
				log.Info().Msg("Session token expired, starting a new cart")
				token = ""
			case err != nil:
				log.Warn().Err(err).Msg("Rejected session token")
				message := i18n.GetTranslator().Translate(i18n.ErrKeyInvalidSession, i18n.GetLocale(c))
				c.AbortWithStatusJSON(http.StatusUnauthorized,
					dto.NewError(dto.ErrCodeUnauthorized, message).WithRequestID(GetRequestID(c)))
				return
			}
		}

		switch {
		case token == "":
			sessionID, token, err = tokens.Issue()
		case renew:
			token, err = tokens.Renew(sessionID)
		}
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}

		c.Set(string(SessionIDKey), sessionID)
		c.Header(SessionHeader, token)
		c.Request = c.Request.WithContext(logger.WithSessionID(c.Request.Context(), sessionID))
		c.Next()
	}
}

// GetSessionID retrieves the cart session ID from the gin context.
func GetSessionID(c *gin.Context) string {
	if id, exists := c.Get(string(SessionIDKey)); exists {
		if sessionID, ok := id.(string); ok {
			return sessionID
		}
	}
	return ""
}
