package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/guttosm/storefront-cart/internal/logger"
	"github.com/guttosm/storefront-cart/internal/service"
)

type fakeTokens struct {
	validateID  string
	renew       bool
	validateErr error
	issueErr    error
	issued      int
	renewed     int
}

func (f *fakeTokens) Issue() (string, string, error) {
	f.issued++
	if f.issueErr != nil {
		return "", "", f.issueErr
	}
	return "new-session", "token-new", nil
}

func (f *fakeTokens) Renew(sessionID string) (string, error) {
	f.renewed++
	return "token-renewed-" + sessionID, nil
}

func (f *fakeTokens) Validate(token string) (string, bool, error) {
	return f.validateID, f.renew, f.validateErr
}

func TestSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name            string
		header          string
		tokens          *fakeTokens
		expectedStatus  int
		expectedSession string
		expectedToken   string
	}{
		{
			name:            "issues a session on first contact",
			tokens:          &fakeTokens{},
			expectedStatus:  http.StatusOK,
			expectedSession: "new-session",
			expectedToken:   "token-new",
		},
		{
			name:            "echoes a valid token",
			header:          "token-abc",
			tokens:          &fakeTokens{validateID: "s1"},
			expectedStatus:  http.StatusOK,
			expectedSession: "s1",
			expectedToken:   "token-abc",
		},
		{
			name:            "renews an ageing token",
			header:          "token-old",
			tokens:          &fakeTokens{validateID: "s1", renew: true},
			expectedStatus:  http.StatusOK,
			expectedSession: "s1",
			expectedToken:   "token-renewed-s1",
		},
		{
			name:            "expired token starts a new session",
			header:          "token-expired",
			tokens:          &fakeTokens{validateErr: service.ErrSessionTokenExpired},
			expectedStatus:  http.StatusOK,
			expectedSession: "new-session",
			expectedToken:   "token-new",
		},
		{
			name:           "tampered token is rejected",
			header:         "token-forged",
			tokens:         &fakeTokens{validateErr: service.ErrInvalidSessionToken},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "issue failure",
			tokens:         &fakeTokens{issueErr: errors.New("signer down")},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestID(), ErrorHandler(), Session(tt.tokens))
			router.GET("/api/cart", func(c *gin.Context) {
				assert.Equal(t, GetSessionID(c), logger.SessionID(c.Request.Context()))
				c.String(http.StatusOK, GetSessionID(c))
			})

			req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
			if tt.header != "" {
				req.Header.Set(SessionHeader, tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus != http.StatusOK {
				assert.Empty(t, w.Header().Get(SessionHeader))
				return
			}
			assert.Equal(t, tt.expectedSession, w.Body.String())
			assert.Equal(t, tt.expectedToken, w.Header().Get(SessionHeader))
		})
	}
}
