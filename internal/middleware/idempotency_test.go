package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newIdempotentRouter(t *testing.T, status int) (*gin.Engine, *int) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := DefaultIdempotencyConfig()
	t.Cleanup(cfg.Cache.Stop)

	calls := 0
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(string(SessionIDKey), c.GetHeader("X-Test-Session"))
		c.Next()
	}, Idempotency(cfg))
	handler := func(c *gin.Context) {
		calls++
		c.JSON(status, gin.H{"calls": calls})
	}
	router.POST("/api/cart/items", handler)
	router.GET("/api/cart", handler)
	return router, &calls
}

func send(router *gin.Engine, method, session, key, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/api/cart/items", strings.NewReader(body))
	if method == http.MethodGet {
		req = httptest.NewRequest(method, "/api/cart", nil)
	}
	req.Header.Set("X-Test-Session", session)
	if key != "" {
		req.Header.Set(IdempotencyKeyHeader, key)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestIdempotency_ReplaysSuccessfulPost(t *testing.T) {
	router, calls := newIdempotentRouter(t, http.StatusCreated)

	first := send(router, http.MethodPost, "s1", "add-1", `{"id":"v1"}`)
	second := send(router, http.MethodPost, "s1", "add-1", `{"id":"v1"}`)

	assert.Equal(t, 1, *calls)
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.JSONEq(t, first.Body.String(), second.Body.String())
	assert.Equal(t, "true", second.Header().Get(IdempotencyReplayedHeader))
	assert.Equal(t, "application/json; charset=utf-8", second.Header().Get("Content-Type"))
}

func TestIdempotency_KeyScope(t *testing.T) {
	tests := []struct {
		name    string
		session string
		key     string
		body    string
	}{
		{"different session", "s2", "add-1", `{"id":"v1"}`},
		{"different body", "s1", "add-1", `{"id":"v2"}`},
		{"different key", "s1", "add-2", `{"id":"v1"}`},
		{"no key", "s1", "", `{"id":"v1"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, calls := newIdempotentRouter(t, http.StatusCreated)
			send(router, http.MethodPost, "s1", "add-1", `{"id":"v1"}`)
			w := send(router, http.MethodPost, tt.session, tt.key, tt.body)

			assert.Equal(t, 2, *calls)
			assert.Empty(t, w.Header().Get(IdempotencyReplayedHeader))
		})
	}
}

func TestIdempotency_FailuresAreNotCached(t *testing.T) {
	router, calls := newIdempotentRouter(t, http.StatusConflict)

	send(router, http.MethodPost, "s1", "add-1", `{"id":"v1"}`)
	w := send(router, http.MethodPost, "s1", "add-1", `{"id":"v1"}`)

	assert.Equal(t, 2, *calls)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestIdempotency_IgnoresReads(t *testing.T) {
	router, calls := newIdempotentRouter(t, http.StatusOK)

	send(router, http.MethodGet, "s1", "read-1", "")
	send(router, http.MethodGet, "s1", "read-1", "")

	assert.Equal(t, 2, *calls)
}

func TestIdempotency_Disabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	calls := 0
	router := gin.New()
	router.Use(Idempotency(IdempotencyConfig{}))
	router.POST("/api/cart/items", func(c *gin.Context) {
		calls++
		c.Status(http.StatusCreated)
	})

	send(router, http.MethodPost, "s1", "add-1", `{}`)
	send(router, http.MethodPost, "s1", "add-1", `{}`)
	assert.Equal(t, 2, calls)
}
