package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Allow(t *testing.T) {
	t.Run("allows up to the limit per window", func(t *testing.T) {
		rl := NewRateLimiter(3, time.Minute)

		assert.True(t, rl.Allow("client-a"))
		assert.True(t, rl.Allow("client-a"))
		assert.True(t, rl.Allow("client-a"))
		assert.False(t, rl.Allow("client-a"))
	})

	t.Run("keys are independent", func(t *testing.T) {
		rl := NewRateLimiter(1, time.Minute)

		assert.True(t, rl.Allow("client-a"))
		assert.False(t, rl.Allow("client-a"))
		assert.True(t, rl.Allow("client-b"))
	})

	t.Run("window reset restores tokens", func(t *testing.T) {
		rl := NewRateLimiter(1, 20*time.Millisecond)

		assert.True(t, rl.Allow("client-a"))
		assert.False(t, rl.Allow("client-a"))

		time.Sleep(30 * time.Millisecond)
		assert.True(t, rl.Allow("client-a"))
	})
}

func TestRateLimiter_Remaining(t *testing.T) {
	rl := NewRateLimiter(5, time.Minute)

	assert.Equal(t, 5, rl.Remaining("client-a"))
	rl.Allow("client-a")
	rl.Allow("client-a")
	assert.Equal(t, 3, rl.Remaining("client-a"))
}

func TestRateLimit(t *testing.T) {
	newRouter := func(rl *RateLimiter) *gin.Engine {
		router := gin.New()
		router.Use(RateLimit(rl))
		router.GET("/test", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return router
	}

	t.Run("blocks after the limit and sets headers", func(t *testing.T) {
		router := newRouter(NewRateLimiter(2, time.Minute))

		for i := 0; i < 2; i++ {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest("GET", "/test", nil))
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
		}

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/test", nil))
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Contains(t, w.Body.String(), "RATE_LIMIT_EXCEEDED")
	})
}
