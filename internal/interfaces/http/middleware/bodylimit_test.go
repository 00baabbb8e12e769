package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestBodyLimit(t *testing.T) {
	newRouter := func(limit int64) *gin.Engine {
		router := gin.New()
		router.Use(BodyLimit(limit))
		router.POST("/test", func(c *gin.Context) {
			body, err := io.ReadAll(c.Request.Body)
			if err != nil {
				c.Status(http.StatusRequestEntityTooLarge)
				return
			}
			c.String(http.StatusOK, "%d", len(body))
		})
		return router
	}

	t.Run("accepts body within limit", func(t *testing.T) {
		router := newRouter(64)

		req := httptest.NewRequest("POST", "/test", strings.NewReader("small payload"))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects oversized body by content length", func(t *testing.T) {
		router := newRouter(8)

		req := httptest.NewRequest("POST", "/test", bytes.NewReader(make([]byte, 64)))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		assert.Contains(t, w.Body.String(), "REQUEST_TOO_LARGE")
	})

	t.Run("caps streamed bodies without content length", func(t *testing.T) {
		router := newRouter(8)

		req := httptest.NewRequest("POST", "/test", strings.NewReader(strings.Repeat("x", 64)))
		req.ContentLength = -1
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})
}
