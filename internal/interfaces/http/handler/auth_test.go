package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockbook/backend/internal/infrastructure/auth"
	"github.com/stockbook/backend/internal/infrastructure/config"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *auth.TokenService) {
	t.Helper()

	verifier := auth.NewCredentialVerifier(config.AuthConfig{
		AdminUsername: "admin",
		AdminPassword: "shopkeeper-dev",
	})
	tokenService := auth.NewTokenService(config.JWTConfig{
		Secret:     "test-secret-at-least-32-characters-long",
		Expiration: time.Hour,
		Issuer:     "stockbook-test",
	})

	handler := NewAuthHandler(verifier, tokenService)

	router := gin.New()
	router.POST("/api/v1/auth/login", handler.Login)
	return router, tokenService
}

func TestAuthHandler_Login(t *testing.T) {
	router, tokenService := newAuthRouter(t)

	login := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/api/v1/auth/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("issues token for valid credentials", func(t *testing.T) {
		w := login(`{"username":"admin","password":"shopkeeper-dev"}`)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		resp := decodeEnvelope(t, w)
		var loginResp LoginResponse
		require.NoError(t, json.Unmarshal(resp.Data, &loginResp))
		assert.Equal(t, "Bearer", loginResp.TokenType)
		assert.Equal(t, "admin", loginResp.Username)
		assert.True(t, loginResp.ExpiresAt.After(time.Now()))

		claims, err := tokenService.Validate(loginResp.Token)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Username)
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		w := login(`{"username":"admin","password":"wrong"}`)
		require.Equal(t, http.StatusUnauthorized, w.Code)

		resp := decodeEnvelope(t, w)
		require.NotNil(t, resp.Error)
	})

	t.Run("rejects unknown username", func(t *testing.T) {
		w := login(`{"username":"intruder","password":"shopkeeper-dev"}`)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		w := login(`{"username":"admin"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}
