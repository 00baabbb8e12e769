package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/stockbook/backend/internal/infrastructure/auth"
	"github.com/stockbook/backend/internal/interfaces/http/dto"
)

// Context keys and header constants for JWT auth
const (
	JWTClaimsKey   = "jwt_claims"
	JWTUsernameKey = "jwt_username"
	AuthHeaderKey  = "Authorization"
	BearerPrefix   = "Bearer "
)

// JWTMiddlewareConfig holds configuration for the auth middleware
type JWTMiddlewareConfig struct {
	TokenService *auth.TokenService
	// SkipPaths are exact paths that do not require authentication
	SkipPaths []string
	// SkipPathPrefixes are path prefixes that do not require authentication
	SkipPathPrefixes []string
	Logger           *zap.Logger
}

// DefaultJWTConfig returns the middleware configuration with the standard
// unauthenticated paths.
func DefaultJWTConfig(tokenService *auth.TokenService) JWTMiddlewareConfig {
	return JWTMiddlewareConfig{
		TokenService: tokenService,
		SkipPaths: []string{
			"/health",
			"/api/v1/auth/login",
		},
		SkipPathPrefixes: []string{
			"/api/v1/system",
		},
	}
}

// JWTAuthMiddleware creates JWT authentication middleware with default config
func JWTAuthMiddleware(tokenService *auth.TokenService) gin.HandlerFunc {
	return JWTAuthMiddlewareWithConfig(DefaultJWTConfig(tokenService))
}

// JWTAuthMiddlewareWithConfig creates JWT authentication middleware
func JWTAuthMiddlewareWithConfig(cfg JWTMiddlewareConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		for _, skipPath := range cfg.SkipPaths {
			if path == skipPath {
				c.Next()
				return
			}
		}
		for _, prefix := range cfg.SkipPathPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		authHeader := c.GetHeader(AuthHeaderKey)
		if authHeader == "" {
			abortUnauthorized(c, cfg, auth.ErrInvalidToken, "Missing authorization header")
			return
		}
		if !strings.HasPrefix(authHeader, BearerPrefix) {
			abortUnauthorized(c, cfg, auth.ErrInvalidToken, "Invalid authorization header format")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
		if tokenString == "" {
			abortUnauthorized(c, cfg, auth.ErrInvalidToken, "Missing token")
			return
		}

		claims, err := cfg.TokenService.Validate(tokenString)
		if err != nil {
			abortUnauthorized(c, cfg, err, "Token validation failed")
			return
		}

		c.Set(JWTClaimsKey, claims)
		c.Set(JWTUsernameKey, claims.Username)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, cfg JWTMiddlewareConfig, err error, message string) {
	if cfg.Logger != nil {
		cfg.Logger.Warn("Authentication failed",
			zap.Error(err),
			zap.String("message", message),
			zap.String("path", c.Request.URL.Path),
		)
	}

	code := dto.ErrCodeUnauthorized
	responseMessage := "Authentication required"
	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		code = "TOKEN_EXPIRED"
		responseMessage = "Token has expired"
	case errors.Is(err, auth.ErrInvalidToken):
		code = "INVALID_TOKEN"
		responseMessage = "Invalid token"
	}

	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(code, responseMessage))
}

// GetJWTClaims retrieves validated token claims from the request context
func GetJWTClaims(c *gin.Context) *auth.Claims {
	if claims, exists := c.Get(JWTClaimsKey); exists {
		if jwtClaims, ok := claims.(*auth.Claims); ok {
			return jwtClaims
		}
	}
	return nil
}

// GetJWTUsername retrieves the authenticated username from the request context
func GetJWTUsername(c *gin.Context) string {
	if username, exists := c.Get(JWTUsernameKey); exists {
		if u, ok := username.(string); ok {
			return u
		}
	}
	return ""
}
