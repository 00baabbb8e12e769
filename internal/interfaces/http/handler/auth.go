package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stockbook/backend/internal/infrastructure/auth"
)

// AuthHandler handles authentication API endpoints
type AuthHandler struct {
	BaseHandler
	verifier     *auth.CredentialVerifier
	tokenService *auth.TokenService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(verifier *auth.CredentialVerifier, tokenService *auth.TokenService) *AuthHandler {
	return &AuthHandler{
		verifier:     verifier,
		tokenService: tokenService,
	}
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued access token
type LoginResponse struct {
	Token     string    `json:"token"`
	TokenType string    `json:"token_type"`
	ExpiresAt time.Time `json:"expires_at"`
	Username  string    `json:"username"`
}

// Login godoc
// @Summary      Log in
// @Description  Verifies credentials and issues a JWT access token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login request"
// @Success      200 {object} dto.Response{data=LoginResponse}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !h.bindJSON(c, &req) {
		return
	}

	if err := h.verifier.Verify(req.Username, req.Password); err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			h.Unauthorized(c, "Invalid username or password")
			return
		}
		h.InternalError(c, "Could not verify credentials")
		return
	}

	token, expiresAt, err := h.tokenService.Generate(req.Username)
	if err != nil {
		h.InternalError(c, "Could not issue token")
		return
	}

	h.Success(c, LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: expiresAt,
		Username:  req.Username,
	})
}
