package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/stockbook/backend/internal/infrastructure/config"
)

var (
	// ErrInvalidToken is returned when a token fails signature or claim validation
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token has passed its expiry
	ErrExpiredToken = errors.New("token has expired")

	// ErrMissingSubject is returned when a token carries no subject claim
	ErrMissingSubject = errors.New("token missing subject")
)

// Claims represents the JWT claims for an authenticated session
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenService issues and validates HMAC-signed access tokens
type TokenService struct {
	secret     []byte
	expiration time.Duration
	issuer     string
}

// NewTokenService creates a token service from JWT configuration
func NewTokenService(cfg config.JWTConfig) *TokenService {
	return &TokenService{
		secret:     []byte(cfg.Secret),
		expiration: cfg.Expiration,
		issuer:     cfg.Issuer,
	}
}

// Generate issues a signed access token for the given username.
// It returns the token string and its expiry time.
func (s *TokenService) Generate(username string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.expiration)

	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   username,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, expiresAt, nil
}

// Validate parses and validates a token string, returning its claims
func (s *TokenService) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(s.issuer))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, ErrMissingSubject
	}

	return claims, nil
}
