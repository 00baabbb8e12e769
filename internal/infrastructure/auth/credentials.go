package auth

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/stockbook/backend/internal/infrastructure/config"
)

// ErrInvalidCredentials is returned when a username/password pair does not match
var ErrInvalidCredentials = errors.New("invalid credentials")

// CredentialVerifier checks login attempts against the configured admin account
type CredentialVerifier struct {
	username     string
	password     string
	passwordHash string
}

// NewCredentialVerifier creates a verifier from auth configuration
func NewCredentialVerifier(cfg config.AuthConfig) *CredentialVerifier {
	return &CredentialVerifier{
		username:     cfg.AdminUsername,
		password:     cfg.AdminPassword,
		passwordHash: cfg.AdminPasswordHash,
	}
}

// Verify checks the given username and password. The bcrypt hash takes
// precedence; the plain-text password is only consulted when no hash is
// configured (development setups).
func (v *CredentialVerifier) Verify(username, password string) error {
	userMatch := subtle.ConstantTimeCompare([]byte(username), []byte(v.username)) == 1

	var passMatch bool
	switch {
	case v.passwordHash != "":
		passMatch = bcrypt.CompareHashAndPassword([]byte(v.passwordHash), []byte(password)) == nil
	case v.password != "":
		passMatch = subtle.ConstantTimeCompare([]byte(password), []byte(v.password)) == 1
	default:
		passMatch = false
	}

	if !userMatch || !passMatch {
		return ErrInvalidCredentials
	}
	return nil
}

// HashPassword produces a bcrypt hash suitable for auth.admin_password_hash
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
