package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockbook/backend/internal/infrastructure/config"
)

func TestCredentialVerifier_Verify(t *testing.T) {
	t.Run("accepts matching username and hashed password", func(t *testing.T) {
		hash, err := HashPassword("s3cret-pass")
		require.NoError(t, err)

		verifier := NewCredentialVerifier(config.AuthConfig{
			AdminUsername:     "admin",
			AdminPasswordHash: hash,
		})
		assert.NoError(t, verifier.Verify("admin", "s3cret-pass"))
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		hash, err := HashPassword("s3cret-pass")
		require.NoError(t, err)

		verifier := NewCredentialVerifier(config.AuthConfig{
			AdminUsername:     "admin",
			AdminPasswordHash: hash,
		})
		assert.ErrorIs(t, verifier.Verify("admin", "wrong"), ErrInvalidCredentials)
	})

	t.Run("rejects wrong username", func(t *testing.T) {
		hash, err := HashPassword("s3cret-pass")
		require.NoError(t, err)

		verifier := NewCredentialVerifier(config.AuthConfig{
			AdminUsername:     "admin",
			AdminPasswordHash: hash,
		})
		assert.ErrorIs(t, verifier.Verify("root", "s3cret-pass"), ErrInvalidCredentials)
	})

	t.Run("falls back to plain-text password when no hash is set", func(t *testing.T) {
		verifier := NewCredentialVerifier(config.AuthConfig{
			AdminUsername: "admin",
			AdminPassword: "dev-password",
		})
		assert.NoError(t, verifier.Verify("admin", "dev-password"))
		assert.ErrorIs(t, verifier.Verify("admin", "other"), ErrInvalidCredentials)
	})

	t.Run("hash takes precedence over plain-text password", func(t *testing.T) {
		hash, err := HashPassword("hashed-pass")
		require.NoError(t, err)

		verifier := NewCredentialVerifier(config.AuthConfig{
			AdminUsername:     "admin",
			AdminPassword:     "plain-pass",
			AdminPasswordHash: hash,
		})
		assert.NoError(t, verifier.Verify("admin", "hashed-pass"))
		assert.ErrorIs(t, verifier.Verify("admin", "plain-pass"), ErrInvalidCredentials)
	})

	t.Run("denies everything when no credential is configured", func(t *testing.T) {
		verifier := NewCredentialVerifier(config.AuthConfig{AdminUsername: "admin"})
		assert.ErrorIs(t, verifier.Verify("admin", ""), ErrInvalidCredentials)
	})
}
