package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// Default token lifetime when JWT_EXPIRATION_HOURS is unset.
const DefaultJWTExpirationHours = 24

// AuthConfig holds the credentials for the admin endpoints. Auth is optional:
// when Enabled is false the token and reindex endpoints report unavailable.
type AuthConfig struct {
	// Secret signs and verifies tokens (HMAC-SHA256).
	Secret string
	// ExpirationHours is the issued-token lifetime.
	ExpirationHours int
	// AdminPasswordHash is the bcrypt hash of the admin password.
	AdminPasswordHash string
	// Enabled reports whether both the secret and the password hash were
	// provided.
	Enabled bool
}

// LoadAuthConfig reads the auth configuration from the environment:
// JWT_SECRET, JWT_EXPIRATION_HOURS and ADMIN_PASSWORD_HASH. A missing secret
// or hash disables auth rather than failing; a malformed expiration is an
// error.
func LoadAuthConfig() (*AuthConfig, error) {
	cfg := &AuthConfig{
		Secret:            os.Getenv("JWT_SECRET"),
		ExpirationHours:   DefaultJWTExpirationHours,
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
	}

	if raw := os.Getenv("JWT_EXPIRATION_HOURS"); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil || hours <= 0 {
			return nil, fmt.Errorf("invalid JWT_EXPIRATION_HOURS: %q", raw)
		}
		cfg.ExpirationHours = hours
	}

	cfg.Enabled = cfg.Secret != "" && cfg.AdminPasswordHash != ""
	return cfg, nil
}

// VerifyAdminPassword checks a candidate password against the stored bcrypt
// hash.
func (c *AuthConfig) VerifyAdminPassword(password string) bool {
	if c.AdminPasswordHash == "" {
		return false
	}
	err := bcrypt.CompareHashAndPassword([]byte(c.AdminPasswordHash), []byte(password))
	return err == nil
}

// HashPassword produces a bcrypt hash suitable for ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
