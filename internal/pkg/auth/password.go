// internal/pkg/auth/password.go
package auth

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/velvet-vogue/storefront-backend/internal/config"
)

// PasswordManager handles password operations
type PasswordManager struct {
	config *config.Config
}

// NewPasswordManager creates a new password manager
func NewPasswordManager(cfg *config.Config) *PasswordManager {
	return &PasswordManager{
		config: cfg,
	}
}

// HashPassword hashes a password using bcrypt
func (p *PasswordManager) HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), p.config.Security.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hashedBytes), nil
}

// VerifyPassword verifies a password against its bcrypt hash
func (p *PasswordManager) VerifyPassword(password, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// VerifyAdminPassword checks a login attempt against the configured
// admin credentials. ADMIN_PASSWORD_HASH takes precedence when set;
// the plain ADMIN_PASSWORD is the development fallback.
func (p *PasswordManager) VerifyAdminPassword(password string) error {
	if hash := p.config.Admin.PasswordHash; hash != "" {
		return p.VerifyPassword(password, hash)
	}

	if subtle.ConstantTimeCompare([]byte(password), []byte(p.config.Admin.Password)) != 1 {
		return fmt.Errorf("invalid credentials")
	}
	return nil
}
