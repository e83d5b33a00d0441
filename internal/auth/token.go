package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
)

// Token format: ft_{secret}
// Example: ft_4f8d2e1b9c7a5f3d2e1b9c7a5f3d2e1b
const (
	TokenPrefix    = "ft_"
	TokenSecretLen = 32 // hex encoded 16 bytes
)

var (
	// ErrInvalidTokenFormat indicates the bearer token format is invalid.
	ErrInvalidTokenFormat = errors.New("invalid token format")

	tokenFormatRegex = regexp.MustCompile(`^ft_[a-f0-9]{32}$`)
)

// GenerateToken creates a new random bearer token.
func GenerateToken() (string, error) {
	secret := make([]byte, TokenSecretLen/2)
	if _, err := rand.Read(secret); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return TokenPrefix + hex.EncodeToString(secret), nil
}

// ValidateTokenFormat checks if token matches the issued format.
func ValidateTokenFormat(token string) bool {
	return tokenFormatRegex.MatchString(token)
}
