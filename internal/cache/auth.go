package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fitai/fitai/internal/model"
)

const (
	// authCachePrefix is the key prefix for token auth contexts.
	authCachePrefix = "auth:ctx:"
	// credentialPrefix is the key prefix for password hashes.
	credentialPrefix = "auth:pw:"
	// AuthTokenTTL is how long an issued token stays valid.
	AuthTokenTTL = 24 * time.Hour
)

// cachedAuthContext represents an auth context stored in the KV.
type cachedAuthContext struct {
	UserID   string    `json:"user_id"`
	Email    string    `json:"email"`
	IssuedAt time.Time `json:"issued_at"`
}

// AuthCache stores token contexts and password hashes for the development
// server.
type AuthCache struct {
	kv KV
}

// NewAuthCache creates an AuthCache over kv.
func NewAuthCache(kv KV) *AuthCache {
	return &AuthCache{kv: kv}
}

// GetAuthContext retrieves the auth context stored under cacheKey.
// Returns nil if not found or corrupt.
func (c *AuthCache) GetAuthContext(ctx context.Context, cacheKey string) (*model.AuthContext, error) {
	data, err := c.kv.Get(ctx, authCachePrefix+cacheKey)
	if errors.Is(err, ErrCacheMiss) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var cached cachedAuthContext
	if err := json.Unmarshal(data, &cached); err != nil || cached.UserID == "" {
		// Corrupted entry - treat as miss
		return nil, nil //nolint:nilerr
	}

	return &model.AuthContext{
		UserID:   cached.UserID,
		Email:    cached.Email,
		IssuedAt: cached.IssuedAt,
	}, nil
}

// SetAuthContext stores an auth context under cacheKey for AuthTokenTTL.
func (c *AuthCache) SetAuthContext(ctx context.Context, cacheKey string, auth *model.AuthContext) error {
	data, err := json.Marshal(cachedAuthContext{
		UserID:   auth.UserID,
		Email:    auth.Email,
		IssuedAt: auth.IssuedAt,
	})
	if err != nil {
		return fmt.Errorf("marshal auth context: %w", err)
	}
	return c.kv.Set(ctx, authCachePrefix+cacheKey, data, AuthTokenTTL)
}

// DeleteAuthContext removes an auth context. Used on sign-out.
func (c *AuthCache) DeleteAuthContext(ctx context.Context, cacheKey string) error {
	return c.kv.Delete(ctx, authCachePrefix+cacheKey)
}

// GetCredential returns the password hash for email, or ErrCacheMiss.
func (c *AuthCache) GetCredential(ctx context.Context, email string) (string, error) {
	data, err := c.kv.Get(ctx, credentialPrefix+email)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// SetCredential stores a password hash for email. Credentials do not expire.
func (c *AuthCache) SetCredential(ctx context.Context, email, hash string) error {
	return c.kv.Set(ctx, credentialPrefix+email, []byte(hash), 0)
}
