// Package session persists the signed-in state: a bearer token and the
// cached user record, stored as two independent keys.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fitai/fitai/internal/cache"
	"github.com/fitai/fitai/internal/codec"
	"github.com/fitai/fitai/internal/model"
)

// Key names, appended to the configured prefix.
const (
	TokenKey = "auth_token"
	UserKey  = "current_user"
)

// Store reads and writes session state through a KV.
type Store struct {
	kv     cache.KV
	prefix string
	logger *slog.Logger
}

// New creates a Store. prefix namespaces both keys.
func New(kv cache.KV, prefix string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		kv:     kv,
		prefix: prefix,
		logger: logger.With("component", "session"),
	}
}

func (s *Store) tokenKey() string { return s.prefix + TokenKey }
func (s *Store) userKey() string  { return s.prefix + UserKey }

// SaveToken persists the bearer token.
func (s *Store) SaveToken(ctx context.Context, token string) error {
	if err := s.kv.Set(ctx, s.tokenKey(), []byte(token), 0); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

// SaveUser persists the user record in canonical wire form.
func (s *Store) SaveUser(ctx context.Context, user *model.User) error {
	data, err := codec.EncodeUser(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err := s.kv.Set(ctx, s.userKey(), data, 0); err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}

// Clear removes both the token and the user.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, s.tokenKey(), s.userKey()); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Token returns the stored token, or "" when there is none.
func (s *Store) Token(ctx context.Context) string {
	data, err := s.kv.Get(ctx, s.tokenKey())
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Warn("token read failed", "error", err)
		}
		return ""
	}
	return string(data)
}

// CurrentUser returns the stored user, or nil when it is missing or cannot
// be decoded.
func (s *Store) CurrentUser(ctx context.Context) *model.User {
	data, err := s.kv.Get(ctx, s.userKey())
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Warn("user read failed", "error", err)
		}
		return nil
	}

	user, err := codec.DecodeUser(data)
	if err != nil {
		s.logger.Debug("stored user is corrupt", "error", err)
		return nil
	}
	return user
}

// CurrentUserID returns the stored user's id, or "".
func (s *Store) CurrentUserID(ctx context.Context) string {
	if u := s.CurrentUser(ctx); u != nil {
		return u.ID
	}
	return ""
}

// IsAuthenticated reports whether a token is stored and the stored user
// decodes.
func (s *Store) IsAuthenticated(ctx context.Context) bool {
	return s.Token(ctx) != "" && s.CurrentUser(ctx) != nil
}

// AuthHeaders returns a bearer Authorization header, or an empty map when no
// token is stored.
func (s *Store) AuthHeaders(ctx context.Context) map[string]string {
	token := s.Token(ctx)
	if token == "" {
		return map[string]string{}
	}
	return map[string]string{"Authorization": "Bearer " + token}
}
