package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/fitai/fitai/internal/backend"
	"github.com/fitai/fitai/internal/metrics"
	"github.com/fitai/fitai/internal/model"
	"github.com/fitai/fitai/internal/transport"
)

// Auth errors.
var (
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrMissingPassword = errors.New("password is required")
)

// SessionStore persists the signed-in state. *session.Store satisfies it.
type SessionStore interface {
	SaveToken(ctx context.Context, token string) error
	SaveUser(ctx context.Context, user *model.User) error
	Clear(ctx context.Context) error
	CurrentUser(ctx context.Context) *model.User
	IsAuthenticated(ctx context.Context) bool
}

// AuthService signs users in and out and keeps the session current.
type AuthService struct {
	backend backend.Backend
	session SessionStore
	metrics metrics.Recorder
	logger  *slog.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(b backend.Backend, session SessionStore, recorder metrics.Recorder, logger *slog.Logger) *AuthService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		backend: b,
		session: session,
		metrics: recorder,
		logger:  logger.With("component", "service.auth"),
	}
}

// SignUp creates an account and stores the resulting session.
func (s *AuthService) SignUp(ctx context.Context, email, password string, name *string) (*model.AuthResponse, error) {
	email = strings.TrimSpace(email)
	if err := validateCredentials(email, password); err != nil {
		return nil, err
	}
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			name = nil
		} else {
			name = &trimmed
		}
	}

	resp, err := observe(s.metrics, s.logger, "auth.signup", func() (*model.AuthResponse, error) {
		return s.backend.SignUp(ctx, model.SignUpRequest{Email: email, Password: password, Name: name})
	})
	if err != nil {
		return nil, err
	}
	if err := s.persist(ctx, resp); err != nil {
		return nil, err
	}
	s.logger.Info("signed up", "user_id", resp.User.ID)
	return resp, nil
}

// SignIn authenticates and stores the resulting session.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*model.AuthResponse, error) {
	email = strings.TrimSpace(email)
	if err := validateCredentials(email, password); err != nil {
		return nil, err
	}

	resp, err := observe(s.metrics, s.logger, "auth.signin", func() (*model.AuthResponse, error) {
		return s.backend.SignIn(ctx, model.SignInRequest{Email: email, Password: password})
	})
	if err != nil {
		return nil, err
	}
	if err := s.persist(ctx, resp); err != nil {
		return nil, err
	}
	s.logger.Info("signed in", "user_id", resp.User.ID)
	return resp, nil
}

func (s *AuthService) persist(ctx context.Context, resp *model.AuthResponse) error {
	if err := s.session.SaveToken(ctx, resp.Token); err != nil {
		return err
	}
	if err := s.session.SaveUser(ctx, &resp.User); err != nil {
		return err
	}
	return nil
}

// SignOut clears the session.
func (s *AuthService) SignOut(ctx context.Context) error {
	return s.session.Clear(ctx)
}

// CurrentUser returns the signed-in user, or nil.
func (s *AuthService) CurrentUser(ctx context.Context) *model.User {
	return s.session.CurrentUser(ctx)
}

// IsAuthenticated reports whether a complete session is stored.
func (s *AuthService) IsAuthenticated(ctx context.Context) bool {
	return s.session.IsAuthenticated(ctx)
}

// ClearIfUnauthorized clears the session when err is an authorization
// failure and reports whether it did.
func (s *AuthService) ClearIfUnauthorized(ctx context.Context, err error) bool {
	if !errors.Is(err, transport.ErrUnauthorized) {
		return false
	}
	if clearErr := s.session.Clear(ctx); clearErr != nil {
		s.logger.Warn("failed to clear stale session", "error", clearErr)
		return false
	}
	s.logger.Info("cleared stale session after unauthorized response")
	return true
}

func validateCredentials(email, password string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	if password == "" {
		return ErrMissingPassword
	}
	return nil
}
