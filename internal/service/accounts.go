package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fitai/fitai/internal/auth"
	"github.com/fitai/fitai/internal/cache"
	"github.com/fitai/fitai/internal/fixture"
	"github.com/fitai/fitai/internal/metrics"
	"github.com/fitai/fitai/internal/model"
)

// Account errors.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// AccountService registers accounts and issues bearer tokens for the
// development server. Users live in the fixture store; password hashes and
// token contexts live in the cache.
type AccountService struct {
	users   *fixture.Store
	creds   *cache.AuthCache
	params  auth.Params
	metrics metrics.Recorder
	logger  *slog.Logger
	now     func() time.Time

	// serializes sign-ups so an email is registered once
	signupMu sync.Mutex
}

// NewAccountService creates a new AccountService.
func NewAccountService(users *fixture.Store, creds *cache.AuthCache, params auth.Params, recorder metrics.Recorder, logger *slog.Logger) *AccountService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AccountService{
		users:   users,
		creds:   creds,
		params:  params,
		metrics: recorder,
		logger:  logger.With("component", "service.accounts"),
		now:     time.Now,
	}
}

// EnsureDemoAccount stores the demo password for the seeded demo user unless
// a credential already exists.
func (s *AccountService) EnsureDemoAccount(ctx context.Context) error {
	if s.users.GetUserByEmail(fixture.DemoEmail) == nil {
		s.users.UpdateUser(ptrTo(fixture.DemoUser(s.now())))
	}

	_, err := s.creds.GetCredential(ctx, fixture.DemoEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		return fmt.Errorf("read demo credential: %w", err)
	}

	hash, err := auth.HashPasswordWithParams(fixture.DemoPassword, s.params)
	if err != nil {
		return err
	}
	if err := s.creds.SetCredential(ctx, fixture.DemoEmail, hash); err != nil {
		return fmt.Errorf("store demo credential: %w", err)
	}
	s.logger.Info("demo account ready", "email", fixture.DemoEmail)
	return nil
}

// SignUp registers a new account and issues a token.
func (s *AccountService) SignUp(ctx context.Context, req model.SignUpRequest) (*model.AuthResponse, error) {
	email := strings.TrimSpace(req.Email)
	if err := validateCredentials(email, req.Password); err != nil {
		return nil, err
	}

	s.signupMu.Lock()
	defer s.signupMu.Unlock()

	if s.users.GetUserByEmail(email) != nil {
		return nil, ErrEmailTaken
	}
	if _, err := s.creds.GetCredential(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		return nil, fmt.Errorf("read credential: %w", err)
	}

	hash, err := auth.HashPasswordWithParams(req.Password, s.params)
	if err != nil {
		return nil, err
	}

	now := s.now()
	user := &model.User{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      req.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.creds.SetCredential(ctx, email, hash); err != nil {
		return nil, fmt.Errorf("store credential: %w", err)
	}
	stored := s.users.UpdateUser(user)

	s.logger.Info("account created", "user_id", stored.ID)
	return s.issue(ctx, stored)
}

// SignIn verifies credentials and issues a token.
func (s *AccountService) SignIn(ctx context.Context, req model.SignInRequest) (*model.AuthResponse, error) {
	email := strings.TrimSpace(req.Email)

	user := s.users.GetUserByEmail(email)
	if user == nil {
		s.metrics.IncAuthFailure("bad_credentials")
		return nil, ErrInvalidCredentials
	}

	hash, err := s.creds.GetCredential(ctx, email)
	if errors.Is(err, cache.ErrCacheMiss) {
		s.metrics.IncAuthFailure("bad_credentials")
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("read credential: %w", err)
	}

	ok, err := auth.VerifyPassword(req.Password, hash)
	if err != nil {
		s.logger.Error("stored credential unreadable", "user_id", user.ID, "error", err)
		return nil, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		s.metrics.IncAuthFailure("bad_credentials")
		return nil, ErrInvalidCredentials
	}

	return s.issue(ctx, user)
}

func (s *AccountService) issue(ctx context.Context, user *model.User) (*model.AuthResponse, error) {
	token, err := auth.GenerateToken()
	if err != nil {
		return nil, err
	}
	authCtx := &model.AuthContext{UserID: user.ID, Email: user.Email, IssuedAt: s.now()}
	if err := s.creds.SetAuthContext(ctx, auth.QuickHash(token), authCtx); err != nil {
		return nil, fmt.Errorf("store token: %w", err)
	}
	return &model.AuthResponse{User: *user, Token: token}, nil
}

// Authenticate resolves a bearer token. It returns nil without error for
// malformed, unknown or expired tokens.
func (s *AccountService) Authenticate(ctx context.Context, token string) (*model.AuthContext, error) {
	if !auth.ValidateTokenFormat(token) {
		return nil, nil
	}
	return s.creds.GetAuthContext(ctx, auth.QuickHash(token))
}

// SignOut revokes a bearer token.
func (s *AccountService) SignOut(ctx context.Context, token string) error {
	return s.creds.DeleteAuthContext(ctx, auth.QuickHash(token))
}

func ptrTo[T any](v T) *T { return &v }
