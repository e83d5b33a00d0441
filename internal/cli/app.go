package cli

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/fitai/fitai/internal/backend"
	"github.com/fitai/fitai/internal/cache"
	"github.com/fitai/fitai/internal/config"
	"github.com/fitai/fitai/internal/fixture"
	"github.com/fitai/fitai/internal/metrics"
	"github.com/fitai/fitai/internal/service"
	"github.com/fitai/fitai/internal/session"
	"github.com/fitai/fitai/internal/transport"
)

// app is the wiring one command runs against.
type app struct {
	auth  *service.AuthService
	data  *service.DataService
	close func() error
}

// openApp builds the app for a command. Tests replace it.
var openApp = newApp

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	path, err := cfg.SessionFile()
	if err != nil {
		return nil, err
	}
	store, err := cache.OpenPersistent(ctx, cfg.RedisURL, path)
	if err != nil {
		return nil, err
	}
	if cfg.RedisURL == "" {
		logger.Debug("session stored in file", "path", path)
	}

	sess := session.New(store, cfg.SessionKeyPrefix, logger)
	client := transport.New(cfg.BackendURL,
		transport.WithHTTPClient(transport.NewHTTPClient(cfg.HTTPTimeout)),
		transport.WithLogger(logger),
	)
	b := backend.New(cfg.UseMockData, backend.Deps{
		Fixture: fixture.New(),
		Client:  client,
		Session: sess,
		Logger:  logger,
	})

	recorder := metrics.NewNoop()
	return &app{
		auth:  service.NewAuthService(b, sess, recorder, logger),
		data:  service.NewDataService(b, sess, recorder, logger),
		close: store.Close,
	}, nil
}

// withApp opens the app, runs fn and turns transport failures into
// user-facing messages. An unauthorized response clears the stored session.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = a.close() }()

	err = fn(ctx, a)
	if err == nil {
		return nil
	}
	if a.auth.ClearIfUnauthorized(ctx, err) {
		return errors.New(transport.Message(err))
	}
	if transport.Kind(err) != transport.KindUnknown {
		return errors.New(transport.Message(err))
	}
	return err
}

// requireSignIn fails unless a session is stored.
func requireSignIn(ctx context.Context, a *app) error {
	if !a.auth.IsAuthenticated(ctx) {
		return errors.New("not signed in (run: fitai signin --email <email> --password <password>)")
	}
	return nil
}
