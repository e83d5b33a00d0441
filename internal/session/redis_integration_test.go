package session

import (
	"context"
	"testing"

	"github.com/fitai/fitai/internal/cache"
	"github.com/fitai/fitai/internal/testutil"
)

func TestStore_Redis(t *testing.T) {
	redisURL := testutil.RequireEnv(t, "REDIS_URL")

	ctx := context.Background()
	kv, err := cache.NewRedis(ctx, redisURL)
	if err != nil {
		t.Fatalf("NewRedis: %v", err)
	}
	defer kv.Close()

	if err := testutil.FlushRedis(ctx, kv.Client()); err != nil {
		t.Fatalf("flush redis: %v", err)
	}

	s := New(kv, testutil.UniqueID("session")+":", nil)
	user := testutil.NewTestUser(t, testutil.UniqueEmail("session"))

	if err := s.SaveToken(ctx, "ft_0123456789abcdef0123456789abcdef"); err != nil {
		t.Fatalf("SaveToken: %v", err)
	}
	if err := s.SaveUser(ctx, user); err != nil {
		t.Fatalf("SaveUser: %v", err)
	}

	// A second store over the same keys sees the session.
	reopened := New(kv, s.prefix, nil)
	if !reopened.IsAuthenticated(ctx) {
		t.Fatal("session not visible through a second store")
	}
	got := reopened.CurrentUser(ctx)
	if got == nil || got.ID != user.ID || got.Email != user.Email {
		t.Errorf("CurrentUser() = %+v, want %s", got, user.ID)
	}

	if err := reopened.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if s.IsAuthenticated(ctx) {
		t.Error("session survived Clear")
	}
}
