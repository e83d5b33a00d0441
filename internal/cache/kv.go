package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Get when a key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

// KV is a string-keyed byte store.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// Store is a KV with rate limiting and lifecycle hooks.
type Store interface {
	KV
	RateLimiter
	Ping(ctx context.Context) error
	Close() error
}

// Open returns a Redis store for redisURL, or an in-memory store when
// redisURL is empty.
func Open(ctx context.Context, redisURL string) (Store, error) {
	if redisURL == "" {
		return NewMemory(), nil
	}
	return NewRedis(ctx, redisURL)
}

// OpenPersistent returns a Redis store for redisURL, or a SQLite store at
// path when redisURL is empty. Either one outlives the process.
func OpenPersistent(ctx context.Context, redisURL, path string) (Store, error) {
	if redisURL != "" {
		return NewRedis(ctx, redisURL)
	}
	return NewSQLite(ctx, path)
}

var (
	_ Store = (*Redis)(nil)
	_ Store = (*Memory)(nil)
	_ Store = (*SQLite)(nil)
)
