package cache

import (
	"context"
	"math"
	"sync"
	"time"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time // zero means no expiry
}

type memoryBucket struct {
	tokens     float64
	lastUpdate time.Time
	fullAt     time.Time // refilled to burst from here on; safe to drop
}

// bucketSweepInterval bounds how often idle buckets are scanned for.
const bucketSweepInterval = time.Minute

// Memory is a process-local Store. Values do not survive a restart.
type Memory struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	buckets map[string]*memoryBucket
	swept   time.Time
	now     func() time.Time
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]memoryEntry),
		buckets: make(map[string]*memoryBucket),
		now:     time.Now,
	}
}

// Get returns a copy of the value stored at key, or ErrCacheMiss.
func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return nil, ErrCacheMiss
	}
	if !e.expiresAt.IsZero() && !m.now().Before(e.expiresAt) {
		delete(m.entries, key)
		return nil, ErrCacheMiss
	}
	return append([]byte(nil), e.value...), nil
}

// Set stores a copy of value at key.
func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := memoryEntry{value: append([]byte(nil), value...)}
	if ttl > 0 {
		e.expiresAt = m.now().Add(ttl)
	}
	m.entries[key] = e
	return nil
}

// Delete removes keys.
func (m *Memory) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, k := range keys {
		delete(m.entries, k)
	}
	return nil
}

// Ping always succeeds.
func (m *Memory) Ping(context.Context) error { return nil }

// Close is a no-op.
func (m *Memory) Close() error { return nil }

// CheckRateLimit applies the same token bucket as the Redis script, in process.
func (m *Memory) CheckRateLimit(_ context.Context, key string, rate float64, burst int) (*RateLimitResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.sweepBuckets(now)

	b, ok := m.buckets[key]
	if !ok {
		b = &memoryBucket{tokens: float64(burst), lastUpdate: now}
		m.buckets[key] = b
	}

	elapsed := now.Sub(b.lastUpdate).Seconds()
	b.tokens = math.Min(float64(burst), b.tokens+elapsed*rate)
	b.lastUpdate = now

	result := &RateLimitResult{ResetAt: now.Add(time.Duration(float64(time.Second) / rate))}
	if b.tokens >= 1 {
		b.tokens--
		result.Allowed = true
	} else {
		result.RetryAfter = time.Duration(math.Ceil((1-b.tokens)/rate)) * time.Second
	}
	result.Remaining = int64(math.Floor(b.tokens))
	b.fullAt = now.Add(time.Duration((float64(burst) - b.tokens) / rate * float64(time.Second)))
	return result, nil
}

// sweepBuckets drops buckets that have refilled completely. A dropped bucket
// is recreated full, so limits are unchanged. Callers hold m.mu.
func (m *Memory) sweepBuckets(now time.Time) {
	if now.Sub(m.swept) < bucketSweepInterval {
		return
	}
	m.swept = now
	for k, b := range m.buckets {
		if !now.Before(b.fullAt) {
			delete(m.buckets, k)
		}
	}
}
