package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fitai/fitai/internal/cache"
)

type failingLimiter struct{}

func (failingLimiter) CheckRateLimit(context.Context, string, float64, int) (*cache.RateLimitResult, error) {
	return nil, errors.New("limiter down")
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimitIP_BurstThenReject(t *testing.T) {
	t.Parallel()

	handler := RateLimitIP("auth", RateLimitConfig{
		Logger:  discardLogger(),
		Limiter: cache.NewMemory(),
		Enabled: true,
		RPS:     1,
		Burst:   3,
	})(okHandler())

	send := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/auth/signin", nil)
		req.RemoteAddr = ip + ":5555"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w
	}

	for i := 0; i < 3; i++ {
		if w := send("10.0.0.1"); w.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i+1, w.Code)
		}
	}

	w := send("10.0.0.1")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Error("429 should carry Retry-After")
	}
	if got := w.Header().Get("X-RateLimit-Remaining"); got != "0" {
		t.Errorf("X-RateLimit-Remaining = %q, want 0", got)
	}

	if w := send("10.0.0.2"); w.Code != http.StatusOK {
		t.Errorf("other IP status = %d, want 200", w.Code)
	}
}

func TestRateLimitIP_DisabledAndFailOpen(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  RateLimitConfig
	}{
		{"disabled", RateLimitConfig{Logger: discardLogger(), Limiter: failingLimiter{}, Enabled: false, RPS: 1, Burst: 1}},
		{"limiter error", RateLimitConfig{Logger: discardLogger(), Limiter: failingLimiter{}, Enabled: true, RPS: 1, Burst: 1}},
	}

	for _, tt := range tests {
		handler := RateLimitIP("auth", tt.cfg)(okHandler())
		for i := 0; i < 5; i++ {
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/signin", nil))
			if w.Code != http.StatusOK {
				t.Fatalf("%s: request %d status = %d, want 200", tt.name, i+1, w.Code)
			}
		}
	}
}

func TestGetClientIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		xff        string
		xri        string
		remoteAddr string
		want       string
	}{
		{"X-Forwarded-For single", "1.2.3.4", "", "127.0.0.1:8080", "1.2.3.4"},
		{"X-Forwarded-For multiple", "1.2.3.4, 5.6.7.8", "", "127.0.0.1:8080", "1.2.3.4"},
		{"X-Real-IP", "", "1.2.3.4", "127.0.0.1:8080", "1.2.3.4"},
		{"RemoteAddr without port", "", "", "192.168.1.1:12345", "192.168.1.1"},
		{"IPv6 RemoteAddr", "", "", "[::1]:443", "::1"},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tt.xff != "" {
			req.Header.Set("X-Forwarded-For", tt.xff)
		}
		if tt.xri != "" {
			req.Header.Set("X-Real-IP", tt.xri)
		}
		req.RemoteAddr = tt.remoteAddr

		if got := getClientIP(req); got != tt.want {
			t.Errorf("%s: getClientIP() = %q, want %q", tt.name, got, tt.want)
		}
	}
}
