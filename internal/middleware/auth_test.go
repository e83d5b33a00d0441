package middleware

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/fitai/fitai/internal/auth"
	"github.com/fitai/fitai/internal/metrics"
	"github.com/fitai/fitai/internal/model"
)

type stubAuthenticator struct {
	tokens map[string]*model.AuthContext
	err    error
}

func (s stubAuthenticator) Authenticate(_ context.Context, token string) (*model.AuthContext, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.tokens[token], nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAuth(t *testing.T) {
	t.Parallel()

	demo := &model.AuthContext{UserID: "user_001", Email: "demo@fitai.com"}

	tests := []struct {
		name       string
		header     string
		authErr    error
		wantStatus int
		wantReason string
	}{
		{"valid token", "Bearer good", nil, http.StatusOK, ""},
		{"lowercase scheme", "bearer good", nil, http.StatusOK, ""},
		{"missing header", "", nil, http.StatusUnauthorized, "missing_token"},
		{"basic scheme", "Basic Z29vZA==", nil, http.StatusUnauthorized, "missing_token"},
		{"empty bearer", "Bearer ", nil, http.StatusUnauthorized, "missing_token"},
		{"unknown token", "Bearer bad", nil, http.StatusUnauthorized, "unknown_token"},
		{"store failure", "Bearer good", errors.New("redis down"), http.StatusServiceUnavailable, ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := metrics.NewInMemory()
			mw := Auth(AuthConfig{
				Logger:        discardLogger(),
				Authenticator: stubAuthenticator{tokens: map[string]*model.AuthContext{"good": demo}, err: tt.authErr},
				Metrics:       rec,
			})

			var gotUser string
			handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUser = auth.UserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/goals/active", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK && gotUser != "user_001" {
				t.Errorf("user in context = %q, want user_001", gotUser)
			}
			if tt.wantReason != "" {
				if got := rec.Snapshot().AuthFailures[tt.wantReason]; got != 1 {
					t.Errorf("AuthFailures[%s] = %d, want 1", tt.wantReason, got)
				}
				if w.Header().Get("WWW-Authenticate") == "" {
					t.Error("401 should carry WWW-Authenticate")
				}
			}
		})
	}
}

func TestRequireOwner(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		authCtx    *model.AuthContext
		path       string
		wantStatus int
	}{
		{"own account", &model.AuthContext{UserID: "user_001"}, "/users/user_001", http.StatusOK},
		{"other account", &model.AuthContext{UserID: "user_001"}, "/users/user_002", http.StatusForbidden},
		{"no auth context", nil, "/users/user_001", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := chi.NewRouter()
			r.Use(func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
					if tt.authCtx != nil {
						req = req.WithContext(auth.ContextWithAuth(req.Context(), tt.authCtx))
					}
					next.ServeHTTP(w, req)
				})
			})
			r.With(RequireOwner("id")).Get("/users/{id}", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}
