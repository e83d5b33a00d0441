package auth

import (
	"context"

	"github.com/fitai/fitai/internal/model"
)

type ctxKey struct{}

// ContextWithAuth attaches the signed-in account resolved from a bearer token.
func ContextWithAuth(ctx context.Context, ac *model.AuthContext) context.Context {
	return context.WithValue(ctx, ctxKey{}, ac)
}

// AuthFromContext returns the account attached by the auth middleware, or nil.
func AuthFromContext(ctx context.Context) *model.AuthContext {
	ac, _ := ctx.Value(ctxKey{}).(*model.AuthContext)
	return ac
}

// UserIDFromContext returns the signed-in user id, or "" for anonymous requests.
func UserIDFromContext(ctx context.Context) string {
	if ac := AuthFromContext(ctx); ac != nil {
		return ac.UserID
	}
	return ""
}
