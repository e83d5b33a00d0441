package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/fitai/fitai/internal/codec"
	"github.com/fitai/fitai/internal/model"
	"github.com/fitai/fitai/internal/service"
)

// Accounts is the account logic behind the auth endpoints.
// *service.AccountService satisfies it.
type Accounts interface {
	SignUp(ctx context.Context, req model.SignUpRequest) (*model.AuthResponse, error)
	SignIn(ctx context.Context, req model.SignInRequest) (*model.AuthResponse, error)
	SignOut(ctx context.Context, token string) error
}

// AuthHandler handles account creation, sign-in and sign-out.
type AuthHandler struct {
	accounts Accounts
	logger   *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(accounts Accounts, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		accounts: accounts,
		logger:   logger,
	}
}

// SignUp handles POST /auth/signup.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req model.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	resp, err := h.accounts.SignUp(r.Context(), req)
	if err != nil {
		h.handleAccountError(w, err)
		return
	}

	h.logger.Info("account_created", "user_id", resp.User.ID)
	h.writeAuthResponse(w, http.StatusCreated, resp)
}

// SignIn handles POST /auth/signin.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req model.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	resp, err := h.accounts.SignIn(r.Context(), req)
	if err != nil {
		h.handleAccountError(w, err)
		return
	}

	h.writeAuthResponse(w, http.StatusOK, resp)
}

// SignOut handles POST /auth/signout. Revoking an unknown token succeeds.
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or missing bearer token")
		return
	}

	if err := h.accounts.SignOut(r.Context(), token); err != nil {
		h.logger.Error("sign-out failed", "error", err)
		writeError(w, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "Token store unavailable")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *AuthHandler) writeAuthResponse(w http.ResponseWriter, status int, resp *model.AuthResponse) {
	body, err := codec.EncodeAuthResponse(resp)
	if err != nil {
		h.logger.Error("encode auth response", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
		return
	}
	writeRecord(w, status, body)
}

// handleAccountError maps account errors to HTTP responses.
func (h *AuthHandler) handleAccountError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidEmail), errors.Is(err, service.ErrMissingPassword):
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", err.Error())
	case errors.Is(err, service.ErrEmailTaken):
		writeError(w, http.StatusConflict, "EMAIL_TAKEN", "An account with this email already exists")
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
	default:
		h.logger.Error("account operation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
