package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fitai/fitai/internal/codec"
	"github.com/fitai/fitai/internal/model"
)

// UserHandler serves the signed-in user's profile.
type UserHandler struct {
	records Records
	logger  *slog.Logger
	now     func() time.Time
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(records Records, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		records: records,
		logger:  logger,
		now:     time.Now,
	}
}

// Get handles GET /users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := h.records.GetUserByID(chi.URLParam(r, "id"))
	if user == nil {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "User not found")
		return
	}
	h.writeUser(w, user)
}

// Update handles PUT /users/{id}. The id and email are immutable;
// created_at is kept from the stored record.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	user, ok := decodeRecord(w, r, codec.DecodeUser)
	if !ok {
		return
	}
	if user.ID != id {
		writeError(w, http.StatusBadRequest, "ID_MISMATCH", "Body id does not match the path")
		return
	}

	existing := h.records.GetUserByID(id)
	if existing == nil {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "User not found")
		return
	}
	if user.Email != existing.Email {
		writeError(w, http.StatusBadRequest, "EMAIL_IMMUTABLE", "Email cannot be changed")
		return
	}

	user.CreatedAt = existing.CreatedAt
	user.UpdatedAt = h.now()
	updated := h.records.UpdateUser(user)

	h.logger.Info("user_updated", "user_id", id)
	h.writeUser(w, updated)
}

func (h *UserHandler) writeUser(w http.ResponseWriter, user *model.User) {
	body, err := codec.EncodeUser(user)
	if err != nil {
		h.logger.Error("encode user", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
		return
	}
	writeRecord(w, http.StatusOK, body)
}
