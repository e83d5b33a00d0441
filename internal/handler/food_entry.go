package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fitai/fitai/internal/codec"
	"github.com/fitai/fitai/internal/middleware"
	"github.com/fitai/fitai/internal/model"
)

// FoodEntryHandler handles HTTP requests for the caller's food entries.
type FoodEntryHandler struct {
	records Records
	logger  *slog.Logger
	now     func() time.Time
}

// NewFoodEntryHandler creates a new FoodEntryHandler.
func NewFoodEntryHandler(records Records, logger *slog.Logger) *FoodEntryHandler {
	return &FoodEntryHandler{
		records: records,
		logger:  logger,
		now:     time.Now,
	}
}

// List handles GET /food-entries?date=YYYY-MM-DD.
func (h *FoodEntryHandler) List(w http.ResponseWriter, r *http.Request) {
	date, ok := codec.ParseDate(r.URL.Query().Get("date"))
	if !ok {
		writeError(w, http.StatusBadRequest, "INVALID_DATE", "date must be YYYY-MM-DD")
		return
	}

	entries := h.records.GetFoodEntries(callerID(r), date)
	body, err := codec.EncodeFoodEntries(entries)
	if err != nil {
		h.internalError(w, err)
		return
	}
	writeRecord(w, http.StatusOK, body)
}

// Create handles POST /food-entries. The entry is always filed under the
// caller; a missing id is assigned.
func (h *FoodEntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	entry, ok := decodeRecord(w, r, codec.DecodeFoodEntry)
	if !ok {
		return
	}

	entry.UserID = callerID(r)
	if entry.ID == "" {
		entry.ID = newID()
	}
	if err := middleware.ValidateFoodEntry(entry); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_FAILED", err.Error())
		return
	}

	now := h.now()
	entry.CreatedAt = now
	entry.UpdatedAt = now
	created := h.records.CreateFoodEntry(entry)

	h.logger.Info("food_entry_created",
		"entry_id", created.ID,
		"meal_type", created.MealType,
		"ai_analyzed", created.AIAnalyzed,
	)
	h.writeEntry(w, http.StatusCreated, created)
}

// Update handles PUT /food-entries/{id}.
func (h *FoodEntryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	entry, ok := decodeRecord(w, r, codec.DecodeFoodEntry)
	if !ok {
		return
	}
	if entry.ID != id {
		writeError(w, http.StatusBadRequest, "ID_MISMATCH", "Body id does not match the path")
		return
	}

	entry.UserID = callerID(r)
	if err := middleware.ValidateFoodEntry(entry); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_FAILED", err.Error())
		return
	}

	existing := h.records.GetFoodEntry(entry.UserID, id)
	if existing == nil {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Food entry not found")
		return
	}

	entry.CreatedAt = existing.CreatedAt
	entry.UpdatedAt = h.now()
	updated, found := h.records.UpdateFoodEntry(entry)
	if !found {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Food entry not found")
		return
	}
	h.writeEntry(w, http.StatusOK, updated)
}

// Delete handles DELETE /food-entries/{id}.
func (h *FoodEntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := middleware.ValidateID(id); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", err.Error())
		return
	}

	if !h.records.DeleteFoodEntry(&model.FoodEntry{ID: id, UserID: callerID(r)}) {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Food entry not found")
		return
	}

	h.logger.Info("food_entry_deleted", "entry_id", id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *FoodEntryHandler) writeEntry(w http.ResponseWriter, status int, entry *model.FoodEntry) {
	body, err := codec.EncodeFoodEntry(entry)
	if err != nil {
		h.internalError(w, err)
		return
	}
	writeRecord(w, status, body)
}

func (h *FoodEntryHandler) internalError(w http.ResponseWriter, err error) {
	h.logger.Error("encode food entries", "error", err)
	writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
}
