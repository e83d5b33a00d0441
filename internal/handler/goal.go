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

// GoalHandler handles the caller's daily goal. Each user has at most one
// goal and it is always active.
type GoalHandler struct {
	records Records
	logger  *slog.Logger
	now     func() time.Time
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(records Records, logger *slog.Logger) *GoalHandler {
	return &GoalHandler{
		records: records,
		logger:  logger,
		now:     time.Now,
	}
}

// Active handles GET /goals/active. No goal is a 200 with a null body.
func (h *GoalHandler) Active(w http.ResponseWriter, r *http.Request) {
	goal := h.records.GetActiveGoal(callerID(r))
	if goal == nil {
		writeRecord(w, http.StatusOK, []byte("null"))
		return
	}
	h.writeGoal(w, http.StatusOK, goal)
}

// Create handles POST /goals. The new goal replaces any existing one.
func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	goal, ok := decodeRecord(w, r, codec.DecodeDailyGoal)
	if !ok {
		return
	}

	goal.UserID = callerID(r)
	if goal.ID == "" {
		goal.ID = newID()
	}
	goal.IsActive = true
	if err := middleware.ValidateDailyGoal(goal); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_FAILED", err.Error())
		return
	}

	now := h.now()
	goal.CreatedAt = now
	goal.UpdatedAt = now
	created := h.records.CreateGoal(goal)

	h.logger.Info("goal_created", "goal_id", created.ID, "calories", created.DailyCalorieGoal)
	h.writeGoal(w, http.StatusCreated, created)
}

// Update handles PUT /goals/{id}. Only the caller's active goal can be
// updated.
func (h *GoalHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	goal, ok := decodeRecord(w, r, codec.DecodeDailyGoal)
	if !ok {
		return
	}
	if goal.ID != id {
		writeError(w, http.StatusBadRequest, "ID_MISMATCH", "Body id does not match the path")
		return
	}

	userID := callerID(r)
	existing := h.records.GetActiveGoal(userID)
	if existing == nil || existing.ID != id {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Goal not found")
		return
	}

	goal.UserID = userID
	goal.IsActive = true
	if err := middleware.ValidateDailyGoal(goal); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_FAILED", err.Error())
		return
	}

	goal.CreatedAt = existing.CreatedAt
	goal.UpdatedAt = h.now()
	h.writeGoal(w, http.StatusOK, h.records.UpdateGoal(goal))
}

func (h *GoalHandler) writeGoal(w http.ResponseWriter, status int, goal *model.DailyGoal) {
	body, err := codec.EncodeDailyGoal(goal)
	if err != nil {
		h.logger.Error("encode goal", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
		return
	}
	writeRecord(w, status, body)
}
