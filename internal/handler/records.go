package handler

import (
	"net/http"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/fitai/fitai/internal/auth"
	"github.com/fitai/fitai/internal/model"
)

// Records is the storage behind the data endpoints. Every call is scoped to
// one user id. *fixture.Store satisfies it.
type Records interface {
	GetUserByID(id string) *model.User
	UpdateUser(user *model.User) *model.User

	GetFoodEntries(userID string, date time.Time) []model.FoodEntry
	GetFoodEntry(userID, id string) *model.FoodEntry
	CreateFoodEntry(entry *model.FoodEntry) *model.FoodEntry
	UpdateFoodEntry(entry *model.FoodEntry) (*model.FoodEntry, bool)
	DeleteFoodEntry(entry *model.FoodEntry) bool

	GetActiveGoal(userID string) *model.DailyGoal
	CreateGoal(goal *model.DailyGoal) *model.DailyGoal
	UpdateGoal(goal *model.DailyGoal) *model.DailyGoal
}

// callerID returns the authenticated user id. Routes using it sit behind
// the Auth middleware.
func callerID(r *http.Request) string {
	return auth.UserIDFromContext(r.Context())
}

func newID() string {
	return ulid.Make().String()
}
