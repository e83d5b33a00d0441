package middleware

import (
	"math"
	"strings"
	"testing"

	"github.com/fitai/fitai/internal/model"
)

func TestValidateID(t *testing.T) {
	tests := []struct {
		id      string
		wantErr bool
	}{
		{"entry_001", false},
		{"01HZX3K8Q9V7W2N5M4P6R8T0YB", false},
		{"7c9e6679-7425-40de-944b-e07fc1f90ae7", false},
		{"", true},
		{"has space", true},
		{"../etc", true},
		{strings.Repeat("a", MaxIDLength+1), true},
	}

	for _, tt := range tests {
		err := ValidateID(tt.id)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
		}
	}
}

func validEntry() *model.FoodEntry {
	return &model.FoodEntry{
		ID:       "entry_100",
		UserID:   "user_001",
		MealType: model.MealLunch,
		FoodName: "Chicken Salad",
		Calories: 450,
		Protein:  35,
		Carbs:    20,
		Fat:      22,
	}
}

func TestValidateFoodEntry(t *testing.T) {
	str := func(s string) *string { return &s }
	f := func(v float64) *float64 { return &v }

	tests := []struct {
		name    string
		mutate  func(e *model.FoodEntry)
		wantErr error
	}{
		{"valid", func(e *model.FoodEntry) {}, nil},
		{"bad id", func(e *model.FoodEntry) { e.ID = "a/b" }, ErrIDInvalid},
		{"blank name", func(e *model.FoodEntry) { e.FoodName = "  " }, ErrFoodNameRequired},
		{"long name", func(e *model.FoodEntry) { e.FoodName = strings.Repeat("x", MaxFoodNameLength+1) }, ErrFoodNameTooLong},
		{"long serving", func(e *model.FoodEntry) { e.ServingSize = str(strings.Repeat("g", MaxServingSizeLength+1)) }, ErrServingSizeTooLong},
		{"long notes", func(e *model.FoodEntry) { e.Notes = str(strings.Repeat("n", MaxNotesLength+1)) }, ErrNotesTooLong},
		{"negative calories", func(e *model.FoodEntry) { e.Calories = -1 }, ErrNutrientOutOfRange},
		{"huge fat", func(e *model.FoodEntry) { e.Fat = MaxNutrientValue + 1 }, ErrNutrientOutOfRange},
		{"NaN protein", func(e *model.FoodEntry) { e.Protein = math.NaN() }, ErrNutrientOutOfRange},
		{"confidence above one", func(e *model.FoodEntry) { e.AIConfidence = f(1.5) }, ErrConfidenceRange},
		{"javascript photo", func(e *model.FoodEntry) { e.PhotoURL = str("javascript:alert(1)") }, ErrPhotoURLInvalid},
		{"relative photo", func(e *model.FoodEntry) { e.PhotoURL = str("/photos/1.jpg") }, ErrPhotoURLInvalid},
		{"https photo", func(e *model.FoodEntry) { e.PhotoURL = str("https://cdn.fitai.app/p/1.jpg") }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validEntry()
			tt.mutate(e)
			if err := ValidateFoodEntry(e); err != tt.wantErr {
				t.Errorf("ValidateFoodEntry() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDailyGoal(t *testing.T) {
	i := func(v int) *int { return &v }

	tests := []struct {
		name    string
		goal    model.DailyGoal
		wantErr error
	}{
		{"valid", model.DailyGoal{ID: "goal_001", DailyCalorieGoal: 2000, DailyProteinGoal: 150, CalorieDeficitGoal: i(500)}, nil},
		{"zero calories", model.DailyGoal{ID: "goal_001"}, ErrGoalOutOfRange},
		{"too many calories", model.DailyGoal{ID: "goal_001", DailyCalorieGoal: MaxCalorieGoal + 1}, ErrGoalOutOfRange},
		{"negative carbs", model.DailyGoal{ID: "goal_001", DailyCalorieGoal: 2000, DailyCarbGoal: -5}, ErrGoalOutOfRange},
		{"negative surplus", model.DailyGoal{ID: "goal_001", DailyCalorieGoal: 2000, CalorieSurplusGoal: i(-1)}, ErrGoalOutOfRange},
		{"bad id", model.DailyGoal{ID: "", DailyCalorieGoal: 2000}, ErrIDInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateDailyGoal(&tt.goal); err != tt.wantErr {
				t.Errorf("ValidateDailyGoal() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
