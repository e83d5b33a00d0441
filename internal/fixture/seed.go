package fixture

import (
	"time"

	"github.com/fitai/fitai/internal/model"
)

// Seeded identities.
const (
	DemoUserID   = "user_001"
	DemoEmail    = "demo@fitai.com"
	DemoPassword = "demo123"
	DemoGoalID   = "goal_001"
)

type seedEntry struct {
	id       string
	daysAgo  int
	meal     model.MealType
	food     string
	calories float64
	protein  float64
	carbs    float64
	fat      float64
}

var seedEntries = []seedEntry{
	{"entry_001", 0, model.MealBreakfast, "Scrambled Eggs with Toast", 350, 20, 30, 15},
	{"entry_002", 0, model.MealBreakfast, "Greek Yogurt with Berries", 180, 15, 25, 5},
	{"entry_003", 0, model.MealLunch, "Grilled Chicken Salad", 450, 40, 20, 20},
	{"entry_004", 0, model.MealLunch, "Quinoa Bowl", 320, 12, 55, 8},
	{"entry_005", 0, model.MealSnack, "Apple with Almond Butter", 200, 5, 25, 10},
	{"entry_006", 0, model.MealDinner, "Salmon with Sweet Potato", 550, 45, 60, 18},
	{"entry_007", 0, model.MealDinner, "Steamed Broccoli", 50, 3, 8, 0},
	{"entry_008", 1, model.MealBreakfast, "Oatmeal with Banana", 300, 10, 55, 6},
	{"entry_009", 1, model.MealLunch, "Turkey Sandwich", 420, 30, 45, 12},
	{"entry_010", 2, model.MealBreakfast, "Smoothie Bowl", 280, 8, 50, 5},
}

// seed fills an empty store with the demo account, its goal and ten entries
// spread over today and the two previous days.
func (s *Store) seed() {
	now := s.now()
	today := model.CalendarDay(now.In(s.loc))

	s.users[DemoUserID] = DemoUser(now)

	deficit := 500
	s.goals[DemoUserID] = model.DailyGoal{
		ID:                 DemoGoalID,
		UserID:             DemoUserID,
		DailyCalorieGoal:   2000,
		DailyProteinGoal:   150,
		DailyCarbGoal:      200,
		DailyFatGoal:       65,
		CalorieDeficitGoal: &deficit,
		IsActive:           true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	for _, se := range seedEntries {
		date := today.AddDate(0, 0, -se.daysAgo)
		serving := "1 serving"
		notes := "AI analyzed"
		confidence := 0.92
		s.entries[DemoUserID] = append(s.entries[DemoUserID], model.FoodEntry{
			ID:           se.id,
			UserID:       DemoUserID,
			Date:         date,
			MealType:     se.meal,
			FoodName:     se.food,
			Calories:     se.calories,
			Protein:      se.protein,
			Carbs:        se.carbs,
			Fat:          se.fat,
			ServingSize:  &serving,
			AIAnalyzed:   true,
			AIConfidence: &confidence,
			Notes:        &notes,
			CreatedAt:    date,
			UpdatedAt:    date,
		})
	}
}

// DemoUser builds the demo account as of now.
func DemoUser(now time.Time) model.User {
	name := "Demo User"
	activity := "moderate"
	currentWeight, targetWeight, height := 75.0, 70.0, 175.0
	dob := now.AddDate(-30, 0, 0)
	return model.User{
		ID:            DemoUserID,
		Email:         DemoEmail,
		Name:          &name,
		CurrentWeight: &currentWeight,
		TargetWeight:  &targetWeight,
		Height:        &height,
		DateOfBirth:   &dob,
		ActivityLevel: &activity,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// entryDay is the calendar day an entry date names. Dates in CalendarDay
// form name their UTC day; any other instant is split at the store's
// midnight.
func (s *Store) entryDay(t time.Time) time.Time {
	if model.IsCalendarDay(t) {
		return t
	}
	return model.CalendarDay(t.In(s.loc))
}
