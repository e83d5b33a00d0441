package model

import "time"

// DailyGoal is a user's daily nutrient target configuration.
// Callers assume a single active goal per user.
type DailyGoal struct {
	ID                 string
	UserID             string
	DailyCalorieGoal   int
	DailyProteinGoal   int
	DailyCarbGoal      int
	DailyFatGoal       int
	CalorieDeficitGoal *int
	CalorieSurplusGoal *int
	IsActive           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Targets returns the goal's targets as a MacroNutrients value.
func (g *DailyGoal) Targets() MacroNutrients {
	return MacroNutrients{
		Calories: float64(g.DailyCalorieGoal),
		Protein:  float64(g.DailyProteinGoal),
		Carbs:    float64(g.DailyCarbGoal),
		Fat:      float64(g.DailyFatGoal),
	}
}
