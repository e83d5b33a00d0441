// Package tracking computes daily totals and goal progress from loaded
// entries and goals. Every function is pure.
package tracking

import (
	"github.com/fitai/fitai/internal/model"
)

// CalculateDailyTotals sums the macros of entries, starting from zero.
func CalculateDailyTotals(entries []model.FoodEntry) model.MacroNutrients {
	total := model.ZeroMacros
	for i := range entries {
		total = total.Add(entries[i].Macros())
	}
	return total
}

// IsGoalAchieved reports whether totals reach the goal's calorie target.
// A nil goal is never achieved.
func IsGoalAchieved(totals model.MacroNutrients, goal *model.DailyGoal) bool {
	if goal == nil {
		return false
	}
	return totals.Calories >= float64(goal.DailyCalorieGoal)
}

// RemainingCalories is the calorie target minus consumed calories. It is
// negative once the target is exceeded, and 0 without a goal.
func RemainingCalories(totals model.MacroNutrients, goal *model.DailyGoal) float64 {
	if goal == nil {
		return 0
	}
	return float64(goal.DailyCalorieGoal) - totals.Calories
}

// CalorieProgress is consumed over target clamped to [0,1]. A nil goal or a
// non-positive target yields 0.
func CalorieProgress(totals model.MacroNutrients, goal *model.DailyGoal) float64 {
	if goal == nil || goal.DailyCalorieGoal <= 0 {
		return 0
	}
	return clamp01(totals.Calories / float64(goal.DailyCalorieGoal))
}

func clamp01(v float64) float64 {
	switch {
	case v != v, v < 0: // NaN or negative
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
