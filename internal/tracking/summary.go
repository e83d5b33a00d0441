package tracking

import (
	"github.com/fitai/fitai/internal/model"
)

// Summary is a day's intake measured against the active goal.
type Summary struct {
	Totals    model.MacroNutrients `json:"totals"`
	HasGoal   bool                 `json:"has_goal"`
	Targets   model.MacroNutrients `json:"targets"`
	Remaining model.MacroNutrients `json:"remaining"`
	Achieved  bool                 `json:"achieved"`
	Progress  float64              `json:"progress"`
	ByMeal    []MealTotal          `json:"by_meal"`
}

// MealTotal is the intake for one meal type.
type MealTotal struct {
	MealType model.MealType       `json:"meal_type"`
	Entries  int                  `json:"entries"`
	Totals   model.MacroNutrients `json:"totals"`
}

// Summarize builds a Summary. With a nil goal, targets and remaining are zero.
func Summarize(entries []model.FoodEntry, goal *model.DailyGoal) Summary {
	totals := CalculateDailyTotals(entries)
	s := Summary{
		Totals:   totals,
		Achieved: IsGoalAchieved(totals, goal),
		Progress: CalorieProgress(totals, goal),
		ByMeal:   TotalsByMeal(entries),
	}
	if goal != nil {
		s.HasGoal = true
		s.Targets = goal.Targets()
		s.Remaining = s.Targets.Sub(totals)
	}
	return s
}

// TotalsByMeal groups entries by meal type, in breakfast, lunch, dinner,
// snack order. Meal types with no entries are included with zero totals.
func TotalsByMeal(entries []model.FoodEntry) []MealTotal {
	result := make([]MealTotal, len(model.MealTypes))
	index := make(map[model.MealType]int, len(model.MealTypes))
	for i, m := range model.MealTypes {
		result[i] = MealTotal{MealType: m}
		index[m] = i
	}
	for j := range entries {
		i, ok := index[entries[j].MealType]
		if !ok {
			continue
		}
		result[i].Entries++
		result[i].Totals = result[i].Totals.Add(entries[j].Macros())
	}
	return result
}
