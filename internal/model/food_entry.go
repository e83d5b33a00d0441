package model

import (
	"strings"
	"time"
)

// MealType is the meal slot a food entry belongs to.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// MealTypes lists every known meal type in display order.
var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

// IsValid checks if the meal type is one of the known tokens.
func (m MealType) IsValid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// DisplayName returns the capitalized meal type.
func (m MealType) DisplayName() string {
	if m == "" {
		return ""
	}
	return strings.ToUpper(string(m[:1])) + string(m[1:])
}

// CalendarDay returns midnight UTC of t's calendar day as seen in t's own
// location. FoodEntry dates are stored in this form.
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsCalendarDay reports whether t is already in CalendarDay form.
func IsCalendarDay(t time.Time) bool {
	if t.Location() != time.UTC {
		return false
	}
	h, m, s := t.Clock()
	return h == 0 && m == 0 && s == 0 && t.Nanosecond() == 0
}

// FoodEntry represents a logged meal item.
// Date carries only a calendar day, normally in CalendarDay form.
type FoodEntry struct {
	ID           string
	UserID       string
	Date         time.Time
	MealType     MealType
	FoodName     string
	Calories     float64
	Protein      float64
	Carbs        float64
	Fat          float64
	ServingSize  *string
	PhotoURL     *string
	AIAnalyzed   bool
	AIConfidence *float64
	Notes        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Macros returns the entry's nutrients as a MacroNutrients value.
func (e *FoodEntry) Macros() MacroNutrients {
	return MacroNutrients{
		Calories: e.Calories,
		Protein:  e.Protein,
		Carbs:    e.Carbs,
		Fat:      e.Fat,
	}
}
