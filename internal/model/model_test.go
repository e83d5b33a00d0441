package model

import (
	"testing"
	"time"
)

func TestMealType_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		meal MealType
		want bool
	}{
		{MealBreakfast, true},
		{MealLunch, true},
		{MealDinner, true},
		{MealSnack, true},
		{"brunch", false},
		{"Breakfast", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := tt.meal.IsValid(); got != tt.want {
			t.Errorf("MealType(%q).IsValid() = %v, want %v", tt.meal, got, tt.want)
		}
	}
}

func TestMealType_DisplayName(t *testing.T) {
	t.Parallel()

	if got := MealSnack.DisplayName(); got != "Snack" {
		t.Errorf("DisplayName = %q, want Snack", got)
	}
	if got := MealType("").DisplayName(); got != "" {
		t.Errorf("empty DisplayName = %q, want empty", got)
	}
}

func TestMacroNutrients_AddAndZero(t *testing.T) {
	t.Parallel()

	a := MacroNutrients{Calories: 350, Protein: 20, Carbs: 30, Fat: 15}
	b := MacroNutrients{Calories: 180, Protein: 15, Carbs: 25, Fat: 5}

	sum := a.Add(b)
	want := MacroNutrients{Calories: 530, Protein: 35, Carbs: 55, Fat: 20}
	if sum != want {
		t.Errorf("Add = %+v, want %+v", sum, want)
	}
	if a.Add(ZeroMacros) != a {
		t.Error("adding zero should be the identity")
	}
	if sum.Sub(b) != a {
		t.Errorf("Sub = %+v, want %+v", sum.Sub(b), a)
	}
}

func TestFoodAnalysisResult_ToFoodEntry(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	result := &FoodAnalysisResult{FoodName: "Ramen", Calories: 600, Protein: 25, Carbs: 80, Fat: 20, Confidence: 0.8}

	entry := result.ToFoodEntry("e1", "u1", now, MealDinner, now)

	if !entry.AIAnalyzed {
		t.Error("AIAnalyzed should be true")
	}
	if entry.AIConfidence == nil || *entry.AIConfidence != 0.8 {
		t.Errorf("AIConfidence = %v, want 0.8", entry.AIConfidence)
	}
	if entry.Macros() != (MacroNutrients{Calories: 600, Protein: 25, Carbs: 80, Fat: 20}) {
		t.Errorf("Macros = %+v", entry.Macros())
	}
}

func TestUser_DisplayName(t *testing.T) {
	t.Parallel()

	u := &User{Email: "a@b.c"}
	if u.DisplayName() != "a@b.c" {
		t.Errorf("DisplayName = %q, want email fallback", u.DisplayName())
	}
	name := "Ann"
	u.Name = &name
	if u.DisplayName() != "Ann" {
		t.Errorf("DisplayName = %q, want Ann", u.DisplayName())
	}
}
