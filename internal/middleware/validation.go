package middleware

import (
	"errors"
	"math"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/fitai/fitai/internal/model"
)

// Validation limits for records accepted by the development server.
const (
	MaxIDLength          = 64
	MaxFoodNameLength    = 200
	MaxServingSizeLength = 100
	MaxNotesLength       = 2000
	MaxPhotoURLLength    = 2048
	MaxNutrientValue     = 100000
	MaxCalorieGoal       = 20000
)

// Validation errors.
var (
	ErrIDInvalid          = errors.New("id must be 1-64 letters, digits, '-' or '_'")
	ErrFoodNameRequired   = errors.New("food_name is required")
	ErrFoodNameTooLong    = errors.New("food_name exceeds maximum length")
	ErrServingSizeTooLong = errors.New("serving_size exceeds maximum length")
	ErrNotesTooLong       = errors.New("notes exceed maximum length")
	ErrNutrientOutOfRange = errors.New("nutrient values must be between 0 and 100000")
	ErrConfidenceRange    = errors.New("ai_confidence must be between 0 and 1")
	ErrPhotoURLInvalid    = errors.New("photo_url must be an absolute http(s) URL")
	ErrGoalOutOfRange     = errors.New("goal values out of range")
)

var validIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateID checks a record id taken from a path or body.
func ValidateID(id string) error {
	if id == "" || len(id) > MaxIDLength || !validIDPattern.MatchString(id) {
		return ErrIDInvalid
	}
	return nil
}

// ValidateFoodEntry checks the client-controlled fields of an entry.
func ValidateFoodEntry(e *model.FoodEntry) error {
	if err := ValidateID(e.ID); err != nil {
		return err
	}
	name := strings.TrimSpace(e.FoodName)
	if name == "" {
		return ErrFoodNameRequired
	}
	if utf8.RuneCountInString(name) > MaxFoodNameLength {
		return ErrFoodNameTooLong
	}
	if e.ServingSize != nil && utf8.RuneCountInString(*e.ServingSize) > MaxServingSizeLength {
		return ErrServingSizeTooLong
	}
	if e.Notes != nil && utf8.RuneCountInString(*e.Notes) > MaxNotesLength {
		return ErrNotesTooLong
	}
	for _, v := range []float64{e.Calories, e.Protein, e.Carbs, e.Fat} {
		if !inRange(v, 0, MaxNutrientValue) {
			return ErrNutrientOutOfRange
		}
	}
	if e.AIConfidence != nil && !inRange(*e.AIConfidence, 0, 1) {
		return ErrConfidenceRange
	}
	if e.PhotoURL != nil {
		if err := ValidatePhotoURL(*e.PhotoURL); err != nil {
			return err
		}
	}
	return nil
}

// ValidateDailyGoal checks the target values of a goal.
func ValidateDailyGoal(g *model.DailyGoal) error {
	if err := ValidateID(g.ID); err != nil {
		return err
	}
	if g.DailyCalorieGoal <= 0 || g.DailyCalorieGoal > MaxCalorieGoal {
		return ErrGoalOutOfRange
	}
	for _, v := range []int{g.DailyProteinGoal, g.DailyCarbGoal, g.DailyFatGoal} {
		if v < 0 || v > MaxNutrientValue {
			return ErrGoalOutOfRange
		}
	}
	for _, p := range []*int{g.CalorieDeficitGoal, g.CalorieSurplusGoal} {
		if p != nil && (*p < 0 || *p > MaxCalorieGoal) {
			return ErrGoalOutOfRange
		}
	}
	return nil
}

// ValidatePhotoURL accepts absolute http and https URLs only.
func ValidatePhotoURL(raw string) error {
	if len(raw) > MaxPhotoURLLength {
		return ErrPhotoURLInvalid
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return ErrPhotoURLInvalid
	}
	if scheme := strings.ToLower(u.Scheme); scheme != "http" && scheme != "https" {
		return ErrPhotoURLInvalid
	}
	return nil
}

func inRange(v, lo, hi float64) bool {
	return !math.IsNaN(v) && v >= lo && v <= hi
}
