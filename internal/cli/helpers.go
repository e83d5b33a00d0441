package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/fitai/fitai/internal/codec"
	"github.com/fitai/fitai/internal/model"
)

// parseDateOrToday reads a --date value in local time; empty means today.
func parseDateOrToday(date string) (time.Time, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return time.Now(), nil
	}
	t, err := time.ParseInLocation(codec.DateLayout, date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", date)
	}
	return t, nil
}

func parseMealType(s string) (model.MealType, error) {
	m := model.MealType(strings.ToLower(strings.TrimSpace(s)))
	if !m.IsValid() {
		return "", fmt.Errorf("invalid --meal %q (expected breakfast, lunch, dinner or snack)", s)
	}
	return m, nil
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func optionalInt(v int, set bool) *int {
	if !set {
		return nil
	}
	return &v
}
