package testutil

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fitai/fitai/internal/model"
)

// RequireEnv returns an environment variable or skips the test if missing.
func RequireEnv(t testing.TB, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("%s not set", key)
	}
	return value
}

// FlushRedis clears the current Redis database.
func FlushRedis(ctx context.Context, client *redis.Client) error {
	return client.FlushDB(ctx).Err()
}

// ============================================================================
// Test Data Factories
// ============================================================================

// NewTestUser creates a test user with sensible defaults.
func NewTestUser(t testing.TB, email string) *model.User {
	t.Helper()
	now := time.Now().UTC()
	name := "Test User"
	return &model.User{
		ID:        UniqueID("user"),
		Email:     email,
		Name:      &name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewTestFoodEntry creates a food entry for userID dated today.
func NewTestFoodEntry(t testing.TB, userID string, meal model.MealType, calories float64) *model.FoodEntry {
	t.Helper()
	now := time.Now().UTC()
	return &model.FoodEntry{
		ID:        UniqueID("entry"),
		UserID:    userID,
		Date:      model.CalendarDay(now),
		MealType:  meal,
		FoodName:  "Test Food",
		Calories:  calories,
		Protein:   calories / 20,
		Carbs:     calories / 10,
		Fat:       calories / 40,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewTestFoodEntryOn creates a food entry dated on the given day.
func NewTestFoodEntryOn(t testing.TB, userID string, date time.Time) *model.FoodEntry {
	t.Helper()
	entry := NewTestFoodEntry(t, userID, model.MealLunch, 400)
	entry.Date = date
	return entry
}

// NewTestGoal creates an active goal with the given calorie target.
func NewTestGoal(t testing.TB, userID string, calories int) *model.DailyGoal {
	t.Helper()
	now := time.Now().UTC()
	return &model.DailyGoal{
		ID:               UniqueID("goal"),
		UserID:           userID,
		DailyCalorieGoal: calories,
		DailyProteinGoal: 150,
		DailyCarbGoal:    200,
		DailyFatGoal:     65,
		IsActive:         true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

var seq atomic.Uint64

// UniqueEmail generates a unique email address for tests.
func UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%d-%d@example.com", prefix, time.Now().UnixNano(), seq.Add(1))
}

// UniqueID generates a unique ID for tests.
func UniqueID(prefix string) string {
	return fmt.Sprintf("%s-%d-%d", prefix, time.Now().UnixNano(), seq.Add(1))
}
