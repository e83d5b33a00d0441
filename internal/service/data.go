// Package service is the call surface for user, food entry and goal
// operations. It delegates to a backend.Backend chosen at startup and never
// translates backend failures.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/fitai/fitai/internal/backend"
	"github.com/fitai/fitai/internal/codec"
	"github.com/fitai/fitai/internal/metrics"
	"github.com/fitai/fitai/internal/model"
	"github.com/fitai/fitai/internal/tracking"
	"github.com/fitai/fitai/internal/transport"
)

// Service errors.
var (
	ErrNotSignedIn      = errors.New("not signed in")
	ErrInvalidMealType  = errors.New("invalid meal type")
	ErrEmptyFoodName    = errors.New("food name is required")
	ErrNegativeNutrient = errors.New("nutrient values must not be negative")
	ErrInvalidGoal      = errors.New("calorie goal must be positive and macro goals non-negative")
)

// CurrentUser reports who is signed in. *session.Store satisfies it.
type CurrentUser interface {
	CurrentUser(ctx context.Context) *model.User
}

// DataService handles data access for the signed-in user.
type DataService struct {
	backend backend.Backend
	users   CurrentUser
	metrics metrics.Recorder
	logger  *slog.Logger
	now     func() time.Time
}

// NewDataService creates a new DataService.
func NewDataService(b backend.Backend, users CurrentUser, recorder metrics.Recorder, logger *slog.Logger) *DataService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &DataService{
		backend: b,
		users:   users,
		metrics: recorder,
		logger:  logger.With("component", "service.data"),
		now:     time.Now,
	}
}

// observe runs fn as operation op and records its outcome. err is returned
// unchanged.
func observe[T any](rec metrics.Recorder, logger *slog.Logger, op string, fn func() (T, error)) (T, error) {
	start := time.Now()
	rec.IncOperation(op)
	v, err := fn()
	rec.ObserveOperationDuration(op, time.Since(start))
	if err != nil {
		kind := transport.Kind(err)
		rec.IncOperationFailure(op, kind)
		logger.Debug("operation failed", "op", op, "kind", kind, "error", err)
	}
	return v, err
}

// GetUser fetches a user by id. A nil user with a nil error means the id is
// unknown to the fixture backend.
func (s *DataService) GetUser(ctx context.Context, id string) (*model.User, error) {
	return observe(s.metrics, s.logger, "users.get", func() (*model.User, error) {
		return s.backend.GetUser(ctx, id)
	})
}

// UpdateUser saves a user profile.
func (s *DataService) UpdateUser(ctx context.Context, user *model.User) (*model.User, error) {
	return observe(s.metrics, s.logger, "users.update", func() (*model.User, error) {
		return s.backend.UpdateUser(ctx, user)
	})
}

// GetFoodEntries lists the signed-in user's entries for date's calendar day.
func (s *DataService) GetFoodEntries(ctx context.Context, date time.Time) ([]model.FoodEntry, error) {
	return observe(s.metrics, s.logger, "food_entries.list", func() ([]model.FoodEntry, error) {
		return s.backend.GetFoodEntries(ctx, date)
	})
}

// CreateFoodEntry stores a new entry. The caller supplies the id.
func (s *DataService) CreateFoodEntry(ctx context.Context, entry *model.FoodEntry) (*model.FoodEntry, error) {
	return observe(s.metrics, s.logger, "food_entries.create", func() (*model.FoodEntry, error) {
		return s.backend.CreateFoodEntry(ctx, entry)
	})
}

// UpdateFoodEntry replaces an entry.
func (s *DataService) UpdateFoodEntry(ctx context.Context, entry *model.FoodEntry) (*model.FoodEntry, error) {
	return observe(s.metrics, s.logger, "food_entries.update", func() (*model.FoodEntry, error) {
		return s.backend.UpdateFoodEntry(ctx, entry)
	})
}

// DeleteFoodEntry removes an entry.
func (s *DataService) DeleteFoodEntry(ctx context.Context, entry *model.FoodEntry) error {
	_, err := observe(s.metrics, s.logger, "food_entries.delete", func() (struct{}, error) {
		return struct{}{}, s.backend.DeleteFoodEntry(ctx, entry)
	})
	return err
}

// GetActiveGoal returns the signed-in user's goal, or nil when there is none.
func (s *DataService) GetActiveGoal(ctx context.Context) (*model.DailyGoal, error) {
	return observe(s.metrics, s.logger, "goals.active", func() (*model.DailyGoal, error) {
		return s.backend.GetActiveGoal(ctx)
	})
}

// CreateGoal stores a goal. The caller supplies the id.
func (s *DataService) CreateGoal(ctx context.Context, goal *model.DailyGoal) (*model.DailyGoal, error) {
	return observe(s.metrics, s.logger, "goals.create", func() (*model.DailyGoal, error) {
		return s.backend.CreateGoal(ctx, goal)
	})
}

// UpdateGoal replaces a goal.
func (s *DataService) UpdateGoal(ctx context.Context, goal *model.DailyGoal) (*model.DailyGoal, error) {
	return observe(s.metrics, s.logger, "goals.update", func() (*model.DailyGoal, error) {
		return s.backend.UpdateGoal(ctx, goal)
	})
}

// LogFoodInput defines input for logging a food entry.
type LogFoodInput struct {
	Date        time.Time // zero means today
	MealType    model.MealType
	FoodName    string
	Calories    float64
	Protein     float64
	Carbs       float64
	Fat         float64
	ServingSize *string
	PhotoURL    *string
	Notes       *string
}

// LogFood validates input, builds an entry for the signed-in user and
// creates it.
func (s *DataService) LogFood(ctx context.Context, input LogFoodInput) (*model.FoodEntry, error) {
	user := s.users.CurrentUser(ctx)
	if user == nil {
		return nil, ErrNotSignedIn
	}

	if !input.MealType.IsValid() {
		return nil, ErrInvalidMealType
	}
	name := strings.TrimSpace(input.FoodName)
	if name == "" {
		return nil, ErrEmptyFoodName
	}
	if input.Calories < 0 || input.Protein < 0 || input.Carbs < 0 || input.Fat < 0 {
		return nil, ErrNegativeNutrient
	}

	now := s.now()
	date := input.Date
	if date.IsZero() {
		date = now
	}
	date = calendarDay(date)

	entry := &model.FoodEntry{
		ID:          ulid.Make().String(),
		UserID:      user.ID,
		Date:        date,
		MealType:    input.MealType,
		FoodName:    name,
		Calories:    input.Calories,
		Protein:     input.Protein,
		Carbs:       input.Carbs,
		Fat:         input.Fat,
		ServingSize: input.ServingSize,
		PhotoURL:    input.PhotoURL,
		Notes:       input.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return s.CreateFoodEntry(ctx, entry)
}

// LogAnalysis creates an AI-analysed entry from a photo analysis result.
func (s *DataService) LogAnalysis(ctx context.Context, result *model.FoodAnalysisResult, meal model.MealType, date time.Time) (*model.FoodEntry, error) {
	user := s.users.CurrentUser(ctx)
	if user == nil {
		return nil, ErrNotSignedIn
	}
	if !meal.IsValid() {
		return nil, ErrInvalidMealType
	}

	now := s.now()
	if date.IsZero() {
		date = now
	}
	entry := result.ToFoodEntry(ulid.Make().String(), user.ID, calendarDay(date), meal, now)
	return s.CreateFoodEntry(ctx, &entry)
}

// FindFoodEntry returns the entry with id logged on date's day, or nil.
func (s *DataService) FindFoodEntry(ctx context.Context, date time.Time, id string) (*model.FoodEntry, error) {
	entries, err := s.GetFoodEntries(ctx, date)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		if entries[i].ID == id {
			return &entries[i], nil
		}
	}
	return nil, nil
}

// SetGoalInput defines input for setting the daily goal.
type SetGoalInput struct {
	DailyCalorieGoal   int
	DailyProteinGoal   int
	DailyCarbGoal      int
	DailyFatGoal       int
	CalorieDeficitGoal *int
	CalorieSurplusGoal *int
}

// SetGoal replaces the signed-in user's goal. An existing goal keeps its id
// and is updated; otherwise a new goal is created.
func (s *DataService) SetGoal(ctx context.Context, input SetGoalInput) (*model.DailyGoal, error) {
	user := s.users.CurrentUser(ctx)
	if user == nil {
		return nil, ErrNotSignedIn
	}
	if input.DailyCalorieGoal <= 0 || input.DailyProteinGoal < 0 || input.DailyCarbGoal < 0 || input.DailyFatGoal < 0 {
		return nil, ErrInvalidGoal
	}

	existing, err := s.GetActiveGoal(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	goal := &model.DailyGoal{
		ID:                 ulid.Make().String(),
		UserID:             user.ID,
		DailyCalorieGoal:   input.DailyCalorieGoal,
		DailyProteinGoal:   input.DailyProteinGoal,
		DailyCarbGoal:      input.DailyCarbGoal,
		DailyFatGoal:       input.DailyFatGoal,
		CalorieDeficitGoal: input.CalorieDeficitGoal,
		CalorieSurplusGoal: input.CalorieSurplusGoal,
		IsActive:           true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if existing != nil {
		goal.ID = existing.ID
		goal.CreatedAt = existing.CreatedAt
		return s.UpdateGoal(ctx, goal)
	}
	return s.CreateGoal(ctx, goal)
}

// DailyReport is one day's entries with their summary.
type DailyReport struct {
	Date    string
	Entries []model.FoodEntry
	Goal    *model.DailyGoal
	Summary tracking.Summary
}

// DailyReport loads entries and the active goal for date and summarizes them.
func (s *DataService) DailyReport(ctx context.Context, date time.Time) (*DailyReport, error) {
	entries, err := s.GetFoodEntries(ctx, date)
	if err != nil {
		return nil, err
	}
	goal, err := s.GetActiveGoal(ctx)
	if err != nil {
		return nil, err
	}
	return &DailyReport{
		Date:    date.Format(codec.DateLayout),
		Entries: entries,
		Goal:    goal,
		Summary: tracking.Summarize(entries, goal),
	}, nil
}

// calendarDay keeps the caller's calendar day and drops the time of day.
func calendarDay(t time.Time) time.Time {
	return model.CalendarDay(t)
}
