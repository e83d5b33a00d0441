package backend

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/fitai/fitai/internal/fixture"
	"github.com/fitai/fitai/internal/model"
)

// mockTokenPrefix marks tokens minted without a server.
const mockTokenPrefix = "mock_token_"

// Local serves every operation from a fixture store. It never returns an
// error. Calls scoped to "the current user" read the id from the session
// and return empty results when nobody is signed in.
type Local struct {
	store   *fixture.Store
	session Session
	logger  *slog.Logger
	now     func() time.Time
}

// NewLocal creates a Local backend. A nil logger or clock falls back to the
// defaults.
func NewLocal(store *fixture.Store, session Session, logger *slog.Logger, now func() time.Time) *Local {
	if logger == nil {
		logger = slog.Default()
	}
	if now == nil {
		now = time.Now
	}
	return &Local{
		store:   store,
		session: session,
		logger:  logger.With("component", "backend.local"),
		now:     now,
	}
}

// SignUp synthesizes a new account. Credentials are not checked or stored.
func (l *Local) SignUp(_ context.Context, req model.SignUpRequest) (*model.AuthResponse, error) {
	now := l.now()
	name := "New User"
	if req.Name != nil {
		name = *req.Name
	}
	user := model.User{
		ID:        uuid.NewString(),
		Email:     req.Email,
		Name:      &name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return &model.AuthResponse{User: user, Token: mockTokenPrefix + uuid.NewString()}, nil
}

// SignIn accepts any credentials. The demo email resolves to the seeded
// account; any other email yields a fresh account named after the email's
// local part.
func (l *Local) SignIn(_ context.Context, req model.SignInRequest) (*model.AuthResponse, error) {
	now := l.now()

	var user model.User
	if req.Email == fixture.DemoEmail {
		if u := l.store.GetUserByEmail(req.Email); u != nil {
			user = *u
		} else {
			user = fixture.DemoUser(now)
		}
	} else {
		name := nameFromEmail(req.Email)
		user = model.User{
			ID:        uuid.NewString(),
			Email:     req.Email,
			Name:      &name,
			CreatedAt: now,
			UpdatedAt: now,
		}
	}

	return &model.AuthResponse{User: user, Token: mockTokenPrefix + user.ID}, nil
}

// GetUser returns the stored user, or nil.
func (l *Local) GetUser(_ context.Context, id string) (*model.User, error) {
	return l.store.GetUserByID(id), nil
}

// UpdateUser stores user, inserting it if unknown.
func (l *Local) UpdateUser(_ context.Context, user *model.User) (*model.User, error) {
	return l.store.UpdateUser(user), nil
}

// GetFoodEntries returns the current user's entries for date's calendar day.
func (l *Local) GetFoodEntries(ctx context.Context, date time.Time) ([]model.FoodEntry, error) {
	userID := l.session.CurrentUserID(ctx)
	if userID == "" {
		return []model.FoodEntry{}, nil
	}
	return l.store.GetFoodEntries(userID, date), nil
}

// CreateFoodEntry appends entry to its user's list.
func (l *Local) CreateFoodEntry(_ context.Context, entry *model.FoodEntry) (*model.FoodEntry, error) {
	return l.store.CreateFoodEntry(entry), nil
}

// UpdateFoodEntry replaces the entry with the same id. An unknown id is a
// no-op that still returns entry.
func (l *Local) UpdateFoodEntry(_ context.Context, entry *model.FoodEntry) (*model.FoodEntry, error) {
	result, found := l.store.UpdateFoodEntry(entry)
	if !found {
		l.logger.Debug("update of unknown food entry ignored", "entry_id", entry.ID, "user_id", entry.UserID)
	}
	return result, nil
}

// DeleteFoodEntry removes entries with entry's id. An unknown id is a no-op.
func (l *Local) DeleteFoodEntry(_ context.Context, entry *model.FoodEntry) error {
	if !l.store.DeleteFoodEntry(entry) {
		l.logger.Debug("delete of unknown food entry ignored", "entry_id", entry.ID, "user_id", entry.UserID)
	}
	return nil
}

// GetActiveGoal returns the current user's goal, or nil.
func (l *Local) GetActiveGoal(ctx context.Context) (*model.DailyGoal, error) {
	userID := l.session.CurrentUserID(ctx)
	if userID == "" {
		return nil, nil
	}
	return l.store.GetActiveGoal(userID), nil
}

// CreateGoal replaces the goal of goal.UserID.
func (l *Local) CreateGoal(_ context.Context, goal *model.DailyGoal) (*model.DailyGoal, error) {
	return l.store.CreateGoal(goal), nil
}

// UpdateGoal replaces the goal of goal.UserID.
func (l *Local) UpdateGoal(_ context.Context, goal *model.DailyGoal) (*model.DailyGoal, error) {
	return l.store.UpdateGoal(goal), nil
}

// nameFromEmail title-cases the part of email before '@', e.g.
// "jane.doe@x.io" becomes "Jane.Doe".
func nameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	if local == "" {
		return "User"
	}

	var b strings.Builder
	startOfWord := true
	for _, r := range local {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			b.WriteRune(r)
			startOfWord = true
		case startOfWord:
			b.WriteRune(unicode.ToUpper(r))
			startOfWord = false
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
