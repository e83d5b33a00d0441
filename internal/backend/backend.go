// Package backend defines the data operations shared by the in-memory
// fixture and the remote REST API, and selects one of them at startup.
package backend

import (
	"context"
	"log/slog"
	"time"

	"github.com/fitai/fitai/internal/fixture"
	"github.com/fitai/fitai/internal/model"
	"github.com/fitai/fitai/internal/transport"
)

// Backend is the capability set over users, food entries and goals.
// Implementations never branch on mode; the choice is made by New.
type Backend interface {
	SignUp(ctx context.Context, req model.SignUpRequest) (*model.AuthResponse, error)
	SignIn(ctx context.Context, req model.SignInRequest) (*model.AuthResponse, error)

	GetUser(ctx context.Context, id string) (*model.User, error)
	UpdateUser(ctx context.Context, user *model.User) (*model.User, error)

	GetFoodEntries(ctx context.Context, date time.Time) ([]model.FoodEntry, error)
	CreateFoodEntry(ctx context.Context, entry *model.FoodEntry) (*model.FoodEntry, error)
	UpdateFoodEntry(ctx context.Context, entry *model.FoodEntry) (*model.FoodEntry, error)
	DeleteFoodEntry(ctx context.Context, entry *model.FoodEntry) error

	GetActiveGoal(ctx context.Context) (*model.DailyGoal, error)
	CreateGoal(ctx context.Context, goal *model.DailyGoal) (*model.DailyGoal, error)
	UpdateGoal(ctx context.Context, goal *model.DailyGoal) (*model.DailyGoal, error)
}

// Session is the signed-in state a backend reads. *session.Store satisfies it.
type Session interface {
	CurrentUserID(ctx context.Context) string
	AuthHeaders(ctx context.Context) map[string]string
}

// Deps carries the collaborators for both implementations. Only the fields
// the selected implementation needs must be set.
type Deps struct {
	Fixture *fixture.Store
	Client  *transport.Client
	Session Session
	Logger  *slog.Logger
	Now     func() time.Time
}

// New returns a Local backend when mock is true, otherwise a Remote one.
func New(mock bool, deps Deps) Backend {
	if mock {
		return NewLocal(deps.Fixture, deps.Session, deps.Logger, deps.Now)
	}
	return NewRemote(deps.Client, deps.Session)
}

var (
	_ Backend = (*Local)(nil)
	_ Backend = (*Remote)(nil)
)
