package backend

import (
	"context"
	"net/url"
	"time"

	"github.com/fitai/fitai/internal/codec"
	"github.com/fitai/fitai/internal/model"
	"github.com/fitai/fitai/internal/transport"
)

// REST paths of the remote API.
const (
	pathSignUp      = "/auth/signup"
	pathSignIn      = "/auth/signin"
	pathUsers       = "/users/"
	pathFoodEntries = "/food-entries"
	pathGoals       = "/goals"
	pathActiveGoal  = "/goals/active"
)

// Remote calls the REST API and attaches the session's bearer header to
// every authenticated call. Failures propagate untranslated.
type Remote struct {
	client  *transport.Client
	session Session
}

// NewRemote creates a Remote backend.
func NewRemote(client *transport.Client, session Session) *Remote {
	return &Remote{client: client, session: session}
}

func (r *Remote) headers(ctx context.Context) map[string]string {
	return r.session.AuthHeaders(ctx)
}

// SignUp posts to /auth/signup.
func (r *Remote) SignUp(ctx context.Context, req model.SignUpRequest) (*model.AuthResponse, error) {
	return transport.Post(ctx, r.client, pathSignUp, req, nil, codec.DecodeAuthResponse)
}

// SignIn posts to /auth/signin.
func (r *Remote) SignIn(ctx context.Context, req model.SignInRequest) (*model.AuthResponse, error) {
	return transport.Post(ctx, r.client, pathSignIn, req, nil, codec.DecodeAuthResponse)
}

// GetUser fetches /users/{id}.
func (r *Remote) GetUser(ctx context.Context, id string) (*model.User, error) {
	return transport.Get(ctx, r.client, pathUsers+url.PathEscape(id), r.headers(ctx), codec.DecodeUser)
}

// UpdateUser puts to /users/{id}.
func (r *Remote) UpdateUser(ctx context.Context, user *model.User) (*model.User, error) {
	return transport.Put(ctx, r.client, pathUsers+url.PathEscape(user.ID), user, r.headers(ctx), codec.DecodeUser)
}

// GetFoodEntries fetches /food-entries?date=YYYY-MM-DD for date's calendar
// day in date's own location, the same day LogFood stores.
func (r *Remote) GetFoodEntries(ctx context.Context, date time.Time) ([]model.FoodEntry, error) {
	q := url.Values{"date": {codec.FormatDate(model.CalendarDay(date))}}
	return transport.Get(ctx, r.client, pathFoodEntries+"?"+q.Encode(), r.headers(ctx), codec.DecodeFoodEntries)
}

// CreateFoodEntry posts to /food-entries.
func (r *Remote) CreateFoodEntry(ctx context.Context, entry *model.FoodEntry) (*model.FoodEntry, error) {
	return transport.Post(ctx, r.client, pathFoodEntries, entry, r.headers(ctx), codec.DecodeFoodEntry)
}

// UpdateFoodEntry puts to /food-entries/{id}.
func (r *Remote) UpdateFoodEntry(ctx context.Context, entry *model.FoodEntry) (*model.FoodEntry, error) {
	return transport.Put(ctx, r.client, entryPath(entry.ID), entry, r.headers(ctx), codec.DecodeFoodEntry)
}

// DeleteFoodEntry deletes /food-entries/{id}.
func (r *Remote) DeleteFoodEntry(ctx context.Context, entry *model.FoodEntry) error {
	return transport.Delete(ctx, r.client, entryPath(entry.ID), r.headers(ctx))
}

// GetActiveGoal fetches /goals/active. A null body means no goal.
func (r *Remote) GetActiveGoal(ctx context.Context) (*model.DailyGoal, error) {
	return transport.Get(ctx, r.client, pathActiveGoal, r.headers(ctx), codec.DecodeOptionalDailyGoal)
}

// CreateGoal posts to /goals.
func (r *Remote) CreateGoal(ctx context.Context, goal *model.DailyGoal) (*model.DailyGoal, error) {
	return transport.Post(ctx, r.client, pathGoals, goal, r.headers(ctx), codec.DecodeDailyGoal)
}

// UpdateGoal puts to /goals/{id}.
func (r *Remote) UpdateGoal(ctx context.Context, goal *model.DailyGoal) (*model.DailyGoal, error) {
	return transport.Put(ctx, r.client, pathGoals+"/"+url.PathEscape(goal.ID), goal, r.headers(ctx), codec.DecodeDailyGoal)
}

func entryPath(id string) string {
	return pathFoodEntries + "/" + url.PathEscape(id)
}
