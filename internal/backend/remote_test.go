package backend

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fitai/fitai/internal/codec"
	"github.com/fitai/fitai/internal/model"
	"github.com/fitai/fitai/internal/transport"
)

type call struct {
	method string
	uri    string
	auth   string
	body   string
}

// recordingServer answers every request with the canned body for its
// "METHOD /path" key and records what it saw.
func recordingServer(t *testing.T, responses map[string]string) (*httptest.Server, <-chan call) {
	t.Helper()

	calls := make(chan call, 16)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		calls <- call{method: r.Method, uri: r.URL.RequestURI(), auth: r.Header.Get("Authorization"), body: string(data)}

		body, ok := responses[r.Method+" "+r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if body == "" {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, calls
}

func mustEncode(t *testing.T, v any) string {
	t.Helper()
	data, err := codec.Marshal(v)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	return string(data)
}

func sampleEntry() *model.FoodEntry {
	return &model.FoodEntry{
		ID: "entry_001", UserID: "user_001", Date: testNow, MealType: model.MealLunch, FoodName: "Salad",
		Calories: 450, Protein: 40, Carbs: 20, Fat: 20, CreatedAt: testNow, UpdatedAt: testNow,
	}
}

func sampleGoal() *model.DailyGoal {
	return &model.DailyGoal{
		ID: "goal_001", UserID: "user_001", DailyCalorieGoal: 2000, DailyProteinGoal: 150,
		DailyCarbGoal: 200, DailyFatGoal: 65, IsActive: true, CreatedAt: testNow, UpdatedAt: testNow,
	}
}

func TestRemote_EndpointsAndAuth(t *testing.T) {
	t.Parallel()

	entry := sampleEntry()
	goal := sampleGoal()
	user := &model.User{ID: "user_001", Email: "demo@fitai.com", CreatedAt: testNow, UpdatedAt: testNow}

	srv, calls := recordingServer(t, map[string]string{
		"GET /users/user_001":            mustEncode(t, user),
		"PUT /users/user_001":            mustEncode(t, user),
		"GET /food-entries":              mustEncode(t, []model.FoodEntry{*entry}),
		"POST /food-entries":             mustEncode(t, entry),
		"PUT /food-entries/entry_001":    mustEncode(t, entry),
		"DELETE /food-entries/entry_001": "",
		"GET /goals/active":              mustEncode(t, goal),
		"POST /goals":                    mustEncode(t, goal),
		"PUT /goals/goal_001":            mustEncode(t, goal),
	})

	r := NewRemote(transport.New(srv.URL), &fakeSession{token: "tok"})
	ctx := context.Background()

	tests := []struct {
		name   string
		run    func() error
		method string
		uri    string
	}{
		{"get user", func() error { _, err := r.GetUser(ctx, "user_001"); return err }, "GET", "/users/user_001"},
		{"update user", func() error { _, err := r.UpdateUser(ctx, user); return err }, "PUT", "/users/user_001"},
		{"list entries", func() error {
			got, err := r.GetFoodEntries(ctx, time.Date(2024, 5, 1, 23, 0, 0, 0, time.UTC))
			if err == nil && len(got) != 1 {
				return errors.New("expected one entry")
			}
			return err
		}, "GET", "/food-entries?date=2024-05-01"},
		{"list entries east of utc", func() error {
			_, err := r.GetFoodEntries(ctx, time.Date(2024, 5, 1, 8, 30, 0, 0, time.FixedZone("UTC+9", 9*60*60)))
			return err
		}, "GET", "/food-entries?date=2024-05-01"},
		{"create entry", func() error { _, err := r.CreateFoodEntry(ctx, entry); return err }, "POST", "/food-entries"},
		{"update entry", func() error { _, err := r.UpdateFoodEntry(ctx, entry); return err }, "PUT", "/food-entries/entry_001"},
		{"delete entry", func() error { return r.DeleteFoodEntry(ctx, entry) }, "DELETE", "/food-entries/entry_001"},
		{"active goal", func() error {
			got, err := r.GetActiveGoal(ctx)
			if err == nil && got.DailyCalorieGoal != 2000 {
				return errors.New("wrong goal")
			}
			return err
		}, "GET", "/goals/active"},
		{"create goal", func() error { _, err := r.CreateGoal(ctx, goal); return err }, "POST", "/goals"},
		{"update goal", func() error { _, err := r.UpdateGoal(ctx, goal); return err }, "PUT", "/goals/goal_001"},
	}

	// Sequential: the recorder channel is shared.
	for _, tt := range tests {
		if err := tt.run(); err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		c := <-calls
		if c.method != tt.method || c.uri != tt.uri {
			t.Errorf("%s: request = %s %s, want %s %s", tt.name, c.method, c.uri, tt.method, tt.uri)
		}
		if c.auth != "Bearer tok" {
			t.Errorf("%s: Authorization = %q", tt.name, c.auth)
		}
	}
}

func TestRemote_SignInSendsCredentialsWithoutAuth(t *testing.T) {
	t.Parallel()

	resp := &model.AuthResponse{
		User:  model.User{ID: "user_001", Email: "demo@fitai.com", CreatedAt: testNow, UpdatedAt: testNow},
		Token: "server-token",
	}
	srv, calls := recordingServer(t, map[string]string{
		"POST /auth/signin": mustEncode(t, resp),
		"POST /auth/signup": mustEncode(t, resp),
	})

	r := NewRemote(transport.New(srv.URL), &fakeSession{token: "stale"})

	got, err := r.SignIn(context.Background(), model.SignInRequest{Email: "demo@fitai.com", Password: "demo123"})
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if got.Token != "server-token" || got.User.ID != "user_001" {
		t.Errorf("SignIn = %+v", got)
	}
	c := <-calls
	if c.auth != "" {
		t.Errorf("sign-in should not send Authorization, got %q", c.auth)
	}
	if !strings.Contains(c.body, `"email":"demo@fitai.com"`) || !strings.Contains(c.body, `"password":"demo123"`) {
		t.Errorf("sign-in body = %s", c.body)
	}

	if _, err := r.SignUp(context.Background(), model.SignUpRequest{Email: "new@example.com", Password: "pw"}); err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if c := <-calls; c.uri != "/auth/signup" {
		t.Errorf("sign-up uri = %s", c.uri)
	}
}

func TestRemote_NoActiveGoal(t *testing.T) {
	t.Parallel()

	srv, _ := recordingServer(t, map[string]string{"GET /goals/active": "null"})
	r := NewRemote(transport.New(srv.URL), &fakeSession{token: "tok"})

	goal, err := r.GetActiveGoal(context.Background())
	if err != nil || goal != nil {
		t.Errorf("GetActiveGoal = %+v, %v; want nil, nil", goal, err)
	}
}

func TestRemote_FailuresPropagate(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	r := NewRemote(transport.New(srv.URL), &fakeSession{})
	_, err := r.GetFoodEntries(context.Background(), testNow)
	if !errors.Is(err, transport.ErrUnauthorized) {
		t.Errorf("error = %v, want ErrUnauthorized", err)
	}
}

func TestRemote_EscapesIDs(t *testing.T) {
	t.Parallel()

	srv, calls := recordingServer(t, map[string]string{})
	r := NewRemote(transport.New(srv.URL), &fakeSession{})

	_ = r.DeleteFoodEntry(context.Background(), &model.FoodEntry{ID: "a/b c"})
	if c := <-calls; c.uri != "/food-entries/a%2Fb%20c" {
		t.Errorf("uri = %q", c.uri)
	}
}
