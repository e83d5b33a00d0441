package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fitai/fitai/internal/auth"
	"github.com/fitai/fitai/internal/codec"
	"github.com/fitai/fitai/internal/fixture"
	"github.com/fitai/fitai/internal/handler/dto"
	"github.com/fitai/fitai/internal/middleware"
	"github.com/fitai/fitai/internal/model"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newRecordsRouter mounts the data handlers over a seeded store with the
// caller signed in as userID.
func newRecordsRouter(t *testing.T, userID string) (http.Handler, *fixture.Store) {
	t.Helper()

	store := fixture.New(
		fixture.WithClock(func() time.Time { return testNow }),
		fixture.WithLocation(time.UTC),
	)
	clock := func() time.Time { return testNow.Add(time.Hour) }

	users := NewUserHandler(store, testLogger())
	users.now = clock
	entries := NewFoodEntryHandler(store, testLogger())
	entries.now = clock
	goals := NewGoalHandler(store, testLogger())
	goals.now = clock

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := auth.ContextWithAuth(req.Context(), &model.AuthContext{UserID: userID})
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
	r.With(middleware.RequireOwner("id")).Get("/users/{id}", users.Get)
	r.With(middleware.RequireOwner("id")).Put("/users/{id}", users.Update)
	r.Get("/food-entries", entries.List)
	r.Post("/food-entries", entries.Create)
	r.Put("/food-entries/{id}", entries.Update)
	r.Delete("/food-entries/{id}", entries.Delete)
	r.Get("/goals/active", goals.Active)
	r.Post("/goals", goals.Create)
	r.Put("/goals/{id}", goals.Update)
	return r, store
}

func do(t *testing.T, h http.Handler, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, reader))
	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp dto.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	return resp.Code
}

func mustEncode[T any](t *testing.T, encode func(*T) ([]byte, error), v *T) []byte {
	t.Helper()
	b, err := encode(v)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	return b
}

func newEntry(id string) *model.FoodEntry {
	return &model.FoodEntry{
		ID:        id,
		UserID:    "someone_else",
		Date:      time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		MealType:  model.MealSnack,
		FoodName:  "Protein Bar",
		Calories:  95,
		Protein:   10,
		Carbs:     8,
		Fat:       3,
		CreatedAt: testNow,
		UpdatedAt: testNow,
	}
}

func TestFoodEntryHandler_List(t *testing.T) {
	h, _ := newRecordsRouter(t, fixture.DemoUserID)

	rec := do(t, h, http.MethodGet, "/food-entries?date=2024-05-01", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	entries, err := codec.DecodeFoodEntries(rec.Body.Bytes())
	if err != nil {
		t.Fatalf("decode entries: %v", err)
	}
	if len(entries) != 7 {
		t.Errorf("expected 7 entries, got %d", len(entries))
	}

	rec = do(t, h, http.MethodGet, "/food-entries?date=2024-04-30", nil)
	entries, _ = codec.DecodeFoodEntries(rec.Body.Bytes())
	if len(entries) != 2 {
		t.Errorf("expected 2 entries for the previous day, got %d", len(entries))
	}

	for _, q := range []string{"", "?date=05/01/2024", "?date=2024-13-01"} {
		rec := do(t, h, http.MethodGet, "/food-entries"+q, nil)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("query %q: expected status 400, got %d", q, rec.Code)
		}
	}
}

func TestFoodEntryHandler_Lifecycle(t *testing.T) {
	h, store := newRecordsRouter(t, "user_042")

	rec := do(t, h, http.MethodPost, "/food-entries", mustEncode(t, codec.EncodeFoodEntry, newEntry("entry_new")))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	created, err := codec.DecodeFoodEntry(rec.Body.Bytes())
	if err != nil {
		t.Fatalf("decode created: %v", err)
	}
	if created.UserID != "user_042" {
		t.Errorf("entry filed under %q, want caller", created.UserID)
	}
	if got := store.GetFoodEntries("user_042", testNow); len(got) != 1 {
		t.Fatalf("expected 1 stored entry, got %d", len(got))
	}

	updated := newEntry("entry_new")
	updated.Calories = 120
	rec = do(t, h, http.MethodPut, "/food-entries/entry_new", mustEncode(t, codec.EncodeFoodEntry, updated))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := store.GetFoodEntries("user_042", testNow)[0].Calories; got != 120 {
		t.Errorf("stored calories = %v, want 120", got)
	}

	rec = do(t, h, http.MethodDelete, "/food-entries/entry_new", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", rec.Code)
	}
	rec = do(t, h, http.MethodDelete, "/food-entries/entry_new", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("second delete: expected status 404, got %d", rec.Code)
	}
}

func TestFoodEntryHandler_UpdateKeepsCreatedAt(t *testing.T) {
	h, store := newRecordsRouter(t, fixture.DemoUserID)

	seeded := store.GetFoodEntry(fixture.DemoUserID, "entry_001")
	if seeded == nil {
		t.Fatal("seeded entry_001 missing")
	}
	sent := *seeded
	sent.Calories = 360
	sent.CreatedAt = time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)

	rec := do(t, h, http.MethodPut, "/food-entries/entry_001", mustEncode(t, codec.EncodeFoodEntry, &sent))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	got, err := codec.DecodeFoodEntry(rec.Body.Bytes())
	if err != nil {
		t.Fatalf("decode updated: %v", err)
	}
	if !got.CreatedAt.Equal(seeded.CreatedAt) {
		t.Errorf("response created_at = %v, want %v", got.CreatedAt, seeded.CreatedAt)
	}
	if !got.UpdatedAt.Equal(testNow) {
		t.Errorf("response updated_at = %v, want %v", got.UpdatedAt, testNow)
	}

	stored := store.GetFoodEntry(fixture.DemoUserID, "entry_001")
	if !stored.CreatedAt.Equal(seeded.CreatedAt) || stored.Calories != 360 {
		t.Errorf("stored = created_at %v, calories %v; want %v, 360", stored.CreatedAt, stored.Calories, seeded.CreatedAt)
	}
}

func TestFoodEntryHandler_Rejections(t *testing.T) {
	h, _ := newRecordsRouter(t, fixture.DemoUserID)

	blank := newEntry("entry_x")
	blank.FoodName = "  "
	negative := newEntry("entry_x")
	negative.Fat = -1

	tests := []struct {
		name       string
		method     string
		path       string
		body       []byte
		wantStatus int
		wantCode   string
	}{
		{"malformed json", http.MethodPost, "/food-entries", []byte(`{"id":`), http.StatusBadRequest, "INVALID_JSON"},
		{"missing field", http.MethodPost, "/food-entries", []byte(`{"id":"entry_x"}`), http.StatusBadRequest, "INVALID_JSON"},
		{"blank name", http.MethodPost, "/food-entries", mustEncode(t, codec.EncodeFoodEntry, blank), http.StatusBadRequest, "VALIDATION_FAILED"},
		{"negative fat", http.MethodPost, "/food-entries", mustEncode(t, codec.EncodeFoodEntry, negative), http.StatusBadRequest, "VALIDATION_FAILED"},
		{"id mismatch", http.MethodPut, "/food-entries/entry_y", mustEncode(t, codec.EncodeFoodEntry, newEntry("entry_x")), http.StatusBadRequest, "ID_MISMATCH"},
		{"update unknown", http.MethodPut, "/food-entries/entry_x", mustEncode(t, codec.EncodeFoodEntry, newEntry("entry_x")), http.StatusNotFound, "NOT_FOUND"},
		{"delete bad id", http.MethodDelete, "/food-entries/bad%20id", nil, http.StatusBadRequest, "INVALID_ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, tt.method, tt.path, tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}
			if code := errorCode(t, rec); code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, code)
			}
		})
	}
}

func TestGoalHandler(t *testing.T) {
	h, _ := newRecordsRouter(t, "user_042")

	rec := do(t, h, http.MethodGet, "/goals/active", nil)
	if rec.Code != http.StatusOK || rec.Body.String() != "null" {
		t.Fatalf("expected 200 null, got %d %q", rec.Code, rec.Body.String())
	}

	goal := &model.DailyGoal{
		ID:               "goal_new",
		UserID:           "user_042",
		DailyCalorieGoal: 1800,
		DailyProteinGoal: 120,
		DailyCarbGoal:    180,
		DailyFatGoal:     60,
		CreatedAt:        testNow,
		UpdatedAt:        testNow,
	}
	rec = do(t, h, http.MethodPost, "/goals", mustEncode(t, codec.EncodeDailyGoal, goal))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = do(t, h, http.MethodGet, "/goals/active", nil)
	active, err := codec.DecodeOptionalDailyGoal(rec.Body.Bytes())
	if err != nil || active == nil {
		t.Fatalf("expected an active goal, got %v, %v", active, err)
	}
	if !active.IsActive || active.DailyCalorieGoal != 1800 {
		t.Errorf("unexpected active goal: %+v", active)
	}

	goal.DailyCalorieGoal = 2200
	rec = do(t, h, http.MethodPut, "/goals/goal_new", mustEncode(t, codec.EncodeDailyGoal, goal))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	updated, _ := codec.DecodeDailyGoal(rec.Body.Bytes())
	if updated.DailyCalorieGoal != 2200 || !updated.CreatedAt.Equal(active.CreatedAt) {
		t.Errorf("unexpected updated goal: %+v", updated)
	}

	other := *goal
	other.ID = "goal_other"
	rec = do(t, h, http.MethodPut, "/goals/goal_other", mustEncode(t, codec.EncodeDailyGoal, &other))
	if rec.Code != http.StatusNotFound {
		t.Errorf("update of a non-active goal: expected 404, got %d", rec.Code)
	}

	goal.DailyCalorieGoal = 0
	rec = do(t, h, http.MethodPost, "/goals", mustEncode(t, codec.EncodeDailyGoal, goal))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("zero calorie goal: expected 400, got %d", rec.Code)
	}
}

func TestUserHandler(t *testing.T) {
	h, store := newRecordsRouter(t, fixture.DemoUserID)

	rec := do(t, h, http.MethodGet, "/users/"+fixture.DemoUserID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	user, err := codec.DecodeUser(rec.Body.Bytes())
	if err != nil {
		t.Fatalf("decode user: %v", err)
	}

	rec = do(t, h, http.MethodGet, "/users/user_002", nil)
	if rec.Code != http.StatusForbidden {
		t.Errorf("other user's profile: expected 403, got %d", rec.Code)
	}

	weight := 70.5
	user.CurrentWeight = &weight
	rec = do(t, h, http.MethodPut, "/users/"+fixture.DemoUserID, mustEncode(t, codec.EncodeUser, user))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := store.GetUserByID(fixture.DemoUserID).CurrentWeight; got == nil || *got != weight {
		t.Errorf("stored weight = %v, want %v", got, weight)
	}

	user.Email = "changed@fitai.com"
	rec = do(t, h, http.MethodPut, "/users/"+fixture.DemoUserID, mustEncode(t, codec.EncodeUser, user))
	if rec.Code != http.StatusBadRequest || errorCode(t, rec) != "EMAIL_IMMUTABLE" {
		t.Errorf("email change: expected 400 EMAIL_IMMUTABLE, got %d", rec.Code)
	}
}
