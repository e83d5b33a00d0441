// Package fixture is an in-memory, pre-seeded stand-in for the remote
// backend. Its operations never fail; absence is reported through nil
// results or a found flag.
package fixture

import (
	"sync"
	"time"

	"github.com/fitai/fitai/internal/model"
)

// Store holds users, food entries and goals behind a single lock.
type Store struct {
	mu      sync.RWMutex
	users   map[string]model.User
	entries map[string][]model.FoodEntry // by user id, insertion order
	goals   map[string]model.DailyGoal   // one slot per user id

	now func() time.Time
	loc *time.Location
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the time source used for seeding and updatedAt stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLocation sets the zone whose midnight separates calendar days.
// Defaults to time.Local.
func WithLocation(loc *time.Location) Option {
	return func(s *Store) { s.loc = loc }
}

// New returns a store seeded with the demo account.
func New(opts ...Option) *Store {
	s := NewEmpty(opts...)
	s.seed()
	return s
}

// NewEmpty returns a store with no data.
func NewEmpty(opts ...Option) *Store {
	s := &Store{
		users:   make(map[string]model.User),
		entries: make(map[string][]model.FoodEntry),
		goals:   make(map[string]model.DailyGoal),
		now:     time.Now,
		loc:     time.Local,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Location returns the zone used for calendar-day comparisons.
func (s *Store) Location() *time.Location {
	return s.loc
}

// GetUserByID returns the user with id, or nil.
func (s *Store) GetUserByID(id string) *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil
	}
	return cloneUser(&u)
}

// GetUserByEmail returns the user whose email equals email exactly
// (case-sensitive), or nil.
func (s *Store) GetUserByEmail(email string) *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return cloneUser(&u)
		}
	}
	return nil
}

// UpdateUser stores user under its id with a fresh UpdatedAt, inserting it
// when the id is new.
func (s *Store) UpdateUser(user *model.User) *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *cloneUser(user)
	stored.UpdatedAt = s.now()
	s.users[stored.ID] = stored
	return cloneUser(&stored)
}

// GetFoodEntries returns userID's entries whose calendar day equals the
// calendar day of date in date's own location, in insertion order. The
// result is never nil.
func (s *Store) GetFoodEntries(userID string, date time.Time) []model.FoodEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	target := model.CalendarDay(date)
	result := make([]model.FoodEntry, 0)
	for i := range s.entries[userID] {
		e := &s.entries[userID][i]
		if s.entryDay(e.Date).Equal(target) {
			result = append(result, *cloneEntry(e))
		}
	}
	return result
}

// GetFoodEntry returns userID's entry with id, or nil.
func (s *Store) GetFoodEntry(userID, id string) *model.FoodEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.entries[userID] {
		if s.entries[userID][i].ID == id {
			return cloneEntry(&s.entries[userID][i])
		}
	}
	return nil
}

// CreateFoodEntry appends entry to its user's list and returns it unchanged.
// The caller supplies a unique id.
func (s *Store) CreateFoodEntry(entry *model.FoodEntry) *model.FoodEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[entry.UserID] = append(s.entries[entry.UserID], *cloneEntry(entry))
	return cloneEntry(entry)
}

// UpdateFoodEntry replaces the entry with the same id in its user's list.
// It returns entry unchanged either way; found reports whether a record was
// replaced.
func (s *Store) UpdateFoodEntry(entry *model.FoodEntry) (result *model.FoodEntry, found bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.entries[entry.UserID]
	for i := range list {
		if list[i].ID == entry.ID {
			list[i] = *cloneEntry(entry)
			return cloneEntry(entry), true
		}
	}
	return cloneEntry(entry), false
}

// DeleteFoodEntry removes every entry with entry's id from its user's list
// and reports whether any was removed.
func (s *Store) DeleteFoodEntry(entry *model.FoodEntry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.entries[entry.UserID]
	kept := list[:0]
	for _, e := range list {
		if e.ID != entry.ID {
			kept = append(kept, e)
		}
	}
	removed := len(kept) != len(list)
	// Clear the tail so dropped entries can be collected.
	for i := len(kept); i < len(list); i++ {
		list[i] = model.FoodEntry{}
	}
	if _, ok := s.entries[entry.UserID]; ok {
		s.entries[entry.UserID] = kept
	}
	return removed
}

// GetActiveGoal returns the goal stored for userID, or nil.
func (s *Store) GetActiveGoal(userID string) *model.DailyGoal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.goals[userID]
	if !ok {
		return nil
	}
	return cloneGoal(&g)
}

// CreateGoal stores goal as its user's only goal, replacing any previous one.
func (s *Store) CreateGoal(goal *model.DailyGoal) *model.DailyGoal {
	return s.putGoal(goal)
}

// UpdateGoal behaves exactly like CreateGoal.
func (s *Store) UpdateGoal(goal *model.DailyGoal) *model.DailyGoal {
	return s.putGoal(goal)
}

func (s *Store) putGoal(goal *model.DailyGoal) *model.DailyGoal {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.goals[goal.UserID] = *cloneGoal(goal)
	return cloneGoal(goal)
}
