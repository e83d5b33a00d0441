package fixture

import (
	"time"

	"github.com/fitai/fitai/internal/model"
)

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneUser(u *model.User) *model.User {
	c := *u
	c.Name = clonePtr(u.Name)
	c.CurrentWeight = clonePtr(u.CurrentWeight)
	c.TargetWeight = clonePtr(u.TargetWeight)
	c.Height = clonePtr(u.Height)
	c.DateOfBirth = clonePtr[time.Time](u.DateOfBirth)
	c.ActivityLevel = clonePtr(u.ActivityLevel)
	return &c
}

func cloneEntry(e *model.FoodEntry) *model.FoodEntry {
	c := *e
	c.ServingSize = clonePtr(e.ServingSize)
	c.PhotoURL = clonePtr(e.PhotoURL)
	c.AIConfidence = clonePtr(e.AIConfidence)
	c.Notes = clonePtr(e.Notes)
	return &c
}

func cloneGoal(g *model.DailyGoal) *model.DailyGoal {
	c := *g
	c.CalorieDeficitGoal = clonePtr(g.CalorieDeficitGoal)
	c.CalorieSurplusGoal = clonePtr(g.CalorieSurplusGoal)
	return &c
}
