// Package model defines domain entities for the application.
package model

import "time"

// User represents the identity record of an account.
// ID and Email never change after creation.
type User struct {
	ID            string
	Email         string
	Name          *string
	CurrentWeight *float64 // kg
	TargetWeight  *float64 // kg
	Height        *float64 // cm
	DateOfBirth   *time.Time
	ActivityLevel *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// DisplayName returns the user's name, falling back to the email address.
func (u *User) DisplayName() string {
	if u.Name != nil && *u.Name != "" {
		return *u.Name
	}
	return u.Email
}
