package model

import "time"

// SignUpRequest is the body of an account creation call.
type SignUpRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Name     *string `json:"name,omitempty"`
}

// SignInRequest is the body of a credential sign-in call.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse pairs a bearer token with the authenticated user.
type AuthResponse struct {
	User  User
	Token string
}

// AuthContext identifies the account behind a bearer token issued by the
// development server.
type AuthContext struct {
	UserID   string
	Email    string
	IssuedAt time.Time
}
