package auth

import (
	"time"

	"github.com/jdmejias/perfumes-app/internal/users"
)

const minPasswordLength = 6

// RegisterRequest is the sign-up payload.
type RegisterRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,max=120"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
}

// LoginRequest captures the user credentials sent to the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionResult is returned by register and login. Token is delivered to the
// client as a cookie and a header, never in the body.
type SessionResult struct {
	Token     string         `json:"-"`
	ExpiresAt time.Time      `json:"expiresAt"`
	User      *users.UserDTO `json:"user"`
}
