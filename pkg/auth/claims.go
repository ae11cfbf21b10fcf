package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	UserID uuid.UUID
	Email  string
	Name   *string
	// JTI doubles as the session key; empty means a fresh one is generated.
	JTI string
}

// AccessTokenClaims represents the session token issued to shoppers.
type AccessTokenClaims struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Name   *string   `json:"name,omitempty"`
	jwt.RegisteredClaims
}
