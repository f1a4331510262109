package service

import (
	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
)

// Identity is the minimal claim handed to protected operations. It is
// re-derived from a fresh user lookup on every verification, never taken
// from the signed payload alone.
type Identity struct {
	ID    uuid.UUID
	Email string
}

// tokenClaims is the JWT payload: registered sub/iat/exp plus a
// denormalized email claim.
type tokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}
