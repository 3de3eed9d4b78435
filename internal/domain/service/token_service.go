package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the claims carried by an access token.
type Claims struct {
	UserID uuid.UUID
	Roles  []string
	jwt.RegisteredClaims
}

// TokenService validates access tokens. Issuing them belongs to the identity
// provider; this service only reads them.
type TokenService interface {
	ValidateToken(tokenString string) (*Claims, error)
}
