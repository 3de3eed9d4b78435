// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"market/config"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/service"
	"market/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const accessTokenType = "access"

// jwtService validates HMAC-signed access tokens. Tokens are issued elsewhere
// with the same shared secret.
type jwtService struct {
	accessSecret []byte
	leeway       time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		leeway:       30 * time.Second,
	}, nil
}

// ValidateToken checks signature, expiry and token type, then extracts the
// subject and roles.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.accessSecret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(s.leeway),
	)
	if err != nil {
		return nil, domainerrors.ErrUnauthenticated.WithDetails(err.Error())
	}

	if tokenType, ok := claims["type"].(string); ok && tokenType != accessTokenType {
		return nil, domainerrors.ErrUnauthenticated.WithDetailsf("unexpected token type %q", tokenType)
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return nil, domainerrors.ErrUnauthenticated.WithDetails("missing subject")
	}
	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, domainerrors.ErrUnauthenticated.WithDetailsf("subject %q is not a user id", subject)
	}

	result := &service.Claims{
		UserID: userID,
		Roles:  rolesOf(claims),
	}
	result.Subject = subject
	if exp, err := claims.GetExpirationTime(); err == nil {
		result.ExpiresAt = exp
	}
	if iat, err := claims.GetIssuedAt(); err == nil {
		result.IssuedAt = iat
	}

	return result, nil
}

func rolesOf(claims jwt.MapClaims) []string {
	raw, ok := claims["roles"].([]any)
	if !ok {
		return nil
	}

	roles := make([]string, 0, len(raw))
	for _, r := range raw {
		if role, ok := r.(string); ok {
			roles = append(roles, role)
		}
	}

	return roles
}
