package usecase

import (
	"bundlestay/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator is the narrow surface the auth middleware needs.
type TokenValidator interface {
	ValidateToken(token string) (userID uuid.UUID, email string, err error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{jwtService: jwtService}
}

func (v *tokenValidatorImpl) ValidateToken(token string) (uuid.UUID, string, error) {
	claims, err := v.jwtService.ValidateToken(token)
	if err != nil {
		return uuid.Nil, "", err
	}
	return claims.UserID, claims.Email, nil
}
