package usecase

import (
	"institut-booking/internal/pkg/errs"
	"institut-booking/internal/pkg/jwt"

	"github.com/google/uuid"
)

var ErrTokenValidation = errs.New("token validation failed")

// TokenValidator is what the auth middleware needs from the usecase layer.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, bool, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{jwtService: jwtService}
}

func (v *tokenValidatorImpl) ValidateToken(tokenString string) (uuid.UUID, bool, error) {
	claims, err := v.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, false, ErrTokenValidation
	}
	return claims.UserID, claims.IsAdmin, nil
}
