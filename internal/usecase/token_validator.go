package usecase

import (
	"parking-core/internal/domain/user"
	"parking-core/internal/pkg/errs"
	"parking-core/internal/pkg/jwt"

	"github.com/google/uuid"
)

var ErrInvalidToken = errs.Sentinel("invalid access token", errs.KindAuthorization)

// TokenValidator turns a bearer token into the caller's identity.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type jwtTokenValidator struct {
	jwt *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &jwtTokenValidator{jwt: jwtService}
}

// ValidateToken rejects tokens without a subject or with a role this service
// does not know. Account state is not checked here.
func (v *jwtTokenValidator) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := v.jwt.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", errs.Mark(err, ErrInvalidToken)
	}
	if claims.UserID == uuid.Nil {
		return uuid.Nil, "", errs.Wrap(ErrInvalidToken, "token has no user id")
	}
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", errs.Mark(err, ErrInvalidToken)
	}
	return claims.UserID, role, nil
}
