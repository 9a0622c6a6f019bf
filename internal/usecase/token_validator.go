package usecase

import (
	"bargain-market/internal/domain/user"
	"bargain-market/internal/pkg/errs"
	"bargain-market/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator resolves a bearer token into the caller's identity.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type jwtTokenValidator struct {
	svc *jwt.Service
}

func NewTokenValidator(svc *jwt.Service) TokenValidator {
	return &jwtTokenValidator{svc: svc}
}

// A signed token with an unknown role is rejected like a bad signature.
func (v *jwtTokenValidator) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := v.svc.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", errs.Wrapf(jwt.ErrInvalidToken, "role claim %q", claims.Role)
	}
	return claims.UserID, role, nil
}
