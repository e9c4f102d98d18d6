package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"taskboard/internal/model"
)

// Identity is the authenticated caller derived from validated token
// claims. It is what the service layer authorizes against.
type Identity struct {
	UserID uint
	Email  string
	Role   string
}

// IsAdmin reports whether the caller carries the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == model.RoleAdmin
}

// CurrentIdentity extracts the caller identity placed in the echo
// context by the JWT middleware.
func CurrentIdentity(c echo.Context) (Identity, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return Identity{}, errors.New("missing token in request context")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return Identity{}, errors.New("unexpected token claims type")
	}
	return Identity{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}
