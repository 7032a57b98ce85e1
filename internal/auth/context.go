package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// ContextKey is where the echo-jwt middleware stores the parsed token.
const ContextKey = "user"

// NewClaims is the claims factory handed to the echo-jwt middleware so
// tokens parse directly into *Claims.
func NewClaims(c echo.Context) jwt.Claims {
	return &Claims{}
}

// FromContext extracts the authenticated caller's claims from an echo
// context populated by the echo-jwt middleware.
func FromContext(c echo.Context) (*Claims, error) {
	token, ok := c.Get(ContextKey).(*jwt.Token)
	if !ok {
		return nil, errors.New("no token in context")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errors.New("unexpected claims type")
	}
	return claims, nil
}
