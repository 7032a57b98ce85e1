package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"dinedir/internal/auth"
	"dinedir/internal/errors"
)

// domainError translates a domain error into an echo HTTP error with a
// standardized body.
func domainError(err error) *echo.HTTPError {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// callerClaims extracts the authenticated caller from the request
// context, or fails with 401.
func callerClaims(c echo.Context) (*auth.Claims, error) {
	claims, err := auth.FromContext(c)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "could not validate credentials",
			Code:  "INVALID_TOKEN",
		})
	}
	return claims, nil
}
