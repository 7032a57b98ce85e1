package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"dinedir/internal/errors"
	"dinedir/internal/model"
	"dinedir/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserInfo is the user summary returned alongside the token.
type UserInfo struct {
	UID      uint       `json:"uid"`
	Username string     `json:"username"`
	Email    string     `json:"email"`
	UserType model.Role `json:"user_type"`
	Status   string     `json:"status"`
	Photo    string     `json:"photo"`
}

// LoginResponse represents a successful login.
type LoginResponse struct {
	LoginAccessToken string   `json:"login_access_token"`
	TokenType        string   `json:"token_type"`
	UserInfo         UserInfo `json:"user_info"`
}

// Login godoc
// @Summary Authenticate and obtain a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if err == service.ErrInvalidCredentials {
			return echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{
				Error: err.Error(),
				Code:  "WRONG_CREDENTIALS",
			})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to login",
			Code:  "LOGIN_FAILED",
		})
	}

	return c.JSON(http.StatusOK, LoginResponse{
		LoginAccessToken: token,
		TokenType:        "bearer",
		UserInfo: UserInfo{
			UID:      user.ID,
			Username: user.Username,
			Email:    user.Email,
			UserType: user.Role,
			Status:   user.Status,
			Photo:    user.Photo,
		},
	})
}
