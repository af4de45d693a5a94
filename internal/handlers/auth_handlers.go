package handlers

import (
	"errors"
	"net/http"

	"homeport/internal/common"
	"homeport/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandlers handles signup and login requests
type AuthHandlers struct {
	authSvc services.AuthService
}

func NewAuthHandlers(authSvc services.AuthService) *AuthHandlers {
	return &AuthHandlers{authSvc: authSvc}
}

// SignupRequest represents the signup request payload
type SignupRequest struct {
	Username  string  `json:"username" validate:"required"`
	Password  string  `json:"password" validate:"required,min=6"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email" validate:"required,email"`
	Phone     *string `json:"phone"`
}

// LoginRequest represents the login request payload. Identifier is an email
// or a username.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// AuthResponse carries the issued bearer token
type AuthResponse struct {
	Token string `json:"token"`
}

// Signup handles user registration
func (h *AuthHandlers) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, err := h.authSvc.SignUp(c.Request().Context(), &services.SignUpRequest{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	switch {
	case errors.Is(err, services.ErrUsernameTaken):
		return c.JSON(http.StatusConflict, common.CreateErrorResponse("username_taken", "Username already in use", nil))
	case errors.Is(err, services.ErrEmailTaken):
		return c.JSON(http.StatusConflict, common.CreateErrorResponse("email_taken", "Email already in use", nil))
	case err != nil:
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to sign up")
	}

	return c.JSON(http.StatusOK, AuthResponse{Token: token})
}

// Login handles credential verification and token issuance
func (h *AuthHandlers) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, err := h.authSvc.Login(c.Request().Context(), req.Identifier, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		return c.JSON(http.StatusUnauthorized, common.CreateErrorResponse("invalid_credentials", "Invalid credentials", nil))
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to log in")
	}

	return c.JSON(http.StatusOK, AuthResponse{Token: token})
}
