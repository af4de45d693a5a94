package handlers

import (
	"errors"
	"net/http"

	"homeport/internal/common"
	"homeport/internal/services"

	"github.com/labstack/echo/v4"
)

// UserHandlers handles user-facing endpoints beyond auth
type UserHandlers struct {
	preferenceSvc services.PreferenceService
}

func NewUserHandlers(preferenceSvc services.PreferenceService) *UserHandlers {
	return &UserHandlers{preferenceSvc: preferenceSvc}
}

// Greet is a trivial liveness endpoint on the user surface
func (h *UserHandlers) Greet(c echo.Context) error {
	return c.String(http.StatusOK, "Hello, World!")
}

// PreferenceRequest represents the saved-search criteria payload
type PreferenceRequest struct {
	MinPrice int      `json:"min_price" validate:"min=0"`
	MaxPrice int      `json:"max_price"`
	Beds     int      `json:"beds"`
	Baths    int      `json:"baths"`
	MinArea  float64  `json:"min_area"`
	Type     string   `json:"type"`
	City     string   `json:"city"`
	State    string   `json:"state"`
	Zipcodes []string `json:"zipcodes"`
}

// AddPreference stores a saved search for the authenticated user
func (h *UserHandlers) AddPreference(c echo.Context) error {
	var req PreferenceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err := h.preferenceSvc.AddPreference(c.Request().Context(), &services.PreferenceCriteria{
		MinPrice: req.MinPrice,
		MaxPrice: req.MaxPrice,
		Beds:     req.Beds,
		Baths:    req.Baths,
		MinArea:  req.MinArea,
		Type:     req.Type,
		City:     req.City,
		State:    req.State,
		Zipcodes: req.Zipcodes,
	})
	switch {
	case errors.Is(err, services.ErrUnauthenticated):
		return c.JSON(http.StatusUnauthorized, common.CreateErrorResponse("unauthenticated", "Authentication required", nil))
	case errors.Is(err, services.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, common.CreateErrorResponse("not_found", "User not found", nil))
	case err != nil:
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save preference")
	}

	return c.String(http.StatusOK, "Preference added successfully")
}
