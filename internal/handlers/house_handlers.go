package handlers

import (
	"net/http"

	"homeport/internal/services"

	"github.com/labstack/echo/v4"
)

// HouseHandlers handles the realtor listing surface
type HouseHandlers struct {
	listingSvc services.ListingService
}

func NewHouseHandlers(listingSvc services.ListingService) *HouseHandlers {
	return &HouseHandlers{listingSvc: listingSvc}
}

// HouseFilterRequest carries the broker name filter, either in the request
// body or as the `broker` query parameter.
type HouseFilterRequest struct {
	Name string `json:"name" query:"broker"`
}

// ListHouses returns all listings for the named broker. Unknown brokers
// yield an empty array.
func (h *HouseHandlers) ListHouses(c echo.Context) error {
	var req HouseFilterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Broker name is required")
	}

	listings, err := h.listingSvc.ListByBroker(c.Request().Context(), req.Name)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list houses")
	}

	return c.JSON(http.StatusOK, listings)
}
