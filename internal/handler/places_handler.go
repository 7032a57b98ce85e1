package handler

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// PlacesHandler proxies restaurant text searches to the Google Places API.
type PlacesHandler struct {
	apiKey string
}

// NewPlacesHandler creates a new places proxy handler.
func NewPlacesHandler(apiKey string) *PlacesHandler {
	return &PlacesHandler{apiKey: apiKey}
}

// Search godoc
// @Summary Proxy a places search for restaurants in a zip code
// @Tags restaurants
// @Produce json
// @Param zipcode path int true "Zip code"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Router /restaurants/google-places/{zipcode} [get]
func (h *PlacesHandler) Search(c echo.Context) error {
	zipcode, err := strconv.Atoi(c.Param("zipcode"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid zip code")
	}

	url := fmt.Sprintf(
		"https://maps.googleapis.com/maps/api/place/textsearch/json?query=restaurants+in+%d&key=%s",
		zipcode, h.apiKey,
	)

	resp, err := http.Get(url)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]string{
			"error": fmt.Sprintf("places request failed: %v", err),
		})
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]string{
			"error": fmt.Sprintf("places API returned status: %d", resp.StatusCode),
		})
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]string{
			"error": fmt.Sprintf("failed to read places response: %v", err),
		})
	}

	return c.JSONBlob(http.StatusOK, body)
}
