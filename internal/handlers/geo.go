package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/gorkemserezli/oxiva-sub001/internal/geodata"
)

// GeoHandler serves the static address lookup endpoints.
type GeoHandler struct{}

// NewGeoHandler constructs GeoHandler.
func NewGeoHandler() *GeoHandler {
	return &GeoHandler{}
}

// ListCities returns all city names.
func (h *GeoHandler) ListCities(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "data": geodata.Cities()})
}

// ListDistricts returns the districts of a city.
func (h *GeoHandler) ListDistricts(c *fiber.Ctx) error {
	// City names carry Turkish characters, so the param arrives escaped.
	city, err := url.PathUnescape(c.Params("city"))
	if err != nil || city == "" {
		return fiber.NewError(fiber.StatusBadRequest, "invalid city")
	}

	districts, ok := geodata.Districts(city)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "city not found")
	}

	return c.JSON(fiber.Map{"success": true, "data": districts})
}
