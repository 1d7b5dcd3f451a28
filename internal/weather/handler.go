package weather

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	client *Client
}

func NewHandler(c *Client) *Handler {
	return &Handler{client: c}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/weather", h.current)
}

func (h *Handler) current(c *fiber.Ctx) error {
	lat, err := strconv.ParseFloat(c.Query("latitude"), 64)
	if err != nil || lat < -90 || lat > 90 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "latitude must be between -90 and 90"})
	}
	lon, err := strconv.ParseFloat(c.Query("longitude"), 64)
	if err != nil || lon < -180 || lon > 180 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "longitude must be between -180 and 180"})
	}

	current, err := h.client.Current(c.UserContext(), lat, lon)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(current)
}
