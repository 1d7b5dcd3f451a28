package market

import (
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	client *Client
}

func NewHandler(c *Client) *Handler {
	return &Handler{client: c}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/market-prices", h.list)
}

func (h *Handler) list(c *fiber.Ctx) error {
	records, err := h.client.Fetch(c.UserContext(), c.Query("commodity"), c.Query("state"))
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(records)
}
