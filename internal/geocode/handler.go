package geocode

import (
	"github.com/gofiber/fiber/v2"
)

// Handler lets the checkout page resolve an address before confirming.
// A successful resolve is not invalidated when the address text is edited
// afterwards; the client confirms with whatever coordinates it last got.
type Handler struct {
	resolver Resolver
}

func NewHandler(r Resolver) *Handler {
	return &Handler{resolver: r}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/geocode", h.resolve)
}

type resolveRequest struct {
	Address string `json:"address"`
}

func (h *Handler) resolve(c *fiber.Ctx) error {
	payload := new(resolveRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Address == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "address is required"})
	}

	loc, err := h.resolver.Resolve(c.UserContext(), payload.Address)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(loc)
}
