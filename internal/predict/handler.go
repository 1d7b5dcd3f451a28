package predict

import (
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/predict", h.predict)
}

type forecastRequest struct {
	Crop string `json:"crop"`
}

func (h *Handler) predict(c *fiber.Ctx) error {
	payload := new(forecastRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Crop == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "crop is required"})
	}

	series, err := h.service.Forecast(c.UserContext(), payload.Crop)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"crop": payload.Crop, "series": series})
}
