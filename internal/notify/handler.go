package notify

import (
	"github.com/gofiber/fiber/v2"
)

// Handler exposes the notification relays. One SMS relay handler serves
// whichever gateway was selected by configuration; there is no duplicated
// per-gateway code path.
type Handler struct {
	sms   SMSGateway
	email EmailSender
}

func NewHandler(sms SMSGateway, email EmailSender) *Handler {
	return &Handler{sms: sms, email: email}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/sms", h.sendSMS)
	app.Post("/api/email", h.sendEmail)
}

// smsRequest accepts both field spellings the storefront has used.
type smsRequest struct {
	Phone       string `json:"phone"`
	PhoneNumber string `json:"phoneNumber"`
	Message     string `json:"message"`
}

func (h *Handler) sendSMS(c *fiber.Ctx) error {
	payload := new(smsRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	phone := payload.Phone
	if phone == "" {
		phone = payload.PhoneNumber
	}
	if phone == "" || payload.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "phone and message are required"})
	}

	sid, err := h.sms.SendSMS(c.UserContext(), phone, payload.Message)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true, "sid": sid})
}

type emailRequest struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

func (h *Handler) sendEmail(c *fiber.Ctx) error {
	payload := new(emailRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	if payload.Email == "" || payload.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "email and message are required"})
	}

	sid, err := h.email.SendEmail(c.UserContext(), payload.Email, payload.Name, payload.Message)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true, "sid": sid})
}
