package product

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/agrilink/farm-market-backend/internal/user"
)

var errNotFarmer = errors.New("farmer account required")

// Handler delegates product operations to the product service.
type Handler struct {
	service ServiceInterface
}

func NewHandler(s ServiceInterface) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/products", h.listProducts)
	app.Get("/api/v1/products/:id<[0-9]+>", h.getProduct)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/products", h.createProduct)
	app.Get("/api/v1/farmer/products", h.listFarmerProducts)
	app.Delete("/api/v1/products/:id<[0-9]+>", h.deleteProduct)
}

func (h *Handler) listProducts(c *fiber.Ctx) error {
	products := h.service.List()
	if category := c.Query("category"); category != "" {
		filtered := make([]Product, 0, len(products))
		for _, p := range products {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}
	return c.JSON(products)
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}

	p, err := h.service.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
	}
	return c.JSON(p)
}

type createProductRequest struct {
	Name        string `json:"name"`
	UnitPrice   string `json:"unitPrice"`
	Category    string `json:"category"`
	ImageRef    string `json:"imageRef"`
	Description string `json:"description"`
}

func (h *Handler) createProduct(c *fiber.Ctx) error {
	farmer, err := farmerFromCtx(c)
	if err != nil {
		return rejectNonFarmer(c, err)
	}

	payload := new(createProductRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Name == "" || payload.UnitPrice == "" || payload.Category == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "name, unitPrice and category are required"})
	}

	now := time.Now().UTC().Format(time.RFC3339)
	created, err := h.service.Create(Product{
		Name:        payload.Name,
		UnitPrice:   payload.UnitPrice,
		Category:    payload.Category,
		ImageRef:    payload.ImageRef,
		Description: payload.Description,
		CreatedAt:   &now,
		UpdatedAt:   &now,
	}, farmer)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) listFarmerProducts(c *fiber.Ctx) error {
	farmer, err := farmerFromCtx(c)
	if err != nil {
		return rejectNonFarmer(c, err)
	}

	products, err := h.service.ListByFarmer(farmer)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(products)
}

func (h *Handler) deleteProduct(c *fiber.Ctx) error {
	farmer, err := farmerFromCtx(c)
	if err != nil {
		return rejectNonFarmer(c, err)
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}

	if err := h.service.Delete(id, farmer); err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// farmerFromCtx resolves the caller's email from JWT claims and checks the
// farmer user type. Listings are keyed by the farmer's email.
func farmerFromCtx(c *fiber.Ctx) (string, error) {
	userType, err := user.GetUserTypeFromCtx(c)
	if err != nil {
		return "", err
	}
	if userType != user.TypeFarmer {
		return "", errNotFarmer
	}
	return user.GetEmailFromCtx(c)
}

func rejectNonFarmer(c *fiber.Ctx, err error) error {
	if err == errNotFarmer {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "farmer account required"})
	}
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
}
