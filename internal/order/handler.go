package order

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/agrilink/farm-market-backend/internal/cart"
	"github.com/agrilink/farm-market-backend/internal/user"
)

// CartService is the slice of the cart service checkout needs: the pending
// items to order, and the clear that runs after a fully successful batch.
type CartService interface {
	List(ctx context.Context, buyerID int) ([]cart.Item, error)
	Clear(ctx context.Context, buyerID int) error
}

// Handler delegates order operations to the order service. It also needs
// the cart service to read and clear the pending cart at checkout.
type Handler struct {
	service *Service
	carts   CartService
}

func NewHandler(s *Service, carts CartService) *Handler {
	return &Handler{service: s, carts: carts}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/orders", h.createOrders)
	app.Get("/api/v1/orders", h.getOrders)
	app.Patch("/api/v1/orders/:id/status", h.setStatus)
	app.Get("/api/v1/farmer/orders", h.listAllOrders)
	app.Patch("/api/v1/orders/:id/transport", h.assignTransport)
}

type checkoutRequest struct {
	BuyerName     string    `json:"buyerName"`
	BuyerContact  string    `json:"buyerContact"`
	BuyerAddress  string    `json:"buyerAddress"`
	PaymentMethod string    `json:"paymentMethod"`
	Location      *Location `json:"location"`
}

// createOrders is checkout confirmation: it turns every pending cart line
// into an order document and clears the cart only if the whole batch
// succeeded. The clear itself is best-effort.
func (h *Handler) createOrders(c *fiber.Ctx) error {
	payload := new(checkoutRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.BuyerName == "" || payload.BuyerContact == "" || payload.BuyerAddress == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "buyerName, buyerContact and buyerAddress are required"})
	}
	if payload.Location == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "delivery address must be resolved before confirming"})
	}

	buyerID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	ctx := c.UserContext()
	items, err := h.carts.List(ctx, buyerID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	if len(items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "cart is empty"})
	}

	created, err := h.service.PlaceOrder(ctx, BuyerDetails{
		BuyerID:       buyerID,
		Name:          payload.BuyerName,
		Contact:       payload.BuyerContact,
		Address:       payload.BuyerAddress,
		PaymentMethod: payload.PaymentMethod,
	}, payload.Location, items)
	if err != nil {
		switch err {
		case ErrMissingBuyerDetails, ErrNoLocation, ErrEmptyCart:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		default:
			// partial successes stay persisted; the cart is left intact
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error(), "orders": created})
		}
	}

	if err := h.carts.Clear(ctx, buyerID); err != nil {
		log.Printf("warning: could not clear cart for buyer %d after checkout: %v", buyerID, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// getOrders returns all orders belonging to the currently authenticated
// buyer.
func (h *Handler) getOrders(c *fiber.Ctx) error {
	buyerID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	orders, err := h.service.ListByBuyer(buyerID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(orders)
}

type statusRequest struct {
	Status     string `json:"status"`
	BuyerPhone string `json:"buyerPhone"`
	BuyerEmail string `json:"buyerEmail"`
}

func (h *Handler) setStatus(c *fiber.Ctx) error {
	if _, err := user.GetUserIDFromCtx(c); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	payload := new(statusRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "status is required"})
	}

	orderID := c.Params("id")
	if err := h.service.SetStatus(c.UserContext(), orderID, payload.Status, payload.BuyerPhone, payload.BuyerEmail); err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(fiber.Map{"orderId": orderID, "status": payload.Status})
}

// listAllOrders serves the farmer/supply-chain view over the same orders
// table the buyer history reads.
func (h *Handler) listAllOrders(c *fiber.Ctx) error {
	userType, err := user.GetUserTypeFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	if userType != user.TypeFarmer {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "farmer account required"})
	}

	orders, err := h.service.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(orders)
}

type transportRequest struct {
	Transport string `json:"transport"`
}

func (h *Handler) assignTransport(c *fiber.Ctx) error {
	userType, err := user.GetUserTypeFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	if userType != user.TypeFarmer {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "farmer account required"})
	}

	payload := new(transportRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Transport == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "transport is required"})
	}

	orderID := c.Params("id")
	if err := h.service.AssignTransport(orderID, payload.Transport); err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(fiber.Map{"orderId": orderID, "transport": payload.Transport})
}
