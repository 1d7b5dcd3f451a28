package order

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/agrilink/farm-market-backend/internal/cart"
)

func makeAppWithOrderHandler(h *Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if v := c.Get("X-User-ID"); v != "" {
			id, err := strconv.Atoi(v)
			if err == nil {
				claims := jwt.MapClaims{
					"user_id":   id,
					"email":     c.Get("X-User-Email"),
					"user_type": c.Get("X-User-Type"),
				}
				c.Locals("user", &jwt.Token{Claims: claims})
			}
		}
		return c.Next()
	})
	h.RegisterProtectedRoutes(app)
	return app
}

func newCheckoutFixture(t *testing.T) (*fiber.App, *InMemoryRepository, *cart.Service) {
	t.Helper()
	repo := NewInMemoryRepository()
	carts := cart.NewService(cart.NewInMemoryRepository())
	service := NewService(repo, &recordingSMS{}, &recordingEmail{})
	app := makeAppWithOrderHandler(NewHandler(service, carts))
	return app, repo, carts
}

const checkoutBody = `{"buyerName":"Asha","buyerContact":"9876543210","buyerAddress":"12 Market Road","paymentMethod":"COD","location":{"latitude":19.99,"longitude":73.78}}`

func TestCheckout_CreatesOrdersAndClearsCart(t *testing.T) {
	app, repo, carts := newCheckoutFixture(t)

	ctx := context.Background()
	_, _ = carts.Add(ctx, 7, cart.Item{ProductID: 1, Name: "Tomato", Farmer: "ram@farm.in"})
	_, _ = carts.Add(ctx, 7, cart.Item{ProductID: 2, Name: "Onion", Farmer: "ram@farm.in"})

	req := httptest.NewRequest("POST", "/api/v1/orders", strings.NewReader(checkoutBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "7")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusCreated {
		b, _ := io.ReadAll(res.Body)
		t.Fatalf("expected 201, got %d: %s", res.StatusCode, string(b))
	}

	var created []Order
	if err := json.NewDecoder(res.Body).Decode(&created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("expected 2 orders in response, got %d", len(created))
	}

	persisted, _ := repo.ListByBuyer(7)
	if len(persisted) != 2 {
		t.Fatalf("expected 2 persisted orders, got %d", len(persisted))
	}

	left, _ := carts.List(ctx, 7)
	if len(left) != 0 {
		t.Fatalf("expected cart cleared after checkout, got %d items", len(left))
	}
}

func TestCheckout_Rejections(t *testing.T) {
	app, _, carts := newCheckoutFixture(t)
	_, _ = carts.Add(context.Background(), 7, cart.Item{ProductID: 1, Name: "Tomato"})

	// unauthenticated
	req := httptest.NewRequest("POST", "/api/v1/orders", strings.NewReader(checkoutBody))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", res.StatusCode)
	}

	// missing buyer fields
	req2 := httptest.NewRequest("POST", "/api/v1/orders", strings.NewReader(`{"buyerName":"Asha","location":{"latitude":1,"longitude":2}}`))
	req2.Header.Set("Content-Type", "application/json")
	req2.Header.Set("X-User-ID", "7")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for missing buyer fields, got %d", res2.StatusCode)
	}

	// unresolved location blocks confirmation
	req3 := httptest.NewRequest("POST", "/api/v1/orders", strings.NewReader(`{"buyerName":"Asha","buyerContact":"987","buyerAddress":"Road","paymentMethod":"COD"}`))
	req3.Header.Set("Content-Type", "application/json")
	req3.Header.Set("X-User-ID", "7")
	res3, _ := app.Test(req3)
	if res3.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for missing location, got %d", res3.StatusCode)
	}

	// empty cart
	req4 := httptest.NewRequest("POST", "/api/v1/orders", strings.NewReader(checkoutBody))
	req4.Header.Set("Content-Type", "application/json")
	req4.Header.Set("X-User-ID", "8")
	res4, _ := app.Test(req4)
	if res4.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for empty cart, got %d", res4.StatusCode)
	}
}

func TestCheckout_PartialFailureLeavesCartIntact(t *testing.T) {
	repo := &failingRepo{InMemoryRepository: NewInMemoryRepository(), failCrop: "Onion"}
	carts := cart.NewService(cart.NewInMemoryRepository())
	service := NewService(repo, nil, nil)
	app := makeAppWithOrderHandler(NewHandler(service, carts))

	ctx := context.Background()
	_, _ = carts.Add(ctx, 7, cart.Item{ProductID: 1, Name: "Tomato"})
	_, _ = carts.Add(ctx, 7, cart.Item{ProductID: 2, Name: "Onion"})

	req := httptest.NewRequest("POST", "/api/v1/orders", strings.NewReader(checkoutBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "7")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("expected 500 for partial failure, got %d", res.StatusCode)
	}

	left, _ := carts.List(ctx, 7)
	if len(left) != 2 {
		t.Fatalf("cart must survive a failed batch, got %d items", len(left))
	}
	persisted, _ := repo.ListByBuyer(7)
	if len(persisted) != 1 {
		t.Fatalf("expected the successful sibling to stay persisted, got %d", len(persisted))
	}
}

func TestGetOrders_ScopedToBuyer(t *testing.T) {
	app, repo, _ := newCheckoutFixture(t)
	_, _ = repo.Create(Order{BuyerID: 7, Crop: "Tomato"})
	_, _ = repo.Create(Order{BuyerID: 8, Crop: "Onion"})

	req := httptest.NewRequest("GET", "/api/v1/orders", nil)
	req.Header.Set("X-User-ID", "7")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	var orders []Order
	_ = json.NewDecoder(res.Body).Decode(&orders)
	if len(orders) != 1 || orders[0].Crop != "Tomato" {
		t.Fatalf("expected only buyer 7's order, got %+v", orders)
	}
}

func TestSetStatusRoute(t *testing.T) {
	app, repo, _ := newCheckoutFixture(t)
	ord, _ := repo.Create(Order{BuyerID: 7, Crop: "Tomato", Status: StatusPending})

	req := httptest.NewRequest("PATCH", "/api/v1/orders/"+ord.OrderID+"/status",
		strings.NewReader(`{"status":"In Transit","buyerPhone":"9876543210"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "7")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	got, _ := repo.GetByID(ord.OrderID)
	if got.Status != StatusInTransit {
		t.Fatalf("expected status updated, got %q", got.Status)
	}

	// unknown order
	req2 := httptest.NewRequest("PATCH", "/api/v1/orders/nope/status", strings.NewReader(`{"status":"Delivered"}`))
	req2.Header.Set("Content-Type", "application/json")
	req2.Header.Set("X-User-ID", "7")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown order, got %d", res2.StatusCode)
	}
}

func TestFarmerOnlyRoutes(t *testing.T) {
	app, repo, _ := newCheckoutFixture(t)
	ord, _ := repo.Create(Order{BuyerID: 7, Crop: "Tomato", Transport: TransportNotAssigned})

	// buyers cannot see the supply-chain view
	req := httptest.NewRequest("GET", "/api/v1/farmer/orders", nil)
	req.Header.Set("X-User-ID", "7")
	req.Header.Set("X-User-Type", "buyer")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403 for buyer, got %d", res.StatusCode)
	}

	req2 := httptest.NewRequest("GET", "/api/v1/farmer/orders", nil)
	req2.Header.Set("X-User-ID", "3")
	req2.Header.Set("X-User-Type", "farmer")
	req2.Header.Set("X-User-Email", "ram@farm.in")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for farmer, got %d", res2.StatusCode)
	}
	var orders []Order
	_ = json.NewDecoder(res2.Body).Decode(&orders)
	if len(orders) != 1 {
		t.Fatalf("expected the full order list, got %d", len(orders))
	}

	req3 := httptest.NewRequest("PATCH", "/api/v1/orders/"+ord.OrderID+"/transport", strings.NewReader(`{"transport":"Nashik Logistics"}`))
	req3.Header.Set("Content-Type", "application/json")
	req3.Header.Set("X-User-ID", "3")
	req3.Header.Set("X-User-Type", "farmer")
	req3.Header.Set("X-User-Email", "ram@farm.in")
	res3, _ := app.Test(req3)
	if res3.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for transport assignment, got %d", res3.StatusCode)
	}
	got, _ := repo.GetByID(ord.OrderID)
	if got.Transport != "Nashik Logistics" {
		t.Fatalf("expected transport recorded, got %q", got.Transport)
	}
}
