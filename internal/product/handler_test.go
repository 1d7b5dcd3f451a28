package product

import (
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

func makeAppWithProductHandler(h *Handler) *fiber.App {
	app := fiber.New()
	h.RegisterPublicRoutes(app)
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

func TestListProducts_CategoryFilter(t *testing.T) {
	repo := NewInMemoryRepository(Catalog())
	app := makeAppWithProductHandler(NewHandler(NewService(repo)))

	req := httptest.NewRequest("GET", "/api/v1/products", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	var all []Product
	_ = json.NewDecoder(res.Body).Decode(&all)
	if len(all) != len(Catalog()) {
		t.Fatalf("expected the full catalog, got %d", len(all))
	}

	req2 := httptest.NewRequest("GET", "/api/v1/products?category=Vegetables", nil)
	res2, _ := app.Test(req2)
	var vegetables []Product
	_ = json.NewDecoder(res2.Body).Decode(&vegetables)
	if len(vegetables) == 0 {
		t.Fatal("expected at least one vegetable in the catalog")
	}
	for _, p := range vegetables {
		if p.Category != "Vegetables" {
			t.Fatalf("filter leaked category %q", p.Category)
		}
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	app := makeAppWithProductHandler(NewHandler(NewService(NewInMemoryRepository(nil))))

	req := httptest.NewRequest("GET", "/api/v1/products/999", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}
}

func TestFarmerListings(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	app := makeAppWithProductHandler(NewHandler(NewService(repo)))

	body := `{"name":"Tomato","unitPrice":"₹30/kg","category":"Vegetables"}`

	// unauthenticated
	req := httptest.NewRequest("POST", "/api/v1/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", res.StatusCode)
	}

	// buyers cannot list produce
	req2 := httptest.NewRequest("POST", "/api/v1/products", strings.NewReader(body))
	req2.Header.Set("Content-Type", "application/json")
	req2.Header.Set("X-User-ID", "7")
	req2.Header.Set("X-User-Type", "buyer")
	req2.Header.Set("X-User-Email", "asha@example.com")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403 for buyer, got %d", res2.StatusCode)
	}

	// farmer creates a listing
	req3 := httptest.NewRequest("POST", "/api/v1/products", strings.NewReader(body))
	req3.Header.Set("Content-Type", "application/json")
	req3.Header.Set("X-User-ID", "3")
	req3.Header.Set("X-User-Type", "farmer")
	req3.Header.Set("X-User-Email", "ram@farm.in")
	res3, _ := app.Test(req3)
	if res3.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", res3.StatusCode)
	}
	var created Product
	_ = json.NewDecoder(res3.Body).Decode(&created)
	if created.Farmer != "ram@farm.in" {
		t.Fatalf("listing must be keyed to the farmer, got %q", created.Farmer)
	}

	// the farmer view shows only their own listings
	req4 := httptest.NewRequest("GET", "/api/v1/farmer/products", nil)
	req4.Header.Set("X-User-ID", "3")
	req4.Header.Set("X-User-Type", "farmer")
	req4.Header.Set("X-User-Email", "ram@farm.in")
	res4, _ := app.Test(req4)
	var mine []Product
	_ = json.NewDecoder(res4.Body).Decode(&mine)
	if len(mine) != 1 {
		t.Fatalf("expected 1 own listing, got %d", len(mine))
	}

	// another farmer cannot delete it
	req5 := httptest.NewRequest("DELETE", "/api/v1/products/"+strconv.Itoa(created.ID), nil)
	req5.Header.Set("X-User-ID", "4")
	req5.Header.Set("X-User-Type", "farmer")
	req5.Header.Set("X-User-Email", "shyam@farm.in")
	res5, _ := app.Test(req5)
	if res5.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for non-owner delete, got %d", res5.StatusCode)
	}

	// the owner can
	req6 := httptest.NewRequest("DELETE", "/api/v1/products/"+strconv.Itoa(created.ID), nil)
	req6.Header.Set("X-User-ID", "3")
	req6.Header.Set("X-User-Type", "farmer")
	req6.Header.Set("X-User-Email", "ram@farm.in")
	res6, _ := app.Test(req6)
	if res6.StatusCode != fiber.StatusNoContent {
		t.Fatalf("expected 204 for owner delete, got %d", res6.StatusCode)
	}
}
