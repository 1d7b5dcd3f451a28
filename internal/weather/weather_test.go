package weather

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestClient_Current(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/forecast" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("current_weather") != "true" {
			t.Errorf("expected current_weather=true, got %v", q)
		}
		if q.Get("latitude") != "19.9975" || q.Get("longitude") != "73.7898" {
			t.Errorf("unexpected coordinates: %v", q)
		}
		_, _ = w.Write([]byte(`{"current_weather":{"temperature":31.4,"windspeed":9.7,"weathercode":2}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	current, err := client.Current(context.Background(), 19.9975, 73.7898)
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if current.Temperature != 31.4 || current.WindSpeed != 9.7 || current.Code != 2 {
		t.Fatalf("unexpected conditions %+v", current)
	}
}

func TestClient_Current_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	if _, err := client.Current(context.Background(), 0, 0); !errors.Is(err, ErrWeather) {
		t.Fatalf("expected ErrWeather, got %v", err)
	}
}

func TestWeatherRoute_Validation(t *testing.T) {
	app := fiber.New()
	NewHandler(NewClient("http://unused")).RegisterPublicRoutes(app)

	for _, target := range []string{
		"/api/v1/weather",
		"/api/v1/weather?latitude=91&longitude=10",
		"/api/v1/weather?latitude=10&longitude=181",
		"/api/v1/weather?latitude=abc&longitude=10",
	} {
		req := httptest.NewRequest("GET", target, nil)
		res, _ := app.Test(req)
		if res.StatusCode != fiber.StatusBadRequest {
			t.Fatalf("expected 400 for %s, got %d", target, res.StatusCode)
		}
	}
}
