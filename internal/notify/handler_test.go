package notify

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

type stubGateway struct {
	calls int
	sid   string
	err   error
}

func (g *stubGateway) SendSMS(ctx context.Context, phone, message string) (string, error) {
	g.calls++
	return g.sid, g.err
}

type stubEmail struct {
	calls int
	sid   string
	err   error
}

func (s *stubEmail) SendEmail(ctx context.Context, toEmail, toName, message string) (string, error) {
	s.calls++
	return s.sid, s.err
}

func makeRelayApp(sms SMSGateway, email EmailSender) *fiber.App {
	app := fiber.New()
	NewHandler(sms, email).RegisterPublicRoutes(app)
	return app
}

func TestSMSRelay_MissingFields(t *testing.T) {
	gw := &stubGateway{sid: "req-1"}
	app := makeRelayApp(gw, &stubEmail{})

	req := httptest.NewRequest("POST", "/api/sms", strings.NewReader(`{"message":"hello"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for missing phone, got %d", res.StatusCode)
	}
	if gw.calls != 0 {
		t.Fatalf("validation failure must not reach the gateway, got %d calls", gw.calls)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), "phone and message are required") {
		t.Fatalf("unexpected body: %s", string(b))
	}
}

func TestSMSRelay_AcceptsBothFieldSpellings(t *testing.T) {
	gw := &stubGateway{sid: "req-1"}
	app := makeRelayApp(gw, &stubEmail{})

	for _, body := range []string{
		`{"phone":"9876543210","message":"hello"}`,
		`{"phoneNumber":"9876543210","message":"hello"}`,
	} {
		req := httptest.NewRequest("POST", "/api/sms", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		res, _ := app.Test(req)
		if res.StatusCode != fiber.StatusOK {
			t.Fatalf("expected 200 for %s, got %d", body, res.StatusCode)
		}
		b, _ := io.ReadAll(res.Body)
		if !strings.Contains(string(b), `"sid":"req-1"`) || !strings.Contains(string(b), `"success":true`) {
			t.Fatalf("unexpected body: %s", string(b))
		}
	}
	if gw.calls != 2 {
		t.Fatalf("expected 2 gateway calls, got %d", gw.calls)
	}
}

func TestSMSRelay_GatewayFailureIsVerbatim(t *testing.T) {
	gw := &stubGateway{err: errors.New("Invalid Authentication, Check Authorization Key")}
	app := makeRelayApp(gw, &stubEmail{})

	req := httptest.NewRequest("POST", "/api/sms", strings.NewReader(`{"phone":"9876543210","message":"hello"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("expected 500 for gateway failure, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), "Invalid Authentication, Check Authorization Key") {
		t.Fatalf("provider text must pass through untouched, got %s", string(b))
	}
}

func TestEmailRelay(t *testing.T) {
	sender := &stubEmail{sid: "OK"}
	app := makeRelayApp(&stubGateway{}, sender)

	// missing email
	req := httptest.NewRequest("POST", "/api/email", strings.NewReader(`{"message":"hello"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for missing email, got %d", res.StatusCode)
	}
	if sender.calls != 0 {
		t.Fatalf("validation failure must not reach the sender, got %d calls", sender.calls)
	}

	req2 := httptest.NewRequest("POST", "/api/email", strings.NewReader(`{"email":"asha@example.com","name":"Asha","message":"hello"}`))
	req2.Header.Set("Content-Type", "application/json")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for email relay, got %d", res2.StatusCode)
	}
	if sender.calls != 1 {
		t.Fatalf("expected 1 sender call, got %d", sender.calls)
	}
}
