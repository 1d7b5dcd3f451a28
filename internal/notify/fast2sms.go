package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const fast2SMSDefaultURL = "https://www.fast2sms.com/dev/bulkV2"

// Fast2SMSGateway is the primary SMS gateway. Route and language are fixed;
// only the number and message vary per call.
type Fast2SMSGateway struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewFast2SMSGateway(apiKey string) *Fast2SMSGateway {
	return &Fast2SMSGateway{
		apiKey:     apiKey,
		baseURL:    fast2SMSDefaultURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// NewFast2SMSGatewayWithURL is used by tests to point at a fake provider.
func NewFast2SMSGatewayWithURL(apiKey, baseURL string) *Fast2SMSGateway {
	g := NewFast2SMSGateway(apiKey)
	g.baseURL = baseURL
	return g
}

type fast2SMSResponse struct {
	Return    bool     `json:"return"`
	RequestID string   `json:"request_id"`
	Message   []string `json:"message"`
}

func (g *Fast2SMSGateway) SendSMS(ctx context.Context, phone, message string) (string, error) {
	form := url.Values{}
	form.Set("route", "q")
	form.Set("language", "english")
	form.Set("numbers", phone)
	form.Set("message", message)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("authorization", g.apiKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var parsed fast2SMSResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("sms gateway returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if resp.StatusCode != http.StatusOK || !parsed.Return {
		// surface the provider's own message text
		return "", fmt.Errorf("%s", strings.Join(parsed.Message, "; "))
	}
	return parsed.RequestID, nil
}
