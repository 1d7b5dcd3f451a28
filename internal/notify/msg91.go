package notify

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const msg91DefaultURL = "https://control.msg91.com"

// MSG91Gateway is the secondary, regional SMS gateway. Sender identity,
// route and country code are fixed at construction.
type MSG91Gateway struct {
	authKey    string
	sender     string
	baseURL    string
	httpClient *http.Client
}

func NewMSG91Gateway(authKey, sender string) *MSG91Gateway {
	return &MSG91Gateway{
		authKey:    authKey,
		sender:     sender,
		baseURL:    msg91DefaultURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// NewMSG91GatewayWithURL is used by tests to point at a fake provider.
func NewMSG91GatewayWithURL(authKey, sender, baseURL string) *MSG91Gateway {
	g := NewMSG91Gateway(authKey, sender)
	g.baseURL = baseURL
	return g
}

func (g *MSG91Gateway) SendSMS(ctx context.Context, phone, message string) (string, error) {
	q := url.Values{}
	q.Set("authkey", g.authKey)
	q.Set("mobiles", phone)
	q.Set("message", message)
	q.Set("sender", g.sender)
	q.Set("route", "4")
	q.Set("country", "91")

	reqURL := fmt.Sprintf("%s/api/sendhttp.php?%s", g.baseURL, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(string(body))

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s", text)
	}
	// success responses carry the bare request id
	return text, nil
}
