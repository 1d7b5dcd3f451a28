package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const emailJSDefaultURL = "https://api.emailjs.com"

// EmailJSSender wraps the templated-email provider. The template fields are
// fixed: to_name, to_email and message.
type EmailJSSender struct {
	serviceID  string
	templateID string
	userID     string
	baseURL    string
	httpClient *http.Client
}

func NewEmailJSSender(serviceID, templateID, userID string) *EmailJSSender {
	return &EmailJSSender{
		serviceID:  serviceID,
		templateID: templateID,
		userID:     userID,
		baseURL:    emailJSDefaultURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// NewEmailJSSenderWithURL is used by tests to point at a fake provider.
func NewEmailJSSenderWithURL(serviceID, templateID, userID, baseURL string) *EmailJSSender {
	s := NewEmailJSSender(serviceID, templateID, userID)
	s.baseURL = baseURL
	return s
}

type emailJSRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

func (s *EmailJSSender) SendEmail(ctx context.Context, toEmail, toName, message string) (string, error) {
	payload := emailJSRequest{
		ServiceID:  s.serviceID,
		TemplateID: s.templateID,
		UserID:     s.userID,
		TemplateParams: map[string]string{
			"to_name":  toName,
			"to_email": toEmail,
			"message":  message,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/v1.0/email/send", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(string(respBody))

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s", text)
	}
	return text, nil
}
