package market

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

var ErrMarket = errors.New("market price lookup failed")

// Record is one mandi price row as published by the government data portal.
// Prices arrive as strings and are passed through untouched.
type Record struct {
	State       string `json:"state"`
	District    string `json:"district"`
	Market      string `json:"market"`
	Commodity   string `json:"commodity"`
	MinPrice    string `json:"min_price"`
	MaxPrice    string `json:"max_price"`
	ModalPrice  string `json:"modal_price"`
	ArrivalDate string `json:"arrival_date"`
}

// Client queries a data.gov.in-style resource API for current mandi prices.
type Client struct {
	resourceURL string
	apiKey      string
	httpClient  *http.Client
}

func NewClient(resourceURL, apiKey string) *Client {
	return &Client{
		resourceURL: resourceURL,
		apiKey:      apiKey,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
	}
}

type resourceResponse struct {
	Records []Record `json:"records"`
}

func (c *Client) Fetch(ctx context.Context, commodity, state string) ([]Record, error) {
	q := url.Values{}
	q.Set("api-key", c.apiKey)
	q.Set("format", "json")
	q.Set("limit", "50")
	if commodity != "" {
		q.Set("filters[commodity]", commodity)
	}
	if state != "" {
		q.Set("filters[state]", state)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.resourceURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMarket, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: provider returned status %d", ErrMarket, resp.StatusCode)
	}

	var parsed resourceResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMarket, err)
	}
	return parsed.Records, nil
}
