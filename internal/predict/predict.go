package predict

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

var ErrPrediction = errors.New("price prediction failed")

// PriceClient fetches the raw predicted price series for a crop.
type PriceClient interface {
	Predict(ctx context.Context, crop string) ([]float64, error)
}

// Client posts the crop name to the external prediction endpoint and reads
// back the price series. No caching; every call is a fresh request.
type Client struct {
	url        string
	httpClient *http.Client
}

func NewClient(url string) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type predictRequest struct {
	Crop string `json:"crop"`
}

type predictResponse struct {
	PredictedPrices []float64 `json:"predicted_prices"`
}

func (c *Client) Predict(ctx context.Context, crop string) ([]float64, error) {
	body, err := json.Marshal(predictRequest{Crop: crop})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPrediction, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: provider returned status %d", ErrPrediction, resp.StatusCode)
	}

	var parsed predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPrediction, err)
	}
	if len(parsed.PredictedPrices) == 0 {
		return nil, fmt.Errorf("%w: empty series for crop %s", ErrPrediction, crop)
	}
	return parsed.PredictedPrices, nil
}

// Point is one rendered entry: a calendar date and the price formatted to
// two decimal places.
type Point struct {
	Date  string `json:"date"`
	Price string `json:"price"`
}

// Service turns the provider's raw series into the rendered panel data.
// The calendar dates are derived locally, starting today.
type Service struct {
	client PriceClient
	now    func() time.Time
}

func NewService(client PriceClient) *Service {
	return &Service{client: client, now: time.Now}
}

// NewServiceAt pins the clock, for tests.
func NewServiceAt(client PriceClient, now func() time.Time) *Service {
	return &Service{client: client, now: now}
}

func (s *Service) Forecast(ctx context.Context, crop string) ([]Point, error) {
	if crop == "" {
		return nil, errors.New("crop is required")
	}

	prices, err := s.client.Predict(ctx, crop)
	if err != nil {
		return nil, err
	}

	start := s.now()
	points := make([]Point, 0, len(prices))
	for i, price := range prices {
		points = append(points, Point{
			Date:  start.AddDate(0, 0, i).Format("2006-01-02"),
			Price: strconv.FormatFloat(price, 'f', 2, 64),
		})
	}
	return points, nil
}
