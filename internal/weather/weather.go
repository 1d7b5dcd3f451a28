package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var ErrWeather = errors.New("weather lookup failed")

// Current is the storefront weather panel data for one location.
type Current struct {
	Temperature float64 `json:"temperature"`
	WindSpeed   float64 `json:"windSpeed"`
	Code        int     `json:"weatherCode"`
}

// Client fetches current conditions from an Open-Meteo-style API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type openMeteoResponse struct {
	CurrentWeather struct {
		Temperature float64 `json:"temperature"`
		WindSpeed   float64 `json:"windspeed"`
		WeatherCode int     `json:"weathercode"`
	} `json:"current_weather"`
}

func (c *Client) Current(ctx context.Context, lat, lon float64) (Current, error) {
	reqURL := fmt.Sprintf("%s/v1/forecast?latitude=%.4f&longitude=%.4f&current_weather=true", c.baseURL, lat, lon)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Current{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Current{}, fmt.Errorf("%w: %v", ErrWeather, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Current{}, fmt.Errorf("%w: provider returned status %d", ErrWeather, resp.StatusCode)
	}

	var parsed openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return Current{}, fmt.Errorf("%w: %v", ErrWeather, err)
	}

	return Current{
		Temperature: parsed.CurrentWeather.Temperature,
		WindSpeed:   parsed.CurrentWeather.WindSpeed,
		Code:        parsed.CurrentWeather.WeatherCode,
	}, nil
}
