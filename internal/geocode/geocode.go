package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// ErrGeocode wraps every provider-side failure so callers can block
// checkout on it without inspecting messages.
var ErrGeocode = errors.New("geocoding failed")

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Resolver converts free-text addresses into coordinates.
type Resolver interface {
	Resolve(ctx context.Context, address string) (Location, error)
}

// NominatimClient resolves addresses against a Nominatim-style search API.
// One request per call, no retries.
type NominatimClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewNominatimClient(baseURL string) *NominatimClient {
	return &NominatimClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

func (n *NominatimClient) Resolve(ctx context.Context, address string) (Location, error) {
	reqURL := fmt.Sprintf("%s/search?q=%s&format=json&limit=1", n.baseURL, url.QueryEscape(address))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Location{}, err
	}
	// Nominatim requires a valid User-Agent
	req.Header.Set("User-Agent", "farm-market-backend/1.0")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return Location{}, fmt.Errorf("%w: %v", ErrGeocode, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Location{}, fmt.Errorf("%w: provider returned status %d", ErrGeocode, resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return Location{}, fmt.Errorf("%w: %v", ErrGeocode, err)
	}
	if len(results) == 0 {
		return Location{}, fmt.Errorf("%w: address not found: %s", ErrGeocode, address)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return Location{}, fmt.Errorf("%w: bad latitude in response", ErrGeocode)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return Location{}, fmt.Errorf("%w: bad longitude in response", ErrGeocode)
	}

	return Location{Latitude: lat, Longitude: lon}, nil
}
