// Package geocoding resolves free-text place names to coordinates through
// the Open-Meteo geocoding API.
package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/amidi-app/meteodial/internal/httpx"
	"github.com/amidi-app/meteodial/internal/metrics"
	"github.com/amidi-app/meteodial/internal/weather"
)

const defaultBaseURL = "https://geocoding-api.open-meteo.com/v1/search"

// Client searches the geocoding API. It requires no API key.
type Client struct {
	baseURL string
	httpCfg httpx.Config
	circuit *gobreaker.CircuitBreaker
}

// NewClient creates a geocoding client on top of the shared HTTP client.
func NewClient(client *http.Client) *Client {
	return &Client{
		baseURL: defaultBaseURL,
		httpCfg: httpx.Config{
			Client:          client,
			MaxRetries:      3,
			InitialInterval: 500 * time.Millisecond,
			MaxInterval:     5 * time.Second,
		},
		circuit: httpx.NewBreaker("openmeteo-geocoding"),
	}
}

// Search returns up to five matching locations for the query. An empty
// result set is not an error; the API marks it with a null results field.
func (c *Client) Search(ctx context.Context, query string) ([]weather.Location, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("name", query)
		values.Set("count", "5")
		values.Set("language", "ru")

		u := fmt.Sprintf("%s?%s", c.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := httpx.Do(ctx, c.httpCfg, c.circuit, buildRequest)
	if err != nil {
		metrics.GeocodeRequests.WithLabelValues("error").Inc()
		return nil, err
	}
	defer resp.Body.Close()

	var payload struct {
		Results []struct {
			Name      string  `json:"name"`
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"results"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		metrics.GeocodeRequests.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("decode geocoding response: %w", err)
	}
	metrics.GeocodeRequests.WithLabelValues("ok").Inc()

	locations := make([]weather.Location, 0, len(payload.Results))
	for _, r := range payload.Results {
		locations = append(locations, weather.NewLocation(r.Name, r.Latitude, r.Longitude))
	}
	return locations, nil
}
