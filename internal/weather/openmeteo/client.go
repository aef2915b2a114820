// Package openmeteo implements the forecast fetcher against the
// api.open-meteo.com forecast endpoint.
package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"

	"github.com/amidi-app/meteodial/internal/httpx"
	"github.com/amidi-app/meteodial/internal/weather"
)

const defaultBaseURL = "https://api.open-meteo.com/v1/forecast"

// Client fetches forecasts from Open-Meteo. It requires no API key.
type Client struct {
	baseURL string
	httpCfg httpx.Config
	circuit *gobreaker.CircuitBreaker
}

// NewClient creates a forecast client on top of the shared HTTP client.
func NewClient(client *http.Client) *Client {
	return &Client{
		baseURL: defaultBaseURL,
		httpCfg: httpx.Config{
			Client:          client,
			MaxRetries:      3,
			InitialInterval: 500 * time.Millisecond,
			MaxInterval:     5 * time.Second,
		},
		circuit: httpx.NewBreaker("openmeteo-forecast"),
	}
}

// Fetch performs one GET for current conditions plus the two-day hourly and
// daily series, with wind speeds in m/s and timestamps in the location's own
// timezone.
func (c *Client) Fetch(ctx context.Context, loc weather.Location) (weather.WeatherSnapshot, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("latitude", strconv.FormatFloat(loc.Latitude, 'f', -1, 64))
		values.Set("longitude", strconv.FormatFloat(loc.Longitude, 'f', -1, 64))
		values.Set("current", "temperature_2m,wind_speed_10m,weather_code,wind_direction_10m")
		values.Set("hourly", "temperature_2m,weather_code")
		values.Set("daily", "sunrise,sunset")
		values.Set("wind_speed_unit", "ms")
		values.Set("forecast_days", "2")
		values.Set("timezone", "auto")

		u := fmt.Sprintf("%s?%s", c.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := httpx.Do(ctx, c.httpCfg, c.circuit, buildRequest)
	if err != nil {
		return weather.WeatherSnapshot{}, err
	}
	defer resp.Body.Close()

	var payload struct {
		Timezone string `json:"timezone"`
		Current  struct {
			Temperature2m    float64 `json:"temperature_2m"`
			WindSpeed10m     float64 `json:"wind_speed_10m"`
			WeatherCode      int     `json:"weather_code"`
			WindDirection10m float64 `json:"wind_direction_10m"`
		} `json:"current"`
		Hourly struct {
			Time          []string  `json:"time"`
			Temperature2m []float64 `json:"temperature_2m"`
			WeatherCode   []int     `json:"weather_code"`
		} `json:"hourly"`
		Daily struct {
			Sunrise []string `json:"sunrise"`
			Sunset  []string `json:"sunset"`
		} `json:"daily"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.WeatherSnapshot{}, fmt.Errorf("decode forecast response: %w", err)
	}

	if len(payload.Hourly.Time) != len(payload.Hourly.Temperature2m) ||
		len(payload.Hourly.Time) != len(payload.Hourly.WeatherCode) {
		return weather.WeatherSnapshot{}, fmt.Errorf("hourly series length mismatch: %d/%d/%d",
			len(payload.Hourly.Time), len(payload.Hourly.Temperature2m), len(payload.Hourly.WeatherCode))
	}

	return weather.WeatherSnapshot{
		Current: weather.Current{
			Temperature:   payload.Current.Temperature2m,
			WindSpeed:     payload.Current.WindSpeed10m,
			WeatherCode:   payload.Current.WeatherCode,
			WindDirection: payload.Current.WindDirection10m,
		},
		Hourly: weather.Hourly{
			Time:        payload.Hourly.Time,
			Temperature: payload.Hourly.Temperature2m,
			WeatherCode: payload.Hourly.WeatherCode,
		},
		Daily: weather.Daily{
			Sunrise: payload.Daily.Sunrise,
			Sunset:  payload.Daily.Sunset,
		},
		Timezone: payload.Timezone,
	}, nil
}
