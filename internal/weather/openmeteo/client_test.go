package openmeteo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/amidi-app/meteodial/internal/weather"
)

const forecastFixture = `{
	"timezone": "Asia/Tbilisi",
	"current": {
		"temperature_2m": 24.3,
		"wind_speed_10m": 3.7,
		"weather_code": 2,
		"wind_direction_10m": 135.0
	},
	"hourly": {
		"time": ["2024-06-01T00:00", "2024-06-01T01:00", "2024-06-01T02:00"],
		"temperature_2m": [18.1, 17.6, 17.2],
		"weather_code": [0, 1, 2]
	},
	"daily": {
		"sunrise": ["2024-06-01T05:38"],
		"sunset": ["2024-06-01T20:51"]
	}
}`

func TestClientFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("latitude") != "42.2679" || q.Get("longitude") != "42.6946" {
			t.Errorf("unexpected coordinates: %s,%s", q.Get("latitude"), q.Get("longitude"))
		}
		if q.Get("current") != "temperature_2m,wind_speed_10m,weather_code,wind_direction_10m" {
			t.Errorf("unexpected current fields: %s", q.Get("current"))
		}
		if q.Get("hourly") != "temperature_2m,weather_code" {
			t.Errorf("unexpected hourly fields: %s", q.Get("hourly"))
		}
		if q.Get("daily") != "sunrise,sunset" {
			t.Errorf("unexpected daily fields: %s", q.Get("daily"))
		}
		if q.Get("wind_speed_unit") != "ms" {
			t.Errorf("unexpected wind unit: %s", q.Get("wind_speed_unit"))
		}
		if q.Get("forecast_days") != "2" {
			t.Errorf("unexpected forecast days: %s", q.Get("forecast_days"))
		}
		if q.Get("timezone") != "auto" {
			t.Errorf("unexpected timezone: %s", q.Get("timezone"))
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(forecastFixture))
	}))
	defer server.Close()

	client := NewClient(server.Client())
	client.baseURL = server.URL

	snapshot, err := client.Fetch(context.Background(), weather.Kutaisi)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if snapshot.Current.Temperature != 24.3 {
		t.Errorf("temperature = %v, want 24.3", snapshot.Current.Temperature)
	}
	if snapshot.Current.WindSpeed != 3.7 {
		t.Errorf("wind speed = %v, want 3.7", snapshot.Current.WindSpeed)
	}
	if snapshot.Current.WeatherCode != 2 {
		t.Errorf("weather code = %d, want 2", snapshot.Current.WeatherCode)
	}
	if snapshot.Current.WindDirection != 135 {
		t.Errorf("wind direction = %v, want 135", snapshot.Current.WindDirection)
	}
	if len(snapshot.Hourly.Time) != 3 || snapshot.Hourly.Time[0] != "2024-06-01T00:00" {
		t.Errorf("hourly times = %v", snapshot.Hourly.Time)
	}
	if len(snapshot.Daily.Sunrise) != 1 || snapshot.Daily.Sunrise[0] != "2024-06-01T05:38" {
		t.Errorf("daily sunrise = %v", snapshot.Daily.Sunrise)
	}
	if snapshot.Timezone != "Asia/Tbilisi" {
		t.Errorf("timezone = %q, want Asia/Tbilisi", snapshot.Timezone)
	}
}

func TestClientFetchDecodeFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"current": {"temperature_2m": 24.3`)) // truncated
	}))
	defer server.Close()

	client := NewClient(server.Client())
	client.baseURL = server.URL

	if _, err := client.Fetch(context.Background(), weather.Kutaisi); err == nil {
		t.Fatal("expected decode error for truncated JSON")
	}
}

func TestClientFetchLengthMismatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"hourly": {
				"time": ["2024-06-01T00:00", "2024-06-01T01:00"],
				"temperature_2m": [18.1],
				"weather_code": [0, 1]
			}
		}`))
	}))
	defer server.Close()

	client := NewClient(server.Client())
	client.baseURL = server.URL

	if _, err := client.Fetch(context.Background(), weather.Kutaisi); err == nil {
		t.Fatal("expected error for misaligned hourly arrays")
	}
}
