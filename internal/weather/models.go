package weather

import (
	"strconv"

	"github.com/google/uuid"
)

// Location is a place the user can pick weather for. Immutable once built.
type Location struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
}

// NewLocation builds a Location with a fresh identity.
func NewLocation(name string, lat, lon float64) Location {
	return Location{
		ID:        uuid.New(),
		Name:      name,
		Latitude:  lat,
		Longitude: lon,
	}
}

// Key returns the canonical "lat,lon" cache key for this location.
// The exact coordinate values are the key; no rounding is applied.
func (l Location) Key() string {
	return strconv.FormatFloat(l.Latitude, 'f', -1, 64) + "," +
		strconv.FormatFloat(l.Longitude, 'f', -1, 64)
}

// Well-known locations offered before the user searches for their own.
var (
	Kutaisi = Location{
		ID:        uuid.MustParse("6f9e2c64-30b1-4f67-9a38-9a1f5f2d7c01"),
		Name:      "Кутаиси",
		Latitude:  42.2679,
		Longitude: 42.6946,
	}
	Tbilisi = Location{
		ID:        uuid.MustParse("b2c7a1de-58c4-4c0a-8f3e-01d94f6a2c02"),
		Name:      "Тбилиси",
		Latitude:  41.6938,
		Longitude: 44.8015,
	}
	Batumi = Location{
		ID:        uuid.MustParse("e4d1f9a2-7b63-4e8d-b5c1-33a8e0d91c03"),
		Name:      "Батуми",
		Latitude:  41.6423,
		Longitude: 41.6339,
	}
)

// Presets lists the built-in locations in display order.
func Presets() []Location {
	return []Location{Kutaisi, Tbilisi, Batumi}
}

// Current holds the current conditions block of a snapshot.
type Current struct {
	Temperature   float64 `json:"temperatureC"`
	WindSpeed     float64 `json:"windSpeedMs"`
	WeatherCode   int     `json:"weatherCode"`
	WindDirection float64 `json:"windDirectionDeg"`
}

// Hourly is the hourly forecast series. The three slices are positionally
// aligned and chronologically ordered at hourly steps; timestamps are local
// "YYYY-MM-DDTHH:mm" strings as returned by the API.
type Hourly struct {
	Time        []string  `json:"time"`
	Temperature []float64 `json:"temperatureC"`
	WeatherCode []int     `json:"weatherCode"`
}

// Daily carries sunrise/sunset timestamps, index 0 being today.
type Daily struct {
	Sunrise []string `json:"sunrise"`
	Sunset  []string `json:"sunset"`
}

// WeatherSnapshot is one decoded forecast response. It is created per fetch
// and never mutated afterwards.
type WeatherSnapshot struct {
	Current  Current `json:"current"`
	Hourly   Hourly  `json:"hourly"`
	Daily    Daily   `json:"daily"`
	Timezone string  `json:"timezone,omitempty"`
}

// ForecastEntry is a single hourly datapoint resolved by a lookup.
type ForecastEntry struct {
	Time        string  `json:"time"`
	Temperature float64 `json:"temperatureC"`
	WeatherCode int     `json:"weatherCode"`
}
